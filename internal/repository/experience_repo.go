package repository

import (
	"context"

	"github.com/costeratours/experience-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExperienceRepository interface {
	// Upsert inserts the experience or fully replaces its mutable fields when a
	// row with the same id already exists.
	Upsert(ctx context.Context, exp *models.Experience) error
	FindByID(ctx context.Context, id string) (*models.Experience, error)
	FindBySlug(ctx context.Context, slug string) (*models.Experience, error)
	FindAll(ctx context.Context) ([]models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Upsert(ctx context.Context, exp *models.Experience) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "slug", "description", "price_cop", "price_usd",
			"max_capacity", "location_name", "latitude", "longitude",
			"includes", "excludes", "image_url", "gallery", "updated_at",
		}),
	}).Create(exp).Error
}

func (r *experienceRepository) FindByID(ctx context.Context, id string) (*models.Experience, error) {
	var exp models.Experience
	if err := r.db.WithContext(ctx).First(&exp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepository) FindBySlug(ctx context.Context, slug string) (*models.Experience, error) {
	var exp models.Experience
	if err := r.db.WithContext(ctx).First(&exp, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepository) FindAll(ctx context.Context) ([]models.Experience, error) {
	var exps []models.Experience
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&exps).Error; err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Experience{}, "id = ?", id).Error
}
