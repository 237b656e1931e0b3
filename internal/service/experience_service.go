package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/costeratours/experience-service/internal/models"
	"github.com/costeratours/experience-service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

// ChangePublisher emits experience change events to the store change feed.
type ChangePublisher interface {
	Publish(routingKey string, payload any) error
}

type ExperienceService interface {
	// Upsert creates the experience or fully replaces its mutable fields.
	// A created/updated change event is published on success.
	Upsert(ctx context.Context, exp *models.Experience) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	GetBySlug(ctx context.Context, slug string) (*models.Experience, error)
	List(ctx context.Context) ([]models.Experience, error)
}

type experienceService struct {
	repo      repository.ExperienceRepository
	publisher ChangePublisher
}

func NewExperienceService(repo repository.ExperienceRepository, publisher ChangePublisher) ExperienceService {
	return &experienceService{repo: repo, publisher: publisher}
}

func (s *experienceService) Upsert(ctx context.Context, exp *models.Experience) error {
	if exp.Title == "" || exp.Slug == "" {
		return fmt.Errorf("%w: title and slug are required", ErrValidation)
	}
	if exp.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max_capacity must be greater than zero", ErrValidation)
	}

	routingKey := "experience.updated"
	if exp.ID == "" {
		exp.ID = uuid.NewString()
		routingKey = "experience.created"
	}

	if err := s.repo.Upsert(ctx, exp); err != nil {
		return fmt.Errorf("upsert experience: %w", err)
	}

	s.publish(routingKey, exp)
	return nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	exp, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrExperienceNotFound
	}
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	s.publish("experience.deleted", exp)
	return nil
}

// publish is best-effort: the mutation already committed, so a feed failure is
// logged and the next poll picks the change up.
func (s *experienceService) publish(routingKey string, exp *models.Experience) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, exp); err != nil {
		log.Printf("[ExperienceService] publish %s failed: %v", routingKey, err)
	}
}

func (s *experienceService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *experienceService) GetBySlug(ctx context.Context, slug string) (*models.Experience, error) {
	exp, err := s.repo.FindBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	return s.repo.FindAll(ctx)
}
