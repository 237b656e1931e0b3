package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/costeratours/experience-service/internal/catalog"
	"github.com/costeratours/experience-service/internal/dto"
	"github.com/costeratours/experience-service/internal/models"
	"github.com/costeratours/experience-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock ExperienceService ---

type mockExperienceService struct {
	upsertFn    func(ctx context.Context, exp *models.Experience) error
	deleteFn    func(ctx context.Context, id string) error
	getByIDFn   func(ctx context.Context, id string) (*models.Experience, error)
	getBySlugFn func(ctx context.Context, slug string) (*models.Experience, error)
	listFn      func(ctx context.Context) ([]models.Experience, error)
}

func (m *mockExperienceService) Upsert(ctx context.Context, exp *models.Experience) error {
	return m.upsertFn(ctx, exp)
}
func (m *mockExperienceService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
func (m *mockExperienceService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockExperienceService) GetBySlug(ctx context.Context, slug string) (*models.Experience, error) {
	return m.getBySlugFn(ctx, slug)
}
func (m *mockExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return m.listFn(ctx)
}

// --- Tests ---

func TestListExperiences_ServesCatalogSnapshot(t *testing.T) {
	cat := catalog.New([]models.Experience{
		{ID: "a", Title: "Lost City Trek", Slug: "lost-city-trek", MaxCapacity: 12},
		{ID: "b", Title: "Minca Coffee Tour", Slug: "minca-coffee-tour", MaxCapacity: 6},
	}, nil, time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewExperienceHandler(nil, nil, cat)
	err := h.ListExperiences(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Experience
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "a", resp[0].ID)
}

func TestGetExperience_NotFound(t *testing.T) {
	svc := &mockExperienceService{
		getBySlugFn: func(ctx context.Context, slug string) (*models.Experience, error) {
			return nil, service.ErrExperienceNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	h := NewExperienceHandler(svc, nil, nil)
	err := h.GetExperience(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

// Only a missing row is 404; a failing store is a 500 with its message.
func TestGetExperience_StoreFaultIs500(t *testing.T) {
	svc := &mockExperienceService{
		getBySlugFn: func(ctx context.Context, slug string) (*models.Experience, error) {
			return nil, errors.New("connection refused")
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences/lost-city-trek", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("lost-city-trek")

	h := NewExperienceHandler(svc, nil, nil)
	err := h.GetExperience(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	assert.Contains(t, he.Message, "connection refused")
}

func TestDeleteExperience_StoreFaultIs500(t *testing.T) {
	svc := &mockExperienceService{
		deleteFn: func(ctx context.Context, id string) error {
			return errors.New("timeout")
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/experiences/exp-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("exp-1")

	h := NewExperienceHandler(svc, nil, nil)
	err := h.DeleteExperience(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

func TestUpsertExperience_Handler_Success(t *testing.T) {
	svc := &mockExperienceService{
		upsertFn: func(ctx context.Context, exp *models.Experience) error {
			exp.ID = "new-id"
			return nil
		},
	}

	e := echo.New()
	body := `{"title":"Tayrona Sunrise Kayak","slug":"tayrona-sunrise-kayak","max_capacity":8,"price_cop":220000,"includes":["guide","kayak"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/experiences", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewExperienceHandler(svc, nil, nil)
	err := h.UpsertExperience(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.Experience
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, []string{"guide", "kayak"}, []string(resp.Includes))
}

func TestGetCapacity_LayersRemainingOnAvailability(t *testing.T) {
	svc := &mockExperienceService{
		getByIDFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return &models.Experience{ID: id, MaxCapacity: 10}, nil
		},
	}
	bookingSvc := &mockBookingService{
		availabilityFn: func(ctx context.Context, experienceID string) (map[string]int, error) {
			return map[string]int{"2024-06-01": 3, "2024-06-02": 12}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/experiences/exp-1/availability", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("exp-1")

	h := NewExperienceHandler(svc, bookingSvc, nil)
	err := h.GetCapacity(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CapacityResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.MaxCapacity)
	assert.Equal(t, dto.DateCapacity{Booked: 3, Remaining: 7}, resp.Dates["2024-06-01"])
	assert.Equal(t, dto.DateCapacity{Booked: 12, Remaining: 0}, resp.Dates["2024-06-02"],
		"remaining floors at zero when oversold")
}
