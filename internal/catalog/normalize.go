package catalog

import (
	"gorm.io/datatypes"

	"github.com/costeratours/experience-service/internal/models"
)

// Normalize fills the defaults every update source must agree on: nil array
// fields become empty slices, a missing coordinate pair becomes the fixed
// fallback, and a negative capacity clamps to zero.
func Normalize(e models.Experience) models.Experience {
	if e.Includes == nil {
		e.Includes = datatypes.JSONSlice[string]{}
	}
	if e.Excludes == nil {
		e.Excludes = datatypes.JSONSlice[string]{}
	}
	if e.Gallery == nil {
		e.Gallery = datatypes.JSONSlice[string]{}
	}
	if e.Latitude == 0 && e.Longitude == 0 {
		e.Latitude = models.FallbackLatitude
		e.Longitude = models.FallbackLongitude
	}
	if e.MaxCapacity < 0 {
		e.MaxCapacity = 0
	}
	return e
}

func normalizeAll(list []models.Experience) []models.Experience {
	out := make([]models.Experience, len(list))
	for i, e := range list {
		out[i] = Normalize(e)
	}
	return out
}
