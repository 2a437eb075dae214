package spatial

import (
	"testing"

	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 1}

	// один градус по экватору ~111.19 км
	assert.InDelta(t, 111195, Distance(a, b), 50)
	assert.InDelta(t, 0, Distance(a, a), 1e-9)
}

func TestCentroid(t *testing.T) {
	_, ok := Centroid(nil)
	assert.False(t, ok)

	c, ok := Centroid([]models.Location{
		{Latitude: 10, Longitude: 20},
		{Latitude: 10, Longitude: 20},
	})
	require.True(t, ok)
	assert.InDelta(t, 10, c.Latitude, 1e-9)
	assert.InDelta(t, 20, c.Longitude, 1e-9)

	c, ok = Centroid([]models.Location{
		{Latitude: 0, Longitude: 10},
		{Latitude: 0, Longitude: 12},
	})
	require.True(t, ok)
	assert.InDelta(t, 0, c.Latitude, 1e-9)
	assert.InDelta(t, 11, c.Longitude, 1e-9)
}

func TestCentroid_AcrossAntimeridian(t *testing.T) {
	c, ok := Centroid([]models.Location{
		{Latitude: 0, Longitude: 179},
		{Latitude: 0, Longitude: -179},
	})
	require.True(t, ok)
	assert.InDelta(t, 180, abs(c.Longitude), 1e-6)
}

func TestValidateBounds(t *testing.T) {
	assert.NoError(t, ValidateBounds(models.Bounds{MinLat: 10, MinLon: 70, MaxLat: 20, MaxLon: 80}))
	assert.ErrorIs(t, ValidateBounds(models.Bounds{MinLat: 20, MinLon: 70, MaxLat: 10, MaxLon: 80}), models.ErrInvalidCoordinate)
	assert.ErrorIs(t, ValidateBounds(models.Bounds{MinLat: -95, MinLon: 70, MaxLat: 10, MaxLon: 80}), models.ErrInvalidCoordinate)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
