package spatial

import (
	"errors"
	"math"
	"testing"

	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexer_InvalidLevel(t *testing.T) {
	_, err := NewIndexer(-1)
	require.Error(t, err)

	_, err = NewIndexer(MaxCellLevel + 1)
	require.Error(t, err)
}

func TestCellID_Deterministic(t *testing.T) {
	idx, err := NewIndexer(DefaultCellLevel)
	require.NoError(t, err)

	points := []models.Location{
		{Latitude: 13.0827, Longitude: 80.2707},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 90, Longitude: 180},
		{Latitude: -90, Longitude: -180},
		{Latitude: 0, Longitude: 0},
	}
	for _, p := range points {
		first, err := idx.CellID(p.Latitude, p.Longitude)
		require.NoError(t, err)
		second, err := idx.CellID(p.Latitude, p.Longitude)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	}
}

func TestCellID_NearbyPointsShareCell(t *testing.T) {
	idx, err := NewIndexer(DefaultCellLevel)
	require.NoError(t, err)

	center, err := CellCenter(mustCell(t, idx, 13.0827, 80.2707))
	require.NoError(t, err)

	// несколько метров от центра ячейки остаются в той же ячейке
	a, err := idx.CellID(center.Latitude, center.Longitude)
	require.NoError(t, err)
	b, err := idx.CellID(center.Latitude+0.0001, center.Longitude-0.0001)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	far, err := idx.CellID(center.Latitude+1, center.Longitude)
	require.NoError(t, err)
	assert.NotEqual(t, a, far)
}

func TestCellID_LevelChangesGranularity(t *testing.T) {
	coarse, err := NewIndexer(4)
	require.NoError(t, err)
	fine, err := NewIndexer(16)
	require.NoError(t, err)

	a := mustCell(t, coarse, 13.08, 80.27)
	b := mustCell(t, coarse, 13.10, 80.29)
	assert.Equal(t, a, b)

	c := mustCell(t, fine, 13.08, 80.27)
	d := mustCell(t, fine, 13.10, 80.29)
	assert.NotEqual(t, c, d)
}

func TestCellID_InvalidCoordinate(t *testing.T) {
	idx, err := NewIndexer(DefaultCellLevel)
	require.NoError(t, err)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 90.5, 0},
		{"lat too low", -91, 0},
		{"lon too high", 0, 180.01},
		{"lon too low", 0, -200},
		{"nan", math.NaN(), 10},
		{"inf", 10, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := idx.CellID(tc.lat, tc.lon)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidCoordinate))
		})
	}
}

func TestCellCenter_InvalidToken(t *testing.T) {
	_, err := CellCenter("zz")
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func mustCell(t *testing.T, idx *Indexer, lat, lon float64) string {
	t.Helper()
	id, err := idx.CellID(lat, lon)
	require.NoError(t, err)
	return id
}
