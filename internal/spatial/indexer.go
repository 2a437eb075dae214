package spatial

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

const (
	// DefaultCellLevel - уровень S2 около 2 км по стороне ячейки
	DefaultCellLevel = 12
	MinCellLevel     = 0
	MaxCellLevel     = s2.MaxLevel

	EarthRadiusMeters = 6371000.0
)

// Indexer квантует координату в идентификатор ячейки S2 фиксированного уровня.
// Чистая функция без состояния, безопасна для конкурентного использования.
type Indexer struct {
	level int
}

func NewIndexer(level int) (*Indexer, error) {
	if level < MinCellLevel || level > MaxCellLevel {
		return nil, fmt.Errorf("cell level %d out of range [%d, %d]", level, MinCellLevel, MaxCellLevel)
	}
	return &Indexer{level: level}, nil
}

func (i *Indexer) Level() int {
	return i.level
}

// CellID возвращает токен ячейки S2, содержащей точку
func (i *Indexer) CellID(lat, lon float64) (string, error) {
	if err := ValidateCoordinate(lat, lon); err != nil {
		return "", err
	}
	leaf := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon))
	return leaf.Parent(i.level).ToToken(), nil
}

// CellCenter возвращает центр ячейки по токену
func CellCenter(token string) (models.Location, error) {
	id := s2.CellIDFromToken(token)
	if !id.IsValid() {
		return models.Location{}, fmt.Errorf("invalid cell token %q: %w", token, models.ErrInvalidCoordinate)
	}
	ll := id.LatLng()
	return models.Location{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}, nil
}

// ValidateCoordinate проверяет диапазоны широты и долготы
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return fmt.Errorf("coordinate (%v, %v) is not a number: %w", lat, lon, models.ErrInvalidCoordinate)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", lat, models.ErrInvalidCoordinate)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", lon, models.ErrInvalidCoordinate)
	}
	return nil
}
