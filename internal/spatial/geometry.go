package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

// Distance - расстояние по большому кругу в метрах
func Distance(a, b models.Location) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Centroid вычисляет центр масс точек на сфере.
// Результат зависит от порядка точек только в пределах погрешности float64,
// поэтому вызывающий код передает точки в стабильном порядке.
func Centroid(points []models.Location) (models.Location, bool) {
	if len(points) == 0 {
		return models.Location{}, false
	}
	var sum s2.Point
	for _, p := range points {
		v := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
		sum = s2.Point{Vector: sum.Add(v.Vector)}
	}
	if sum.Norm() == 0 {
		// антиподальные точки: центр не определен, берем первую
		return points[0], true
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return models.Location{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}, true
}

// ValidateBounds проверяет, что окно задано корректными углами
func ValidateBounds(b models.Bounds) error {
	if err := ValidateCoordinate(b.MinLat, b.MinLon); err != nil {
		return err
	}
	if err := ValidateCoordinate(b.MaxLat, b.MaxLon); err != nil {
		return err
	}
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return fmt.Errorf("bounds min corner must not exceed max corner: %w", models.ErrInvalidCoordinate)
	}
	return nil
}
