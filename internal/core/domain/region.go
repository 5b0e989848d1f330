package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region - желаемый географический район. Объявления с координатами вне
// полигона молча отбрасываются пайплайном.
type Region struct {
	polygon orb.Polygon
}

// NewRegion строит регион из точек внешнего кольца полигона в порядке
// (longitude, latitude). Замыкать кольцо не обязательно.
func NewRegion(points [][2]float64) Region {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p[0], p[1]})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return Region{polygon: orb.Polygon{ring}}
}

// Contains проверяет, лежит ли точка внутри региона.
func (r Region) Contains(loc Location) bool {
	return planar.PolygonContains(r.polygon, orb.Point{loc.Longitude, loc.Latitude})
}

// IsZero сообщает, что регион не сконфигурирован.
func (r Region) IsZero() bool {
	return len(r.polygon) == 0
}
