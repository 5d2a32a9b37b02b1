package geo

import (
	"math"

	"crowdWatch/internal/domain"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// MetersPerDegreeLat is the fixed latitude scale of the local planar projection.
const MetersPerDegreeLat = 111320.0

// MinVertices is the smallest boundary that encloses an area.
const MinVertices = 3

// Polygon is a zone boundary prepared for repeated containment tests.
type Polygon struct {
	vertices []domain.LatLng
	// bounds is planar in degrees (X lng, Y lat) and never wraps the
	// antimeridian, matching the ray casting test.
	bounds r2.Rect
}

// NewPolygon returns false for boundaries with fewer than three vertices.
// The boundary is implicitly closed; a repeated closing vertex is harmless.
func NewPolygon(boundary []domain.LatLng) (Polygon, bool) {
	if len(boundary) < MinVertices {
		return Polygon{}, false
	}

	vs := make([]domain.LatLng, len(boundary))
	copy(vs, boundary)

	corners := make([]r2.Point, len(vs))
	for i, v := range vs {
		corners[i] = r2.Point{X: v.Lng, Y: v.Lat}
	}
	bounds := r2.RectFromPoints(corners...)

	return Polygon{vertices: vs, bounds: bounds}, true
}

func (p Polygon) Vertices() []domain.LatLng { return p.vertices }

// Contains rejects points outside the bounding rectangle before ray casting.
func (p Polygon) Contains(pt domain.LatLng) bool {
	if !s2.LatLngFromDegrees(pt.Lat, pt.Lng).IsValid() ||
		!p.bounds.ContainsPoint(r2.Point{X: pt.Lng, Y: pt.Lat}) {
		return false
	}
	return PointInPolygon(pt, p.vertices)
}

// PointInPolygon is the even-odd ray casting test. The ray runs along the
// point's longitude; each boundary edge it crosses toggles containment.
func PointInPolygon(pt domain.LatLng, polygon []domain.LatLng) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := polygon[i].Lat, polygon[i].Lng
		xj, yj := polygon[j].Lat, polygon[j].Lng

		if (yi > pt.Lng) != (yj > pt.Lng) &&
			pt.Lat < (xj-xi)*(pt.Lng-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Area estimates the enclosed area in square meters. Degenerate boundaries
// yield 0. Longitude is scaled by the cosine of the mean latitude and the
// shoelace sum is taken on the projected plane, so the result is only
// meaningful at venue scale. Coordinates are taken relative to the vertex
// mean to keep the cross products small.
func Area(boundary []domain.LatLng) float64 {
	n := len(boundary)
	if n < MinVertices {
		return 0
	}

	var sumLat, sumLng float64
	for _, v := range boundary {
		sumLat += v.Lat
		sumLng += v.Lng
	}
	midLat := sumLat / float64(n)
	midLng := sumLng / float64(n)

	latToM := MetersPerDegreeLat
	lngToM := MetersPerDegreeLat * math.Cos(midLat*math.Pi/180)

	var acc float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi := (boundary[i].Lat - midLat) * latToM
		yi := (boundary[i].Lng - midLng) * lngToM
		xj := (boundary[j].Lat - midLat) * latToM
		yj := (boundary[j].Lng - midLng) * lngToM
		acc += xi*yj - xj*yi
	}
	return math.Abs(acc) / 2
}
