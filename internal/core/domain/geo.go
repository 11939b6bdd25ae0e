package domain

import "math"

// kmPerDegree is the planar scale factor used by the radius filter: one
// degree of latitude (and, approximately, longitude near the equator) spans
// about 111 km.
const kmPerDegree = 111.0

// WithinRadiusKm reports whether the point (lat, lng) lies within radiusKm of
// the center using a planar approximation: degree deltas scaled to km and
// combined euclidean. This is not a geodesic distance; it is only acceptable
// for the short distances a neighborhood search cares about.
func WithinRadiusKm(lat, lng, centerLat, centerLng, radiusKm float64) bool {
	dLat := (lat - centerLat) * kmPerDegree
	dLng := (lng - centerLng) * kmPerDegree
	return math.Sqrt(dLat*dLat+dLng*dLng) <= radiusKm
}
