package cubedb

import "math"

const (
	// earthRadiusM the fixed sphere radius used by haversine.
	earthRadiusM = 6371000.0

	// metersPerDegree the flat conversion used to build the candidate
	// envelope of a radius query. One degree of latitude is about
	// 111 km; the same figure is reused for longitude on purpose, so
	// the envelope ignores longitude shrinkage away from the equator.
	// Kept as-is: the refinement pass makes the final call.
	metersPerDegree = 111000.0
)

// haversineDistance great-circle distance in meters between two
// lat/lon points on a sphere of radius earthRadiusM.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// pointInPolygon ray-casting containment test. Assumes a simple
// polygon; repeated vertices or zero-length edges give an unspecified
// (but deterministic) answer.
func pointInPolygon(lat, lon float64, polygon []LatLon) bool {
	inside := false
	n := len(polygon)

	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := polygon[i], polygon[j]
		if (vi.Lon > lon) != (vj.Lon > lon) &&
			lat < (vj.Lat-vi.Lat)*(lon-vi.Lon)/(vj.Lon-vi.Lon)+vi.Lat {
			inside = !inside
		}
		j = i
	}

	return inside
}

// polygonBounds the axis-aligned envelope of the vertices.
func polygonBounds(polygon []LatLon) (minLat, minLon, maxLat, maxLon float64) {
	minLat, maxLat = math.MaxFloat64, -math.MaxFloat64
	minLon, maxLon = math.MaxFloat64, -math.MaxFloat64
	for _, v := range polygon {
		minLat = math.Min(minLat, v.Lat)
		maxLat = math.Max(maxLat, v.Lat)
		minLon = math.Min(minLon, v.Lon)
		maxLon = math.Max(maxLon, v.Lon)
	}
	return minLat, minLon, maxLat, maxLon
}
