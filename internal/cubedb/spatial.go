package cubedb

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/tidwall/rtree"
)

// geoIndex an R-tree point index over (lat, lon). Every record is
// inserted once as a degenerate rectangle carrying its id as payload;
// coordinate data stays in the record store, the tree answers only
// "which ids fall inside this envelope".
type geoIndex struct {
	tree rtree.RTreeG[RecordID]
}

func newGeoIndex() *geoIndex {
	return &geoIndex{}
}

func (g *geoIndex) add(lat, lon float64, id RecordID) {
	p := [2]float64{lat, lon}
	g.tree.Insert(p, p, id)
}

// envelope returns the ids of all points inside the axis-aligned box,
// boundaries included, as an ascending-id set.
func (g *geoIndex) envelope(minLat, minLon, maxLat, maxLon float64) *roaring.Bitmap {
	hits := roaring.New()
	g.tree.Search(
		[2]float64{minLat, minLon},
		[2]float64{maxLat, maxLon},
		func(_, _ [2]float64, id RecordID) bool {
			hits.Add(uint32(id))
			return true
		},
	)
	return hits
}

func (g *geoIndex) len() int {
	return g.tree.Len()
}
