package cubedb

import (
	"cmp"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/btree"
)

const btreeDegree = 32

// bucket the set of record ids sharing a single key value.
type bucket[K cmp.Ordered] struct {
	key K
	ids *roaring.Bitmap
}

// orderedIndex maps a comparable field value to its id bucket and
// supports range scans in ascending key order. One instantiation per
// ordered dimension (RSSI int8, timestamp int64).
type orderedIndex[K cmp.Ordered] struct {
	tree *btree.BTreeG[bucket[K]]
}

func newOrderedIndex[K cmp.Ordered]() *orderedIndex[K] {
	return &orderedIndex[K]{
		tree: btree.NewG(btreeDegree, func(a, b bucket[K]) bool {
			return a.key < b.key
		}),
	}
}

func (ix *orderedIndex[K]) add(key K, id RecordID) {
	b, ok := ix.tree.Get(bucket[K]{key: key})
	if !ok {
		b = bucket[K]{key: key, ids: roaring.New()}
		ix.tree.ReplaceOrInsert(b)
	}
	b.ids.Add(uint32(id))
}

// exact returns the bucket for key, nil when the key was never seen.
func (ix *orderedIndex[K]) exact(key K) *roaring.Bitmap {
	b, ok := ix.tree.Get(bucket[K]{key: key})
	if !ok {
		return nil
	}
	return b.ids
}

// ascendRange returns the buckets with min <= key <= max, in key order.
func (ix *orderedIndex[K]) ascendRange(min, max K) []*roaring.Bitmap {
	var out []*roaring.Bitmap
	ix.tree.AscendGreaterOrEqual(bucket[K]{key: min}, func(b bucket[K]) bool {
		if b.key > max {
			return false
		}
		out = append(out, b.ids)
		return true
	})
	return out
}

// ascendGreater returns the buckets above threshold, in key order.
// The scan starts at the threshold bucket and skips the equal key when
// not inclusive, so a threshold at the top of the key domain yields an
// empty result without any +1 arithmetic on the key.
func (ix *orderedIndex[K]) ascendGreater(threshold K, inclusive bool) []*roaring.Bitmap {
	var out []*roaring.Bitmap
	ix.tree.AscendGreaterOrEqual(bucket[K]{key: threshold}, func(b bucket[K]) bool {
		if !inclusive && b.key == threshold {
			return true
		}
		out = append(out, b.ids)
		return true
	})
	return out
}

// ascendLess returns the buckets below threshold, in key order.
func (ix *orderedIndex[K]) ascendLess(threshold K, inclusive bool) []*roaring.Bitmap {
	var out []*roaring.Bitmap
	ix.tree.AscendLessThan(bucket[K]{key: threshold}, func(b bucket[K]) bool {
		out = append(out, b.ids)
		return true
	})
	if inclusive {
		if ids := ix.exact(threshold); ids != nil {
			out = append(out, ids)
		}
	}
	return out
}

func (ix *orderedIndex[K]) len() int {
	return ix.tree.Len()
}

// unionOf flattens a bucket list into one membership set. Used by the
// multi-dimensional engine where grouping by key no longer matters.
func unionOf(buckets []*roaring.Bitmap) *roaring.Bitmap {
	if len(buckets) == 0 {
		return roaring.New()
	}
	return roaring.FastOr(buckets...)
}
