package cubedb

import (
	"bytes"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// macIndex maps a hardware address to the set of record ids observed
// with it. Ids are assigned in insertion order, so a bucket iterated
// ascending replays the original arrival order of that address.
type macIndex struct {
	buckets map[MAC]*roaring.Bitmap
}

func newMACIndex(capacity int) *macIndex {
	return &macIndex{
		buckets: make(map[MAC]*roaring.Bitmap, capacity),
	}
}

func (ix *macIndex) add(mac MAC, id RecordID) {
	b, ok := ix.buckets[mac]
	if !ok {
		b = roaring.New()
		ix.buckets[mac] = b
	}
	b.Add(uint32(id))
}

// get returns the bucket for mac, nil when the address was never seen.
func (ix *macIndex) get(mac MAC) *roaring.Bitmap {
	return ix.buckets[mac]
}

// allKeys returns every distinct address, sorted lexicographically by
// byte sequence. The sort is the contract; map iteration order is not.
func (ix *macIndex) allKeys() []MAC {
	macs := make([]MAC, 0, len(ix.buckets))
	for mac := range ix.buckets {
		macs = append(macs, mac)
	}
	sort.Slice(macs, func(i, j int) bool {
		return bytes.Compare(macs[i][:], macs[j][:]) < 0
	})
	return macs
}

func (ix *macIndex) len() int {
	return len(ix.buckets)
}
