package cubedb

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cube the in-memory 4-dimensional BLE observation store.
//
// The record store owns the canonical data; the four indices hold
// record ids only and stay consistent because Insert is the single
// mutation path and threads every new id through all of them before
// returning. Queries never mutate.
//
// IMPORTANT: Cube does not provide thread safety. The caller must
// serialize all inserts and must not query while an insert is in
// flight.
type Cube struct {
	guid  string
	sugar *zap.SugaredLogger

	records *recordStore
	macs    *macIndex
	rssi    *orderedIndex[int8]
	times   *orderedIndex[int64]
	geo     *geoIndex
}

// NewCube creates an empty cube.
func NewCube(logger *zap.Logger) *Cube {
	return NewCubeWithCapacity(logger, 0, 0)
}

// NewCubeWithCapacity creates an empty cube preallocated for the
// expected record and distinct-MAC counts. The hints are a performance
// knob only; zero means no preallocation, a missing MAC hint defaults
// to records/100.
func NewCubeWithCapacity(logger *zap.Logger, records, macs int) *Cube {
	if macs == 0 {
		macs = records / 100
	}
	c := &Cube{
		guid:    uuid.New().String(),
		sugar:   logger.Sugar(),
		records: newRecordStore(records),
		macs:    newMACIndex(macs),
		rssi:    newOrderedIndex[int8](),
		times:   newOrderedIndex[int64](),
		geo:     newGeoIndex(),
	}
	c.sugar.Debugw("new cube", "guid", c.guid, "records_cap", records, "macs_cap", macs)
	return c
}

// Insert appends obs and threads its id into all four indices.
func (c *Cube) Insert(obs Observation) RecordID {
	id := c.records.append(obs)
	c.macs.add(obs.MAC, id)
	c.rssi.add(obs.RSSI, id)
	c.times.add(obs.Timestamp, id)
	c.geo.add(obs.Lat, obs.Lon, id)

	c.sugar.Debugw("insert", "id", id, "mac", obs.MAC)
	return id
}

// Get returns the record for id; ok is false for out-of-range ids.
func (c *Cube) Get(id RecordID) (Observation, bool) {
	return c.records.get(id)
}

// Len the number of inserted observations.
func (c *Cube) Len() int {
	return c.records.len()
}

func (c *Cube) IsEmpty() bool {
	return c.records.len() == 0
}

// ========== MAC queries ==========

// QueryMAC returns all observations of one address, in insertion order.
func (c *Cube) QueryMAC(mac MAC) []Observation {
	return c.resolveSet(c.macs.get(mac))
}

// AllMACs returns every distinct observed address, sorted
// lexicographically by byte sequence.
func (c *Cube) AllMACs() []MAC {
	return c.macs.allKeys()
}

// ========== RSSI queries ==========

// QueryRSSI returns the observations with exactly this signal strength.
func (c *Cube) QueryRSSI(rssi int8) []Observation {
	return c.resolveSet(c.rssi.exact(rssi))
}

// QueryRSSIRange inclusive [min, max], results grouped by ascending
// RSSI value, insertion order within a value.
func (c *Cube) QueryRSSIRange(min, max int8) []Observation {
	return c.resolveBuckets(c.rssi.ascendRange(min, max))
}

// QueryRSSIGt strictly greater than threshold. A threshold at the top
// of the dBm domain has nothing above it and returns empty.
func (c *Cube) QueryRSSIGt(threshold int8) []Observation {
	return c.resolveBuckets(c.rssi.ascendGreater(threshold, false))
}

// QueryRSSIGte greater than or equal to threshold.
func (c *Cube) QueryRSSIGte(threshold int8) []Observation {
	return c.resolveBuckets(c.rssi.ascendGreater(threshold, true))
}

// QueryRSSILt strictly less than threshold.
func (c *Cube) QueryRSSILt(threshold int8) []Observation {
	return c.resolveBuckets(c.rssi.ascendLess(threshold, false))
}

// QueryRSSILte less than or equal to threshold.
func (c *Cube) QueryRSSILte(threshold int8) []Observation {
	return c.resolveBuckets(c.rssi.ascendLess(threshold, true))
}

// ========== timestamp queries ==========

// QueryTimestamp returns the observations taken at exactly t.
func (c *Cube) QueryTimestamp(t int64) []Observation {
	return c.resolveSet(c.times.exact(t))
}

// QueryTimeRange inclusive [start, end], grouped by ascending
// timestamp.
func (c *Cube) QueryTimeRange(start, end int64) []Observation {
	return c.resolveBuckets(c.times.ascendRange(start, end))
}

// QueryTimeAfter strictly after t.
func (c *Cube) QueryTimeAfter(t int64) []Observation {
	return c.resolveBuckets(c.times.ascendGreater(t, false))
}

// QueryTimeBefore strictly before t.
func (c *Cube) QueryTimeBefore(t int64) []Observation {
	return c.resolveBuckets(c.times.ascendLess(t, false))
}

// ========== geo queries ==========

// QueryGeoRadius returns the observations within radiusM meters of the
// center, by great-circle distance. Two phases: a square degree
// envelope (metersPerDegree, deliberately flat) prunes candidates,
// haversine against the stored coordinates decides.
func (c *Cube) QueryGeoRadius(lat, lon, radiusM float64) []Observation {
	return c.resolveSet(c.geoRadiusSet(lat, lon, radiusM))
}

func (c *Cube) geoRadiusSet(lat, lon, radiusM float64) *roaring.Bitmap {
	radiusDeg := radiusM / metersPerDegree
	candidates := c.geo.envelope(lat-radiusDeg, lon-radiusDeg, lat+radiusDeg, lon+radiusDeg)

	hits := roaring.New()
	it := candidates.Iterator()
	for it.HasNext() {
		id := it.Next()
		obs, ok := c.records.get(RecordID(id))
		if !ok {
			continue
		}
		if haversineDistance(lat, lon, obs.Lat, obs.Lon) <= radiusM {
			hits.Add(id)
		}
	}
	return hits
}

// QueryGeoBBox exact axis-aligned envelope containment, boundaries
// included, no distance refinement.
func (c *Cube) QueryGeoBBox(minLat, minLon, maxLat, maxLon float64) []Observation {
	return c.resolveSet(c.geo.envelope(minLat, minLon, maxLat, maxLon))
}

// QueryGeoPolygon returns the observations inside a simple polygon.
// Fewer than 3 vertices is degenerate input and yields an empty
// result, not an error. The vertices' bounding box prunes candidates
// before the ray-casting test.
func (c *Cube) QueryGeoPolygon(polygon []LatLon) []Observation {
	if len(polygon) < 3 {
		return []Observation{}
	}

	minLat, minLon, maxLat, maxLon := polygonBounds(polygon)
	candidates := c.geo.envelope(minLat, minLon, maxLat, maxLon)

	out := make([]Observation, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		obs, ok := c.records.get(RecordID(it.Next()))
		if !ok {
			continue
		}
		if pointInPolygon(obs.Lat, obs.Lon, polygon) {
			out = append(out, obs)
		}
	}
	return out
}

// ========== multi-dimensional query ==========

// QueryMulti narrows one candidate set through up to four dimensions;
// nil filters are no-ops. The base set is the MAC bucket when a MAC is
// given, otherwise the whole id range, and each further dimension is
// intersected as an independently computed membership set, in the
// fixed order MAC, RSSI, timestamp, geo. Every set is in ascending id
// order, so the intersection keeps the base set's order. With no
// filters at all this is a full scan in id order.
func (c *Cube) QueryMulti(mac *MAC, rssi *RSSIRange, tr *TimeRange, geo *GeoRadius) []Observation {
	var candidates *roaring.Bitmap
	if mac != nil {
		if b := c.macs.get(*mac); b != nil {
			candidates = b.Clone()
		} else {
			candidates = roaring.New()
		}
	} else {
		candidates = roaring.New()
		if n := c.records.len(); n > 0 {
			candidates.AddRange(0, uint64(n))
		}
	}

	if rssi != nil {
		candidates.And(unionOf(c.rssi.ascendRange(rssi.Min, rssi.Max)))
	}
	if tr != nil {
		candidates.And(unionOf(c.times.ascendRange(tr.Start, tr.End)))
	}
	if geo != nil {
		candidates.And(c.geoRadiusSet(geo.Lat, geo.Lon, geo.RadiusM))
	}

	return c.resolveSet(candidates)
}

// ========== id resolution ==========

// resolveSet materializes an id set in ascending id order. Ids missing
// from the store are skipped silently.
func (c *Cube) resolveSet(ids *roaring.Bitmap) []Observation {
	if ids == nil {
		return []Observation{}
	}
	out := make([]Observation, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		if obs, ok := c.records.get(RecordID(it.Next())); ok {
			out = append(out, obs)
		}
	}
	return out
}

// resolveBuckets materializes a key-ordered bucket list: results come
// grouped by ascending key, insertion order within each bucket.
func (c *Cube) resolveBuckets(buckets []*roaring.Bitmap) []Observation {
	out := []Observation{}
	for _, ids := range buckets {
		it := ids.Iterator()
		for it.HasNext() {
			if obs, ok := c.records.get(RecordID(it.Next())); ok {
				out = append(out, obs)
			}
		}
	}
	return out
}
