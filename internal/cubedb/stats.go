package cubedb

// Stats a point-in-time snapshot of store and index cardinalities.
type Stats struct {
	Records          int
	UniqueMACs       int
	UniqueRSSIValues int
	UniqueTimestamps int
	GeoPoints        int
}

func (c *Cube) Stats() Stats {
	return Stats{
		Records:          c.records.len(),
		UniqueMACs:       c.macs.len(),
		UniqueRSSIValues: c.rssi.len(),
		UniqueTimestamps: c.times.len(),
		GeoPoints:        c.geo.len(),
	}
}
