package cubedb

// recordStore the append-only arena holding the canonical copy of
// every observation. A record's identity is its slice position; the
// indices hold these positions and nothing else, so the store is the
// single owner of all record data.
type recordStore struct {
	records []Observation
}

func newRecordStore(capacity int) *recordStore {
	return &recordStore{
		records: make([]Observation, 0, capacity),
	}
}

// append stores obs and returns its assigned id (monotonic, from 0).
func (s *recordStore) append(obs Observation) RecordID {
	id := RecordID(len(s.records))
	s.records = append(s.records, obs)
	return id
}

// get reports absence for out-of-range ids, never an error.
func (s *recordStore) get(id RecordID) (Observation, bool) {
	if int(id) >= len(s.records) {
		return Observation{}, false
	}
	return s.records[int(id)], true
}

func (s *recordStore) len() int {
	return len(s.records)
}
