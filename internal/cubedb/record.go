package cubedb

import (
	"fmt"
	"net"
)

// RecordID the dense identifier of an observation: its position in the
// record store, assigned at insert, starting at 0, never reused.
type RecordID uint32

// MAC the 6-byte hardware address of a BLE transmitter.
type MAC [6]byte

// String renders the address in the usual AA:BB:CC:DD:EE:FF notation.
func (m MAC) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

// ParseMAC parses AA:BB:CC:DD:EE:FF notation (case insensitive).
func ParseMAC(s string) (MAC, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MAC{}, fmt.Errorf("parse mac %q: %w", s, err)
	}
	if len(hw) != len(MAC{}) {
		return MAC{}, fmt.Errorf("parse mac %q: want 6 bytes, got %d", s, len(hw))
	}
	var m MAC
	copy(m[:], hw)
	return m, nil
}

// Observation a single BLE proximity reading. Immutable once inserted.
// Field values are stored as given, no range checks: implausible
// coordinates or power levels are the caller's business.
type Observation struct {
	RSSI      int8    // received signal strength, dBm
	MAC       MAC     // transmitter hardware address
	Timestamp int64   // caller-defined unit (unix seconds, micros, ...)
	Lat       float64 // degrees
	Lon       float64 // degrees
}

// RSSIRange an inclusive [Min, Max] signal strength filter.
type RSSIRange struct {
	Min, Max int8
}

// TimeRange an inclusive [Start, End] timestamp filter.
type TimeRange struct {
	Start, End int64
}

// GeoRadius a great-circle distance filter around a center point.
type GeoRadius struct {
	Lat, Lon float64
	RadiusM  float64
}

// LatLon a polygon vertex in degrees.
type LatLon struct {
	Lat, Lon float64
}
