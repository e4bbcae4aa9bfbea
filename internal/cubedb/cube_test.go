package cubedb

import (
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"beaconcube/internal/config"
)

var (
	once   sync.Once
	logger *zap.Logger

	onceConf sync.Once
	conf     *config.Config
)

func getTestLogger() *zap.Logger {
	once.Do(func() {
		var err error
		logger, err = zap.NewProduction() // or NewProduction, or NewDevelopment,
		if err != nil {
			log.Fatal(err)
		}
	})

	return logger
}

func getConfig() *config.Config {
	onceConf.Do(func() {
		conf = config.NewConfig()
	})
	return conf
}

var (
	macA = MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	macB = MAC{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
)

// sampleCube the three observations of the usage walk-through: two
// readings of macA around San Francisco, one of macB in Oakland.
func sampleCube(t *testing.T) *Cube {
	t.Helper()
	conf := getConfig()
	c := NewCubeWithCapacity(getTestLogger(), conf.RecordsCap, conf.MACsCap)

	c.Insert(Observation{RSSI: -65, MAC: macA, Timestamp: 1700000000, Lat: 37.7749, Lon: -122.4194})
	c.Insert(Observation{RSSI: -72, MAC: macA, Timestamp: 1700000100, Lat: 37.7750, Lon: -122.4195})
	c.Insert(Observation{RSSI: -80, MAC: macB, Timestamp: 1700000200, Lat: 37.8044, Lon: -122.2712})
	return c
}

func Test_cube_InsertGet(t *testing.T) {
	c := NewCube(getTestLogger())
	require.NotNil(t, c)
	require.True(t, c.IsEmpty())

	obs := []Observation{
		{RSSI: -65, MAC: macA, Timestamp: 1700000000, Lat: 37.7749, Lon: -122.4194},
		{RSSI: -72, MAC: macA, Timestamp: 1700000100, Lat: 37.7750, Lon: -122.4195},
		{RSSI: -80, MAC: macB, Timestamp: 1700000200, Lat: 37.8044, Lon: -122.2712},
	}

	for i, o := range obs {
		id := c.Insert(o)
		require.EqualValues(t, i, id, "ids must follow insertion order")
	}
	require.Equal(t, 3, c.Len())
	require.False(t, c.IsEmpty())

	for i, want := range obs {
		got, ok := c.Get(RecordID(i))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := c.Get(RecordID(len(obs)))
	require.False(t, ok, "out-of-range id is absence, not error")
}

func Test_cube_QueryMac(t *testing.T) {
	c := sampleCube(t)

	got := c.QueryMAC(macA)
	require.Len(t, got, 2)
	require.EqualValues(t, -65, got[0].RSSI, "insertion order inside a bucket")
	require.EqualValues(t, -72, got[1].RSSI)

	require.Len(t, c.QueryMAC(macB), 1)
	require.Empty(t, c.QueryMAC(MAC{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x00}), "unknown key")
}

func Test_cube_AllMacs(t *testing.T) {
	c := sampleCube(t)

	macs := c.AllMACs()
	require.Len(t, macs, 2, "distinct addresses only")
	require.Equal(t, macB, macs[0], "lexicographic byte order")
	require.Equal(t, macA, macs[1])
}

func Test_cube_QueryMulti(t *testing.T) {
	c := sampleCube(t)

	// no filters - full scan in id order
	all := c.QueryMulti(nil, nil, nil, nil)
	require.Len(t, all, 3)
	require.EqualValues(t, -65, all[0].RSSI)
	require.EqualValues(t, -72, all[1].RSSI)
	require.EqualValues(t, -80, all[2].RSSI)

	// mac only
	require.Len(t, c.QueryMulti(&macA, nil, nil, nil), 2)

	// all four dimensions: strong macA readings near SF in a 2 minute window
	got := c.QueryMulti(
		&macA,
		&RSSIRange{Min: -70, Max: -60},
		&TimeRange{Start: 1700000000, End: 1700000120},
		&GeoRadius{Lat: 37.7749, Lon: -122.4194, RadiusM: 10000},
	)
	require.Len(t, got, 1)
	require.EqualValues(t, -65, got[0].RSSI)

	// unknown mac short-circuits everything else
	unknown := MAC{1, 2, 3, 4, 5, 6}
	require.Empty(t, c.QueryMulti(&unknown, &RSSIRange{Min: -100, Max: 0}, nil, nil))
}

func Test_cube_QueryIdempotence(t *testing.T) {
	c := sampleCube(t)

	first := c.QueryMulti(&macA, &RSSIRange{Min: -90, Max: -60}, nil, nil)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, c.QueryMulti(&macA, &RSSIRange{Min: -90, Max: -60}, nil, nil))
	}

	r1 := c.QueryRSSIRange(-90, -60)
	require.Equal(t, r1, c.QueryRSSIRange(-90, -60))
}

func Test_cube_Stats(t *testing.T) {
	c := sampleCube(t)
	c.Insert(Observation{RSSI: -65, MAC: macA, Timestamp: 1700000000, Lat: 0, Lon: 0})

	st := c.Stats()
	require.Equal(t, 4, st.Records)
	require.Equal(t, 2, st.UniqueMACs)
	require.Equal(t, 3, st.UniqueRSSIValues, "-65 occurs twice")
	require.Equal(t, 3, st.UniqueTimestamps)
	require.Equal(t, 4, st.GeoPoints)
}
