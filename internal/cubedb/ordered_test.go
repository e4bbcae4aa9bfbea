package cubedb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func insertRSSIs(c *Cube, values ...int8) {
	for i, v := range values {
		c.Insert(Observation{RSSI: v, MAC: MAC{}, Timestamp: int64(i)})
	}
}

func Test_cube_QueryRssi(t *testing.T) {
	c := NewCube(getTestLogger())
	insertRSSIs(c, -50, -70, -70, -90)

	require.Len(t, c.QueryRSSI(-70), 2)
	require.Len(t, c.QueryRSSI(-50), 1)
	require.Empty(t, c.QueryRSSI(-60), "unknown key")
}

func Test_cube_QueryRssiRange(t *testing.T) {
	c := NewCube(getTestLogger())
	insertRSSIs(c, -50, -70, -90)

	got := c.QueryRSSIRange(-80, -60)
	require.Len(t, got, 1)
	require.EqualValues(t, -70, got[0].RSSI)

	gte := c.QueryRSSIGte(-70)
	require.Len(t, gte, 2)
	require.EqualValues(t, -70, gte[0].RSSI, "grouped by ascending key")
	require.EqualValues(t, -50, gte[1].RSSI)
}

func Test_cube_QueryRssiThresholds(t *testing.T) {
	c := NewCube(getTestLogger())
	insertRSSIs(c, -50, -70, -90)

	gt := c.QueryRSSIGt(-70)
	require.Len(t, gt, 1)
	require.EqualValues(t, -50, gt[0].RSSI)

	lt := c.QueryRSSILt(-70)
	require.Len(t, lt, 1)
	require.EqualValues(t, -90, lt[0].RSSI)

	lte := c.QueryRSSILte(-70)
	require.Len(t, lte, 2)
	require.EqualValues(t, -90, lte[0].RSSI)
	require.EqualValues(t, -70, lte[1].RSSI)
}

func Test_cube_QueryRssiGtDomainEdge(t *testing.T) {
	c := NewCube(getTestLogger())
	insertRSSIs(c, math.MaxInt8, 0, -1)

	require.Empty(t, c.QueryRSSIGt(math.MaxInt8), "nothing above the top of the dBm domain")
	require.Len(t, c.QueryRSSIGte(math.MaxInt8), 1)
}

// Range results come grouped by ascending key, not by insertion order
// across buckets.
func Test_cube_QueryRssiRangeGrouping(t *testing.T) {
	c := NewCube(getTestLogger())
	// ids:            0    1    2
	insertRSSIs(c, -50, -90, -50)

	got := c.QueryRSSIRange(-90, -50)
	require.Len(t, got, 3)
	require.EqualValues(t, -90, got[0].RSSI, "id 1, smallest key first")
	require.EqualValues(t, 1, got[0].Timestamp)
	require.EqualValues(t, 0, got[1].Timestamp, "then the -50 bucket in insertion order")
	require.EqualValues(t, 2, got[2].Timestamp)
}

func Test_cube_QueryTimestamp(t *testing.T) {
	c := sampleCube(t)

	require.Len(t, c.QueryTimestamp(1700000100), 1)
	require.Empty(t, c.QueryTimestamp(42))

	got := c.QueryTimeRange(1700000000, 1700000150)
	require.Len(t, got, 2)
	require.EqualValues(t, 1700000000, got[0].Timestamp)
	require.EqualValues(t, 1700000100, got[1].Timestamp)
}

func Test_cube_QueryTimeBeforeAfter(t *testing.T) {
	c := sampleCube(t)

	after := c.QueryTimeAfter(1700000100)
	require.Len(t, after, 1, "strictly after")
	require.EqualValues(t, 1700000200, after[0].Timestamp)

	before := c.QueryTimeBefore(1700000100)
	require.Len(t, before, 1, "strictly before")
	require.EqualValues(t, 1700000000, before[0].Timestamp)
}

func Test_cube_QueryTimeAfterDomainEdge(t *testing.T) {
	c := NewCube(getTestLogger())
	c.Insert(Observation{Timestamp: math.MaxInt64})

	require.Empty(t, c.QueryTimeAfter(math.MaxInt64))
	require.Len(t, c.QueryTimeRange(math.MaxInt64, math.MaxInt64), 1)
}
