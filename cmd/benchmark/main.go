package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"beaconcube/internal/cubedb"
)

func main() {
	n := flag.Int("n", 100000, "Number of observations to insert")
	q := flag.Int("q", 1000, "Number of queries per family")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	fmt.Printf("BeaconCube Benchmark (N=%d, Q=%d)\n", *n, *q)
	fmt.Println("---------------------------------------------------")

	rng := rand.New(rand.NewSource(*seed))
	cube := cubedb.NewCubeWithCapacity(zap.NewNop(), *n, 0)

	obs := make([]cubedb.Observation, *n)
	for i := range obs {
		obs[i] = cubedb.Observation{
			RSSI: int8(-30 - rng.Intn(70)),
			// ~n/256 distinct addresses
			MAC:       cubedb.MAC{0xAA, 0, 0, byte(rng.Intn(256)), byte(i >> 16), byte(i >> 8)},
			Timestamp: 1700000000 + int64(i),
			// scatter around the SF bay
			Lat: 37.7 + rng.Float64()*0.2,
			Lon: -122.5 + rng.Float64()*0.3,
		}
	}

	start := time.Now()
	for _, o := range obs {
		cube.Insert(o)
	}
	insertDur := time.Since(start)
	fmt.Printf(">> Insert:      %v | %.0f ops/sec\n", insertDur, float64(*n)/insertDur.Seconds())

	st := cube.Stats()
	fmt.Printf("   Cardinality: %d records, %d MACs, %d RSSI values, %d timestamps\n",
		st.Records, st.UniqueMACs, st.UniqueRSSIValues, st.UniqueTimestamps)

	runQueries(">> MAC exact:   ", *q, func(i int) int {
		return len(cube.QueryMAC(obs[rng.Intn(len(obs))].MAC))
	})
	runQueries(">> RSSI range:  ", *q, func(i int) int {
		return len(cube.QueryRSSIRange(-80, -60))
	})
	runQueries(">> Time range:  ", *q, func(i int) int {
		t0 := 1700000000 + int64(rng.Intn(*n))
		return len(cube.QueryTimeRange(t0, t0+1000))
	})
	runQueries(">> Geo radius:  ", *q, func(i int) int {
		return len(cube.QueryGeoRadius(37.7749, -122.4194, 5000))
	})
	runQueries(">> Multi (all): ", *q, func(i int) int {
		mac := obs[rng.Intn(len(obs))].MAC
		return len(cube.QueryMulti(
			&mac,
			&cubedb.RSSIRange{Min: -80, Max: -40},
			&cubedb.TimeRange{Start: 1700000000, End: 1700000000 + int64(*n)},
			&cubedb.GeoRadius{Lat: 37.7749, Lon: -122.4194, RadiusM: 20000},
		))
	})
	fmt.Println("---------------------------------------------------")
}

func runQueries(label string, q int, fn func(i int) int) {
	var matched int
	start := time.Now()
	for i := 0; i < q; i++ {
		matched += fn(i)
	}
	dur := time.Since(start)
	fmt.Printf("%s%v | %.0f qps | avg %d hits\n", label, dur, float64(q)/dur.Seconds(), matched/q)
}
