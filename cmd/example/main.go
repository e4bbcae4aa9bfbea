package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"beaconcube/internal/config"
	"beaconcube/internal/cubedb"
)

func main() {
	conf := config.NewConfig()

	logger := zap.NewNop()
	if conf.Debug {
		var err error
		logger, err = zap.NewDevelopment() // or NewProduction, or NewDevelopment
		if err != nil {
			log.Fatal(err)
		}
	}

	cube := cubedb.NewCubeWithCapacity(logger, conf.RecordsCap, conf.MACsCap)

	macA := cubedb.MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	macB := cubedb.MAC{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}

	cube.Insert(cubedb.Observation{RSSI: -65, MAC: macA, Timestamp: 1700000000, Lat: 37.7749, Lon: -122.4194})
	cube.Insert(cubedb.Observation{RSSI: -72, MAC: macA, Timestamp: 1700000100, Lat: 37.7750, Lon: -122.4195})
	cube.Insert(cubedb.Observation{RSSI: -80, MAC: macB, Timestamp: 1700000200, Lat: 37.8044, Lon: -122.2712})

	fmt.Printf("Total observations: %d\n\n", cube.Len())

	fmt.Println("=== MAC Address Queries ===")
	byMac := cube.QueryMAC(macA)
	fmt.Printf("Observations for MAC %s: %d\n", macA, len(byMac))
	for _, obs := range byMac {
		fmt.Printf("  RSSI: %d dBm, Time: %d\n", obs.RSSI, obs.Timestamp)
	}

	macs := cube.AllMACs()
	fmt.Printf("\nUnique MACs: %d\n", len(macs))
	for _, mac := range macs {
		fmt.Printf("  %s\n", mac)
	}

	fmt.Println("\n=== RSSI Queries ===")
	fmt.Printf("Observations with RSSI = -72 dBm: %d\n", len(cube.QueryRSSI(-72)))
	fmt.Printf("Observations with RSSI in [-75, -65] dBm: %d\n", len(cube.QueryRSSIRange(-75, -65)))
	fmt.Printf("Observations with RSSI > -70 dBm (strong signals): %d\n", len(cube.QueryRSSIGt(-70)))
	fmt.Printf("Observations with RSSI <= -75 dBm (weak signals): %d\n", len(cube.QueryRSSILte(-75)))

	fmt.Println("\n=== Timestamp Queries ===")
	fmt.Printf("Observations at timestamp 1700000100: %d\n", len(cube.QueryTimestamp(1700000100)))
	fmt.Printf("Observations in time range [1700000000, 1700000150]: %d\n", len(cube.QueryTimeRange(1700000000, 1700000150)))
	fmt.Printf("Observations after timestamp 1700000100: %d\n", len(cube.QueryTimeAfter(1700000100)))

	fmt.Println("\n=== Geolocation Queries ===")
	fmt.Printf("Observations within 5km of SF coordinates: %d\n", len(cube.QueryGeoRadius(37.7749, -122.4194, 5000)))
	fmt.Printf("Observations within 20km of SF coordinates: %d\n", len(cube.QueryGeoRadius(37.7749, -122.4194, 20000)))
	fmt.Printf("Observations in bounding box: %d\n", len(cube.QueryGeoBBox(37.77, -122.42, 37.81, -122.27)))

	triangle := []cubedb.LatLon{
		{Lat: 37.7, Lon: -122.5},
		{Lat: 37.9, Lon: -122.5},
		{Lat: 37.8, Lon: -122.2},
	}
	fmt.Printf("Observations in polygon: %d\n", len(cube.QueryGeoPolygon(triangle)))

	fmt.Println("\n=== Multi-Dimensional Queries ===")
	combined := cube.QueryMulti(
		&macA,
		&cubedb.RSSIRange{Min: -70, Max: -60},
		&cubedb.TimeRange{Start: 1700000000, End: 1700000120},
		&cubedb.GeoRadius{Lat: 37.7749, Lon: -122.4194, RadiusM: 10000},
	)
	fmt.Printf("Complex query (MAC + RSSI + Time + Geo): %d results\n", len(combined))
	for _, obs := range combined {
		fmt.Printf("  RSSI: %d dBm, Lat: %.4f, Lon: %.4f, Time: %d\n", obs.RSSI, obs.Lat, obs.Lon, obs.Timestamp)
	}

	fmt.Println("\n=== Direct Record Access ===")
	if obs, ok := cube.Get(0); ok {
		fmt.Printf("Record 0: RSSI=%d dBm, MAC=%s\n", obs.RSSI, obs.MAC)
	}

	st := cube.Stats()
	fmt.Printf("\nStats: %d records, %d MACs, %d RSSI values, %d timestamps\n",
		st.Records, st.UniqueMACs, st.UniqueRSSIValues, st.UniqueTimestamps)
}
