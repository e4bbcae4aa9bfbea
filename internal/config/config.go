package config

import (
	"flag"
)

type Config struct {
	RecordsCap int  // expected record count, preallocation hint
	MACsCap    int  // expected distinct MAC count, 0 - derive from RecordsCap
	Debug      bool // debug level logging
}

func NewConfig() *Config {
	r := flag.Int("RECORDS_CAP", 0, "expected record count (preallocation hint)")
	m := flag.Int("MACS_CAP", 0, "expected distinct MAC count (0 - derive from RECORDS_CAP)")
	d := flag.Bool("DEBUG", false, "debug level logging")
	flag.Parse()

	return &Config{
		RecordsCap: *r,
		MACsCap:    *m,
		Debug:      *d,
	}
}
