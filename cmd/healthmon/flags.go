package main

import (
	"flag"
	"time"
)

// Flags holds the parsed command line options
type Flags struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Duration   time.Duration
}

func parseFlags() *Flags {
	f := &Flags{}

	flag.StringVar(&f.ConfigPath, "config", "", "Path to YAML configuration file")
	flag.StringVar(&f.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flag.StringVar(&f.LogFormat, "log-format", "", "Log format override (json, text)")
	flag.DurationVar(&f.Duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	flag.Parse()

	return f
}
