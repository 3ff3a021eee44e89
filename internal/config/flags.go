package config

import (
	"flag"
	"os"
	"time"

	"securebank/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-m string   metrics bind address (empty disables the listener)
//	-t int      idle timeout, seconds
//	-i int      idle check interval, seconds
//	-l string   log level (debug, info, warn, error)
//
// Args are filtered with flagx.FilterArgs first so flags owned elsewhere do
// not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics bind address")
	idleTimeout := fs.Int("t", int(config.IdleTimeout.Seconds()), "idle timeout (in seconds)")
	checkInterval := fs.Int("i", int(config.IdleCheckInterval.Seconds()), "idle check interval (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.IdleTimeout = time.Duration(*idleTimeout) * time.Second
	config.IdleCheckInterval = time.Duration(*checkInterval) * time.Second
}
