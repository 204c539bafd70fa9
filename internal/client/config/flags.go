package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   server base URL (e.g., "http://127.0.0.1:3000")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "a", config.ServerBaseURL, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
