package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the IAM surface
//	-s string   base URL of the account service
//	-t int      request timeout in seconds
//	-i int      online check interval in seconds
//	-d string   path to the local session database
//
// os.Args is filtered to only the flags handled here, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IAMBaseURL, "a", cfg.IAMBaseURL, "base URL of the IAM surface")
	fs.StringVar(&cfg.AccountsBaseURL, "s", cfg.AccountsBaseURL, "base URL of the account service")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
