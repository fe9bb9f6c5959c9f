package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/snaphire/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags defined
// here are picked out of os.Args, so -c/-config does not confuse the parser.
// Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-s", "-m", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDir, "d", cfg.StorageDir, "storage directory")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file, memory)")
	fs.StringVar(&cfg.SecretScheme, "s", cfg.SecretScheme, "secret scheme (plain, argon2id)")
	fs.IntVar(&cfg.MaxAttempts, "m", cfg.MaxAttempts, "attempts per signup field, 0 for unlimited")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file, empty for stderr")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
