package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/snaphire/internal/cryptox"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

const (
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds runtime settings for the SnapHire terminal app.
//
// Storage:
//   - StorageDir: directory holding user and profession files.
//   - Backend: "file" (flat files under StorageDir) or "memory" (nothing is kept).
//   - ExclusiveCreate: refuse to overwrite an existing credential file.
//   - FoldUserCase / FoldProfessionCase: lowercase identifiers before sanitizing.
//   - SecretScheme: "plain" or "argon2id".
//
// Interaction:
//   - MaxAttempts: re-prompts allowed per signup field, 0 for no limit.
//   - LoginInterval / LoginBurst: token bucket applied to login attempts.
//   - ConsoleWidth / MenuWidth: layout of centered text.
//   - ClearScreen, MaskPassword: terminal behavior.
//
// Logging: LogFile ("" logs to stderr) and LogLevel.
type Config struct {
	StorageDir         string
	Backend            string
	ExclusiveCreate    bool
	FoldUserCase       bool
	FoldProfessionCase bool
	SecretScheme       string

	MaxAttempts   int
	LoginInterval time.Duration
	LoginBurst    int

	ConsoleWidth int
	MenuWidth    int
	ClearScreen  bool
	MaskPassword bool

	LogFile  string
	LogLevel string
}

// LoadDefaults populates c with the classic SnapHire behavior:
// files in the working directory, plain secrets, case-sensitive user IDs and
// lowercased professions.
func (c *Config) LoadDefaults() {
	c.StorageDir = "."
	c.Backend = BackendFile
	c.ExclusiveCreate = false
	c.FoldUserCase = false
	c.FoldProfessionCase = true
	c.SecretScheme = cryptox.SchemePlain

	c.MaxAttempts = 3
	c.LoginInterval = time.Second
	c.LoginBurst = 3

	c.ConsoleWidth = 80
	c.MenuWidth = 40
	c.ClearScreen = true
	c.MaskPassword = true

	c.LogFile = "snaphire.log"
	c.LogLevel = "info"
}

// Validate reports settings the app cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendFile, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if _, err := cryptox.NewHasher(c.SecretScheme); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("max attempts must not be negative, got %d", c.MaxAttempts))
	}
	if c.LoginInterval < 0 {
		errs = append(errs, fmt.Errorf("login interval must not be negative, got %s", c.LoginInterval))
	}
	if c.LoginBurst < 1 {
		errs = append(errs, fmt.Errorf("login burst must be at least 1, got %d", c.LoginBurst))
	}
	if c.ConsoleWidth <= 0 || c.MenuWidth <= 0 {
		errs = append(errs, fmt.Errorf("console and menu widths must be positive, got %d/%d", c.ConsoleWidth, c.MenuWidth))
	}

	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if -c/-config is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
