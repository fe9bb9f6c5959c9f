package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrijs2005/snaphire/internal/flagx"
	"github.com/dmitrijs2005/snaphire/internal/timex"
)

// FileConfig is the DTO decoded from JSON or TOML. Pointer fields tell an
// omitted key apart from a zero value, so a file only overrides what it sets.
type FileConfig struct {
	StorageDir         *string         `json:"storage_dir" toml:"storage_dir"`
	Backend            *string         `json:"backend" toml:"backend"`
	ExclusiveCreate    *bool           `json:"exclusive_create" toml:"exclusive_create"`
	FoldUserCase       *bool           `json:"fold_user_case" toml:"fold_user_case"`
	FoldProfessionCase *bool           `json:"fold_profession_case" toml:"fold_profession_case"`
	SecretScheme       *string         `json:"secret_scheme" toml:"secret_scheme"`
	MaxAttempts        *int            `json:"max_attempts" toml:"max_attempts"`
	LoginInterval      *timex.Duration `json:"login_interval" toml:"login_interval"`
	LoginBurst         *int            `json:"login_burst" toml:"login_burst"`
	ConsoleWidth       *int            `json:"console_width" toml:"console_width"`
	MenuWidth          *int            `json:"menu_width" toml:"menu_width"`
	ClearScreen        *bool           `json:"clear_screen" toml:"clear_screen"`
	MaskPassword       *bool           `json:"mask_password" toml:"mask_password"`
	LogFile            *string         `json:"log_file" toml:"log_file"`
	LogLevel           *string         `json:"log_level" toml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Read and decode errors panic, like invalid flags do.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
		return &fc, nil
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.StorageDir, fc.StorageDir)
	setIf(&cfg.Backend, fc.Backend)
	setIf(&cfg.ExclusiveCreate, fc.ExclusiveCreate)
	setIf(&cfg.FoldUserCase, fc.FoldUserCase)
	setIf(&cfg.FoldProfessionCase, fc.FoldProfessionCase)
	setIf(&cfg.SecretScheme, fc.SecretScheme)
	setIf(&cfg.MaxAttempts, fc.MaxAttempts)
	if fc.LoginInterval != nil {
		cfg.LoginInterval = fc.LoginInterval.Duration
	}
	setIf(&cfg.LoginBurst, fc.LoginBurst)
	setIf(&cfg.ConsoleWidth, fc.ConsoleWidth)
	setIf(&cfg.MenuWidth, fc.MenuWidth)
	setIf(&cfg.ClearScreen, fc.ClearScreen)
	setIf(&cfg.MaskPassword, fc.MaskPassword)
	setIf(&cfg.LogFile, fc.LogFile)
	setIf(&cfg.LogLevel, fc.LogLevel)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
