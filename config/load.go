package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptpager/processor"
)

// DefaultEnvFile is loaded when present and no env file is named.
const DefaultEnvFile = ".env"

// LoadOptions names the optional configuration sources.
type LoadOptions struct {
	// File is a YAML (.yaml, .yml) or TOML (.toml) config file. Optional.
	File string

	// EnvFile is a dotenv file. When empty, ".env" is loaded if it exists.
	EnvFile string
}

// Load builds a Config from defaults, the config file, the env file and the
// environment, in increasing order of precedence. Variables already present
// in the environment are never overridden by the env file.
//
// Load does not validate; call Validate or Build.
func Load(opts LoadOptions) (Config, error) {
	cfg := DefaultConfig()

	if opts.File != "" {
		if err := LoadFile(opts.File, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return cfg, err
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML or TOML file into cfg, chosen by extension.
// Fields missing from the file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &processor.ConfigurationError{Field: "config file", Err: err}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		err = fmt.Errorf("unsupported config format %q (valid: .yaml, .yml, .toml)", ext)
	}
	if err != nil {
		return &processor.ConfigurationError{Field: "config file", Err: fmt.Errorf("%s: %w", path, err)}
	}
	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &processor.ConfigurationError{Field: "env file", Err: err}
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return &processor.ConfigurationError{Field: "env file", Err: err}
	}
	return nil
}
