// Package config loads the harness configuration from the user's dotfile
// directory. The harness core treats the result as opaque; only the two
// required sections are validated here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/leftnode/throwback"
)

var (
	// ErrMissing means no configuration file exists at the expected path.
	ErrMissing = errors.New("configuration not found")
	// ErrInvalid means the configuration could not be parsed or lacks a
	// required section.
	ErrInvalid = errors.New("configuration invalid")
)

// Dir returns the dotfile directory the configuration is read from.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".throwback"), nil
}

// Load reads config.yml from the dotfile directory. An optional .env file
// next to it is loaded first so database credentials can stay out of the
// config file and be referenced as ${VAR}.
func Load() (*throwback.Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadDir(dir)
}

// LoadDir loads the configuration from an explicit directory.
func LoadDir(dir string) (*throwback.Config, error) {
	// Missing .env is fine, credentials may already be in the environment.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	path := filepath.Join(dir, "config.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg throwback.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.Parameters == nil {
		return nil, fmt.Errorf("%w: missing parameters section", ErrInvalid)
	}
	if cfg.Databases == nil {
		return nil, fmt.Errorf("%w: missing databases section", ErrInvalid)
	}

	expandCredentials(&cfg)
	return &cfg, nil
}

// expandCredentials resolves ${VAR} references in database connection
// fields from the environment.
func expandCredentials(cfg *throwback.Config) {
	for name, db := range cfg.Databases {
		db.Host = os.ExpandEnv(db.Host)
		db.Port = os.ExpandEnv(db.Port)
		db.Name = os.ExpandEnv(db.Name)
		db.Username = os.ExpandEnv(db.Username)
		db.Password = os.ExpandEnv(db.Password)
		cfg.Databases[name] = db
	}
}
