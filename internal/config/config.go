package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/campusevents/cli/internal/api"
)

const (
	dirName    = "campusevents"
	fileName   = "config.json"
	dirPerms   = 0700
	filePerms  = 0600
	DefaultURL = "http://localhost:8000"
)

// Config holds persisted CLI configuration, including the logged-in user's
// identity. It is the session holder: login writes it, logout clears it, and
// every command reads it before talking to the server.
type Config struct {
	ServerURL string    `json:"server_url"`
	User      *api.User `json:"user,omitempty"`
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the config from disk. Returns a zero-value Config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	p, err := Path()
	if err != nil {
		return &Config{ServerURL: DefaultURL}, nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{ServerURL: DefaultURL}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultURL
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), dirPerms); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, filePerms)
}

// Clear removes the config file, ending the session.
func Clear() error {
	p, err := Path()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// HasSession reports whether a user is logged in.
func (c *Config) HasSession() bool {
	return c.User != nil && c.User.ID != ""
}

// CurrentUser returns the logged-in user, if any.
func (c *Config) CurrentUser() (api.User, bool) {
	if !c.HasSession() {
		return api.User{}, false
	}
	return *c.User, true
}
