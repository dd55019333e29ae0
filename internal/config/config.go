// Package config loads the server configuration from a TOML file, with
// defaults for every field so an empty file is a valid configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Server holds everything the HTTP server needs at startup.
type Server struct {
	Addr     string
	LUTPath  string
	DBPath   string
	LogLevel string
}

// DefaultServer returns the configuration used when no file is given.
func DefaultServer() Server {
	return Server{
		Addr:     ":8080",
		LUTPath:  DefaultLUTPath(),
		LogLevel: "info",
	}
}

type fileConfig struct {
	Addr     string `toml:"addr"`
	LUTPath  string `toml:"lut_path"`
	DBPath   string `toml:"db_path"`
	LogLevel string `toml:"log_level"`
}

// LoadServer reads a TOML file and overlays it on the defaults. An empty
// path returns the defaults unchanged.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Server{}, fmt.Errorf("load server config: %w", err)
	}

	if meta.IsDefined("addr") {
		if v := strings.TrimSpace(raw.Addr); v != "" {
			cfg.Addr = v
		}
	}
	if meta.IsDefined("lut_path") {
		if v := strings.TrimSpace(raw.LUTPath); v != "" {
			cfg.LUTPath = v
		}
	}
	if meta.IsDefined("db_path") {
		cfg.DBPath = strings.TrimSpace(raw.DBPath)
	}
	if meta.IsDefined("log_level") {
		if v := strings.TrimSpace(raw.LogLevel); v != "" {
			cfg.LogLevel = v
		}
	}

	return cfg, nil
}

// DefaultLUTPath is ~/.blzcheck/blz.lut, or a file in the working directory
// when the home directory cannot be determined.
func DefaultLUTPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "blz.lut"
	}
	return filepath.Join(home, ".blzcheck", "blz.lut")
}
