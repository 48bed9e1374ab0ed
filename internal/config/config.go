package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields kite needs to reach the catalog server.
type Config struct {
	Endpoint string
	LogFile  string
}

const (
	defaultConfigPath = "~/.config/kite/config.toml"
	defaultEndpoint   = "http://127.0.0.1:4848"
	defaultLogFile    = "~/.local/share/kite/kite.log"
)

// Load locates and parses the kite config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Endpoint: defaultEndpoint, LogFile: mustExpand(defaultLogFile)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint string `toml:"endpoint"`
		LogFile  string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
