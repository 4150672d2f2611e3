package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"hywoma/internal/faults"
)

//go:embed sample_config.toml
var sampleConfig string

// Socket configures the client command socket.
type Socket struct {
	// Name is the socket filename created under XDG_RUNTIME_DIR.
	Name string `toml:"name"`
}

// Hyprland configures the compositor socket filenames. The directory is
// always $XDG_RUNTIME_DIR/hypr/$HYPRLAND_INSTANCE_SIGNATURE.
type Hyprland struct {
	CommandSocket string `toml:"command_socket"`
	EventSocket   string `toml:"event_socket"`
}

// Logging configures daemon log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for hywoma.
type Config struct {
	Socket   Socket   `toml:"socket"`
	Hyprland Hyprland `toml:"hyprland"`
	Logging  Logging  `toml:"logging"`

	runtimeDir        string
	instanceSignature string
}

// SampleConfig returns the annotated sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/hywoma/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults apply. The boolean result reports whether a file was
// read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, faults.Wrap(faults.ErrConfig, "config", "parse", resolvedPath, err)
		}
	}

	cfg.runtimeDir = strings.TrimSpace(os.Getenv("XDG_RUNTIME_DIR"))
	cfg.instanceSignature = strings.TrimSpace(os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"))

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// RuntimeDir returns XDG_RUNTIME_DIR or a configuration error when unset.
func (c *Config) RuntimeDir() (string, error) {
	if c.runtimeDir == "" {
		return "", faults.Wrap(faults.ErrConfig, "config", "env", "XDG_RUNTIME_DIR is not set", nil)
	}
	return c.runtimeDir, nil
}

// CommandSocketPath returns the path of the client command socket.
func (c *Config) CommandSocketPath() (string, error) {
	dir, err := c.RuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Socket.Name), nil
}

// LockFilePath returns the path of the daemon single-instance lock file.
func (c *Config) LockFilePath() (string, error) {
	dir, err := c.RuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hywoma.lock"), nil
}

func (c *Config) hyprDir() (string, error) {
	dir, err := c.RuntimeDir()
	if err != nil {
		return "", err
	}
	if c.instanceSignature == "" {
		return "", faults.Wrap(faults.ErrConfig, "config", "env", "HYPRLAND_INSTANCE_SIGNATURE is not set", nil)
	}
	return filepath.Join(dir, "hypr", c.instanceSignature), nil
}

// HyprCommandSocketPath returns the path of Hyprland's control socket.
func (c *Config) HyprCommandSocketPath() (string, error) {
	dir, err := c.hyprDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Hyprland.CommandSocket), nil
}

// HyprEventSocketPath returns the path of Hyprland's event stream socket.
func (c *Config) HyprEventSocketPath() (string, error) {
	dir, err := c.hyprDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Hyprland.EventSocket), nil
}

// ExpandPath resolves a leading ~ against the current user's home directory
// and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("absolutize path: %w", err)
	}
	return abs, nil
}
