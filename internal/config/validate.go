package config

import (
	"fmt"
	"strings"

	"hywoma/internal/faults"
)

// Validate ensures the configuration is usable. Environment requirements are
// deliberately not checked here; path accessors report those so client-only
// commands which never touch Hyprland sockets still work.
func (c *Config) Validate() error {
	if err := c.validateSocket(); err != nil {
		return err
	}
	if err := c.validateHyprland(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSocket() error {
	name := strings.TrimSpace(c.Socket.Name)
	if name == "" {
		return faults.Wrap(faults.ErrConfig, "config", "validate", "socket.name must be set", nil)
	}
	if strings.ContainsRune(name, '/') {
		return faults.Wrap(faults.ErrConfig, "config", "validate", "socket.name must be a filename, not a path", nil)
	}
	return nil
}

func (c *Config) validateHyprland() error {
	if strings.TrimSpace(c.Hyprland.CommandSocket) == "" {
		return faults.Wrap(faults.ErrConfig, "config", "validate", "hyprland.command_socket must be set", nil)
	}
	if strings.TrimSpace(c.Hyprland.EventSocket) == "" {
		return faults.Wrap(faults.ErrConfig, "config", "validate", "hyprland.event_socket must be set", nil)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error", "":
	default:
		return faults.Wrap(faults.ErrConfig, "config", "validate",
			fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level), nil)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json", "":
	default:
		return faults.Wrap(faults.ErrConfig, "config", "validate",
			fmt.Sprintf("logging.format %q is not one of console, json", c.Logging.Format), nil)
	}
	return nil
}
