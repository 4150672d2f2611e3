package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"hywoma/internal/config"
	"hywoma/internal/faults"
	"hywoma/internal/ipc"
)

type commandContext struct {
	socketFlag *string
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(socketFlag, configFlag *string) *commandContext {
	return &commandContext{
		socketFlag: socketFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configPath, c.configExists, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// commandSocketPath resolves the daemon command socket: the --socket flag
// wins, otherwise the configured name under XDG_RUNTIME_DIR.
func (c *commandContext) commandSocketPath() (string, error) {
	if c.socketFlag != nil {
		if path := strings.TrimSpace(*c.socketFlag); path != "" {
			return path, nil
		}
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.CommandSocketPath()
}

// send pushes one command onto the daemon socket. There is no response to
// wait for; delivery is the only acknowledgement.
func (c *commandContext) send(command []string) error {
	socket, err := c.commandSocketPath()
	if err != nil {
		return err
	}
	if err := ipc.Send(socket, command); err != nil {
		if errors.Is(err, faults.ErrConnection) {
			return fmt.Errorf("connect to daemon at %s: %w (start it with `hywoma serve`)", socket, err)
		}
		return err
	}
	return nil
}
