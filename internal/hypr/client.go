package hypr

import (
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"sort"
	"strconv"
	"strings"

	"hywoma/internal/faults"
	"hywoma/internal/logging"
	"hywoma/internal/workspace"
)

// Client issues commands against Hyprland's control socket. Safe for
// concurrent use; every call opens its own connection.
type Client struct {
	socketPath string
	logger     *slog.Logger
}

// NewClient returns a client for the control socket at socketPath.
func NewClient(socketPath string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{socketPath: socketPath, logger: logger}
}

// Call writes a raw command and returns the full response text. The
// connection is read until Hyprland closes it; there is no framing and no
// retry.
func (c *Client) Call(command string) (string, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return "", faults.Wrap(faults.ErrConnection, "hyprctl", "dial", c.socketPath, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(command)); err != nil {
		return "", faults.Wrap(faults.ErrIO, "hyprctl", "write", command, err)
	}
	data, err := io.ReadAll(conn)
	if err != nil {
		return "", faults.Wrap(faults.ErrIO, "hyprctl", "read", command, err)
	}

	c.logger.Debug("hyprctl: call",
		logging.String("command", command),
		logging.Int("response_bytes", len(data)))
	return string(data), nil
}

// Monitor is one entry of the -j/monitors response. Only the fields hywoma
// consumes are decoded.
type Monitor struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	X       int    `json:"x"`
	Focused bool   `json:"focused"`
}

// MonitorsSortedByX queries the monitor list and returns it stable-sorted
// ascending by horizontal position. Positions into this slice are what
// monitor-related client commands address.
func (c *Client) MonitorsSortedByX() ([]Monitor, error) {
	out, err := c.Call("-j/monitors")
	if err != nil {
		return nil, err
	}

	var monitors []Monitor
	if err := json.Unmarshal([]byte(out), &monitors); err != nil {
		return nil, faults.Wrap(faults.ErrProtocol, "hyprctl", "monitors", "unexpected response shape", err)
	}
	sort.SliceStable(monitors, func(i, j int) bool {
		return monitors[i].X < monitors[j].X
	})
	return monitors, nil
}

// MonitorIDs projects the Hyprland monitor ids out of a monitor list,
// preserving order.
func MonitorIDs(monitors []Monitor) []uint64 {
	ids := make([]uint64, len(monitors))
	for i, m := range monitors {
		ids[i] = m.ID
	}
	return ids
}

// ActiveWorkspace queries the currently active workspace and decodes its id.
func (c *Client) ActiveWorkspace() (workspace.Workspace, error) {
	out, err := c.Call("-j/activeworkspace")
	if err != nil {
		return workspace.Workspace{}, err
	}

	var payload struct {
		ID *uint64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		return workspace.Workspace{}, faults.Wrap(faults.ErrProtocol, "hyprctl", "activeworkspace", "unexpected response shape", err)
	}
	if payload.ID == nil {
		return workspace.Workspace{}, faults.Wrap(faults.ErrProtocol, "hyprctl", "activeworkspace", "id field absent", nil)
	}
	return workspace.FromID(*payload.ID), nil
}

// Dispatch sends a one-way dispatch command. The acknowledgement body is
// drained and discarded; Hyprland holds the connection until fully read.
func (c *Client) Dispatch(args ...string) error {
	_, err := c.Call("dispatch " + strings.Join(args, " "))
	return err
}

// FocusWorkspace switches to the workspace with the given flat id.
func (c *Client) FocusWorkspace(id uint64) error {
	return c.Dispatch("workspace", strconv.FormatUint(id, 10))
}

// MoveToWorkspaceSilent moves the focused window to the workspace with the
// given flat id without switching to it.
func (c *Client) MoveToWorkspaceSilent(id uint64) error {
	return c.Dispatch("movetoworkspacesilent", strconv.FormatUint(id, 10))
}

// FocusMonitor focuses the monitor with the given Hyprland id.
func (c *Client) FocusMonitor(id uint64) error {
	return c.Dispatch("focusmonitor", strconv.FormatUint(id, 10))
}

// MoveWindowToMonitor moves the focused window to the monitor with the given
// Hyprland id without following it.
func (c *Client) MoveWindowToMonitor(id uint64) error {
	return c.Dispatch("movewindow", "mon:"+strconv.FormatUint(id, 10), "silent")
}
