package dispatch

import (
	"fmt"
	"log/slog"

	"hywoma/internal/faults"
	"hywoma/internal/logging"
	"hywoma/internal/workspace"
)

// Compositor is the slice of the compositor client the dispatcher needs.
type Compositor interface {
	FocusWorkspace(id uint64) error
	MoveToWorkspaceSilent(id uint64) error
	FocusMonitor(id uint64) error
	MoveWindowToMonitor(id uint64) error
}

// Dispatcher consumes the shared message queue and issues compositor
// commands. Not safe for concurrent use; exactly one goroutine runs it.
type Dispatcher struct {
	compositor Compositor
	logger     *slog.Logger

	monitorIDs []uint64
	active     workspace.Workspace
}

// New constructs a dispatcher owning the given monitor list and initial
// active workspace.
func New(compositor Compositor, monitorIDs []uint64, active workspace.Workspace, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{
		compositor: compositor,
		logger:     logger,
		monitorIDs: monitorIDs,
		active:     active,
	}
}

// Active returns the dispatcher's view of the active workspace.
func (d *Dispatcher) Active() workspace.Workspace {
	return d.active
}

// Run consumes messages in arrival order until the queue closes or a message
// fails. Any error is fatal to the daemon; there is no retry here.
func (d *Dispatcher) Run(queue <-chan Message) error {
	for m := range queue {
		if err := d.Handle(m); err != nil {
			return err
		}
	}
	return nil
}

// Handle processes a single message.
func (d *Dispatcher) Handle(m Message) error {
	d.logger.Debug("dispatch: message", logging.String("message", fmt.Sprintf("%#v", m)))

	switch m := m.(type) {
	case ActiveWorkspaceChanged:
		d.active = workspace.FromID(m.ID)
		d.logger.Debug("dispatch: workspace update",
			logging.Uint64("workspace", d.active.Workspace),
			logging.Uint64("monitor", d.active.Monitor),
			logging.Uint64("group", d.active.Group))
		return nil
	case SelectWorkspace:
		// Optimistic: the local copy changes before Hyprland confirms via
		// the workspacev2 event that also updates it.
		d.active.Workspace = m.Workspace
		return d.compositor.FocusWorkspace(d.active.ID())
	case MoveToWorkspace:
		target := d.active
		target.Workspace = m.Workspace
		return d.compositor.MoveToWorkspaceSilent(target.ID())
	case SelectMonitor:
		id, err := d.monitorAt(m.Position)
		if err != nil {
			return err
		}
		return d.compositor.FocusMonitor(id)
	case MoveToMonitor:
		id, err := d.monitorAt(m.Position)
		if err != nil {
			return err
		}
		return d.compositor.MoveWindowToMonitor(id)
	}
	return nil
}

func (d *Dispatcher) monitorAt(position uint64) (uint64, error) {
	if position >= uint64(len(d.monitorIDs)) {
		return 0, faults.Wrap(faults.ErrIndex, "dispatcher", "monitor lookup",
			fmt.Sprintf("position %d with %d monitors", position, len(d.monitorIDs)), nil)
	}
	return d.monitorIDs[position], nil
}
