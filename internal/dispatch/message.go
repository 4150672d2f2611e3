package dispatch

// Message is one queue entry produced by the event reader or the command
// listener and consumed exactly once by the dispatcher. The set of variants
// is closed; the unexported method keeps it that way.
type Message interface {
	message()
}

// ActiveWorkspaceChanged reports that Hyprland switched the active workspace.
type ActiveWorkspaceChanged struct {
	ID uint64
}

// SelectWorkspace asks to switch to workspace number n on the current
// monitor and group.
type SelectWorkspace struct {
	Workspace uint64
}

// MoveToWorkspace asks to move the focused window to workspace number n
// without switching to it.
type MoveToWorkspace struct {
	Workspace uint64
}

// SelectMonitor asks to focus the monitor at a position in the x-sorted
// monitor list. The position is an index, not a Hyprland monitor id.
type SelectMonitor struct {
	Position uint64
}

// MoveToMonitor asks to move the focused window to the monitor at a position
// in the x-sorted monitor list, without following it.
type MoveToMonitor struct {
	Position uint64
}

func (ActiveWorkspaceChanged) message() {}
func (SelectWorkspace) message()        {}
func (MoveToWorkspace) message()        {}
func (SelectMonitor) message()          {}
func (MoveToMonitor) message()          {}
