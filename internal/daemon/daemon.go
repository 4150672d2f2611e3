package daemon

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"hywoma/internal/config"
	"hywoma/internal/dispatch"
	"hywoma/internal/faults"
	"hywoma/internal/hypr"
	"hywoma/internal/ipc"
	"hywoma/internal/logging"
)

// Exit statuses per execution unit. Startup failures (lock, config, the
// initial compositor queries) exit with the generic status 1.
const (
	ExitEventReader     = 1
	ExitCommandListener = 2
	ExitDispatcher      = 3
)

// queueSize bounds the message queue between the two producers and the
// dispatcher. Producers block when the dispatcher falls this far behind.
const queueSize = 256

// UnitError records which execution unit failed and the exit status the
// process should terminate with.
type UnitError struct {
	Unit   string
	Status int
	Err    error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Unit, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// ExitStatus maps an error returned by Run to a process exit status.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var unitErr *UnitError
	if errors.As(err, &unitErr) {
		return unitErr.Status
	}
	return 1
}

// Daemon owns the shared message queue and the three units around it.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) *Daemon {
	return &Daemon{cfg: cfg, logger: logger}
}

// Run acquires the single-instance lock, snapshots monitor layout and the
// active workspace from Hyprland, then supervises the event reader, the
// command listener, and the dispatcher until the first of them fails. It
// never returns nil: the units run forever when healthy.
func (d *Daemon) Run() error {
	lockPath, err := d.cfg.LockFilePath()
	if err != nil {
		return err
	}
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return faults.Wrap(faults.ErrIO, "daemon", "lock", "acquire instance lock", err)
	}
	if !locked {
		return faults.Wrap(faults.ErrIO, "daemon", "lock",
			fmt.Sprintf("another instance holds %s", lockPath), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger := d.logger.With(logging.String("run_id", uuid.NewString()))

	hyprCommandSocket, err := d.cfg.HyprCommandSocketPath()
	if err != nil {
		return err
	}
	hyprEventSocket, err := d.cfg.HyprEventSocketPath()
	if err != nil {
		return err
	}
	commandSocket, err := d.cfg.CommandSocketPath()
	if err != nil {
		return err
	}

	client := hypr.NewClient(hyprCommandSocket, logger)
	monitors, err := client.MonitorsSortedByX()
	if err != nil {
		return err
	}
	if len(monitors) == 0 {
		return faults.Wrap(faults.ErrProtocol, "daemon", "startup", "compositor reports no monitors", nil)
	}
	active, err := client.ActiveWorkspace()
	if err != nil {
		return err
	}
	monitorIDs := hypr.MonitorIDs(monitors)

	queue := make(chan dispatch.Message, queueSize)
	reader := hypr.NewEventReader(hyprEventSocket, logger)
	server, err := ipc.NewServer(commandSocket, queue, logger)
	if err != nil {
		return &UnitError{Unit: "command listener", Status: ExitCommandListener, Err: err}
	}
	dispatcher := dispatch.New(client, monitorIDs, active, logger)

	logger.Info("daemon: started",
		logging.Int("monitors", len(monitorIDs)),
		logging.Uint64("active_workspace", active.ID()),
		logging.String("command_socket", commandSocket))

	// The units never return on success and accept no cancellation, so the
	// first failure wins and the process exit tears down the survivors.
	failures := make(chan error, 3)
	go func() {
		failures <- &UnitError{Unit: "event reader", Status: ExitEventReader, Err: reader.Run(queue)}
	}()
	go func() {
		failures <- &UnitError{Unit: "command listener", Status: ExitCommandListener, Err: server.Serve()}
	}()
	go func() {
		failures <- &UnitError{Unit: "dispatcher", Status: ExitDispatcher, Err: dispatcher.Run(queue)}
	}()
	return <-failures
}
