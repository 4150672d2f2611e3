package daemon_test

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"hywoma/internal/config"
	"hywoma/internal/daemon"
	"hywoma/internal/faults"
	"hywoma/internal/ipc"
	"hywoma/internal/logging"
)

// fakeHyprland stands in for a running compositor: a control socket serving
// canned query responses and recording dispatch commands, plus an event
// stream socket the test writes lines into.
type fakeHyprland struct {
	dispatched chan string
	events     chan net.Conn
}

func startFakeHyprland(t *testing.T) *fakeHyprland {
	t.Helper()

	runtimeDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "test")

	hyprDir := filepath.Join(runtimeDir, "hypr", "test")
	if err := os.MkdirAll(hyprDir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	f := &fakeHyprland{
		dispatched: make(chan string, 16),
		events:     make(chan net.Conn, 1),
	}

	control, err := net.Listen("unix", filepath.Join(hyprDir, ".socket.sock"))
	if err != nil {
		t.Fatalf("listen control: %v", err)
	}
	t.Cleanup(func() { control.Close() })
	go func() {
		for {
			conn, err := control.Accept()
			if err != nil {
				return
			}
			go f.serveControl(conn)
		}
	}()

	eventListener, err := net.Listen("unix", filepath.Join(hyprDir, ".socket2.sock"))
	if err != nil {
		t.Fatalf("listen events: %v", err)
	}
	t.Cleanup(func() { eventListener.Close() })
	go func() {
		for {
			conn, err := eventListener.Accept()
			if err != nil {
				return
			}
			f.events <- conn
		}
	}()

	return f
}

func (f *fakeHyprland) serveControl(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, 4096)
	n, _ := conn.Read(buf)
	request := string(buf[:n])

	switch {
	case request == "-j/monitors":
		conn.Write([]byte(`[{"id":0,"name":"DP-1","x":0,"focused":true},{"id":1,"name":"DP-2","x":1920,"focused":false}]`))
	case request == "-j/activeworkspace":
		conn.Write([]byte(`{"id":1}`))
	case strings.HasPrefix(request, "dispatch "):
		f.dispatched <- strings.TrimPrefix(request, "dispatch ")
		conn.Write([]byte("ok"))
	default:
		conn.Write([]byte("unknown request"))
	}
}

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// sendCommand retries until the daemon has bound its command socket.
func sendCommand(t *testing.T, path string, command []string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		err := ipc.Send(path, command)
		if err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("send %v: %v", command, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRunMediatesCommandsAndEvents(t *testing.T) {
	fake := startFakeHyprland(t)
	cfg := loadConfig(t)

	d := daemon.New(cfg, logging.NewNop())
	done := make(chan error, 1)
	go func() { done <- d.Run() }()

	var eventConn net.Conn
	select {
	case eventConn = <-fake.events:
	case <-time.After(5 * time.Second):
		t.Fatal("daemon never connected to the event socket")
	}

	socketPath, err := cfg.CommandSocketPath()
	if err != nil {
		t.Fatalf("command socket path: %v", err)
	}

	// Active workspace starts at flat id 1 ({1,1}, group 0), so selecting
	// workspace 2 on the same monitor resolves to flat id 2.
	sendCommand(t, socketPath, []string{"select_workspace", "2"})
	select {
	case got := <-fake.dispatched:
		if got != "workspace 2" {
			t.Fatalf("dispatched %q, want %q", got, "workspace 2")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("command never reached the compositor")
	}

	// An event moving focus to workspace 113 ({3,2}, group 1) re-bases
	// subsequent commands: monitor position 0 is Hyprland monitor id 0.
	if _, err := eventConn.Write([]byte("workspacev2>>113,name-3\n")); err != nil {
		t.Fatalf("write event: %v", err)
	}
	sendCommand(t, socketPath, []string{"select_monitor", "0"})
	select {
	case got := <-fake.dispatched:
		if got != "focusmonitor 0" {
			t.Fatalf("dispatched %q, want %q", got, "focusmonitor 0")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("command never reached the compositor")
	}

	// Losing the event stream is fatal with the event reader's status.
	eventConn.Close()
	select {
	case err := <-done:
		if !errors.Is(err, faults.ErrIO) {
			t.Fatalf("error = %v, want %v", err, faults.ErrIO)
		}
		if got := daemon.ExitStatus(err); got != daemon.ExitEventReader {
			t.Fatalf("exit status = %d, want %d", got, daemon.ExitEventReader)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("daemon kept running after the event stream closed")
	}
}

func TestRunRefusesSecondInstance(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "test")
	cfg := loadConfig(t)

	lockPath, err := cfg.LockFilePath()
	if err != nil {
		t.Fatalf("lock path: %v", err)
	}
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil || !locked {
		t.Fatalf("prior lock: locked=%v err=%v", locked, err)
	}
	t.Cleanup(func() { lock.Unlock() })

	runErr := daemon.New(cfg, logging.NewNop()).Run()
	if runErr == nil {
		t.Fatal("second instance started")
	}
	if !errors.Is(runErr, faults.ErrIO) {
		t.Fatalf("error = %v, want %v", runErr, faults.ErrIO)
	}
	if got := daemon.ExitStatus(runErr); got != 1 {
		t.Fatalf("exit status = %d, want 1", got)
	}
}

func TestRunFailsWithEmptyMonitorList(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	runtimeDir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "test")

	hyprDir := filepath.Join(runtimeDir, "hypr", "test")
	if err := os.MkdirAll(hyprDir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	control, err := net.Listen("unix", filepath.Join(hyprDir, ".socket.sock"))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { control.Close() })
	go func() {
		for {
			conn, err := control.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 4096)
			conn.Read(buf)
			conn.Write([]byte(`[]`))
			conn.Close()
		}
	}()

	runErr := daemon.New(loadConfig(t), logging.NewNop()).Run()
	if !errors.Is(runErr, faults.ErrProtocol) {
		t.Fatalf("error = %v, want %v", runErr, faults.ErrProtocol)
	}
	if got := daemon.ExitStatus(runErr); got != 1 {
		t.Fatalf("exit status = %d, want 1", got)
	}
}

func TestRunFailsWithoutCompositor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "test")
	cfg := loadConfig(t)

	err := daemon.New(cfg, logging.NewNop()).Run()
	if !errors.Is(err, faults.ErrConnection) {
		t.Fatalf("error = %v, want %v", err, faults.ErrConnection)
	}
	if got := daemon.ExitStatus(err); got != 1 {
		t.Fatalf("exit status = %d, want 1", got)
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"event reader", &daemon.UnitError{Unit: "event reader", Status: daemon.ExitEventReader, Err: errors.New("boom")}, 1},
		{"command listener", &daemon.UnitError{Unit: "command listener", Status: daemon.ExitCommandListener, Err: errors.New("boom")}, 2},
		{"dispatcher", &daemon.UnitError{Unit: "dispatcher", Status: daemon.ExitDispatcher, Err: errors.New("boom")}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daemon.ExitStatus(tt.err); got != tt.want {
				t.Fatalf("ExitStatus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnitErrorUnwrap(t *testing.T) {
	cause := faults.Wrap(faults.ErrDecode, "command listener", "decode", "envelope", errors.New("boom"))
	err := &daemon.UnitError{Unit: "command listener", Status: daemon.ExitCommandListener, Err: cause}
	if !errors.Is(err, faults.ErrDecode) {
		t.Fatalf("cause %v not visible through %v", faults.ErrDecode, err)
	}
}
