package ipc

import (
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"

	"hywoma/internal/dispatch"
	"hywoma/internal/faults"
	"hywoma/internal/logging"
)

// Server accepts one-shot client connections on a Unix domain socket and
// forwards well-formed commands to the message queue.
type Server struct {
	path     string
	queue    chan<- dispatch.Message
	logger   *slog.Logger
	listener net.Listener
}

// NewServer binds the command socket. A stale socket file at the path is
// removed first; that is best-effort cleanup, not an atomicity guarantee.
// Only one server may bind a given path at a time.
func NewServer(path string, queue chan<- dispatch.Message, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	_ = os.Remove(path)

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConnection, "command listener", "bind", path, err)
	}

	logger.Info("command listener: bound", logging.String("socket", path))
	return &Server{
		path:     path,
		queue:    queue,
		logger:   logger,
		listener: listener,
	}, nil
}

// Close releases the listener and removes the socket file. Only tests use
// this; the daemon relies on process termination.
func (s *Server) Close() error {
	err := s.listener.Close()
	_ = os.Remove(s.path)
	return err
}

// Serve blocks accepting connections, fully draining each one before
// accepting the next. Accept, read, and envelope-decode failures are fatal;
// semantically invalid commands are dropped silently and serving continues.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return faults.Wrap(faults.ErrIO, "command listener", "accept", s.path, err)
		}
		if err := s.handle(conn); err != nil {
			return err
		}
	}
}

func (s *Server) handle(conn net.Conn) error {
	defer conn.Close()

	data, err := io.ReadAll(conn)
	if err != nil {
		return faults.Wrap(faults.ErrIO, "command listener", "read", s.path, err)
	}

	command, err := DecodeCommand(data)
	if err != nil {
		return err
	}

	m, ok := MapCommand(command)
	if !ok {
		s.logger.Debug("command listener: dropped", logging.Any("command", command))
		return nil
	}

	s.logger.Debug("command listener: received", logging.Any("command", command))
	s.queue <- m
	return nil
}

// MapCommand maps a decoded command to its queue message. The boolean result
// is false for anything that does not match a known name with exactly one
// unsigned-integer argument; such commands are rejected without error.
func MapCommand(command []string) (dispatch.Message, bool) {
	if len(command) != 2 {
		return nil, false
	}
	n, err := strconv.ParseUint(command[1], 10, 64)
	if err != nil {
		return nil, false
	}

	switch command[0] {
	case CmdSelectWorkspace:
		return dispatch.SelectWorkspace{Workspace: n}, true
	case CmdMoveToWorkspace:
		return dispatch.MoveToWorkspace{Workspace: n}, true
	case CmdSelectMonitor:
		return dispatch.SelectMonitor{Position: n}, true
	case CmdMoveToMonitor:
		return dispatch.MoveToMonitor{Position: n}, true
	}
	return nil, false
}
