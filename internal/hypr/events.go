package hypr

import (
	"bufio"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"hywoma/internal/dispatch"
	"hywoma/internal/faults"
	"hywoma/internal/logging"
)

// EventReader consumes Hyprland's event stream socket for the daemon's
// lifetime and forwards active-workspace changes to the message queue.
type EventReader struct {
	socketPath string
	logger     *slog.Logger
}

// NewEventReader returns a reader for the event socket at socketPath.
func NewEventReader(socketPath string, logger *slog.Logger) *EventReader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &EventReader{socketPath: socketPath, logger: logger}
}

// Run connects once and blocks, parsing newline-delimited event records.
// Every failure mode is fatal: connection loss, a malformed line, and stream
// end all terminate the reader, and the daemon with it. There is no
// reconnect.
func (r *EventReader) Run(queue chan<- dispatch.Message) error {
	conn, err := net.Dial("unix", r.socketPath)
	if err != nil {
		return faults.Wrap(faults.ErrConnection, "event reader", "dial", r.socketPath, err)
	}
	defer conn.Close()

	r.logger.Info("event reader: connected", logging.String("socket", r.socketPath))

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		m, ok, err := ParseEvent(scanner.Text())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		queue <- m
	}
	if err := scanner.Err(); err != nil {
		return faults.Wrap(faults.ErrIO, "event reader", "read", r.socketPath, err)
	}
	return faults.Wrap(faults.ErrIO, "event reader", "read", "event stream closed by compositor", nil)
}

// ParseEvent parses one `event>>payload` record. The boolean result is false
// for event kinds hywoma ignores. A line without the delimiter, or a
// recognized event with an unparseable payload, is a protocol error.
func ParseEvent(line string) (dispatch.Message, bool, error) {
	event, payload, found := strings.Cut(line, ">>")
	if !found {
		return nil, false, faults.Wrap(faults.ErrProtocol, "event reader", "parse",
			"line without '>>' delimiter: "+line, nil)
	}

	switch event {
	case "workspacev2":
		// Payload is `WORKSPACEID,WORKSPACENAME`.
		field, _, found := strings.Cut(payload, ",")
		if !found {
			return nil, false, faults.Wrap(faults.ErrProtocol, "event reader", "parse",
				"workspacev2 payload without comma: "+payload, nil)
		}
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, false, faults.Wrap(faults.ErrProtocol, "event reader", "parse",
				"workspacev2 workspace id", err)
		}
		return dispatch.ActiveWorkspaceChanged{ID: id}, true, nil
	case "focusedmonv2":
		// Payload is `MONNAME,WORKSPACEID`; the id is the workspace now
		// active on the newly focused monitor.
		_, field, found := strings.Cut(payload, ",")
		if !found {
			return nil, false, faults.Wrap(faults.ErrProtocol, "event reader", "parse",
				"focusedmonv2 payload without comma: "+payload, nil)
		}
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, false, faults.Wrap(faults.ErrProtocol, "event reader", "parse",
				"focusedmonv2 workspace id", err)
		}
		return dispatch.ActiveWorkspaceChanged{ID: id}, true, nil
	}
	return nil, false, nil
}
