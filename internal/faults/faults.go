// Package faults defines the error taxonomy shared by every hywoma unit.
//
// All of these are unrecoverable at their point of origin: a failing unit
// returns the tagged error up to the daemon supervisor, which terminates the
// process. The sentinels exist so callers can classify failures with
// errors.Is without parsing message text.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConnection marks a failure to open a socket.
	ErrConnection = errors.New("connection error")
	// ErrIO marks a read or write failure on an open socket.
	ErrIO = errors.New("io error")
	// ErrProtocol marks received data that does not match the expected wire
	// shape: bad JSON, a missing event delimiter, a missing field.
	ErrProtocol = errors.New("protocol error")
	// ErrDecode marks a malformed client command envelope.
	ErrDecode = errors.New("decode error")
	// ErrConfig marks missing or invalid configuration, including absent
	// required environment variables.
	ErrConfig = errors.New("configuration error")
	// ErrIndex marks a monitor position outside the known monitor list.
	// Fatal by design; the command socket has no response channel that could
	// carry a rejection back to the client.
	ErrIndex = errors.New("monitor position out of range")
)

// Wrap builds an error message that includes unit context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, unit, operation, message string, err error) error {
	detail := buildDetail(unit, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(unit, operation, message string) string {
	parts := make([]string, 0, 3)
	if unit = strings.TrimSpace(unit); unit != "" {
		parts = append(parts, unit)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "unit failure"
	}
	return strings.Join(parts, ": ")
}
