package ipc

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"hywoma/internal/faults"
)

// Client command names accepted over the command socket. Each takes exactly
// one unsigned-integer argument.
const (
	CmdSelectWorkspace = "select_workspace"
	CmdMoveToWorkspace = "move_to_workspace"
	CmdSelectMonitor   = "select_monitor"
	CmdMoveToMonitor   = "move_to_monitor"
)

// EncodeCommand serializes a command for transmission. gob is
// self-describing, so the server needs no out-of-band framing beyond
// connection close.
func EncodeCommand(command []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(command); err != nil {
		return nil, fmt.Errorf("encode command: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCommand deserializes a command envelope. Failure here means the
// envelope itself is malformed, which the listener treats as fatal.
func DecodeCommand(data []byte) ([]string, error) {
	var command []string
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&command); err != nil {
		return nil, faults.Wrap(faults.ErrDecode, "command listener", "decode", "malformed command envelope", err)
	}
	return command, nil
}
