package ipc

import (
	"net"
	"time"

	"hywoma/internal/faults"
)

// Send connects to the command socket, writes one encoded command, and
// closes the connection. Fire-and-forget: the daemon never acknowledges, so
// a nil error only means the command was delivered, not that it was acted on.
func Send(path string, command []string) error {
	data, err := EncodeCommand(command)
	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return faults.Wrap(faults.ErrConnection, "command client", "dial", path, err)
	}
	defer conn.Close()

	if _, err := conn.Write(data); err != nil {
		return faults.Wrap(faults.ErrIO, "command client", "write", path, err)
	}
	return nil
}
