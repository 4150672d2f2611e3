// Package hypr speaks Hyprland's two IPC sockets.
//
// Client issues requests against the control socket, one ephemeral connection
// per call: write the raw command, read until the peer closes. EventReader
// holds a single long-lived connection to the event stream socket and
// forwards the two event kinds that affect active-workspace state.
//
// This is deliberately not a general Hyprland protocol client: it consumes
// the -j/monitors and -j/activeworkspace queries and issues one dispatch
// command family, nothing more.
package hypr
