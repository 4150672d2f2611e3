// Package ipc implements hywoma's client command socket.
//
// The protocol is one command per connection: a client connects, writes a
// gob-encoded list of strings (command name first, then arguments), and
// closes. The server reads to EOF, decodes, maps the command to a queue
// message, and never responds. Connections are drained strictly one at a
// time; clients must connect, send, and close in one shot.
//
// Error asymmetry, deliberately preserved: a malformed envelope is fatal and
// terminates the listener, while a well-formed command with an unknown name,
// wrong arity, or unparseable number is silently discarded and serving
// continues.
package ipc
