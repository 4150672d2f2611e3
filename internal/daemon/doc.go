// Package daemon wires and supervises hywoma's three execution units: the
// Hyprland event reader, the client command listener, and the dispatcher.
// They share exactly one structure, the message queue; monitor ids and the
// active workspace live inside the dispatcher alone.
//
// There is no graceful shutdown and no restart. The first unit to fail takes
// the whole process down, and each unit maps to a distinct exit status so
// operators can tell from the exit code which one died.
package daemon
