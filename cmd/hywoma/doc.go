// Package main hosts the hywoma CLI entrypoint and command graph.
//
// The Cobra-based command tree has two faces: `serve` runs the mediation
// daemon in the foreground, and the remaining commands are thin clients that
// push directives onto the daemon's command socket or query Hyprland
// directly. Configuration resolution and socket discovery are centralized in
// commandContext so subcommands stay declarative.
package main
