// Package config loads and validates hywoma configuration.
//
// Settings come from an optional TOML file merged over repository defaults.
// The runtime environment contributes the two values that cannot have
// defaults: XDG_RUNTIME_DIR locates the command socket and lock file, and
// HYPRLAND_INSTANCE_SIGNATURE locates the Hyprland control and event
// sockets. Path accessors report a configuration error when a required
// environment value is absent; callers treat that as startup-fatal.
package config
