package config

const (
	defaultSocketName        = "hywoma.sock"
	defaultHyprCommandSocket = ".socket.sock"
	defaultHyprEventSocket   = ".socket2.sock"
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Socket: Socket{
			Name: defaultSocketName,
		},
		Hyprland: Hyprland{
			CommandSocket: defaultHyprCommandSocket,
			EventSocket:   defaultHyprEventSocket,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
