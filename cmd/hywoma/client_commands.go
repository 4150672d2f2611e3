package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hywoma/internal/ipc"
)

// newClientCommands builds the four directive commands. Each one sends a
// single command over the socket and returns without waiting for an
// acknowledgement; whether the directive makes sense is for the daemon to
// decide against its current state.
func newClientCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newDirectiveCommand(ctx, ipc.CmdSelectWorkspace,
			"select-workspace <workspace>",
			"Switch to a workspace on the active monitor in the active group"),
		newDirectiveCommand(ctx, ipc.CmdMoveToWorkspace,
			"move-to-workspace <workspace>",
			"Move the focused window to a workspace without following it"),
		newDirectiveCommand(ctx, ipc.CmdSelectMonitor,
			"select-monitor <position>",
			"Focus the monitor at a left-to-right layout position"),
		newDirectiveCommand(ctx, ipc.CmdMoveToMonitor,
			"move-to-monitor <position>",
			"Move the focused window to the monitor at a layout position"),
	}
}

func newDirectiveCommand(ctx *commandContext, name, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.ParseUint(args[0], 10, 64); err != nil {
				return fmt.Errorf("argument %q must be an unsigned integer", args[0])
			}
			return ctx.send([]string{name, args[0]})
		},
	}
}
