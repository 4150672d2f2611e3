package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hywoma/internal/hypr"
	"hywoma/internal/logging"
)

func newMonitorsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "List monitors ordered by layout position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			socket, err := cfg.HyprCommandSocketPath()
			if err != nil {
				return err
			}
			monitors, err := hypr.NewClient(socket, logging.NewNop()).MonitorsSortedByX()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(monitors))
			for position, m := range monitors {
				focused := ""
				if m.Focused {
					focused = "yes"
				}
				rows = append(rows, []string{
					strconv.Itoa(position),
					strconv.FormatUint(m.ID, 10),
					m.Name,
					strconv.Itoa(m.X),
					focused,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"POSITION", "ID", "NAME", "X", "FOCUSED"}, rows, 0, 1, 3))
			return nil
		},
	}
}
