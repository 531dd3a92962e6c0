package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avilev/boardwalk/internal/cli/formatter"
	"github.com/avilev/boardwalk/internal/contract"
)

func newTimelineCmd(app *App) *cobra.Command {
	var nowStr string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Browse the computed schedule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.ScheduleRequest{}
			if nowStr != "" {
				now, err := time.Parse("2006-01-02", nowStr)
				if err != nil {
					return fmt.Errorf("invalid --now date %q: %w", nowStr, err)
				}
				req.Now = &now
			}

			resp, err := app.Schedule.Compute(cmd.Context(), req)
			if err != nil {
				return err
			}

			if !app.interactive() {
				// Non-interactive terminals get the static rendering.
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
				return nil
			}

			p := tea.NewProgram(newTimelineModel(resp), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&nowStr, "now", "", "reference date (YYYY-MM-DD, defaults to today)")

	return cmd
}
