package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avilev/boardwalk/internal/cli/formatter"
	"github.com/avilev/boardwalk/internal/contract"
)

func newScheduleCmd(app *App) *cobra.Command {
	var projectIDs []string
	var nowStr string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the schedule across all projects",
		Long: `Compute start and end dates for every task, respecting dependencies,
worker calendars and the shared capacity pool. All projects are always
scheduled together; --project only filters the output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.ScheduleRequest{ProjectIDs: projectIDs}
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

			if viper.GetBool("json") {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&projectIDs, "project", nil, "limit output to a project ID (repeatable)")
	cmd.Flags().StringVar(&nowStr, "now", "", "reference date (YYYY-MM-DD, defaults to today)")

	return cmd
}
