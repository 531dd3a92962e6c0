package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avilev/boardwalk/internal/cli/formatter"
	"github.com/avilev/boardwalk/internal/domain"
)

func newWorkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage workers",
	}

	cmd.AddCommand(
		newWorkerAddCmd(app),
		newWorkerListCmd(app),
	)

	return cmd
}

// parseWorkingDays converts "1,2,3,4,5" into ISO weekday numbers.
func parseWorkingDays(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 1 || d > 7 {
			return nil, fmt.Errorf("invalid weekday %q (expected 1-7, 1=Monday)", p)
		}
		days = append(days, d)
	}
	return days, nil
}

func newWorkerAddCmd(app *App) *cobra.Command {
	var name, daysStr string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseWorkingDays(daysStr)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			w := &domain.Worker{
				ID:            uuid.New().String(),
				Name:          name,
				DailyCapacity: capacity,
				WorkingDays:   days,
				CreatedAt:     now,
				UpdatedAt:     now,
			}

			if err := app.Workers.Create(cmd.Context(), w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created worker %s\n", w.Name)
			if !w.Schedulable() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Worker has no capacity or working days; tasks will not be placed on them."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().Float64Var(&capacity, "capacity", 1, "Daily capacity in story points")
	cmd.Flags().StringVar(&daysStr, "days", "1,2,3,4,5", "Working days as ISO weekdays (1=Monday)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWorkerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Workers.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(workers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workers found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkerList(workers))
			return nil
		},
	}
}
