package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avilev/boardwalk/internal/cli/formatter"
	"github.com/avilev/boardwalk/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskMoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		projectArg, title, assignee string
		points, priority            float64
		deps                        []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, projectArg)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			t := &domain.Task{
				ID:           uuid.New().String(),
				ProjectID:    projectID,
				Title:        title,
				Status:       domain.TaskNotStarted,
				StoryPoints:  points,
				Dependencies: deps,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if assignee != "" {
				t.AssignedTo = &assignee
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = &priority
			}

			if err := app.Tasks.Create(cmd.Context(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s [%s]\n", t.Title, t.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&projectArg, "project", "", "Project ID (or unambiguous prefix)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().Float64Var(&points, "points", 0, "Story points (one point is one day of full capacity)")
	cmd.Flags().Float64Var(&priority, "priority", 0, "Priority rank (lower schedules first)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Fixed worker ID")
	cmd.Flags().StringArrayVar(&deps, "depends-on", nil, "Task ID this task depends on (repeatable)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectArg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tasks []*domain.Task
			var err error
			if projectArg != "" {
				projectID, rerr := resolveProjectID(cmd.Context(), app, projectArg)
				if rerr != nil {
					return rerr
				}
				tasks, err = app.Tasks.ListByProject(cmd.Context(), projectID)
			} else {
				tasks, err = app.Tasks.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectArg, "project", "", "Limit to a project ID")

	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <task-id> <status>",
		Short: "Move a task to a new status",
		Long: `Move a task between statuses (not_started, active, in_review, done,
blocked, cancelled). Each move is recorded in the task's movement log, which
anchors real dates in the schedule.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := domain.TaskStatus(args[1])
			if err := app.Tasks.Move(cmd.Context(), args[0], to); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task moved to %s.\n", to)
			return nil
		},
	}
}
