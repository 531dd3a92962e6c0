package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avilev/boardwalk/internal/cli/formatter"
	"github.com/avilev/boardwalk/internal/domain"
)

// resolveProjectID maps user input (full ID or unambiguous prefix) to a
// stored project ID.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectAssignCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := projectForm(&name, &start, &end).Run(); err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("project name is required (--name)")
			}

			now := time.Now().UTC()
			p := &domain.Project{
				ID:        uuid.New().String(),
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			}

			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = &startDate
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = &endDate
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.DisplayID())
			if p.StartDate == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No start date set; the project will be skipped by scheduling until one is."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <project> <worker-id>",
		Short: "Add a worker to a project's preferred pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.AssignWorker(cmd.Context(), projectID, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Worker assigned.")
			return nil
		},
	}
}
