package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avilev/boardwalk/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Workers  service.WorkerService
	Tasks    service.TaskService
	Schedule service.ScheduleService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal. Forms are only
	// offered interactively; otherwise flags are required.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "boardwalk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "boardwalk",
		Short:         "Capacity-aware project scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	viper.SetEnvPrefix("BOARDWALK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.PersistentFlags().Bool("json", false, "output JSON instead of tables")
	_ = viper.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(
		newScheduleCmd(app),
		newTimelineCmd(app),
		newImportCmd(app),
		newProjectCmd(app),
		newWorkerCmd(app),
		newTaskCmd(app),
	)

	return root
}
