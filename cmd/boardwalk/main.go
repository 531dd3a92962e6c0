package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/avilev/boardwalk/internal/cli"
	"github.com/avilev/boardwalk/internal/db"
	"github.com/avilev/boardwalk/internal/repository"
	"github.com/avilev/boardwalk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	viper.SetEnvPrefix("BOARDWALK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Determine DB path: BOARDWALK_DB or default ~/.boardwalk/boardwalk.db
	dbPath := viper.GetString("db")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".boardwalk", "boardwalk.db")
	}

	log := newLogger()

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	workerRepo := repository.NewSQLiteWorkerRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, workerRepo),
		Workers:  service.NewWorkerService(workerRepo),
		Tasks:    service.NewTaskService(taskRepo, projectRepo, log),
		Schedule: service.NewScheduleService(projectRepo, workerRepo, taskRepo, log),
		Import:   service.NewImportService(uow, log),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds a console logger on stderr. BOARDWALK_LOG controls the
// level; output stays quiet by default so tables render clean.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if v := viper.GetString("log"); v != "" {
		if parsed, err := zerolog.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
