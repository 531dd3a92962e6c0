package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT,
		end_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workers (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL DEFAULT '',
		daily_capacity REAL NOT NULL DEFAULT 0,
		working_days   TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS project_workers (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		worker_id  TEXT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		PRIMARY KEY (project_id, worker_id)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title        TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'not_started'
		             CHECK(status IN ('not_started','active','in_review','done','blocked','cancelled')),
		story_points REAL NOT NULL DEFAULT 0,
		assigned_to  TEXT REFERENCES workers(id) ON DELETE SET NULL,
		priority     REAL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assigned ON tasks(assigned_to)`,

	`CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on TEXT NOT NULL,
		PRIMARY KEY (task_id, depends_on)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_deps_task ON task_dependencies(task_id)`,

	`CREATE TABLE IF NOT EXISTS task_movements (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		from_status TEXT NOT NULL,
		to_status   TEXT NOT NULL,
		moved_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_movements_task ON task_movements(task_id)`,
}
