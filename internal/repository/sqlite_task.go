package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avilev/boardwalk/internal/db"
	"github.com/avilev/boardwalk/internal/domain"
)

const taskColumns = `id, project_id, title, status, story_points, assigned_to, priority, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo on SQLite. Reads attach the task's
// dependency list and movement log.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Title,
		string(t.Status),
		t.StoryPoints,
		nullableStrToValue(t.AssignedTo),
		nullableFloatToValue(t.Priority),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return r.replaceDependencies(ctx, t.ID, t.Dependencies)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachRelations(ctx, []*domain.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY created_at, id`
	return r.queryTasks(ctx, query, projectID)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`
	return r.queryTasks(ctx, query)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, status = ?, story_points = ?, assigned_to = ?,
		priority = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Status),
		t.StoryPoints,
		nullableStrToValue(t.AssignedTo),
		nullableFloatToValue(t.Priority),
		time.Now().UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if err := requireRow(res, "task", t.ID); err != nil {
		return err
	}
	return r.replaceDependencies(ctx, t.ID, t.Dependencies)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(res, "task", id)
}

func (r *SQLiteTaskRepo) AppendMovement(ctx context.Context, taskID string, m domain.StatusChange) error {
	query := `INSERT INTO task_movements (task_id, from_status, to_status, moved_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		taskID, string(m.From), string(m.To), m.At.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("appending task movement: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) replaceDependencies(ctx context.Context, taskID string, deps []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_dependencies WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("clearing task dependencies: %w", err)
	}
	for _, dep := range deps {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_dependencies (task_id, depends_on) VALUES (?, ?)`, taskID, dep)
		if err != nil {
			return fmt.Errorf("inserting task dependency: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	if err := r.attachRelations(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// attachRelations loads dependencies and movement logs for the given tasks
// in two batch queries instead of 2N lookups.
func (r *SQLiteTaskRepo) attachRelations(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	depRows, err := r.db.QueryContext(ctx,
		`SELECT task_id, depends_on FROM task_dependencies ORDER BY task_id, depends_on`)
	if err != nil {
		return fmt.Errorf("loading task dependencies: %w", err)
	}
	defer depRows.Close()
	for depRows.Next() {
		var taskID, dep string
		if err := depRows.Scan(&taskID, &dep); err != nil {
			return fmt.Errorf("scanning task dependency: %w", err)
		}
		if t, ok := byID[taskID]; ok {
			t.Dependencies = append(t.Dependencies, dep)
		}
	}
	if err := depRows.Err(); err != nil {
		return fmt.Errorf("iterating task dependencies: %w", err)
	}

	moveRows, err := r.db.QueryContext(ctx,
		`SELECT task_id, from_status, to_status, moved_at FROM task_movements ORDER BY id`)
	if err != nil {
		return fmt.Errorf("loading task movements: %w", err)
	}
	defer moveRows.Close()
	for moveRows.Next() {
		var taskID, from, to, movedAt string
		if err := moveRows.Scan(&taskID, &from, &to, &movedAt); err != nil {
			return fmt.Errorf("scanning task movement: %w", err)
		}
		t, ok := byID[taskID]
		if !ok {
			continue
		}
		at, err := time.Parse(time.RFC3339, movedAt)
		if err != nil {
			continue
		}
		t.Movements = append(t.Movements, domain.StatusChange{
			From: domain.TaskStatus(from),
			To:   domain.TaskStatus(to),
			At:   at,
		})
	}
	return moveRows.Err()
}

func (r *SQLiteTaskRepo) scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var status string
	var assignedTo sql.NullString
	var priority sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &status, &t.StoryPoints,
		&assignedTo, &priority, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(status)
	if assignedTo.Valid {
		t.AssignedTo = &assignedTo.String
	}
	if priority.Valid {
		t.Priority = &priority.Float64
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}
