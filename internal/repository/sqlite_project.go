package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avilev/boardwalk/internal/db"
	"github.com/avilev/boardwalk/internal/domain"
)

const projectColumns = `id, name, start_date, end_date, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo on SQLite. It accepts any DBTX so
// it works both standalone and inside a unit-of-work transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := r.scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadAssignedWorkers(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY start_date IS NULL, start_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	for _, p := range projects {
		if err := r.loadAssignedWorkers(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireRow(res, "project", p.ID)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireRow(res, "project", id)
}

func (r *SQLiteProjectRepo) AssignWorker(ctx context.Context, projectID, workerID string) error {
	query := `INSERT OR IGNORE INTO project_workers (project_id, worker_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, projectID, workerID); err != nil {
		return fmt.Errorf("assigning worker to project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UnassignWorker(ctx context.Context, projectID, workerID string) error {
	query := `DELETE FROM project_workers WHERE project_id = ? AND worker_id = ?`
	if _, err := r.db.ExecContext(ctx, query, projectID, workerID); err != nil {
		return fmt.Errorf("unassigning worker from project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) loadAssignedWorkers(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT worker_id FROM project_workers WHERE project_id = ? ORDER BY worker_id`, p.ID)
	if err != nil {
		return fmt.Errorf("loading project workers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning project worker: %w", err)
		}
		p.AssignedWorkers = append(p.AssignedWorkers, id)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProjectRepo) scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var startDate, endDate sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &startDate, &endDate, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.StartDate = parseNullableTime(startDate, dateLayout)
	p.EndDate = parseNullableTime(endDate, dateLayout)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// requireRow converts a zero-rows-affected result into a not-found error.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
