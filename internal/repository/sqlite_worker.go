package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avilev/boardwalk/internal/db"
	"github.com/avilev/boardwalk/internal/domain"
)

const workerColumns = `id, name, daily_capacity, working_days, created_at, updated_at`

// SQLiteWorkerRepo implements WorkerRepo on SQLite.
type SQLiteWorkerRepo struct {
	db db.DBTX
}

// NewSQLiteWorkerRepo creates a new SQLiteWorkerRepo.
func NewSQLiteWorkerRepo(dbtx db.DBTX) *SQLiteWorkerRepo {
	return &SQLiteWorkerRepo{db: dbtx}
}

func (r *SQLiteWorkerRepo) Create(ctx context.Context, w *domain.Worker) error {
	query := `INSERT INTO workers (` + workerColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		w.DailyCapacity,
		encodeDays(w.WorkingDays),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting worker: %w", err)
	}
	return nil
}

func (r *SQLiteWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = ?`
	return r.scanWorker(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkerRepo) List(ctx context.Context) ([]*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	defer rows.Close()

	var workers []*domain.Worker
	for rows.Next() {
		w, err := r.scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *SQLiteWorkerRepo) Update(ctx context.Context, w *domain.Worker) error {
	query := `UPDATE workers SET name = ?, daily_capacity = ?, working_days = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Name,
		w.DailyCapacity,
		encodeDays(w.WorkingDays),
		time.Now().UTC().Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating worker: %w", err)
	}
	return requireRow(res, "worker", w.ID)
}

func (r *SQLiteWorkerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting worker: %w", err)
	}
	return requireRow(res, "worker", id)
}

func (r *SQLiteWorkerRepo) scanWorker(row rowScanner) (*domain.Worker, error) {
	var w domain.Worker
	var days string
	var createdAt, updatedAt string

	err := row.Scan(&w.ID, &w.Name, &w.DailyCapacity, &days, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning worker: %w", err)
	}

	w.WorkingDays = decodeDays(days)
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	w.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &w, nil
}
