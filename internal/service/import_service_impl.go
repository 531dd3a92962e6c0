package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/avilev/boardwalk/internal/db"
	"github.com/avilev/boardwalk/internal/importer"
	"github.com/avilev/boardwalk/internal/repository"
)

type importServiceImpl struct {
	uow db.UnitOfWork
	log zerolog.Logger
}

// NewImportService creates the snapshot import service.
func NewImportService(uow db.UnitOfWork, log zerolog.Logger) ImportService {
	return &importServiceImpl{uow: uow, log: log}
}

// ImportSnapshot loads, validates and persists a snapshot file. All writes
// happen in one transaction; a failure anywhere leaves the database
// untouched.
func (s *importServiceImpl) ImportSnapshot(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid snapshot: %w", errors.Join(errs...))
	}

	snap, err := importer.Convert(schema)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		workers := repository.NewSQLiteWorkerRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		for _, w := range snap.Workers {
			if err := workers.Create(ctx, w); err != nil {
				return err
			}
		}
		for _, p := range snap.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return err
			}
			for _, wid := range p.AssignedWorkers {
				if err := projects.AssignWorker(ctx, p.ID, wid); err != nil {
					return err
				}
			}
		}
		for _, t := range snap.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return err
			}
			for _, m := range t.Movements {
				if err := tasks.AppendMovement(ctx, t.ID, m); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &ImportResult{
		ProjectCount: len(snap.Projects),
		WorkerCount:  len(snap.Workers),
		TaskCount:    len(snap.Tasks),
	}
	s.log.Info().
		Str("path", path).
		Int("projects", res.ProjectCount).
		Int("workers", res.WorkerCount).
		Int("tasks", res.TaskCount).
		Msg("snapshot imported")
	return res, nil
}
