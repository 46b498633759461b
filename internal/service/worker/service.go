package worker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/repository/postgresql"
	"github.com/stitchlabs/workshop-backend-go/internal/service/file"
)

type WorkerService struct {
	db          *database.DB
	writeLock   *locker.WriteLock
	workerRepo  worker.Repository
	fileService *file.FileService
}

func NewWorkerService(
	db *database.DB,
	writeLock *locker.WriteLock,
	workerRepo worker.Repository,
	fileService *file.FileService,
) *WorkerService {
	return &WorkerService{
		db:          db,
		writeLock:   writeLock,
		workerRepo:  workerRepo,
		fileService: fileService,
	}
}

func (s *WorkerService) List(ctx context.Context) ([]worker.Response, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.Response, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToResponse(w))
	}
	return responses, nil
}

func (s *WorkerService) Create(ctx context.Context, req worker.CreateRequest) (worker.Response, error) {
	if err := req.Validate(); err != nil {
		return worker.Response{}, err
	}

	newWorker := worker.Worker{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Position:      req.Position,
		DailyRate:     req.Rate(),
		DateOfJoining: req.DateOfJoining,
	}

	// Photo is stored before taking the lock; a dangling file on a failed
	// create is harmless and cheaper than holding the lock through an upload.
	if req.Photo != "" {
		url, err := s.fileService.SaveBase64Image(ctx, "workers", req.Photo)
		if err != nil {
			return worker.Response{}, err
		}
		newWorker.PhotoURL = &url
	}

	var created worker.Worker
	err := s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			var err error
			created, err = s.workerRepo.Create(txCtx, newWorker)
			return err
		})
	})
	if err != nil {
		return worker.Response{}, err
	}

	return worker.ToResponse(created), nil
}

func (s *WorkerService) UpdateRate(ctx context.Context, req worker.UpdateRateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			return s.workerRepo.UpdateRate(txCtx, req.ID, req.Rate())
		})
	})
}

func (s *WorkerService) Delete(ctx context.Context, id string) error {
	existing, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			return s.workerRepo.Delete(txCtx, id)
		})
	})
	if err != nil {
		return err
	}

	// Attendance and ledger rows are kept: history stays reconcilable even
	// after a worker leaves the roster.
	if existing.PhotoURL != nil {
		if err := s.fileService.Delete(ctx, *existing.PhotoURL); err != nil {
			slog.Warn("failed to delete worker photo", "worker_id", id, "error", err)
		}
	}

	return nil
}
