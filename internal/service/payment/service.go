package payment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/repository/postgresql"
)

type PaymentService struct {
	db          *database.DB
	writeLock   *locker.WriteLock
	paymentRepo payment.Repository
}

func NewPaymentService(
	db *database.DB,
	writeLock *locker.WriteLock,
	paymentRepo payment.Repository,
) *PaymentService {
	return &PaymentService{
		db:          db,
		writeLock:   writeLock,
		paymentRepo: paymentRepo,
	}
}

// Save upserts a payment by its (worker, periodStart, periodEnd) natural key.
// Saving the same key twice leaves one ledger row with a fresher timestamp.
func (s *PaymentService) Save(ctx context.Context, req payment.SaveRequest) (payment.SaveResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.SaveResponse{}, err
	}

	var saved payment.Record
	err := s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			var err error
			saved, err = s.paymentRepo.Upsert(txCtx, payment.Record{
				WorkerID:    req.WorkerID,
				PeriodStart: req.StartDate,
				PeriodEnd:   req.EndDate,
				Amount:      req.ParsedAmount(),
				Note:        req.Note,
			})
			return err
		})
	})
	if err != nil {
		return payment.SaveResponse{}, err
	}

	return payment.SaveResponse{
		Recorded:  true,
		Timestamp: saved.RecordedAt.UTC().Format(time.RFC3339),
	}, nil
}

// List returns ledger records, optionally filtered by worker and/or an exact
// period. Unfiltered it returns the complete ledger; lifetime balances depend
// on that.
func (s *PaymentService) List(ctx context.Context, req payment.ListRequest) ([]payment.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		records []payment.Record
		err     error
	)
	switch {
	case req.WorkerID != "":
		records, err = s.paymentRepo.ListByWorker(ctx, req.WorkerID)
	case req.StartDate != "":
		records, err = s.paymentRepo.ListByPeriod(ctx, req.StartDate, req.EndDate)
	default:
		records, err = s.paymentRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	// A worker filter can combine with a period filter.
	responses := make([]payment.RecordResponse, 0, len(records))
	for _, rec := range records {
		if req.WorkerID != "" && req.StartDate != "" {
			if rec.PeriodStart != req.StartDate || rec.PeriodEnd != req.EndDate {
				continue
			}
		}
		responses = append(responses, payment.ToResponse(rec))
	}
	return responses, nil
}
