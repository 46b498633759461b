package payroll

import (
	"context"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payroll"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
)

// PayrollService reads history and produces reconciled summaries. It never
// writes, so it takes repositories directly and skips the write lock.
type PayrollService struct {
	workerRepo     worker.Repository
	attendanceRepo attendance.Repository
	paymentRepo    payment.Repository
}

func NewPayrollService(
	workerRepo worker.Repository,
	attendanceRepo attendance.Repository,
	paymentRepo payment.Repository,
) *PayrollService {
	return &PayrollService{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
	}
}

// Summary reconciles every worker on the roster for the requested window, or
// just one when the request names a worker.
func (s *PayrollService) Summary(ctx context.Context, req payroll.SummaryRequest) ([]payroll.WorkerSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var workers []worker.Worker
	if req.WorkerID != "" {
		w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
		if err != nil {
			return nil, err
		}
		workers = []worker.Worker{w}
	} else {
		var err error
		workers, err = s.workerRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	// Full history on purpose: lifetime balances cannot be computed from a
	// window slice.
	rows, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	aggregated := attendance.AggregateAll(rows)

	records, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byWorker := make(map[string][]payment.Record)
	for _, rec := range records {
		byWorker[rec.WorkerID] = append(byWorker[rec.WorkerID], rec)
	}

	summaries := make([]payroll.WorkerSummary, 0, len(workers))
	for _, w := range workers {
		key := w.Key()

		lastPaid, err := s.paymentRepo.LastPaidDate(ctx, key)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, Reconcile(ReconcileInput{
			Worker:      w,
			Attendance:  aggregated,
			Payments:    byWorker[key],
			LastPaid:    lastPaid,
			WindowStart: req.StartDate,
			WindowEnd:   req.EndDate,
		}))
	}
	return summaries, nil
}
