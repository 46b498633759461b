package payment

import "context"

// Repository is the payment ledger.
type Repository interface {
	// Upsert scans the most recent rows (bounded by the configured scan
	// window) for an exact natural-key match. Found: amount, note and
	// recorded_at are overwritten in place. Not found: a new row is appended.
	Upsert(ctx context.Context, rec Record) (Record, error)

	ListAll(ctx context.Context) ([]Record, error)
	ListByWorker(ctx context.Context, workerID string) ([]Record, error)
	ListByPeriod(ctx context.Context, periodStart, periodEnd string) ([]Record, error)

	// LastPaidDate returns the maximum period end across the worker's
	// records, or "" when the worker has never been paid. The empty sentinel
	// compares lexically below any real ISO date.
	LastPaidDate(ctx context.Context, workerID string) (string, error)
}
