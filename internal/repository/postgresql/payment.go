package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db         *database.DB
	scanWindow int
}

// NewPaymentRepository builds the ledger repository. scanWindow bounds how
// many of the most recent rows an upsert inspects for its natural-key match;
// rows older than the window age out of update-in-place eligibility.
func NewPaymentRepository(db *database.DB, scanWindow int) payment.Repository {
	return &paymentRepository{db: db, scanWindow: scanWindow}
}

// Upsert implements payment.Repository. Callers run it inside a transaction
// and under the global write lock, so the select-then-write pair cannot
// interleave with another writer.
func (r *paymentRepository) Upsert(ctx context.Context, rec payment.Record) (payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	findQuery := `
		SELECT id FROM (
			SELECT id, worker_id, period_start, period_end
			FROM payments
			ORDER BY id DESC
			LIMIT $4
		) recent
		WHERE worker_id = $1 AND period_start = $2 AND period_end = $3
		ORDER BY id DESC
		LIMIT 1
	`

	var existingID int64
	err := q.QueryRow(ctx, findQuery, rec.WorkerID, rec.PeriodStart, rec.PeriodEnd, r.scanWindow).Scan(&existingID)
	switch {
	case err == pgx.ErrNoRows:
		insertQuery := `
			INSERT INTO payments (worker_id, period_start, period_end, amount, note, recorded_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			RETURNING id, recorded_at
		`
		err = q.QueryRow(ctx, insertQuery,
			rec.WorkerID, rec.PeriodStart, rec.PeriodEnd, rec.Amount, rec.Note,
		).Scan(&rec.ID, &rec.RecordedAt)
		if err != nil {
			return payment.Record{}, fmt.Errorf("failed to append payment: %w", err)
		}
		return rec, nil

	case err != nil:
		return payment.Record{}, fmt.Errorf("failed to scan recent payments: %w", err)
	}

	updateQuery := `
		UPDATE payments
		SET amount = $2, note = $3, recorded_at = NOW()
		WHERE id = $1
		RETURNING recorded_at
	`
	if err := q.QueryRow(ctx, updateQuery, existingID, rec.Amount, rec.Note).Scan(&rec.RecordedAt); err != nil {
		return payment.Record{}, fmt.Errorf("failed to update payment: %w", err)
	}
	rec.ID = existingID

	return rec, nil
}

// ListAll implements payment.Repository. The whole ledger is needed for
// lifetime balances, so no implicit filtering happens here.
func (r *paymentRepository) ListAll(ctx context.Context) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, period_start, period_end, amount, note, recorded_at
		FROM payments
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByWorker implements payment.Repository.
func (r *paymentRepository) ListByWorker(ctx context.Context, workerID string) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, period_start, period_end, amount, note, recorded_at
		FROM payments
		WHERE worker_id = $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for worker: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByPeriod implements payment.Repository. Period match is exact, not a
// range overlap: a payment belongs to the period it was recorded against.
func (r *paymentRepository) ListByPeriod(ctx context.Context, periodStart, periodEnd string) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, period_start, period_end, amount, note, recorded_at
		FROM payments
		WHERE period_start = $1 AND period_end = $2
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for period: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// LastPaidDate implements payment.Repository.
func (r *paymentRepository) LastPaidDate(ctx context.Context, workerID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(period_end), '')
		FROM payments
		WHERE worker_id = $1
	`

	var lastPaid string
	if err := q.QueryRow(ctx, query, workerID).Scan(&lastPaid); err != nil {
		return "", fmt.Errorf("failed to get last paid date: %w", err)
	}

	return lastPaid, nil
}

func scanRecords(rows pgx.Rows) ([]payment.Record, error) {
	var records []payment.Record
	for rows.Next() {
		var rec payment.Record
		if err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.PeriodStart, &rec.PeriodEnd,
			&rec.Amount, &rec.Note, &rec.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return records, nil
}
