package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// ListAll implements attendance.Repository. Rows come back in storage order
// (ascending id) so the aggregator's last-row-wins dedup matches append order.
func (r *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, day, status_blob, created_at, updated_at
		FROM attendance_days
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	return scanDays(rows)
}

// ListRange implements attendance.Repository. Day filtering is a lexical
// string comparison; day values are zero-padded ISO dates.
func (r *attendanceRepository) ListRange(ctx context.Context, startDate, endDate string) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, day, status_blob, created_at, updated_at
		FROM attendance_days
		WHERE day >= $1 AND day <= $2
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return scanDays(rows)
}

// GetByDate implements attendance.Repository. When historical duplicates
// exist the latest stored row is the authoritative one.
func (r *attendanceRepository) GetByDate(ctx context.Context, date string) (*attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, day, status_blob, created_at, updated_at
		FROM attendance_days
		WHERE day = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var day attendance.Day
	err := q.QueryRow(ctx, query, date).Scan(
		&day.ID, &day.Date, &day.Blob, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return &day, nil
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (day, status_blob)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, day.Date, day.Blob).Scan(
		&day.ID, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to create attendance day: %w", err)
	}

	return day, nil
}

// UpdateBlob implements attendance.Repository.
func (r *attendanceRepository) UpdateBlob(ctx context.Context, id int64, blob string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days
		SET status_blob = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, blob)
	if err != nil {
		return fmt.Errorf("failed to update attendance blob: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attendance row %d vanished during update", id)
	}

	return nil
}

func scanDays(rows pgx.Rows) ([]attendance.Day, error) {
	var days []attendance.Day
	for rows.Next() {
		var day attendance.Day
		if err := rows.Scan(&day.ID, &day.Date, &day.Blob, &day.CreatedAt, &day.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance days: %w", err)
	}
	return days, nil
}
