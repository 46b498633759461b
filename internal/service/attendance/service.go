package attendance

import (
	"context"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/repository/postgresql"
)

type AttendanceService struct {
	db             *database.DB
	writeLock      *locker.WriteLock
	attendanceRepo attendance.Repository
}

func NewAttendanceService(
	db *database.DB,
	writeLock *locker.WriteLock,
	attendanceRepo attendance.Repository,
) *AttendanceService {
	return &AttendanceService{
		db:             db,
		writeLock:      writeLock,
		attendanceRepo: attendanceRepo,
	}
}

// List returns aggregated attendance days, deduplicated last-row-wins and
// sorted by date. With no bounds every stored row is returned.
func (s *AttendanceService) List(ctx context.Context, req attendance.ListRequest) ([]attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		rows []attendance.Day
		err  error
	)
	if req.Bounded() {
		rows, err = s.attendanceRepo.ListRange(ctx, req.StartDate, req.EndDate)
	} else {
		rows, err = s.attendanceRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	aggregated := attendance.AggregateAll(rows)

	dates := make([]string, 0, len(aggregated))
	for date := range aggregated {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	responses := make([]attendance.DayResponse, 0, len(dates))
	for _, date := range dates {
		responses = append(responses, attendance.DayResponse{
			Date:       date,
			Attendance: aggregated[date],
		})
	}
	return responses, nil
}

// Mark stores the status map for one date: update-in-place when the date was
// already marked, append otherwise.
func (s *AttendanceService) Mark(ctx context.Context, req attendance.MarkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			existing, err := s.attendanceRepo.GetByDate(txCtx, req.Date)
			if err != nil {
				return err
			}
			if existing != nil {
				return s.attendanceRepo.UpdateBlob(txCtx, existing.ID, req.Attendance)
			}

			_, err = s.attendanceRepo.Create(txCtx, attendance.Day{
				Date: req.Date,
				Blob: req.Attendance,
			})
			return err
		})
	})
}

// AuditBlobs walks every stored row and reports blobs that no longer decode.
// Undecodable rows are silently skipped during aggregation, so this is the
// operability channel that makes them visible.
func (s *AttendanceService) AuditBlobs(ctx context.Context) error {
	rows, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	bad := 0
	for _, row := range rows {
		if _, err := attendance.DecodeBlob(row.Blob); err != nil {
			bad++
			slog.Warn("attendance blob failed audit",
				"row_id", row.ID, "date", row.Date, "error", err)
		}
	}

	slog.Info("attendance blob audit finished", "rows", len(rows), "undecodable", bad)
	return nil
}
