package attendance

import "context"

// Repository is the attendance day table. Listing methods return rows in
// storage order; AggregateAll depends on that for last-row-wins dedup.
type Repository interface {
	ListAll(ctx context.Context) ([]Day, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]Day, error)

	// GetByDate returns the latest stored row for the date, or nil when the
	// date has never been marked.
	GetByDate(ctx context.Context, date string) (*Day, error)

	Create(ctx context.Context, day Day) (Day, error)
	UpdateBlob(ctx context.Context, id int64, blob string) error
}
