package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is one append-only stock movement. Usage is recorded as a
// negative quantity; available stock is the per-color sum of all entries.
type StockEntry struct {
	ID         int64
	Color      string
	Quantity   decimal.Decimal
	Note       string
	RecordedAt time.Time
}

// StockLevel is the aggregated quantity for one color.
type StockLevel struct {
	Color    string
	Quantity decimal.Decimal
}

// Color is a swatch master record.
type Color struct {
	ID        int64
	Name      string
	ImageURL  *string
	CreatedAt time.Time
}
