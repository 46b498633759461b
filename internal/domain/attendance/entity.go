package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is an attendance status code as stored in a daily status map.
type Status string

const (
	StatusFull    Status = "FULL"
	StatusHalf    Status = "HALF"
	StatusOneHalf Status = "ONE_HALF"
	StatusDouble  Status = "DOUBLE"
	StatusTriple  Status = "TRIPLE"
	StatusAbsent  Status = "ABSENT"
	StatusPresent Status = "PRESENT"

	// statusPresentLegacy is how older spreadsheet exports encoded a plain
	// present day.
	statusPresentLegacy Status = "P"
)

var shiftMultipliers = map[Status]decimal.Decimal{
	StatusFull:          decimal.NewFromInt(1),
	StatusHalf:          decimal.NewFromFloat(0.5),
	StatusOneHalf:       decimal.NewFromFloat(1.5),
	StatusDouble:        decimal.NewFromInt(2),
	StatusTriple:        decimal.NewFromInt(3),
	StatusAbsent:        decimal.Zero,
	StatusPresent:       decimal.NewFromInt(1),
	statusPresentLegacy: decimal.NewFromInt(1),
}

// Multiplier returns the shift weight credited for the status. Unknown or
// missing codes count as zero shifts rather than failing.
func (s Status) Multiplier() decimal.Decimal {
	if m, ok := shiftMultipliers[s]; ok {
		return m
	}
	return decimal.Zero
}

// StatusMap maps a worker key to a status code for one calendar date. The
// worker key is the worker id, or the worker name for rows that predate ids.
type StatusMap map[string]Status

// Day is one stored attendance row: a calendar date plus the encoded status
// map blob for that date. Blob stays opaque at this level; historical data can
// contain malformed blobs and duplicate dates.
type Day struct {
	ID        int64
	Date      string // ISO YYYY-MM-DD
	Blob      string // JSON-encoded StatusMap
	CreatedAt time.Time
	UpdatedAt time.Time
}
