package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID            string
	Name          string
	Position      string
	DailyRate     decimal.Decimal
	DateOfJoining string // ISO YYYY-MM-DD
	PhotoURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Key returns the identifier used inside daily status maps and on ledger
// rows. Rows imported from before ids existed are keyed by worker name.
func (w Worker) Key() string {
	if w.ID != "" {
		return w.ID
	}
	return w.Name
}
