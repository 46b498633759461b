package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one ledger row. (WorkerID, PeriodStart, PeriodEnd) is the natural
// key: at most one live record per key inside the upsert scan window.
type Record struct {
	ID          int64
	WorkerID    string
	PeriodStart string // ISO YYYY-MM-DD
	PeriodEnd   string // ISO YYYY-MM-DD
	Amount      decimal.Decimal
	Note        string
	RecordedAt  time.Time
}
