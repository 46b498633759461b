package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payroll"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
)

// ReconcileInput is everything needed to settle one worker's balance for one
// reporting window.
type ReconcileInput struct {
	Worker worker.Worker

	// Attendance is the full aggregated history, one status map per date.
	Attendance map[string]attendance.StatusMap

	// Payments are the worker's ledger records over all time.
	Payments []payment.Record

	// LastPaid is the worker's most recent paid-through date, "" when the
	// worker has never been paid.
	LastPaid string

	WindowStart string
	WindowEnd   string
}

// Reconcile computes a worker's summary from full history. Outstanding balance
// is always lifetime earned minus lifetime paid; the reporting window only
// decides how that balance is split between the current period and carry-over
// dues. Shrinking or shifting the window can never change the total owed.
func Reconcile(in ReconcileInput) payroll.WorkerSummary {
	rate := in.Worker.DailyRate
	if rate.IsNegative() {
		rate = decimal.Zero
	}

	key := in.Worker.Key()

	lifetimeShifts := sumShifts(in.Attendance, key)
	lifetimeEarned := lifetimeShifts.Mul(rate)

	lifetimePaid := decimal.Zero
	for _, rec := range in.Payments {
		lifetimePaid = lifetimePaid.Add(rec.Amount)
	}

	netPayable := lifetimeEarned.Sub(lifetimePaid)

	// Days paid through LastPaid are already settled; only strictly newer days
	// in the window count toward the current period.
	current := attendance.FilterRange(in.Attendance, in.WindowStart, in.WindowEnd, in.LastPaid)
	currentShifts := sumShifts(current, key)
	currentEarned := currentShifts.Mul(rate)

	// Derived by subtraction so the two parts always recompose to NetPayable
	// exactly, overpayments included.
	previousDue := netPayable.Sub(currentEarned)

	return payroll.WorkerSummary{
		WorkerID:            in.Worker.ID,
		Name:                in.Worker.Name,
		SalaryPerDay:        in.Worker.DailyRate,
		LifetimeShifts:      lifetimeShifts,
		LifetimeEarned:      lifetimeEarned,
		LifetimePaid:        lifetimePaid,
		NetPayable:          netPayable,
		CurrentPeriodShifts: currentShifts,
		CurrentPeriodEarned: currentEarned,
		PreviousDue:         previousDue,
		LastPaidDate:        in.LastPaid,
	}
}

func sumShifts(days map[string]attendance.StatusMap, key string) decimal.Decimal {
	total := decimal.Zero
	for _, statuses := range days {
		total = total.Add(statuses[key].Multiplier())
	}
	return total
}
