package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s: %v", want, got, msgAndArgs)
}

var testWorker = worker.Worker{
	ID:        "w1",
	Name:      "Ravi",
	DailyRate: dec("500"),
}

func janAttendance() map[string]attendance.StatusMap {
	return map[string]attendance.StatusMap{
		"2024-01-01": {"w1": attendance.StatusFull},
		"2024-01-02": {"w1": attendance.StatusHalf},
	}
}

func TestReconcileUnpaidBalance(t *testing.T) {
	t.Parallel()

	got := Reconcile(ReconcileInput{
		Worker:      testWorker,
		Attendance:  janAttendance(),
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	assertDecEqual(t, "1.5", got.LifetimeShifts)
	assertDecEqual(t, "750", got.LifetimeEarned)
	assertDecEqual(t, "0", got.LifetimePaid)
	assertDecEqual(t, "750", got.NetPayable)
	assertDecEqual(t, "750", got.CurrentPeriodEarned)
	assertDecEqual(t, "0", got.PreviousDue)
}

func TestReconcileAfterFullPayment(t *testing.T) {
	t.Parallel()

	got := Reconcile(ReconcileInput{
		Worker:     testWorker,
		Attendance: janAttendance(),
		Payments: []payment.Record{
			{WorkerID: "w1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-02", Amount: dec("750")},
		},
		LastPaid:    "2024-01-02",
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	assertDecEqual(t, "750", got.LifetimePaid)
	assertDecEqual(t, "0", got.NetPayable)
	// Paid-through days are out of the current period.
	assertDecEqual(t, "0", got.CurrentPeriodEarned)
	assertDecEqual(t, "0", got.PreviousDue)
}

func TestReconcileEmptyWindowCarriesBalanceAsPreviousDue(t *testing.T) {
	t.Parallel()

	got := Reconcile(ReconcileInput{
		Worker:      testWorker,
		Attendance:  janAttendance(),
		WindowStart: "2024-02-01",
		WindowEnd:   "2024-02-29",
	})

	assertDecEqual(t, "0", got.CurrentPeriodEarned)
	assertDecEqual(t, "750", got.NetPayable)
	assertDecEqual(t, "750", got.PreviousDue)
}

func TestReconcileNetPayableIsWindowIndependent(t *testing.T) {
	t.Parallel()

	in := ReconcileInput{
		Worker: testWorker,
		Attendance: map[string]attendance.StatusMap{
			"2024-01-01": {"w1": attendance.StatusFull},
			"2024-01-15": {"w1": attendance.StatusDouble},
			"2024-02-01": {"w1": attendance.StatusHalf},
		},
		Payments: []payment.Record{
			{WorkerID: "w1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-10", Amount: dec("500")},
		},
		LastPaid: "2024-01-10",
	}

	windows := [][2]string{
		{"2024-01-01", "2024-01-31"},
		{"2024-01-10", "2024-02-10"},
		{"2024-03-01", "2024-03-31"},
	}

	for _, w := range windows {
		in.WindowStart, in.WindowEnd = w[0], w[1]
		got := Reconcile(in)

		assertDecEqual(t, "1250", got.NetPayable, "window", w)
		// The window only splits the balance, never changes it.
		assert.True(t, got.PreviousDue.Add(got.CurrentPeriodEarned).Equal(got.NetPayable),
			"window %v: %s + %s != %s", w, got.PreviousDue, got.CurrentPeriodEarned, got.NetPayable)
	}
}

func TestReconcilePartitionHoldsOnOverpayment(t *testing.T) {
	t.Parallel()

	got := Reconcile(ReconcileInput{
		Worker:     testWorker,
		Attendance: janAttendance(),
		Payments: []payment.Record{
			{WorkerID: "w1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-02", Amount: dec("1000")},
		},
		LastPaid:    "2024-01-02",
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	assertDecEqual(t, "-250", got.NetPayable)
	assertDecEqual(t, "-250", got.PreviousDue)
	assert.True(t, got.PreviousDue.Add(got.CurrentPeriodEarned).Equal(got.NetPayable))
}

func TestReconcilePaymentsOnlyDecreaseBalance(t *testing.T) {
	t.Parallel()

	in := ReconcileInput{
		Worker:      testWorker,
		Attendance:  janAttendance(),
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	}

	prev := Reconcile(in).NetPayable
	for _, amount := range []string{"100", "200", "450"} {
		in.Payments = append(in.Payments, payment.Record{
			WorkerID: "w1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-02", Amount: dec(amount),
		})
		got := Reconcile(in).NetPayable
		assert.True(t, got.LessThan(prev), "balance should shrink: %s -> %s", prev, got)
		prev = got
	}
}

func TestReconcileNoHistory(t *testing.T) {
	t.Parallel()

	got := Reconcile(ReconcileInput{
		Worker:      testWorker,
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	assertDecEqual(t, "0", got.LifetimeShifts)
	assertDecEqual(t, "0", got.LifetimeEarned)
	assertDecEqual(t, "0", got.NetPayable)
	assertDecEqual(t, "0", got.PreviousDue)
}

func TestReconcileNegativeRateCountsAsZero(t *testing.T) {
	t.Parallel()

	w := testWorker
	w.DailyRate = dec("-500")

	got := Reconcile(ReconcileInput{
		Worker:      w,
		Attendance:  janAttendance(),
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	assertDecEqual(t, "1.5", got.LifetimeShifts)
	assertDecEqual(t, "0", got.LifetimeEarned)
	assertDecEqual(t, "0", got.NetPayable)
}

func TestReconcileNameKeyedWorker(t *testing.T) {
	t.Parallel()

	// Rows imported before ids existed key attendance by worker name.
	legacy := worker.Worker{Name: "Sita", DailyRate: dec("400")}

	got := Reconcile(ReconcileInput{
		Worker: legacy,
		Attendance: map[string]attendance.StatusMap{
			"2024-01-01": {"Sita": attendance.StatusDouble},
		},
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	assertDecEqual(t, "2", got.LifetimeShifts)
	assertDecEqual(t, "800", got.LifetimeEarned)
}

func TestReconcileMixedStatuses(t *testing.T) {
	t.Parallel()

	got := Reconcile(ReconcileInput{
		Worker: testWorker,
		Attendance: map[string]attendance.StatusMap{
			"2024-01-01": {"w1": attendance.StatusFull},
			"2024-01-02": {"w1": attendance.StatusOneHalf},
			"2024-01-03": {"w1": attendance.StatusTriple},
			"2024-01-04": {"w1": attendance.StatusAbsent},
			"2024-01-05": {"w1": attendance.Status("P")},
			"2024-01-06": {"w1": attendance.Status("garbage")},
		},
		WindowStart: "2024-01-01",
		WindowEnd:   "2024-01-31",
	})

	// 1 + 1.5 + 3 + 0 + 1 + 0
	assertDecEqual(t, "6.5", got.LifetimeShifts)
	assertDecEqual(t, "3250", got.LifetimeEarned)
}
