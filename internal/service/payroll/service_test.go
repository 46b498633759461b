package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/payroll"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type fakeWorkerRepo struct {
	workers []worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	return f.workers, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) UpdateRate(ctx context.Context, id string, rate decimal.Decimal) error {
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	rows []attendance.Day
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context) ([]attendance.Day, error) {
	return f.rows, nil
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, startDate, endDate string) ([]attendance.Day, error) {
	var out []attendance.Day
	for _, row := range f.rows {
		if row.Date >= startDate && row.Date <= endDate {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetByDate(ctx context.Context, date string) (*attendance.Day, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Date == date {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	f.rows = append(f.rows, day)
	return day, nil
}

func (f *fakeAttendanceRepo) UpdateBlob(ctx context.Context, id int64, blob string) error {
	return nil
}

type fakePaymentRepo struct {
	records []payment.Record
}

func (f *fakePaymentRepo) Upsert(ctx context.Context, rec payment.Record) (payment.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakePaymentRepo) ListAll(ctx context.Context) ([]payment.Record, error) {
	return f.records, nil
}

func (f *fakePaymentRepo) ListByWorker(ctx context.Context, workerID string) ([]payment.Record, error) {
	var out []payment.Record
	for _, rec := range f.records {
		if rec.WorkerID == workerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByPeriod(ctx context.Context, periodStart, periodEnd string) ([]payment.Record, error) {
	var out []payment.Record
	for _, rec := range f.records {
		if rec.PeriodStart == periodStart && rec.PeriodEnd == periodEnd {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) LastPaidDate(ctx context.Context, workerID string) (string, error) {
	last := ""
	for _, rec := range f.records {
		if rec.WorkerID == workerID && rec.PeriodEnd > last {
			last = rec.PeriodEnd
		}
	}
	return last, nil
}

func newTestService() *PayrollService {
	workerRepo := &fakeWorkerRepo{workers: []worker.Worker{
		{ID: "w1", Name: "Ravi", DailyRate: dec("500")},
		{ID: "w2", Name: "Sita", DailyRate: dec("400")},
	}}
	attendanceRepo := &fakeAttendanceRepo{rows: []attendance.Day{
		{ID: 1, Date: "2024-01-01", Blob: `{"w1":"FULL","w2":"FULL"}`},
		{ID: 2, Date: "2024-01-02", Blob: `{"w1":"HALF"}`},
		{ID: 3, Date: "2024-01-03", Blob: `{"w2":"DOUBLE"}`},
	}}
	paymentRepo := &fakePaymentRepo{records: []payment.Record{
		{WorkerID: "w1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-01", Amount: dec("500")},
	}}
	return NewPayrollService(workerRepo, attendanceRepo, paymentRepo)
}

func TestSummaryAllWorkers(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	summaries, err := svc.Summary(context.Background(), payroll.SummaryRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]payroll.WorkerSummary{}
	for _, s := range summaries {
		byID[s.WorkerID] = s
	}

	w1 := byID["w1"]
	assertDecEqual(t, "1.5", w1.LifetimeShifts)
	assertDecEqual(t, "750", w1.LifetimeEarned)
	assertDecEqual(t, "500", w1.LifetimePaid)
	assertDecEqual(t, "250", w1.NetPayable)
	// 2024-01-01 is paid through; only the half day on the 2nd is current.
	assertDecEqual(t, "250", w1.CurrentPeriodEarned)
	assertDecEqual(t, "0", w1.PreviousDue)
	assert.Equal(t, "2024-01-01", w1.LastPaidDate)

	w2 := byID["w2"]
	assertDecEqual(t, "3", w2.LifetimeShifts)
	assertDecEqual(t, "1200", w2.LifetimeEarned)
	assertDecEqual(t, "0", w2.LifetimePaid)
	assertDecEqual(t, "1200", w2.NetPayable)
	assert.Empty(t, w2.LastPaidDate)
}

func TestSummarySingleWorker(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	summaries, err := svc.Summary(context.Background(), payroll.SummaryRequest{
		WorkerID:  "w2",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "w2", summaries[0].WorkerID)
}

func TestSummaryUnknownWorker(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Summary(context.Background(), payroll.SummaryRequest{
		WorkerID:  "missing",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestSummaryRejectsBadWindow(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Summary(context.Background(), payroll.SummaryRequest{
		StartDate: "2024-02-01",
		EndDate:   "2024-01-01",
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestSummaryIgnoresUndecodableRows(t *testing.T) {
	t.Parallel()

	workerRepo := &fakeWorkerRepo{workers: []worker.Worker{
		{ID: "w1", Name: "Ravi", DailyRate: dec("500")},
	}}
	attendanceRepo := &fakeAttendanceRepo{rows: []attendance.Day{
		{ID: 1, Date: "2024-01-01", Blob: `{"w1":"FULL"}`},
		{ID: 2, Date: "2024-01-02", Blob: `broken`},
	}}
	svc := NewPayrollService(workerRepo, attendanceRepo, &fakePaymentRepo{})

	summaries, err := svc.Summary(context.Background(), payroll.SummaryRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assertDecEqual(t, "1", summaries[0].LifetimeShifts)
}
