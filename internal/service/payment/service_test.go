package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainpayment "github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type fakePaymentRepo struct {
	records []domainpayment.Record
}

func (f *fakePaymentRepo) Upsert(ctx context.Context, rec domainpayment.Record) (domainpayment.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakePaymentRepo) ListAll(ctx context.Context) ([]domainpayment.Record, error) {
	return f.records, nil
}

func (f *fakePaymentRepo) ListByWorker(ctx context.Context, workerID string) ([]domainpayment.Record, error) {
	var out []domainpayment.Record
	for _, rec := range f.records {
		if rec.WorkerID == workerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByPeriod(ctx context.Context, periodStart, periodEnd string) ([]domainpayment.Record, error) {
	var out []domainpayment.Record
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

func newListService() *PaymentService {
	repo := &fakePaymentRepo{records: []domainpayment.Record{
		{WorkerID: "w1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-15", Amount: decimal.NewFromInt(500)},
		{WorkerID: "w1", PeriodStart: "2024-01-16", PeriodEnd: "2024-01-31", Amount: decimal.NewFromInt(600)},
		{WorkerID: "w2", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-15", Amount: decimal.NewFromInt(400)},
	}}
	return NewPaymentService(nil, locker.NewWriteLock(time.Second), repo)
}

func TestListUnfilteredReturnsCompleteLedger(t *testing.T) {
	t.Parallel()

	svc := newListService()
	records, err := svc.List(context.Background(), domainpayment.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestListByWorker(t *testing.T) {
	t.Parallel()

	svc := newListService()
	records, err := svc.List(context.Background(), domainpayment.ListRequest{WorkerID: "w1"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "w1", rec.WorkerID)
	}
}

func TestListByPeriod(t *testing.T) {
	t.Parallel()

	svc := newListService()
	records, err := svc.List(context.Background(), domainpayment.ListRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-15",
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListByWorkerAndPeriod(t *testing.T) {
	t.Parallel()

	svc := newListService()
	records, err := svc.List(context.Background(), domainpayment.ListRequest{
		WorkerID:  "w1",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-15",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "w1", records[0].WorkerID)
	assert.Equal(t, "2024-01-15", records[0].EndDate)
}

func TestListRejectsLoneBound(t *testing.T) {
	t.Parallel()

	svc := newListService()
	_, err := svc.List(context.Background(), domainpayment.ListRequest{EndDate: "2024-01-31"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestSaveRejectsInvalidRequestBeforeLocking(t *testing.T) {
	t.Parallel()

	svc := newListService()
	_, err := svc.Save(context.Background(), domainpayment.SaveRequest{
		WorkerID:  "w1",
		Amount:    "NaN-ish",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
