package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	WorkerID  string `json:"employeeId"` // optional: restrict to one worker
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) == 0 && r.StartDate > r.EndDate {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkerSummary is the per-worker reconciliation result for one reporting
// window. NetPayable is window-independent; CurrentPeriodEarned and
// PreviousDue are display subdivisions of it.
type WorkerSummary struct {
	WorkerID            string          `json:"id"`
	Name                string          `json:"name"`
	SalaryPerDay        decimal.Decimal `json:"salaryPerDay"`
	LifetimeShifts      decimal.Decimal `json:"lifetimeShifts"`
	LifetimeEarned      decimal.Decimal `json:"lifetimeEarned"`
	LifetimePaid        decimal.Decimal `json:"lifetimePaid"`
	NetPayable          decimal.Decimal `json:"netPayable"`
	CurrentPeriodShifts decimal.Decimal `json:"currentPeriodShifts"`
	CurrentPeriodEarned decimal.Decimal `json:"currentPeriodEarned"`
	PreviousDue         decimal.Decimal `json:"previousDue"`
	LastPaidDate        string          `json:"lastPaidDate,omitempty"`
}
