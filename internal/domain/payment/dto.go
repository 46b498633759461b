package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type SaveRequest struct {
	WorkerID  string `json:"employeeId"`
	Amount    string `json:"amount"`
	Note      string `json:"note"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *SaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required"})
	} else if amount, ok := validator.ParseAmount(r.Amount); !ok {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be numeric"})
	} else if amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
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

// ParsedAmount returns the parsed amount. Validate first.
func (r *SaveRequest) ParsedAmount() decimal.Decimal {
	amount, _ := validator.ParseAmount(r.Amount)
	return amount
}

type ListRequest struct {
	WorkerID  string `json:"employeeId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.StartDate == "") != (r.EndDate == "") {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate and endDate must be supplied together"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	WorkerID  string          `json:"employeeId"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Timestamp string          `json:"timestamp"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		WorkerID:  rec.WorkerID,
		Amount:    rec.Amount,
		Note:      rec.Note,
		StartDate: rec.PeriodStart,
		EndDate:   rec.PeriodEnd,
		Timestamp: rec.RecordedAt.UTC().Format(time.RFC3339),
	}
}

type SaveResponse struct {
	Recorded  bool   `json:"recorded"`
	Timestamp string `json:"timestamp"`
}
