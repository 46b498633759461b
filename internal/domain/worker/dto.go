package worker

import (
	"github.com/shopspring/decimal"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	SalaryPerDay  string `json:"salaryPerDay"`
	DateOfJoining string `json:"dateOfJoining"`
	Photo         string `json:"photo,omitempty"` // base64 image payload, optional
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.SalaryPerDay) {
		errs = append(errs, validator.ValidationError{Field: "salaryPerDay", Message: "is required"})
	} else if rate, ok := validator.ParseAmount(r.SalaryPerDay); !ok {
		errs = append(errs, validator.ValidationError{Field: "salaryPerDay", Message: "must be numeric"})
	} else if rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salaryPerDay", Message: "must be non-negative"})
	}
	if r.DateOfJoining != "" {
		if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateOfJoining", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Rate returns the parsed daily rate. Validate first.
func (r *CreateRequest) Rate() decimal.Decimal {
	rate, _ := validator.ParseAmount(r.SalaryPerDay)
	return rate
}

type UpdateRateRequest struct {
	ID           string `json:"id"`
	SalaryPerDay string `json:"salaryPerDay"`
}

func (r *UpdateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if validator.IsEmpty(r.SalaryPerDay) {
		errs = append(errs, validator.ValidationError{Field: "salaryPerDay", Message: "is required"})
	} else if rate, ok := validator.ParseAmount(r.SalaryPerDay); !ok {
		errs = append(errs, validator.ValidationError{Field: "salaryPerDay", Message: "must be numeric"})
	} else if rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salaryPerDay", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateRateRequest) Rate() decimal.Decimal {
	rate, _ := validator.ParseAmount(r.SalaryPerDay)
	return rate
}

// Response field names mirror the spreadsheet frontend payloads.
type Response struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	SalaryPerDay  decimal.Decimal `json:"salaryPerDay"`
	DateOfJoining string          `json:"dateOfJoining"`
	Photo         *string         `json:"photo,omitempty"`
}

func ToResponse(w Worker) Response {
	return Response{
		ID:            w.ID,
		Name:          w.Name,
		Position:      w.Position,
		SalaryPerDay:  w.DailyRate,
		DateOfJoining: w.DateOfJoining,
		Photo:         w.PhotoURL,
	}
}
