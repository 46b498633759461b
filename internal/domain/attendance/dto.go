package attendance

import (
	"encoding/json"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	Date       string `json:"date"`
	Attendance string `json:"attendance"` // JSON status map, kept as sent
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(r.Attendance) {
		errs = append(errs, validator.ValidationError{Field: "attendance", Message: "is required"})
	} else {
		var statuses map[string]string
		if err := json.Unmarshal([]byte(r.Attendance), &statuses); err != nil {
			errs = append(errs, validator.ValidationError{Field: "attendance", Message: "must be a JSON object of worker to status"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Bounded reports whether both bounds were supplied. With no bounds the
// listing returns every stored row; that is the documented default.
func (r *ListRequest) Bounded() bool {
	return r.StartDate != "" && r.EndDate != ""
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.StartDate == "") != (r.EndDate == "") {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate and endDate must be supplied together"})
	}
	if r.Bounded() {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be YYYY-MM-DD"})
		}
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be YYYY-MM-DD"})
		}
		if r.StartDate > r.EndDate {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must not be before startDate"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayResponse is the wire shape of one aggregated attendance day, matching
// what the spreadsheet API returned.
type DayResponse struct {
	Date       string    `json:"date"`
	Attendance StatusMap `json:"attendance"`
}
