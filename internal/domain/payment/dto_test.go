package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

func validSaveRequest() SaveRequest {
	return SaveRequest{
		WorkerID:  "w1",
		Amount:    "750",
		Note:      "jan",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	}
}

func TestSaveRequestValid(t *testing.T) {
	t.Parallel()

	req := validSaveRequest()
	require.NoError(t, req.Validate())
	assert.Equal(t, "750", req.ParsedAmount().String())
}

func TestSaveRequestRejectsNonNumericAmount(t *testing.T) {
	t.Parallel()

	// The spreadsheet script coerced junk amounts to zero and recorded them.
	// Here they fail validation before anything is written.
	req := validSaveRequest()
	req.Amount = "seven hundred"

	err := req.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "amount")
}

func TestSaveRequestRejectsNegativeAmount(t *testing.T) {
	t.Parallel()

	req := validSaveRequest()
	req.Amount = "-1"

	err := req.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "amount")
}

func TestSaveRequestRejectsInvertedPeriod(t *testing.T) {
	t.Parallel()

	req := validSaveRequest()
	req.StartDate = "2024-01-05"
	req.EndDate = "2024-01-01"

	err := req.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "endDate")
}

func TestSaveRequestRejectsUnpaddedDates(t *testing.T) {
	t.Parallel()

	// Unpadded dates would break lexical range comparisons downstream.
	req := validSaveRequest()
	req.StartDate = "2024-1-1"

	err := req.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "startDate")
}

func TestListRequestBoundsComeTogether(t *testing.T) {
	t.Parallel()

	req := ListRequest{StartDate: "2024-01-01"}
	assert.Error(t, req.Validate())

	req = ListRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"}
	assert.NoError(t, req.Validate())

	req = ListRequest{}
	assert.NoError(t, req.Validate())
}
