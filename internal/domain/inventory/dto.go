package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

type StockDeltaRequest struct {
	Color    string `json:"color"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes"`
}

func (r *StockDeltaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Color) {
		errs = append(errs, validator.ValidationError{Field: "color", Message: "is required"})
	}
	if validator.IsEmpty(r.Quantity) {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "is required"})
	} else if qty, ok := validator.ParseAmount(r.Quantity); !ok {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be numeric"})
	} else if qty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedQuantity returns the parsed quantity. Validate first.
func (r *StockDeltaRequest) ParsedQuantity() decimal.Decimal {
	qty, _ := validator.ParseAmount(r.Quantity)
	return qty
}

type AddColorRequest struct {
	ColorName string `json:"colorName"`
	ImageData string `json:"imageData,omitempty"` // base64 image payload, optional
}

func (r *AddColorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ColorName) {
		errs = append(errs, validator.ValidationError{Field: "colorName", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StockLevelResponse struct {
	Color    string          `json:"color"`
	Quantity decimal.Decimal `json:"quantity"`
}

type ColorResponse struct {
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}
