// Package validation checks an inbound product record against the API's field
// rules before it reaches a handler. All rules are evaluated so the client
// gets the complete set of problems in one round trip.
package validation

import (
	"github.com/go-playground/validator/v10"

	"katalog/internal/models"
)

// FieldError is one field-level constraint failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fixed messages, one per rule.
const (
	MsgNameRequired  = "Product name is required"
	MsgNameLength    = "Product name must be between 2 and 100 characters"
	MsgPriceNumber   = "Price must be a number"
	MsgPricePositive = "Price must be a positive number"
	MsgImageURL      = "Image must be a valid URL"
)

var validate = validator.New()

// CheckProduct applies the product field rules in declared order and returns
// every failure. An empty slice means the input satisfies all constraints; the
// input itself is never modified.
func CheckProduct(in *models.ProductInput) []FieldError {
	var errs []FieldError

	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: MsgNameRequired})
	} else if validate.Var(in.Name, "min=2,max=100") != nil {
		// Length is counted in runes, not UTF-16 code units, so names made of
		// astral characters measure slightly shorter than some clients expect.
		errs = append(errs, FieldError{Field: "name", Message: MsgNameLength})
	}

	if price, ok := in.PriceValue(); !ok {
		errs = append(errs, FieldError{Field: "price", Message: MsgPriceNumber})
	} else if validate.Var(price, "gte=0") != nil {
		errs = append(errs, FieldError{Field: "price", Message: MsgPricePositive})
	}

	if validate.Var(in.Image, "required,url") != nil {
		errs = append(errs, FieldError{Field: "image", Message: MsgImageURL})
	}

	return errs
}
