package http

import (
	"math"
	"reflect"

	"studentloan-backend/internal/domain/loan"
	"studentloan-backend/pkg/id"
	"studentloan-backend/pkg/money"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// decimals are validated through their canonical string form; formatting
	// an unbounded one is itself the expensive part, so those become text
	// that no decimal tag accepts
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			if !money.Bounded(d) {
				return outOfRange
			}
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	// customer/loan ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() == reflect.String {
			d, ok := asDecimal(fl.Field())
			return ok && money.TwoPlaces(d)
		}
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() == reflect.String {
			d, ok := asDecimal(fl.Field())
			return ok && d.IsPositive()
		}
		return fl.Field().Float() > 0
	})
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		return loan.Status(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

const outOfRange = "out-of-range"

func asDecimal(f reflect.Value) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(f.String())
	return d, err == nil && money.Bounded(d)
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "positive":
			out = append(out, FieldError{Field: field, Message: "must be greater than 0"})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of pending, approved, declined"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date formatted " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " long"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " long"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
