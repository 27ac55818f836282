// Package validation checks request structs against their `validate` tags
// and reports every offending field as a Violation named after its JSON key.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Violation describes one offending request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations accumulates problems in the order the fields were checked.
type Violations []Violation

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validator: %v", err))
	}
	return v
}

// Struct validates s and returns one violation per failing field, in field
// declaration order. It returns nil when s is valid.
func Struct(s any) Violations {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{{Field: "", Message: err.Error()}}
	}
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "datetime":
		return "must be a date in " + fe.Param() + " layout"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

// Add appends a violation for field.
func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// Err returns nil when no violation was recorded.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &Error{Violations: v}
}

// Error carries every violation found for a single request.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", violation.Field, violation.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// As extracts the violation list from anywhere in err's chain.
func As(err error) (Violations, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Violations, true
	}
	return nil, false
}
