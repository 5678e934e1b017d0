// Package forms holds the state of every input form: the sign-in screens, the
// three signup flows and the community post composer.
package forms

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/oncampus/internal/domain"
)

// Callback receives the completed record of a form.
type Callback[T any] func(ctx context.Context, value T) error

// IncompleteError lists the required fields that were left empty.
type IncompleteError struct {
	Fields []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrIncompleteForm, strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is match domain.ErrIncompleteForm.
func (e *IncompleteError) Unwrap() error {
	return domain.ErrIncompleteForm
}

// MissingFields returns the empty fields reported by err, if any.
func MissingFields(err error) []string {
	var incomplete *IncompleteError
	if errors.As(err, &incomplete) {
		return incomplete.Fields
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json names, which is what clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the validate tags of any record and reports empty required
// fields as an *IncompleteError.
func Validate(v any) error {
	return check(v)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &IncompleteError{Fields: fields}
}

func checkMinItems(field string, items []string, minItems int) error {
	if err := validate.Var(items, fmt.Sprintf("min=%d", minItems)); err != nil {
		return &IncompleteError{Fields: []string{field}}
	}
	return nil
}

func toggle(items []string, item string) []string {
	for i, existing := range items {
		if existing == item {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return append(items, item)
}
