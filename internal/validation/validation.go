// Package validation holds the input schemas accepted by the dashboard and
// turns ozzo-validation failures into field-level errors.
package validation

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ErrInvalid is matched by every *Error through errors.Is.
var ErrInvalid = errors.New("invalid input")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every failing field of one input, sorted by field path.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Details returns the failures keyed by field path.
func (e *Error) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// Field builds a single-field error for checks done outside a schema.
func Field(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// wrap converts the result of validation.ValidateStruct into *Error.
// Nested validation.Errors are flattened into dotted paths.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	out := &Error{}
	flatten("", errs, out)
	sort.Slice(out.Fields, func(i, j int) bool {
		return out.Fields[i].Field < out.Fields[j].Field
	})
	return out
}

func flatten(prefix string, errs validation.Errors, out *Error) {
	for key, fieldErr := range errs {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			flatten(path, nested, out)
			continue
		}
		out.Fields = append(out.Fields, FieldError{Field: path, Message: fieldErr.Error()})
	}
}

// notBlank rejects strings made only of whitespace; validation.Required
// alone accepts "   ".
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

var nonNegative = validation.Min(0.0)
