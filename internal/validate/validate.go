// Package validate turns decoded request input into typed, well-formed
// request structs. Every builder reports all field failures it can find, in
// declaration order, so the caller sees the full picture in one round trip.
package validate

import "github.com/pixelforge/studio-api/internal/model"

// Input is decoded request input: JSON body fields or query parameters.
// Query parameters arrive as strings; JSON values keep their decoded types.
type Input map[string]interface{}

// Errors collects field failures in the order they were found.
type Errors struct {
	fields []model.FieldError
}

// Add records one field failure.
func (e *Errors) Add(field, message string) {
	e.fields = append(e.fields, model.FieldError{Field: field, Message: message})
}

// Empty reports whether no failure was recorded.
func (e *Errors) Empty() bool {
	return len(e.fields) == 0
}

// Fields returns the recorded failures in order.
func (e *Errors) Fields() []model.FieldError {
	return e.fields
}

// lookup fetches a raw value, distinguishing absent from present-but-empty.
func (in Input) lookup(key string) (interface{}, bool) {
	v, ok := in[key]
	return v, ok
}
