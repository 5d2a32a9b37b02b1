package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"crowdWatch/pkg/e"
	"crowdWatch/pkg/validator"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object into T and validates it.
// Every failure wraps e.ErrInvalidInput.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var target T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&target); err != nil {
		return target, fmt.Errorf("decode body: %v: %w", err, e.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return target, fmt.Errorf("trailing data after JSON object: %w", e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(target); err != nil {
		return target, fmt.Errorf("%v: %w", err, e.ErrInvalidInput)
	}
	return target, nil
}
