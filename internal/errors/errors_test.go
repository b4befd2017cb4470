package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and value",
			err:  NewValidationError("city", "X", "too short"),
			want: `validation failed for city="X": too short`,
		},
		{
			name: "field only",
			err:  NewValidationError("hotelCode", "", "is required"),
			want: "validation failed for hotelCode: is required",
		},
		{
			name: "message only",
			err:  NewValidationError("", "", "bad input"),
			want: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("location", "Kayseri")
	if got := err.Error(); got != "location not found: Kayseri" {
		t.Errorf("Error() = %q", got)
	}

	err = &NotFoundError{Identifier: "123"}
	if got := err.Error(); got != "not found: 123" {
		t.Errorf("Error() = %q", got)
	}
}

func TestUpstreamError(t *testing.T) {
	transportErr := fmt.Errorf("connection refused")
	err := &UpstreamError{Method: "POST", Path: "/search", Err: transportErr}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() should include underlying error, got %q", err.Error())
	}
	if !errors.Is(err, transportErr) {
		t.Error("Unwrap should expose the transport error")
	}

	err = &UpstreamError{Method: "GET", Path: "/detail", StatusCode: 404, Body: "not found"}
	want := "upstream request GET /detail returned 404: not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &UpstreamError{Method: "GET", Path: "/detail", StatusCode: 500}
	if got := err.Error(); got != "upstream request GET /detail returned 500" {
		t.Errorf("Error() = %q", got)
	}
}

func TestClassifiers(t *testing.T) {
	vErr := NewValidationError("city", "", "required")
	nErr := NewNotFoundError("location", "Kayseri")
	uErr := &UpstreamError{Method: "GET", Path: "/x", StatusCode: 500}
	plain := fmt.Errorf("boom")

	if !IsValidation(vErr) || IsValidation(nErr) || IsValidation(plain) {
		t.Error("IsValidation misclassified")
	}
	if !IsNotFound(nErr) || IsNotFound(uErr) {
		t.Error("IsNotFound misclassified")
	}
	if !IsUpstream(uErr) || IsUpstream(vErr) {
		t.Error("IsUpstream misclassified")
	}

	codes := map[error]string{
		nil:   "",
		vErr:  "validation",
		nErr:  "not_found",
		uErr:  "upstream",
		plain: "internal",
	}
	for err, want := range codes {
		if got := Code(err); got != want {
			t.Errorf("Code(%v) = %q, want %q", err, got, want)
		}
	}
}
