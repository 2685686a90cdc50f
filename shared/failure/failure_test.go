package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"bouncepro-reminder/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		err := failure.BadRequest(errors.New("invalid payload"))

		if err == nil {
			t.Fatal("expected error, got nil")
		}

		if err.Error() != "invalid payload" {
			t.Errorf("expected message 'invalid payload', got %s", err.Error())
		}

		if failure.GetCode(err) != http.StatusBadRequest {
			t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
		}
	})

	t.Run("with nil error", func(t *testing.T) {
		if err := failure.BadRequest(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("recipient email is required")

	if err.Error() != "recipient email is required" {
		t.Errorf("expected message 'recipient email is required', got %s", err.Error())
	}

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}
}

func TestInternalError(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		err := failure.InternalError(errors.New("database gone"))

		if failure.GetCode(err) != http.StatusInternalServerError {
			t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(err))
		}
	})

	t.Run("with nil error", func(t *testing.T) {
		if err := failure.InternalError(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("booking")

	if err.Error() != "booking" {
		t.Errorf("expected message 'booking', got %s", err.Error())
	}

	if failure.GetCode(err) != http.StatusNotFound {
		t.Errorf("expected code %d, got %d", http.StatusNotFound, failure.GetCode(err))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.BadRequestFromString("bad"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			err:      wrap(failure.NotFound("tenant")),
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("plain"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}

type wrapped struct {
	inner error
}

func (w wrapped) Error() string { return "wrapped: " + w.inner.Error() }

func (w wrapped) Unwrap() error { return w.inner }

func wrap(err error) error {
	return wrapped{inner: err}
}
