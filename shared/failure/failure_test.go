package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"forge/shared/failure"
)

func TestFailureError(t *testing.T) {
	err := failure.BadRequestFromString("something is wrong")

	if err.Error() != "something is wrong" {
		t.Errorf("expected message to be preserved, got %s", err.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("bad input")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad input",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("bad input"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad input",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("invalid refresh token"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid refresh token",
		},
		{
			name:     "not found",
			err:      failure.NotFound("gallery item not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "gallery item not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("username already taken"),
			wantCode: http.StatusConflict,
			wantMsg:  "username already taken",
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("admins only"),
			wantCode: http.StatusForbidden,
			wantMsg:  "admins only",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
		{
			name:     "sign in required",
			err:      failure.SignInRequired,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "sign in required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, got)
			}

			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, tt.err.Error())
			}
		})
	}
}

func TestNilErrorsProduceNil(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCodeDefaultsToInternal(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for plain errors, got %d", http.StatusInternalServerError, got)
	}
}

func TestGetCodeUnwrapsWrappedFailures(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), failure.NotFound("review not found"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected %d for wrapped failures, got %d", http.StatusNotFound, got)
	}
}
