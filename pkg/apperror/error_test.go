package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{name: "BadRequest", err: BadRequest("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: Unauthorized("nope"), code: http.StatusUnauthorized},
		{name: "NotFound", err: NotFound("missing"), code: http.StatusNotFound},
		{name: "Internal", err: Internal(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.code)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
	if err.Error() != "Internal Server Error" {
		t.Errorf("Error() = %q, want generic message", err.Error())
	}
}
