package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExtractErrorMessage(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *ExtractError
		want string
	}{
		{
			name: "plain",
			err:  NewInternalError("render failed", base),
			want: "[internal] render failed: boom",
		},
		{
			name: "with resource",
			err:  NewValidationError("bad value", base).WithResource("Default"),
			want: "[validation] bad value (resource=Default): boom",
		},
		{
			name: "with resource and parameter",
			err:  NewValidationError("bad value", base).WithResource("Default").WithParameter("Url"),
			want: "[validation] bad value (resource=Default, parameter=Url): boom",
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

func TestErrorClassification(t *testing.T) {
	verr := NewValidationError("bad manifest", nil)
	perr := NewPersistenceError("store down", errors.New("disk full"))

	if !IsValidation(verr) || IsValidation(perr) {
		t.Error("IsValidation misclassified")
	}
	if !IsPersistence(perr) || IsPersistence(verr) {
		t.Error("IsPersistence misclassified")
	}

	// Classification survives wrapping.
	wrapped := fmt.Errorf("run failed: %w", verr)
	if !IsValidation(wrapped) {
		t.Error("wrapped validation error not detected")
	}
	if !errors.Is(wrapped, verr) {
		t.Error("errors.Is should match through the wrap")
	}

	if !strings.Contains(perr.Error(), "disk full") {
		t.Error("underlying error message lost")
	}
}
