package aesctr

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     &ValidationError{Field: "key", Value: 8, Message: "got 8 bytes, want 16"},
			wantMsg: "aesctr: validation error: key: got 8 bytes, want 16",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "buffer cannot be nil"},
			wantMsg: "aesctr: validation error: buffer cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := &ValidationError{Field: "key", Message: "bad", Err: ErrInvalidKeyLength}
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("errors.Is did not find wrapped sentinel")
	}
}

func TestBackendError(t *testing.T) {
	err := &BackendError{Op: "encrypt", Message: "crypto/aes rejected key", Err: ErrInvalidKeyLength}
	want := "aesctr: backend error: encrypt: crypto/aes rejected key"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("errors.Is did not find wrapped sentinel")
	}
}

func TestPoolError(t *testing.T) {
	err := &PoolError{Op: "assign", Message: "pool is closed", Err: ErrPoolClosed}
	want := "aesctr: pool error: assign: pool is closed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsHelpers(t *testing.T) {
	var v error = &ValidationError{Message: "x"}
	var b error = &BackendError{Op: "x", Message: "x"}
	var p error = &PoolError{Op: "x", Message: "x"}

	if !IsValidationError(v) || IsValidationError(b) || IsValidationError(p) {
		t.Errorf("IsValidationError misclassified")
	}
	if !IsBackendError(b) || IsBackendError(v) || IsBackendError(p) {
		t.Errorf("IsBackendError misclassified")
	}
	if !IsPoolError(p) || IsPoolError(v) || IsPoolError(b) {
		t.Errorf("IsPoolError misclassified")
	}
}
