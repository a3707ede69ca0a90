package aesctr

import "fmt"

// Input validation helpers. Every one of these returns a *ValidationError;
// callers on the contract-violation path panic with it (spec §7).

// validateKey checks that a key is exactly KeySize bytes.
func validateKey(key []byte) error {
	if len(key) != KeySize {
		return &ValidationError{
			Field:   "key",
			Value:   len(key),
			Message: fmt.Sprintf("got %d bytes, want %d", len(key), KeySize),
			Err:     ErrInvalidKeyLength,
		}
	}
	return nil
}

// validateIVBytes checks that an IV is exactly BlockSize bytes.
func validateIVBytes(iv []byte) error {
	if len(iv) != BlockSize {
		return &ValidationError{
			Field:   "iv",
			Value:   len(iv),
			Message: fmt.Sprintf("got %d bytes, want %d", len(iv), BlockSize),
			Err:     ErrInvalidIVLength,
		}
	}
	return nil
}

// validateSchedule checks that a schedule has exactly ScheduleRounds round
// keys (I1). Schedule is a fixed-size array, so this only exists to give the
// contract a named check call sites can point at.
func validateSchedule(s *Schedule) error {
	if s == nil {
		return &ValidationError{
			Field:   "schedule",
			Message: "schedule cannot be nil",
			Err:     ErrInvalidSchedule,
		}
	}
	return nil
}

// validateBuffer rejects a nil buffer; an empty, non-nil buffer is valid
// (scenario: empty buffer round-trips as a no-op, spec §8).
func validateBuffer(buf []byte, name string) error {
	if buf == nil {
		return &ValidationError{
			Field:   name,
			Message: "buffer cannot be nil",
		}
	}
	return nil
}
