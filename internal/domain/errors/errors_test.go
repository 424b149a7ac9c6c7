package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	if ErrVehicleNotFound == nil {
		t.Error("ErrVehicleNotFound should not be nil")
	}
	if ErrPlateTaken == nil {
		t.Error("ErrPlateTaken should not be nil")
	}
	if ErrModelNotFound == nil {
		t.Error("ErrModelNotFound should not be nil")
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("insert vehicle", cause)
	if !errors.Is(err, cause) {
		t.Error("StorageError should unwrap to its cause")
	}
	if !IsStorage(err) {
		t.Error("IsStorage should report true for a StorageError")
	}
	if !IsStorage(fmt.Errorf("outer: %w", err)) {
		t.Error("IsStorage should see through wrapping")
	}
	if IsStorage(cause) {
		t.Error("IsStorage should report false for a plain error")
	}
}
