package regcheck

import (
	"context"

	"github.com/carbase/carbase/internal/application/ports"
)

// Disabled is used when REGISTRATION_CHECK_URL is not set: every record
// renders as unregistered, without the per-request log noise of a dead
// endpoint.
type Disabled struct{}

// NewDisabled returns a RegistrationChecker that always answers false.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Check implements ports.RegistrationChecker.
func (Disabled) Check(ctx context.Context, plate, ownerEmail string) (bool, error) {
	return false, nil
}

var _ ports.RegistrationChecker = (*Disabled)(nil)
