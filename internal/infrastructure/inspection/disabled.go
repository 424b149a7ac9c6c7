package inspection

import (
	"context"

	"github.com/carbase/carbase/internal/application/ports"
)

// Disabled is used when INSPECTION_CHECK_URL is not set: every record renders
// as uninspected.
type Disabled struct{}

// NewDisabled returns an InspectionChecker that always answers false.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Check implements ports.InspectionChecker.
func (Disabled) Check(ctx context.Context, plate string) (bool, error) {
	return false, nil
}

var _ ports.InspectionChecker = (*Disabled)(nil)
