package ports

import "context"

// RegistrationChecker asks the external registration service whether the
// plate/owner-email combination is registered. A non-nil error means the
// validator was unreachable or answered garbage, which is distinct from a
// clean false.
type RegistrationChecker interface {
	Check(ctx context.Context, plate, ownerEmail string) (bool, error)
}

// InspectionChecker asks the external inspection service whether the plate's
// inspection is current. Same error semantics as RegistrationChecker.
type InspectionChecker interface {
	Check(ctx context.Context, plate string) (bool, error)
}
