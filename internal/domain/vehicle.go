package domain

import (
	"time"

	"github.com/google/uuid"
)

// VehicleID is a value object for vehicle identity.
type VehicleID struct{ uuid.UUID }

// NewVehicleID creates a new VehicleID from uuid.
func NewVehicleID(id uuid.UUID) VehicleID { return VehicleID{UUID: id} }

// String returns the canonical string form.
func (v VehicleID) String() string { return v.UUID.String() }

// Vehicle is a registered vehicle record.
type Vehicle struct {
	ID         VehicleID
	ModelID    ModelID
	Plate      string
	Color      string
	Year       int
	Price      float64
	OwnerEmail string
	OwnerPhone string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VehicleSummary is the read projection used for list views: the vehicle's
// public fields plus denormalized model and brand names.
type VehicleSummary struct {
	ID         VehicleID
	ModelID    ModelID
	ModelName  string
	BrandName  string
	Plate      string
	Color      string
	Year       int
	Price      float64
	OwnerEmail string
	OwnerPhone string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VehicleDetail is a summary enriched with two externally sourced validity
// flags. The flags are computed per request and never persisted; a false value
// may mean "validator said no" or "validator was unreachable".
type VehicleDetail struct {
	VehicleSummary
	RegistrationValid bool
	InspectionValid   bool
}
