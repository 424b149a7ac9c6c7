package domain

import "github.com/google/uuid"

// BrandID is a value object for brand identity.
type BrandID struct{ uuid.UUID }

// NewBrandID creates a new BrandID from uuid.
func NewBrandID(id uuid.UUID) BrandID { return BrandID{UUID: id} }

// String returns the canonical string form.
func (b BrandID) String() string { return b.UUID.String() }

// ModelID is a value object for model identity.
type ModelID struct{ uuid.UUID }

// NewModelID creates a new ModelID from uuid.
func NewModelID(id uuid.UUID) ModelID { return ModelID{UUID: id} }

// String returns the canonical string form.
func (m ModelID) String() string { return m.UUID.String() }

// Brand is a vehicle manufacturer. Read-only from this service's perspective.
type Brand struct {
	ID   BrandID
	Name string
}

// Model is a vehicle model belonging to a brand. Read-only here.
type Model struct {
	ID      ModelID
	BrandID BrandID
	Name    string
}
