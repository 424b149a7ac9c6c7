package db

import (
	"time"

	"github.com/google/uuid"
)

// Row structs mirroring the relational schema. The repositories scan into
// these and convert to domain types at the edge.

type Vehicle struct {
	ID         uuid.UUID
	ModelID    uuid.UUID
	Plate      string
	Color      string
	Year       int
	Price      float64
	OwnerEmail string
	OwnerPhone string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VehicleSummary is the joined read shape: vehicle columns plus the
// denormalized model and brand names.
type VehicleSummary struct {
	Vehicle
	ModelName string
	BrandName string
}

type Model struct {
	ID      uuid.UUID
	BrandID uuid.UUID
	Name    string
}

type Brand struct {
	ID   uuid.UUID
	Name string
}
