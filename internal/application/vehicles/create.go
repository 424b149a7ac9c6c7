package vehicles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
)

type CreateVehicleInput struct {
	ModelID    domain.ModelID
	Plate      string
	Color      string
	Year       int
	Price      float64
	OwnerEmail string
	OwnerPhone string
}

type CreateVehicleResult struct {
	Vehicle *domain.Vehicle
}

// CreateVehicle inserts a new vehicle. The identifier and timestamps are
// generated here, before the insert; FK existence and plate uniqueness are
// enforced transactionally by the repository.
type CreateVehicle struct {
	vehicles ports.VehicleRepository
}

func NewCreateVehicle(vehicles ports.VehicleRepository) *CreateVehicle {
	return &CreateVehicle{vehicles: vehicles}
}

func (uc *CreateVehicle) Execute(ctx context.Context, input CreateVehicleInput) (*CreateVehicleResult, error) {
	now := time.Now()
	vehicle := &domain.Vehicle{
		ID:         domain.NewVehicleID(uuid.New()),
		ModelID:    input.ModelID,
		Plate:      input.Plate,
		Color:      input.Color,
		Year:       input.Year,
		Price:      input.Price,
		OwnerEmail: input.OwnerEmail,
		OwnerPhone: input.OwnerPhone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return &CreateVehicleResult{Vehicle: vehicle}, nil
}
