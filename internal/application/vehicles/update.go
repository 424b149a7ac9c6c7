package vehicles

import (
	"context"
	"time"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
)

type UpdateVehicleInput struct {
	ID         domain.VehicleID
	ModelID    domain.ModelID
	Plate      string
	Color      string
	Year       int
	Price      float64
	OwnerEmail string
	OwnerPhone string
}

type UpdateVehicleResult struct {
	Vehicle *domain.Vehicle
}

// UpdateVehicle mutates an existing vehicle in place and refreshes its
// modification timestamp. Keeping the current plate is allowed; taking another
// vehicle's plate is a conflict, enforced by the repository.
type UpdateVehicle struct {
	vehicles ports.VehicleRepository
}

func NewUpdateVehicle(vehicles ports.VehicleRepository) *UpdateVehicle {
	return &UpdateVehicle{vehicles: vehicles}
}

func (uc *UpdateVehicle) Execute(ctx context.Context, input UpdateVehicleInput) (*UpdateVehicleResult, error) {
	vehicle := &domain.Vehicle{
		ID:         input.ID,
		ModelID:    input.ModelID,
		Plate:      input.Plate,
		Color:      input.Color,
		Year:       input.Year,
		Price:      input.Price,
		OwnerEmail: input.OwnerEmail,
		OwnerPhone: input.OwnerPhone,
		UpdatedAt:  time.Now(),
	}
	if err := uc.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return &UpdateVehicleResult{Vehicle: vehicle}, nil
}
