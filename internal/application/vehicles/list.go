package vehicles

import (
	"context"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
)

// ListVehicles returns all vehicle summaries ordered by plate. No enrichment:
// the list path never pays the cost of external validator calls.
type ListVehicles struct {
	vehicles ports.VehicleRepository
}

func NewListVehicles(vehicles ports.VehicleRepository) *ListVehicles {
	return &ListVehicles{vehicles: vehicles}
}

func (uc *ListVehicles) Execute(ctx context.Context) ([]domain.VehicleSummary, error) {
	return uc.vehicles.List(ctx)
}
