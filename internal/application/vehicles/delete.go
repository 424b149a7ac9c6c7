package vehicles

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
	domerrors "github.com/carbase/carbase/internal/domain/errors"
)

// DeleteVehicle removes a vehicle by id (hard delete, no tombstone).
// A delete that loses the race to a concurrent delete is treated as an
// idempotent success: the record is gone either way.
type DeleteVehicle struct {
	vehicles ports.VehicleRepository
	log      zerolog.Logger
}

func NewDeleteVehicle(vehicles ports.VehicleRepository, log zerolog.Logger) *DeleteVehicle {
	return &DeleteVehicle{vehicles: vehicles, log: log}
}

func (uc *DeleteVehicle) Execute(ctx context.Context, id domain.VehicleID) error {
	err := uc.vehicles.Delete(ctx, id)
	if errors.Is(err, domerrors.ErrVehicleGone) {
		uc.log.Warn().Str("vehicle_id", id.String()).Msg("delete affected zero rows after existence check")
		return nil
	}
	return err
}
