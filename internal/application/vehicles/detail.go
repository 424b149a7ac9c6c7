package vehicles

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
)

// GetVehicleDetail reads one vehicle and enriches it with the answers of the
// two external validators. The validators are independent: they run
// concurrently, each outcome is captured in its own slot, and a fault in one
// never blocks or cancels the other. A failed call renders as false in the
// composite, same as a clean negative answer; the error value keeps the two
// cases apart internally for logging.
type GetVehicleDetail struct {
	vehicles     ports.VehicleRepository
	registration ports.RegistrationChecker
	inspection   ports.InspectionChecker
	log          zerolog.Logger
}

func NewGetVehicleDetail(vehicles ports.VehicleRepository, registration ports.RegistrationChecker, inspection ports.InspectionChecker, log zerolog.Logger) *GetVehicleDetail {
	return &GetVehicleDetail{
		vehicles:     vehicles,
		registration: registration,
		inspection:   inspection,
		log:          log,
	}
}

// checkOutcome is one validator call's captured result.
type checkOutcome struct {
	valid bool
	err   error
}

// Execute returns the enriched detail, or (nil, nil) when the id matches no
// record. The base read must succeed before either validator is invoked; both
// validator calls inherit ctx, so caller cancellation abandons them.
func (uc *GetVehicleDetail) Execute(ctx context.Context, id domain.VehicleID) (*domain.VehicleDetail, error) {
	summary, err := uc.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, nil
	}

	var registration, inspection checkOutcome
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		registration.valid, registration.err = uc.registration.Check(ctx, summary.Plate, summary.OwnerEmail)
	}()
	go func() {
		defer wg.Done()
		inspection.valid, inspection.err = uc.inspection.Check(ctx, summary.Plate)
	}()
	wg.Wait()

	if registration.err != nil {
		uc.log.Warn().Err(registration.err).Str("plate", summary.Plate).Msg("registration check unavailable, defaulting to invalid")
		registration.valid = false
	}
	if inspection.err != nil {
		uc.log.Warn().Err(inspection.err).Str("plate", summary.Plate).Msg("inspection check unavailable, defaulting to invalid")
		inspection.valid = false
	}

	return &domain.VehicleDetail{
		VehicleSummary:    *summary,
		RegistrationValid: registration.valid,
		InspectionValid:   inspection.valid,
	}, nil
}
