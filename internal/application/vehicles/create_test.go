package vehicles

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/domain"
	domerrors "github.com/carbase/carbase/internal/domain/errors"
)

func TestCreateVehicleGeneratesIdentityAndTimestamps(t *testing.T) {
	repo := &fakeVehicleRepo{}
	uc := NewCreateVehicle(repo)

	result, err := uc.Execute(context.Background(), CreateVehicleInput{
		ModelID:    domain.NewModelID(uuid.New()),
		Plate:      "ABC-123",
		Color:      "blue",
		Year:       2023,
		Price:      25000.00,
		OwnerEmail: "a@b.com",
		OwnerPhone: "555-1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Vehicle.ID.UUID == uuid.Nil {
		t.Error("create must generate a non-nil identifier")
	}
	if result.Vehicle.CreatedAt.IsZero() || result.Vehicle.UpdatedAt.IsZero() {
		t.Error("create must stamp creation and modification times")
	}
	if repo.created == nil || repo.created.Plate != "ABC-123" {
		t.Error("vehicle should be handed to the repository as given")
	}
}

func TestCreateVehiclePropagatesConflict(t *testing.T) {
	repo := &fakeVehicleRepo{createErr: domerrors.ErrPlateTaken}
	uc := NewCreateVehicle(repo)

	_, err := uc.Execute(context.Background(), CreateVehicleInput{Plate: "ABC-123"})
	if !errors.Is(err, domerrors.ErrPlateTaken) {
		t.Fatalf("conflict must propagate unchanged, got %v", err)
	}
}

func TestDeleteVehicleTreatsLostRaceAsSuccess(t *testing.T) {
	repo := &fakeVehicleRepo{deleteErr: domerrors.ErrVehicleGone}
	uc := NewDeleteVehicle(repo, zerolog.Nop())

	if err := uc.Execute(context.Background(), domain.NewVehicleID(uuid.New())); err != nil {
		t.Fatalf("a lost delete race is idempotent, got %v", err)
	}
}

func TestDeleteVehiclePropagatesNotFound(t *testing.T) {
	repo := &fakeVehicleRepo{deleteErr: domerrors.ErrVehicleNotFound}
	uc := NewDeleteVehicle(repo, zerolog.Nop())

	err := uc.Execute(context.Background(), domain.NewVehicleID(uuid.New()))
	if !errors.Is(err, domerrors.ErrVehicleNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
