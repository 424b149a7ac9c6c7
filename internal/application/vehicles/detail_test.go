package vehicles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/domain"
)

type fakeVehicleRepo struct {
	summary *domain.VehicleSummary
	err     error

	created *domain.Vehicle
	deleted []domain.VehicleID

	createErr error
	deleteErr error
}

func (f *fakeVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = v
	return nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error { return nil }

func (f *fakeVehicleRepo) Delete(ctx context.Context, id domain.VehicleID) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeVehicleRepo) List(ctx context.Context) ([]domain.VehicleSummary, error) {
	return []domain.VehicleSummary{}, nil
}

func (f *fakeVehicleRepo) GetByID(ctx context.Context, id domain.VehicleID) (*domain.VehicleSummary, error) {
	return f.summary, f.err
}

type fakeRegistration struct {
	valid  bool
	err    error
	called bool
}

func (f *fakeRegistration) Check(ctx context.Context, plate, ownerEmail string) (bool, error) {
	f.called = true
	return f.valid, f.err
}

type fakeInspection struct {
	valid  bool
	err    error
	delay  time.Duration
	called bool
}

func (f *fakeInspection) Check(ctx context.Context, plate string) (bool, error) {
	f.called = true
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.valid, f.err
}

func testSummary() *domain.VehicleSummary {
	return &domain.VehicleSummary{
		ID:         domain.NewVehicleID(uuid.New()),
		ModelID:    domain.NewModelID(uuid.New()),
		ModelName:  "Onix",
		BrandName:  "Chevrolet",
		Plate:      "ABC-123",
		Color:      "blue",
		Year:       2023,
		Price:      25000.00,
		OwnerEmail: "a@b.com",
		OwnerPhone: "555-1234",
	}
}

func TestGetVehicleDetailBothValid(t *testing.T) {
	repo := &fakeVehicleRepo{summary: testSummary()}
	reg := &fakeRegistration{valid: true}
	insp := &fakeInspection{valid: true}
	uc := NewGetVehicleDetail(repo, reg, insp, zerolog.Nop())

	detail, err := uc.Execute(context.Background(), repo.summary.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail == nil {
		t.Fatal("expected a detail")
	}
	if !detail.RegistrationValid || !detail.InspectionValid {
		t.Errorf("expected both flags true, got registration=%v inspection=%v", detail.RegistrationValid, detail.InspectionValid)
	}
	if detail.Plate != "ABC-123" {
		t.Errorf("base fields must carry over, got plate %q", detail.Plate)
	}
}

func TestGetVehicleDetailOneValidatorFails(t *testing.T) {
	repo := &fakeVehicleRepo{summary: testSummary()}
	reg := &fakeRegistration{err: errors.New("connection timed out")}
	insp := &fakeInspection{valid: true}
	uc := NewGetVehicleDetail(repo, reg, insp, zerolog.Nop())

	detail, err := uc.Execute(context.Background(), repo.summary.ID)
	if err != nil {
		t.Fatalf("a validator fault must not fail the request: %v", err)
	}
	if detail.RegistrationValid {
		t.Error("failed registration check should render as false")
	}
	if !detail.InspectionValid {
		t.Error("the failing validator must not affect the other flag")
	}
	if !insp.called {
		t.Error("inspection checker should still have been invoked")
	}
	if detail.Plate != repo.summary.Plate || detail.OwnerEmail != repo.summary.OwnerEmail {
		t.Error("base fields must be unchanged by a validator fault")
	}
}

func TestGetVehicleDetailBothValidatorsFail(t *testing.T) {
	repo := &fakeVehicleRepo{summary: testSummary()}
	reg := &fakeRegistration{err: errors.New("503")}
	insp := &fakeInspection{err: errors.New("bad payload")}
	uc := NewGetVehicleDetail(repo, reg, insp, zerolog.Nop())

	detail, err := uc.Execute(context.Background(), repo.summary.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.RegistrationValid || detail.InspectionValid {
		t.Error("both flags should be false when both validators fail")
	}
}

func TestGetVehicleDetailAbsentRecord(t *testing.T) {
	repo := &fakeVehicleRepo{summary: nil}
	reg := &fakeRegistration{valid: true}
	insp := &fakeInspection{valid: true}
	uc := NewGetVehicleDetail(repo, reg, insp, zerolog.Nop())

	detail, err := uc.Execute(context.Background(), domain.NewVehicleID(uuid.New()))
	if err != nil {
		t.Fatalf("absent record is not an error: %v", err)
	}
	if detail != nil {
		t.Error("expected nil detail for an absent record")
	}
	if reg.called || insp.called {
		t.Error("validators must not run when the base record is absent")
	}
}

func TestGetVehicleDetailRepoErrorShortCircuits(t *testing.T) {
	want := errors.New("connection refused")
	repo := &fakeVehicleRepo{err: want}
	reg := &fakeRegistration{valid: true}
	insp := &fakeInspection{valid: true}
	uc := NewGetVehicleDetail(repo, reg, insp, zerolog.Nop())

	_, err := uc.Execute(context.Background(), domain.NewVehicleID(uuid.New()))
	if !errors.Is(err, want) {
		t.Fatalf("expected the repository error, got %v", err)
	}
	if reg.called || insp.called {
		t.Error("validators must not run when the base read fails")
	}
}

func TestGetVehicleDetailSlowValidatorStillJoined(t *testing.T) {
	repo := &fakeVehicleRepo{summary: testSummary()}
	reg := &fakeRegistration{valid: true}
	insp := &fakeInspection{valid: true, delay: 50 * time.Millisecond}
	uc := NewGetVehicleDetail(repo, reg, insp, zerolog.Nop())

	detail, err := uc.Execute(context.Background(), repo.summary.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detail.RegistrationValid || !detail.InspectionValid {
		t.Error("both outcomes must be joined before assembly")
	}
}
