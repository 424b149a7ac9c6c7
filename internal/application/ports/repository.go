package ports

import (
	"context"

	"github.com/carbase/carbase/internal/domain"
)

// VehicleRepository defines transactional persistence for vehicles. Each write
// runs inside its own transaction at the storage boundary and reports
// "referenced model missing", "plate taken" and "target missing" as distinct
// domain errors.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id domain.VehicleID) error
	List(ctx context.Context) ([]domain.VehicleSummary, error)
	GetByID(ctx context.Context, id domain.VehicleID) (*domain.VehicleSummary, error)
}

// CatalogRepository provides read-only access to brands and models.
type CatalogRepository interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListModelsByBrand(ctx context.Context, brandID domain.BrandID) ([]domain.Model, error)
}
