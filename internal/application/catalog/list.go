package catalog

import (
	"context"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
)

// ListBrands returns every known brand.
type ListBrands struct {
	catalog ports.CatalogRepository
}

func NewListBrands(catalog ports.CatalogRepository) *ListBrands {
	return &ListBrands{catalog: catalog}
}

func (uc *ListBrands) Execute(ctx context.Context) ([]domain.Brand, error) {
	return uc.catalog.ListBrands(ctx)
}

// ListModels returns the models of one brand.
type ListModels struct {
	catalog ports.CatalogRepository
}

func NewListModels(catalog ports.CatalogRepository) *ListModels {
	return &ListModels{catalog: catalog}
}

func (uc *ListModels) Execute(ctx context.Context, brandID domain.BrandID) ([]domain.Model, error) {
	return uc.catalog.ListModelsByBrand(ctx, brandID)
}
