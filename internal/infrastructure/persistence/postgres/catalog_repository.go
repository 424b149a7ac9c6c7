package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
	domerrors "github.com/carbase/carbase/internal/domain/errors"
	"github.com/carbase/carbase/internal/infrastructure/persistence/db"
)

const (
	listBrandsSQL = `SELECT id, name FROM brands ORDER BY name ASC`
	listModelsSQL = `SELECT id, brand_id, name FROM models WHERE brand_id = $1 ORDER BY name ASC`
)

// CatalogRepository reads the brand/model catalog. Brands and models are
// maintained elsewhere; this service only lists them.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.pool.Query(ctx, listBrandsSQL)
	if err != nil {
		return nil, domerrors.Storage("list brands", err)
	}
	defer rows.Close()

	brands := make([]domain.Brand, 0)
	for rows.Next() {
		var b db.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, domerrors.Storage("scan brand", err)
		}
		brands = append(brands, domain.Brand{ID: domain.NewBrandID(b.ID), Name: b.Name})
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.Storage("list brands", err)
	}
	return brands, nil
}

func (r *CatalogRepository) ListModelsByBrand(ctx context.Context, brandID domain.BrandID) ([]domain.Model, error) {
	rows, err := r.pool.Query(ctx, listModelsSQL, brandID.UUID)
	if err != nil {
		return nil, domerrors.Storage("list models", err)
	}
	defer rows.Close()

	models := make([]domain.Model, 0)
	for rows.Next() {
		var m db.Model
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name); err != nil {
			return nil, domerrors.Storage("scan model", err)
		}
		models = append(models, domain.Model{
			ID:      domain.NewModelID(m.ID),
			BrandID: domain.NewBrandID(m.BrandID),
			Name:    m.Name,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.Storage("list models", err)
	}
	return models, nil
}

// Ensure CatalogRepository implements ports.CatalogRepository.
var _ ports.CatalogRepository = (*CatalogRepository)(nil)
