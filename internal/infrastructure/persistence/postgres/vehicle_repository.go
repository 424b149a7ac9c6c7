package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carbase/carbase/internal/application/ports"
	"github.com/carbase/carbase/internal/domain"
	domerrors "github.com/carbase/carbase/internal/domain/errors"
	"github.com/carbase/carbase/internal/infrastructure/persistence/db"
)

const (
	vehicleExistsSQL = `SELECT 1 FROM vehicles WHERE id = $1`
	modelExistsSQL   = `SELECT 1 FROM models WHERE id = $1`
	plateExistsSQL   = `SELECT 1 FROM vehicles WHERE plate = $1`
	plateTakenSQL    = `SELECT 1 FROM vehicles WHERE plate = $1 AND id <> $2`

	insertVehicleSQL = `INSERT INTO vehicles (id, model_id, plate, color, year, price, owner_email, owner_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	updateVehicleSQL = `UPDATE vehicles
		SET model_id = $2, plate = $3, color = $4, year = $5, price = $6, owner_email = $7, owner_phone = $8, updated_at = $9
		WHERE id = $1`

	deleteVehicleSQL = `DELETE FROM vehicles WHERE id = $1`

	selectSummarySQL = `SELECT v.id, v.model_id, v.plate, v.color, v.year, v.price, v.owner_email, v.owner_phone, v.created_at, v.updated_at, m.name, b.name
		FROM vehicles v
		JOIN models m ON m.id = v.model_id
		JOIN brands b ON b.id = m.brand_id`

	listVehiclesSQL = selectSummarySQL + ` ORDER BY v.plate ASC`
	getVehicleSQL   = selectSummarySQL + ` WHERE v.id = $1`
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// VehicleRepository is the transactional record store gateway for vehicles.
// Every write runs its pre-checks and mutation inside one transaction and maps
// constraint outcomes to domain errors; anything else is wrapped as a storage
// fault and never retried here.
type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domerrors.Storage("begin create vehicle", err)
	}
	defer tx.Rollback(ctx)

	if err := exists(ctx, tx, modelExistsSQL, vehicle.ModelID.UUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domerrors.ErrModelNotFound
		}
		return domerrors.Storage("check model exists", err)
	}
	if err := exists(ctx, tx, plateExistsSQL, vehicle.Plate); err == nil {
		return domerrors.ErrPlateTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domerrors.Storage("check plate unique", err)
	}

	_, err = tx.Exec(ctx, insertVehicleSQL,
		vehicle.ID.UUID, vehicle.ModelID.UUID, vehicle.Plate, vehicle.Color,
		vehicle.Year, vehicle.Price, vehicle.OwnerEmail, vehicle.OwnerPhone,
		vehicle.CreatedAt, vehicle.UpdatedAt)
	if err != nil {
		// Backstop for a concurrent insert between the check and the insert.
		if isUniqueViolation(err) {
			return domerrors.ErrPlateTaken
		}
		return domerrors.Storage("insert vehicle", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domerrors.Storage("commit create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domerrors.Storage("begin update vehicle", err)
	}
	defer tx.Rollback(ctx)

	if err := exists(ctx, tx, vehicleExistsSQL, vehicle.ID.UUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domerrors.ErrVehicleNotFound
		}
		return domerrors.Storage("check vehicle exists", err)
	}
	if err := exists(ctx, tx, modelExistsSQL, vehicle.ModelID.UUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domerrors.ErrModelNotFound
		}
		return domerrors.Storage("check model exists", err)
	}
	// Uniqueness is checked against other records only: keeping the current
	// plate is always allowed.
	if err := exists(ctx, tx, plateTakenSQL, vehicle.Plate, vehicle.ID.UUID); err == nil {
		return domerrors.ErrPlateTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domerrors.Storage("check plate unique", err)
	}

	_, err = tx.Exec(ctx, updateVehicleSQL,
		vehicle.ID.UUID, vehicle.ModelID.UUID, vehicle.Plate, vehicle.Color,
		vehicle.Year, vehicle.Price, vehicle.OwnerEmail, vehicle.OwnerPhone,
		vehicle.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domerrors.ErrPlateTaken
		}
		return domerrors.Storage("update vehicle", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domerrors.Storage("commit update vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id domain.VehicleID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domerrors.Storage("begin delete vehicle", err)
	}
	defer tx.Rollback(ctx)

	if err := exists(ctx, tx, vehicleExistsSQL, id.UUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domerrors.ErrVehicleNotFound
		}
		return domerrors.Storage("check vehicle exists", err)
	}
	tag, err := tx.Exec(ctx, deleteVehicleSQL, id.UUID)
	if err != nil {
		return domerrors.Storage("delete vehicle", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domerrors.Storage("commit delete vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		// A concurrent delete won the race after our existence check.
		return domerrors.ErrVehicleGone
	}
	return nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]domain.VehicleSummary, error) {
	rows, err := r.pool.Query(ctx, listVehiclesSQL)
	if err != nil {
		return nil, domerrors.Storage("list vehicles", err)
	}
	defer rows.Close()

	summaries := make([]domain.VehicleSummary, 0)
	for rows.Next() {
		row, err := scanSummary(rows)
		if err != nil {
			return nil, domerrors.Storage("scan vehicle summary", err)
		}
		summaries = append(summaries, summaryToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.Storage("list vehicles", err)
	}
	return summaries, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id domain.VehicleID) (*domain.VehicleSummary, error) {
	row, err := scanSummary(r.pool.QueryRow(ctx, getVehicleSQL, id.UUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domerrors.Storage("get vehicle", err)
	}
	summary := summaryToDomain(row)
	return &summary, nil
}

// exists runs a SELECT 1 query; pgx.ErrNoRows means the row is absent.
func exists(ctx context.Context, tx pgx.Tx, sql string, args ...any) error {
	var one int
	return tx.QueryRow(ctx, sql, args...).Scan(&one)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func scanSummary(row pgx.Row) (db.VehicleSummary, error) {
	var s db.VehicleSummary
	err := row.Scan(&s.ID, &s.ModelID, &s.Plate, &s.Color, &s.Year, &s.Price,
		&s.OwnerEmail, &s.OwnerPhone, &s.CreatedAt, &s.UpdatedAt,
		&s.ModelName, &s.BrandName)
	return s, err
}

func summaryToDomain(s db.VehicleSummary) domain.VehicleSummary {
	return domain.VehicleSummary{
		ID:         domain.NewVehicleID(s.ID),
		ModelID:    domain.NewModelID(s.ModelID),
		ModelName:  s.ModelName,
		BrandName:  s.BrandName,
		Plate:      s.Plate,
		Color:      s.Color,
		Year:       s.Year,
		Price:      s.Price,
		OwnerEmail: s.OwnerEmail,
		OwnerPhone: s.OwnerPhone,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// Ensure VehicleRepository implements ports.VehicleRepository.
var _ ports.VehicleRepository = (*VehicleRepository)(nil)
