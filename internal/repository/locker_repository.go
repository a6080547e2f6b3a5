package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/locker-service/internal/domain"
)

const lockerColumns = `id, name, latitude, longitude, width, height, depth,
               owner_id, booked_at, created_at, updated_at`

// LockerRepository encapsulates locker persistence.
type LockerRepository interface {
	Create(ctx context.Context, locker *domain.Locker) error
	Replace(ctx context.Context, locker *domain.Locker) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Locker, error)
	List(ctx context.Context, nameFilter string) ([]domain.Locker, error)
	ListAvailableTo(ctx context.Context, userID, nameFilter string) ([]domain.Locker, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Locker, error)
	Book(ctx context.Context, id, userID string, bookedAt time.Time) (bool, error)
	Release(ctx context.Context, id, userID string) (bool, error)
}

type lockerRepository struct {
	pool *pgxpool.Pool
}

// NewLockerRepository instantiates repository.
func NewLockerRepository(pool *pgxpool.Pool) LockerRepository {
	return &lockerRepository{pool: pool}
}

func (r *lockerRepository) Create(ctx context.Context, locker *domain.Locker) error {
	const query = `
        INSERT INTO lockers (name, latitude, longitude, width, height, depth)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		locker.Name,
		locker.Latitude,
		locker.Longitude,
		locker.Width,
		locker.Height,
		locker.Depth,
	).Scan(&locker.ID, &locker.CreatedAt, &locker.UpdatedAt)
}

// Replace overwrites the geometry and name fields of the record
// matching locker.ID, leaving the booking fields untouched.
func (r *lockerRepository) Replace(ctx context.Context, locker *domain.Locker) error {
	const query = `
        UPDATE lockers SET name=$1, latitude=$2, longitude=$3, width=$4, height=$5, depth=$6,
            updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		locker.Name,
		locker.Latitude,
		locker.Longitude,
		locker.Width,
		locker.Height,
		locker.Depth,
		locker.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *lockerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM lockers WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *lockerRepository) GetByID(ctx context.Context, id string) (*domain.Locker, error) {
	const query = `SELECT ` + lockerColumns + ` FROM lockers WHERE id=$1`

	var locker domain.Locker
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&locker.ID,
		&locker.Name,
		&locker.Latitude,
		&locker.Longitude,
		&locker.Width,
		&locker.Height,
		&locker.Depth,
		&locker.OwnerID,
		&locker.BookedAt,
		&locker.CreatedAt,
		&locker.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &locker, nil
}

func (r *lockerRepository) List(ctx context.Context, nameFilter string) ([]domain.Locker, error) {
	const query = `SELECT ` + lockerColumns + `
             FROM lockers WHERE name ILIKE '%' || $1 || '%' ORDER BY name`

	rows, err := r.pool.Query(ctx, query, nameFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLockers(rows)
}

// ListAvailableTo returns lockers that are unbooked or booked by userID.
func (r *lockerRepository) ListAvailableTo(ctx context.Context, userID, nameFilter string) ([]domain.Locker, error) {
	const query = `SELECT ` + lockerColumns + `
             FROM lockers
             WHERE name ILIKE '%' || $2 || '%' AND (owner_id IS NULL OR owner_id=$1)
             ORDER BY name`

	rows, err := r.pool.Query(ctx, query, userID, nameFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLockers(rows)
}

func (r *lockerRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Locker, error) {
	const query = `SELECT ` + lockerColumns + `
             FROM lockers WHERE owner_id=$1 ORDER BY booked_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLockers(rows)
}

// Book performs the conditional owner assignment. The WHERE clause is
// the booking guard: a concurrent booking that wins the race leaves
// zero rows for the loser instead of silently overwriting the owner.
// Re-booking by the current owner refreshes booked_at.
func (r *lockerRepository) Book(ctx context.Context, id, userID string, bookedAt time.Time) (bool, error) {
	const query = `
        UPDATE lockers SET owner_id=$2, booked_at=$3, updated_at=NOW()
        WHERE id=$1 AND (owner_id IS NULL OR owner_id=$2)`
	cmd, err := r.pool.Exec(ctx, query, id, userID, bookedAt)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// Release clears the booking only when userID is the current owner.
func (r *lockerRepository) Release(ctx context.Context, id, userID string) (bool, error) {
	const query = `
        UPDATE lockers SET owner_id=NULL, booked_at=NULL, updated_at=NOW()
        WHERE id=$1 AND owner_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanLockers(rows pgx.Rows) ([]domain.Locker, error) {
	result := []domain.Locker{}
	for rows.Next() {
		var locker domain.Locker
		if err := rows.Scan(
			&locker.ID,
			&locker.Name,
			&locker.Latitude,
			&locker.Longitude,
			&locker.Width,
			&locker.Height,
			&locker.Depth,
			&locker.OwnerID,
			&locker.BookedAt,
			&locker.CreatedAt,
			&locker.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, locker)
	}
	return result, rows.Err()
}
