package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
)

// PgxReferenceRepository answers existence checks against the reference
// tables. The ledger core only ever reads these.
type PgxReferenceRepository struct {
	BaseRepository
}

// NewPgxReferenceRepository creates a new PgxReferenceRepository.
func NewPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceChecker = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := r.Pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, apperrors.NewAppError(500, "failed to run existence check", err)
	}
	return ok, nil
}

// CustomerExists reports whether a customer row exists.
func (r *PgxReferenceRepository) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE customer_id = $1);`, customerID)
}

// ProductExists reports whether a product row exists.
func (r *PgxReferenceRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE product_id = $1);`, productID)
}

// UnitExists reports whether a unit row exists.
func (r *PgxReferenceRepository) UnitExists(ctx context.Context, unitID int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM units WHERE unit_id = $1);`, unitID)
}
