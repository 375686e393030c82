package repositories

import "context"

// ReferenceChecker exposes the reference data (maintained elsewhere in the
// application) to the core as bare existence checks. The core never owns or
// mutates customers, products, or units.
type ReferenceChecker interface {
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
	ProductExists(ctx context.Context, productID int64) (bool, error)
	UnitExists(ctx context.Context, unitID int64) (bool, error)
}
