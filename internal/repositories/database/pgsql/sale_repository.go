package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

// PgxSaleRepository implements the sale repository using pgxpool.
type PgxSaleRepository struct {
	BaseRepository
}

// NewPgxSaleRepository creates a new PgxSaleRepository.
func NewPgxSaleRepository(pool *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `s.sale_id, s.customer_id, s.sale_date, s.currency_id, s.exchange_rate, s.notes, s.total_amount, s.base_amount, s.paid_amount, s.created_at, s.last_updated_at`

func scanSale(row pgx.Row) (*models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.CustomerID,
		&m.SaleDate,
		&m.CurrencyID,
		&m.ExchangeRate,
		&m.Notes,
		&m.TotalAmount,
		&m.BaseAmount,
		&m.PaidAmount,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// saleSortColumn maps a public sort key to a concrete column. Anything else
// falls back to the sale date.
func saleSortColumn(sortBy string) string {
	switch sortBy {
	case "total":
		return "s.total_amount"
	case "paid":
		return "s.paid_amount"
	default:
		return "s.sale_date"
	}
}

// SaveSale persists a sale with all its items and costs in one transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, costs []domain.AdditionalCost) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSale(sale)
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (customer_id, sale_date, currency_id, exchange_rate, notes, total_amount, base_amount, paid_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING sale_id;
	`, m.CustomerID, m.SaleDate, m.CurrencyID, m.ExchangeRate, m.Notes, m.TotalAmount, m.BaseAmount, m.PaidAmount, m.CreatedAt, m.LastUpdatedAt).Scan(&m.SaleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert sale", err)
	}

	if err := insertSaleChildren(ctx, tx, m.SaleID, items, costs); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainSale(m)
	return &saved, nil
}

// ReplaceSale updates the sale header and swaps the full item and cost sets.
// The paid amount stays as-is since payments live in their own table.
func (r *PgxSaleRepository) ReplaceSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, costs []domain.AdditionalCost) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSale(sale)
	cmdTag, err := tx.Exec(ctx, `
		UPDATE sales
		SET customer_id = $2, sale_date = $3, currency_id = $4, exchange_rate = $5,
		    notes = $6, total_amount = $7, base_amount = $8, last_updated_at = $9
		WHERE sale_id = $1;
	`, m.SaleID, m.CustomerID, m.SaleDate, m.CurrencyID, m.ExchangeRate, m.Notes, m.TotalAmount, m.BaseAmount, m.LastUpdatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update sale", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError("sale " + strconv.FormatInt(m.SaleID, 10) + " not found")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1;`, m.SaleID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to clear sale items", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM additional_costs WHERE sale_id = $1;`, m.SaleID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to clear additional costs", err)
	}

	if err := insertSaleChildren(ctx, tx, m.SaleID, items, costs); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, `SELECT paid_amount FROM sales WHERE sale_id = $1;`, m.SaleID).Scan(&m.PaidAmount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read sale paid amount", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainSale(m)
	return &saved, nil
}

func insertSaleChildren(ctx context.Context, tx pgx.Tx, saleID int64, items []domain.SaleItem, costs []domain.AdditionalCost) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		im := mapping.ToModelSaleItem(item)
		batch.Queue(`
			INSERT INTO sale_items (sale_id, product_id, unit_id, per_price, quantity, total)
			VALUES ($1, $2, $3, $4, $5, $6);
		`, saleID, im.ProductID, im.UnitID, im.PerPrice, im.Quantity, im.Total)
	}
	for _, cost := range costs {
		cm := mapping.ToModelAdditionalCost(cost)
		batch.Queue(`
			INSERT INTO additional_costs (sale_id, name, amount)
			VALUES ($1, $2, $3);
		`, saleID, cm.Name, cm.Amount)
	}
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < len(items)+len(costs); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert sale child row", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close sale child batch", err)
	}
	return nil
}

// FindSaleByID retrieves a sale together with its items and additional costs.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales s WHERE s.sale_id = $1;`
	m, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale by ID "+strconv.FormatInt(saleID, 10), err)
	}

	items, err := r.findItemsBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	costs, err := r.FindCostsBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainSale(*m)
	d.Items = items
	d.AdditionalCosts = costs
	return &d, nil
}

func (r *PgxSaleRepository) findItemsBySaleID(ctx context.Context, saleID int64) ([]domain.SaleItem, error) {
	query := `
		SELECT item_id, sale_id, product_id, unit_id, per_price, quantity, total
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sale items", err)
	}
	defer rows.Close()

	ms := []models.SaleItem{}
	for rows.Next() {
		var m models.SaleItem
		if err := rows.Scan(&m.ItemID, &m.SaleID, &m.ProductID, &m.UnitID, &m.PerPrice, &m.Quantity, &m.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale item row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale item rows", err)
	}
	return mapping.ToDomainSaleItemSlice(ms), nil
}

// FindCostsBySaleID retrieves the additional costs of a sale.
func (r *PgxSaleRepository) FindCostsBySaleID(ctx context.Context, saleID int64) ([]domain.AdditionalCost, error) {
	query := `
		SELECT cost_id, sale_id, name, amount
		FROM additional_costs
		WHERE sale_id = $1
		ORDER BY cost_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query additional costs", err)
	}
	defer rows.Close()

	ms := []models.AdditionalCost{}
	for rows.Next() {
		var m models.AdditionalCost
		if err := rows.Scan(&m.CostID, &m.SaleID, &m.Name, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan additional cost row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating additional cost rows", err)
	}
	return mapping.ToDomainAdditionalCostSlice(ms), nil
}

// ListSales retrieves a page of sales plus the total matching count. Search
// matches the sale notes and the customer name, case-insensitively.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter portsrepo.ListSalesFilter) ([]domain.Sale, int, error) {
	where := `
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		WHERE ($1 = '' OR s.notes ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%')
	`

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) `+where+`;`, filter.Search).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count sales", err)
	}

	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}
	query := `SELECT ` + saleColumns + ` ` + where + `
		ORDER BY ` + saleSortColumn(filter.SortBy) + ` ` + direction + `, s.sale_id ` + direction + `
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		sales = append(sales, mapping.ToDomainSale(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating sale rows", err)
	}
	return sales, total, nil
}

// DeleteSale removes a sale and cascades to its items, costs, payments, and
// the account transactions those payments posted.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		DELETE FROM account_transactions
		WHERE reference_type = 'sale_payment'
		  AND reference_id IN (SELECT payment_id FROM sale_payments WHERE sale_id = $1);
	`, saleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment account transactions", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_payments WHERE sale_id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete sale payments", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete sale items", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM additional_costs WHERE sale_id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete additional costs", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sale", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("sale " + strconv.FormatInt(saleID, 10) + " not found")
	}

	return r.Commit(ctx, tx)
}
