package repositories

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// PaymentReader defines read operations for sale payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.SalePayment, error)

	// ListPaymentsBySaleID retrieves a sale's payments ordered by
	// payment_date asc, payment_id asc.
	ListPaymentsBySaleID(ctx context.Context, saleID int64) ([]domain.SalePayment, error)
}

// PaymentWriter defines write operations for sale payment data
type PaymentWriter interface {
	// SavePayment persists the payment, recomputes the sale's paid_amount
	// from all live payments, and posts the deposit-equivalent account
	// transaction when the payment targets an account, all in one
	// transaction.
	SavePayment(ctx context.Context, payment domain.SalePayment) (*domain.SalePayment, error)

	// DeletePayment removes the payment, recomputes the sale's paid_amount,
	// and removes the linked account transaction, all in one transaction.
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
