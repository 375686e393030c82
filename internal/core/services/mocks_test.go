package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SetBaseCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRateOnOrBefore(ctx context.Context, fromCurrencyID, toCurrencyID int64, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyID, toCurrencyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID *int64, limit, offset int) ([]domain.ExchangeRate, int, error) {
	args := m.Called(ctx, fromCurrencyID, toCurrencyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Int(1), args.Error(2)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Int(1), args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Balance(ctx context.Context, accountID, currencyID int64, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, currencyID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) ListTransactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTransaction), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveTransaction(ctx context.Context, txn domain.AccountTransaction) (*domain.AccountTransaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransaction), args.Error(1)
}

func (m *MockAccountRepository) DeleteTransaction(ctx context.Context, txnID int64) error {
	args := m.Called(ctx, txnID)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter portsrepo.ListSalesFilter) ([]domain.Sale, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Sale), args.Int(1), args.Error(2)
}

func (m *MockSaleRepository) FindCostsBySaleID(ctx context.Context, saleID int64) ([]domain.AdditionalCost, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdditionalCost), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, costs []domain.AdditionalCost) (*domain.Sale, error) {
	args := m.Called(ctx, sale, items, costs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ReplaceSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, costs []domain.AdditionalCost) (*domain.Sale, error) {
	args := m.Called(ctx, sale, items, costs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID int64) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.SalePayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalePayment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsBySaleID(ctx context.Context, saleID int64) ([]domain.SalePayment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalePayment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.SalePayment) (*domain.SalePayment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalePayment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock ReferenceChecker ---
type MockReferenceChecker struct {
	mock.Mock
}

func (m *MockReferenceChecker) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceChecker) ProductExists(ctx context.Context, productID int64) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceChecker) UnitExists(ctx context.Context, unitID int64) (bool, error) {
	args := m.Called(ctx, unitID)
	return args.Bool(0), args.Error(1)
}

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) ResolveRate(ctx context.Context, currencyID int64, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
