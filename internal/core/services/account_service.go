package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
)

// AccountService handles business logic for accounts and their movements.
type AccountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: accountRepo, currencyRepo: currencyRepo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// GetAccountByID retrieves a specific account.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// CreateAccount persists a new account. A non-zero initial balance needs a
// currency to be denominated in.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.InitialBalance.IsZero() && req.CurrencyID == nil {
		return nil, apperrors.NewValidationError("initial balance requires a currency")
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrInvalidAmount)
	}
	if req.CurrencyID != nil {
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, *req.CurrencyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency %d", apperrors.ErrUnknownReference, *req.CurrencyID)
			}
			return nil, fmt.Errorf("failed to verify account currency: %w", err)
		}
	}

	account := domain.Account{
		Name:           req.Name,
		CurrencyID:     req.CurrencyID,
		InitialBalance: req.InitialBalance,
		Notes:          req.Notes,
		AuditFields:    utils.NewAuditFields(),
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create account %s: %w", req.Name, err)
	}

	logger.InfoContext(ctx, "account created",
		slog.Int64("account_id", saved.AccountID),
		slog.String("name", saved.Name),
	)
	return saved, nil
}

// GetBalance derives the balance for one currency, defaulting to the
// account's own currency when none is given.
func (s *AccountService) GetBalance(ctx context.Context, accountID int64, currencyID *int64, asOf *time.Time) (*dto.AccountBalanceResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resolved := currencyID
	if resolved == nil {
		resolved = account.CurrencyID
	}
	if resolved == nil {
		return nil, apperrors.NewValidationError("account has no currency, a currencyID is required")
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, *resolved)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d", apperrors.ErrUnknownReference, *resolved)
		}
		return nil, fmt.Errorf("failed to verify balance currency: %w", err)
	}

	balance, err := s.accountRepo.Balance(ctx, accountID, *resolved, asOf)
	if err != nil {
		return nil, err
	}

	return &dto.AccountBalanceResponse{
		AccountID:  accountID,
		CurrencyID: *resolved,
		Balance:    balance,
		Formatted:  utils.FormatAmount(balance, *currency),
	}, nil
}

// ListTransactions retrieves an account's transaction history, newest first.
func (s *AccountService) ListTransactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListTransactions(ctx, accountID)
}

// Deposit posts a deposit transaction to the account.
func (s *AccountService) Deposit(ctx context.Context, accountID int64, req dto.MovementRequest) (*domain.AccountTransaction, error) {
	return s.postMovement(ctx, accountID, domain.Deposit, req)
}

// Withdraw posts a withdrawal transaction to the account.
func (s *AccountService) Withdraw(ctx context.Context, accountID int64, req dto.MovementRequest) (*domain.AccountTransaction, error) {
	return s.postMovement(ctx, accountID, domain.Withdraw, req)
}

// postMovement validates and posts one movement. A full movement ignores the
// request amount and closes the account's balance for the currency to zero:
// a full withdrawal drains a positive balance, a full deposit covers a
// negative one.
func (s *AccountService) postMovement(ctx context.Context, accountID int64, txnType domain.TransactionType, req dto.MovementRequest) (*domain.AccountTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d", apperrors.ErrUnknownReference, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to verify movement currency: %w", err)
	}

	rate := req.Rate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate cannot be negative", apperrors.ErrInvalidAmount)
	}

	amount := req.Amount
	var total decimal.Decimal
	if req.IsFull {
		balance, err := s.accountRepo.Balance(ctx, accountID, req.CurrencyID, nil)
		if err != nil {
			return nil, err
		}
		switch txnType {
		case domain.Withdraw:
			total = balance
		case domain.Deposit:
			total = balance.Neg()
		}
		if !total.IsPositive() {
			return nil, fmt.Errorf("%w: nothing to close out for this currency", apperrors.ErrInvalidAmount)
		}
		amount = total
		rate = decimal.NewFromInt(1)
	} else {
		if !amount.IsPositive() {
			return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrInvalidAmount)
		}
		total = amount.Mul(rate)
	}

	txn := domain.AccountTransaction{
		AccountID:     accountID,
		TxnType:       txnType,
		Amount:        amount,
		CurrencyID:    req.CurrencyID,
		Rate:          rate,
		Total:         total,
		TxnDate:       req.Date,
		IsFull:        req.IsFull,
		Notes:         req.Notes,
		ReferenceType: domain.ReferenceManual,
		AuditFields:   utils.NewAuditFields(),
	}

	saved, err := s.accountRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to post account movement: %w", err)
	}

	logger.InfoContext(ctx, "account movement posted",
		slog.Int64("txn_id", saved.TxnID),
		slog.Int64("account_id", accountID),
		slog.String("type", string(txnType)),
		slog.String("total", saved.Total.String()),
	)
	return saved, nil
}

// DeleteTransaction removes a manual movement, reversing its balance effect.
func (s *AccountService) DeleteTransaction(ctx context.Context, txnID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteTransaction(ctx, txnID); err != nil {
		return fmt.Errorf("failed to delete account transaction: %w", err)
	}

	logger.InfoContext(ctx, "account transaction deleted", slog.Int64("txn_id", txnID))
	return nil
}

// DeleteAccount removes an unreferenced account together with its own
// transaction history.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	logger.InfoContext(ctx, "account deleted", slog.Int64("account_id", accountID))
	return nil
}
