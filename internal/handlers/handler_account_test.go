package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/handlers"
	"github.com/shopbooks/shopbooks_backend/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetBalance(ctx context.Context, accountID int64, currencyID *int64, asOf *time.Time) (*dto.AccountBalanceResponse, error) {
	args := m.Called(ctx, accountID, currencyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountBalanceResponse), args.Error(1)
}

func (m *MockAccountService) ListTransactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTransaction), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Deposit(ctx context.Context, accountID int64, req dto.MovementRequest) (*domain.AccountTransaction, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransaction), args.Error(1)
}

func (m *MockAccountService) Withdraw(ctx context.Context, accountID int64, req dto.MovementRequest) (*domain.AccountTransaction, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransaction), args.Error(1)
}

func (m *MockAccountService) DeleteTransaction(ctx context.Context, txnID int64) error {
	args := m.Called(ctx, txnID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)

	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	})
}

func (suite *AccountHandlerTestSuite) TestGetBalance_Success() {
	expected := &dto.AccountBalanceResponse{
		AccountID:  3,
		CurrencyID: 1,
		Balance:    decimal.RequireFromString("230"),
		Formatted:  "$230.00",
	}
	suite.mockAccountService.On("GetBalance",
		mock.Anything, int64(3), (*int64)(nil), (*time.Time)(nil),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/3/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(3), body.AccountID)
	suite.Equal("$230.00", body.Formatted)
	suite.True(body.Balance.Equal(decimal.RequireFromString("230")))
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountByID_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountByID_InvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "GetAccountByID")
}

func (suite *AccountHandlerTestSuite) TestDeposit_Success() {
	payload := map[string]any{
		"amount":     "100",
		"currencyID": 2,
		"date":       "2024-03-10T00:00:00Z",
	}
	body, _ := json.Marshal(payload)

	suite.mockAccountService.On("Deposit",
		mock.Anything, int64(3),
		mock.MatchedBy(func(r dto.MovementRequest) bool {
			return r.Amount.Equal(decimal.RequireFromString("100")) && r.CurrencyID == 2
		}),
	).Return(&domain.AccountTransaction{
		TxnID:     9,
		AccountID: 3,
		TxnType:   domain.Deposit,
		Amount:    decimal.RequireFromString("100"),
		Total:     decimal.RequireFromString("100"),
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/3/deposits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(9), resp.TxnID)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InvalidAmount() {
	payload := map[string]any{
		"amount":     "0",
		"currencyID": 2,
		"date":       "2024-03-10T00:00:00Z",
	}
	body, _ := json.Marshal(payload)

	suite.mockAccountService.On("Withdraw", mock.Anything, int64(3), mock.Anything).
		Return(nil, apperrors.ErrInvalidAmount).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/3/withdrawals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
