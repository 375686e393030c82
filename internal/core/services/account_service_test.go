package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/core/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCurrencyRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InitialBalanceNeedsCurrency() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Safe",
		InitialBalance: decimal.RequireFromString("500"),
	}

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	currencyID := int64(1)
	req := dto.CreateAccountRequest{
		Name:           "Cash box",
		CurrencyID:     &currencyID,
		InitialBalance: decimal.RequireFromString("500"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).Return(&domain.Currency{CurrencyID: 1}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Cash box" && a.InitialBalance.Equal(decimal.RequireFromString("500"))
	})).Return(&domain.Account{AccountID: 3, Name: "Cash box", CurrencyID: &currencyID}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(3), account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeposit_TotalIsAmountTimesRate() {
	ctx := context.Background()
	req := dto.MovementRequest{
		Amount:     decimal.RequireFromString("100"),
		CurrencyID: 2,
		Rate:       decimal.RequireFromString("1.5"),
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{AccountID: 3}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&domain.Currency{CurrencyID: 2}, nil).Once()
	suite.mockAccountRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.AccountTransaction) bool {
		return t.TxnType == domain.Deposit &&
			t.Total.Equal(decimal.RequireFromString("150")) &&
			t.ReferenceType == domain.ReferenceManual
	})).Return(&domain.AccountTransaction{TxnID: 9, TxnType: domain.Deposit}, nil).Once()

	txn, err := suite.service.Deposit(ctx, 3, req)

	suite.Require().NoError(err)
	suite.Equal(int64(9), txn.TxnID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestWithdraw_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.MovementRequest{
		Amount:     decimal.Zero,
		CurrencyID: 2,
		Date:       time.Now(),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{AccountID: 3}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&domain.Currency{CurrencyID: 2}, nil).Once()

	_, err := suite.service.Withdraw(ctx, 3, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *AccountServiceTestSuite) TestWithdraw_FullClosesBalance() {
	ctx := context.Background()
	req := dto.MovementRequest{
		CurrencyID: 2,
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		IsFull:     true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{AccountID: 3}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&domain.Currency{CurrencyID: 2}, nil).Once()
	suite.mockAccountRepo.On("Balance", ctx, int64(3), int64(2), (*time.Time)(nil)).Return(decimal.RequireFromString("230"), nil).Once()
	suite.mockAccountRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.AccountTransaction) bool {
		return t.IsFull && t.Total.Equal(decimal.RequireFromString("230")) && t.TxnType == domain.Withdraw
	})).Return(&domain.AccountTransaction{TxnID: 10, TxnType: domain.Withdraw, IsFull: true}, nil).Once()

	txn, err := suite.service.Withdraw(ctx, 3, req)

	suite.Require().NoError(err)
	suite.True(txn.IsFull)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestWithdraw_FullWithEmptyBalanceRejected() {
	ctx := context.Background()
	req := dto.MovementRequest{CurrencyID: 2, Date: time.Now(), IsFull: true}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{AccountID: 3}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&domain.Currency{CurrencyID: 2}, nil).Once()
	suite.mockAccountRepo.On("Balance", ctx, int64(3), int64(2), (*time.Time)(nil)).Return(decimal.Zero, nil).Once()

	_, err := suite.service.Withdraw(ctx, 3, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *AccountServiceTestSuite) TestGetBalance_DefaultsToAccountCurrency() {
	ctx := context.Background()
	accountCurrency := int64(1)

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{AccountID: 3, CurrencyID: &accountCurrency}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, accountCurrency).Return(&domain.Currency{CurrencyID: 1, Code: "USD", Symbol: "$", Precision: 2}, nil).Once()
	suite.mockAccountRepo.On("Balance", ctx, int64(3), accountCurrency, (*time.Time)(nil)).Return(decimal.RequireFromString("42"), nil).Once()

	balance, err := suite.service.GetBalance(ctx, 3, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(accountCurrency, balance.CurrencyID)
	suite.True(balance.Balance.Equal(decimal.RequireFromString("42")))
	suite.Equal("$42.00", balance.Formatted)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetBalance_NoCurrencyAnywhereRejected() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{AccountID: 3}, nil).Once()

	_, err := suite.service.GetBalance(ctx, 3, nil, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "Balance")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_InUse() {
	ctx := context.Background()

	suite.mockAccountRepo.On("DeleteAccount", ctx, int64(3)).Return(apperrors.ErrAccountInUse).Once()

	err := suite.service.DeleteAccount(ctx, 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountInUse)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
