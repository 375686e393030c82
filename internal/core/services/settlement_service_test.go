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

type SettlementServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockSaleRepo     *MockSaleRepository
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockRates        *MockRateResolver
	service          portssvc.SettlementSvcFacade
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRates = new(MockRateResolver)
	suite.service = services.NewSettlementService(
		suite.mockPaymentRepo,
		suite.mockSaleRepo,
		suite.mockAccountRepo,
		suite.mockCurrencyRepo,
		suite.mockRates,
	)
}

func (suite *SettlementServiceTestSuite) paymentRequest() dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		CurrencyID:   1,
		ExchangeRate: decimal.NewFromInt(1),
		Amount:       decimal.RequireFromString("100"),
		Date:         time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *SettlementServiceTestSuite) TestAddPayment_Success() {
	ctx := context.Background()
	req := suite.paymentRequest()

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(12)).Return(&domain.Sale{
		SaleID:      12,
		TotalAmount: decimal.RequireFromString("250"),
	}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(1)).Return(&domain.Currency{CurrencyID: 1}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.SalePayment) bool {
		return p.SaleID == 12 && p.Amount.Equal(decimal.RequireFromString("100")) && p.AccountID == nil
	})).Return(&domain.SalePayment{PaymentID: 4, SaleID: 12, Amount: req.Amount}, nil).Once()

	payment, err := suite.service.AddPayment(ctx, 12, req)

	suite.Require().NoError(err)
	suite.Equal(int64(4), payment.PaymentID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestAddPayment_WithAccountVerifiesAccount() {
	ctx := context.Background()
	accountID := int64(3)
	req := suite.paymentRequest()
	req.AccountID = &accountID

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(12)).Return(&domain.Sale{SaleID: 12}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(1)).Return(&domain.Currency{CurrencyID: 1}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddPayment(ctx, 12, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownReference)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *SettlementServiceTestSuite) TestAddPayment_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := suite.paymentRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.AddPayment(ctx, 12, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *SettlementServiceTestSuite) TestAddPayment_SaleNotFound() {
	ctx := context.Background()
	req := suite.paymentRequest()

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddPayment(ctx, 99, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *SettlementServiceTestSuite) TestAddPayment_ZeroRateResolved() {
	ctx := context.Background()
	req := suite.paymentRequest()
	req.CurrencyID = 2
	req.ExchangeRate = decimal.Zero

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(12)).Return(&domain.Sale{SaleID: 12}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(2)).Return(&domain.Currency{CurrencyID: 2}, nil).Once()
	suite.mockRates.On("ResolveRate", ctx, int64(2), req.Date).Return(decimal.RequireFromString("0.5"), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.SalePayment) bool {
		return p.ExchangeRate.Equal(decimal.RequireFromString("0.5"))
	})).Return(&domain.SalePayment{PaymentID: 5}, nil).Once()

	_, err := suite.service.AddPayment(ctx, 12, req)

	suite.Require().NoError(err)
	suite.mockRates.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestDeletePayment_Success() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("DeletePayment", ctx, int64(4)).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, 4)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestListPayments_SaleMustExist() {
	ctx := context.Background()

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListPayments(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "ListPaymentsBySaleID")
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
