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

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockReferences   *MockReferenceChecker
	mockRates        *MockRateResolver
	service          portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockReferences = new(MockReferenceChecker)
	suite.mockRates = new(MockRateResolver)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockCurrencyRepo, suite.mockReferences, suite.mockRates)
}

func (suite *SaleServiceTestSuite) saleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CustomerID:   5,
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CurrencyID:   1,
		ExchangeRate: decimal.NewFromInt(1),
		Items: []dto.SaleItemRequest{
			{ProductID: 11, UnitID: 1, PerPrice: decimal.RequireFromString("50"), Quantity: decimal.RequireFromString("4")},
		},
		AdditionalCosts: []dto.AdditionalCostRequest{
			{Name: "delivery", Amount: decimal.RequireFromString("50")},
		},
	}
}

func (suite *SaleServiceTestSuite) allowReferences(ctx context.Context) {
	suite.mockReferences.On("CustomerExists", ctx, mock.AnythingOfType("int64")).Return(true, nil)
	suite.mockReferences.On("ProductExists", ctx, mock.AnythingOfType("int64")).Return(true, nil)
	suite.mockReferences.On("UnitExists", ctx, mock.AnythingOfType("int64")).Return(true, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, mock.AnythingOfType("int64")).Return(&domain.Currency{CurrencyID: 1}, nil)
}

func (suite *SaleServiceTestSuite) TestCreateSale_TotalsComputedFromItemsAndCosts() {
	ctx := context.Background()
	req := suite.saleRequest()
	suite.allowReferences(ctx)

	// 4 * 50 item total plus the 50 delivery cost.
	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.TotalAmount.Equal(decimal.RequireFromString("250")) &&
			s.BaseAmount.Equal(decimal.RequireFromString("250")) &&
			s.PaidAmount.IsZero()
	}), mock.MatchedBy(func(items []domain.SaleItem) bool {
		return len(items) == 1 && items[0].Total.Equal(decimal.RequireFromString("200"))
	}), mock.MatchedBy(func(costs []domain.AdditionalCost) bool {
		return len(costs) == 1 && costs[0].Amount.Equal(decimal.RequireFromString("50"))
	})).Return(&domain.Sale{SaleID: 12}, nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(12)).Return(&domain.Sale{
		SaleID:      12,
		CustomerID:  5,
		TotalAmount: decimal.RequireFromString("250"),
		PaidAmount:  decimal.Zero,
	}, nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(12), sale.SaleID)
	suite.True(sale.Remaining().Equal(decimal.RequireFromString("250")))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownCustomerRejected() {
	ctx := context.Background()
	req := suite.saleRequest()

	suite.mockReferences.On("CustomerExists", ctx, int64(5)).Return(false, nil).Once()

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownReference)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownProductRejected() {
	ctx := context.Background()
	req := suite.saleRequest()

	suite.mockReferences.On("CustomerExists", ctx, int64(5)).Return(true, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, int64(1)).Return(&domain.Currency{CurrencyID: 1}, nil).Once()
	suite.mockReferences.On("ProductExists", ctx, int64(11)).Return(false, nil).Once()

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownReference)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_NonPositiveQuantityRejected() {
	ctx := context.Background()
	req := suite.saleRequest()
	req.Items[0].Quantity = decimal.Zero
	suite.allowReferences(ctx)

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_ZeroPriceRejected() {
	ctx := context.Background()
	req := suite.saleRequest()
	req.Items[0].PerPrice = decimal.Zero
	suite.allowReferences(ctx)

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_ZeroRateResolved() {
	ctx := context.Background()
	req := suite.saleRequest()
	req.CurrencyID = 2
	req.ExchangeRate = decimal.Zero
	suite.allowReferences(ctx)

	suite.mockRates.On("ResolveRate", ctx, int64(2), req.Date).Return(decimal.RequireFromString("0.5"), nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.ExchangeRate.Equal(decimal.RequireFromString("0.5")) &&
			s.BaseAmount.Equal(decimal.RequireFromString("125"))
	}), mock.Anything, mock.Anything).Return(&domain.Sale{SaleID: 13}, nil).Once()
	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(13)).Return(&domain.Sale{SaleID: 13}, nil).Once()

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.mockRates.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestUpdateSale_ReplacesChildren() {
	ctx := context.Background()
	req := suite.saleRequest()
	suite.allowReferences(ctx)

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(12)).Return(&domain.Sale{SaleID: 12, PaidAmount: decimal.RequireFromString("100")}, nil)
	suite.mockSaleRepo.On("ReplaceSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.SaleID == 12 && s.TotalAmount.Equal(decimal.RequireFromString("250"))
	}), mock.Anything, mock.Anything).Return(&domain.Sale{SaleID: 12}, nil).Once()

	sale, err := suite.service.UpdateSale(ctx, 12, req)

	suite.Require().NoError(err)
	suite.Equal(int64(12), sale.SaleID)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestUpdateSale_NotFound() {
	ctx := context.Background()
	req := suite.saleRequest()

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateSale(ctx, 99, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "ReplaceSale")
}

func (suite *SaleServiceTestSuite) TestGetAdditionalCosts_SaleMustExist() {
	ctx := context.Background()

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAdditionalCosts(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindCostsBySaleID")
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
