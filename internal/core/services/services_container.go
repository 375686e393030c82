package services

import (
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The exchange rate service goes first since journal, sale, and
	// settlement services resolve base rates through it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.CurrencyRepo, container.ExchangeRate)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.CurrencyRepo, repos.ReferenceRepo, container.ExchangeRate)
	container.Settlement = NewSettlementService(repos.PaymentRepo, repos.SaleRepo, repos.AccountRepo, repos.CurrencyRepo, container.ExchangeRate)

	return container
}
