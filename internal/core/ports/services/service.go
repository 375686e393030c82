package services

// ServiceContainer holds all service facades for injection into handlers.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Journal      JournalSvcFacade
	Account      AccountSvcFacade
	Sale         SaleSvcFacade
	Settlement   SettlementSvcFacade
}
