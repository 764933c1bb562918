package handlers

import (
	"context"
	"errors"
	"time"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/calculation"
	"quickquote.io/quickquote/dashboard"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
	"quickquote.io/quickquote/quote"
)

var errStubNotSet = errors.New("stub method not set")

// stubApp satisfies quickquote.QuickQuote with per-method function
// fields so each test wires only what it exercises.
type stubApp struct {
	createQuote       func(ctx context.Context, input quote.CreateInput, now time.Time) (*models.Quote, error)
	getQuote          func(ctx context.Context, id string) (*models.Quote, error)
	updateQuote       func(ctx context.Context, patch *models.PartialQuote) error
	listQuotes        func(ctx context.Context, businessID string, status *enum.QuoteStatus, query string) ([]*models.Quote, error)
	updateQuoteStatus func(ctx context.Context, id string, status enum.QuoteStatus) (*models.Quote, error)
	duplicateQuote    func(ctx context.Context, id string, now time.Time) (*models.Quote, error)
	importQuote       func(ctx context.Context, payload string, now time.Time) (*models.Quote, error)
	shareQuote        func(ctx context.Context, id string) (*quickquote.ShareInfo, error)
	dashboardStats    func(ctx context.Context, businessID string, now time.Time) (dashboard.Stats, error)
	recentQuotes      func(ctx context.Context, businessID string, count int) ([]*models.Quote, error)
}

var _ quickquote.QuickQuote = (*stubApp)(nil)

func (s *stubApp) CreateBusiness(context.Context, *models.Business) error { return errStubNotSet }

func (s *stubApp) GetBusiness(context.Context, string) (*models.Business, error) {
	return nil, errStubNotSet
}

func (s *stubApp) GetBusinessByUser(context.Context, string) (*models.Business, error) {
	return nil, errStubNotSet
}

func (s *stubApp) UpdateBusiness(context.Context, *models.PartialBusiness) error {
	return errStubNotSet
}

func (s *stubApp) ListBusinessIDs(context.Context) ([]string, error) { return nil, errStubNotSet }

func (s *stubApp) CreateService(context.Context, *models.Service) error { return errStubNotSet }

func (s *stubApp) GetService(context.Context, string) (*models.Service, error) {
	return nil, errStubNotSet
}

func (s *stubApp) UpdateService(context.Context, *models.PartialService) error {
	return errStubNotSet
}

func (s *stubApp) DeleteService(context.Context, string) error { return errStubNotSet }

func (s *stubApp) ListServices(context.Context, string, bool) ([]*models.Service, error) {
	return nil, errStubNotSet
}

func (s *stubApp) CreateCustomer(context.Context, *models.Customer) error { return errStubNotSet }

func (s *stubApp) GetCustomer(context.Context, string) (*models.Customer, error) {
	return nil, errStubNotSet
}

func (s *stubApp) UpdateCustomer(context.Context, *models.PartialCustomer) error {
	return errStubNotSet
}

func (s *stubApp) DeleteCustomer(context.Context, string) error { return errStubNotSet }

func (s *stubApp) ListCustomers(context.Context, string) ([]*models.Customer, error) {
	return nil, errStubNotSet
}

func (s *stubApp) CreateQuote(ctx context.Context, input quote.CreateInput, now time.Time) (*models.Quote, error) {
	return s.createQuote(ctx, input, now)
}

func (s *stubApp) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	return s.getQuote(ctx, id)
}

func (s *stubApp) UpdateQuote(ctx context.Context, patch *models.PartialQuote) error {
	return s.updateQuote(ctx, patch)
}

func (s *stubApp) ListQuotes(ctx context.Context, businessID string, status *enum.QuoteStatus, query string) ([]*models.Quote, error) {
	return s.listQuotes(ctx, businessID, status, query)
}

func (s *stubApp) UpdateQuoteStatus(ctx context.Context, id string, status enum.QuoteStatus) (*models.Quote, error) {
	return s.updateQuoteStatus(ctx, id, status)
}

func (s *stubApp) DuplicateQuote(ctx context.Context, id string, now time.Time) (*models.Quote, error) {
	return s.duplicateQuote(ctx, id, now)
}

func (s *stubApp) DeleteQuote(context.Context, string) error { return errStubNotSet }

func (s *stubApp) ExpirePendingQuotes(context.Context, string, time.Time) (int, error) {
	return 0, errStubNotSet
}

func (s *stubApp) PreviewQuote(items []calculation.Item, discount *calculation.Discount) calculation.Result {
	return calculation.CalculateQuote(items, discount)
}

func (s *stubApp) DashboardStats(ctx context.Context, businessID string, now time.Time) (dashboard.Stats, error) {
	return s.dashboardStats(ctx, businessID, now)
}

func (s *stubApp) RecentQuotes(ctx context.Context, businessID string, count int) ([]*models.Quote, error) {
	return s.recentQuotes(ctx, businessID, count)
}

func (s *stubApp) ShareQuote(ctx context.Context, id string) (*quickquote.ShareInfo, error) {
	return s.shareQuote(ctx, id)
}

func (s *stubApp) QuotePDF(context.Context, string) ([]byte, error) { return nil, errStubNotSet }

func (s *stubApp) ExportQuote(context.Context, string) (string, error) { return "", errStubNotSet }

func (s *stubApp) ImportQuote(ctx context.Context, payload string, now time.Time) (*models.Quote, error) {
	return s.importQuote(ctx, payload, now)
}
