package quickquote

import (
	"context"
	"time"

	"quickquote.io/quickquote/calculation"
	"quickquote.io/quickquote/dashboard"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
	"quickquote.io/quickquote/quote"
)

// QuickQuote is the application facade the HTTP handlers talk to.
// Every operation that depends on the current time takes it explicitly
// so callers stay deterministic and testable.
type QuickQuote interface {
	CreateBusiness(ctx context.Context, business *models.Business) error
	GetBusiness(ctx context.Context, id string) (*models.Business, error)
	GetBusinessByUser(ctx context.Context, userID string) (*models.Business, error)
	UpdateBusiness(ctx context.Context, business *models.PartialBusiness) error
	ListBusinessIDs(ctx context.Context) ([]string, error)

	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, id string) (*models.Service, error)
	UpdateService(ctx context.Context, svc *models.PartialService) error
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context, businessID string, activeOnly bool) ([]*models.Service, error)

	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.PartialCustomer) error
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, businessID string) ([]*models.Customer, error)

	CreateQuote(ctx context.Context, input quote.CreateInput, now time.Time) (*models.Quote, error)
	GetQuote(ctx context.Context, id string) (*models.Quote, error)
	UpdateQuote(ctx context.Context, quote *models.PartialQuote) error
	ListQuotes(ctx context.Context, businessID string, status *enum.QuoteStatus, query string) ([]*models.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id string, status enum.QuoteStatus) (*models.Quote, error)
	DuplicateQuote(ctx context.Context, id string, now time.Time) (*models.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	ExpirePendingQuotes(ctx context.Context, businessID string, now time.Time) (int, error)
	PreviewQuote(items []calculation.Item, discount *calculation.Discount) calculation.Result

	DashboardStats(ctx context.Context, businessID string, now time.Time) (dashboard.Stats, error)
	RecentQuotes(ctx context.Context, businessID string, count int) ([]*models.Quote, error)

	ShareQuote(ctx context.Context, id string) (*ShareInfo, error)
	QuotePDF(ctx context.Context, id string) ([]byte, error)
	ExportQuote(ctx context.Context, id string) (string, error)
	ImportQuote(ctx context.Context, payload string, now time.Time) (*models.Quote, error)
}

// ShareInfo is everything a client needs to send a quote over WhatsApp.
type ShareInfo struct {
	QuoteLink    string `json:"quote_link"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}
