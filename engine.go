package quickquote

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quickquote.io/quickquote/business"
	"quickquote.io/quickquote/calculation"
	"quickquote.io/quickquote/catalog"
	"quickquote.io/quickquote/config"
	"quickquote.io/quickquote/customer"
	"quickquote.io/quickquote/dashboard"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
	"quickquote.io/quickquote/pdf"
	"quickquote.io/quickquote/quote"
	"quickquote.io/quickquote/serialization"
	"quickquote.io/quickquote/share"
)

var _ QuickQuote = (*Engine)(nil)

// Engine implements QuickQuote by composing the entity services.
type Engine struct {
	businessService business.Service
	catalogService  catalog.Service
	customerService customer.Service
	quoteService    quote.Service
	dashboard       dashboard.Service
	pdfGenerator    *pdf.Generator
	baseURL         string
	logger          *zap.Logger
}

func NewEngine(
	businessService business.Service,
	catalogService catalog.Service,
	customerService customer.Service,
	quoteService quote.Service,
	dashboardService dashboard.Service,
	appConfig *config.Config,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		businessService: businessService,
		catalogService:  catalogService,
		customerService: customerService,
		quoteService:    quoteService,
		dashboard:       dashboardService,
		pdfGenerator:    pdf.NewGenerator(),
		baseURL:         appConfig.Server.BaseURL,
		logger:          logger,
	}
}

func (e *Engine) CreateBusiness(ctx context.Context, b *models.Business) error {
	return e.businessService.Create(ctx, b)
}

func (e *Engine) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	return e.businessService.GetByID(ctx, id)
}

func (e *Engine) GetBusinessByUser(ctx context.Context, userID string) (*models.Business, error) {
	return e.businessService.GetByUserID(ctx, userID)
}

func (e *Engine) UpdateBusiness(ctx context.Context, b *models.PartialBusiness) error {
	return e.businessService.Update(ctx, b)
}

func (e *Engine) ListBusinessIDs(ctx context.Context) ([]string, error) {
	return e.businessService.ListIDs(ctx)
}

func (e *Engine) CreateService(ctx context.Context, svc *models.Service) error {
	return e.catalogService.Create(ctx, svc)
}

func (e *Engine) GetService(ctx context.Context, id string) (*models.Service, error) {
	return e.catalogService.GetByID(ctx, id)
}

func (e *Engine) UpdateService(ctx context.Context, svc *models.PartialService) error {
	return e.catalogService.Update(ctx, svc)
}

func (e *Engine) DeleteService(ctx context.Context, id string) error {
	return e.catalogService.Delete(ctx, id)
}

func (e *Engine) ListServices(ctx context.Context, businessID string, activeOnly bool) ([]*models.Service, error) {
	return e.catalogService.ListByBusiness(ctx, businessID, activeOnly)
}

func (e *Engine) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return e.customerService.Create(ctx, c)
}

func (e *Engine) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return e.customerService.GetByID(ctx, id)
}

func (e *Engine) UpdateCustomer(ctx context.Context, c *models.PartialCustomer) error {
	return e.customerService.Update(ctx, c)
}

func (e *Engine) DeleteCustomer(ctx context.Context, id string) error {
	return e.customerService.Delete(ctx, id)
}

func (e *Engine) ListCustomers(ctx context.Context, businessID string) ([]*models.Customer, error) {
	return e.customerService.ListByBusiness(ctx, businessID)
}

func (e *Engine) CreateQuote(ctx context.Context, input quote.CreateInput, now time.Time) (*models.Quote, error) {
	return e.quoteService.Create(ctx, input, now)
}

func (e *Engine) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	return e.quoteService.GetByID(ctx, id)
}

func (e *Engine) UpdateQuote(ctx context.Context, q *models.PartialQuote) error {
	return e.quoteService.Update(ctx, q)
}

func (e *Engine) ListQuotes(ctx context.Context, businessID string, status *enum.QuoteStatus, query string) ([]*models.Quote, error) {
	return e.quoteService.List(ctx, businessID, status, query)
}

func (e *Engine) UpdateQuoteStatus(ctx context.Context, id string, status enum.QuoteStatus) (*models.Quote, error) {
	return e.quoteService.UpdateStatus(ctx, id, status)
}

func (e *Engine) DuplicateQuote(ctx context.Context, id string, now time.Time) (*models.Quote, error) {
	return e.quoteService.Duplicate(ctx, id, now)
}

func (e *Engine) DeleteQuote(ctx context.Context, id string) error {
	return e.quoteService.Delete(ctx, id)
}

func (e *Engine) ExpirePendingQuotes(ctx context.Context, businessID string, now time.Time) (int, error) {
	return e.quoteService.ExpirePending(ctx, businessID, now)
}

// PreviewQuote computes totals for a draft without touching storage.
func (e *Engine) PreviewQuote(items []calculation.Item, discount *calculation.Discount) calculation.Result {
	return calculation.CalculateQuote(items, discount)
}

func (e *Engine) DashboardStats(ctx context.Context, businessID string, now time.Time) (dashboard.Stats, error) {
	return e.dashboard.Stats(ctx, businessID, now)
}

func (e *Engine) RecentQuotes(ctx context.Context, businessID string, count int) ([]*models.Quote, error) {
	return e.dashboard.Recent(ctx, businessID, count)
}

func (e *Engine) ShareQuote(ctx context.Context, id string) (*ShareInfo, error) {
	q, err := e.quoteService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	biz, err := e.businessService.GetByID(ctx, q.BusinessID)
	if err != nil {
		return nil, err
	}

	link := share.QuoteLink(q.ID, e.baseURL)
	message := share.WhatsAppMessage(share.MessageInput{
		Quote:     q,
		Business:  biz,
		QuoteLink: link,
	})

	phone := ""
	if q.Customer != nil {
		phone = q.Customer.Phone
	}

	return &ShareInfo{
		QuoteLink:    link,
		Message:      message,
		WhatsAppLink: share.WhatsAppLink(message, phone),
	}, nil
}

func (e *Engine) QuotePDF(ctx context.Context, id string) ([]byte, error) {
	q, err := e.quoteService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	biz, err := e.businessService.GetByID(ctx, q.BusinessID)
	if err != nil {
		return nil, err
	}
	return e.pdfGenerator.Generate(q, biz)
}

func (e *Engine) ExportQuote(ctx context.Context, id string) (string, error) {
	q, err := e.quoteService.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return serialization.SerializeQuote(q)
}

func (e *Engine) ImportQuote(ctx context.Context, payload string, now time.Time) (*models.Quote, error) {
	source, err := serialization.DeserializeQuote(payload)
	if err != nil {
		return nil, err
	}
	return e.quoteService.Import(ctx, source, now)
}
