package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"quickquote.io/quickquote/business"
	"quickquote.io/quickquote/calculation"
	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
	"quickquote.io/quickquote/quotenumber"
)

// Quote numbers are assigned optimistically; on a unique-constraint
// collision the whole create transaction is retried with a fresh
// number, up to this many attempts.
const maxNumberAttempts = 3

var (
	ErrNumberExhausted   = errors.New("quote: could not assign a unique quote number")
	ErrInvalidTransition = errors.New("quote: invalid status transition")
	ErrInvalidDiscount   = errors.New("quote: invalid discount type")
	ErrNoItems           = errors.New("quote: at least one line item is required")
)

// CreateInput is everything a caller supplies to create a quote.
// Totals are computed by the calculation engine, never taken from the
// caller.
type CreateInput struct {
	BusinessID string
	CustomerID *string
	Items      []calculation.Item
	Discount   *calculation.Discount
	Notes      *string
	Terms      *string
	ValidUntil *time.Time
}

type Service interface {
	Create(ctx context.Context, input CreateInput, now time.Time) (*models.Quote, error)
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	Update(ctx context.Context, quote *models.PartialQuote) error
	UpdateStatus(ctx context.Context, id string, status enum.QuoteStatus) (*models.Quote, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, businessID string, status *enum.QuoteStatus, query string) ([]*models.Quote, error)
	Duplicate(ctx context.Context, id string, now time.Time) (*models.Quote, error)
	Import(ctx context.Context, source *models.Quote, now time.Time) (*models.Quote, error)
	ExpirePending(ctx context.Context, businessID string, now time.Time) (int, error)
}

type service struct {
	repo               Repository
	businessRepo       business.Repository
	transactionManager *driver.TransactionManager
	logger             *zap.Logger
}

func NewService(repo Repository, businessRepo business.Repository, tm *driver.TransactionManager, logger *zap.Logger) Service {
	return &service{
		repo:               repo,
		businessRepo:       businessRepo,
		transactionManager: tm,
		logger:             logger,
	}
}

func (s *service) Create(ctx context.Context, input CreateInput, now time.Time) (*models.Quote, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}
	if input.Discount != nil && !input.Discount.Type.Valid() {
		return nil, ErrInvalidDiscount
	}

	result := calculation.CalculateQuote(input.Items, input.Discount)

	quote := &models.Quote{
		BusinessID:    input.BusinessID,
		CustomerID:    input.CustomerID,
		Status:        enum.QuoteStatusPending,
		Subtotal:      result.Subtotal,
		DiscountValue: 0,
		Total:         result.Total,
		Notes:         input.Notes,
		Terms:         input.Terms,
		ValidUntil:    input.ValidUntil,
	}
	if input.Discount != nil {
		discountType := input.Discount.Type
		quote.DiscountType = &discountType
		quote.DiscountValue = input.Discount.Value
	}

	quote.Items = make([]*models.QuoteItem, 0, len(result.LineItems))
	for _, line := range result.LineItems {
		quote.Items = append(quote.Items, &models.QuoteItem{
			ServiceID:   line.ServiceID,
			ServiceName: line.ServiceName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.LineTotal,
		})
	}

	return s.insertWithNumber(ctx, quote, now)
}

// insertWithNumber assigns a quote number and inserts inside one
// transaction, retrying the whole sequence when another writer claims
// the same number first.
func (s *service) insertWithNumber(ctx context.Context, quote *models.Quote, now time.Time) (*models.Quote, error) {
	var lastErr error

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
			if quote.ValidUntil == nil {
				biz, err := s.businessRepo.GetByID(ctx, tx, quote.BusinessID)
				if err != nil {
					return err
				}
				validUntil := now.AddDate(0, 0, biz.DefaultValidityDays)
				quote.ValidUntil = &validUntil
			}

			numbers, err := s.repo.ListNumbersByBusiness(ctx, tx, quote.BusinessID)
			if err != nil {
				return err
			}
			sequence := quotenumber.NextSequence(numbers, now.Year())
			number, err := quotenumber.Format(now.Year(), sequence)
			if err != nil {
				return err
			}
			quote.QuoteNumber = number

			return s.repo.Create(ctx, tx, quote)
		})
		if err == nil {
			return quote, nil
		}
		lastErr = err
		if !isUniqueViolation(err) {
			return nil, err
		}
		s.logger.Warn("quote number collision, retrying",
			zap.String("quote_number", quote.QuoteNumber),
			zap.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrNumberExhausted, maxNumberAttempts, lastErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	var quote *models.Quote
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		quote, err = s.repo.GetByID(ctx, tx, id)
		return err
	})
	return quote, err
}

func (s *service) Update(ctx context.Context, quote *models.PartialQuote) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Update(ctx, tx, quote)
	})
}

// UpdateStatus enacts a lifecycle transition. Only pending quotes move;
// accepted, rejected and expired are terminal.
func (s *service) UpdateStatus(ctx context.Context, id string, status enum.QuoteStatus) (*models.Quote, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	var quote *models.Quote
	err := s.transactionManager.ExecuteSerializableTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.Status != enum.QuoteStatusPending || status == enum.QuoteStatusPending {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
		}
		if err = s.repo.UpdateStatus(ctx, tx, id, status); err != nil {
			return err
		}
		quote, err = s.repo.GetByID(ctx, tx, id)
		return err
	})
	return quote, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Delete(ctx, tx, id)
	})
}

// List fetches the business's quotes and applies the in-memory status
// filter, text search and date ordering.
func (s *service) List(ctx context.Context, businessID string, status *enum.QuoteStatus, query string) ([]*models.Quote, error) {
	var quotes []*models.Quote
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		quotes, err = s.repo.ListByBusiness(ctx, tx, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if status != nil {
		quotes = FilterByStatus(quotes, *status)
	}
	quotes = Search(quotes, query)
	return SortByDate(quotes), nil
}

// Duplicate copies an existing quote's customer, items and financial
// fields exactly into a new pending quote with a fresh number and a
// recomputed validity window. Totals are copied, not recomputed.
func (s *service) Duplicate(ctx context.Context, id string, now time.Time) (*models.Quote, error) {
	source, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data := NewDuplicateData(source)

	quote := &models.Quote{
		BusinessID:    source.BusinessID,
		CustomerID:    data.CustomerID,
		Status:        enum.QuoteStatusPending,
		Subtotal:      data.Subtotal,
		DiscountType:  data.DiscountType,
		DiscountValue: data.DiscountValue,
		Total:         data.Total,
		Notes:         data.Notes,
		Terms:         data.Terms,
	}
	quote.Items = make([]*models.QuoteItem, 0, len(data.Items))
	for _, item := range data.Items {
		quote.Items = append(quote.Items, &models.QuoteItem{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return s.insertWithNumber(ctx, quote, now)
}

// Import inserts a previously exported quote as a new pending quote
// for the same business. The payload's identity, number, status and
// timestamps are discarded; financial fields and items are kept as-is.
func (s *service) Import(ctx context.Context, source *models.Quote, now time.Time) (*models.Quote, error) {
	quote := &models.Quote{
		BusinessID:    source.BusinessID,
		CustomerID:    source.CustomerID,
		Status:        enum.QuoteStatusPending,
		Subtotal:      source.Subtotal,
		DiscountType:  source.DiscountType,
		DiscountValue: source.DiscountValue,
		Total:         source.Total,
		Notes:         source.Notes,
		Terms:         source.Terms,
		ValidUntil:    source.ValidUntil,
	}
	quote.Items = make([]*models.QuoteItem, 0, len(source.Items))
	for _, item := range source.Items {
		quote.Items = append(quote.Items, &models.QuoteItem{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return s.insertWithNumber(ctx, quote, now)
}

// ExpirePending flips every pending quote whose deadline has passed to
// expired, one update per quote, and reports how many changed.
func (s *service) ExpirePending(ctx context.Context, businessID string, now time.Time) (int, error) {
	var quotes []*models.Quote
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		quotes, err = s.repo.ListByBusiness(ctx, tx, businessID)
		return err
	})
	if err != nil {
		return 0, err
	}

	candidates := ExpiredCandidates(quotes, now)
	expired := 0
	for _, candidate := range candidates {
		err = s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
			return s.repo.UpdateStatus(ctx, tx, candidate.ID, enum.QuoteStatusExpired)
		})
		if err != nil {
			s.logger.Error("failed to expire quote",
				zap.Error(err),
				zap.String("id", candidate.ID))
			continue
		}
		expired++
	}
	return expired, nil
}
