package quote

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/ember"
	"goflare.io/ignite"
	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
)

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, tx pgx.Tx, quote *models.Quote) error
	GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Quote, error)
	Update(ctx context.Context, tx pgx.Tx, quote *models.PartialQuote) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status enum.QuoteStatus) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	ListByBusiness(ctx context.Context, tx pgx.Tx, businessID string) ([]*models.Quote, error)
	ListNumbersByBusiness(ctx context.Context, tx pgx.Tx, businessID string) ([]string, error)
}

type repository struct {
	conn        driver.PostgresPool
	logger      *zap.Logger
	cache       *ember.MultiCache
	poolManager ignite.Manager
}

func NewRepository(conn driver.PostgresPool, logger *zap.Logger, cache *ember.MultiCache, poolManager ignite.Manager) (Repository, error) {

	if err := poolManager.RegisterPool(reflect.TypeOf(&models.Quote{}), ignite.Config[any]{
		InitialSize: 10,
		MaxSize:     100,
		MaxIdleTime: 10 * time.Minute,
		Factory:     func() (any, error) { return models.NewQuote(), nil },
		Reset:       func(obj any) error { *obj.(*models.Quote) = models.Quote{}; return nil },
	}); err != nil {
		return nil, fmt.Errorf("failed to register quote pool: %w", err)
	}

	if err := poolManager.RegisterPool(reflect.TypeOf(&models.QuoteItem{}), ignite.Config[any]{
		InitialSize: 20,
		MaxSize:     200,
		MaxIdleTime: 10 * time.Minute,
		Factory:     func() (any, error) { return models.NewQuoteItem(), nil },
		Reset:       func(obj any) error { *obj.(*models.QuoteItem) = models.QuoteItem{}; return nil },
	}); err != nil {
		return nil, fmt.Errorf("failed to register quote item pool: %w", err)
	}

	return &repository{
		conn:        conn,
		logger:      logger,
		cache:       cache,
		poolManager: poolManager,
	}, nil
}

const quoteColumns = `id, business_id, customer_id, quote_number, status, subtotal, discount_type, discount_value, total, notes, terms, valid_until, created_at, updated_at`

func scanQuote(row pgx.Row, q *models.Quote) error {
	return row.Scan(&q.ID, &q.BusinessID, &q.CustomerID, &q.QuoteNumber, &q.Status,
		&q.Subtotal, &q.DiscountType, &q.DiscountValue, &q.Total, &q.Notes, &q.Terms,
		&q.ValidUntil, &q.CreatedAt, &q.UpdatedAt)
}

// Create inserts the quote and its line items. The unique constraint on
// (business_id, quote_number) surfaces as a 23505 error, which the
// service layer treats as a number collision and retries.
func (r *repository) Create(ctx context.Context, tx pgx.Tx, quote *models.Quote) error {
	const query = `
    INSERT INTO quotes (business_id, customer_id, quote_number, status, subtotal, discount_type, discount_value, total, notes, terms, valid_until)
    VALUES (@business_id, @customer_id, @quote_number, @status, @subtotal, @discount_type, @discount_value, @total, @notes, @terms, @valid_until)
    RETURNING ` + quoteColumns

	args := pgx.NamedArgs{
		"business_id":    quote.BusinessID,
		"customer_id":    quote.CustomerID,
		"quote_number":   quote.QuoteNumber,
		"status":         quote.Status,
		"subtotal":       quote.Subtotal,
		"discount_type":  quote.DiscountType,
		"discount_value": quote.DiscountValue,
		"total":          quote.Total,
		"notes":          quote.Notes,
		"terms":          quote.Terms,
		"valid_until":    quote.ValidUntil,
	}

	if err := scanQuote(tx.QueryRow(ctx, query, args), quote); err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	for _, item := range quote.Items {
		item.QuoteID = quote.ID
		if err := r.createItem(ctx, tx, item); err != nil {
			return err
		}
	}

	cacheKey := fmt.Sprintf("quote:%s", quote.ID)
	if err := r.cache.Set(ctx, cacheKey, quote); err != nil {
		r.logger.Warn("Failed to cache new quote", zap.Error(err), zap.String("id", quote.ID))
	}
	return nil
}

func (r *repository) createItem(ctx context.Context, tx pgx.Tx, item *models.QuoteItem) error {
	const query = `
    INSERT INTO quote_items (quote_id, service_id, service_name, quantity, unit_price, total_price)
    VALUES (@quote_id, @service_id, @service_name, @quantity, @unit_price, @total_price)
    RETURNING id, quote_id, service_id, service_name, quantity, unit_price, total_price, created_at
    `

	args := pgx.NamedArgs{
		"quote_id":     item.QuoteID,
		"service_id":   item.ServiceID,
		"service_name": item.ServiceName,
		"quantity":     item.Quantity,
		"unit_price":   item.UnitPrice,
		"total_price":  item.TotalPrice,
	}

	row := tx.QueryRow(ctx, query, args)
	if err := row.Scan(&item.ID, &item.QuoteID, &item.ServiceID, &item.ServiceName,
		&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
		return fmt.Errorf("failed to create quote item: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Quote, error) {
	cacheKey := fmt.Sprintf("quote:%s", id)

	var cached models.Quote
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		r.logger.Warn("Failed to get quote from cache", zap.Error(err), zap.String("id", id))
	} else if found {
		return &cached, nil
	}

	pool, err := r.poolManager.GetPool(reflect.TypeOf(&models.Quote{}))
	if err != nil {
		return nil, fmt.Errorf("failed to get quote pool: %w", err)
	}
	objWrapper, err := pool.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote from pool: %w", err)
	}
	defer pool.Put(objWrapper)
	scratch := objWrapper.Object.(*models.Quote)

	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = @id`
	if err = scanQuote(tx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}), scratch); err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	quote := *scratch

	if quote.Items, err = r.listItems(ctx, tx, quote.ID); err != nil {
		return nil, err
	}
	if quote.CustomerID != nil {
		customer := models.NewCustomer()
		customerQuery := `SELECT id, business_id, name, phone, email, address, created_at, updated_at FROM customers WHERE id = @id`
		row := tx.QueryRow(ctx, customerQuery, pgx.NamedArgs{"id": *quote.CustomerID})
		if err = row.Scan(&customer.ID, &customer.BusinessID, &customer.Name, &customer.Phone,
			&customer.Email, &customer.Address, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to get quote customer: %w", err)
		}
		quote.Customer = customer
	}

	if err = r.cache.Set(ctx, cacheKey, &quote); err != nil {
		r.logger.Warn("Failed to cache quote", zap.Error(err), zap.String("id", id))
	}
	return &quote, nil
}

func (r *repository) listItems(ctx context.Context, tx pgx.Tx, quoteID string) ([]*models.QuoteItem, error) {
	const query = `
    SELECT id, quote_id, service_id, service_name, quantity, unit_price, total_price, created_at
    FROM quote_items WHERE quote_id = @quote_id ORDER BY created_at, id
    `

	rows, err := tx.Query(ctx, query, pgx.NamedArgs{"quote_id": quoteID})
	if err != nil {
		return nil, fmt.Errorf("failed to list quote items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.QuoteItem, 0)
	for rows.Next() {
		item := models.NewQuoteItem()
		if err = rows.Scan(&item.ID, &item.QuoteID, &item.ServiceID, &item.ServiceName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) Update(ctx context.Context, tx pgx.Tx, quote *models.PartialQuote) error {
	const query = `
    UPDATE quotes SET
        customer_id = COALESCE(@customer_id, customer_id),
        status = COALESCE(@status, status),
        subtotal = COALESCE(@subtotal, subtotal),
        discount_type = COALESCE(@discount_type, discount_type),
        discount_value = COALESCE(@discount_value, discount_value),
        total = COALESCE(@total, total),
        notes = COALESCE(@notes, notes),
        terms = COALESCE(@terms, terms),
        valid_until = COALESCE(@valid_until, valid_until),
        updated_at = NOW()
    WHERE id = @id
    `

	args := pgx.NamedArgs{
		"id":             quote.ID,
		"customer_id":    quote.CustomerID,
		"status":         quote.Status,
		"subtotal":       quote.Subtotal,
		"discount_type":  quote.DiscountType,
		"discount_value": quote.DiscountValue,
		"total":          quote.Total,
		"notes":          quote.Notes,
		"terms":          quote.Terms,
		"valid_until":    quote.ValidUntil,
	}

	if _, err := tx.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}

	return r.invalidate(ctx, quote.ID)
}

func (r *repository) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status enum.QuoteStatus) error {
	const query = `UPDATE quotes SET status = @status, updated_at = NOW() WHERE id = @id`

	if _, err := tx.Exec(ctx, query, pgx.NamedArgs{"id": id, "status": status}); err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}
	return r.invalidate(ctx, id)
}

func (r *repository) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM quotes WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	return r.invalidate(ctx, id)
}

func (r *repository) invalidate(ctx context.Context, id string) error {
	cacheKey := fmt.Sprintf("quote:%s", id)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		r.logger.Warn("Failed to invalidate quote cache", zap.Error(err), zap.String("id", id))
	}
	return nil
}

// ListByBusiness returns the business's quotes newest first, each with
// its customer attached when one is set. Items are not loaded here;
// list views do not need them.
func (r *repository) ListByBusiness(ctx context.Context, tx pgx.Tx, businessID string) ([]*models.Quote, error) {
	const query = `
    SELECT q.id, q.business_id, q.customer_id, q.quote_number, q.status, q.subtotal,
           q.discount_type, q.discount_value, q.total, q.notes, q.terms, q.valid_until,
           q.created_at, q.updated_at,
           c.id, c.business_id, c.name, c.phone, c.email, c.address, c.created_at, c.updated_at
    FROM quotes q
    LEFT JOIN customers c ON c.id = q.customer_id
    WHERE q.business_id = @business_id
    ORDER BY q.created_at DESC, q.id
    `

	rows, err := tx.Query(ctx, query, pgx.NamedArgs{"business_id": businessID})
	if err != nil {
		r.logger.Error("error listing quotes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	quotes := make([]*models.Quote, 0)
	for rows.Next() {
		quote := models.NewQuote()
		var (
			custID, custBusinessID, custName, custPhone *string
			custEmail, custAddress                      *string
			custCreatedAt, custUpdatedAt                *time.Time
		)
		if err = rows.Scan(&quote.ID, &quote.BusinessID, &quote.CustomerID, &quote.QuoteNumber,
			&quote.Status, &quote.Subtotal, &quote.DiscountType, &quote.DiscountValue, &quote.Total,
			&quote.Notes, &quote.Terms, &quote.ValidUntil, &quote.CreatedAt, &quote.UpdatedAt,
			&custID, &custBusinessID, &custName, &custPhone, &custEmail, &custAddress,
			&custCreatedAt, &custUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		if custID != nil {
			quote.Customer = &models.Customer{
				ID:         *custID,
				BusinessID: *custBusinessID,
				Name:       *custName,
				Phone:      *custPhone,
				Email:      custEmail,
				Address:    custAddress,
				CreatedAt:  *custCreatedAt,
				UpdatedAt:  *custUpdatedAt,
			}
		}
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}

func (r *repository) ListNumbersByBusiness(ctx context.Context, tx pgx.Tx, businessID string) ([]string, error) {
	const query = `SELECT quote_number FROM quotes WHERE business_id = @business_id`

	rows, err := tx.Query(ctx, query, pgx.NamedArgs{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to list quote numbers: %w", err)
	}
	defer rows.Close()

	numbers := make([]string, 0)
	for rows.Next() {
		var number string
		if err = rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan quote number: %w", err)
		}
		numbers = append(numbers, number)
	}
	return numbers, rows.Err()
}
