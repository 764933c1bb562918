package customer

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
)

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, tx pgx.Tx, customer *models.Customer) error
	GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Customer, error)
	Update(ctx context.Context, tx pgx.Tx, customer *models.PartialCustomer) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	ListByBusiness(ctx context.Context, tx pgx.Tx, businessID string) ([]*models.Customer, error)
}

type repository struct {
	conn        driver.PostgresPool
	logger      *zap.Logger
	cache       *ember.MultiCache
	poolManager ignite.Manager
}

func NewRepository(conn driver.PostgresPool, logger *zap.Logger, cache *ember.MultiCache, poolManager ignite.Manager) (Repository, error) {

	if err := poolManager.RegisterPool(reflect.TypeOf(&models.Customer{}), ignite.Config[any]{
		InitialSize: 10,
		MaxSize:     100,
		MaxIdleTime: 10 * time.Minute,
		Factory:     func() (any, error) { return models.NewCustomer(), nil },
		Reset:       func(obj any) error { *obj.(*models.Customer) = models.Customer{}; return nil },
	}); err != nil {
		return nil, fmt.Errorf("failed to register customer pool: %w", err)
	}

	return &repository{
		conn:        conn,
		logger:      logger,
		cache:       cache,
		poolManager: poolManager,
	}, nil
}

const customerColumns = `id, business_id, name, phone, email, address, created_at, updated_at`

func scanCustomer(row pgx.Row, c *models.Customer) error {
	return row.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)
}

func (r *repository) Create(ctx context.Context, tx pgx.Tx, customer *models.Customer) error {
	const query = `
    INSERT INTO customers (business_id, name, phone, email, address)
    VALUES (@business_id, @name, @phone, @email, @address)
    RETURNING ` + customerColumns

	args := pgx.NamedArgs{
		"business_id": customer.BusinessID,
		"name":        customer.Name,
		"phone":       customer.Phone,
		"email":       customer.Email,
		"address":     customer.Address,
	}

	if err := scanCustomer(tx.QueryRow(ctx, query, args), customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	cacheKey := fmt.Sprintf("customer:%s", customer.ID)
	if err := r.cache.Set(ctx, cacheKey, customer); err != nil {
		r.logger.Warn("Failed to cache new customer", zap.Error(err), zap.String("id", customer.ID))
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Customer, error) {
	cacheKey := fmt.Sprintf("customer:%s", id)

	var cached models.Customer
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		r.logger.Warn("Failed to get customer from cache", zap.Error(err), zap.String("id", id))
	} else if found {
		return &cached, nil
	}

	pool, err := r.poolManager.GetPool(reflect.TypeOf(&models.Customer{}))
	if err != nil {
		return nil, fmt.Errorf("failed to get customer pool: %w", err)
	}
	objWrapper, err := pool.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer from pool: %w", err)
	}
	defer pool.Put(objWrapper)
	scratch := objWrapper.Object.(*models.Customer)

	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = @id`
	if err = scanCustomer(tx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}), scratch); err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer := *scratch
	if err = r.cache.Set(ctx, cacheKey, &customer); err != nil {
		r.logger.Warn("Failed to cache customer", zap.Error(err), zap.String("id", id))
	}
	return &customer, nil
}

func (r *repository) Update(ctx context.Context, tx pgx.Tx, customer *models.PartialCustomer) error {
	const query = `
    UPDATE customers SET
        name = COALESCE(@name, name),
        phone = COALESCE(@phone, phone),
        email = COALESCE(@email, email),
        address = COALESCE(@address, address),
        updated_at = NOW()
    WHERE id = @id
    `

	args := pgx.NamedArgs{
		"id":      customer.ID,
		"name":    customer.Name,
		"phone":   customer.Phone,
		"email":   customer.Email,
		"address": customer.Address,
	}

	if _, err := tx.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	cacheKey := fmt.Sprintf("customer:%s", customer.ID)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		r.logger.Warn("Failed to invalidate customer cache", zap.Error(err), zap.String("id", customer.ID))
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	cacheKey := fmt.Sprintf("customer:%s", id)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		r.logger.Warn("Failed to invalidate customer cache", zap.Error(err), zap.String("id", id))
	}
	return nil
}

func (r *repository) ListByBusiness(ctx context.Context, tx pgx.Tx, businessID string) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE business_id = @business_id ORDER BY name`

	rows, err := tx.Query(ctx, query, pgx.NamedArgs{"business_id": businessID})
	if err != nil {
		r.logger.Error("error listing customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := make([]*models.Customer, 0)
	for rows.Next() {
		customer := models.NewCustomer()
		if err = scanCustomer(rows, customer); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}
