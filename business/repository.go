package business

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/ember"
	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/models"
)

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, tx pgx.Tx, business *models.Business) error
	GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Business, error)
	GetByUserID(ctx context.Context, tx pgx.Tx, userID string) (*models.Business, error)
	Update(ctx context.Context, tx pgx.Tx, business *models.PartialBusiness) error
	ListIDs(ctx context.Context, tx pgx.Tx) ([]string, error)
}

type repository struct {
	conn   driver.PostgresPool
	logger *zap.Logger
	cache  *ember.MultiCache
}

func NewRepository(conn driver.PostgresPool, logger *zap.Logger, cache *ember.MultiCache) Repository {
	return &repository{
		conn:   conn,
		logger: logger,
		cache:  cache,
	}
}

const businessColumns = `id, user_id, name, logo_url, phone, email, address, default_terms, default_validity_days, created_at, updated_at`

func scanBusiness(row pgx.Row, b *models.Business) error {
	return row.Scan(&b.ID, &b.UserID, &b.Name, &b.LogoURL, &b.Phone, &b.Email,
		&b.Address, &b.DefaultTerms, &b.DefaultValidityDays, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repository) Create(ctx context.Context, tx pgx.Tx, business *models.Business) error {
	const query = `
    INSERT INTO businesses (user_id, name, logo_url, phone, email, address, default_terms, default_validity_days)
    VALUES (@user_id, @name, @logo_url, @phone, @email, @address, @default_terms, @default_validity_days)
    RETURNING ` + businessColumns

	args := pgx.NamedArgs{
		"user_id":               business.UserID,
		"name":                  business.Name,
		"logo_url":              business.LogoURL,
		"phone":                 business.Phone,
		"email":                 business.Email,
		"address":               business.Address,
		"default_terms":         business.DefaultTerms,
		"default_validity_days": business.DefaultValidityDays,
	}

	if err := scanBusiness(tx.QueryRow(ctx, query, args), business); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Business, error) {
	cacheKey := fmt.Sprintf("business:%s", id)

	var cached models.Business
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		r.logger.Warn("Failed to get business from cache", zap.Error(err), zap.String("id", id))
	} else if found {
		return &cached, nil
	}

	business := models.NewBusiness()
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = @id`
	if err = scanBusiness(tx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}), business); err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	if err = r.cache.Set(ctx, cacheKey, business); err != nil {
		r.logger.Warn("Failed to cache business", zap.Error(err), zap.String("id", id))
	}
	return business, nil
}

func (r *repository) GetByUserID(ctx context.Context, tx pgx.Tx, userID string) (*models.Business, error) {
	business := models.NewBusiness()
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE user_id = @user_id`
	if err := scanBusiness(tx.QueryRow(ctx, query, pgx.NamedArgs{"user_id": userID}), business); err != nil {
		return nil, fmt.Errorf("failed to get business by user: %w", err)
	}
	return business, nil
}

func (r *repository) Update(ctx context.Context, tx pgx.Tx, business *models.PartialBusiness) error {
	const query = `
    UPDATE businesses SET
        name = COALESCE(@name, name),
        logo_url = COALESCE(@logo_url, logo_url),
        phone = COALESCE(@phone, phone),
        email = COALESCE(@email, email),
        address = COALESCE(@address, address),
        default_terms = COALESCE(@default_terms, default_terms),
        default_validity_days = COALESCE(@default_validity_days, default_validity_days),
        updated_at = NOW()
    WHERE id = @id
    `

	args := pgx.NamedArgs{
		"id":                    business.ID,
		"name":                  business.Name,
		"logo_url":              business.LogoURL,
		"phone":                 business.Phone,
		"email":                 business.Email,
		"address":               business.Address,
		"default_terms":         business.DefaultTerms,
		"default_validity_days": business.DefaultValidityDays,
	}

	if _, err := tx.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}

	cacheKey := fmt.Sprintf("business:%s", business.ID)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		r.logger.Warn("Failed to invalidate business cache", zap.Error(err), zap.String("id", business.ID))
	}
	return nil
}

// ListIDs returns every business id. The expiration sweeper uses it to
// fan out one sweep job per tenant.
func (r *repository) ListIDs(ctx context.Context, tx pgx.Tx) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM businesses`)
	if err != nil {
		return nil, fmt.Errorf("failed to list business ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan business id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
