package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/models"
)

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, tx pgx.Tx, svc *models.Service) error
	GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Service, error)
	Update(ctx context.Context, tx pgx.Tx, svc *models.PartialService) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	ListByBusiness(ctx context.Context, tx pgx.Tx, businessID string, activeOnly bool) ([]*models.Service, error)
}

type repository struct {
	conn   driver.PostgresPool
	logger *zap.Logger
}

func NewRepository(conn driver.PostgresPool, logger *zap.Logger) Repository {
	return &repository{
		conn:   conn,
		logger: logger,
	}
}

const serviceColumns = `id, business_id, name, description, price, category, is_active, created_at, updated_at`

func scanService(row pgx.Row, s *models.Service) error {
	return row.Scan(&s.ID, &s.BusinessID, &s.Name, &s.Description, &s.Price,
		&s.Category, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

func (r *repository) Create(ctx context.Context, tx pgx.Tx, svc *models.Service) error {
	const query = `
    INSERT INTO services (business_id, name, description, price, category, is_active)
    VALUES (@business_id, @name, @description, @price, @category, @is_active)
    RETURNING ` + serviceColumns

	args := pgx.NamedArgs{
		"business_id": svc.BusinessID,
		"name":        svc.Name,
		"description": svc.Description,
		"price":       svc.Price,
		"category":    svc.Category,
		"is_active":   svc.IsActive,
	}

	if err := scanService(tx.QueryRow(ctx, query, args), svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.Service, error) {
	svc := models.NewService()
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = @id`
	if err := scanService(tx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}), svc); err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (r *repository) Update(ctx context.Context, tx pgx.Tx, svc *models.PartialService) error {
	const query = `
    UPDATE services SET
        name = COALESCE(@name, name),
        description = COALESCE(@description, description),
        price = COALESCE(@price, price),
        category = COALESCE(@category, category),
        is_active = COALESCE(@is_active, is_active),
        updated_at = NOW()
    WHERE id = @id
    `

	args := pgx.NamedArgs{
		"id":          svc.ID,
		"name":        svc.Name,
		"description": svc.Description,
		"price":       svc.Price,
		"category":    svc.Category,
		"is_active":   svc.IsActive,
	}

	if _, err := tx.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM services WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (r *repository) ListByBusiness(ctx context.Context, tx pgx.Tx, businessID string, activeOnly bool) ([]*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE business_id = @business_id`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY name`

	rows, err := tx.Query(ctx, query, pgx.NamedArgs{"business_id": businessID})
	if err != nil {
		r.logger.Error("error listing services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	services := make([]*models.Service, 0)
	for rows.Next() {
		svc := models.NewService()
		if err = scanService(rows, svc); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}
