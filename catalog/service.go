package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"

	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/models"
)

type Service interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, svc *models.PartialService) error
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]*models.Service, error)
}

type service struct {
	repo               Repository
	transactionManager *driver.TransactionManager
}

func NewService(repo Repository, tm *driver.TransactionManager) Service {
	return &service{
		repo:               repo,
		transactionManager: tm,
	}
}

func (s *service) Create(ctx context.Context, svc *models.Service) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Create(ctx, tx, svc)
	})
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc *models.Service
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		svc, err = s.repo.GetByID(ctx, tx, id)
		return err
	})
	return svc, err
}

func (s *service) Update(ctx context.Context, svc *models.PartialService) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Update(ctx, tx, svc)
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Delete(ctx, tx, id)
	})
}

func (s *service) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]*models.Service, error) {
	var services []*models.Service
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		services, err = s.repo.ListByBusiness(ctx, tx, businessID, activeOnly)
		return err
	})
	return services, err
}
