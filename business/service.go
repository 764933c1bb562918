package business

import (
	"context"

	"github.com/jackc/pgx/v5"

	"quickquote.io/quickquote/driver"
	"quickquote.io/quickquote/models"
)

type Service interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id string) (*models.Business, error)
	GetByUserID(ctx context.Context, userID string) (*models.Business, error)
	Update(ctx context.Context, business *models.PartialBusiness) error
	ListIDs(ctx context.Context) ([]string, error)
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

func (s *service) Create(ctx context.Context, business *models.Business) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Create(ctx, tx, business)
	})
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Business, error) {
	var business *models.Business
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		business, err = s.repo.GetByID(ctx, tx, id)
		return err
	})
	return business, err
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*models.Business, error) {
	var business *models.Business
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		business, err = s.repo.GetByUserID(ctx, tx, userID)
		return err
	})
	return business, err
}

func (s *service) Update(ctx context.Context, business *models.PartialBusiness) error {
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Update(ctx, tx, business)
	})
}

func (s *service) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		ids, err = s.repo.ListIDs(ctx, tx)
		return err
	})
	return ids, err
}
