package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"goflare.io/ember"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/quote"
)

// Service computes dashboard views over a business's quotes. Stats are
// cached per business and month, so a sweep or a new quote shows up
// after the cache entry rolls over rather than instantly.
type Service interface {
	Stats(ctx context.Context, businessID string, now time.Time) (Stats, error)
	Recent(ctx context.Context, businessID string, count int) ([]*models.Quote, error)
}

type service struct {
	quotes quote.Service
	cache  *ember.MultiCache
	logger *zap.Logger
}

func NewService(quotes quote.Service, cache *ember.MultiCache, logger *zap.Logger) Service {
	return &service{
		quotes: quotes,
		cache:  cache,
		logger: logger,
	}
}

func (s *service) Stats(ctx context.Context, businessID string, now time.Time) (Stats, error) {
	cacheKey := fmt.Sprintf("dashboard:stats:%s:%d-%02d", businessID, now.Year(), int(now.Month()))

	var cached Stats
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.logger.Warn("Failed to get dashboard stats from cache", zap.Error(err), zap.String("business_id", businessID))
	} else if found {
		return cached, nil
	}

	quotes, err := s.quotes.List(ctx, businessID, nil, "")
	if err != nil {
		return Stats{}, err
	}

	stats := CalculateStats(quotes, now)
	if err = s.cache.Set(ctx, cacheKey, &stats); err != nil {
		s.logger.Warn("Failed to cache dashboard stats", zap.Error(err), zap.String("business_id", businessID))
	}
	return stats, nil
}

func (s *service) Recent(ctx context.Context, businessID string, count int) ([]*models.Quote, error) {
	quotes, err := s.quotes.List(ctx, businessID, nil, "")
	if err != nil {
		return nil, err
	}
	return RecentQuotes(quotes, count), nil
}
