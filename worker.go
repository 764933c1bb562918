package quickquote

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper is the slice of the facade the expiration workers need.
type Sweeper interface {
	ListBusinessIDs(ctx context.Context) ([]string, error)
	ExpirePendingQuotes(ctx context.Context, businessID string, now time.Time) (int, error)
}

// SweepRequest asks a worker to expire the overdue pending quotes of
// one business.
type SweepRequest struct {
	BusinessID string
	Now        time.Time
	Ctx        context.Context
}

type Worker struct {
	ID         int
	WorkerPool chan chan SweepRequest
	JobChannel chan SweepRequest
	quit       chan bool
	sweeper    Sweeper
	logger     *zap.Logger
}

func NewWorker(id int, workerPool chan chan SweepRequest, sweeper Sweeper, logger *zap.Logger) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan SweepRequest),
		quit:       make(chan bool),
		sweeper:    sweeper,
		logger:     logger,
	}
}

func (w Worker) Start() {
	go func() {
		for {
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				expired, err := w.sweeper.ExpirePendingQuotes(job.Ctx, job.BusinessID, job.Now)
				if err != nil {
					w.logger.Error("expiration sweep failed",
						zap.Error(err),
						zap.String("business_id", job.BusinessID))
					continue
				}
				if expired > 0 {
					w.logger.Info("expired overdue quotes",
						zap.String("business_id", job.BusinessID),
						zap.Int("expired", expired))
				}

			case <-w.quit:
				return
			}
		}
	}()
}

func (w Worker) Stop() {
	close(w.quit)
}
