package quickquote

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher periodically enqueues one expiration sweep per business
// and fans the jobs out to a fixed worker pool. Quotes whose validity
// deadline has passed stay pending until a sweep marks them expired.
type Dispatcher struct {
	WorkerPool chan chan SweepRequest
	maxWorkers int
	jobQueue   chan SweepRequest
	interval   time.Duration
	sweeper    Sweeper
	logger     *zap.Logger
	workers    []Worker
	stop       chan bool
	mu         sync.Mutex
}

func NewDispatcher(maxWorkers, jobQueueSize int, interval time.Duration, sweeper Sweeper, logger *zap.Logger) *Dispatcher {
	pool := make(chan chan SweepRequest, maxWorkers)
	return &Dispatcher{
		WorkerPool: pool,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan SweepRequest, jobQueueSize),
		interval:   interval,
		sweeper:    sweeper,
		logger:     logger,
		stop:       make(chan bool),
	}
}

func (d *Dispatcher) Run() {
	for i := 0; i < d.maxWorkers; i++ {
		worker := NewWorker(i+1, d.WorkerPool, d.sweeper, d.logger)
		worker.Start()
		d.workers = append(d.workers, worker)
	}

	go d.dispatch()
}

func (d *Dispatcher) dispatch() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	var wg sync.WaitGroup

	for {
		select {
		case job := <-d.jobQueue:
			wg.Add(1)
			go func(job SweepRequest) {
				defer wg.Done()
				select {
				case jobChannel := <-d.WorkerPool:
					select {
					case jobChannel <- job:
					case <-job.Ctx.Done():
						d.logger.Warn("sweep canceled before processing",
							zap.Error(job.Ctx.Err()),
							zap.String("business_id", job.BusinessID))
					}
				case <-job.Ctx.Done():
					d.logger.Warn("sweep canceled while waiting for a worker",
						zap.Error(job.Ctx.Err()),
						zap.String("business_id", job.BusinessID))
				}
			}(job)

		case <-ticker.C:
			d.enqueueSweeps()

		case <-d.stop:
			wg.Wait()
			return
		}
	}
}

// enqueueSweeps lists every business and queues a sweep for each. A
// full queue drops the job; the next tick retries the business anyway.
func (d *Dispatcher) enqueueSweeps() {
	ctx, cancel := context.WithTimeout(context.Background(), d.interval)
	defer cancel()

	ids, err := d.sweeper.ListBusinessIDs(ctx)
	if err != nil {
		d.logger.Error("failed to list businesses for expiration sweep", zap.Error(err))
		return
	}

	now := time.Now()
	for _, id := range ids {
		select {
		case d.jobQueue <- SweepRequest{BusinessID: id, Now: now, Ctx: context.Background()}:
		default:
			d.logger.Warn("sweep queue full, skipping business until next tick",
				zap.String("business_id", id))
		}
	}
}

func (d *Dispatcher) Stop() {
	close(d.stop)
	var wg sync.WaitGroup

	d.mu.Lock()
	for _, worker := range d.workers {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			w.Stop()
		}(worker)
	}
	d.mu.Unlock()

	wg.Wait()
}
