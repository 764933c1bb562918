package quickquote

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingSweeper struct {
	mu         sync.Mutex
	businesses []string
	swept      map[string]int
}

func newRecordingSweeper(businesses ...string) *recordingSweeper {
	return &recordingSweeper{businesses: businesses, swept: make(map[string]int)}
}

func (r *recordingSweeper) ListBusinessIDs(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.businesses...), nil
}

func (r *recordingSweeper) ExpirePendingQuotes(_ context.Context, businessID string, _ time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swept[businessID]++
	return 1, nil
}

func (r *recordingSweeper) sweepCount(businessID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.swept[businessID]
}

func TestDispatcherSweepsEveryBusiness(t *testing.T) {
	sweeper := newRecordingSweeper("biz-1", "biz-2", "biz-3")
	d := NewDispatcher(2, 16, 20*time.Millisecond, sweeper, zap.NewNop())

	d.Run()
	defer d.Stop()

	deadline := time.After(2 * time.Second)
	for {
		if sweeper.sweepCount("biz-1") > 0 &&
			sweeper.sweepCount("biz-2") > 0 &&
			sweeper.sweepCount("biz-3") > 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("not every business was swept after %d/%d/%d sweeps",
				sweeper.sweepCount("biz-1"), sweeper.sweepCount("biz-2"), sweeper.sweepCount("biz-3"))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcherStopsCleanly(t *testing.T) {
	sweeper := newRecordingSweeper("biz-1")
	d := NewDispatcher(1, 4, 10*time.Millisecond, sweeper, zap.NewNop())

	d.Run()
	time.Sleep(50 * time.Millisecond)
	d.Stop()

	count := sweeper.sweepCount("biz-1")
	time.Sleep(50 * time.Millisecond)
	if grew := sweeper.sweepCount("biz-1") - count; grew > 1 {
		t.Errorf("sweeps kept running after Stop: %d more", grew)
	}
}
