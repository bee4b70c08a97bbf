package reservations

import (
	"context"
	"sync"
	"time"

	"campora/internal/shared/config"
	"campora/pkg/logger"
)

// CompletionJob periodically marks approved reservations whose end date has
// passed as completed
type CompletionJob struct {
	service  Service
	interval time.Duration
	logger   *logger.Logger

	stopCh chan struct{}
	doneWg sync.WaitGroup
	once   sync.Once
}

// NewCompletionJob creates the completion sweeper
func NewCompletionJob(service Service, cfg *config.Config, appLogger *logger.Logger) *CompletionJob {
	return &CompletionJob{
		service:  service,
		interval: cfg.Reservation.CompletionScan,
		logger:   appLogger,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop
func (j *CompletionJob) Start(ctx context.Context) {
	j.doneWg.Add(1)
	go func() {
		defer j.doneWg.Done()

		j.logger.Info("Reservation completion sweeper started")
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		// Run once on startup to catch anything missed while down
		j.sweep(ctx)

		for {
			select {
			case <-ticker.C:
				j.sweep(ctx)
			case <-j.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the sweep loop and waits for it to exit
func (j *CompletionJob) Stop() {
	j.once.Do(func() {
		close(j.stopCh)
	})
	j.doneWg.Wait()
	j.logger.Info("Reservation completion sweeper stopped")
}

func (j *CompletionJob) sweep(ctx context.Context) {
	count, err := j.service.CompleteDueReservations(ctx)
	if err != nil {
		j.logger.ErrorWithContext(ctx, "Completion sweep failed", err, nil)
		return
	}
	if count > 0 {
		j.logger.InfoWithContext(ctx, "Completion sweep finished", map[string]interface{}{
			"completed": count,
		})
	}
}
