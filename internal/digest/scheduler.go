package digest

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Reporter notifies an operator about run-level failures. It matches the
// nil-safe reporter.Reporter.
type Reporter interface {
	Notify(ctx context.Context, msg string)
}

// Scheduler triggers digest runs from a cron schedule or an explicit signal.
// Overlapping runs are possible when a trigger fires before a prior run
// finishes; runs are independent, so no mutual exclusion is applied.
type Scheduler struct {
	pipeline *Pipeline
	reporter Reporter
	trigger  chan struct{}
}

func NewScheduler(pipeline *Pipeline, reporter Reporter) *Scheduler {
	return &Scheduler{
		pipeline: pipeline,
		reporter: reporter,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests an ad-hoc digest run. A trigger arriving while one is
// already pending is coalesced.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Start blocks until ctx is cancelled, running the pipeline on the given
// cron expression and on every explicit trigger.
func (s *Scheduler) Start(ctx context.Context, cronExpr string) error {
	c := cron.New()
	if _, err := c.AddFunc(cronExpr, func() { s.runOnce(ctx) }); err != nil {
		return fmt.Errorf("parse cron expression %q: %w", cronExpr, err)
	}

	c.Start()
	defer c.Stop()

	log.Printf("[INFO] digest scheduler started (cron: %s)", cronExpr)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.trigger:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.pipeline.Run(ctx)
	if err != nil {
		log.Printf("[ERROR] news digest run failed: %v", err)
		s.reporter.Notify(ctx, fmt.Sprintf("StockSage news digest run failed: %v", err))
		return
	}

	log.Printf("[INFO] news digest run finished: %d/%d emails sent",
		result.EmailsSent, result.TotalSubscribers)
}
