package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jmacal/internal/services"
)

// Scheduler regenerates the calendars on a cron schedule while the feed
// server is running.
type Scheduler struct {
	cron      *cron.Cron
	generator *services.Generator
	schedule  string
	logger    *zap.Logger
}

func NewScheduler(generator *services.Generator, schedule string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		generator: generator,
		schedule:  schedule,
		logger:    logger,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runGeneration)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("schedule", s.schedule))
	return nil
}

func (s *Scheduler) runGeneration() {
	startTime := time.Now()
	s.logger.Info("Starting scheduled calendar refresh")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.generator.GenerateAll(ctx)

	s.logger.Info("Scheduled calendar refresh completed",
		zap.Duration("duration", time.Since(startTime)))
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}
