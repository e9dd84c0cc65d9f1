// Package scheduler runs periodic maintenance jobs. The only job today is
// operation-log retention; more belong here as they appear.
package scheduler

import (
	"context"
	"time"

	"github.com/warebilllabs/warebill/internal/clock"
	"github.com/warebilllabs/warebill/internal/config"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultInterval = time.Hour

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Config        config.Config
	Clock         clock.Clock
	OperationRepo operationdomain.Repository
}

type Scheduler struct {
	db            *gorm.DB
	log           *zap.Logger
	cfg           config.RetentionConfig
	clock         clock.Clock
	operationRepo operationdomain.Repository
}

func New(p Params) *Scheduler {
	return &Scheduler{
		db:            p.DB,
		log:           p.Log.Named("scheduler"),
		cfg:           p.Config.Retention,
		clock:         p.Clock,
		operationRepo: p.OperationRepo,
	}
}

// RunForever ticks until ctx is cancelled. Job errors are logged, never
// fatal; the next tick retries.
func (s *Scheduler) RunForever(ctx context.Context) {
	interval := s.interval()
	s.log.Info("scheduler started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			if err := s.RetentionJob(ctx); err != nil {
				s.log.Error("retention job failed", zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) interval() time.Duration {
	parsed, err := time.ParseDuration(s.cfg.Interval)
	if err != nil || parsed <= 0 {
		return defaultInterval
	}
	return parsed
}

// RetentionJob deletes operation logs older than the configured window.
// A non-positive window disables the job.
func (s *Scheduler) RetentionJob(ctx context.Context) error {
	days := s.cfg.OperationLogDays
	if days <= 0 {
		return nil
	}

	cutoff := s.clock.Now().AddDate(0, 0, -days)
	deleted, err := s.operationRepo.DeleteOlderThan(ctx, s.db, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.log.Info("operation logs pruned",
			zap.Time("cutoff", cutoff),
			zap.Int64("deleted", deleted),
		)
	}
	return nil
}
