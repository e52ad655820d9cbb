package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const jobTimeout = 5 * time.Minute

type weekPruner interface {
	PruneWeeks(ctx context.Context, before time.Time) (int64, error)
}

type sessionCleaner interface {
	ScanAndClean(ctx context.Context) (int, error)
}

// PruneWeeksJob removes week plans that started before the week of now - olderThan.
func PruneWeeksJob(pruner weekPruner, olderThan time.Duration, now func() time.Time) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		deleted, err := pruner.PruneWeeks(ctx, now().Add(-olderThan))
		if err != nil {
			log.Errorf("prune weeks job: %s", err)
			return
		}
		log.Infof("prune weeks job: removed %d week plans", deleted)
	}
}

// CleanSessionsJob drops expired login sessions.
func CleanSessionsJob(cleaner sessionCleaner) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		removed, err := cleaner.ScanAndClean(ctx)
		if err != nil {
			log.Errorf("clean sessions job: %s", err)
			return
		}
		log.Debugf("clean sessions job: removed %d sessions", removed)
	}
}

func (s *Server) startJobs() error {
	c := cron.New()
	if err := c.AddFunc(
		s.config.PruneWeeksSchedule,
		PruneWeeksJob(s.plansService, s.config.PruneWeeksOlderThan, time.Now),
	); err != nil {
		return fmt.Errorf("schedule prune weeks [%s]: %w", s.config.PruneWeeksSchedule, err)
	}
	if err := c.AddFunc(
		s.config.SessionCleanupSchedule,
		CleanSessionsJob(s.authService),
	); err != nil {
		return fmt.Errorf("schedule session cleanup [%s]: %w", s.config.SessionCleanupSchedule, err)
	}

	c.Start()
	s.cron = c
	log.Debugf("jobs scheduled: prune weeks [%s], session cleanup [%s]",
		s.config.PruneWeeksSchedule, s.config.SessionCleanupSchedule)
	return nil
}
