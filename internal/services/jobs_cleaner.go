package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/logger"
)

type expiredJobsRepository interface {
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobsCleaner sweeps postings past their expiry once a day so they stop
// occupying the active status. Search already excludes them by predicate;
// the sweep keeps the stored status honest.
type JobsCleaner struct {
	jobs expiredJobsRepository
	cron *cron.Cron
}

func NewJobsCleaner(jobs expiredJobsRepository) (*JobsCleaner, error) {

	jc := &JobsCleaner{
		jobs: jobs,
		cron: cron.New(),
	}

	if _, err := jc.cron.AddFunc("0 0 * * *", jc.sweepExpired); err != nil {
		return nil, err
	}

	jc.cron.Start()
	log.Info("jobs cleaner started")
	return jc, nil
}

func (jc *JobsCleaner) Stop() {
	jc.cron.Stop()
}

func (jc *JobsCleaner) sweepExpired() {
	rowsAffected, err := jc.jobs.MarkExpired(context.Background(), time.Now())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to sweep expired jobs: %v", err)
	} else {
		log.Infof("expired jobs swept at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
