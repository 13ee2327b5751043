package jobexpiryworker

import (
	"context"
	"job-portal-backend/db"
	jobstore "job-portal-backend/lib/job/store"
	baseworker "job-portal-backend/lib/utils/base-worker"
	"job-portal-backend/lib/utils/helpers"
	"time"
)

func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("JobExpiryWorker", 15*time.Second, interval),
		jobStore: jobstore.NewInstance(db.DB),
		now:      time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	jobStore jobstore.Provider
	now      func() time.Time
}

// handle closes the open jobs whose deadline has passed.
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.jobStore.ListExpired(ctx, i.now())
	if err != nil {
		logger.WithError(err).Error("failed to list expired jobs")
		return
	}
	closed := 0
	for _, job := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if err = i.jobStore.Close(ctx, job.ID); err != nil {
			logger.WithError(err).WithField("job_id", job.ID).Error("failed to close expired job")
			continue
		}
		closed++
	}
	if closed != 0 {
		logger.WithField("count", closed).Info("expired jobs closed")
	}
}
