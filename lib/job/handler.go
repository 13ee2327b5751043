package jobhandler

import (
	"context"
	"job-portal-backend/db"
	listingfilter "job-portal-backend/lib/application/listing-filter"
	applicationstore "job-portal-backend/lib/application/store"
	searchquery "job-portal-backend/lib/job/search-query"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/models"
	jobapimodels "job-portal-backend/models/api/job"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	msgJobNotFound     = "Job does not exist"
	MsgCannotAddJob    = "You don't have permissions to add jobs"
	MsgCannotChangeJob = "You don't have permissions to change the job details"
	MsgCannotDeleteJob = "You don't have permissions to delete the job"

	msgPositionsOverApplicants = "maxPositions must not exceed maxApplicants"
)

type Provider interface {
	Create(ctx context.Context, caller models.Caller, data jobapimodels.JobData) (id string, err error)
	GetByID(ctx context.Context, id string) (jobapimodels.JobView, error)
	Update(ctx context.Context, caller models.Caller, id string, data jobapimodels.JobUpdate) error
	Delete(ctx context.Context, caller models.Caller, id string) error
	List(ctx context.Context, caller models.Caller, params map[string]string) ([]jobapimodels.JobView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		jobStore:         jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		now:              time.Now,
	}
}

type impl struct {
	jobStore         jobstore.Provider
	applicationStore listingfilter.Ledger
	now              func() time.Time
}

func (i impl) Create(ctx context.Context, caller models.Caller, data jobapimodels.JobData) (string, error) {
	if !models.IsRecruiter(caller) {
		return "", models.NewUnauthorized(MsgCannotAddJob)
	}
	id, err := i.jobStore.Create(ctx, data.ToDbModel(caller.UserID()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create job")
	}
	log.WithField("job_id", id).WithField("recruiter_id", caller.UserID()).Info("job created")
	return id, nil
}

func (i impl) GetByID(ctx context.Context, id string) (jobapimodels.JobView, error) {
	rec, err := i.jobStore.GetByID(ctx, id)
	if err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "failed to read job")
	}
	if rec == nil {
		return jobapimodels.JobView{}, models.NewNotFound(msgJobNotFound)
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) Update(ctx context.Context, caller models.Caller, id string, data jobapimodels.JobUpdate) error {
	if !models.IsRecruiter(caller) {
		return models.NewUnauthorized(MsgCannotChangeJob)
	}
	rec, err := i.jobStore.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to read job")
	}
	if rec == nil || !caller.CanManageJob(rec.RecruiterID) {
		return models.NewNotFound(msgJobNotFound)
	}
	maxApplicants, maxPositions := rec.MaxApplicants, rec.MaxPositions
	if data.MaxApplicants != nil {
		maxApplicants = *data.MaxApplicants
	}
	if data.MaxPositions != nil {
		maxPositions = *data.MaxPositions
	}
	if maxPositions > maxApplicants {
		return models.NewBadRequest(msgPositionsOverApplicants)
	}
	found, err := i.jobStore.Update(ctx, id, caller.UserID(), data.ToUpdMap(i.now()))
	if err != nil {
		return errors.Wrap(err, "failed to update job")
	}
	if !found {
		return models.NewNotFound(msgJobNotFound)
	}
	return nil
}

func (i impl) Delete(ctx context.Context, caller models.Caller, id string) error {
	if !models.IsRecruiter(caller) {
		return models.NewUnauthorized(MsgCannotDeleteJob)
	}
	found, err := i.jobStore.Delete(ctx, id, caller.UserID())
	if err != nil {
		return errors.Wrap(err, "failed to delete job")
	}
	if !found {
		return models.NewUnauthorized(MsgCannotDeleteJob)
	}
	log.WithField("job_id", id).Info("job deleted")
	return nil
}

// List searches jobs. Applicants do not see the jobs they already hold an active application for.
func (i impl) List(ctx context.Context, caller models.Caller, params map[string]string) ([]jobapimodels.JobView, error) {
	query := searchquery.Build(params)
	if models.IsRecruiter(caller) {
		query.RecruiterID = caller.UserID()
	} else {
		query.MyJobs = false
	}
	list, err := i.jobStore.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if caller.CanApply() {
		list, err = listingfilter.Filter(ctx, i.applicationStore, caller.UserID(), list)
		if err != nil {
			return nil, err
		}
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, nil
}
