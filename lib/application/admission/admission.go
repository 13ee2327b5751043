package admission

import (
	"context"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Controller struct {
	runner TxRunner
}

func NewController(runner TxRunner) *Controller {
	return &Controller{runner: runner}
}

type request struct {
	caller models.Caller
	jobID  string
	sop    string
	store  Store
	job    *dbmodels.Job
}

// step returns a non-nil Result to stop the pipeline.
type step func(ctx context.Context, req *request) (*Result, error)

// Row locks are always taken job first, applicant second.
var txSteps = []step{
	lookupJob,
	lockApplicant,
	checkCapacity,
	checkApplicantQuota,
	checkExclusivity,
	checkDuplicate,
	commit,
}

// Apply decides whether caller may apply for jobID and records the application when it may.
// Refusals come back as a Result; the error is reserved for store failures.
func (c Controller) Apply(ctx context.Context, caller models.Caller, jobID, sop string) (Result, error) {
	logger := log.WithField("job_id", jobID)
	if res := checkRole(caller); res != nil {
		return *res, nil
	}
	logger = logger.WithField("user_id", caller.UserID())

	var result *Result
	err := c.runner.InTx(ctx, func(store Store) error {
		req := &request{
			caller: caller,
			jobID:  jobID,
			sop:    sop,
			store:  store,
		}
		for _, next := range txSteps {
			res, err := next(ctx, req)
			if err != nil {
				return err
			}
			if res != nil {
				result = res
				return nil
			}
		}
		return errors.New("apply pipeline finished without a result")
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "apply transaction failed")
	}
	if result.Kind != Admitted {
		logger.WithField("reason", result.Kind.String()).Info("application refused")
	}
	return *result, nil
}

func checkRole(caller models.Caller) *Result {
	if caller == nil || !caller.CanApply() {
		return refuse(NotApplicant, msgNotApplicant)
	}
	return nil
}

func lookupJob(ctx context.Context, req *request) (*Result, error) {
	job, err := req.store.GetJobForUpdate(ctx, req.jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read job")
	}
	if job == nil {
		return refuse(JobNotFound, msgJobNotFound), nil
	}
	req.job = job
	return nil, nil
}

func lockApplicant(ctx context.Context, req *request) (*Result, error) {
	found, err := req.store.LockApplicant(ctx, req.caller.UserID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock applicant")
	}
	if !found {
		return refuse(NotApplicant, msgNotApplicant), nil
	}
	return nil, nil
}

func checkCapacity(ctx context.Context, req *request) (*Result, error) {
	count, err := req.store.CountActiveByJob(ctx, req.job.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(req.job.MaxApplicants) {
		return refuse(CapacityExceeded, msgCapacityExceeded), nil
	}
	return nil, nil
}

func checkApplicantQuota(ctx context.Context, req *request) (*Result, error) {
	count, err := req.store.CountActiveByApplicant(ctx, req.caller.UserID())
	if err != nil {
		return nil, err
	}
	if count >= models.MaxActiveApplications {
		return refuse(QuotaExceeded, msgQuotaExceeded), nil
	}
	return nil, nil
}

func checkExclusivity(ctx context.Context, req *request) (*Result, error) {
	count, err := req.store.CountByApplicantAndStatus(ctx, req.caller.UserID(), models.ApplicationStatusAccepted)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return refuse(AlreadyAccepted, msgAlreadyAccepted), nil
	}
	return nil, nil
}

func checkDuplicate(ctx context.Context, req *request) (*Result, error) {
	applied, err := req.store.ActiveJobIDs(ctx, req.caller.UserID(), []string{req.job.ID})
	if err != nil {
		return nil, err
	}
	if _, ok := applied[req.job.ID]; ok {
		return refuse(AlreadyApplied, msgAlreadyApplied), nil
	}
	return nil, nil
}

func commit(ctx context.Context, req *request) (*Result, error) {
	id, err := req.store.CreateApplication(ctx, dbmodels.Application{
		UserID:      req.caller.UserID(),
		RecruiterID: req.job.RecruiterID,
		JobID:       req.job.ID,
		Status:      models.ApplicationStatusApplied,
		Sop:         req.sop,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create application")
	}
	return &Result{
		Kind:          Admitted,
		Message:       msgAdmitted,
		ApplicationID: id,
		Job:           req.job,
	}, nil
}
