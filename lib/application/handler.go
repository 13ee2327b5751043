package applicationhandler

import (
	"bytes"
	"context"
	"fmt"
	"job-portal-backend/db"
	"job-portal-backend/lib/application/admission"
	applicationstore "job-portal-backend/lib/application/store"
	pdfexport "job-portal-backend/lib/export/pdf"
	xlsexport "job-portal-backend/lib/export/xls"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/lib/smtp"
	userstore "job-portal-backend/lib/user/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	applicationapimodels "job-portal-backend/models/api/application"
	dbmodels "job-portal-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	msgApplicationNotFound = "Application does not exist"
	msgJobNotFound         = "Job does not exist"
	MsgCannotViewList      = "You don't have permissions to view job applications"
	msgStatusUpdated       = "Application %s successfully"
	msgOfferUnavailable    = "Offer letter is available for accepted applications only"
)

type Admission interface {
	Apply(ctx context.Context, caller models.Caller, jobID, sop string) (admission.Result, error)
}

type Provider interface {
	Apply(ctx context.Context, caller models.Caller, jobID string, req applicationapimodels.ApplyRequest) (admission.Result, error)
	List(ctx context.Context, caller models.Caller, status models.ApplicationStatus) ([]applicationapimodels.ApplicationView, error)
	ListForJob(ctx context.Context, caller models.Caller, jobID string, status models.ApplicationStatus) ([]applicationapimodels.ApplicationView, error)
	UpdateStatus(ctx context.Context, caller models.Caller, id string, status models.ApplicationStatus) (message string, err error)
	ExportForJob(ctx context.Context, caller models.Caller, jobID string) (*bytes.Buffer, error)
	Offer(ctx context.Context, caller models.Caller, id string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"smtp.Instance", smtp.Instance,
		"xlsexport.Instance", xlsexport.Instance,
	)
	Instance = impl{
		admission:        admission.NewController(admission.NewGormRunner(db.DB)),
		applicationStore: applicationstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		userStore:        userstore.NewInstance(db.DB),
		mailer:           smtp.Instance,
		exporter:         xlsexport.Instance,
		now:              time.Now,
	}
}

type impl struct {
	admission        Admission
	applicationStore applicationstore.Provider
	jobStore         jobstore.Provider
	userStore        userstore.Provider
	mailer           smtp.Provider
	exporter         xlsexport.Provider
	now              func() time.Time
}

func (i impl) Apply(ctx context.Context, caller models.Caller, jobID string, req applicationapimodels.ApplyRequest) (admission.Result, error) {
	result, err := i.admission.Apply(ctx, caller, jobID, req.Sop)
	if err != nil {
		return admission.Result{}, err
	}
	if result.Ok() && i.mailer != nil && i.mailer.IsConfigured() {
		go i.notifyRecruiter(caller.UserID(), *result.Job)
	}
	return result, nil
}

// notifyRecruiter mails the job owner about a new application. Failures are only logged.
func (i impl) notifyRecruiter(applicantID string, job dbmodels.Job) {
	ctx := context.Background()
	logger := log.WithField("job_id", job.ID).WithField("recruiter_id", job.RecruiterID)
	recruiter, err := i.userStore.GetByID(ctx, job.RecruiterID)
	if err != nil || recruiter == nil {
		logger.WithError(err).Warn("recruiter not found, notification skipped")
		return
	}
	applicant, err := i.userStore.GetByID(ctx, applicantID)
	if err != nil || applicant == nil {
		logger.WithError(err).Warn("applicant not found, notification skipped")
		return
	}
	message := fmt.Sprintf("%s applied for %s.", applicant.Name, job.Title)
	if err = i.mailer.SendEMail(recruiter.Email, "New application", message); err != nil {
		logger.WithError(err).Error("failed to notify recruiter")
	}
}

// List returns the applications of an applicant, or the applications to all jobs of a recruiter.
// A non-empty status narrows the list, e.g. accepted for the final applicants of a recruiter.
func (i impl) List(ctx context.Context, caller models.Caller, status models.ApplicationStatus) ([]applicationapimodels.ApplicationView, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return nil, models.NewBadRequest(err.Error())
		}
	}
	filter := dbmodels.ApplicationFilter{Status: status}
	switch caller.Type() {
	case models.UserTypeApplicant:
		filter.UserID = caller.UserID()
	case models.UserTypeRecruiter:
		filter.RecruiterID = caller.UserID()
	default:
		return nil, models.NewUnauthorized(MsgCannotViewList)
	}
	if caller.UserID() == "" {
		return nil, models.NewUnauthorized(MsgCannotViewList)
	}
	list, err := i.applicationStore.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListForJob(ctx context.Context, caller models.Caller, jobID string, status models.ApplicationStatus) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.listForJob(ctx, caller, jobID, status)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) listForJob(ctx context.Context, caller models.Caller, jobID string, status models.ApplicationStatus) ([]dbmodels.Application, error) {
	if !models.IsRecruiter(caller) {
		return nil, models.NewUnauthorized(MsgCannotViewList)
	}
	if status != "" {
		if err := status.Validate(); err != nil {
			return nil, models.NewBadRequest(err.Error())
		}
	}
	return i.applicationStore.List(ctx, dbmodels.ApplicationFilter{
		JobID:       jobID,
		RecruiterID: caller.UserID(),
		Status:      status,
	})
}

func (i impl) UpdateStatus(ctx context.Context, caller models.Caller, id string, status models.ApplicationStatus) (string, error) {
	logger := log.WithField("application_id", id)
	rec, err := i.applicationStore.GetByID(ctx, id)
	if err != nil {
		return "", errors.Wrap(err, "failed to read application")
	}
	if rec == nil {
		return "", models.NewNotFound(msgApplicationNotFound)
	}
	changed, err := rec.IsAllowStatusChange(caller, status)
	if err != nil {
		return "", err
	}
	message := fmt.Sprintf(msgStatusUpdated, status)
	if !changed {
		return message, nil
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	if status == models.ApplicationStatusAccepted {
		updMap["date_of_joining"] = i.now()
	}
	if err = i.applicationStore.Update(ctx, id, updMap); err != nil {
		return "", errors.Wrap(err, "failed to update application status")
	}
	logger.WithField("from", rec.Status).WithField("to", status).Info("application status changed")
	return message, nil
}

func (i impl) ExportForJob(ctx context.Context, caller models.Caller, jobID string) (*bytes.Buffer, error) {
	job, err := i.jobStore.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read job")
	}
	if job == nil || !caller.CanManageJob(job.RecruiterID) {
		return nil, models.NewNotFound(msgJobNotFound)
	}
	list, err := i.listForJob(ctx, caller, jobID, "")
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportApplicationList(job.Title, list)
}

func (i impl) Offer(ctx context.Context, caller models.Caller, id string) ([]byte, error) {
	rec, err := i.applicationStore.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read application")
	}
	if rec == nil || (rec.UserID != caller.UserID() && rec.RecruiterID != caller.UserID()) {
		return nil, models.NewNotFound(msgApplicationNotFound)
	}
	if rec.Status != models.ApplicationStatusAccepted || rec.Job == nil || rec.User == nil {
		return nil, models.NewBadRequest(msgOfferUnavailable)
	}
	data := pdfexport.OfferData{
		ApplicantName: rec.User.Name,
		JobTitle:      rec.Job.Title,
		JobType:       string(rec.Job.JobType),
		Salary:        rec.Job.Salary,
		Duration:      rec.Job.Duration,
		IssuedAt:      i.now(),
	}
	if rec.DateOfJoining != nil {
		data.DateOfJoining = *rec.DateOfJoining
	}
	recruiter, err := i.userStore.GetByID(ctx, rec.RecruiterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read recruiter")
	}
	if recruiter != nil {
		data.RecruiterName = recruiter.Name
	}
	return pdfexport.GenerateOffer(data)
}

func convertList(list []dbmodels.Application) []applicationapimodels.ApplicationView {
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result
}
