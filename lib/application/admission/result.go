package admission

import (
	dbmodels "job-portal-backend/models/db"
	"net/http"
)

type Kind int

const (
	Admitted Kind = iota
	NotApplicant
	JobNotFound
	CapacityExceeded
	QuotaExceeded
	AlreadyAccepted
	AlreadyApplied
)

const (
	msgAdmitted         = "Job application successful"
	msgNotApplicant     = "You don't have permissions to apply for a job"
	msgJobNotFound      = "Job does not exist"
	msgCapacityExceeded = "Application limit reached"
	msgQuotaExceeded    = "You have 10 active applications. Hence you cannot apply."
	msgAlreadyAccepted  = "You already have an accepted job. Hence you cannot apply."
	msgAlreadyApplied   = "You have already applied for this job"
)

var kindNames = map[Kind]string{
	Admitted:         "admitted",
	NotApplicant:     "not_applicant",
	JobNotFound:      "job_not_found",
	CapacityExceeded: "capacity_exceeded",
	QuotaExceeded:    "quota_exceeded",
	AlreadyAccepted:  "already_accepted",
	AlreadyApplied:   "already_applied",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Result is the outcome of one apply attempt. Only Admitted carries an ApplicationID.
type Result struct {
	Kind          Kind
	Message       string
	ApplicationID string
	Job           *dbmodels.Job
}

func (r Result) Ok() bool {
	return r.Kind == Admitted
}

func (r Result) HTTPStatus() int {
	switch r.Kind {
	case Admitted:
		return http.StatusOK
	case NotApplicant:
		return http.StatusUnauthorized
	case JobNotFound:
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func refuse(kind Kind, message string) *Result {
	return &Result{Kind: kind, Message: message}
}
