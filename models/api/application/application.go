package applicationapimodels

import (
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"time"
)

type ApplyRequest struct {
	Sop string `json:"sop"` // statement of purpose
}

type StatusUpdate struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r StatusUpdate) Validate() error {
	return r.Status.Validate()
}

type ApplicationView struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"userId"`
	RecruiterID       string                   `json:"recruiterId"`
	JobID             string                   `json:"jobId"`
	Status            models.ApplicationStatus `json:"status"`
	Sop               string                   `json:"sop"`
	DateOfApplication time.Time                `json:"dateOfApplication"`
	DateOfJoining     *time.Time               `json:"dateOfJoining,omitempty"`
	JobTitle          string                   `json:"jobTitle,omitempty"`
	ApplicantName     string                   `json:"applicantName,omitempty"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:                rec.ID,
		UserID:            rec.UserID,
		RecruiterID:       rec.RecruiterID,
		JobID:             rec.JobID,
		Status:            rec.Status,
		Sop:               rec.Sop,
		DateOfApplication: rec.CreatedAt,
		DateOfJoining:     rec.DateOfJoining,
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
	}
	if rec.User != nil {
		view.ApplicantName = rec.User.Name
	}
	return view
}
