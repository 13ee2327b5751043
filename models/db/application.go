package dbmodels

import (
	"fmt"
	"job-portal-backend/models"
	"time"
)

type Application struct {
	BaseModel
	UserID        string                   `gorm:"type:varchar(36);index:idx_application_user_status"`
	User          *User                    `gorm:"foreignKey:UserID"`
	RecruiterID   string                   `gorm:"type:varchar(36);index"`
	JobID         string                   `gorm:"type:varchar(36);index:idx_application_job_status"`
	Job           *Job                     `gorm:"foreignKey:JobID"`
	Status        models.ApplicationStatus `gorm:"type:varchar(20);index:idx_application_job_status;index:idx_application_user_status"`
	Sop           string
	DateOfJoining *time.Time
}

// IsAllowStatusChange applies the caller's rights to a status change.
// A false result without an error means the change is a no-op.
func (a Application) IsAllowStatusChange(caller models.Caller, newStatus models.ApplicationStatus) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, models.NewBadRequest(err.Error())
	}
	switch caller.Type() {
	case models.UserTypeApplicant:
		if a.UserID != caller.UserID() {
			return false, models.NewNotFound("Application does not exist")
		}
		if newStatus != models.ApplicationStatusCancelled {
			return false, models.NewUnauthorized("You don't have permissions to update job status")
		}
	case models.UserTypeRecruiter:
		if a.RecruiterID != caller.UserID() {
			return false, models.NewNotFound("Application does not exist")
		}
	default:
		return false, models.NewUnauthorized("You don't have permissions to update job status")
	}
	if a.Status == newStatus {
		return false, nil
	}
	// terminal statuses are final, only admission creates active applications
	if a.Status.IsTerminal() {
		return false, models.NewBadRequest(fmt.Sprintf("Application is already %s", a.Status))
	}
	return true, nil
}

type ApplicationFilter struct {
	UserID      string
	RecruiterID string
	JobID       string
	Status      models.ApplicationStatus
}
