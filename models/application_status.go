package models

import "github.com/pkg/errors"

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusCancelled   ApplicationStatus = "cancelled"
	ApplicationStatusDeleted     ApplicationStatus = "deleted"
	ApplicationStatusFinished    ApplicationStatus = "finished"
)

// MaxActiveApplications is how many active applications one applicant may hold at a time.
const MaxActiveApplications = 10

// TerminalApplicationStatuses are excluded when active applications are counted.
var TerminalApplicationStatuses = []ApplicationStatus{
	ApplicationStatusRejected,
	ApplicationStatusCancelled,
	ApplicationStatusDeleted,
	ApplicationStatusFinished,
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:     "Applied",
	ApplicationStatusShortlisted: "Shortlisted",
	ApplicationStatusAccepted:    "Accepted",
	ApplicationStatusRejected:    "Rejected",
	ApplicationStatusCancelled:   "Cancelled",
	ApplicationStatusDeleted:     "Deleted",
	ApplicationStatusFinished:    "Finished",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) Validate() error {
	if _, exist := applicationStatusHumanName[s]; !exist {
		return errors.New("unknown application status")
	}
	return nil
}

func (s ApplicationStatus) IsTerminal() bool {
	for _, terminal := range TerminalApplicationStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}
