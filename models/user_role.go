package models

import "github.com/pkg/errors"

type UserType string

const (
	UserTypeApplicant UserType = "applicant"
	UserTypeRecruiter UserType = "recruiter"
)

var userTypeHumanName = map[UserType]string{
	UserTypeApplicant: "Applicant",
	UserTypeRecruiter: "Recruiter",
}

func (t UserType) ToHuman() string {
	if human, exist := userTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t UserType) Validate() error {
	if _, exist := userTypeHumanName[t]; !exist {
		return errors.New("unknown user type")
	}
	return nil
}

// Caller is the authenticated identity a request is executed for.
type Caller interface {
	UserID() string
	Type() UserType
	CanApply() bool
	CanManageJob(recruiterID string) bool
}

// NewCaller builds the caller variant for a user type taken from a token.
// An unknown type yields a caller without any capability.
func NewCaller(userType UserType, userID string) Caller {
	switch userType {
	case UserTypeApplicant:
		return ApplicantCaller{ID: userID}
	case UserTypeRecruiter:
		return RecruiterCaller{ID: userID}
	}
	return UnknownCaller{ID: userID}
}

type ApplicantCaller struct {
	ID string
}

func (c ApplicantCaller) UserID() string { return c.ID }
func (c ApplicantCaller) Type() UserType { return UserTypeApplicant }
func (c ApplicantCaller) CanApply() bool { return c.ID != "" }
func (c ApplicantCaller) CanManageJob(_ string) bool { return false }

type RecruiterCaller struct {
	ID string
}

func (c RecruiterCaller) UserID() string { return c.ID }
func (c RecruiterCaller) Type() UserType { return UserTypeRecruiter }
func (c RecruiterCaller) CanApply() bool { return false }
func (c RecruiterCaller) CanManageJob(recruiterID string) bool {
	return c.ID != "" && c.ID == recruiterID
}

type UnknownCaller struct {
	ID string
}

func (c UnknownCaller) UserID() string { return c.ID }
func (c UnknownCaller) Type() UserType { return "" }
func (c UnknownCaller) CanApply() bool { return false }
func (c UnknownCaller) CanManageJob(_ string) bool { return false }

// IsRecruiter reports whether the caller acts as a recruiter, regardless of job ownership.
func IsRecruiter(c Caller) bool {
	return c != nil && c.Type() == UserTypeRecruiter && c.UserID() != ""
}
