package userapimodels

import (
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"strings"

	"github.com/lib/pq"
)

// ProfileUpdate holds the profile fields; which of them apply depends on the user type.
// Empty fields are left unchanged.
type ProfileUpdate struct {
	Name          string   `json:"name"`
	ContactNumber string   `json:"contactNumber"` // recruiter
	Bio           string   `json:"bio"`           // recruiter
	Education     string   `json:"education"`     // applicant
	Skills        []string `json:"skills"`        // applicant
	Resume        string   `json:"resume"`        // applicant
	Profile       string   `json:"profile"`       // applicant
}

func (r ProfileUpdate) ToUpdMap(userType models.UserType) map[string]interface{} {
	updMap := map[string]interface{}{}
	if name := strings.TrimSpace(r.Name); name != "" {
		updMap["name"] = name
	}
	switch userType {
	case models.UserTypeRecruiter:
		if r.ContactNumber != "" {
			updMap["contact_number"] = r.ContactNumber
		}
		if r.Bio != "" {
			updMap["bio"] = r.Bio
		}
	case models.UserTypeApplicant:
		if r.Education != "" {
			updMap["education"] = r.Education
		}
		if len(r.Skills) != 0 {
			updMap["skills"] = pq.StringArray(r.Skills)
		}
		if r.Resume != "" {
			updMap["resume"] = r.Resume
		}
		if r.Profile != "" {
			updMap["profile"] = r.Profile
		}
	}
	return updMap
}

type UserView struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Type          models.UserType `json:"type"`
	Name          string          `json:"name"`
	ContactNumber string          `json:"contactNumber,omitempty"`
	Bio           string          `json:"bio,omitempty"`
	Education     string          `json:"education,omitempty"`
	Skills        []string        `json:"skills,omitempty"`
	Resume        string          `json:"resume,omitempty"`
	Profile       string          `json:"profile,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	view := UserView{
		ID:    rec.ID,
		Email: rec.Email,
		Type:  rec.Type,
		Name:  rec.Name,
	}
	switch rec.Type {
	case models.UserTypeRecruiter:
		view.ContactNumber = rec.ContactNumber
		view.Bio = rec.Bio
	case models.UserTypeApplicant:
		view.Education = rec.Education
		view.Skills = rec.Skills
		view.Resume = rec.Resume
		view.Profile = rec.Profile
	}
	return view
}
