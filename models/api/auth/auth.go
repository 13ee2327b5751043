package authapimodels

import (
	"job-portal-backend/models"
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

const minPasswordLength = 6

type SignupRequest struct {
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Type          models.UserType `json:"type"` // applicant or recruiter
	Name          string          `json:"name"`
	ContactNumber string          `json:"contactNumber"`
	Bio           string          `json:"bio"`
	Education     string          `json:"education"`
	Skills        []string        `json:"skills"`
}

func (r SignupRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	if len(r.Password) < minPasswordLength {
		return errors.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type JWTResponse struct {
	Token string          `json:"token"`
	Type  models.UserType `json:"type"`
}
