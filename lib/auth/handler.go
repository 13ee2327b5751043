package authhandler

import (
	"context"
	"job-portal-backend/db"
	userstore "job-portal-backend/lib/user/store"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	authapimodels "job-portal-backend/models/api/auth"
	dbmodels "job-portal-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgEmailTaken         = "User with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
)

type Provider interface {
	Signup(ctx context.Context, req authapimodels.SignupRequest) (authapimodels.JWTResponse, error)
	Login(ctx context.Context, req authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Signup(ctx context.Context, req authapimodels.SignupRequest) (authapimodels.JWTResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exist, err := i.store.ExistByEmail(ctx, email)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to check email")
	}
	if exist {
		return authapimodels.JWTResponse{}, models.NewBadRequest(msgEmailTaken)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.User{
		Email:    email,
		Password: string(hash),
		Type:     req.Type,
		Name:     strings.TrimSpace(req.Name),
	}
	switch req.Type {
	case models.UserTypeRecruiter:
		rec.ContactNumber = req.ContactNumber
		rec.Bio = req.Bio
	case models.UserTypeApplicant:
		rec.Education = req.Education
		rec.Skills = req.Skills
	}
	id, err := i.store.Create(ctx, rec)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to create user")
	}
	log.WithField("user_id", id).WithField("type", req.Type).Info("user registered")
	return newJWTResponse(id, rec.Name, rec.Type)
}

func (i impl) Login(ctx context.Context, req authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	rec, err := i.store.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to find user")
	}
	if rec == nil {
		return authapimodels.JWTResponse{}, models.NewUnauthorized(msgInvalidCredentials)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(req.Password)); err != nil {
		return authapimodels.JWTResponse{}, models.NewUnauthorized(msgInvalidCredentials)
	}
	return newJWTResponse(rec.ID, rec.Name, rec.Type)
}

func newJWTResponse(id, name string, userType models.UserType) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(id, name, userType)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to issue token")
	}
	return authapimodels.JWTResponse{Token: token, Type: userType}, nil
}
