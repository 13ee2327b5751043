package userhandler

import (
	"context"
	"job-portal-backend/db"
	userstore "job-portal-backend/lib/user/store"
	"job-portal-backend/models"
	userapimodels "job-portal-backend/models/api/user"

	"github.com/pkg/errors"
)

const msgUserNotFound = "User does not exist"

type Provider interface {
	GetByID(ctx context.Context, id string) (userapimodels.UserView, error)
	Update(ctx context.Context, caller models.Caller, data userapimodels.ProfileUpdate) error
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

func (i impl) GetByID(ctx context.Context, id string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		return userapimodels.UserView{}, errors.Wrap(err, "failed to read user")
	}
	if rec == nil {
		return userapimodels.UserView{}, models.NewNotFound(msgUserNotFound)
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) Update(ctx context.Context, caller models.Caller, data userapimodels.ProfileUpdate) error {
	rec, err := i.store.GetByID(ctx, caller.UserID())
	if err != nil {
		return errors.Wrap(err, "failed to read user")
	}
	if rec == nil {
		return models.NewNotFound(msgUserNotFound)
	}
	// the stored type wins over the token claim
	if err = i.store.Update(ctx, rec.ID, data.ToUpdMap(rec.Type)); err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	return nil
}
