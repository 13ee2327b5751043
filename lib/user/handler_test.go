package userhandler

import (
	"context"
	"job-portal-backend/models"
	userapimodels "job-portal-backend/models/api/user"
	dbmodels "job-portal-backend/models/db"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

type userStoreMock struct {
	users   map[string]dbmodels.User
	updated map[string]interface{}
}

func (m *userStoreMock) Create(_ context.Context, rec dbmodels.User) (string, error) {
	m.users[rec.ID] = rec
	return rec.ID, nil
}

func (m *userStoreMock) GetByID(_ context.Context, id string) (*dbmodels.User, error) {
	if rec, ok := m.users[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (m *userStoreMock) FindByEmail(_ context.Context, _ string) (*dbmodels.User, error) {
	return nil, nil
}

func (m *userStoreMock) ExistByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (m *userStoreMock) Update(_ context.Context, _ string, updMap map[string]interface{}) error {
	m.updated = updMap
	return nil
}

func (m *userStoreMock) LockByID(_ context.Context, id string) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func newHandler() (impl, *userStoreMock) {
	applicant := dbmodels.User{Email: "a@example.com", Type: models.UserTypeApplicant, Name: "Ann", Skills: pq.StringArray{"go"}}
	applicant.ID = "user-1"
	recruiter := dbmodels.User{Email: "r@example.com", Type: models.UserTypeRecruiter, Name: "Rob", Bio: "hiring"}
	recruiter.ID = "user-2"
	store := &userStoreMock{users: map[string]dbmodels.User{
		applicant.ID: applicant,
		recruiter.ID: recruiter,
	}}
	return impl{store: store}, store
}

func TestGetByID(t *testing.T) {
	h, _ := newHandler()

	view, err := h.GetByID(context.Background(), "user-1")
	require.Nil(t, err)
	require.Equal(t, "Ann", view.Name)
	require.Equal(t, []string{"go"}, view.Skills)
	require.Empty(t, view.Bio)

	view, err = h.GetByID(context.Background(), "user-2")
	require.Nil(t, err)
	require.Equal(t, "hiring", view.Bio)
	require.Empty(t, view.Skills)

	_, err = h.GetByID(context.Background(), "user-3")
	var humanErr models.HumanError
	require.ErrorAs(t, err, &humanErr)
	require.Equal(t, http.StatusNotFound, humanErr.Status)
}

func TestUpdate(t *testing.T) {
	t.Run(`fields follow the stored type`, func(t *testing.T) {
		h, store := newHandler()
		// a token claiming recruiter cannot write recruiter fields of an applicant
		caller := models.RecruiterCaller{ID: "user-1"}
		err := h.Update(context.Background(), caller, userapimodels.ProfileUpdate{
			Name:      " Anna ",
			Bio:       "ignored",
			Education: "MSc",
		})
		require.Nil(t, err)
		require.Equal(t, map[string]interface{}{"name": "Anna", "education": "MSc"}, store.updated)
	})

	t.Run(`unknown user`, func(t *testing.T) {
		h, _ := newHandler()
		err := h.Update(context.Background(), models.ApplicantCaller{ID: "user-9"}, userapimodels.ProfileUpdate{Name: "x"})
		var humanErr models.HumanError
		require.ErrorAs(t, err, &humanErr)
		require.Equal(t, http.StatusNotFound, humanErr.Status)
	})
}
