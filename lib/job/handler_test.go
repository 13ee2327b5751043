package jobhandler

import (
	"context"
	searchquery "job-portal-backend/lib/job/search-query"
	"job-portal-backend/models"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type jobStoreMock struct {
	jobs      map[string]dbmodels.Job
	order     []string
	lastQuery searchquery.Query
	lastUpd   map[string]interface{}
}

func newJobStoreMock(jobs ...dbmodels.Job) *jobStoreMock {
	m := &jobStoreMock{jobs: map[string]dbmodels.Job{}}
	for _, job := range jobs {
		m.jobs[job.ID] = job
		m.order = append(m.order, job.ID)
	}
	return m
}

func (m *jobStoreMock) Create(_ context.Context, rec dbmodels.Job) (string, error) {
	rec.ID = "new-job"
	m.jobs[rec.ID] = rec
	return rec.ID, nil
}

func (m *jobStoreMock) GetByID(_ context.Context, id string) (*dbmodels.Job, error) {
	if job, ok := m.jobs[id]; ok {
		return &job, nil
	}
	return nil, nil
}

func (m *jobStoreMock) GetForUpdate(ctx context.Context, id string) (*dbmodels.Job, error) {
	return m.GetByID(ctx, id)
}

func (m *jobStoreMock) Update(_ context.Context, id, recruiterID string, updMap map[string]interface{}) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || job.RecruiterID != recruiterID {
		return false, nil
	}
	m.lastUpd = updMap
	return true, nil
}

func (m *jobStoreMock) Delete(_ context.Context, id, recruiterID string) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || job.RecruiterID != recruiterID {
		return false, nil
	}
	delete(m.jobs, id)
	return true, nil
}

func (m *jobStoreMock) List(_ context.Context, query searchquery.Query) ([]dbmodels.Job, error) {
	m.lastQuery = query
	list := []dbmodels.Job{}
	for _, id := range m.order {
		list = append(list, m.jobs[id])
	}
	return list, nil
}

func (m *jobStoreMock) ListExpired(_ context.Context, _ time.Time) ([]dbmodels.Job, error) {
	return nil, nil
}

func (m *jobStoreMock) Close(_ context.Context, _ string) error {
	return nil
}

type ledgerMock map[string]struct{}

func (l ledgerMock) ActiveJobIDs(_ context.Context, _ string, jobIDs []string) (map[string]struct{}, error) {
	result := map[string]struct{}{}
	for _, id := range jobIDs {
		if _, ok := l[id]; ok {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

func job(id, recruiterID string) dbmodels.Job {
	rec := dbmodels.Job{RecruiterID: recruiterID, Title: "job " + id, Status: models.JobStatusOpen}
	rec.ID = id
	return rec
}

func requireHumanError(t *testing.T, err error, status int, message string) {
	hErr, ok := err.(models.HumanError)
	require.True(t, ok, "unexpected error %v", err)
	require.Equal(t, status, hErr.Status)
	require.Equal(t, message, hErr.Message)
}

func TestJobHandler(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	applicant := models.ApplicantCaller{ID: "app-1"}
	owner := models.RecruiterCaller{ID: "rec-1"}
	stranger := models.RecruiterCaller{ID: "rec-2"}

	t.Run(`only recruiters create jobs`, func(t *testing.T) {
		store := newJobStoreMock()
		h := impl{jobStore: store, now: func() time.Time { return now }}
		data := jobapimodels.JobData{Title: "Go dev", MaxApplicants: 3, MaxPositions: 1, JobType: models.JobTypeFullTime}

		_, err := h.Create(ctx, applicant, data)
		requireHumanError(t, err, http.StatusUnauthorized, "You don't have permissions to add jobs")

		id, err := h.Create(ctx, owner, data)
		require.Nil(t, err)
		require.Equal(t, "rec-1", store.jobs[id].RecruiterID)
		require.Equal(t, models.JobStatusOpen, store.jobs[id].Status)
	})

	t.Run(`only the owner updates a job`, func(t *testing.T) {
		store := newJobStoreMock(job("j1", "rec-1"))
		h := impl{jobStore: store, now: func() time.Time { return now }}
		maxApplicants := 5
		upd := jobapimodels.JobUpdate{MaxApplicants: &maxApplicants}

		err := h.Update(ctx, applicant, "j1", upd)
		requireHumanError(t, err, http.StatusUnauthorized, "You don't have permissions to change the job details")

		err = h.Update(ctx, stranger, "j1", upd)
		requireHumanError(t, err, http.StatusNotFound, "Job does not exist")

		err = h.Update(ctx, owner, "missing", upd)
		requireHumanError(t, err, http.StatusNotFound, "Job does not exist")

		require.Nil(t, h.Update(ctx, owner, "j1", upd))
		require.Equal(t, map[string]interface{}{"max_applicants": 5}, store.lastUpd)
	})

	t.Run(`positions never exceed applicants after an update`, func(t *testing.T) {
		rec := job("j1", "rec-1")
		rec.MaxApplicants, rec.MaxPositions = 5, 2
		store := newJobStoreMock(rec)
		h := impl{jobStore: store, now: func() time.Time { return now }}
		tooMany, tooFew, fits := 6, 1, 4

		err := h.Update(ctx, owner, "j1", jobapimodels.JobUpdate{MaxPositions: &tooMany})
		requireHumanError(t, err, http.StatusBadRequest, "maxPositions must not exceed maxApplicants")
		err = h.Update(ctx, owner, "j1", jobapimodels.JobUpdate{MaxApplicants: &tooFew})
		requireHumanError(t, err, http.StatusBadRequest, "maxPositions must not exceed maxApplicants")
		require.Nil(t, store.lastUpd)

		require.Nil(t, h.Update(ctx, owner, "j1", jobapimodels.JobUpdate{MaxApplicants: &tooMany, MaxPositions: &tooMany}))
		require.Nil(t, h.Update(ctx, owner, "j1", jobapimodels.JobUpdate{MaxPositions: &fits}))
		require.Equal(t, map[string]interface{}{"max_positions": 4}, store.lastUpd)
	})

	t.Run(`only the owner deletes a job`, func(t *testing.T) {
		store := newJobStoreMock(job("j1", "rec-1"))
		h := impl{jobStore: store}

		err := h.Delete(ctx, stranger, "j1")
		requireHumanError(t, err, http.StatusUnauthorized, "You don't have permissions to delete the job")
		require.Nil(t, h.Delete(ctx, owner, "j1"))
		require.Empty(t, store.jobs)
	})

	t.Run(`applicant listing hides applied jobs`, func(t *testing.T) {
		store := newJobStoreMock(job("j1", "rec-1"), job("j2", "rec-1"), job("j3", "rec-2"))
		h := impl{jobStore: store, applicationStore: ledgerMock{"j2": {}}}

		list, err := h.List(ctx, applicant, map[string]string{"myjobs": "true"})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "j1", list[0].ID)
		require.Equal(t, "j3", list[1].ID)
		require.False(t, store.lastQuery.MyJobs)
	})

	t.Run(`recruiter listing is not filtered`, func(t *testing.T) {
		store := newJobStoreMock(job("j1", "rec-1"), job("j2", "rec-1"))
		h := impl{jobStore: store, applicationStore: ledgerMock{"j2": {}}}

		list, err := h.List(ctx, owner, map[string]string{"myjobs": "1"})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.True(t, store.lastQuery.MyJobs)
		require.Equal(t, "rec-1", store.lastQuery.RecruiterID)
	})
}
