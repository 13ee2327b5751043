package admission

import (
	"context"
	applicationstore "job-portal-backend/lib/application/store"
	jobstore "job-portal-backend/lib/job/store"
	userstore "job-portal-backend/lib/user/store"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"

	"gorm.io/gorm"
)

// Store is what one apply transaction reads and writes.
// GetJobForUpdate and LockApplicant hold their row locks until the transaction ends.
type Store interface {
	GetJobForUpdate(ctx context.Context, jobID string) (*dbmodels.Job, error)
	LockApplicant(ctx context.Context, userID string) (found bool, err error)
	CountActiveByJob(ctx context.Context, jobID string) (int64, error)
	CountActiveByApplicant(ctx context.Context, userID string) (int64, error)
	CountByApplicantAndStatus(ctx context.Context, userID string, status models.ApplicationStatus) (int64, error)
	ActiveJobIDs(ctx context.Context, userID string, jobIDs []string) (map[string]struct{}, error)
	CreateApplication(ctx context.Context, rec dbmodels.Application) (id string, err error)
}

// TxRunner runs fn in a transaction. A non-nil error from fn rolls it back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(store Store) error) error
}

func NewGormRunner(DB *gorm.DB) TxRunner {
	return gormRunner{db: DB}
}

type gormRunner struct {
	db *gorm.DB
}

func (r gormRunner) InTx(ctx context.Context, fn func(store Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txStore{
			jobs:         jobstore.NewInstance(tx),
			users:        userstore.NewInstance(tx),
			applications: applicationstore.NewInstance(tx),
		})
	})
}

type txStore struct {
	jobs         jobstore.Provider
	users        userstore.Provider
	applications applicationstore.Provider
}

func (s txStore) GetJobForUpdate(ctx context.Context, jobID string) (*dbmodels.Job, error) {
	return s.jobs.GetForUpdate(ctx, jobID)
}

func (s txStore) LockApplicant(ctx context.Context, userID string) (bool, error) {
	return s.users.LockByID(ctx, userID)
}

func (s txStore) CountActiveByJob(ctx context.Context, jobID string) (int64, error) {
	return s.applications.CountActiveByJob(ctx, jobID)
}

func (s txStore) CountActiveByApplicant(ctx context.Context, userID string) (int64, error) {
	return s.applications.CountActiveByApplicant(ctx, userID)
}

func (s txStore) CountByApplicantAndStatus(ctx context.Context, userID string, status models.ApplicationStatus) (int64, error) {
	return s.applications.CountByApplicantAndStatus(ctx, userID, status)
}

func (s txStore) ActiveJobIDs(ctx context.Context, userID string, jobIDs []string) (map[string]struct{}, error) {
	return s.applications.ActiveJobIDs(ctx, userID, jobIDs)
}

func (s txStore) CreateApplication(ctx context.Context, rec dbmodels.Application) (string, error) {
	return s.applications.Create(ctx, rec)
}
