package applicationstore

import (
	"context"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Provider is the ledger of applications. Active counts exclude every terminal status.
type Provider interface {
	Create(ctx context.Context, rec dbmodels.Application) (id string, err error)
	GetByID(ctx context.Context, id string) (rec *dbmodels.Application, err error)
	Update(ctx context.Context, id string, updMap map[string]interface{}) error
	List(ctx context.Context, filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error)
	CountActiveByJob(ctx context.Context, jobID string) (int64, error)
	CountActiveByApplicant(ctx context.Context, userID string) (int64, error)
	CountByApplicantAndStatus(ctx context.Context, userID string, status models.ApplicationStatus) (int64, error)
	ActiveJobIDs(ctx context.Context, userID string, jobIDs []string) (map[string]struct{}, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Application) (id string, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) List(ctx context.Context, filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Preload("Job").
		Preload("User")
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.RecruiterID != "" {
		tx = tx.Where("recruiter_id = ?", filter.RecruiterID)
	}
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}
	return list, nil
}

func (i impl) CountActiveByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Where("status NOT IN ?", models.TerminalApplicationStatuses).
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count active applications of job %v", jobID)
	}
	return count, nil
}

func (i impl) CountActiveByApplicant(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Where("status NOT IN ?", models.TerminalApplicationStatuses).
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count active applications of user %v", userID)
	}
	return count, nil
}

func (i impl) CountByApplicantAndStatus(ctx context.Context, userID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Where("status = ?", status).
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %v applications of user %v", status, userID)
	}
	return count, nil
}

// ActiveJobIDs returns the subset of jobIDs the user holds an active application for.
func (i impl) ActiveJobIDs(ctx context.Context, userID string, jobIDs []string) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if len(jobIDs) == 0 {
		return result, nil
	}
	var found []string
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Application{}).
		Distinct("job_id").
		Where("user_id = ?", userID).
		Where("job_id IN ?", jobIDs).
		Where("status NOT IN ?", models.TerminalApplicationStatuses).
		Pluck("job_id", &found).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read active applications")
	}
	for _, id := range found {
		result[id] = struct{}{}
	}
	return result, nil
}
