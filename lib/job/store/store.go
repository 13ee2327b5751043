package jobstore

import (
	"context"
	searchquery "job-portal-backend/lib/job/search-query"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Job) (id string, err error)
	GetByID(ctx context.Context, id string) (rec *dbmodels.Job, err error)
	GetForUpdate(ctx context.Context, id string) (rec *dbmodels.Job, err error)
	Update(ctx context.Context, id, recruiterID string, updMap map[string]interface{}) (found bool, err error)
	Delete(ctx context.Context, id, recruiterID string) (found bool, err error)
	List(ctx context.Context, query searchquery.Query) (list []dbmodels.Job, err error)
	ListExpired(ctx context.Context, now time.Time) (list []dbmodels.Job, err error)
	Close(ctx context.Context, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Job) (id string, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
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

// GetForUpdate reads the job and holds its row lock until the surrounding transaction ends.
func (i impl) GetForUpdate(ctx context.Context, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
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

func (i impl) Update(ctx context.Context, id, recruiterID string, updMap map[string]interface{}) (found bool, err error) {
	if len(updMap) == 0 {
		return true, nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Where("recruiter_id = ?", recruiterID).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) Delete(ctx context.Context, id, recruiterID string) (found bool, err error) {
	tx := i.db.WithContext(ctx).
		Where("id = ?", id).
		Where("recruiter_id = ?", recruiterID).
		Delete(&dbmodels.Job{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) List(ctx context.Context, query searchquery.Query) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Job{})
	tx = query.Apply(tx)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}
	return list, nil
}

func (i impl) ListExpired(ctx context.Context, now time.Time) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Where("status = ?", models.JobStatusOpen).
		Where("deadline < ?", now).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expired jobs")
	}
	return list, nil
}

func (i impl) Close(ctx context.Context, id string) error {
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Update("status", models.JobStatusClosed).
		Error
	if err != nil {
		return errors.Wrapf(err, "failed to close job %v", id)
	}
	return nil
}
