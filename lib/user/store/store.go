package userstore

import (
	"context"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.User) (id string, err error)
	GetByID(ctx context.Context, id string) (rec *dbmodels.User, err error)
	FindByEmail(ctx context.Context, email string) (rec *dbmodels.User, err error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id string, updMap map[string]interface{}) error
	LockByID(ctx context.Context, id string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.User) (id string, err error) {
	err = i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.User{}).
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

func (i impl) FindByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.User{}).
		Where("LOWER(email) = LOWER(?)", email).
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

func (i impl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := i.db.WithContext(ctx).
		Model(&dbmodels.User{}).
		Select("count(*) > 0").
		Where("LOWER(email) = LOWER(?)", email).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.User{}).
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

// LockByID takes the row lock of the user until the surrounding transaction ends.
func (i impl) LockByID(ctx context.Context, id string) (found bool, err error) {
	var ids []string
	err = i.db.WithContext(ctx).
		Model(&dbmodels.User{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Pluck("id", &ids).
		Error
	if err != nil {
		return false, err
	}
	return len(ids) != 0, nil
}
