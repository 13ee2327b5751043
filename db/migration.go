package db

import (
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "failed to migrate Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "failed to migrate Application")
	}
	log.Info("migrations finished")
	return nil
}
