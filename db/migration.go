package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	for _, model := range []interface{}{
		&dbmodels.AuthAccount{},
		&dbmodels.Profile{},
		&dbmodels.Department{},
		&dbmodels.Team{},
		&dbmodels.Workspace{},
		&dbmodels.WorkspaceMember{},
		&dbmodels.Task{},
		&dbmodels.TaskComment{},
		&dbmodels.TaskAttachment{},
		&dbmodels.Notification{},
	} {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migration failed for %T", model)
		}
	}
	log.Info("migrations finished")
	return nil
}
