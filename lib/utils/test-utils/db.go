package testutils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/old-buffalo/task-management/models"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

// NewTestDB opens an in-memory sqlite database with the full schema. The
// pool is pinned to one connection so every query sees the same memory db.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	DB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

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
		require.NoError(t, DB.AutoMigrate(model))
	}
	return DB
}

// NewProfile inserts a directory profile and returns its id.
func NewProfile(t *testing.T, DB *gorm.DB, email string, role models.UserRole) string {
	t.Helper()
	rec := dbmodels.Profile{
		Email: email,
		Role:  role,
	}
	require.NoError(t, DB.Create(&rec).Error)
	return rec.ID
}
