package workspacememberstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkspaceMember) error
	GetMember(workspaceID, userID string) (rec *dbmodels.WorkspaceMember, err error)
	ListByWorkspace(workspaceID string) (list []dbmodels.WorkspaceMember, err error)
	ListByUser(userID string) (list []dbmodels.WorkspaceMember, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkspaceMember) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) GetMember(workspaceID, userID string) (rec *dbmodels.WorkspaceMember, err error) {
	err = i.db.Model(dbmodels.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByWorkspace(workspaceID string) (list []dbmodels.WorkspaceMember, err error) {
	err = i.db.Model(dbmodels.WorkspaceMember{}).
		Where("workspace_id = ?", workspaceID).
		Preload("User").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.WorkspaceMember, err error) {
	err = i.db.Model(dbmodels.WorkspaceMember{}).
		Where("user_id = ?", userID).
		Preload("Workspace").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
