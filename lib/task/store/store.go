package taskstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	taskapimodels "github.com/old-buffalo/task-management/models/api/task"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.Task) (string, error)
	GetByID(userID, taskID string) (rec *dbmodels.Task, err error)
	List(userID string, filter taskapimodels.Filter, idFilter []string) (list []dbmodels.Task, err error)
	ListVisible(userID string) (list []dbmodels.Task, err error)
	Update(userID, taskID string, updMap map[string]interface{}) (found bool, err error)
	Delete(userID, taskID string) (found bool, err error)
	VisibleIDs(userID string) (ids []string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// visible scopes every task read and write to the creator-or-assignee
// predicate. There is no role-based override.
func (i impl) visible(userID string) *gorm.DB {
	return i.db.
		Model(dbmodels.Task{}).
		Where("created_by = ? OR assigned_to = ?", userID, userID)
}

func (i impl) Create(rec dbmodels.Task) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID, taskID string) (rec *dbmodels.Task, err error) {
	err = i.visible(userID).
		Where("id = ?", taskID).
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

func (i impl) List(userID string, filter taskapimodels.Filter, idFilter []string) (list []dbmodels.Task, err error) {
	tx := i.visible(userID)
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.TeamID != "" {
		tx = tx.Where("team_id = ?", filter.TeamID)
	}
	if filter.WorkspaceID != "" {
		tx = tx.Where("workspace_id = ?", filter.WorkspaceID)
	}
	if filter.AssignedTo != "" {
		tx = tx.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.CreatedBy != "" {
		tx = tx.Where("created_by = ?", filter.CreatedBy)
	}
	if search := filter.SearchText(); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if idFilter != nil {
		tx = tx.Where("id IN ?", idFilter)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListVisible(userID string) (list []dbmodels.Task, err error) {
	return i.List(userID, taskapimodels.Filter{}, nil)
}

func (i impl) VisibleIDs(userID string) (ids []string, err error) {
	err = i.visible(userID).
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update never touches created_by; found=false means absent or not visible.
func (i impl) Update(userID, taskID string, updMap map[string]interface{}) (found bool, err error) {
	delete(updMap, "created_by")
	tx := i.visible(userID).
		Where("id = ?", taskID).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Delete(userID, taskID string) (found bool, err error) {
	tx := i.db.
		Where("id = ?", taskID).
		Where("created_by = ? OR assigned_to = ?", userID, userID).
		Delete(&dbmodels.Task{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
