package taskcommentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.TaskComment) (string, error)
	GetByID(commentID string) (rec *dbmodels.TaskComment, err error)
	ListByTask(taskID string) (list []dbmodels.TaskComment, err error)
	TaskIDs() (ids []string, err error)
	CountForTasks(taskIDs []string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TaskComment) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(commentID string) (rec *dbmodels.TaskComment, err error) {
	err = i.db.Model(dbmodels.TaskComment{}).
		Where("id = ?", commentID).
		Preload("Author").
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

func (i impl) ListByTask(taskID string) (list []dbmodels.TaskComment, err error) {
	err = i.db.Model(dbmodels.TaskComment{}).
		Where("task_id = ?", taskID).
		Preload("Author").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// TaskIDs lists distinct tasks that have at least one comment.
func (i impl) TaskIDs() (ids []string, err error) {
	err = i.db.Model(dbmodels.TaskComment{}).
		Distinct("task_id").
		Pluck("task_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) CountForTasks(taskIDs []string) (count int64, err error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}
	err = i.db.Model(dbmodels.TaskComment{}).
		Where("task_id IN ?", taskIDs).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
