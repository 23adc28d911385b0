package notificationstore

import (
	"time"

	"gorm.io/gorm"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (string, error)
	List(userID string, unreadOnly bool, limit int) (list []dbmodels.Notification, err error)
	UnreadCount(userID string) (count int64, err error)
	MarkRead(userID, notificationID string, readAt time.Time) error
	MarkAllRead(userID string, readAt time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, unreadOnly bool, limit int) (list []dbmodels.Notification, err error) {
	tx := i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		tx = tx.Where("read_at IS NULL")
	}
	err = tx.
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// UnreadCount is a live count, never a cached counter.
func (i impl) UnreadCount(userID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead only stamps a still-unread row, so re-marking keeps the first
// read_at value and stays a no-op success.
func (i impl) MarkRead(userID, notificationID string, readAt time.Time) error {
	return i.db.Model(dbmodels.Notification{}).
		Where("user_id = ? AND id = ? AND read_at IS NULL", userID, notificationID).
		Update("read_at", readAt).
		Error
}

func (i impl) MarkAllRead(userID string, readAt time.Time) error {
	return i.db.Model(dbmodels.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", readAt).
		Error
}
