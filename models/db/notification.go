package dbmodels

import (
	"time"

	notificationapimodels "github.com/old-buffalo/task-management/models/api/notification"
)

type Notification struct {
	BaseModel
	UserID string  `gorm:"type:varchar(36);index"`
	Title  string  `gorm:"type:varchar(255)"`
	Body   *string `gorm:"type:varchar(2000)"`
	// ReadAt is null while unread; the transition is one-way.
	ReadAt *time.Time
}

func (r Notification) ToModel() notificationapimodels.Notification {
	return notificationapimodels.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Body:      r.Body,
		ReadAt:    r.ReadAt,
		CreatedAt: r.CreatedAt,
	}
}
