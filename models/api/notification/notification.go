package notificationapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Body      *string    `json:"body"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

type MarkAction string

const (
	ActionMarkRead    MarkAction = "mark_read"
	ActionMarkAllRead MarkAction = "mark_all_read"
)

type MarkRequest struct {
	Action MarkAction `json:"action"`
	ID     string     `json:"id"`
}

func (r MarkRequest) Validate() error {
	switch r.Action {
	case ActionMarkRead, ActionMarkAllRead:
		return nil
	}
	return errors.New("Invalid payload")
}
