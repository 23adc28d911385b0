package notificationhandler

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	notificationstore "github.com/old-buffalo/task-management/lib/notification/store"
	notificationapimodels "github.com/old-buffalo/task-management/models/api/notification"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 50
)

var ErrMissingID = errors.New("Missing id")

type Provider interface {
	List(userID string, unreadOnly bool, limit int) (list []notificationapimodels.Notification, unreadCount int64, err error)
	Mark(userID string, payload notificationapimodels.MarkRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		notificationStore: notificationstore.NewInstance(db.DB),
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		notificationStore: notificationstore.NewInstance(DB),
	}
}

type impl struct {
	notificationStore notificationstore.Provider
}

// List returns the newest notifications together with the live unread count;
// the count covers the whole feed, not just the returned page. The limit is
// clamped to [1, MaxListLimit].
func (i impl) List(userID string, unreadOnly bool, limit int) (list []notificationapimodels.Notification, unreadCount int64, err error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	recs, err := i.notificationStore.List(userID, unreadOnly, limit)
	if err != nil {
		return nil, 0, err
	}
	unreadCount, err = i.notificationStore.UnreadCount(userID)
	if err != nil {
		return nil, 0, err
	}
	list = make([]notificationapimodels.Notification, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, unreadCount, nil
}

func (i impl) Mark(userID string, payload notificationapimodels.MarkRequest) error {
	now := time.Now().UTC()
	switch payload.Action {
	case notificationapimodels.ActionMarkAllRead:
		return i.notificationStore.MarkAllRead(userID, now)
	case notificationapimodels.ActionMarkRead:
		if payload.ID == "" {
			return ErrMissingID
		}
		return i.notificationStore.MarkRead(userID, payload.ID, now)
	default:
		return errors.Errorf("unknown mark action %q", payload.Action)
	}
}
