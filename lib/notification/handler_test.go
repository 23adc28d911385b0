package notificationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	notificationstore "github.com/old-buffalo/task-management/lib/notification/store"
	testutils "github.com/old-buffalo/task-management/lib/utils/test-utils"
	notificationapimodels "github.com/old-buffalo/task-management/models/api/notification"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

func TestNotifications(t *testing.T) {
	DB := testutils.NewTestDB(t)
	handler := NewInstance(DB)
	store := notificationstore.NewInstance(DB)

	userID := "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	otherID := "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"

	seed := func(target string, title string) string {
		id, err := store.Create(dbmodels.Notification{UserID: target, Title: title})
		require.NoError(t, err)
		return id
	}

	first := seed(userID, "Bạn được giao công việc mới")
	seed(userID, "Bình luận mới")
	seed(otherID, "Cập nhật từ nhóm")

	t.Run("list is user scoped with live unread count", func(t *testing.T) {
		list, unreadCount, err := handler.List(userID, false, DefaultListLimit)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.EqualValues(t, 2, unreadCount)
	})

	t.Run("mark read is one way and idempotent", func(t *testing.T) {
		err := handler.Mark(userID, notificationapimodels.MarkRequest{
			Action: notificationapimodels.ActionMarkRead,
			ID:     first,
		})
		require.NoError(t, err)

		list, unreadCount, err := handler.List(userID, false, DefaultListLimit)
		require.NoError(t, err)
		require.EqualValues(t, 1, unreadCount)

		var firstReadAt *string
		for _, item := range list {
			if item.ID == first {
				require.NotNil(t, item.ReadAt)
				stamp := item.ReadAt.String()
				firstReadAt = &stamp
			}
		}
		require.NotNil(t, firstReadAt)

		// repeating the action keeps the original timestamp
		err = handler.Mark(userID, notificationapimodels.MarkRequest{
			Action: notificationapimodels.ActionMarkRead,
			ID:     first,
		})
		require.NoError(t, err)
		list, _, err = handler.List(userID, false, DefaultListLimit)
		require.NoError(t, err)
		for _, item := range list {
			if item.ID == first {
				require.Equal(t, *firstReadAt, item.ReadAt.String())
			}
		}
	})

	t.Run("mark read requires an id", func(t *testing.T) {
		err := handler.Mark(userID, notificationapimodels.MarkRequest{
			Action: notificationapimodels.ActionMarkRead,
		})
		require.ErrorIs(t, err, ErrMissingID)
	})

	t.Run("unread filter", func(t *testing.T) {
		list, _, err := handler.List(userID, true, DefaultListLimit)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Nil(t, list[0].ReadAt)
	})

	t.Run("mark all read touches only the caller", func(t *testing.T) {
		err := handler.Mark(userID, notificationapimodels.MarkRequest{
			Action: notificationapimodels.ActionMarkAllRead,
		})
		require.NoError(t, err)

		_, unreadCount, err := handler.List(userID, false, DefaultListLimit)
		require.NoError(t, err)
		require.EqualValues(t, 0, unreadCount)

		_, otherUnread, err := handler.List(otherID, false, DefaultListLimit)
		require.NoError(t, err)
		require.EqualValues(t, 1, otherUnread)
	})

	t.Run("limit clamps at both bounds", func(t *testing.T) {
		heavyID := "cccccccc-cccc-cccc-cccc-cccccccccccc"
		for i := 0; i < 25; i++ {
			seed(heavyID, "Bình luận mới")
		}

		// above the maximum behaves as the maximum, not the default
		list, _, err := handler.List(heavyID, false, 100)
		require.NoError(t, err)
		require.Len(t, list, 25)

		list, _, err = handler.List(heavyID, false, -3)
		require.NoError(t, err)
		require.Len(t, list, 1)

		list, _, err = handler.List(heavyID, false, 10)
		require.NoError(t, err)
		require.Len(t, list, 10)
	})

	t.Run("foreign id cannot be marked", func(t *testing.T) {
		foreign := seed(otherID, "Bình luận mới")
		err := handler.Mark(userID, notificationapimodels.MarkRequest{
			Action: notificationapimodels.ActionMarkRead,
			ID:     foreign,
		})
		require.NoError(t, err)

		_, otherUnread, err := handler.List(otherID, false, DefaultListLimit)
		require.NoError(t, err)
		require.EqualValues(t, 2, otherUnread)
	})
}
