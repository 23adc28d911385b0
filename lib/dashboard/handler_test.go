package dashboardhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	testutils "github.com/old-buffalo/task-management/lib/utils/test-utils"
	"github.com/old-buffalo/task-management/models"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

func TestDashboardStats(t *testing.T) {
	DB := testutils.NewTestDB(t)
	handler := NewInstance(DB)

	userID := testutils.NewProfile(t, DB, "me@example.com", models.UserRoleCanBo)
	otherID := testutils.NewProfile(t, DB, "other@example.com", models.UserRoleCanBo)

	mk := func(createdBy, assignedTo string, status models.TaskStatus, due *time.Time) dbmodels.Task {
		rec := dbmodels.Task{
			Title:      "task",
			Status:     status,
			Priority:   models.TaskPriorityMedium,
			DueDate:    due,
			CreatedBy:  createdBy,
			AssignedTo: assignedTo,
		}
		require.NoError(t, DB.Create(&rec).Error)
		return rec
	}

	past := time.Now().UTC().Add(-48 * time.Hour)
	soon := time.Now().UTC().Add(72 * time.Hour)
	far := time.Now().UTC().Add(30 * 24 * time.Hour)

	created := mk(userID, otherID, models.TaskStatusPending, &past)       // overdue
	assigned := mk(otherID, userID, models.TaskStatusInProgress, &soon)   // due soon
	mk(userID, userID, models.TaskStatusCompleted, &past)                 // closed, not overdue
	mk(userID, userID, models.TaskStatusPending, &far)                    // neither bucket
	invisible := mk(otherID, otherID, models.TaskStatusPending, &past)    // out of scope

	require.NoError(t, DB.Create(&dbmodels.TaskComment{TaskID: created.ID, AuthorID: otherID, Content: "ghi chú"}).Error)
	require.NoError(t, DB.Create(&dbmodels.TaskComment{TaskID: invisible.ID, AuthorID: otherID, Content: "ẩn"}).Error)
	require.NoError(t, DB.Create(&dbmodels.TaskAttachment{TaskID: assigned.ID, UploaderID: userID, StoragePath: "tasks/x", FileName: "f", SizeBytes: 1}).Error)

	stats, err := handler.Stats(userID)
	require.NoError(t, err)

	require.Equal(t, 4, stats.Total)
	require.Equal(t, 3, stats.AssignedToMe)
	require.Equal(t, 3, stats.CreatedByMe)
	require.Equal(t, 1, stats.Overdue)
	require.Equal(t, 1, stats.DueSoon)
	// the breakdown carries every status, zero-valued ones included
	require.Len(t, stats.ByStatus, len(models.TaskStatusList()))
	require.Equal(t, 2, stats.ByStatus[models.TaskStatusPending])
	require.Equal(t, 1, stats.ByStatus[models.TaskStatusInProgress])
	require.Equal(t, 1, stats.ByStatus[models.TaskStatusCompleted])
	require.Contains(t, stats.ByStatus, models.TaskStatusReview)
	require.Equal(t, 0, stats.ByStatus[models.TaskStatusReview])
	require.Contains(t, stats.ByStatus, models.TaskStatusCancelled)
	require.Equal(t, 0, stats.ByStatus[models.TaskStatusCancelled])
	require.EqualValues(t, 1, stats.CommentsCount)
	require.EqualValues(t, 1, stats.AttachmentsCount)
}

func TestDueSoonAt(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	require.True(t, dueSoonAt(now.Add(time.Hour), now))
	// the window edge itself still counts
	require.True(t, dueSoonAt(now.Add(dueSoonWindow), now))
	require.False(t, dueSoonAt(now.Add(dueSoonWindow+time.Second), now))
}
