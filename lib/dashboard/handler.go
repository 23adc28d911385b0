package dashboardhandler

import (
	"time"

	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	taskattachmentstore "github.com/old-buffalo/task-management/lib/task/attachment-store"
	taskcommentstore "github.com/old-buffalo/task-management/lib/task/comment-store"
	taskstore "github.com/old-buffalo/task-management/lib/task/store"
	"github.com/old-buffalo/task-management/models"
	dashboardapimodels "github.com/old-buffalo/task-management/models/api/dashboard"
)

// dueSoonWindow is how far ahead a due date still counts as "soon".
const dueSoonWindow = 7 * 24 * time.Hour

type Provider interface {
	Stats(userID string) (dashboardapimodels.Stats, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		taskStore:       taskstore.NewInstance(db.DB),
		commentStore:    taskcommentstore.NewInstance(db.DB),
		attachmentStore: taskattachmentstore.NewInstance(db.DB),
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		taskStore:       taskstore.NewInstance(DB),
		commentStore:    taskcommentstore.NewInstance(DB),
		attachmentStore: taskattachmentstore.NewInstance(DB),
	}
}

type impl struct {
	taskStore       taskstore.Provider
	commentStore    taskcommentstore.Provider
	attachmentStore taskattachmentstore.Provider
}

// dueSoonAt reports whether due falls within the window from now, the far
// edge included.
func dueSoonAt(due, now time.Time) bool {
	return !due.After(now.Add(dueSoonWindow))
}

// Stats aggregates over the caller's visible tasks in one pass. Overdue and
// due-soon are disjoint buckets and both skip closed tasks.
func (i impl) Stats(userID string) (stats dashboardapimodels.Stats, err error) {
	tasks, err := i.taskStore.ListVisible(userID)
	if err != nil {
		return stats, err
	}

	now := time.Now().UTC()
	// every status key is present even at zero, clients index into the map
	stats.ByStatus = make(map[models.TaskStatus]int, len(models.TaskStatusList()))
	for _, status := range models.TaskStatusList() {
		stats.ByStatus[status] = 0
	}
	taskIDs := make([]string, 0, len(tasks))

	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
		stats.Total++
		stats.ByStatus[task.Status]++
		if task.AssignedTo == userID {
			stats.AssignedToMe++
		}
		if task.CreatedBy == userID {
			stats.CreatedByMe++
		}
		if task.DueDate == nil || task.Status.IsClosed() {
			continue
		}
		switch {
		case task.DueDate.Before(now):
			stats.Overdue++
		case dueSoonAt(*task.DueDate, now):
			stats.DueSoon++
		}
	}

	stats.CommentsCount, err = i.commentStore.CountForTasks(taskIDs)
	if err != nil {
		return stats, err
	}
	stats.AttachmentsCount, err = i.attachmentStore.CountForTasks(taskIDs)
	if err != nil {
		return stats, err
	}
	return stats, nil
}
