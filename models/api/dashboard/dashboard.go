package dashboardapimodels

import (
	"github.com/old-buffalo/task-management/models"
)

type Stats struct {
	Total            int                       `json:"total"`
	AssignedToMe     int                       `json:"assignedToMe"`
	CreatedByMe      int                       `json:"createdByMe"`
	Overdue          int                       `json:"overdue"`
	DueSoon          int                       `json:"dueSoon"`
	ByStatus         map[models.TaskStatus]int `json:"byStatus"`
	CommentsCount    int64                     `json:"commentsCount"`
	AttachmentsCount int64                     `json:"attachmentsCount"`
}
