package dbmodels

import (
	"time"

	"github.com/old-buffalo/task-management/models"
	taskapimodels "github.com/old-buffalo/task-management/models/api/task"
)

type Task struct {
	BaseModel
	Title         string  `gorm:"type:varchar(200)"`
	Description   *string `gorm:"type:varchar(5000)"`
	Status        models.TaskStatus   `gorm:"type:varchar(20);index"`
	Priority      models.TaskPriority `gorm:"type:varchar(10)"`
	DueDate       *time.Time
	Rating        *int
	ReviewComment *string `gorm:"type:varchar(2000)"`
	DepartmentID  *string `gorm:"type:varchar(36)"`
	TeamID        *string `gorm:"type:varchar(36);index"`
	WorkspaceID   *string `gorm:"type:varchar(36);index"`
	// CreatedBy is set once at creation and never updated.
	CreatedBy  string `gorm:"type:varchar(36);index"`
	AssignedTo string `gorm:"type:varchar(36);index"`
}

func (r Task) ToModel() taskapimodels.Task {
	return taskapimodels.Task{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		Priority:      r.Priority,
		DueDate:       r.DueDate,
		Rating:        r.Rating,
		ReviewComment: r.ReviewComment,
		DepartmentID:  r.DepartmentID,
		TeamID:        r.TeamID,
		WorkspaceID:   r.WorkspaceID,
		CreatedBy:     r.CreatedBy,
		AssignedTo:    r.AssignedTo,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
