package taskapimodels

import (
	"time"

	"github.com/old-buffalo/task-management/models"
)

type Task struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   *string             `json:"description"`
	Status        models.TaskStatus   `json:"status"`
	Priority      models.TaskPriority `json:"priority"`
	DueDate       *time.Time          `json:"due_date"`
	Rating        *int                `json:"rating"`
	ReviewComment *string             `json:"review_comment"`
	DepartmentID  *string             `json:"department_id"`
	TeamID        *string             `json:"team_id"`
	WorkspaceID   *string             `json:"workspace_id"`
	CreatedBy     string              `json:"created_by"`
	AssignedTo    string              `json:"assigned_to"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type Comment struct {
	ID           string         `json:"id"`
	TaskID       string         `json:"task_id"`
	AuthorID     string         `json:"author_id"`
	Content      string         `json:"content"`
	AttachmentID *string        `json:"attachment_id"`
	CreatedAt    time.Time      `json:"created_at"`
	Author       *CommentAuthor `json:"author,omitempty"`
}

type CommentAuthor struct {
	FullName *string         `json:"full_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

type Attachment struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	UploaderID  string    `json:"uploader_id"`
	StoragePath string    `json:"storage_path"`
	FileName    string    `json:"file_name"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	// URL is a short-lived signed link, minted per response and never stored.
	URL *string `json:"url"`
}
