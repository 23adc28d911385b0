package dbmodels

import (
	taskapimodels "github.com/old-buffalo/task-management/models/api/task"
)

type TaskComment struct {
	BaseModel
	TaskID       string  `gorm:"type:varchar(36);index"`
	AuthorID     string  `gorm:"type:varchar(36)"`
	Content      string  `gorm:"type:varchar(2000)"`
	AttachmentID *string `gorm:"type:varchar(36)"`

	Author *Profile `gorm:"foreignKey:AuthorID"`
}

func (r TaskComment) ToModel() taskapimodels.Comment {
	comment := taskapimodels.Comment{
		ID:           r.ID,
		TaskID:       r.TaskID,
		AuthorID:     r.AuthorID,
		Content:      r.Content,
		AttachmentID: r.AttachmentID,
		CreatedAt:    r.CreatedAt,
	}
	if r.Author != nil {
		comment.Author = &taskapimodels.CommentAuthor{
			FullName: r.Author.FullName,
			Email:    r.Author.Email,
			Role:     r.Author.Role,
		}
	}
	return comment
}
