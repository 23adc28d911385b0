package dbmodels

import (
	taskapimodels "github.com/old-buffalo/task-management/models/api/task"
)

type TaskAttachment struct {
	BaseModel
	TaskID      string `gorm:"type:varchar(36);index"`
	UploaderID  string `gorm:"type:varchar(36)"`
	StoragePath string `gorm:"type:varchar(512)"`
	FileName    string `gorm:"type:varchar(255)"`
	MimeType    string `gorm:"type:varchar(127)"`
	SizeBytes   int64
}

// ToModel renders the attachment without a download link; the handler fills
// URL in after minting a signed link.
func (r TaskAttachment) ToModel() taskapimodels.Attachment {
	return taskapimodels.Attachment{
		ID:          r.ID,
		TaskID:      r.TaskID,
		UploaderID:  r.UploaderID,
		StoragePath: r.StoragePath,
		FileName:    r.FileName,
		MimeType:    r.MimeType,
		SizeBytes:   r.SizeBytes,
		CreatedAt:   r.CreatedAt,
	}
}
