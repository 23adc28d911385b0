package dbmodels

import (
	"github.com/old-buffalo/task-management/models"
	profileapimodels "github.com/old-buffalo/task-management/models/api/profile"
)

type Profile struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);index"`
	FullName     *string         `gorm:"type:varchar(200)"`
	Role         models.UserRole `gorm:"type:varchar(20)"`
	DepartmentID *string         `gorm:"type:varchar(36)"`
	TeamID       *string         `gorm:"type:varchar(36);index"`
}

func (r Profile) ToModel() profileapimodels.Profile {
	return profileapimodels.Profile{
		ID:           r.ID,
		Email:        r.Email,
		FullName:     r.FullName,
		Role:         r.Role,
		DepartmentID: r.DepartmentID,
		TeamID:       r.TeamID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
