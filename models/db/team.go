package dbmodels

import (
	teamapimodels "github.com/old-buffalo/task-management/models/api/team"
)

type Team struct {
	BaseModel
	Name         string  `gorm:"type:varchar(120)"`
	DepartmentID *string `gorm:"type:varchar(36)"`
	// JoinCode is generated once at creation and never rotated.
	JoinCode string `gorm:"type:varchar(64);uniqueIndex"`
}

func (r Team) ToModel() teamapimodels.Team {
	return teamapimodels.Team{
		ID:           r.ID,
		Name:         r.Name,
		DepartmentID: r.DepartmentID,
		JoinCode:     r.JoinCode,
		CreatedAt:    r.CreatedAt,
	}
}
