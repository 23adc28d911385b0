package dbmodels

import (
	"time"

	"github.com/old-buffalo/task-management/models"
	workspaceapimodels "github.com/old-buffalo/task-management/models/api/workspace"
)

type Workspace struct {
	BaseModel
	Name    string `gorm:"type:varchar(120)"`
	OwnerID string `gorm:"type:varchar(36);index"`
}

func (r Workspace) ToModel(myRole models.UserRole) workspaceapimodels.Workspace {
	return workspaceapimodels.Workspace{
		ID:        r.ID,
		Name:      r.Name,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		MyRole:    myRole,
	}
}

// WorkspaceMember carries its own role per workspace, independent of the
// member's profile role.
type WorkspaceMember struct {
	WorkspaceID string          `gorm:"type:varchar(36);primaryKey"`
	UserID      string          `gorm:"type:varchar(36);primaryKey"`
	Role        models.UserRole `gorm:"type:varchar(20)"`
	CreatedAt   time.Time       `gorm:"index"`

	User      *Profile   `gorm:"foreignKey:UserID"`
	Workspace *Workspace `gorm:"foreignKey:WorkspaceID"`
}

func (r WorkspaceMember) ToModel() workspaceapimodels.Member {
	member := workspaceapimodels.Member{
		WorkspaceID: r.WorkspaceID,
		UserID:      r.UserID,
		Role:        r.Role,
		CreatedAt:   r.CreatedAt,
	}
	if r.User != nil {
		member.User = &workspaceapimodels.MemberUser{
			ID:       r.User.ID,
			Email:    r.User.Email,
			FullName: r.User.FullName,
			Role:     r.User.Role,
		}
	}
	return member
}
