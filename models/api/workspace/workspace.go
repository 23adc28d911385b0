package workspaceapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/models"
)

type Workspace struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	OwnerID   string          `json:"owner_id"`
	CreatedAt time.Time       `json:"created_at"`
	MyRole    models.UserRole `json:"my_role,omitempty"`
}

type Member struct {
	WorkspaceID string          `json:"workspace_id"`
	UserID      string          `json:"user_id"`
	Role        models.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"created_at"`
	User        *MemberUser     `json:"user,omitempty"`
}

type MemberUser struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FullName *string         `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

func (r CreateWorkspaceRequest) Validate() error {
	if len(r.Name) < 2 || len(r.Name) > 120 {
		return errors.New("Invalid payload")
	}
	return nil
}

type AddMemberRequest struct {
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func (r AddMemberRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.New("Invalid payload")
	}
	if !r.Role.IsValid() {
		return errors.New("Invalid payload")
	}
	return nil
}
