package profileapimodels

import (
	"time"

	"github.com/old-buffalo/task-management/models"
)

type Profile struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	FullName     *string         `json:"full_name"`
	Role         models.UserRole `json:"role"`
	DepartmentID *string         `json:"department_id"`
	TeamID       *string         `json:"team_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DirectoryUser is the trimmed view returned by the user directory search.
type DirectoryUser struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FullName *string         `json:"full_name"`
	Role     models.UserRole `json:"role"`
	TeamID   *string         `json:"team_id"`
}
