package teamapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DepartmentID *string   `json:"department_id"`
	JoinCode     string    `json:"join_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

func (r CreateTeamRequest) Validate() error {
	if len(r.Name) < 2 || len(r.Name) > 120 {
		return errors.New("Invalid payload")
	}
	return nil
}

type JoinTeamRequest struct {
	Code string `json:"code"`
}

func (r JoinTeamRequest) Validate() error {
	if len(r.Code) < 8 || len(r.Code) > 64 {
		return errors.New("Invalid payload")
	}
	return nil
}
