package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type AuthAction string

const (
	ActionLogin  AuthAction = "login"
	ActionSignup AuthAction = "signup"
	ActionLogout AuthAction = "logout"
)

type AuthRequest struct {
	Action   AuthAction `json:"action"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	FullName *string    `json:"full_name"`
}

func (r AuthRequest) Validate() error {
	switch r.Action {
	case ActionLogout:
		return nil
	case ActionLogin, ActionSignup:
	default:
		return errors.New("Invalid payload")
	}
	if r.Email == "" || r.Password == "" {
		return errors.New("Missing email/password")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("Invalid payload")
	}
	if len(r.Password) < 6 {
		return errors.New("Invalid payload")
	}
	if r.FullName != nil && (len(*r.FullName) == 0 || len(*r.FullName) > 200) {
		return errors.New("Invalid payload")
	}
	return nil
}

type AuthUser struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}
