package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	authstore "github.com/old-buffalo/task-management/lib/auth/store"
	profilestore "github.com/old-buffalo/task-management/lib/profile/store"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	"github.com/old-buffalo/task-management/models"
	authapimodels "github.com/old-buffalo/task-management/models/api/auth"
	profileapimodels "github.com/old-buffalo/task-management/models/api/profile"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrEmailTaken         = errors.New("User already registered")
	ErrUnauthorized       = errors.New("Unauthorized")
)

type Provider interface {
	Signup(email, password string, fullName *string) error
	Login(email, password string) (token string, err error)
	CurrentUser(userID string) (user authapimodels.AuthUser, profile profileapimodels.Profile, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		accountStore: authstore.NewInstance(db.DB),
		profileStore: profilestore.NewInstance(db.DB),
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		accountStore: authstore.NewInstance(DB),
		profileStore: profilestore.NewInstance(DB),
	}
}

type impl struct {
	accountStore authstore.Provider
	profileStore profilestore.Provider
}

func (i impl) Signup(email, password string, fullName *string) error {
	existing, err := i.accountStore.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "password hashing failed")
	}
	rec := dbmodels.AuthAccount{
		Email:        email,
		PasswordHash: string(hash),
	}
	if fullName != nil {
		rec.FullName = *fullName
	}
	_, err = i.accountStore.Create(rec)
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Login(email, password string) (token string, err error) {
	account, err := i.accountStore.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return authutils.GetToken(account.ID, account.Email)
}

// CurrentUser lazily provisions the profile: the first authenticated call
// after signup creates it at the lowest rank.
func (i impl) CurrentUser(userID string) (user authapimodels.AuthUser, profile profileapimodels.Profile, err error) {
	account, err := i.accountStore.GetByID(userID)
	if err != nil {
		return user, profile, err
	}
	if account == nil {
		return user, profile, ErrUnauthorized
	}
	user = authapimodels.AuthUser{
		ID:    account.ID,
		Email: account.Email,
	}
	if account.FullName != "" {
		fullName := account.FullName
		user.FullName = &fullName
	}

	rec, err := i.profileStore.GetByID(account.ID)
	if err != nil {
		return user, profile, err
	}
	if rec == nil {
		created := dbmodels.Profile{
			BaseModel: dbmodels.BaseModel{ID: account.ID},
			Email:     account.Email,
			FullName:  user.FullName,
			Role:      models.UserRoleCanBo,
		}
		if _, err = i.profileStore.Create(created); err != nil {
			return user, profile, err
		}
		rec, err = i.profileStore.GetByID(account.ID)
		if err != nil {
			return user, profile, err
		}
		if rec == nil {
			return user, profile, errors.New("profile provisioning failed")
		}
		log.WithField("user_id", account.ID).Info("profile provisioned on first login")
	}
	return user, rec.ToModel(), nil
}
