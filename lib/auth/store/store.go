package authstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuthAccount) (string, error)
	GetByID(accountID string) (rec *dbmodels.AuthAccount, err error)
	FindByEmail(email string) (rec *dbmodels.AuthAccount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuthAccount) (string, error) {
	rec.Email = strings.ToLower(rec.Email)
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(accountID string) (rec *dbmodels.AuthAccount, err error) {
	err = i.db.Model(dbmodels.AuthAccount{}).
		Where("id = ?", accountID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.AuthAccount, err error) {
	err = i.db.Model(dbmodels.AuthAccount{}).
		Where("email = ?", strings.ToLower(email)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
