package teamstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.Team) (string, error)
	GetByID(teamID string) (rec *dbmodels.Team, err error)
	FindByJoinCode(code string) (rec *dbmodels.Team, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Team) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(teamID string) (rec *dbmodels.Team, err error) {
	err = i.db.Model(dbmodels.Team{}).
		Where("id = ?", teamID).
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

// FindByJoinCode matches the code exactly, codes are case-sensitive secrets.
func (i impl) FindByJoinCode(code string) (rec *dbmodels.Team, err error) {
	err = i.db.Model(dbmodels.Team{}).
		Where("join_code = ?", code).
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
