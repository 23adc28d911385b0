package profilestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "github.com/old-buffalo/task-management/models/db"
)

type Provider interface {
	Create(rec dbmodels.Profile) (string, error)
	Update(profileID string, updMap map[string]interface{}) error
	GetByID(profileID string) (rec *dbmodels.Profile, err error)
	FindByEmail(email string) (rec *dbmodels.Profile, err error)
	Search(search string, limit int) (list []dbmodels.Profile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Profile) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(profileID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Profile{}).
		Where("id = ?", profileID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(profileID string) (rec *dbmodels.Profile, err error) {
	err = i.db.Model(dbmodels.Profile{}).
		Where("id = ?", profileID).
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

// FindByEmail resolves case-insensitively; the member-add flow depends on it.
func (i impl) FindByEmail(email string) (rec *dbmodels.Profile, err error) {
	err = i.db.Model(dbmodels.Profile{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
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

func (i impl) Search(search string, limit int) (list []dbmodels.Profile, err error) {
	tx := i.db.Model(dbmodels.Profile{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?", pattern, pattern)
	}
	err = tx.
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
