package profilehandler

import (
	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	profilestore "github.com/old-buffalo/task-management/lib/profile/store"
	profileapimodels "github.com/old-buffalo/task-management/models/api/profile"
)

const (
	DefaultSearchLimit = 200
	MaxSearchLimit     = 500
)

type Provider interface {
	Search(search string, limit int) (list []profileapimodels.DirectoryUser, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		profileStore: profilestore.NewInstance(db.DB),
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		profileStore: profilestore.NewInstance(DB),
	}
}

type impl struct {
	profileStore profilestore.Provider
}

// Search lists directory users matching the query by email or name. The
// limit is clamped to [1, MaxSearchLimit].
func (i impl) Search(search string, limit int) (list []profileapimodels.DirectoryUser, err error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	recs, err := i.profileStore.Search(search, limit)
	if err != nil {
		return nil, err
	}
	list = make([]profileapimodels.DirectoryUser, 0, len(recs))
	for _, rec := range recs {
		list = append(list, profileapimodels.DirectoryUser{
			ID:       rec.ID,
			Email:    rec.Email,
			FullName: rec.FullName,
			Role:     rec.Role,
			TeamID:   rec.TeamID,
		})
	}
	return list, nil
}
