package profilehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	testutils "github.com/old-buffalo/task-management/lib/utils/test-utils"
	"github.com/old-buffalo/task-management/models"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

func TestDirectorySearch(t *testing.T) {
	DB := testutils.NewTestDB(t)
	handler := NewInstance(DB)

	testutils.NewProfile(t, DB, "an.nguyen@example.com", models.UserRoleCanBo)
	testutils.NewProfile(t, DB, "binh.tran@example.com", models.UserRoleDoiPho)

	named := "Trần Văn Bình"
	require.NoError(t, DB.Model(&dbmodels.Profile{}).
		Where("email = ?", "binh.tran@example.com").
		Update("full_name", named).Error)

	t.Run("matches email", func(t *testing.T) {
		users, err := handler.Search("an.nguyen", DefaultSearchLimit)
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "an.nguyen@example.com", users[0].Email)
	})

	t.Run("matches full name", func(t *testing.T) {
		users, err := handler.Search("Văn Bình", DefaultSearchLimit)
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "binh.tran@example.com", users[0].Email)
	})

	t.Run("empty query lists everyone", func(t *testing.T) {
		users, err := handler.Search("", DefaultSearchLimit)
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("limit clamps at both bounds", func(t *testing.T) {
		users, err := handler.Search("", 9999)
		require.NoError(t, err)
		require.Len(t, users, 2)

		// below the minimum behaves as one row, not the default page
		users, err = handler.Search("", -1)
		require.NoError(t, err)
		require.Len(t, users, 1)

		users, err = handler.Search("", 1)
		require.NoError(t, err)
		require.Len(t, users, 1)
	})
}
