package authhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/old-buffalo/task-management/config"
	authstore "github.com/old-buffalo/task-management/lib/auth/store"
	profilestore "github.com/old-buffalo/task-management/lib/profile/store"
	testutils "github.com/old-buffalo/task-management/lib/utils/test-utils"
	"github.com/old-buffalo/task-management/models"
)

func TestAuth(t *testing.T) {
	config.InitConfig()
	DB := testutils.NewTestDB(t)
	handler := NewInstance(DB)
	accounts := authstore.NewInstance(DB)
	profiles := profilestore.NewInstance(DB)

	fullName := "Nguyễn Văn An"
	require.NoError(t, handler.Signup("An@Example.com", "secret123", &fullName))

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := handler.Signup("an@example.com", "other-secret", nil)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login checks the password", func(t *testing.T) {
		_, err := handler.Login("an@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = handler.Login("nobody@example.com", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		token, err := handler.Login("an@example.com", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("email is stored lowercased", func(t *testing.T) {
		account, err := accounts.FindByEmail("AN@EXAMPLE.COM")
		require.NoError(t, err)
		require.NotNil(t, account)
		require.Equal(t, "an@example.com", account.Email)
	})

	t.Run("profile is provisioned on first fetch", func(t *testing.T) {
		account, err := accounts.FindByEmail("an@example.com")
		require.NoError(t, err)
		require.NotNil(t, account)

		before, err := profiles.GetByID(account.ID)
		require.NoError(t, err)
		require.Nil(t, before)

		user, profile, err := handler.CurrentUser(account.ID)
		require.NoError(t, err)
		require.Equal(t, account.ID, user.ID)
		require.Equal(t, account.ID, profile.ID)
		require.Equal(t, models.UserRoleCanBo, profile.Role)
		require.NotNil(t, profile.FullName)
		require.Equal(t, fullName, *profile.FullName)

		// second fetch reuses the provisioned profile
		_, again, err := handler.CurrentUser(account.ID)
		require.NoError(t, err)
		require.Equal(t, profile.ID, again.ID)
		require.Equal(t, profile.Role, again.Role)
	})

	t.Run("unknown account is unauthorized", func(t *testing.T) {
		_, _, err := handler.CurrentUser("11111111-1111-1111-1111-111111111111")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}
