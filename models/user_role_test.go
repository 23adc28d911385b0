package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRole(t *testing.T) {
	t.Run("rank ordering", func(t *testing.T) {
		require.Equal(t, 1, UserRoleCanBo.Rank())
		require.Equal(t, 2, UserRoleDoiPho.Rank())
		require.Equal(t, 3, UserRoleDoiTruong.Rank())
		require.Equal(t, 4, UserRolePhoPhong.Rank())
		require.Equal(t, 5, UserRoleTruongPhong.Rank())

		for idx, role := range RoleList() {
			require.Equal(t, idx+1, role.Rank())
		}
	})

	t.Run("unknown role ranks zero", func(t *testing.T) {
		require.Equal(t, 0, UserRole("giam_doc").Rank())
		require.Equal(t, 0, UserRole("").Rank())
	})

	t.Run("validity", func(t *testing.T) {
		for _, role := range RoleList() {
			require.True(t, role.IsValid())
		}
		require.False(t, UserRole("admin").IsValid())
	})

	t.Run("human names", func(t *testing.T) {
		require.Equal(t, "Trưởng phòng", UserRoleTruongPhong.ToHuman())
		require.Equal(t, "Cán bộ", UserRoleCanBo.ToHuman())
	})
}
