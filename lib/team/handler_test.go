package teamhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	profilestore "github.com/old-buffalo/task-management/lib/profile/store"
	testutils "github.com/old-buffalo/task-management/lib/utils/test-utils"
	"github.com/old-buffalo/task-management/models"
)

func TestTeam(t *testing.T) {
	DB := testutils.NewTestDB(t)
	handler := NewInstance(DB)
	profiles := profilestore.NewInstance(DB)

	creatorID := testutils.NewProfile(t, DB, "creator@example.com", models.UserRoleDoiTruong)

	team, err := handler.Create(creatorID, "Đội bảo trì")
	require.NoError(t, err)
	require.Len(t, team.JoinCode, 8)

	t.Run("creator joins own team", func(t *testing.T) {
		mine, err := handler.MyTeam(creatorID)
		require.NoError(t, err)
		require.NotNil(t, mine)
		require.Equal(t, team.ID, mine.ID)
	})

	t.Run("no team yields nil", func(t *testing.T) {
		loneID := testutils.NewProfile(t, DB, "lone@example.com", models.UserRoleCanBo)
		mine, err := handler.MyTeam(loneID)
		require.NoError(t, err)
		require.Nil(t, mine)
	})

	t.Run("join by code, whitespace tolerated", func(t *testing.T) {
		joinerID := testutils.NewProfile(t, DB, "joiner@example.com", models.UserRoleCanBo)
		joined, err := handler.Join(joinerID, "  "+team.JoinCode+" ")
		require.NoError(t, err)
		require.Equal(t, team.ID, joined.ID)

		profile, err := profiles.GetByID(joinerID)
		require.NoError(t, err)
		require.NotNil(t, profile.TeamID)
		require.Equal(t, team.ID, *profile.TeamID)
	})

	t.Run("bad code is rejected", func(t *testing.T) {
		joinerID := testutils.NewProfile(t, DB, "typo@example.com", models.UserRoleCanBo)
		_, err := handler.Join(joinerID, "WRONG123")
		require.ErrorIs(t, err, ErrInvalidJoinCode)
	})

	t.Run("joining another team overwrites the association", func(t *testing.T) {
		second, err := handler.Create(creatorID, "Đội vận hành")
		require.NoError(t, err)

		joinerID := testutils.NewProfile(t, DB, "mover@example.com", models.UserRoleCanBo)
		_, err = handler.Join(joinerID, team.JoinCode)
		require.NoError(t, err)
		_, err = handler.Join(joinerID, second.JoinCode)
		require.NoError(t, err)

		mine, err := handler.MyTeam(joinerID)
		require.NoError(t, err)
		require.NotNil(t, mine)
		require.Equal(t, second.ID, mine.ID)
	})

	t.Run("team inherits creator department", func(t *testing.T) {
		departmentID := "22222222-2222-2222-2222-222222222222"
		leadID := testutils.NewProfile(t, DB, "lead@example.com", models.UserRolePhoPhong)
		require.NoError(t, profiles.Update(leadID, map[string]interface{}{"department_id": departmentID}))

		created, err := handler.Create(leadID, "Đội dự án")
		require.NoError(t, err)
		require.NotNil(t, created.DepartmentID)
		require.Equal(t, departmentID, *created.DepartmentID)
	})
}
