package workspacehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	notificationstore "github.com/old-buffalo/task-management/lib/notification/store"
	testutils "github.com/old-buffalo/task-management/lib/utils/test-utils"
	"github.com/old-buffalo/task-management/models"
	workspaceapimodels "github.com/old-buffalo/task-management/models/api/workspace"
)

func TestWorkspace(t *testing.T) {
	DB := testutils.NewTestDB(t)
	handler := NewInstance(DB)

	ownerID := testutils.NewProfile(t, DB, "truong@example.com", models.UserRoleTruongPhong)

	workspace, err := handler.Create(ownerID, "Phòng kỹ thuật")
	require.NoError(t, err)
	require.Equal(t, ownerID, workspace.OwnerID)
	require.Equal(t, models.UserRoleTruongPhong, workspace.MyRole)

	t.Run("creator is bootstrapped as member", func(t *testing.T) {
		members, err := handler.ListMembers(workspace.ID, ownerID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		require.Equal(t, ownerID, members[0].UserID)
		require.Equal(t, models.UserRoleTruongPhong, members[0].Role)
		require.NotNil(t, members[0].User)
		require.Equal(t, "truong@example.com", members[0].User.Email)
	})

	t.Run("listing appears for the member only", func(t *testing.T) {
		list, err := handler.ListForUser(ownerID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, workspace.ID, list[0].ID)
		require.Equal(t, models.UserRoleTruongPhong, list[0].MyRole)

		strangerID := testutils.NewProfile(t, DB, "stranger@example.com", models.UserRoleCanBo)
		list, err = handler.ListForUser(strangerID)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("non-member cannot list or add", func(t *testing.T) {
		outsiderID := testutils.NewProfile(t, DB, "outsider@example.com", models.UserRoleTruongPhong)

		_, err := handler.ListMembers(workspace.ID, outsiderID)
		require.ErrorIs(t, err, ErrNotMember)

		err = handler.AddMember(workspace.ID, outsiderID, workspaceapimodels.AddMemberRequest{
			Email: "truong@example.com",
			Role:  models.UserRoleCanBo,
		})
		require.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("add requires a provisioned target profile", func(t *testing.T) {
		err := handler.AddMember(workspace.ID, ownerID, workspaceapimodels.AddMemberRequest{
			Email: "chua-dang-nhap@example.com",
			Role:  models.UserRoleCanBo,
		})
		require.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("target email resolves case-insensitively", func(t *testing.T) {
		targetID := testutils.NewProfile(t, DB, "binh@example.com", models.UserRoleCanBo)
		err := handler.AddMember(workspace.ID, ownerID, workspaceapimodels.AddMemberRequest{
			Email: "Binh@Example.com",
			Role:  models.UserRoleDoiPho,
		})
		require.NoError(t, err)

		members, err := handler.ListMembers(workspace.ID, targetID)
		require.NoError(t, err)
		require.Len(t, members, 2)
	})

	t.Run("added member gets a notification", func(t *testing.T) {
		notifications := notificationstore.NewInstance(DB)
		targetID := testutils.NewProfile(t, DB, "chau@example.com", models.UserRoleCanBo)
		require.NoError(t, handler.AddMember(workspace.ID, ownerID, workspaceapimodels.AddMemberRequest{
			Email: "chau@example.com",
			Role:  models.UserRoleCanBo,
		}))

		list, err := notifications.List(targetID, false, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Cập nhật từ nhóm", list[0].Title)
	})

	t.Run("lowest rank cannot add members", func(t *testing.T) {
		memberID := testutils.NewProfile(t, DB, "canbo@example.com", models.UserRoleCanBo)
		require.NoError(t, handler.AddMember(workspace.ID, ownerID, workspaceapimodels.AddMemberRequest{
			Email: "canbo@example.com",
			Role:  models.UserRoleCanBo,
		}))

		testutils.NewProfile(t, DB, "moi@example.com", models.UserRoleCanBo)
		err := handler.AddMember(workspace.ID, memberID, workspaceapimodels.AddMemberRequest{
			Email: "moi@example.com",
			Role:  models.UserRoleCanBo,
		})
		require.ErrorIs(t, err, ErrRankTooLow)
	})

	t.Run("cannot grant a rank above the actor", func(t *testing.T) {
		actorID := testutils.NewProfile(t, DB, "doipho@example.com", models.UserRoleCanBo)
		require.NoError(t, handler.AddMember(workspace.ID, ownerID, workspaceapimodels.AddMemberRequest{
			Email: "doipho@example.com",
			Role:  models.UserRoleDoiPho,
		}))

		testutils.NewProfile(t, DB, "ungvien@example.com", models.UserRoleCanBo)
		err := handler.AddMember(workspace.ID, actorID, workspaceapimodels.AddMemberRequest{
			Email: "ungvien@example.com",
			Role:  models.UserRoleDoiTruong,
		})
		require.ErrorIs(t, err, ErrRankAboveActor)

		// equal rank is allowed
		err = handler.AddMember(workspace.ID, actorID, workspaceapimodels.AddMemberRequest{
			Email: "ungvien@example.com",
			Role:  models.UserRoleDoiPho,
		})
		require.NoError(t, err)
	})
}
