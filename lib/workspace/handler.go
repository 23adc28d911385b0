package workspacehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	notificationstore "github.com/old-buffalo/task-management/lib/notification/store"
	profilestore "github.com/old-buffalo/task-management/lib/profile/store"
	workspacememberstore "github.com/old-buffalo/task-management/lib/workspace/member-store"
	workspacestore "github.com/old-buffalo/task-management/lib/workspace/store"
	"github.com/old-buffalo/task-management/models"
	workspaceapimodels "github.com/old-buffalo/task-management/models/api/workspace"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

var (
	ErrNotMember      = errors.New("Bạn chưa thuộc workspace này.")
	ErrRankTooLow     = errors.New("Bạn không có quyền thêm thành viên (cần đội phó trở lên).")
	ErrRankAboveActor = errors.New("Bạn không thể thêm thành viên có quyền cao hơn bạn.")
	// ErrProfileNotFound: a target can only be added after their profile has
	// been provisioned, which happens on their first login.
	ErrProfileNotFound = errors.New("Không tìm thấy user theo email. User cần đăng nhập ít nhất 1 lần để có profile.")
)

type Provider interface {
	Create(userID, name string) (workspaceapimodels.Workspace, error)
	ListForUser(userID string) (list []workspaceapimodels.Workspace, err error)
	ListMembers(workspaceID, actorID string) (list []workspaceapimodels.Member, err error)
	AddMember(workspaceID, actorID string, payload workspaceapimodels.AddMemberRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		workspaceStore:    workspacestore.NewInstance(db.DB),
		memberStore:       workspacememberstore.NewInstance(db.DB),
		profileStore:      profilestore.NewInstance(db.DB),
		notificationStore: notificationstore.NewInstance(db.DB),
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		workspaceStore:    workspacestore.NewInstance(DB),
		memberStore:       workspacememberstore.NewInstance(DB),
		profileStore:      profilestore.NewInstance(DB),
		notificationStore: notificationstore.NewInstance(DB),
	}
}

type impl struct {
	workspaceStore    workspacestore.Provider
	memberStore       workspacememberstore.Provider
	profileStore      profilestore.Provider
	notificationStore notificationstore.Provider
}

// Create inserts the workspace and then the creator's membership at the
// highest rank. The two writes are independent calls; a failure between them
// leaves the workspace without members (accepted, not compensated).
func (i impl) Create(userID, name string) (workspace workspaceapimodels.Workspace, err error) {
	workspaceID, err := i.workspaceStore.Create(dbmodels.Workspace{
		Name:    name,
		OwnerID: userID,
	})
	if err != nil {
		return workspace, err
	}
	err = i.memberStore.Create(dbmodels.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        models.UserRoleTruongPhong,
	})
	if err != nil {
		return workspace, err
	}
	rec, err := i.workspaceStore.GetByID(workspaceID)
	if err != nil {
		return workspace, err
	}
	if rec == nil {
		return workspace, errors.New("workspace creation failed")
	}
	return rec.ToModel(models.UserRoleTruongPhong), nil
}

func (i impl) ListForUser(userID string) (list []workspaceapimodels.Workspace, err error) {
	memberships, err := i.memberStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list = make([]workspaceapimodels.Workspace, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Workspace == nil {
			continue
		}
		list = append(list, membership.Workspace.ToModel(membership.Role))
	}
	return list, nil
}

func (i impl) ListMembers(workspaceID, actorID string) (list []workspaceapimodels.Member, err error) {
	actor, err := i.memberStore.GetMember(workspaceID, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrNotMember
	}
	members, err := i.memberStore.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	list = make([]workspaceapimodels.Member, 0, len(members))
	for _, member := range members {
		list = append(list, member.ToModel())
	}
	return list, nil
}

// AddMember enforces the rank policy before any write: the actor must already
// be a member, must not be the lowest rank, and can never grant a rank above
// their own. Every check fails closed.
func (i impl) AddMember(workspaceID, actorID string, payload workspaceapimodels.AddMemberRequest) error {
	actor, err := i.memberStore.GetMember(workspaceID, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return ErrNotMember
	}

	actorRank := actor.Role.Rank()
	targetRank := payload.Role.Rank()
	if actorRank < 2 {
		return ErrRankTooLow
	}
	if targetRank > actorRank {
		return ErrRankAboveActor
	}

	target, err := i.profileStore.FindByEmail(payload.Email)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrProfileNotFound
	}

	err = i.memberStore.Create(dbmodels.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      target.ID,
		Role:        payload.Role,
	})
	if err != nil {
		return err
	}

	i.notifyAdded(workspaceID, target.ID)
	return nil
}

// notifyAdded is best effort; the membership write already succeeded.
func (i impl) notifyAdded(workspaceID, userID string) {
	body := "Bạn vừa được thêm vào một workspace mới."
	if workspace, err := i.workspaceStore.GetByID(workspaceID); err == nil && workspace != nil {
		body = "Workspace: " + workspace.Name
	}
	_, err := i.notificationStore.Create(dbmodels.Notification{
		UserID: userID,
		Title:  "Cập nhật từ nhóm",
		Body:   &body,
	})
	if err != nil {
		log.WithError(err).Warn("member-added notification failed")
	}
}
