package teamhandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	profilestore "github.com/old-buffalo/task-management/lib/profile/store"
	teamstore "github.com/old-buffalo/task-management/lib/team/store"
	"github.com/old-buffalo/task-management/lib/utils/helpers"
	teamapimodels "github.com/old-buffalo/task-management/models/api/team"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

var (
	// ErrInvalidJoinCode keeps the user-facing wording of the product.
	ErrInvalidJoinCode = errors.New("Mã nhóm không đúng")
	// ErrJoinCodeSchema is the migration hint for a database that predates the
	// teams.join_code column.
	ErrJoinCodeSchema = errors.New("DB chưa có cột teams.join_code. Hãy chạy migration/schema mới (ALTER TABLE teams ADD COLUMN join_code...) rồi thử lại.")
)

type Provider interface {
	Create(userID, name string) (teamapimodels.Team, error)
	MyTeam(userID string) (team *teamapimodels.Team, err error)
	Join(userID, code string) (teamapimodels.Team, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		teamStore:    teamstore.NewInstance(db.DB),
		profileStore: profilestore.NewInstance(db.DB),
	}
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		teamStore:    teamstore.NewInstance(DB),
		profileStore: profilestore.NewInstance(DB),
	}
}

type impl struct {
	teamStore    teamstore.Provider
	profileStore profilestore.Provider
}

// Create makes a team that inherits the creator's department and joins the
// creator to it. Any authenticated user may create a team; only workspace
// membership is rank-gated.
func (i impl) Create(userID, name string) (team teamapimodels.Team, err error) {
	var departmentID *string
	profile, err := i.profileStore.GetByID(userID)
	if err != nil {
		return team, err
	}
	if profile != nil {
		departmentID = profile.DepartmentID
	}

	rec := dbmodels.Team{
		Name:         name,
		DepartmentID: departmentID,
	}
	var teamID string
	// Codes are unique; retry a couple of times on the rare collision.
	for attempt := 0; attempt < 3; attempt++ {
		rec.JoinCode, err = helpers.GenerateJoinCode()
		if err != nil {
			return team, err
		}
		teamID, err = i.teamStore.Create(rec)
		if err == nil {
			break
		}
		if !isUniqueViolation(err) {
			return team, translateSchemaErr(err)
		}
	}
	if err != nil {
		return team, translateSchemaErr(err)
	}

	if err = i.profileStore.Update(userID, map[string]interface{}{"team_id": teamID}); err != nil {
		return team, err
	}

	created, err := i.teamStore.GetByID(teamID)
	if err != nil {
		return team, err
	}
	if created == nil {
		return team, errors.New("team creation failed")
	}
	log.WithField("team_id", teamID).Info("team created")
	return created.ToModel(), nil
}

func (i impl) MyTeam(userID string) (team *teamapimodels.Team, err error) {
	profile, err := i.profileStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.TeamID == nil {
		return nil, nil
	}
	rec, err := i.teamStore.GetByID(*profile.TeamID)
	if err != nil {
		return nil, translateSchemaErr(err)
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

// Join overwrites the user's single team association; a user is never in two
// teams at once.
func (i impl) Join(userID, code string) (team teamapimodels.Team, err error) {
	rec, err := i.teamStore.FindByJoinCode(strings.TrimSpace(code))
	if err != nil {
		return team, translateSchemaErr(err)
	}
	if rec == nil {
		return team, ErrInvalidJoinCode
	}
	if err = i.profileStore.Update(userID, map[string]interface{}{"team_id": rec.ID}); err != nil {
		return team, err
	}
	return rec.ToModel(), nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

func translateSchemaErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "join_code") {
		return ErrJoinCodeSchema
	}
	return err
}
