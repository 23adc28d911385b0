package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/controllers"
	teamhandler "github.com/old-buffalo/task-management/lib/team"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
	teamapimodels "github.com/old-buffalo/task-management/models/api/team"
)

type teamApiController struct {
	controllers.BaseAPIController
}

func InitTeamApiRouters(app *fiber.App) {
	controller := teamApiController{}
	app.Route("teams", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Get("me", controller.myTeam)
		router.Post("join", controller.join)
	})
}

func (c *teamApiController) create(ctx *fiber.Ctx) error {
	var payload teamapimodels.CreateTeamRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	team, err := teamhandler.Instance.Create(authutils.GetUserID(ctx), payload.Name)
	if err != nil {
		return teamError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"team": team})
}

// myTeam returns null when the caller has not joined a team yet.
func (c *teamApiController) myTeam(ctx *fiber.Ctx) error {
	team, err := teamhandler.Instance.MyTeam(authutils.GetUserID(ctx))
	if err != nil {
		return teamError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"team": team})
}

func (c *teamApiController) join(ctx *fiber.Ctx) error {
	var payload teamapimodels.JoinTeamRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	team, err := teamhandler.Instance.Join(authutils.GetUserID(ctx), payload.Code)
	if err != nil {
		return teamError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"team": team})
}

func teamError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, teamhandler.ErrInvalidJoinCode):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, teamhandler.ErrJoinCodeSchema):
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
