package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/controllers"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	workspacehandler "github.com/old-buffalo/task-management/lib/workspace"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
	workspaceapimodels "github.com/old-buffalo/task-management/models/api/workspace"
)

type workspaceApiController struct {
	controllers.BaseAPIController
}

func InitWorkspaceApiRouters(app *fiber.App) {
	controller := workspaceApiController{}
	app.Route("workspaces", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id/members", controller.listMembers)
		router.Post(":id/members", controller.addMember)
	})
}

func (c *workspaceApiController) list(ctx *fiber.Ctx) error {
	workspaces, err := workspacehandler.Instance.ListForUser(authutils.GetUserID(ctx))
	if err != nil {
		return workspaceError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"workspaces": workspaces})
}

func (c *workspaceApiController) create(ctx *fiber.Ctx) error {
	var payload workspaceapimodels.CreateWorkspaceRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	workspace, err := workspacehandler.Instance.Create(authutils.GetUserID(ctx), payload.Name)
	if err != nil {
		return workspaceError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"workspace": workspace})
}

func (c *workspaceApiController) listMembers(ctx *fiber.Ctx) error {
	workspaceID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	members, err := workspacehandler.Instance.ListMembers(workspaceID, authutils.GetUserID(ctx))
	if err != nil {
		return workspaceError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"members": members})
}

func (c *workspaceApiController) addMember(ctx *fiber.Ctx) error {
	workspaceID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workspaceapimodels.AddMemberRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := workspacehandler.Instance.AddMember(workspaceID, authutils.GetUserID(ctx), payload); err != nil {
		return workspaceError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}

func workspaceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, workspacehandler.ErrNotMember),
		errors.Is(err, workspacehandler.ErrRankTooLow),
		errors.Is(err, workspacehandler.ErrRankAboveActor):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workspacehandler.ErrProfileNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
