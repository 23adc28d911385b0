package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/controllers"
	notificationhandler "github.com/old-buffalo/task-management/lib/notification"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
	notificationapimodels "github.com/old-buffalo/task-management/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Patch("", controller.mark)
	})
}

func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	notifications, unreadCount, err := notificationhandler.Instance.List(
		authutils.GetUserID(ctx), ctx.QueryBool("unread"),
		ctx.QueryInt("limit", notificationhandler.DefaultListLimit))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

func (c *notificationApiController) mark(ctx *fiber.Ctx) error {
	var payload notificationapimodels.MarkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.Mark(authutils.GetUserID(ctx), payload); err != nil {
		if errors.Is(err, notificationhandler.ErrMissingID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}
