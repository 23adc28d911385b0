package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/old-buffalo/task-management/controllers"
	dashboardhandler "github.com/old-buffalo/task-management/lib/dashboard"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.stats)
	})
}

func (c *dashboardApiController) stats(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	stats, err := dashboardhandler.Instance.Stats(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id": userID,
		"stats":   stats,
	})
}
