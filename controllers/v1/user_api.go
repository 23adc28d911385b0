package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/old-buffalo/task-management/controllers"
	profilehandler "github.com/old-buffalo/task-management/lib/profile"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.search)
	})
}

func (c *userApiController) search(ctx *fiber.Ctx) error {
	users, err := profilehandler.Instance.Search(ctx.Query("q"),
		ctx.QueryInt("limit", profilehandler.DefaultSearchLimit))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}
