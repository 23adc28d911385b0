package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/config"
	"github.com/old-buffalo/task-management/controllers"
	authhandler "github.com/old-buffalo/task-management/lib/auth"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
	authapimodels "github.com/old-buffalo/task-management/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("", controller.authAction)
		router.Get("", middleware.AuthorizationRequired(), controller.currentUser)
	})
}

// authAction dispatches login, signup and logout from one endpoint; logout
// only drops the cookie and needs no valid session.
func (c *authApiController) authAction(ctx *fiber.Ctx) error {
	var payload authapimodels.AuthRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	switch payload.Action {
	case authapimodels.ActionSignup:
		if err := authhandler.Instance.Signup(payload.Email, payload.Password, payload.FullName); err != nil {
			if errors.Is(err, authhandler.ErrEmailTaken) {
				return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
	case authapimodels.ActionLogin:
		token, err := authhandler.Instance.Login(payload.Email, payload.Password)
		if err != nil {
			if errors.Is(err, authhandler.ErrInvalidCredentials) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		setSessionCookie(ctx, token)
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":    true,
			"token": token,
		})
	default:
		clearSessionCookie(ctx)
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
	}
}

// currentUser returns the account plus its profile, creating the profile on
// first authenticated call.
func (c *authApiController) currentUser(ctx *fiber.Ctx) error {
	user, profile, err := authhandler.Instance.CurrentUser(authutils.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, authhandler.ErrUnauthorized) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

func setSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   config.Conf.Auth.JWTExpireInSec,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
