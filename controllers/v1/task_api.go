package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/controllers"
	filestorage "github.com/old-buffalo/task-management/lib/file-storage"
	taskhandler "github.com/old-buffalo/task-management/lib/task"
	authutils "github.com/old-buffalo/task-management/lib/utils/auth-utils"
	"github.com/old-buffalo/task-management/middleware"
	apimodels "github.com/old-buffalo/task-management/models/api"
	taskapimodels "github.com/old-buffalo/task-management/models/api/task"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Route("tasks", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Patch(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Get(":id/comments", controller.listComments)
		router.Post(":id/comments", controller.addComment)
		router.Get(":id/attachments", controller.listAttachments)
		router.Post(":id/attachments", controller.uploadAttachment)
	})
}

func (c *taskApiController) list(ctx *fiber.Ctx) error {
	filter := taskapimodels.Filter{
		Status:      ctx.Query("status"),
		TeamID:      ctx.Query("team_id"),
		WorkspaceID: ctx.Query("workspace_id"),
		AssignedTo:  ctx.Query("assigned_to"),
		CreatedBy:   ctx.Query("created_by"),
		Query:       ctx.Query("q"),
		Has:         ctx.Query("has"),
	}
	tasks, err := taskhandler.Instance.List(authutils.GetUserID(ctx), filter)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"tasks": tasks})
}

func (c *taskApiController) create(ctx *fiber.Ctx) error {
	var payload taskapimodels.CreateTaskRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	task, err := taskhandler.Instance.Create(authutils.GetUserID(ctx), payload)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

func (c *taskApiController) get(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	task, err := taskhandler.Instance.Get(authutils.GetUserID(ctx), taskID)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

// update forwards the raw body so unknown patch fields are rejected instead
// of silently dropped.
func (c *taskApiController) update(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	updMap, err := taskapimodels.ParseUpdate(ctx.Body())
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	task, err := taskhandler.Instance.Update(authutils.GetUserID(ctx), taskID, updMap)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

func (c *taskApiController) delete(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := taskhandler.Instance.Delete(authutils.GetUserID(ctx), taskID); err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}

func (c *taskApiController) listComments(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	comments, err := taskhandler.Instance.ListComments(authutils.GetUserID(ctx), taskID)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"comments": comments})
}

func (c *taskApiController) addComment(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.CreateCommentRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	comment, err := taskhandler.Instance.AddComment(authutils.GetUserID(ctx), taskID, payload)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"comment": comment})
}

func (c *taskApiController) listAttachments(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	attachments, err := taskhandler.Instance.ListAttachments(ctx.Context(), authutils.GetUserID(ctx), taskID)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"attachments": attachments})
}

func (c *taskApiController) uploadAttachment(ctx *fiber.Ctx) error {
	taskID, err := c.GetID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(taskhandler.ErrMissingFile.Error()))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(taskhandler.ErrMissingFile.Error()))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	attachment, err := taskhandler.Instance.UploadAttachment(ctx.Context(), authutils.GetUserID(ctx),
		taskID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		return taskError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"attachment": attachment})
}

func taskError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, taskhandler.ErrTaskNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, taskapimodels.ErrInvalidPayload),
		errors.Is(err, taskhandler.ErrMissingFile),
		errors.Is(err, taskhandler.ErrEmptyFile),
		errors.Is(err, taskhandler.ErrFileTooLarge):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, filestorage.ErrNotConfigured):
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
