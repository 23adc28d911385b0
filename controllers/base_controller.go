package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("Invalid payload")
	}
	return nil
}

// GetID reads a uuid path parameter; a malformed value never reaches storage.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if err := uuid.Validate(id); err != nil {
		return "", errors.Errorf("invalid %v", name)
	}
	return id, nil
}
