package controllers

import (
	"job-portal-backend/fiberlog"
	"job-portal-backend/middleware"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const GenericErrorMessage = "Unable to process the request"

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("%v is required", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals(fiberlog.LocalRequestID).(string); ok && requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError answers a HumanError with its own status and message.
// Any other error is logged and answered with a generic 400.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, logMsg string) error {
	var hErr models.HumanError
	if errors.As(err, &hErr) {
		return ctx.Status(hErr.Status).JSON(apimodels.NewError(hErr.Message))
	}
	logger.WithError(err).Error(logMsg)
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(GenericErrorMessage))
}
