package apiv1

import (
	"job-portal-backend/controllers"
	userhandler "job-portal-backend/lib/user"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	userapimodels "job-portal-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.me)
		router.Put("", controller.update)
		router.Get(":id", controller.get)
	})
}

// @Summary Own profile
// @Tags User
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/user [get]
func (c *userApiController) me(ctx *fiber.Ctx) error {
	resp, err := userhandler.Instance.GetByID(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Profile by ID
// @Tags User
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/user/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := userhandler.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Profile update
// @Tags User
// @Description Empty fields are left unchanged
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 userapimodels.ProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/user [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	var payload userapimodels.ProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := userhandler.Instance.Update(ctx.UserContext(), middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("User information updated successfully"))
}
