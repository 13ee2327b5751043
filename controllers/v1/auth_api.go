package apiv1

import (
	"job-portal-backend/controllers"
	authhandler "job-portal-backend/lib/auth"
	apimodels "job-portal-backend/models/api"
	authapimodels "job-portal-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("signup", controller.signup)
		router.Post("login", controller.login)
	})
}

// @Summary Registration
// @Tags Auth
// @Description Registers an applicant or a recruiter and returns a token
// @Param	body				body		authapimodels.SignupRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/signup [post]
func (c *authApiController) signup(ctx *fiber.Ctx) error {
	var payload authapimodels.SignupRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Signup(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to register user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Login
// @Tags Auth
// @Description Authenticates a user by email and password
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to login")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
