package apiv1

import (
	"fmt"
	"job-portal-backend/controllers"
	applicationhandler "job-portal-backend/lib/application"
	"job-portal-backend/middleware"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
	applicationapimodels "job-portal-backend/models/api/application"
	"time"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.updateStatus)
			idRoute.Get("offer", controller.offer)
		})
	})
}

// @Summary Apply for a job
// @Tags Application
// @Description Creates an application when the job capacity, the applicant quota and the accepted job rule allow it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplyRequest	false	"request body"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applications [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ApplyRequest
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	logger := c.GetLogger(ctx).WithField("job_id", jobID)
	res, err := applicationhandler.Instance.Apply(ctx.UserContext(), middleware.GetCaller(ctx), jobID, payload)
	if err != nil {
		return c.SendError(ctx, logger, err, "failed to apply for job")
	}
	if !res.Ok() {
		return ctx.Status(res.HTTPStatus()).JSON(apimodels.NewError(res.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage(res.Message))
}

// @Summary Applications of a job
// @Tags Application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   status				query		string	false	"application status"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applications [get]
func (c *applicationApiController) listForJob(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status := models.ApplicationStatus(ctx.Query("status"))
	resp, err := applicationhandler.Instance.ListForJob(ctx.UserContext(), middleware.GetCaller(ctx), jobID, status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Applications of a job in xlsx
// @Tags Application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applications/export [get]
func (c *applicationApiController) exportForJob(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := applicationhandler.Instance.ExportForJob(ctx.UserContext(), middleware.GetCaller(ctx), jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export job applications")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Own applications
// @Tags Application
// @Description Applications of the applicant, or applications to the jobs of the recruiter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"application status, accepted lists the final applicants"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	status := models.ApplicationStatus(ctx.Query("status"))
	resp, err := applicationhandler.Instance.List(ctx.UserContext(), middleware.GetCaller(ctx), status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Application status update
// @Tags Application
// @Description An applicant may only cancel, a recruiter may set any status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.StatusUpdate	true	"request body"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id} [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	msg, err := applicationhandler.Instance.UpdateStatus(ctx.UserContext(), middleware.GetCaller(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update application status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage(msg))
}

// @Summary Offer letter
// @Tags Application
// @Description PDF offer letter of an accepted application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id}/offer [get]
func (c *applicationApiController) offer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := applicationhandler.Instance.Offer(ctx.UserContext(), middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate offer letter")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="offer-`+id+`.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
