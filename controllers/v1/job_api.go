package apiv1

import (
	"job-portal-backend/controllers"
	applicationhandler "job-portal-backend/lib/application"
	jobhandler "job-portal-backend/lib/job"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	jobapimodels "job-portal-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	applications := applicationApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.list)
		router.Post("", middleware.RecruiterRequired(jobhandler.MsgCannotAddJob), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RecruiterRequired(jobhandler.MsgCannotChangeJob), controller.update)
			idRoute.Delete("", middleware.RecruiterRequired(jobhandler.MsgCannotDeleteJob), controller.delete)
			idRoute.Route("applications", func(appRoute fiber.Router) {
				appRoute.Post("", applications.apply)
				appRoute.Get("", middleware.RecruiterRequired(applicationhandler.MsgCannotViewList), applications.listForJob)
				appRoute.Get("export", middleware.RecruiterRequired(applicationhandler.MsgCannotViewList), applications.exportForJob)
			})
		})
	})
}

// @Summary Job search
// @Tags Job
// @Description Open jobs matching the filters. Applicants do not see jobs they already applied for
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   q					query		string	false	"title substring"
// @Param   skills				query		string	false	"comma separated skills, all must match"
// @Param   jobType				query		string	false	"Full Time, Part Time or Work From Home"
// @Param   duration			query		int		false	"duration below, months"
// @Param   salaryMin			query		int		false	"minimal salary"
// @Param   salaryMax			query		int		false	"maximal salary"
// @Param   sort				query		string	false	"salary, duration, deadline or dateOfPosting"
// @Param   order				query		string	false	"asc or desc"
// @Param   myjobs				query		bool	false	"recruiter own jobs"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.List(ctx.UserContext(), middleware.GetCaller(ctx), ctx.Queries())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Job creation
// @Tags Job
// @Description Creates a job owned by the recruiter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(ctx.UserContext(), middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.Response{
		Status:  "success",
		Message: "Job added successfully to the database",
		Data:    id,
	})
}

// @Summary Job by ID
// @Tags Job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobhandler.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Job update
// @Tags Job
// @Description Partial update of capacity and deadline by the owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobUpdate	true	"request body"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = jobhandler.Instance.Update(ctx.UserContext(), middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Job details updated successfully"))
}

// @Summary Job deletion
// @Tags Job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/jobs/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = jobhandler.Instance.Delete(ctx.UserContext(), middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Job deleted successfully"))
}
