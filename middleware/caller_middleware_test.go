package middleware

import (
	"io"
	"job-portal-backend/config"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "secret"
	config.Conf.Auth.JWTExpireInSec = 60

	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Get("/caller", func(ctx *fiber.Ctx) error {
		caller := GetCaller(ctx)
		return ctx.SendString(string(caller.Type()) + ":" + caller.UserID())
	})
	app.Get("/recruiter", RecruiterRequired("recruiters only"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path string, userType models.UserType) (int, string) {
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if userType != "" {
		token, err := authutils.GetToken("user-1", "Jane", userType)
		require.Nil(t, err)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.Nil(t, err)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp.StatusCode, string(body)
}

func TestCaller(t *testing.T) {
	app := testApp()

	t.Run(`missing token is rejected`, func(t *testing.T) {
		status, _ := request(t, app, "/caller", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run(`caller is built from claims`, func(t *testing.T) {
		status, body := request(t, app, "/caller", models.UserTypeApplicant)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "applicant:user-1", body)
	})

	t.Run(`recruiter only route`, func(t *testing.T) {
		status, body := request(t, app, "/recruiter", models.UserTypeApplicant)
		require.Equal(t, fiber.StatusUnauthorized, status)
		require.JSONEq(t, `{"status":"fail","message":"recruiters only"}`, body)
		status, _ = request(t, app, "/recruiter", models.UserTypeRecruiter)
		require.Equal(t, fiber.StatusOK, status)
	})
}
