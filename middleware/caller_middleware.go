package middleware

import (
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetUserType(ctx *fiber.Ctx) models.UserType {
	claims := authutils.GetClaims(ctx)
	if userType, ok := claims["type"].(string); ok {
		return models.UserType(userType)
	}
	return ""
}

func GetCaller(ctx *fiber.Ctx) models.Caller {
	return models.NewCaller(GetUserType(ctx), GetUserID(ctx))
}

// RecruiterRequired answers 401 with message unless the caller is a recruiter.
func RecruiterRequired(message string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !models.IsRecruiter(GetCaller(ctx)) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(message))
		}
		return ctx.Next()
	}
}
