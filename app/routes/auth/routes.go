package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/register", RegisterAPI)
	api.Post("/login", LoginAPI)
	api.Post("/forgot-password", ForgotPasswordAPI)
	api.Post("/verify-otp", VerifyOTPAPI)
	api.Post("/reset-password", ResetPasswordAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/profile", ProfileAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the bearer token and sets the admin context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Cookie first, then Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No token found")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	c.Locals("admin_id", claims.AdminID)
	c.Locals("admin_email", claims.Email)
	c.Locals("admin_name", claims.Name)

	return c.Next()
}
