package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

// Login godoc
// @Summary Open a console session
// @Description Check the credentials and return a session token for the Authorization header
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Operator credentials and broker endpoint"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse "Missing host or port"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 502 {object} models.ErrorResponse "Broker unreachable"
// @Router /login [post]
func Login(c *fiber.Ctx, env *handlers.Env) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	_, token, sess, err := env.Login(c.UserContext(), console.LoginForm{
		Username: req.Username,
		Password: req.Password,
		Host:     req.Host,
		Port:     req.Port,
	})
	if err != nil {
		return fail(c, err, "Login failed")
	}
	return c.Status(fiber.StatusOK).JSON(models.LoginResponse{
		Token:     token,
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout godoc
// @Summary Close the console session
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Router /logout [post]
// @Security BearerAuth
func Logout(c *fiber.Ctx, env *handlers.Env) error {
	env.Logout(c.UserContext(), middleware.Session(c))
	middleware.ClearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{Message: "Logged out"})
}
