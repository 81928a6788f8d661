package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

// GetOverview godoc
// @Summary Console overview
// @Description Broker reachability over REST and AMQP plus console counters
// @Tags overview
// @Produce json
// @Success 200 {object} models.OverviewDTO
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Router /overview [get]
// @Security BearerAuth
func GetOverview(c *fiber.Ctx, env *handlers.Env) error {
	overview := env.Overview(c.UserContext(), middleware.Broker(c), middleware.Session(c))
	return c.Status(fiber.StatusOK).JSON(overview)
}
