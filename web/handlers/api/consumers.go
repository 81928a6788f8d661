package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

// ListQueueConsumers godoc
// @Summary List the consumers of a queue
// @Tags consumers
// @Produce json
// @Param queue path string true "Queue name"
// @Success 200 {object} models.ConsumerListResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Queue not found"
// @Router /queues/{queue}/consumers [get]
// @Security BearerAuth
func ListQueueConsumers(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c, "queue")
	consumers, err := middleware.Broker(c).ListQueueConsumers(c.UserContext(), name)
	if err != nil {
		return fail(c, err, "Failed to list consumers")
	}
	return c.Status(fiber.StatusOK).JSON(models.ConsumerListResponse{
		Queue:     name,
		Consumers: consumers,
	})
}
