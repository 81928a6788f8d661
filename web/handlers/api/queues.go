package api

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

// ListQueues godoc
// @Summary List queues
// @Description List the broker's queues, filtered by column and paginated
// @Tags queues
// @Produce json
// @Param q query string false "Search term (case-insensitive substring)"
// @Param column query string false "Filter column" Enums(Name, Durability, autoDelete)
// @Param page query int false "Zero based page index"
// @Param size query int false "Rows per page"
// @Success 200 {object} models.QueueListResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 502 {object} models.ErrorResponse "Broker unreachable"
// @Router /queues [get]
// @Security BearerAuth
func ListQueues(c *fiber.Ctx, env *handlers.Env) error {
	queues, err := middleware.Broker(c).ListQueues(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to list queues")
	}

	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	state := handlers.NewListState(console.MapQueueRows(queues), q, console.QueueColumns)
	return c.Status(fiber.StatusOK).JSON(models.QueueListResponse{
		Queues: console.Select(queues, state.Visible(), func(r console.QueueRow) int { return r.ID }),
		Page:   handlers.PageOf(state),
	})
}

// GetQueue godoc
// @Summary Get a queue
// @Tags queues
// @Produce json
// @Param queue path string true "Queue name"
// @Success 200 {object} models.QueueMetadata
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Queue not found"
// @Router /queues/{queue} [get]
// @Security BearerAuth
func GetQueue(c *fiber.Ctx, env *handlers.Env) error {
	queue, err := middleware.Broker(c).GetQueue(c.UserContext(), nameParam(c, "queue"))
	if err != nil {
		return fail(c, err, "Failed to get queue")
	}
	return c.Status(fiber.StatusOK).JSON(queue)
}

// CreateQueue godoc
// @Summary Create a queue
// @Tags queues
// @Accept json
// @Produce json
// @Param queue body models.CreateQueueRequest true "Queue to create"
// @Success 201 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing name"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 409 {object} models.ErrorResponse "Queue already exists"
// @Router /queues [post]
// @Security BearerAuth
func CreateQueue(c *fiber.Ctx, env *handlers.Env) error {
	var req models.CreateQueueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	dialog := console.QueueDialog{
		Name:       req.Name,
		Durability: strconv.FormatBool(req.Durable),
		AutoDelete: strconv.FormatBool(req.AutoDelete),
	}
	err := dialog.Submit(c.UserContext(), middleware.Broker(c))
	env.RecordCreate(c, "queue", req.Name, err)
	if err != nil {
		return fail(c, err, "Failed to create queue")
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Message: fmt.Sprintf("Queue %s created", dialog.Name),
	})
}

// DeleteQueue godoc
// @Summary Delete a queue
// @Tags queues
// @Produce json
// @Param queue path string true "Queue name"
// @Param ifUnused query bool false "Only delete when the queue has no consumers"
// @Param ifEmpty query bool false "Only delete when the queue holds no messages"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Queue not found"
// @Failure 409 {object} models.ErrorResponse "Queue in use or not empty"
// @Router /queues/{queue} [delete]
// @Security BearerAuth
func DeleteQueue(c *fiber.Ctx, env *handlers.Env) error {
	var opts models.DeleteOptions
	if err := c.QueryParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid query parameters",
		})
	}

	name := nameParam(c, "queue")
	err := middleware.Broker(c).DeleteQueue(c.UserContext(), name, opts.IfUnused, opts.IfEmpty)
	env.Auditor.Delete(c.UserContext(), handlers.Actor(c), "queue", name, err)
	if err != nil {
		return fail(c, err, "Failed to delete queue")
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: fmt.Sprintf("Queue %s deleted", name),
	})
}

// PurgeQueue godoc
// @Summary Purge a queue
// @Description Remove every ready message from a queue
// @Tags queues
// @Produce json
// @Param queue path string true "Queue name"
// @Success 200 {object} models.PurgeResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Queue not found"
// @Router /queues/{queue}/messages [delete]
// @Security BearerAuth
func PurgeQueue(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c, "queue")
	deleted, err := middleware.Broker(c).PurgeQueue(c.UserContext(), name)
	env.Auditor.Purge(c.UserContext(), handlers.Actor(c), name, deleted, err)
	if err != nil {
		return fail(c, err, "Failed to purge queue")
	}
	return c.Status(fiber.StatusOK).JSON(models.PurgeResponse{
		Message:  fmt.Sprintf("Queue %s purged", name),
		Messages: deleted,
	})
}
