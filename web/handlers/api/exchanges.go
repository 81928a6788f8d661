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

// ListExchanges godoc
// @Summary List exchanges
// @Description List the broker's exchanges, filtered by column and paginated
// @Tags exchanges
// @Produce json
// @Param q query string false "Search term (case-insensitive substring)"
// @Param column query string false "Filter column" Enums(Name, Type, Durability)
// @Param page query int false "Zero based page index"
// @Param size query int false "Rows per page"
// @Success 200 {object} models.ExchangeListResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 502 {object} models.ErrorResponse "Broker unreachable"
// @Router /exchanges [get]
// @Security BearerAuth
func ListExchanges(c *fiber.Ctx, env *handlers.Env) error {
	exchanges, err := middleware.Broker(c).ListExchanges(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to list exchanges")
	}

	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	state := handlers.NewListState(console.MapExchangeRows(exchanges), q, console.ExchangeColumns)
	return c.Status(fiber.StatusOK).JSON(models.ExchangeListResponse{
		Exchanges: console.Select(exchanges, state.Visible(), func(r console.ExchangeRow) int { return r.ID }),
		Page:      handlers.PageOf(state),
	})
}

// GetExchange godoc
// @Summary Get an exchange
// @Tags exchanges
// @Produce json
// @Param exchange path string true "Exchange name"
// @Success 200 {object} models.ExchangeMetadata
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Exchange not found"
// @Router /exchanges/{exchange} [get]
// @Security BearerAuth
func GetExchange(c *fiber.Ctx, env *handlers.Env) error {
	exchange, err := middleware.Broker(c).GetExchange(c.UserContext(), nameParam(c, "exchange"))
	if err != nil {
		return fail(c, err, "Failed to get exchange")
	}
	return c.Status(fiber.StatusOK).JSON(exchange)
}

// ListExchangeBindings godoc
// @Summary List the bindings of an exchange
// @Tags exchanges
// @Produce json
// @Param exchange path string true "Exchange name"
// @Success 200 {object} models.BindingListResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Exchange not found"
// @Router /exchanges/{exchange}/bindings [get]
// @Security BearerAuth
func ListExchangeBindings(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c, "exchange")
	bindings, err := middleware.Broker(c).ListExchangeBindings(c.UserContext(), name)
	if err != nil {
		return fail(c, err, "Failed to list bindings")
	}
	return c.Status(fiber.StatusOK).JSON(models.BindingListResponse{
		Exchange: name,
		Bindings: bindings,
	})
}

// CreateExchange godoc
// @Summary Create an exchange
// @Tags exchanges
// @Accept json
// @Produce json
// @Param exchange body models.CreateExchangeRequest true "Exchange to create"
// @Success 201 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing name or type"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 409 {object} models.ErrorResponse "Exchange already exists"
// @Router /exchanges [post]
// @Security BearerAuth
func CreateExchange(c *fiber.Ctx, env *handlers.Env) error {
	var req models.CreateExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	dialog := console.ExchangeDialog{
		Name:       req.Name,
		Type:       req.Type,
		Durability: strconv.FormatBool(req.Durable),
	}
	err := dialog.Submit(c.UserContext(), middleware.Broker(c))
	env.RecordCreate(c, "exchange", req.Name, err)
	if err != nil {
		return fail(c, err, "Failed to create exchange")
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Message: fmt.Sprintf("Exchange %s created", dialog.Name),
	})
}

// DeleteExchange godoc
// @Summary Delete an exchange
// @Tags exchanges
// @Produce json
// @Param exchange path string true "Exchange name"
// @Param ifUnused query bool false "Only delete when the exchange has no bindings"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 404 {object} models.ErrorResponse "Exchange not found"
// @Failure 409 {object} models.ErrorResponse "Exchange in use"
// @Router /exchanges/{exchange} [delete]
// @Security BearerAuth
func DeleteExchange(c *fiber.Ctx, env *handlers.Env) error {
	var opts models.DeleteOptions
	if err := c.QueryParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid query parameters",
		})
	}

	name := nameParam(c, "exchange")
	err := middleware.Broker(c).DeleteExchange(c.UserContext(), name, opts.IfUnused)
	env.Auditor.Delete(c.UserContext(), handlers.Actor(c), "exchange", name, err)
	if err != nil {
		return fail(c, err, "Failed to delete exchange")
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: fmt.Sprintf("Exchange %s deleted", name),
	})
}
