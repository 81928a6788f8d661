package ui

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

func ListExchanges(c *fiber.Ctx, env *handlers.Env) error {
	b := middleware.Broker(c)
	snap := console.NewView[[]models.ExchangeMetadata]().Load(c.UserContext(), b.ListExchanges)

	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	state := handlers.NewListState(console.MapExchangeRows(snap.Data), q, console.ExchangeColumns)

	data := page(c, env, "Exchanges", "exchange")
	data["List"] = handlers.NewListView("/exchange", state, console.ExchangeColumns)
	data["ExchangeTypes"] = console.ExchangeTypes
	withError(c, data, snap.Err, "Failed to list exchanges")
	return render(c, fiber.StatusOK, "exchanges", data)
}

// CreateExchange submits the create dialog. The list is not refreshed; the operator goes back to it.
func CreateExchange(c *fiber.Ctx, env *handlers.Env) error {
	dialog := console.ExchangeDialog{
		Name:       c.FormValue("name"),
		Type:       c.FormValue("type"),
		Durability: c.FormValue("durability"),
	}
	err := dialog.Submit(c.UserContext(), middleware.Broker(c))
	env.RecordCreate(c, "exchange", dialog.Name, err)

	data := page(c, env, "Create exchange", "exchange")
	data["Kind"] = "Exchange"
	data["Dialog"] = dialog
	data["Failure"] = handlers.Describe(err)
	return render(c, handlers.Status(err), "dialog", data)
}

type exchangeDetail struct {
	Exchange *models.ExchangeMetadata
	Bindings []models.BindingSet
}

func GetExchange(c *fiber.Ctx, env *handlers.Env) error {
	return renderExchange(c, env, nameParam(c), nil)
}

func DeleteExchange(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c)
	err := middleware.Broker(c).DeleteExchange(c.UserContext(), name, checked(c, "ifUnused"))
	env.Auditor.Delete(c.UserContext(), handlers.Actor(c), "exchange", name, err)
	if err != nil {
		return renderExchange(c, env, name, err)
	}
	return c.Redirect(doneURL("/exchange", "deleted", name), fiber.StatusSeeOther)
}

func renderExchange(c *fiber.Ctx, env *handlers.Env, name string, actionErr error) error {
	b := middleware.Broker(c)
	snap := console.NewView[exchangeDetail]().Load(c.UserContext(), func(ctx context.Context) (exchangeDetail, error) {
		exchange, err := b.GetExchange(ctx, name)
		if err != nil {
			return exchangeDetail{}, err
		}
		bindings, err := b.ListExchangeBindings(ctx, name)
		if err != nil {
			return exchangeDetail{}, err
		}
		return exchangeDetail{Exchange: exchange, Bindings: bindings}, nil
	})
	if errors.Is(snap.Err, client.ErrNotFound) || errors.Is(snap.Err, client.ErrInvalidName) {
		return notFound(c, env, "exchange", "Exchange "+name+" does not exist.")
	}

	data := page(c, env, "Exchange "+name, "exchange")
	data["Name"] = name
	data["Exchange"] = snap.Data.Exchange
	data["Bindings"] = console.MapBindingRows(snap.Data.Bindings)
	withError(c, data, snap.Err, "Failed to load exchange")
	status := fiber.StatusOK
	if actionErr != nil {
		withError(c, data, actionErr, "Failed to delete exchange")
		status = handlers.Status(actionErr)
	}
	return render(c, status, "exchange", data)
}
