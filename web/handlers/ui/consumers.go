package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

// ConsumerIndex lets the operator pick the queue whose consumers to show.
func ConsumerIndex(c *fiber.Ctx, env *handlers.Env) error {
	if queue := strings.TrimSpace(c.Query("queue")); queue != "" {
		return c.Redirect("/consumer/"+pathEscape(queue), fiber.StatusSeeOther)
	}

	b := middleware.Broker(c)
	snap := console.NewView[[]models.QueueMetadata]().Load(c.UserContext(), b.ListQueues)

	data := page(c, env, "Consumers", "consumer")
	data["Queues"] = console.MapQueueRows(snap.Data)
	withError(c, data, snap.Err, "Failed to list queues")
	return render(c, fiber.StatusOK, "consumers", data)
}

func ListConsumers(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c)
	b := middleware.Broker(c)
	snap := console.NewView[[]models.ConsumerMetadata]().Load(c.UserContext(), func(ctx context.Context) ([]models.ConsumerMetadata, error) {
		return b.ListQueueConsumers(ctx, name)
	})
	if errors.Is(snap.Err, client.ErrNotFound) || errors.Is(snap.Err, client.ErrInvalidName) {
		return notFound(c, env, "consumer", "Queue "+name+" does not exist.")
	}

	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	state := handlers.NewListState(console.MapConsumerRows(snap.Data), q, console.ConsumerColumns)

	data := page(c, env, "Consumers of "+name, "consumer")
	data["Name"] = name
	data["List"] = handlers.NewListView("/consumer/"+pathEscape(name), state, console.ConsumerColumns)
	withError(c, data, snap.Err, "Failed to list consumers")
	return render(c, fiber.StatusOK, "consumer", data)
}
