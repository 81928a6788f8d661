package ui

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

func ListQueues(c *fiber.Ctx, env *handlers.Env) error {
	b := middleware.Broker(c)
	snap := console.NewView[[]models.QueueMetadata]().Load(c.UserContext(), b.ListQueues)

	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	state := handlers.NewListState(console.MapQueueRows(snap.Data), q, console.QueueColumns)

	data := page(c, env, "Queues", "queue")
	data["List"] = handlers.NewListView("/queue", state, console.QueueColumns)
	withError(c, data, snap.Err, "Failed to list queues")
	return render(c, fiber.StatusOK, "queues", data)
}

func CreateQueue(c *fiber.Ctx, env *handlers.Env) error {
	dialog := console.QueueDialog{
		Name:       c.FormValue("name"),
		Durability: c.FormValue("durability"),
		AutoDelete: c.FormValue("autoDelete"),
	}
	err := dialog.Submit(c.UserContext(), middleware.Broker(c))
	env.RecordCreate(c, "queue", dialog.Name, err)

	data := page(c, env, "Create queue", "queue")
	data["Kind"] = "Queue"
	data["Dialog"] = dialog
	data["Failure"] = handlers.Describe(err)
	return render(c, handlers.Status(err), "dialog", data)
}

type queueDetail struct {
	Queue     *models.QueueMetadata
	Consumers []models.ConsumerMetadata
}

func GetQueue(c *fiber.Ctx, env *handlers.Env) error {
	return renderQueue(c, env, nameParam(c), nil)
}

func DeleteQueue(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c)
	err := middleware.Broker(c).DeleteQueue(c.UserContext(), name, checked(c, "ifUnused"), checked(c, "ifEmpty"))
	env.Auditor.Delete(c.UserContext(), handlers.Actor(c), "queue", name, err)
	if err != nil {
		return renderQueue(c, env, name, err)
	}
	return c.Redirect(doneURL("/queue", "deleted", name), fiber.StatusSeeOther)
}

func PurgeQueue(c *fiber.Ctx, env *handlers.Env) error {
	name := nameParam(c)
	deleted, err := middleware.Broker(c).PurgeQueue(c.UserContext(), name)
	env.Auditor.Purge(c.UserContext(), handlers.Actor(c), name, deleted, err)
	if err != nil {
		return renderQueue(c, env, name, err)
	}
	return c.Redirect(doneURL("/queue/"+pathEscape(name), "purged", name, "count", strconv.Itoa(deleted)), fiber.StatusSeeOther)
}

func renderQueue(c *fiber.Ctx, env *handlers.Env, name string, actionErr error) error {
	b := middleware.Broker(c)
	snap := console.NewView[queueDetail]().Load(c.UserContext(), func(ctx context.Context) (queueDetail, error) {
		queue, err := b.GetQueue(ctx, name)
		if err != nil {
			return queueDetail{}, err
		}
		consumers, err := b.ListQueueConsumers(ctx, name)
		if err != nil {
			return queueDetail{}, err
		}
		return queueDetail{Queue: queue, Consumers: consumers}, nil
	})
	if errors.Is(snap.Err, client.ErrNotFound) || errors.Is(snap.Err, client.ErrInvalidName) {
		return notFound(c, env, "queue", "Queue "+name+" does not exist.")
	}

	data := page(c, env, "Queue "+name, "queue")
	data["Name"] = name
	data["Queue"] = snap.Data.Queue
	data["Consumers"] = console.MapConsumerRows(snap.Data.Consumers)
	withError(c, data, snap.Err, "Failed to load queue")
	status := fiber.StatusOK
	if actionErr != nil {
		withError(c, data, actionErr, "Queue action failed")
		status = handlers.Status(actionErr)
	}
	return render(c, status, "queue", data)
}
