package api

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/rs/zerolog/log"
)

func fail(c *fiber.Ctx, err error, msg string) error {
	status := handlers.Status(err)
	ev := log.Warn()
	if status >= fiber.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("path", c.Path()).Int("status", status).Msg(msg)
	return c.Status(status).JSON(models.ErrorResponse{
		Error: fmt.Sprintf("%s: %v", msg, err),
	})
}

func nameParam(c *fiber.Ctx, key string) string {
	name := c.Params(key)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}
