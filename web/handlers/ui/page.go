package ui

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
	"github.com/rs/zerolog/log"
)

// page returns the binding every template expects from the layout.
func page(c *fiber.Ctx, env *handlers.Env, title, active string) fiber.Map {
	data := fiber.Map{
		"Title":           title,
		"Active":          active,
		"Username":        "",
		"Broker":          "",
		"ActivityEnabled": env.HasFeature("activity"),
		"Error":           "",
		"Notice":          notice(c),
	}
	if b := middleware.Broker(c); b != nil {
		data["Username"] = middleware.Session(c).Credentials.Username
		data["Broker"] = b.Connection().Host()
	}
	return data
}

// withError puts a failed fetch on the page banner.
func withError(c *fiber.Ctx, data fiber.Map, err error, msg string) {
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("path", c.Path()).Msg(msg)
	data["Error"] = handlers.Describe(err)
}

func render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	return c.Status(status).Render(name, data)
}

func notFound(c *fiber.Ctx, env *handlers.Env, active, message string) error {
	data := page(c, env, "Not found", active)
	data["Message"] = message
	return render(c, fiber.StatusNotFound, "notfound", data)
}

func notice(c *fiber.Ctx) string {
	name := c.Query("name")
	switch c.Query("done") {
	case "deleted":
		return name + " deleted."
	case "purged":
		return name + " purged, " + c.Query("count", "0") + " messages removed."
	}
	return ""
}

func doneURL(path, done, name string, extra ...string) string {
	q := url.Values{}
	q.Set("done", done)
	q.Set("name", name)
	for i := 0; i+1 < len(extra); i += 2 {
		q.Set(extra[i], extra[i+1])
	}
	return path + "?" + q.Encode()
}

func nameParam(c *fiber.Ctx) string {
	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}

func checked(c *fiber.Ctx, key string) bool {
	switch c.FormValue(key) {
	case "true", "on", "1":
		return true
	}
	return false
}

func pathEscape(name string) string {
	return url.PathEscape(name)
}
