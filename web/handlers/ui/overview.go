package ui

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

func Overview(c *fiber.Ctx, env *handlers.Env) error {
	data := page(c, env, "Overview", "overview")
	data["Overview"] = env.Overview(c.UserContext(), middleware.Broker(c), middleware.Session(c))
	return render(c, fiber.StatusOK, "overview", data)
}
