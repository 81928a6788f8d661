package ui

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/rs/zerolog/log"
)

func Activity(c *fiber.Ctx, env *handlers.Env) error {
	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	entries, total, err := handlers.ActivityPage(c.UserContext(), env.Auditor.Journal(), q)

	data := page(c, env, "Activity", "activity")
	data["Entries"] = entries
	data["Total"] = total
	data["Page"] = q.Page
	data["Pages"] = console.PageCount(total, q.Size)
	data["PrevURL"] = ""
	data["NextURL"] = ""
	if q.Page > 0 {
		data["PrevURL"] = activityURL(q.Page-1, q.Size)
	}
	if (q.Page+1)*q.Size < total {
		data["NextURL"] = activityURL(q.Page+1, q.Size)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to read the activity log")
		data["Error"] = "The activity log could not be read."
	}
	return render(c, fiber.StatusOK, "activity", data)
}

func activityURL(page, size int) string {
	return "/activity?page=" + strconv.Itoa(page) + "&size=" + strconv.Itoa(size)
}
