package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/internal/persistdb"
	"github.com/ottermq/mbconsole/web/handlers"
)

type ActivityListResponse struct {
	Entries []persistdb.Activity `json:"entries"`
	Page    models.Page          `json:"page"`
}

// ListActivity godoc
// @Summary List recorded console actions
// @Description Newest first
// @Tags activity
// @Produce json
// @Param page query int false "Zero based page index"
// @Param size query int false "Rows per page"
// @Success 200 {object} ActivityListResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 500 {object} models.ErrorResponse "Failed to read the activity log"
// @Router /activity [get]
// @Security BearerAuth
func ListActivity(c *fiber.Ctx, env *handlers.Env) error {
	q := handlers.ParseListQuery(c, env.Config.DefaultPageSize)
	entries, total, err := handlers.ActivityPage(c.UserContext(), env.Auditor.Journal(), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to read the activity log",
		})
	}
	return c.Status(fiber.StatusOK).JSON(ActivityListResponse{
		Entries: entries,
		Page: models.Page{
			Page:     q.Page,
			Size:     q.Size,
			Total:    total,
			Filtered: total,
			Pages:    console.PageCount(total, q.Size),
		},
	})
}
