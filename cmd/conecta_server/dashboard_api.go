package main

import (
	"github.com/gofiber/fiber/v2"
)

func getDashboardStatsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		stats, err := app.dashboard.GetStats(ctx.UserContext(), nil)
		if err != nil {
			app.logger.Error("dashboard stats", "error", err)

			return fail(ctx, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao montar estatísticas")
		}

		return ok(ctx, stats, "")
	}
}
