package main

import (
	"github.com/gofiber/fiber/v2"
)

func getIndexPageHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := map[string]any{
			"page": "index",
		}

		return ctx.Render("templates/index", data, "templates/header")
	}
}

func getApplyPageHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := map[string]any{
			"page": "aplicar",
		}

		return ctx.Render("templates/aplicar", data, "templates/header")
	}
}

func getRegisterPageHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := map[string]any{
			"page":  "cadastro",
			"token": ctx.Params("token"),
		}

		return ctx.Render("templates/cadastro", data, "templates/header")
	}
}

func getAdminApplicationsPageHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := map[string]any{
			"page": "candidatos",
		}

		return ctx.Render("templates/candidatos", data, "templates/header")
	}
}

func getAdminDashboardPageHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		data := map[string]any{
			"page": "dashboard",
		}

		return ctx.Render("templates/dashboard", data, "templates/header")
	}
}
