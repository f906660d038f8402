package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conectahub/conecta/internal/model"
	"github.com/conectahub/conecta/internal/service"
	"github.com/conectahub/conecta/internal/validation"
)

type paginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type applicationPageDTO struct {
	Items      []*model.ApplicationDTO `json:"items"`
	Pagination paginationDTO           `json:"pagination"`
}

func getApplicationPostHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		in := new(validation.ApplicationInput)

		if err := ctx.BodyParser(in); err != nil {
			return fail(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "JSON inválido")
		}

		if err := validation.Check(in); err != nil {
			return failValidation(ctx, err)
		}

		a, err := app.applications.Create(in)
		if err != nil {
			return failBusiness(ctx, err, "Erro ao processar candidatura")
		}

		return created(ctx, a.DTO(), "Candidatura enviada com sucesso! Você receberá um email quando for aprovada.")
	}
}

func getApplicationsListHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		q, err := validation.ParseListQuery(ctx.Query("status"), ctx.Query("page"), ctx.Query("limit"))
		if err != nil {
			return failValidation(ctx, err)
		}

		page := app.applications.List(q)

		items := make([]*model.ApplicationDTO, len(page.Items))
		for i, a := range page.Items {
			items[i] = a.DTO()
		}

		return ok(ctx, &applicationPageDTO{
			Items: items,
			Pagination: paginationDTO{
				Page:       page.Page,
				Limit:      page.Limit,
				Total:      page.Total,
				TotalPages: page.TotalPages,
			},
		}, "")
	}
}

func getApplicationHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		a, err := app.applications.FindByID(ctx.Params("id"))

		if errors.Is(err, service.ErrNotFound) {
			return fail(ctx, fiber.StatusNotFound, "NOT_FOUND", err.Error())
		}

		if err != nil {
			return fail(ctx, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar candidatura")
		}

		return ok(ctx, a.DTO(), "")
	}
}

func getApplicationApproveHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		in := new(validation.ReviewInput)

		if err := ctx.BodyParser(in); err != nil {
			return fail(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "JSON inválido")
		}

		if err := validation.Check(in); err != nil {
			return failValidation(ctx, err)
		}

		a, err := app.applications.Approve(ctx.Params("id"), in.ReviewedBy)
		if err != nil {
			return failBusiness(ctx, err, "Erro ao aprovar candidatura")
		}

		return ok(ctx, fiber.Map{
			"id":                a.ID,
			"status":            a.Status,
			"inviteToken":       a.Token(),
			"inviteLink":        app.applications.InviteLink(a),
			"inviteTokenExpiry": a.InviteTokenExpiry,
		}, "Candidatura aprovada! Link de convite gerado.")
	}
}

func getApplicationRejectHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		in := new(validation.ReviewInput)

		if err := ctx.BodyParser(in); err != nil {
			return fail(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "JSON inválido")
		}

		if err := validation.Check(in); err != nil {
			return failValidation(ctx, err)
		}

		a, err := app.applications.Reject(ctx.Params("id"), in.ReviewedBy)
		if err != nil {
			return failBusiness(ctx, err, "Erro ao rejeitar candidatura")
		}

		return ok(ctx, a.DTO(), "Candidatura rejeitada.")
	}
}
