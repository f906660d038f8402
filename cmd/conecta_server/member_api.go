package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conectahub/conecta/internal/model"
	"github.com/conectahub/conecta/internal/service"
	"github.com/conectahub/conecta/internal/validation"
)

func getMemberPostHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		in := new(validation.MemberInput)

		if err := ctx.BodyParser(in); err != nil {
			return fail(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "JSON inválido")
		}

		if err := validation.Check(in); err != nil {
			return failValidation(ctx, err)
		}

		m, err := app.members.CreateFromInvite(in)
		if err != nil {
			return failBusiness(ctx, err, "Erro ao completar cadastro")
		}

		return created(ctx, m.DTO(), "Cadastro completo! Bem-vindo à plataforma.")
	}
}

func getMembersListHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		members := app.members.List()

		items := make([]*model.MemberDTO, len(members))
		for i, m := range members {
			items[i] = m.DTO()
		}

		return ok(ctx, items, "")
	}
}

func getMemberHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		m, err := app.members.FindByID(ctx.Params("id"))

		if errors.Is(err, service.ErrMemberNotFound) {
			return fail(ctx, fiber.StatusNotFound, "NOT_FOUND", err.Error())
		}

		if err != nil {
			return fail(ctx, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar membro")
		}

		return ok(ctx, m.DTO(), "")
	}
}
