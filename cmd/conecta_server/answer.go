package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conectahub/conecta/internal/service"
	"github.com/conectahub/conecta/internal/validation"
)

type apiError struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

type answer struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func ok(ctx *fiber.Ctx, data any, message string) error {
	return ctx.JSON(&answer{Success: true, Data: data, Message: message})
}

func created(ctx *fiber.Ctx, data any, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(&answer{Success: true, Data: data, Message: message})
}

func fail(ctx *fiber.Ctx, status int, code, message string) error {
	return ctx.Status(status).JSON(&answer{Success: false, Error: &apiError{Code: code, Message: message}})
}

// failValidation shapes schema violations into the envelope, keeping the
// per-field details.
func failValidation(ctx *fiber.Ctx, err error) error {
	var verr *validation.Error

	if errors.As(err, &verr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(&answer{
			Success: false,
			Error:   &apiError{Code: "VALIDATION_ERROR", Message: verr.Error(), Details: verr.Fields},
		})
	}

	return fail(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

// failBusiness maps service errors on write paths. Business-rule violations
// surface as 400 with their message; anything unanticipated collapses to a
// generic 500 so internals never leak.
func failBusiness(ctx *fiber.Ctx, err error, internalMsg string) error {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrAlreadyReviewed),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrNotApproved),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrAlreadyRegistered):
		return fail(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	return fail(ctx, fiber.StatusInternalServerError, "INTERNAL_ERROR", internalMsg)
}
