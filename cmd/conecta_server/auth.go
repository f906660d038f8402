package main

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

const adminTokenHeader = "x-admin-token"

// adminAuth guards admin endpoints with the shared secret from config. The
// comparison is constant time.
func adminAuth(token string) fiber.Handler {
	secret := []byte(token)

	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + adminTokenHeader,
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), secret) == 1 {
				return true, nil
			}

			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(ctx *fiber.Ctx, _ error) error {
			return fail(ctx, fiber.StatusUnauthorized, "UNAUTHORIZED", "Token de administrador inválido")
		},
	})
}
