package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/bss-ve/internal/domain"
)

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, domain.NewValidationError("invalid %s", name)
	}
	return uint(id), nil
}

func decodeFields(c *fiber.Ctx) (domain.Fields, error) {
	return domain.DecodeFields(c.Body())
}
