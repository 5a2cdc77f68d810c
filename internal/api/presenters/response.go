package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Every successful read returns {"body": ...}; every failure returns
// {"message": ...} with a non-2xx status.

func SuccessResponse(c *fiber.Ctx, status int, body any) error {
	return c.Status(status).JSON(fiber.Map{"body": body})
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func CreatedResponse(c *fiber.Ctx, message string, extra fiber.Map) error {
	payload := fiber.Map{"message": message}
	for k, v := range extra {
		payload[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

// ErrorResponse logs the underlying error and returns only the caller-safe
// message, so internal failures never leak verbatim.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}
