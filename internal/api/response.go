package api

import "github.com/gofiber/fiber/v3"

type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Success(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: fiber.StatusOK, Message: "OK", Data: data})
}

func Error(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: nil})
}
