package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config holds the fiber settings of the API.
type Config struct {
	BodyLimit int // bytes; fiber's default when zero
}

// NewApp builds the fiber app with every route registered.
func NewApp(h *Handler, cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "reportd",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})

	app.Use(h.RequestID)
	// a panicking render answers 500 instead of stopping the server
	app.Use(recover.New())

	app.Get("/healthz", h.Health)
	app.Get("/reports", h.Kinds)
	app.Get("/reports/:kind/schema", h.Schema)
	// bundle is registered before :kind so it is not taken for a kind
	app.Post("/reports/bundle", h.Bundle)
	app.Post("/reports/:kind", h.Generate)
	app.Post("/templates", h.Template)
	app.Post("/sanitize", h.Sanitize)

	return app
}

// errorHandler renders fiber errors, such as unmatched routes or oversized
// bodies, in the same JSON shape as handler errors.
func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	if status >= fiber.StatusInternalServerError {
		h.log.Error("http: unhandled error", "id", requestID(c), "path", c.Path(), "err", err)
	}
	return h.fail(c, status, err)
}
