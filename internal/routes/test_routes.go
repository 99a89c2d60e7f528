package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/internal/handlers"
	"socialgraph/services"
)

// SetupTestRoutes exposes store reset and demo seeding. Never mount these in
// production.
func SetupTestRoutes(api fiber.Router, svc *services.Service) {
	h := &handlers.AdminHandler{Svc: svc}

	test := api.Group("/test")
	test.Post("/reset", h.Reset)
	test.Post("/seed", h.Seed)
}
