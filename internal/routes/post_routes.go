package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/internal/handlers"
	"socialgraph/services"
)

func SetupPostRoutes(api fiber.Router, svc *services.Service) {
	h := &handlers.PostHandler{Svc: svc}

	posts := api.Group("/posts")
	posts.Post("/", h.Create)
	posts.Get("/", h.List)
	posts.Get("/:id", h.Get)
	posts.Delete("/:id", h.Delete)
	posts.Get("/:id/likes", h.Likers)
}
