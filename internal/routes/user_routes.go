package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/internal/handlers"
	"socialgraph/services"
)

func SetupUserRoutes(api fiber.Router, svc *services.Service) {
	h := &handlers.UserHandler{Svc: svc}
	feed := &handlers.FeedHandler{Svc: svc}

	users := api.Group("/users")
	users.Post("/", h.Create)
	users.Get("/", h.List)
	users.Get("/:id", h.Get)
	users.Get("/:id/followers", h.Followers)
	users.Get("/:id/following", h.Following)
	users.Get("/:id/posts", h.Posts)
	users.Get("/:id/feed", feed.Feed)
	users.Get("/:id/suggestions", feed.Suggestions)
}
