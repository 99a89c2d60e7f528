package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/internal/handlers"
	"socialgraph/services"
)

func SetupFollowRoutes(api fiber.Router, svc *services.Service) {
	h := &handlers.FollowHandler{Svc: svc}

	follows := api.Group("/follows")
	follows.Post("/", h.Follow)
	follows.Delete("/", h.Unfollow)
}

func SetupLikeRoutes(api fiber.Router, svc *services.Service) {
	h := &handlers.LikeHandler{Svc: svc}

	likes := api.Group("/likes")
	likes.Post("/", h.Like)
	likes.Delete("/", h.Unlike)
}
