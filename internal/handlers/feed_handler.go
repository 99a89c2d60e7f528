package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/services"
)

type FeedHandler struct {
	Svc *services.Service
}

// Feed godoc
// @Summary      Reverse-chronological feed
// @Description  Posts written by the users this user follows, newest first. The user's own posts are never included.
// @Tags         feed
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Success      200   {array}   model.FeedPost
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/feed [get]
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	feed, err := h.Svc.Feed(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(feed)
}

// Suggestions godoc
// @Summary      Friend-of-friend suggestions
// @Description  Every user not yet followed, ranked by the number of 2-hop paths through followed users.
// @Tags         feed
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Success      200   {array}   model.Suggestion
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/suggestions [get]
func (h *FeedHandler) Suggestions(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	out, err := h.Svc.Suggest(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
