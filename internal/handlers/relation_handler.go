package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/dto"
	"socialgraph/services"
)

type FollowHandler struct {
	Svc *services.Service
}

// Follow godoc
// @Summary      Follow a user
// @Tags         follows
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FollowRequestDTO  true  "payload"
// @Success      201   {object}  model.Follow
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/follows [post]
func (h *FollowHandler) Follow(c *fiber.Ctx) error {
	var body dto.FollowRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	edge, err := h.Svc.Follow(body)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(edge)
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FollowRequestDTO  true  "payload"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/follows [delete]
func (h *FollowHandler) Unfollow(c *fiber.Ctx) error {
	var body dto.FollowRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.Svc.Unfollow(body); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "unfollowed"})
}

type LikeHandler struct {
	Svc *services.Service
}

// Like godoc
// @Summary      Like a post
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LikeRequestDTO  true  "payload"
// @Success      201   {object}  dto.LikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/likes [post]
func (h *LikeHandler) Like(c *fiber.Ctx) error {
	var body dto.LikeRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	count, err := h.Svc.Like(body)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LikeResponse{
		PostID:     body.PostID,
		LikesCount: count,
		IsLiked:    true,
	})
}

// Unlike godoc
// @Summary      Remove a like
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LikeRequestDTO  true  "payload"
// @Success      200   {object}  dto.LikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/likes [delete]
func (h *LikeHandler) Unlike(c *fiber.Ctx) error {
	var body dto.LikeRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	count, err := h.Svc.Unlike(body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LikeResponse{
		PostID:     body.PostID,
		LikesCount: count,
		IsLiked:    false,
	})
}
