package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/dto"
	"socialgraph/services"
)

type PostHandler struct {
	Svc *services.Service
}

// Create godoc
// @Summary      Create a post
// @Description  Hashtags are extracted from content. mediaType defaults to none.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePostDTO  true  "payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	post, err := h.Svc.CreatePost(body)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// List godoc
// @Summary      List every post, newest first
// @Tags         posts
// @Produce      json
// @Success      200   {array}   model.Post
// @Router       /api/posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Svc.ListPosts())
}

// Get godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id    path      string  true  "Post ID"
// @Success      200   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid post id")
	}
	post, err := h.Svc.GetPost(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(post)
}

// Delete godoc
// @Summary      Delete a post and its likes
// @Tags         posts
// @Produce      json
// @Param        id    path      string  true  "Post ID"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid post id")
	}
	if err := h.Svc.DeletePost(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "post deleted", ID: id.Hex()})
}

// Likers godoc
// @Summary      Users who liked the post
// @Tags         posts
// @Produce      json
// @Param        id    path      string  true  "Post ID"
// @Success      200   {array}   model.User
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/likes [get]
func (h *PostHandler) Likers(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid post id")
	}
	users, err := h.Svc.Likers(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}
