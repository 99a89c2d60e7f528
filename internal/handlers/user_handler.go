package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/dto"
	"socialgraph/services"
)

type UserHandler struct {
	Svc *services.Service
}

// Create godoc
// @Summary      Register a user
// @Description  Usernames are unique ignoring case.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserDTO  true  "payload"
// @Success      201   {object}  model.User
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateUserDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	user, err := h.Svc.CreateUser(body)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200   {array}   model.User
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Svc.ListUsers())
}

// Get godoc
// @Summary      Get a user with follower, following and post counts
// @Tags         users
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Success      200   {object}  model.UserProfile
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	profile, err := h.Svc.GetUser(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(profile)
}

// Followers godoc
// @Summary      Users following this user
// @Tags         users
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Success      200   {array}   model.User
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/followers [get]
func (h *UserHandler) Followers(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	users, err := h.Svc.Followers(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// Following godoc
// @Summary      Users this user follows
// @Tags         users
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Success      200   {array}   model.User
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/following [get]
func (h *UserHandler) Following(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	users, err := h.Svc.Following(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// Posts godoc
// @Summary      Posts by this user, newest first
// @Tags         users
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Success      200   {array}   model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/posts [get]
func (h *UserHandler) Posts(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	posts, err := h.Svc.PostsByUser(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(posts)
}
