package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialgraph/bootstrap"
	"socialgraph/dto"
	"socialgraph/services"
)

// AdminHandler serves the test-only maintenance routes.
type AdminHandler struct {
	Svc *services.Service
}

// Reset godoc
// @Summary      Empty the store
// @Tags         test
// @Produce      json
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/test/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	h.Svc.Reset()
	return c.JSON(dto.MessageResponse{Message: "store reset"})
}

// Seed godoc
// @Summary      Reset the store and load the demo dataset
// @Description  Builds the dataset aside and swaps it in at once.
// @Tags         test
// @Produce      json
// @Success      200   {object}  dto.SeedResponse
// @Router       /api/test/seed [post]
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	res, err := bootstrap.Reseed(h.Svc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
