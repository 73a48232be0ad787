package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/application/usecase"
	"github.com/mibarra/mibarra-api/internal/domain"
)

// BarHandler expone la barra del usuario autenticado (protegido).
type BarHandler struct {
	uc *usecase.BarUseCase
}

// NewBarHandler construye el handler.
func NewBarHandler(uc *usecase.BarUseCase) *BarHandler {
	return &BarHandler{uc: uc}
}

// Get devuelve la barra del usuario autenticado.
func (h *BarHandler) Get(c *fiber.Ctx) error {
	barID := GetBarID(c)
	if barID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "bar_id requerido"})
	}
	out, err := h.uc.Get(c.UserContext(), barID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
