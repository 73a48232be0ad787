package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/application/usecase"
	"github.com/mibarra/mibarra-api/internal/domain"
)

// BottleHandler maneja las peticiones HTTP para el catálogo de botellas (protegido).
type BottleHandler struct {
	uc *usecase.BottleUseCase
}

// NewBottleHandler construye el handler.
func NewBottleHandler(uc *usecase.BottleUseCase) *BottleHandler {
	return &BottleHandler{uc: uc}
}

// Create da de alta una botella en el catálogo.
func (h *BottleHandler) Create(c *fiber.Ctx) error {
	barID := GetBarID(c)
	if barID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "bar_id requerido"})
	}
	var in dto.CreateBottleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), barID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "capacidad o restante inválidos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la botella ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve el catálogo completo de la barra.
func (h *BottleHandler) List(c *fiber.Ctx) error {
	barID := GetBarID(c)
	if barID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "bar_id requerido"})
	}
	out, err := h.uc.List(c.UserContext(), barID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devuelve una botella de la barra.
func (h *BottleHandler) GetByID(c *fiber.Ctx) error {
	barID := GetBarID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), barID, id)
	if err != nil {
		return bottleError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock ajusta manualmente el stock de una botella.
func (h *BottleHandler) UpdateStock(c *fiber.Ctx) error {
	barID := GetBarID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStock(c.UserContext(), barID, id, GetUserID(c), in)
	if err != nil {
		return bottleError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una botella del catálogo.
func (h *BottleHandler) Delete(c *fiber.Ctx) error {
	barID := GetBarID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), barID, id); err != nil {
		return bottleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// bottleError mapea errores de dominio del catálogo a respuestas HTTP.
func bottleError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "botella no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la botella pertenece a otra barra"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores de stock inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
