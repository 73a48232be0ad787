package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	appRecon "github.com/mibarra/mibarra-api/internal/application/recon"
	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/infrastructure/csvimport"
)

// SalesHandler maneja la importación de exports de ventas (protegido).
type SalesHandler struct {
	uc *appRecon.ImportSalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *appRecon.ImportSalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Import procesa un export de ventas contra el catálogo de la barra.
//
// Acepta dos formatos:
//   - multipart/form-data con el CSV en el campo "file" (y opcionalmente
//     "portion_overrides" como JSON)
//   - application/json con dto.ImportSalesRequest (filas ya extraídas)
func (h *SalesHandler) Import(c *fiber.Ctx) error {
	barID := GetBarID(c)
	if barID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "bar_id requerido"})
	}

	var in dto.ImportSalesRequest
	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' con el CSV es requerido"})
		}
		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
		}
		defer f.Close()
		rows, err := csvimport.ReadRows(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		in.Rows = rows
		if raw := c.FormValue("portion_overrides"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &in.PortionOverrides); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "portion_overrides debe ser un objeto JSON categoría -> oz"})
			}
		}
	} else {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	out, err := h.uc.ImportSales(c.UserContext(), barID, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrEmptyCatalog {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_CATALOG", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
