package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	appRecon "github.com/mibarra/mibarra-api/internal/application/recon"
	"github.com/mibarra/mibarra-api/internal/domain"
)

// ReportHandler genera el reporte de pedido (protegido).
type ReportHandler struct {
	uc *appRecon.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appRecon.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get devuelve el reporte de pedido en JSON (texto + líneas).
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	barID := GetBarID(c)
	if barID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "bar_id requerido"})
	}
	out, err := h.uc.BuildReport(c.UserContext(), barID, time.Now())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetPDF devuelve el reporte de pedido como PDF descargable.
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	barID := GetBarID(c)
	if barID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "bar_id requerido"})
	}
	pdf, err := h.uc.BuildReportPDF(c.UserContext(), barID, time.Now())
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido.pdf"`)
	return c.Send(pdf)
}

func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "barra no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
