package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mibarra/mibarra-api/internal/application/auth"
	appRecon "github.com/mibarra/mibarra-api/internal/application/recon"
	"github.com/mibarra/mibarra-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BarUC       *usecase.BarUseCase
	BottleUC    *usecase.BottleUseCase
	MovementUC  *usecase.MovementUseCase
	ImportSales *appRecon.ImportSalesUseCase
	ReportUC    *appRecon.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Barra del usuario (protegido)
	barHandler := NewBarHandler(deps.BarUC)
	protected.Get("/bars", barHandler.Get)

	// Catálogo de botellas (protegido)
	bottles := protected.Group("/bottles")
	bottleHandler := NewBottleHandler(deps.BottleUC)
	bottles.Post("/", bottleHandler.Create)
	bottles.Get("/", bottleHandler.List)
	bottles.Get("/:id", bottleHandler.GetByID)
	bottles.Put("/:id/stock", bottleHandler.UpdateStock)
	bottles.Delete("/:id", bottleHandler.Delete)

	// Importación de ventas (protegido)
	salesHandler := NewSalesHandler(deps.ImportSales)
	protected.Post("/sales/import", salesHandler.Import)

	// Reporte de pedido (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/report", reportHandler.Get)
	protected.Get("/report/pdf", reportHandler.GetPDF)

	// Bitácora de movimientos (protegido)
	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Get("/movements", movementHandler.List)
}
