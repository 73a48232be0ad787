package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mibarra/mibarra-api/internal/application/auth"
	appRecon "github.com/mibarra/mibarra-api/internal/application/recon"
	"github.com/mibarra/mibarra-api/internal/application/usecase"
	domainrecon "github.com/mibarra/mibarra-api/internal/domain/recon"
	infrapdf "github.com/mibarra/mibarra-api/internal/infrastructure/pdf"
	"github.com/mibarra/mibarra-api/internal/infrastructure/postgres"
	httpRouter "github.com/mibarra/mibarra-api/internal/interfaces/http"
	"github.com/mibarra/mibarra-api/pkg/config"
	"github.com/mibarra/mibarra-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	barRepo := postgres.NewBarRepository(pool)
	bottleRepo := postgres.NewBottleRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconCfg := domainrecon.DefaultConfig()
	reconCfg.MatchThreshold = cfg.Recon.MatchThreshold
	reconCfg.LowStockThreshold = cfg.Recon.LowStockThreshold

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.Recon.LowStockThreshold)

	authUC := auth.NewAuthUseCase(userRepo, barRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	barUC := usecase.NewBarUseCase(barRepo)
	bottleUC := usecase.NewBottleUseCase(bottleRepo, movementRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	importSalesUC := appRecon.NewImportSalesUseCase(txRunner, bottleRepo, userRepo, reconCfg)
	reportUC := appRecon.NewReportUseCase(bottleRepo, barRepo, pdfGenerator, reconCfg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BarUC:       barUC,
		BottleUC:    bottleUC,
		MovementUC:  movementUC,
		ImportSales: importSalesUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
