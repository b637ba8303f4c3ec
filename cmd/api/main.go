package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/fletes-pro/internal/application/auth"
	"github.com/tu-usuario/fletes-pro/internal/application/documents"
	"github.com/tu-usuario/fletes-pro/internal/application/finance"
	"github.com/tu-usuario/fletes-pro/internal/application/orders"
	"github.com/tu-usuario/fletes-pro/internal/application/usecase"
	"github.com/tu-usuario/fletes-pro/internal/infrastructure/collections"
	"github.com/tu-usuario/fletes-pro/internal/infrastructure/guia"
	infrapdf "github.com/tu-usuario/fletes-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/fletes-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/fletes-pro/internal/interfaces/http"
	"github.com/tu-usuario/fletes-pro/pkg/config"
	"github.com/tu-usuario/fletes-pro/pkg/logger"
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

	store := postgres.NewCollectionStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("esquema de colecciones")
	}

	orderRepo := collections.NewOrderRepository(store)
	clientRepo := collections.NewClientRepository(store)
	sellerRepo := collections.NewSellerRepository(store)
	plantRepo := collections.NewPlantRepository(store)
	fleetRepo := collections.NewFleetRepository(store)
	userRepo := collections.NewUserRepository(store)

	orderUC := orders.NewLifecycleUseCase(orderRepo, clientRepo, sellerRepo, plantRepo, fleetRepo, log)
	financeUC := finance.NewReportUseCase(orderRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	sellerUC := usecase.NewSellerUseCase(sellerRepo)
	plantUC := usecase.NewPlantUseCase(plantRepo)
	fleetUC := usecase.NewFleetUseCase(fleetRepo)

	// Documentos imprimibles: nota de entrega en PDF y guía de traslado en XML
	pdfGenerator := infrapdf.NewMarotoDeliveryNoteGenerator()
	xmlBuilder := guia.NewXMLBuilderService()
	documentUC := documents.NewDocumentUseCase(orderRepo, cfg.Company, pdfGenerator, xmlBuilder)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fletes Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:    orderUC,
		DocumentUC: documentUC,
		FinanceUC:  financeUC,
		ClientUC:   clientUC,
		SellerUC:   sellerUC,
		PlantUC:    plantUC,
		FleetUC:    fleetUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
