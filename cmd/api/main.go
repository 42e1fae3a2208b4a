package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastellr/bizpulse-api/internal/application/auth"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	infraai "github.com/jcastellr/bizpulse-api/internal/infrastructure/ai"
	infrapdf "github.com/jcastellr/bizpulse-api/internal/infrastructure/pdf"
	"github.com/jcastellr/bizpulse-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastellr/bizpulse-api/internal/interfaces/http"
	"github.com/jcastellr/bizpulse-api/internal/interfaces/ws"
	"github.com/jcastellr/bizpulse-api/pkg/config"
	"github.com/jcastellr/bizpulse-api/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := ws.NewHub(log.Zerolog())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, hub)
	importUC := usecase.NewImportUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
	insightUC := usecase.NewInsightUseCase(geminiSvc, analyticsUC, func(err error) {
		log.Warn().Err(err).Msg("colaborador de insights no disponible, usando fallback")
	})

	reportGen := infrapdf.NewInventoryReportGenerator()
	reportUC := usecase.NewReportUseCase(reportGen, productRepo, userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BizPulse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ImportUC:    importUC,
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		AnalyticsUC: analyticsUC,
		InsightUC:   insightUC,
		ReportUC:    reportUC,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Zerolog(),
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
