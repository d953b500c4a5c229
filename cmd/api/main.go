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

	"github.com/jhoicas/Negocios-api/internal/application/registry"
	"github.com/jhoicas/Negocios-api/internal/application/session"
	"github.com/jhoicas/Negocios-api/internal/application/team"
	"github.com/jhoicas/Negocios-api/internal/application/usecase"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Negocios-api/internal/interfaces/http"
	"github.com/jhoicas/Negocios-api/pkg/config"
	"github.com/jhoicas/Negocios-api/pkg/logger"
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

	// Totalidad del catálogo de permisos: cada rol legal de cada tipo de
	// negocio debe tener mapeo. En development un hueco detiene el arranque;
	// en producción se registra y el rol degrada a capacidades vacías.
	if err := authz.Verify(); err != nil {
		if cfg.App.IsDevelopment() {
			log.Fatal().Err(err).Msg("catálogo de permisos incompleto")
		}
		log.Error().Err(err).Msg("catálogo de permisos incompleto, los roles sin mapeo degradan a cero capacidades")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	sessionManager := session.NewManager(sessionRepo, userRepo, businessRepo, sessionTTL)

	registryUC := registry.NewRegistry(businessRepo, userRepo, txRunner)
	teamUC := team.NewTeam(userRepo, businessRepo, sessionManager)
	businessUC := usecase.NewBusinessUseCase(businessRepo, userRepo, sessionManager)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, customerRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

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
		Title:    "Negocios Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry:    registryUC,
		Sessions:    sessionManager,
		TeamUC:      teamUC,
		BusinessUC:  businessUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		OrderUC:     orderUC,
		DashboardUC: dashboardUC,
		JWT:         cfg.JWT,
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
