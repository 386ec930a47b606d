package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cooltech/credman-api/internal/application/admin"
	"github.com/cooltech/credman-api/internal/application/auth"
	"github.com/cooltech/credman-api/internal/application/credential"
	"github.com/cooltech/credman-api/internal/application/seed"
	"github.com/cooltech/credman-api/internal/infrastructure/mongodb"
	httpRouter "github.com/cooltech/credman-api/internal/interfaces/http"
	"github.com/cooltech/credman-api/pkg/config"
	"github.com/cooltech/credman-api/pkg/logger"
	"github.com/cooltech/credman-api/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin MONGO_URI o JWT_SECRET no hay nada que servir.
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

	client, err := mongodb.Connect(cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	userRepo := mongodb.NewUserRepository(db)
	orgRepo := mongodb.NewOrgUnitRepository(db)
	divRepo := mongodb.NewDivisionRepository(db)
	credRepo := mongodb.NewCredentialRepository(db)

	// Seed único de arranque: unidades y divisiones iniciales si la base
	// está vacía. Idempotente.
	if err := seed.NewSeeder(orgRepo, divRepo, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("seed inicial")
	}

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, divRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	credUC := credential.NewCredentialUseCase(credRepo, divRepo)
	adminUC := admin.NewAdminUseCase(userRepo, orgRepo, divRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Credman API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CredentialUC: credUC,
		AdminUC:      adminUC,
		Users:        userRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	// Cliente web embebido: se monta al final para que /api y /docs
	// resuelvan primero.
	staticFS, err := web.StaticFS()
	if err != nil {
		log.Fatal().Err(err).Msg("archivos estáticos del cliente")
	}
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(staticFS),
		Index: "index.html",
	}))

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
