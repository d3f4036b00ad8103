package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/tienda-admin-api/internal/application/auth"
	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/application/sales"
	"github.com/tu-usuario/tienda-admin-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/tienda-admin-api/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/tienda-admin-api/internal/interfaces/http"
	"github.com/tu-usuario/tienda-admin-api/pkg/config"
	"github.com/tu-usuario/tienda-admin-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	// Estado en memoria: vive lo que vive el proceso.
	productRepo := memory.NewProductRepository()
	saleRepo := memory.NewSaleRepository()
	userRepo := memory.NewUserRepository()
	txRunner := memory.NewTxRunner(productRepo, saleRepo)

	inventoryUC := usecase.NewInventoryUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, saleRepo)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := sales.NewPDFUseCase(saleRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Admin inicial: sin él nadie puede iniciar sesión en un proceso recién arrancado.
	if cfg.Seed.AdminPassword != "" {
		_, err := userUC.Create(dto.CreateUserRequest{
			FullName: cfg.Seed.AdminName,
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Roles:    []string{entity.RoleAdmin},
		})
		if err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin inicial")
		}
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("usuario admin inicial creado")
	} else {
		log.Warn().Msg("SEED_ADMIN_PASSWORD vacío: no se creó el admin inicial")
	}

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
		InventoryUC: inventoryUC,
		UserUC:      userUC,
		RecordSale:  recordSaleUC,
		InvoicePDF:  invoicePDFUC,
		AuthUC:      authUC,
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
