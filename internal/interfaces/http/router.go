package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-admin-api/internal/application/auth"
	"github.com/tu-usuario/tienda-admin-api/internal/application/sales"
	"github.com/tu-usuario/tienda-admin-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	UserUC      *usecase.UserUseCase
	RecordSale  *sales.RecordSaleUseCase
	InvoicePDF  *sales.PDFUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (protegido; autorizado por la tabla de permisos del rol)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/", RequirePermission(entity.ModuleInventory, ActionWrite), inventoryHandler.Add)
	inv.Get("/", RequirePermission(entity.ModuleInventory, ActionRead), inventoryHandler.List)
	// /search antes de /:id para que Fiber no lo capture como parámetro
	inv.Get("/search", RequirePermission(entity.ModuleInventory, ActionRead), inventoryHandler.Search)
	inv.Get("/:id", RequirePermission(entity.ModuleInventory, ActionRead), inventoryHandler.GetByID)
	inv.Put("/:id", RequirePermission(entity.ModuleInventory, ActionWrite), inventoryHandler.Update)
	inv.Delete("/:id", RequirePermission(entity.ModuleInventory, ActionDelete), inventoryHandler.Delete)

	// Ventas diarias (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.RecordSale, deps.InvoicePDF)
	salesGroup.Post("/", RequirePermission(entity.ModuleSales, ActionWrite), salesHandler.RecordSale)
	salesGroup.Get("/", RequirePermission(entity.ModuleSales, ActionRead), salesHandler.History)
	salesGroup.Get("/:saleId/invoice", RequirePermission(entity.ModuleSales, ActionRead), salesHandler.DownloadInvoice)

	// Control de usuarios (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequirePermission(entity.ModuleUsers, ActionWrite), userHandler.Create)
	users.Get("/", RequirePermission(entity.ModuleUsers, ActionRead), userHandler.GetEnabled)
	users.Get("/all", RequirePermission(entity.ModuleUsers, ActionRead), userHandler.GetAll)
	users.Get("/:id", RequirePermission(entity.ModuleUsers, ActionRead), userHandler.GetByID)
	users.Put("/:id", RequirePermission(entity.ModuleUsers, ActionWrite), userHandler.Update)
	users.Delete("/:id", RequirePermission(entity.ModuleUsers, ActionDelete), userHandler.Disable)
}
