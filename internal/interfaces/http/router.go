package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcontreras/resort-ops/internal/application/auth"
	"github.com/dcontreras/resort-ops/internal/application/inventory"
	"github.com/dcontreras/resort-ops/internal/application/orders"
	"github.com/dcontreras/resort-ops/internal/application/usecase"
	"github.com/dcontreras/resort-ops/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	LocationUC  *usecase.LocationUseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	CategoryUC  *usecase.CategoryUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ArticleUC   *usecase.ArticleUseCase
	MovementUC  *inventory.MovementUseCase
	OrderUC     *orders.OrderUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	elevated := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Locations: villas y mesas (escritura elevada)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", elevated, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", elevated, locationHandler.Update)
	locations.Delete("/:id", elevated, locationHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Suppliers (escritura elevada)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", elevated, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", elevated, supplierHandler.Update)
	suppliers.Delete("/:id", elevated, supplierHandler.Delete)

	// Categories (escritura elevada)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", elevated, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", elevated, categoryHandler.Update)
	categories.Delete("/:id", elevated, categoryHandler.Delete)

	// Warehouses (escritura elevada)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", elevated, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", elevated, warehouseHandler.Update)

	// Articles (escritura elevada; consulta libre)
	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", elevated, articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", elevated, articleHandler.Update)
	articles.Get("/:id/stock", articleHandler.Stock)

	// Inventory: movimientos y stock (protegido)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	protected.Post("/movements", inventoryHandler.CreateMovement)
	protected.Get("/stock", inventoryHandler.LookupStock)
	articles.Get("/:id/movements", inventoryHandler.MovementsByArticle)
	warehouses.Get("/:id/movements", inventoryHandler.MovementsByWarehouse)

	// Orders (protegido; el candado de facturada se aplica en el caso de uso)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Post("/:id/items", orderHandler.AddItem)
	ordersGroup.Put("/:id/items/:itemId", orderHandler.UpdateItem)
	ordersGroup.Delete("/:id/items/:itemId", orderHandler.RemoveItem)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)
}
