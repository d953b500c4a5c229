package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocios-api/internal/application/registry"
	"github.com/jhoicas/Negocios-api/internal/application/session"
	"github.com/jhoicas/Negocios-api/internal/application/team"
	"github.com/jhoicas/Negocios-api/internal/application/usecase"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry    *registry.Registry
	Sessions    *session.Manager
	TeamUC      *team.Team
	BusinessUC  *usecase.BusinessUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	OrderUC     *usecase.OrderUseCase
	DashboardUC *usecase.DashboardUseCase
	JWT         config.JWTConfig
}

// Router registra las rutas de la API. Cada ruta protegida declara su
// Requirement con Guard; la decisión siempre pasa por authz.Allow.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Registry, deps.Sessions, deps.JWT)
	authGroup.Post("/business", authHandler.CreateBusiness)
	authGroup.Post("/enroll", authHandler.Enroll)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Get("/roles", authHandler.Roles)

	// Rutas protegidas (Bearer Token + sesión restaurada)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret, deps.Sessions))
	protected.Post("/auth/signout", authHandler.SignOut)
	protected.Get("/auth/me", authHandler.Me)

	// Business (ajustes del negocio)
	business := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.Registry)
	business.Get("/", Guard(authz.RequireNone()), businessHandler.Get)
	business.Put("/name", Guard(authz.RequireCapability(authz.CapManageSettings)), businessHandler.Rename)
	business.Put("/type", Guard(authz.RequireOwner()), businessHandler.ChangeType)
	business.Put("/secret", Guard(authz.RequireOwner()), businessHandler.RotateSecret)

	// Team (personal)
	teamGroup := protected.Group("/team", Guard(authz.RequireCapability(authz.CapManageTeam)))
	teamHandler := NewTeamHandler(deps.TeamUC)
	teamGroup.Get("/", teamHandler.List)
	teamGroup.Put("/:id/role", teamHandler.ChangeRole)
	teamGroup.Put("/:id/status", teamHandler.ChangeStatus)
	teamGroup.Delete("/:id", teamHandler.Remove)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", Guard(authz.RequireNone()), productHandler.List)
	products.Get("/:id", Guard(authz.RequireNone()), productHandler.GetByID)
	products.Post("/", Guard(authz.RequireCapability(authz.CapAddEditDeleteProducts)), productHandler.Create)
	products.Put("/:id", Guard(authz.RequireCapability(authz.CapAddEditDeleteProducts)), productHandler.Update)
	products.Delete("/:id", Guard(authz.RequireCapability(authz.CapAddEditDeleteProducts)), productHandler.Delete)

	// Customers
	customers := protected.Group("/customers", Guard(authz.RequireCapability(authz.CapManageCustomers)))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Orders
	orders := protected.Group("/orders", Guard(authz.RequireCapability(authz.CapViewAddEditOrders)))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", Guard(authz.RequireCapability(authz.CapViewBasicAnalytics)), dashboardHandler.Summary)
	dashboard.Get("/financial", Guard(authz.RequireCapability(authz.CapFinancialReports)), dashboardHandler.Financial)
}
