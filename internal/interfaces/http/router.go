package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/analytics"
	"github.com/jhoicas/portal-b2b/internal/application/auth"
	"github.com/jhoicas/portal-b2b/internal/application/ordering"
	"github.com/jhoicas/portal-b2b/internal/application/session"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// HealthCheck verifica uma dependência (banco, Redis).
type HealthCheck func(ctx context.Context) error

// RouterDeps dependências do router.
type RouterDeps struct {
	Sessions    *session.Service
	AuthUC      *auth.AuthUseCase
	ProfileUC   *usecase.ProfileUseCase
	CartUC      *ordering.CartUseCase
	CheckoutUC  *ordering.CheckoutUseCase
	OrderUC     *ordering.OrderUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SettingsUC  *usecase.SettingsUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	Health      map[string]HealthCheck
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.Health))

	api := app.Group("/api")

	// Auth (público; logout exige sessão)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/logout", AuthMiddleware(deps.Sessions), authHandler.Logout)

	// Sessão e guard
	sessionHandler := NewSessionHandler()
	sessionGroup := api.Group("/session", OptionalAuth(deps.Sessions))
	sessionGroup.Get("/", sessionHandler.Get)
	sessionGroup.Get("/guard", sessionHandler.Guard)

	// Perfil: qualquer usuário logado, inclusive pendente
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile := api.Group("/profile", AuthMiddleware(deps.Sessions))
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Put("/password", profileHandler.ChangePassword)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings/options", AuthMiddleware(deps.Sessions), settingsHandler.Options)

	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	// Área do cliente
	client := api.Group("/app", OptionalAuth(deps.Sessions), SessionGuard(session.AreaApp))
	client.Get("/products", productHandler.Catalog)
	client.Get("/products/:id", productHandler.CatalogGet)
	client.Get("/categories", categoryHandler.List)

	cartHandler := NewCartHandler(deps.CartUC, deps.CheckoutUC)
	client.Get("/cart", cartHandler.Get)
	client.Delete("/cart", cartHandler.Clear)
	client.Post("/cart/items", cartHandler.AddItem)
	client.Patch("/cart/items/:productId", cartHandler.UpdateItem)
	client.Delete("/cart/items/:productId", cartHandler.RemoveItem)
	client.Post("/checkout", cartHandler.Checkout)

	client.Get("/orders", orderHandler.ListMine)
	client.Get("/orders/:id", orderHandler.Get)
	client.Get("/orders/:id/pdf", orderHandler.PDF)

	// Back-office
	admin := api.Group("/admin", OptionalAuth(deps.Sessions), SessionGuard(session.AreaAdmin))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	admin.Get("/dashboard", dashboardHandler.GetSummary)
	admin.Get("/reports", dashboardHandler.Report)

	orders := admin.Group("/orders")
	orders.Get("/", orderHandler.AdminList)
	orders.Get("/board", orderHandler.Board)
	orders.Post("/board/moves", orderHandler.Moves)
	orders.Get("/:id", orderHandler.Get)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Patch("/:id/status", orderHandler.ChangeStatus)
	orders.Patch("/:id/freight", orderHandler.ChangeFreight)

	clientHandler := NewClientHandler(deps.ClientUC)
	admin.Get("/cnpj/:cnpj", clientHandler.LookupCNPJ)
	clients := admin.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Post("/:id/password-reset", clientHandler.SendPasswordReset)

	products := admin.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/images", productHandler.UploadImages)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/images", productHandler.AttachImages)

	categories := admin.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Rename)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Post("/:id/subcategories", categoryHandler.AddSubcategory)
	categories.Delete("/:id/subcategories/:name", categoryHandler.RemoveSubcategory)

	settings := admin.Group("/settings")
	settings.Get("/", settingsHandler.Get)
	settings.Post("/:list/options", settingsHandler.AddOption)
	settings.Patch("/:list/options/:optionId/toggle", settingsHandler.ToggleOption)

	// Usuários: só admin
	userHandler := NewUserHandler(deps.UserUC)
	users := admin.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Patch("/:id/status", userHandler.SetStatus)
	users.Patch("/:id/role", userHandler.SetRole)
}

func healthHandler(checks map[string]HealthCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status := fiber.StatusOK
		result := fiber.Map{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				result[name] = err.Error()
				status = fiber.StatusServiceUnavailable
				continue
			}
			result[name] = "ok"
		}
		overall := "ok"
		if status != fiber.StatusOK {
			overall = "degraded"
		}
		return c.Status(status).JSON(fiber.Map{"status": overall, "checks": result})
	}
}
