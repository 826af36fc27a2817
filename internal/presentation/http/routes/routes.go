package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/config"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/handler"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/middleware"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/utils"
)

// Handlers groups all HTTP handlers for route registration
type Handlers struct {
	Auth      *handler.AuthHandler
	Inventory *handler.InventoryHandler
	Stock     *handler.StockHandler
	Sales     *handler.SalesHandler
	AMC       *handler.AMCHandler
	Workshop  *handler.WorkshopHandler
	HR        *handler.HRHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps carries the shared dependencies the router needs
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup configures the Gin engine with all middleware and routes
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	if !deps.Cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"app":    deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")

	registerAuthRoutes(v1, h)

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	idempotency := middleware.NewIdempotencyStore()

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTManager))
	protected.Use(rateLimiter.Middleware())
	protected.Use(idempotency.Middleware())

	registerAdminRequestRoutes(protected, h)
	registerInventoryRoutes(protected, h)
	registerStockRoutes(protected, h)
	registerSalesRoutes(protected, h)
	registerAMCRoutes(protected, h)
	registerWorkshopRoutes(protected, h)
	registerHRRoutes(protected, h)
	registerUserRoutes(protected, h)
	registerMiscRoutes(protected, h)

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, h *Handlers) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/register/admin", h.Auth.RegisterAdmin)
		auth.POST("/register/staff", h.Auth.RegisterStaff)
		auth.POST("/admin-requests", h.Auth.RequestAdminAccess)
		auth.GET("/first-user", h.Auth.FirstUser)
	}
}

func registerAdminRequestRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/auth/me", h.Auth.Me)

	requests := rg.Group("/admin-requests")
	requests.Use(middleware.RequireRole(store.RoleAdmin))
	{
		requests.GET("", h.Auth.ListAdminRequests)
		requests.POST("/:id/approve", h.Auth.ApproveAdminRequest)
		requests.POST("/:id/reject", h.Auth.RejectAdminRequest)
	}
}

func registerInventoryRoutes(rg *gin.RouterGroup, h *Handlers) {
	items := rg.Group("/items")
	{
		items.GET("", middleware.RequirePermission("inventory:read"), h.Inventory.ListItems)
		items.GET("/:id", middleware.RequirePermission("inventory:read"), h.Inventory.GetItem)
		items.GET("/export", middleware.RequirePermission("reports:read"), h.Inventory.ExportItems)
		items.POST("", middleware.RequirePermission("inventory:write"), h.Inventory.CreateItem)
		items.POST("/import", middleware.RequirePermission("inventory:write"), h.Inventory.ImportItems)
		items.PUT("/:id", middleware.RequirePermission("inventory:write"), h.Inventory.UpdateItem)
		items.DELETE("/:id", middleware.RequirePermission("inventory:write"), h.Inventory.DeleteItem)
	}

	addons := rg.Group("/addons")
	{
		addons.GET("", middleware.RequirePermission("inventory:read"), h.Inventory.ListAddons)
		addons.POST("", middleware.RequirePermission("inventory:write"), h.Inventory.CreateAddon)
		addons.PUT("/:id", middleware.RequirePermission("inventory:write"), h.Inventory.UpdateAddon)
		addons.DELETE("/:id", middleware.RequirePermission("inventory:write"), h.Inventory.DeleteAddon)
	}

	combinations := rg.Group("/combinations")
	{
		combinations.GET("", middleware.RequirePermission("inventory:read"), h.Inventory.ListCombinations)
		combinations.POST("", middleware.RequirePermission("inventory:write"), h.Inventory.CreateCombination)
		combinations.DELETE("/:id", middleware.RequirePermission("inventory:write"), h.Inventory.DeleteCombination)
	}
}

func registerStockRoutes(rg *gin.RouterGroup, h *Handlers) {
	stock := rg.Group("/stock")
	{
		stock.POST("/issue", middleware.RequirePermission("stock:issue"), h.Stock.IssueStock)
		stock.POST("/return", middleware.RequirePermission("stock:return"), h.Stock.ReturnStock)
		stock.GET("/available/:id", middleware.RequirePermission("inventory:read"), h.Stock.AvailableStock)
		stock.GET("/mine", h.Stock.MyStock)
		stock.GET("/user/:userId", middleware.RequirePermission("inventory:read"), h.Stock.UserStock)
		stock.GET("/low", middleware.RequirePermission("inventory:read"), h.Stock.LowStockItems)
		stock.GET("/valuation", middleware.RequirePermission("reports:read"), h.Stock.Valuation)
		stock.GET("/summary", middleware.RequirePermission("reports:read"), h.Stock.SummaryByCategory)
		stock.GET("/transactions", middleware.RequirePermission("inventory:read"), h.Stock.ListTransactions)
		stock.GET("/transactions/export", middleware.RequirePermission("reports:read"), h.Stock.ExportTransactions)
	}
}

func registerSalesRoutes(rg *gin.RouterGroup, h *Handlers) {
	estimates := rg.Group("/estimates")
	{
		estimates.GET("", middleware.RequirePermission("estimates:read"), h.Sales.ListEstimates)
		estimates.GET("/:id", middleware.RequirePermission("estimates:read"), h.Sales.GetEstimate)
		estimates.POST("", middleware.RequirePermission("estimates:write"), h.Sales.CreateEstimate)
		estimates.PUT("/:id", middleware.RequirePermission("estimates:write"), h.Sales.UpdateEstimate)
		estimates.DELETE("/:id", middleware.RequirePermission("estimates:write"), h.Sales.DeleteEstimate)
		estimates.POST("/:id/convert", middleware.RequirePermission("orders:write"), h.Sales.ConvertEstimate)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", middleware.RequirePermission("orders:read"), h.Sales.ListOrders)
		orders.GET("/:id", middleware.RequirePermission("orders:read"), h.Sales.GetOrder)
		orders.POST("", middleware.RequirePermission("orders:write"), h.Sales.CreateOrder)
		orders.PATCH("/:id/status", middleware.RequirePermission("orders:write"), h.Sales.UpdateOrderStatus)
		orders.DELETE("/:id", middleware.RequirePermission("orders:write"), h.Sales.DeleteOrder)
		orders.POST("/:id/convert-amc", middleware.RequirePermission("amc:write"), h.AMC.ConvertOrder)
	}
}

func registerAMCRoutes(rg *gin.RouterGroup, h *Handlers) {
	amc := rg.Group("/amc")
	{
		amc.GET("", middleware.RequirePermission("amc:read"), h.AMC.ListAMCs)
		amc.GET("/renewals", middleware.RequirePermission("amc:read"), h.AMC.UpcomingRenewals)
		amc.GET("/qr/:code", middleware.RequirePermission("amc:read"), h.AMC.LookupByQRCode)
		amc.GET("/:id", middleware.RequirePermission("amc:read"), h.AMC.GetAMC)
		amc.POST("", middleware.RequirePermission("amc:write"), h.AMC.CreateAMC)
		amc.POST("/:id/renew", middleware.RequirePermission("amc:write"), h.AMC.RenewAMC)
		amc.POST("/:id/service", middleware.RequirePermission("amc:write"), h.AMC.AddServiceRecord)
		amc.POST("/:id/reminders/:index/sent", middleware.RequirePermission("amc:write"), h.AMC.MarkReminderSent)
	}
}

func registerWorkshopRoutes(rg *gin.RouterGroup, h *Handlers) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", middleware.RequirePermission("jobs:read"), h.Workshop.ListJobs)
		jobs.GET("/:id", middleware.RequirePermission("jobs:read"), h.Workshop.GetJob)
		jobs.POST("", middleware.RequirePermission("jobs:write"), h.Workshop.CreateJob)
		jobs.PATCH("/:id/status", middleware.RequirePermission("jobs:write"), h.Workshop.UpdateJobStatus)
		jobs.DELETE("/:id", middleware.RequirePermission("jobs:write"), h.Workshop.DeleteJob)
	}

	rma := rg.Group("/rma")
	{
		rma.GET("", middleware.RequirePermission("rma:read"), h.Workshop.ListRMAs)
		rma.GET("/:id", middleware.RequirePermission("rma:read"), h.Workshop.GetRMA)
		rma.POST("", middleware.RequirePermission("rma:write"), h.Workshop.CreateRMA)
		rma.POST("/:id/advance", middleware.RequirePermission("rma:write"), h.Workshop.AdvanceRMA)
		rma.PATCH("/:id/status", middleware.RequirePermission("rma:write"), h.Workshop.UpdateRMAStatus)
		rma.POST("/:id/otp", middleware.RequirePermission("rma:write"), h.Workshop.GenerateOTP)
		rma.POST("/:id/otp/verify", middleware.RequirePermission("rma:write"), h.Workshop.VerifyOTP)
		rma.POST("/:id/deliver", middleware.RequirePermission("rma:write"), h.Workshop.DeliverRMA)
	}
}

func registerHRRoutes(rg *gin.RouterGroup, h *Handlers) {
	leave := rg.Group("/leave")
	{
		leave.GET("", middleware.RequirePermission("leave:read"), h.HR.ListLeaves)
		leave.GET("/preview", middleware.RequirePermission("leave:read"), h.HR.PreviewLeaveDays)
		leave.GET("/:id", middleware.RequirePermission("leave:read"), h.HR.GetLeave)
		leave.POST("", middleware.RequirePermission("leave:write"), h.HR.ApplyLeave)
		leave.POST("/:id/approve", middleware.RequirePermission("leave:approve"), h.HR.ApproveLeave)
		leave.POST("/:id/reject", middleware.RequirePermission("leave:approve"), h.HR.RejectLeave)
		leave.PUT("/balance/:userId", middleware.RequireRole(store.RoleAdmin), h.HR.SetLeaveBalance)
	}

	holidays := rg.Group("/holidays")
	{
		holidays.GET("", h.HR.ListHolidays)
		holidays.POST("", middleware.RequireRole(store.RoleAdmin), h.HR.AddHoliday)
		holidays.DELETE("/:id", middleware.RequireRole(store.RoleAdmin), h.HR.RemoveHoliday)
	}
}

func registerUserRoutes(rg *gin.RouterGroup, h *Handlers) {
	users := rg.Group("/users")
	{
		users.GET("", middleware.RequirePermission("users:read"), h.User.ListUsers)
		users.GET("/:id", middleware.RequirePermission("users:read"), h.User.GetUser)
		users.POST("", middleware.RequirePermission("users:write"), h.User.CreateUser)
		users.PUT("/:id", middleware.RequirePermission("users:write"), h.User.UpdateUser)
		users.DELETE("/:id", middleware.RequirePermission("users:write"), h.User.DeleteUser)
	}

	roles := rg.Group("/roles")
	roles.Use(middleware.RequireRole(store.RoleAdmin))
	{
		roles.GET("", h.User.ListRoles)
		roles.POST("", h.User.CreateRole)
		roles.PUT("/:id/permissions", h.User.UpdateRolePermissions)
	}

	departments := rg.Group("/departments")
	{
		departments.GET("", h.User.ListDepartments)
		departments.POST("", middleware.RequireRole(store.RoleAdmin), h.User.CreateDepartment)
		departments.DELETE("/:id", middleware.RequireRole(store.RoleAdmin), h.User.DeleteDepartment)
	}
}

func registerMiscRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/dashboard", middleware.RequirePermission("reports:read"), h.Dashboard.Summary)
	rg.GET("/export/:collection", middleware.RequirePermission("reports:read"), h.Inventory.ExportCollection)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.User.ListNotifications)
		notifications.POST("/:id/read", h.User.MarkNotificationRead)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.Settings.List)
		settings.GET("/:key", h.Settings.Get)
		settings.PUT("/:key", middleware.RequireRole(store.RoleAdmin), h.Settings.Put)
		settings.DELETE("/:key", middleware.RequireRole(store.RoleAdmin), h.Settings.Delete)
	}
}
