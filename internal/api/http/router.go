package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/http/handlers"
	"github.com/spec-kit/erp-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	APIPrefix      string
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	CRM            *handlers.CRMHandler
	HR             *handlers.HRHandler
	Inventory      *handlers.InventoryHandler
	Projects       *handlers.ProjectsHandler
	Finance        *handlers.FinanceHandler
	Procurement    *handlers.ProcurementHandler
	Content        *handlers.ContentHandler
	Chat           *handlers.ChatHandler
	Settings       *handlers.SettingsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(cfg.APIPrefix)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/change-password", cfg.Auth.ChangePassword)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users")
	users.Get("", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id/profile", cfg.Users.Update)
	users.Put("/:id/status", cfg.Users.SetStatus)
	users.Post("/:id/reset-password", cfg.Users.ResetPassword)
	users.Post("/:id/unlock-account", cfg.Users.UnlockAccount)
	users.Delete("/:id", cfg.Users.Delete)

	profile := protected.Group("/profile")
	profile.Get("", cfg.Users.MyProfile)
	profile.Put("", cfg.Users.UpdateMyProfile)
	profile.Get("/notifications", cfg.Users.GetPreferences)
	profile.Put("/notifications", cfg.Users.UpdatePreferences)

	// Static ticket routes are registered before the id routes so Fiber
	// does not swallow them as :id values.
	tickets := protected.Group("/tickets")
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/stats/summary", cfg.Tickets.Stats)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", cfg.Tickets.Delete)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)
	tickets.Get("/:id/comments", cfg.Tickets.ListComments)
	tickets.Post("/:id/attachments", cfg.Tickets.AddAttachment)
	tickets.Get("/:id/attachments", cfg.Tickets.ListAttachments)
	tickets.Get("/:id/history", cfg.Tickets.ListHistory)

	customers := protected.Group("/customers")
	customers.Post("", cfg.CRM.CreateCustomer)
	customers.Get("", cfg.CRM.ListCustomers)
	customers.Get("/:id", cfg.CRM.GetCustomer)
	customers.Put("/:id", cfg.CRM.UpdateCustomer)
	customers.Delete("/:id", cfg.CRM.DeleteCustomer)

	sales := protected.Group("/sales")
	sales.Post("", cfg.CRM.CreateLead)
	sales.Get("", cfg.CRM.ListLeads)
	sales.Get("/:id", cfg.CRM.GetLead)
	sales.Put("/:id", cfg.CRM.UpdateLead)
	sales.Delete("/:id", cfg.CRM.DeleteLead)

	employees := protected.Group("/employees")
	employees.Post("", cfg.HR.CreateEmployee)
	employees.Get("", cfg.HR.ListEmployees)
	employees.Get("/:id", cfg.HR.GetEmployee)
	employees.Put("/:id", cfg.HR.UpdateEmployee)
	employees.Delete("/:id", cfg.HR.DeleteEmployee)

	inventory := protected.Group("/inventory")
	inventory.Post("", cfg.Inventory.CreateItem)
	inventory.Get("", cfg.Inventory.ListItems)
	inventory.Get("/:id", cfg.Inventory.GetItem)
	inventory.Put("/:id", cfg.Inventory.UpdateItem)
	inventory.Delete("/:id", cfg.Inventory.DeleteItem)

	projects := protected.Group("/projects")
	projects.Post("", cfg.Projects.CreateProject)
	projects.Get("", cfg.Projects.ListProjects)
	projects.Get("/:id", cfg.Projects.GetProject)
	projects.Put("/:id", cfg.Projects.UpdateProject)
	projects.Delete("/:id", cfg.Projects.DeleteProject)

	workOrders := protected.Group("/manufacturing/work-orders")
	workOrders.Post("", cfg.Projects.CreateWorkOrder)
	workOrders.Get("", cfg.Projects.ListWorkOrders)
	workOrders.Get("/:id", cfg.Projects.GetWorkOrder)
	workOrders.Put("/:id", cfg.Projects.UpdateWorkOrder)
	workOrders.Delete("/:id", cfg.Projects.DeleteWorkOrder)

	finance := protected.Group("/finance")
	finance.Post("/transactions", cfg.Finance.CreateTransaction)
	finance.Get("/transactions", cfg.Finance.ListTransactions)
	finance.Get("/transactions/:id", cfg.Finance.GetTransaction)
	finance.Put("/transactions/:id", cfg.Finance.UpdateTransaction)
	finance.Delete("/transactions/:id", cfg.Finance.DeleteTransaction)
	finance.Post("/invoices", cfg.Finance.CreateInvoice)
	finance.Get("/invoices", cfg.Finance.ListInvoices)
	finance.Get("/invoices/:id", cfg.Finance.GetInvoice)
	finance.Put("/invoices/:id", cfg.Finance.UpdateInvoice)
	finance.Delete("/invoices/:id", cfg.Finance.DeleteInvoice)
	finance.Post("/expenses", cfg.Finance.CreateExpense)
	finance.Get("/expenses", cfg.Finance.ListExpenses)
	finance.Get("/expenses/:id", cfg.Finance.GetExpense)
	finance.Put("/expenses/:id", cfg.Finance.UpdateExpense)
	finance.Delete("/expenses/:id", cfg.Finance.DeleteExpense)

	vendors := protected.Group("/vendors")
	vendors.Post("", cfg.Procurement.CreateSupplier)
	vendors.Get("", cfg.Procurement.ListSuppliers)
	vendors.Get("/:id", cfg.Procurement.GetSupplier)
	vendors.Put("/:id", cfg.Procurement.UpdateSupplier)
	vendors.Delete("/:id", cfg.Procurement.DeleteSupplier)

	purchaseOrders := protected.Group("/purchase-orders")
	purchaseOrders.Post("", cfg.Procurement.CreatePurchaseOrder)
	purchaseOrders.Get("", cfg.Procurement.ListPurchaseOrders)
	purchaseOrders.Get("/:id", cfg.Procurement.GetPurchaseOrder)
	purchaseOrders.Put("/:id", cfg.Procurement.UpdatePurchaseOrder)
	purchaseOrders.Delete("/:id", cfg.Procurement.DeletePurchaseOrder)

	// Slug and categories routes are registered before the id routes so
	// Fiber does not swallow them as :id values.
	blogs := protected.Group("/blogs")
	blogs.Post("", cfg.Content.CreateBlog)
	blogs.Get("", cfg.Content.ListBlogs)
	blogs.Get("/categories", cfg.Content.BlogCategories)
	blogs.Get("/slug/:slug", cfg.Content.GetBlogBySlug)
	blogs.Get("/:id", cfg.Content.GetBlog)
	blogs.Put("/:id", cfg.Content.UpdateBlog)
	blogs.Delete("/:id", cfg.Content.DeleteBlog)

	docs := protected.Group("/docs")
	docs.Post("", cfg.Content.CreateDoc)
	docs.Get("", cfg.Content.ListDocs)
	docs.Get("/categories", cfg.Content.DocCategories)
	docs.Get("/slug/:slug", cfg.Content.GetDocBySlug)
	docs.Get("/:id", cfg.Content.GetDoc)
	docs.Put("/:id", cfg.Content.UpdateDoc)
	docs.Delete("/:id", cfg.Content.DeleteDoc)

	faqs := protected.Group("/faqs")
	faqs.Post("", cfg.Content.CreateFAQ)
	faqs.Get("", cfg.Content.ListFAQs)
	faqs.Get("/categories", cfg.Content.FAQCategories)
	faqs.Get("/:id", cfg.Content.GetFAQ)
	faqs.Put("/:id", cfg.Content.UpdateFAQ)
	faqs.Delete("/:id", cfg.Content.DeleteFAQ)

	chat := protected.Group("/chat")
	chat.Post("/messages", cfg.Chat.SendMessage)
	chat.Get("/messages", cfg.Chat.ListMessages)
	chat.Delete("/messages/:id", cfg.Chat.DeleteMessage)
	chat.Post("/typing-indicators", cfg.Chat.SetTyping)
	chat.Get("/typing-indicators", cfg.Chat.ListTyping)

	settings := protected.Group("/system-settings")
	settings.Get("", cfg.Settings.GetSettings)
	settings.Put("", cfg.Settings.UpdateSettings)
	settings.Post("/groups", cfg.Settings.CreateGroup)
	settings.Get("/groups", cfg.Settings.ListGroups)
	settings.Get("/groups/:id", cfg.Settings.GetGroup)
	settings.Delete("/groups/:id", cfg.Settings.DeleteGroup)

	protected.Get("/dashboard/stats", cfg.Dashboard.Stats)
}
