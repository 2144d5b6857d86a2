package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/erp-backend/internal/api/http"
	"github.com/spec-kit/erp-backend/internal/api/http/handlers"
	"github.com/spec-kit/erp-backend/internal/auth"
	"github.com/spec-kit/erp-backend/internal/config"
	"github.com/spec-kit/erp-backend/internal/events"
	"github.com/spec-kit/erp-backend/internal/observability"
	"github.com/spec-kit/erp-backend/internal/persistence"
	"github.com/spec-kit/erp-backend/internal/repository"
	"github.com/spec-kit/erp-backend/internal/service"
	"github.com/spec-kit/erp-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rds := persistence.NewRedis(cfg.Redis, logger)
	defer rds.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	preferenceRepo := repository.NewPreferenceRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	commentRepo := repository.NewTicketCommentRepository(pool)
	attachmentRepo := repository.NewTicketAttachmentRepository(pool)
	historyRepo := repository.NewTicketHistoryRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	leadRepo := repository.NewSalesLeadRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	inventoryRepo := repository.NewInventoryRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	workOrderRepo := repository.NewWorkOrderRepository(pool)
	financeRepo := repository.NewFinanceRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	docRepo := repository.NewDocRepository(pool)
	faqRepo := repository.NewFAQRepository(pool)
	chatRepo := repository.NewChatRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
	})
	userService := service.NewUserService(userRepo, profileRepo, preferenceRepo)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:     ticketRepo,
		CommentRepo:    commentRepo,
		AttachmentRepo: attachmentRepo,
		HistoryRepo:    historyRepo,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	chatService := service.NewChatService(chatRepo, profileRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(
		dashboardRepo,
		rds.Client,
		time.Duration(cfg.App.DashboardCacheSeconds)*time.Second,
		logger,
	)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, profileRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics,
		time.Duration(cfg.App.RequestTimeoutSeconds)*time.Second)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		APIPrefix:      cfg.App.APIPrefix,
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rds),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService, authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		CRM:            handlers.NewCRMHandler(customerRepo, leadRepo),
		HR:             handlers.NewHRHandler(employeeRepo),
		Inventory:      handlers.NewInventoryHandler(inventoryRepo),
		Projects:       handlers.NewProjectsHandler(projectRepo, workOrderRepo),
		Finance:        handlers.NewFinanceHandler(financeRepo),
		Procurement:    handlers.NewProcurementHandler(supplierRepo, purchaseOrderRepo),
		Content:        handlers.NewContentHandler(blogRepo, docRepo, faqRepo),
		Chat:           handlers.NewChatHandler(chatService),
		Settings:       handlers.NewSettingsHandler(settingsService, settingsRepo),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
