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
	"github.com/shopspring/decimal"

	appanalytics "github.com/VeerDubey/milk-management-91-sub004/internal/application/analytics"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/messaging"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/orders"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/pricing"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/tracksheet"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/usecase"
	"github.com/VeerDubey/milk-management-91-sub004/internal/infrastructure/postgres"
	infraredis "github.com/VeerDubey/milk-management-91-sub004/internal/infrastructure/redis"
	httpRouter "github.com/VeerDubey/milk-management-91-sub004/internal/interfaces/http"
	"github.com/VeerDubey/milk-management-91-sub004/pkg/config"
	"github.com/VeerDubey/milk-management-91-sub004/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	overrideRepo := postgres.NewRateOverrideRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	sheetRepo := postgres.NewTrackSheetRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Stock ledger collections: PostgreSQL jsonb by default, Redis when
	// STOCK_STORE=redis.
	var kv appstock.KVStore
	switch cfg.Stock.Store {
	case "redis":
		redisKV, err := infraredis.NewKVStore(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection")
		}
		defer redisKV.Close()
		kv = redisKV
	default:
		kv = postgres.NewKVStore(pool)
	}
	log.Info().Str("stock_store", cfg.Stock.Store).Msg("stock ledger store selected")

	ledger := appstock.NewLedgerUseCase(kv, productRepo, decimal.NewFromFloat(cfg.Stock.LowStockThreshold))
	pricingUC := pricing.NewUseCase(overrideRepo, productRepo, customerRepo, supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	orderUC := orders.NewUseCase(txRunner, orderRepo, customerRepo, productRepo, pricingUC, ledger)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, customerRepo, orderRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, customerRepo, productRepo, invoiceRepo)
	trackSheetUC := tracksheet.NewUseCase(txRunner, sheetRepo, customerRepo, productRepo, pricingUC)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, ledger)
	messagingUC := messaging.NewUseCase(paymentUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Milk Center API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		SupplierUC:   supplierUC,
		Ledger:       ledger,
		PricingUC:    pricingUC,
		OrderUC:      orderUC,
		PaymentUC:    paymentUC,
		InvoiceUC:    invoiceUC,
		TrackSheetUC: trackSheetUC,
		DashboardUC:  dashboardUC,
		MessagingUC:  messagingUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
