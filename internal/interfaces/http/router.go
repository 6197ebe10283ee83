package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/analytics"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/messaging"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/orders"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/pricing"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/tracksheet"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	SupplierUC   *usecase.SupplierUseCase
	Ledger       *appstock.LedgerUseCase
	PricingUC    *pricing.UseCase
	OrderUC      *orders.UseCase
	PaymentUC    *billing.PaymentUseCase
	InvoiceUC    *billing.InvoiceUseCase
	TrackSheetUC *tracksheet.UseCase
	DashboardUC  *analytics.DashboardUseCase
	MessagingUC  *messaging.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (including dues sub-resource)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.PaymentUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/dues", customerHandler.Dues)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Stock ledger
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger)
	stock.Post("/movements", stockHandler.RecordMovement)
	stock.Post("/adjustments", stockHandler.Adjust)
	stock.Get("/products/:id/movements", stockHandler.Movements)
	stock.Get("/products/:id/level", stockHandler.Level)
	stock.Get("/products/:id/fifo-cost", stockHandler.FIFOCost)
	stock.Get("/alerts", stockHandler.Alerts)
	stock.Delete("/alerts/old", stockHandler.ClearOldAlerts)

	// Rate overrides and resolution. /resolve before /:kind/:id so the
	// literal route wins.
	rates := api.Group("/rates")
	rateHandler := NewRateHandler(deps.PricingUC)
	rates.Post("/", rateHandler.Set)
	rates.Get("/resolve", rateHandler.Resolve)
	rates.Get("/:kind/:id", rateHandler.ListForEntity)
	rates.Delete("/:id", rateHandler.Deactivate)

	// Orders
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)

	// Payments
	payments := api.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.ListByCustomer)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Generate)
	invoices.Get("/", invoiceHandler.ListByCustomer)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Track sheets
	sheets := api.Group("/track-sheets")
	sheetHandler := NewTrackSheetHandler(deps.TrackSheetUC)
	sheets.Post("/", sheetHandler.Create)
	sheets.Get("/", sheetHandler.ListByDate)
	sheets.Get("/:id", sheetHandler.GetByID)

	// Reports
	reports := api.Group("/reports")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	reports.Get("/dashboard", dashboardHandler.Summary)

	// Composed messages
	messages := api.Group("/messages")
	messageHandler := NewMessageHandler(deps.MessagingUC)
	messages.Get("/customers/:id/reminder", messageHandler.PaymentReminder)
	messages.Get("/customers/:id/statement", messageHandler.Statement)
}
