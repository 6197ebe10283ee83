package dto

import "github.com/shopspring/decimal"

// TopProductDTO one row of the dashboard's top-products widget.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO business summary for the dashboard.
type DashboardSummaryDTO struct {
	TodaySales       decimal.Decimal `json:"today_sales"`
	TodayOrders      int             `json:"today_orders"`
	MonthSales       decimal.Decimal `json:"month_sales"`
	MonthOrders      int             `json:"month_orders"`
	OutstandingDues  decimal.Decimal `json:"outstanding_dues"`
	ActiveAlertCount int             `json:"active_alert_count"`
	TopProducts      []TopProductDTO `json:"top_products"`
}

// ComposedMessageResponse a ready-to-send message body for one channel.
// Delivery is out of scope; callers copy the text into their SMS/WhatsApp
// tool of choice.
type ComposedMessageResponse struct {
	CustomerID string `json:"customer_id"`
	Channel    string `json:"channel"` // sms | whatsapp
	Body       string `json:"body"`
}
