// Package messaging composes customer-facing message bodies (payment
// reminders, outstanding statements). Composition only: the texts are copied
// into whatever SMS/WhatsApp tool the operator uses; delivery is out of
// scope.
package messaging

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/domain"
)

// Message channels.
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// UseCase builds message bodies from customer and dues data.
type UseCase struct {
	payments *billing.PaymentUseCase
}

// NewUseCase builds the use case on top of the payment/dues use case.
func NewUseCase(payments *billing.PaymentUseCase) *UseCase {
	return &UseCase{payments: payments}
}

// PaymentReminder composes a dues reminder for one customer and channel.
// Customers with nothing outstanding get ErrConflict: there is nothing to
// remind them of.
func (uc *UseCase) PaymentReminder(customerID, channel string) (*dto.ComposedMessageResponse, error) {
	if channel != ChannelSMS && channel != ChannelWhatsApp {
		return nil, domain.ErrInvalidInput
	}
	dues, err := uc.payments.OutstandingDues(customerID)
	if err != nil {
		return nil, err
	}
	if !dues.Outstanding.GreaterThan(decimal.Zero) {
		return nil, domain.ErrConflict
	}
	return &dto.ComposedMessageResponse{
		CustomerID: customerID,
		Channel:    channel,
		Body:       BuildPaymentReminder(dues.CustomerName, dues.Outstanding, dues.AsOf, channel),
	}, nil
}

// Statement composes a balance statement (ordered/paid/outstanding) for one
// customer and channel, whatever the balance.
func (uc *UseCase) Statement(customerID, channel string) (*dto.ComposedMessageResponse, error) {
	if channel != ChannelSMS && channel != ChannelWhatsApp {
		return nil, domain.ErrInvalidInput
	}
	dues, err := uc.payments.OutstandingDues(customerID)
	if err != nil {
		return nil, err
	}
	return &dto.ComposedMessageResponse{
		CustomerID: customerID,
		Channel:    channel,
		Body:       BuildStatement(dues, channel),
	}, nil
}

// BuildPaymentReminder renders the reminder text. SMS stays in one plain
// line; WhatsApp gets light markup and a closing line.
func BuildPaymentReminder(name string, outstanding decimal.Decimal, asOf time.Time, channel string) string {
	date := asOf.Format("02 Jan 2006")
	if channel == ChannelWhatsApp {
		var b strings.Builder
		fmt.Fprintf(&b, "Namaste %s,\n\n", name)
		fmt.Fprintf(&b, "Your milk account has an outstanding balance of *₹%s* as of %s.\n", outstanding.StringFixed(2), date)
		b.WriteString("Kindly clear the dues at your convenience. Thank you!")
		return b.String()
	}
	return fmt.Sprintf("Dear %s, your milk account balance is Rs.%s as of %s. Kindly pay at the earliest. Thank you.",
		name, outstanding.StringFixed(2), date)
}

// BuildStatement renders the three-line account statement.
func BuildStatement(dues *dto.CustomerDuesResponse, channel string) string {
	date := dues.AsOf.Format("02 Jan 2006")
	if channel == ChannelWhatsApp {
		var b strings.Builder
		fmt.Fprintf(&b, "Namaste %s, account statement as of %s:\n\n", dues.CustomerName, date)
		fmt.Fprintf(&b, "Total purchases: ₹%s\n", dues.TotalOrdered.StringFixed(2))
		fmt.Fprintf(&b, "Total paid: ₹%s\n", dues.TotalPaid.StringFixed(2))
		fmt.Fprintf(&b, "*Balance: ₹%s*", dues.Outstanding.StringFixed(2))
		return b.String()
	}
	return fmt.Sprintf("%s: purchases Rs.%s, paid Rs.%s, balance Rs.%s as of %s.",
		dues.CustomerName, dues.TotalOrdered.StringFixed(2), dues.TotalPaid.StringFixed(2),
		dues.Outstanding.StringFixed(2), date)
}
