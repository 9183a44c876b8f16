package render

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

type InvoiceLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"qty"`
	UnitPrice string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

// InvoiceTarget receives a rendered order.
type InvoiceTarget interface {
	SetCustomer(c domain.Customer)
	Reset()
	AppendLine(line InvoiceLine)
	SetTotal(text string)
}

type OrderSource interface {
	GetOrder(ctx context.Context) (domain.Order, bool, error)
}

type InvoiceView struct {
	orders OrderSource
}

func NewInvoiceView(orders OrderSource) *InvoiceView {
	return &InvoiceView{orders: orders}
}

// Render writes the stored order into target. It reports false, leaving
// target untouched, when there is no order or no target.
func (v *InvoiceView) Render(ctx context.Context, target InvoiceTarget) (bool, error) {
	if target == nil {
		return false, nil
	}

	order, ok, err := v.orders.GetOrder(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	target.SetCustomer(order.Customer)
	target.Reset()
	for _, item := range order.Items {
		target.AppendLine(InvoiceLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price.Display(),
			Subtotal:  item.Subtotal().Display(),
		})
	}
	target.SetTotal(order.Total.Display())

	return true, nil
}
