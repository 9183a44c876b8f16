package render

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

// CartRow is one rendered cart line. Index addresses the line in quantity
// and removal controls.
type CartRow struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Image     string `json:"img"`
	UnitPrice string `json:"price"`
	Quantity  int    `json:"qty"`
	Subtotal  string `json:"subtotal"`
}

// CartTarget receives a rendered cart.
type CartTarget interface {
	Reset()
	AppendRow(row CartRow)
	SetTotal(text string)
}

type CartSource interface {
	GetCart(ctx context.Context) (domain.Cart, error)
}

type CartView struct {
	carts    CartSource
	currency domain.Currency
}

func NewCartView(carts CartSource, currency domain.Currency) *CartView {
	return &CartView{carts: carts, currency: currency}
}

// Render replaces the contents of target with the current cart. A nil target
// is a page without a cart table and renders nothing.
func (v *CartView) Render(ctx context.Context, target CartTarget) error {
	if target == nil {
		return nil
	}

	cart, err := v.carts.GetCart(ctx)
	if err != nil {
		return err
	}
	total, err := cart.Total(v.currency)
	if err != nil {
		return err
	}

	target.Reset()
	for i, item := range cart {
		target.AppendRow(CartRow{
			Index:     i,
			Name:      item.Name,
			Image:     item.Image,
			UnitPrice: item.Price.Display(),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().Display(),
		})
	}
	target.SetTotal("Total: " + total.Display())

	return nil
}
