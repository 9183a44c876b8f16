package page

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/render"
)

var (
	ErrUnknownMode      = errors.New("page has no recognised view markers")
	ErrUnsupportedEvent = errors.New("event not supported on this page")
)

const (
	orderPlacedSignal  = "Order placed successfully! Redirecting to invoice."
	loginSignal        = "Login functionality not implemented. This is a demo."
	registrationSignal = "Registration functionality not implemented. This is a demo."
)

// Result is what the page shows after handling an event.
type Result struct {
	// Signal is a message for the shopper, empty when there is nothing to say
	Signal string
	// Redirect is the page to navigate to; ModeUnknown stays on the page
	Redirect Mode
	// Rendered reports whether a view was drawn
	Rendered bool
}

type Controller interface {
	Mode() Mode
	// Enter runs once when the page loads
	Enter(ctx context.Context) (Result, error)
	Handle(ctx context.Context, ev Event) (Result, error)
}

// New detects the page mode from d and returns the controller for it.
func New(d Descriptor, stores service.Stores) (Controller, error) {
	switch mode := DetectMode(d); mode {
	case ModeCatalog:
		return &catalogController{carts: stores.Cart}, nil
	case ModeCart:
		return &cartController{
			carts:  stores.Cart,
			view:   render.NewCartView(stores.Cart, stores.Cart.Currency()),
			target: d.CartTable,
		}, nil
	case ModeCheckout:
		return &checkoutController{orders: stores.Order}, nil
	case ModeInvoice:
		return &invoiceController{view: render.NewInvoiceView(stores.Order), target: d.Invoice}, nil
	case ModeAuth:
		return &authController{kind: d.Auth}, nil
	default:
		return nil, ErrUnknownMode
	}
}

func unsupported(m Mode, ev Event) error {
	return fmt.Errorf("%w: %T on %s page", ErrUnsupportedEvent, ev, m)
}

type catalogController struct {
	carts *service.CartService
}

func (c *catalogController) Mode() Mode { return ModeCatalog }

func (c *catalogController) Enter(context.Context) (Result, error) {
	return Result{}, nil
}

func (c *catalogController) Handle(ctx context.Context, ev Event) (Result, error) {
	add, ok := ev.(AddToCart)
	if !ok {
		return Result{}, unsupported(ModeCatalog, ev)
	}

	price, err := domain.ParsePrice(add.Price)
	if err != nil {
		return Result{}, &domain.PriceError{Item: add.Name, Err: err}
	}

	item, err := c.carts.AddItem(ctx, domain.CartItem{Name: add.Name, Price: price, Image: add.Image})
	if err != nil {
		return Result{}, err
	}

	return Result{Signal: item.Name + " added to cart!"}, nil
}

type cartController struct {
	carts  *service.CartService
	view   *render.CartView
	target render.CartTarget
}

func (c *cartController) Mode() Mode { return ModeCart }

func (c *cartController) Enter(ctx context.Context) (Result, error) {
	if err := c.view.Render(ctx, c.target); err != nil {
		return Result{}, err
	}
	return Result{Rendered: c.target != nil}, nil
}

func (c *cartController) Handle(ctx context.Context, ev Event) (Result, error) {
	switch e := ev.(type) {
	case ChangeQuantity:
		qty, err := strconv.Atoi(strings.TrimSpace(e.Value))
		if err != nil {
			return Result{}, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, e.Value)
		}
		if err := c.carts.UpdateQuantity(ctx, e.Index, qty); err != nil {
			return Result{}, err
		}
	case RemoveItem:
		if err := c.carts.RemoveItem(ctx, e.Index); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, unsupported(ModeCart, ev)
	}

	return c.Enter(ctx)
}

type checkoutController struct {
	orders *service.OrderService
}

func (c *checkoutController) Mode() Mode { return ModeCheckout }

func (c *checkoutController) Enter(context.Context) (Result, error) {
	return Result{}, nil
}

func (c *checkoutController) Handle(ctx context.Context, ev Event) (Result, error) {
	submit, ok := ev.(SubmitCheckout)
	if !ok {
		return Result{}, unsupported(ModeCheckout, ev)
	}

	f := submit.Form
	customer := domain.Customer{
		FullName: f.FullName,
		Email:    f.Email,
		Phone:    f.Phone,
		Address:  domain.ComposeAddress(f.Address, f.City, f.Country, f.PostalCode),
	}
	if _, err := c.orders.PlaceOrder(ctx, customer); err != nil {
		return Result{}, err
	}

	return Result{Signal: orderPlacedSignal, Redirect: ModeInvoice}, nil
}

type invoiceController struct {
	view   *render.InvoiceView
	target render.InvoiceTarget
}

func (c *invoiceController) Mode() Mode { return ModeInvoice }

func (c *invoiceController) Enter(ctx context.Context) (Result, error) {
	rendered, err := c.view.Render(ctx, c.target)
	if err != nil {
		return Result{}, err
	}
	return Result{Rendered: rendered}, nil
}

func (c *invoiceController) Handle(_ context.Context, ev Event) (Result, error) {
	return Result{}, unsupported(ModeInvoice, ev)
}

// authController stands in for login and registration, which are not
// implemented. It never touches a store.
type authController struct {
	kind AuthKind
}

func (c *authController) Mode() Mode { return ModeAuth }

func (c *authController) Enter(context.Context) (Result, error) {
	return Result{}, nil
}

func (c *authController) Handle(_ context.Context, ev Event) (Result, error) {
	if _, ok := ev.(SubmitAuth); !ok {
		return Result{}, unsupported(ModeAuth, ev)
	}
	if c.kind == AuthRegister {
		return Result{Signal: registrationSignal}, nil
	}
	return Result{Signal: loginSignal}, nil
}
