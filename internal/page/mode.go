package page

import "github.com/rl1809/storefront/internal/render"

// Mode is the kind of page a controller drives.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeCatalog
	ModeCart
	ModeCheckout
	ModeInvoice
	ModeAuth
)

func (m Mode) String() string {
	switch m {
	case ModeCatalog:
		return "catalog"
	case ModeCart:
		return "cart"
	case ModeCheckout:
		return "checkout"
	case ModeInvoice:
		return "invoice"
	case ModeAuth:
		return "auth"
	default:
		return "unknown"
	}
}

type AuthKind int

const (
	AuthNone AuthKind = iota
	AuthLogin
	AuthRegister
)

// Descriptor lists the view markers present on a page.
type Descriptor struct {
	AddToCart    bool
	CartTable    render.CartTarget
	CheckoutForm bool
	Invoice      render.InvoiceTarget
	Auth         AuthKind
}

// DetectMode picks the page mode from its markers. When several are present
// the order is invoice, checkout, cart, auth, catalog.
func DetectMode(d Descriptor) Mode {
	switch {
	case d.Invoice != nil:
		return ModeInvoice
	case d.CheckoutForm:
		return ModeCheckout
	case d.CartTable != nil:
		return ModeCart
	case d.Auth != AuthNone:
		return ModeAuth
	case d.AddToCart:
		return ModeCatalog
	default:
		return ModeUnknown
	}
}
