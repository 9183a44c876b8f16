package page

// Event is a user action delivered to a controller.
type Event interface {
	event()
}

// AddToCart is a click on a catalog entry's add-to-cart control. Price is
// the displayed price text.
type AddToCart struct {
	Name  string
	Price string
	Image string
}

// ChangeQuantity is an edit of a cart row's quantity field. Value is the raw
// field text.
type ChangeQuantity struct {
	Index int
	Value string
}

type RemoveItem struct {
	Index int
}

type CheckoutForm struct {
	FullName   string `form:"fullname"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Address    string `form:"address"`
	City       string `form:"city"`
	Country    string `form:"country"`
	PostalCode string `form:"postalcode"`
}

type SubmitCheckout struct {
	Form CheckoutForm
}

type SubmitAuth struct{}

func (AddToCart) event()      {}
func (ChangeQuantity) event() {}
func (RemoveItem) event()     {}
func (SubmitCheckout) event() {}
func (SubmitAuth) event()     {}
