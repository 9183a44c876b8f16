package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Customer struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ComposeAddress joins the checkout address fields into a single line:
// "street, city, country postalcode".
func ComposeAddress(street, city, country, postalCode string) string {
	return fmt.Sprintf("%s, %s, %s %s", street, city, country, postalCode)
}

// Order is the snapshot of a cart taken at checkout.
type Order struct {
	Customer Customer
	Items    Cart
	Total    Money
}

type orderRecord struct {
	Customer *Customer       `json:"customer"`
	Items    Cart            `json:"items"`
	Total    json.RawMessage `json:"total"`
}

// MarshalJSON writes the total as a bare number.
func (o Order) MarshalJSON() ([]byte, error) {
	items := o.Items
	if items == nil {
		items = Cart{}
	}
	customer := o.Customer
	return json.Marshal(orderRecord{
		Customer: &customer,
		Items:    items,
		Total:    json.RawMessage(o.Total.Amount().String()),
	})
}

// UnmarshalJSON reads an order record. The total takes the currency of the
// first item, or DefaultCurrency for an order without items.
func (o *Order) UnmarshalJSON(data []byte) error {
	var rec orderRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.Customer == nil {
		return fmt.Errorf("order has no customer")
	}
	if rec.Items == nil {
		return fmt.Errorf("order has no items list")
	}

	var amount decimal.Decimal
	if len(rec.Total) > 0 {
		if err := amount.UnmarshalJSON(rec.Total); err != nil {
			return fmt.Errorf("order total: %w", err)
		}
	}

	cur := DefaultCurrency
	if len(rec.Items) > 0 {
		cur = rec.Items[0].Price.Currency()
	}

	*o = Order{
		Customer: *rec.Customer,
		Items:    rec.Items,
		Total:    NewMoney(amount, cur),
	}
	return nil
}
