package domain

import "fmt"

// CartItem is one product line. Name is unique within a cart.
type CartItem struct {
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Image    string `json:"img"`
	Quantity int    `json:"qty"`
}

func (i CartItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Cart holds line items in the order they were first added.
type Cart []CartItem

// Index returns the position of the named item, or -1.
func (c Cart) Index(name string) int {
	for i, item := range c {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// Add bumps the quantity of an existing line or appends item with quantity 1.
func (c Cart) Add(item CartItem) (Cart, CartItem) {
	if i := c.Index(item.Name); i >= 0 {
		c[i].Quantity++
		return c, c[i]
	}
	item.Quantity = 1
	return append(c, item), item
}

// SetQuantity sets the quantity at index. Quantities of zero or less remove
// the line.
func (c Cart) SetQuantity(index, qty int) (Cart, error) {
	if qty <= 0 {
		return c.Remove(index)
	}
	if err := c.checkIndex(index); err != nil {
		return c, err
	}
	c[index].Quantity = qty
	return c, nil
}

func (c Cart) Remove(index int) (Cart, error) {
	if err := c.checkIndex(index); err != nil {
		return c, err
	}
	return append(c[:index:index], c[index+1:]...), nil
}

// Total sums every line subtotal. An empty cart totals zero in cur.
func (c Cart) Total(cur Currency) (Money, error) {
	if len(c) == 0 {
		return Zero(cur), nil
	}

	total := Zero(c[0].Price.Currency())
	for _, item := range c {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return Money{}, &PriceError{Item: item.Name, Err: err}
		}
		total = sum
	}
	return total, nil
}

func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

func (c Cart) checkIndex(index int) error {
	if index < 0 || index >= len(c) {
		return fmt.Errorf("%w: %d (cart has %d items)", ErrInvalidIndex, index, len(c))
	}
	return nil
}
