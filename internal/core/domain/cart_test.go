package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(t *testing.T, name, price string) CartItem {
	t.Helper()
	p, err := ParsePrice(price)
	require.NoError(t, err)
	return CartItem{Name: name, Price: p, Image: "img/" + name + ".jpg", Quantity: 1}
}

func TestCart_Add_OneEntryPerName(t *testing.T) {
	var cart Cart
	adds := []string{"Lavender", "Thyme", "Lavender", "Cedar", "Lavender", "Thyme"}
	for _, name := range adds {
		cart, _ = cart.Add(item(t, name, "JMD 100.00"))
	}

	require.Len(t, cart, 3)
	assert.Equal(t, "Lavender", cart[0].Name)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, "Thyme", cart[1].Name)
	assert.Equal(t, 2, cart[1].Quantity)
	assert.Equal(t, "Cedar", cart[2].Name)
	assert.Equal(t, 1, cart[2].Quantity)
}

func TestCart_Add_ForcesQuantityOne(t *testing.T) {
	in := item(t, "Lavender", "JMD 100.00")
	in.Quantity = 7

	cart, added := Cart{}.Add(in)
	assert.Equal(t, 1, added.Quantity)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCart_Total(t *testing.T) {
	a := item(t, "Lavender", "JMD 1,200.00")
	a.Quantity = 2
	b := item(t, "Thyme", "JMD 500.00")
	cart := Cart{a, b}

	total, err := cart.Total(DefaultCurrency)
	require.NoError(t, err)
	assert.True(t, total.Amount().Equal(decimal.NewFromInt(2900)), "total %s", total)
	assert.Equal(t, "JMD 2,900.00", total.String())
}

func TestCart_Total_Empty(t *testing.T) {
	total, err := Cart{}.Total(DefaultCurrency)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Equal(t, DefaultCurrency, total.Currency())
}

func TestCart_Total_CurrencyMismatchNamesItem(t *testing.T) {
	cart := Cart{item(t, "Lavender", "JMD 100.00"), item(t, "Imported", "USD 5.00")}

	_, err := cart.Total(DefaultCurrency)
	var perr *PriceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Imported", perr.Item)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := Cart{item(t, "Lavender", "JMD 100.00"), item(t, "Thyme", "JMD 50.00")}

	cart, err := cart.SetQuantity(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart[1].Quantity)
}

func TestCart_SetQuantityZeroEqualsRemove(t *testing.T) {
	build := func() Cart {
		return Cart{item(t, "A", "JMD 1.00"), item(t, "B", "JMD 2.00"), item(t, "C", "JMD 3.00")}
	}

	for i := 0; i < 3; i++ {
		viaQty, err := build().SetQuantity(i, 0)
		require.NoError(t, err)
		viaRemove, err := build().Remove(i)
		require.NoError(t, err)
		assert.Equal(t, viaRemove, viaQty)
	}
}

func TestCart_InvalidIndex(t *testing.T) {
	cart := Cart{item(t, "Lavender", "JMD 100.00")}

	for _, idx := range []int{-1, 1, 5} {
		_, err := cart.SetQuantity(idx, 2)
		assert.ErrorIs(t, err, ErrInvalidIndex)

		_, err = cart.Remove(idx)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	}
	assert.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCart_RemoveKeepsOrder(t *testing.T) {
	cart := Cart{item(t, "A", "JMD 1.00"), item(t, "B", "JMD 2.00"), item(t, "C", "JMD 3.00")}

	out, err := cart.Remove(1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Name)
	assert.Equal(t, "C", out[1].Name)
	assert.Equal(t, "B", cart[1].Name, "original slice must not be modified")
}
