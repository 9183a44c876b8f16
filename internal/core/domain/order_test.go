package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeAddress(t *testing.T) {
	got := ComposeAddress("12 Hope Road", "Kingston", "Jamaica", "JMAKN06")
	assert.Equal(t, "12 Hope Road, Kingston, Jamaica JMAKN06", got)
}

func TestOrder_JSONLayout(t *testing.T) {
	lav := item(t, "Lavender", "JMD 1,200.00")
	lav.Quantity = 2
	order := Order{
		Customer: Customer{FullName: "Ann Lee", Email: "ann@example.com", Phone: "876-555-0100", Address: "1 Main St, Kingston, Jamaica 00000"},
		Items:    Cart{lav},
		Total:    NewMoney(decimal.NewFromInt(2400), "JMD"),
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"customer": {"fullname": "Ann Lee", "email": "ann@example.com", "phone": "876-555-0100", "address": "1 Main St, Kingston, Jamaica 00000"},
		"items": [{"name": "Lavender", "price": "JMD 1,200.00", "img": "img/Lavender.jpg", "qty": 2}],
		"total": 2400
	}`, string(data))

	var decoded Order
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, order.Customer, decoded.Customer)
	require.Len(t, decoded.Items, 1)
	assert.True(t, decoded.Items[0].Price.Equal(lav.Price))
	assert.True(t, decoded.Total.Equal(order.Total))
}

func TestOrder_EmptyItemsEncodeAsArray(t *testing.T) {
	data, err := json.Marshal(Order{Total: Zero(DefaultCurrency)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[]`)
}

func TestOrder_UnmarshalRequiresCustomer(t *testing.T) {
	var o Order
	assert.Error(t, json.Unmarshal([]byte(`{}`), &o))
}

func TestOrder_UnmarshalRequiresItems(t *testing.T) {
	var o Order
	assert.Error(t, json.Unmarshal([]byte(`{"customer":{"fullname":"Ann Lee"},"total":0}`), &o))
	assert.Error(t, json.Unmarshal([]byte(`{"customer":{"fullname":"Ann Lee"},"items":null,"total":0}`), &o))

	require.NoError(t, json.Unmarshal([]byte(`{"customer":{"fullname":"Ann Lee"},"items":[],"total":0}`), &o))
	assert.Empty(t, o.Items)
	assert.True(t, o.Total.IsZero())
}
