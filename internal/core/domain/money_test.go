package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   string
		currency Currency
	}{
		{"grouped", "JMD 1,200.00", "1200", "JMD"},
		{"plain", "JMD 500.00", "500", "JMD"},
		{"millions", "JMD 1,250,000.50", "1250000.5", "JMD"},
		{"other currency", "USD 12.99", "12.99", "USD"},
		{"surrounding space", "  JMD 75  ", "75", "JMD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParsePrice(tt.input)
			require.NoError(t, err)
			assert.True(t, m.Amount().Equal(decimal.RequireFromString(tt.amount)), "amount %s", m.Amount())
			assert.Equal(t, tt.currency, m.Currency())
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, input := range []string{"", "1,200.00", "JMD", "JMD abc", "XX 10.00", "JMD 1 200"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePrice(input)
			var perr *PriceParseError
			require.True(t, errors.As(err, &perr), "expected PriceParseError, got %v", err)
			assert.Equal(t, input, perr.Input)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "JMD 1,200.00", NewMoney(decimal.NewFromInt(1200), "JMD").String())
	assert.Equal(t, "JMD 2,900.00", NewMoney(decimal.NewFromInt(2900), "JMD").String())
	assert.Equal(t, "JMD 0.00", Zero("JMD").String())
	assert.Equal(t, "USD 3.50", NewMoney(decimal.RequireFromString("3.5"), "USD").String())
}

func TestMoney_StringKeepsExactAmount(t *testing.T) {
	tests := []struct {
		input   string
		str     string
		display string
	}{
		{"JMD 0.125", "JMD 0.125", "JMD 0.13"},
		{"JMD 1,200.005", "JMD 1,200.005", "JMD 1,200.01"},
		{"JMD 90071992547409.93", "JMD 90,071,992,547,409.93", "JMD 90,071,992,547,409.93"},
		{"JMD 123456789012345678.00", "JMD 123,456,789,012,345,678.00", "JMD 123,456,789,012,345,678.00"},
		{"JMD -1500.5", "JMD -1,500.50", "JMD -1,500.50"},
		{"JMD 999", "JMD 999.00", "JMD 999.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParsePrice(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.str, m.String())
			assert.Equal(t, tt.display, m.Display())

			back, err := ParsePrice(m.String())
			require.NoError(t, err)
			assert.True(t, m.Equal(back), "%s read back as %s", m, back)
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a := NewMoney(decimal.NewFromInt(10), "JMD")

	sum, err := a.Add(NewMoney(decimal.NewFromInt(5), "JMD"))
	require.NoError(t, err)
	assert.True(t, sum.Equal(NewMoney(decimal.NewFromInt(15), "JMD")))

	_, err = a.Add(NewMoney(decimal.NewFromInt(5), "USD"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_JSON(t *testing.T) {
	price, err := ParsePrice("JMD 1,200.00")
	require.NoError(t, err)

	data, err := json.Marshal(price)
	require.NoError(t, err)
	assert.JSONEq(t, `"JMD 1,200.00"`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, price.Equal(decoded))

	var bad Money
	err = json.Unmarshal([]byte(`"twelve dollars"`), &bad)
	var perr *PriceParseError
	assert.True(t, errors.As(err, &perr))
}
