package render

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/storefront/internal/core/domain"
)

type fakeOrders struct {
	order domain.Order
	ok    bool
	err   error
}

func (f *fakeOrders) GetOrder(context.Context) (domain.Order, bool, error) {
	return f.order, f.ok, f.err
}

// recordingInvoice counts every mutation it receives.
type recordingInvoice struct {
	InvoiceDocument
	calls int
}

func (r *recordingInvoice) SetCustomer(c domain.Customer) { r.calls++; r.InvoiceDocument.SetCustomer(c) }
func (r *recordingInvoice) Reset() { r.calls++; r.InvoiceDocument.Reset() }
func (r *recordingInvoice) AppendLine(l InvoiceLine) { r.calls++; r.InvoiceDocument.AppendLine(l) }
func (r *recordingInvoice) SetTotal(s string) { r.calls++; r.InvoiceDocument.SetTotal(s) }

func TestInvoiceView_NoOrder(t *testing.T) {
	target := &recordingInvoice{}

	rendered, err := NewInvoiceView(&fakeOrders{}).Render(context.Background(), target)
	require.NoError(t, err)
	assert.False(t, rendered)
	assert.Zero(t, target.calls)
}

func TestInvoiceView_NilTarget(t *testing.T) {
	rendered, err := NewInvoiceView(&fakeOrders{err: errors.New("unused")}).Render(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, rendered)
}

func TestInvoiceView_Render(t *testing.T) {
	order := domain.Order{
		Customer: domain.Customer{
			FullName: "Ann Lee",
			Email:    "ann@example.com",
			Phone:    "876-555-0100",
			Address:  "1 Main St, Kingston, Jamaica 00000",
		},
		Items: domain.Cart{
			line(t, "Lavender Dream", "JMD 1,200.00", 2),
			line(t, "Thyme Garden", "JMD 500.00", 1),
		},
		Total: domain.NewMoney(decimal.NewFromInt(2900), domain.DefaultCurrency),
	}
	doc := &InvoiceDocument{}

	rendered, err := NewInvoiceView(&fakeOrders{order: order, ok: true}).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, rendered)

	assert.Equal(t, order.Customer, doc.Customer)
	assert.Equal(t, []InvoiceLine{
		{Name: "Lavender Dream", Quantity: 2, UnitPrice: "JMD 1,200.00", Subtotal: "JMD 2,400.00"},
		{Name: "Thyme Garden", Quantity: 1, UnitPrice: "JMD 500.00", Subtotal: "JMD 500.00"},
	}, doc.Lines)
	assert.Equal(t, "JMD 2,900.00", doc.Total)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteHTML(&buf))
	assert.Contains(t, buf.String(), `<span id="cust-name">Ann Lee</span>`)
	assert.Contains(t, buf.String(), `<span id="invoice-total">JMD 2,900.00</span>`)
}

func TestInvoiceDocument_EmptyHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&InvoiceDocument{}).WriteHTML(&buf))
	assert.Contains(t, buf.String(), "invoice-container")
	assert.Contains(t, buf.String(), "No order has been placed yet.")
	assert.NotContains(t, buf.String(), "cust-name")
}

func TestCatalogAndAuthDocuments(t *testing.T) {
	var buf bytes.Buffer
	doc := &CatalogDocument{Products: []ProductCard{{Name: "Cedar Smoke", Price: "JMD 800.00", Image: "/img/cedar.jpg"}}}
	require.NoError(t, doc.WriteHTML(&buf))
	assert.Contains(t, buf.String(), `<h3>Cedar Smoke</h3>`)
	assert.Contains(t, buf.String(), `class="add-to-cart"`)

	buf.Reset()
	require.NoError(t, (&AuthDocument{Kind: "register", Message: "hello"}).WriteHTML(&buf))
	assert.Contains(t, buf.String(), `<section id="register">`)
	assert.Contains(t, buf.String(), `name="fullname"`)

	buf.Reset()
	require.NoError(t, (&AuthDocument{Kind: "login"}).WriteHTML(&buf))
	assert.Contains(t, buf.String(), `action="/login"`)
	assert.NotContains(t, buf.String(), `name="fullname"`)

	buf.Reset()
	require.NoError(t, (&CheckoutDocument{}).WriteHTML(&buf))
	assert.Contains(t, buf.String(), `class="checkout-form"`)
	assert.Contains(t, buf.String(), `name="postalcode"`)
}
