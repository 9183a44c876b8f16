package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/rl1809/storefront/internal/core/domain"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// Document is a page that can be written out as HTML.
type Document interface {
	WriteHTML(w io.Writer) error
}

type ProductCard struct {
	Name  string `mapstructure:"name" json:"name"`
	Price string `mapstructure:"price" json:"price"`
	Image string `mapstructure:"img" json:"img"`
}

type CatalogDocument struct {
	Products []ProductCard
}

func (d *CatalogDocument) WriteHTML(w io.Writer) error {
	return pages.ExecuteTemplate(w, "catalog", d)
}

// CartDocument is the cart page; it implements CartTarget.
type CartDocument struct {
	Rows  []CartRow `json:"items"`
	Total string    `json:"total"`
}

func (d *CartDocument) Reset() {
	d.Rows = []CartRow{}
	d.Total = ""
}

func (d *CartDocument) AppendRow(row CartRow) {
	d.Rows = append(d.Rows, row)
}

func (d *CartDocument) SetTotal(text string) {
	d.Total = text
}

func (d *CartDocument) WriteHTML(w io.Writer) error {
	return pages.ExecuteTemplate(w, "cart", d)
}

type CheckoutDocument struct {
	Error string
}

func (d *CheckoutDocument) WriteHTML(w io.Writer) error {
	return pages.ExecuteTemplate(w, "checkout", d)
}

// InvoiceDocument is the invoice page; it implements InvoiceTarget.
type InvoiceDocument struct {
	Present  bool            `json:"-"`
	Customer domain.Customer `json:"customer"`
	Lines    []InvoiceLine   `json:"items"`
	Total    string          `json:"total"`
}

func (d *InvoiceDocument) SetCustomer(c domain.Customer) {
	d.Present = true
	d.Customer = c
}

func (d *InvoiceDocument) Reset() {
	d.Lines = []InvoiceLine{}
}

func (d *InvoiceDocument) AppendLine(line InvoiceLine) {
	d.Lines = append(d.Lines, line)
}

func (d *InvoiceDocument) SetTotal(text string) {
	d.Total = text
}

func (d *InvoiceDocument) WriteHTML(w io.Writer) error {
	return pages.ExecuteTemplate(w, "invoice", d)
}

// AuthDocument is the login or register page. Kind is "login" or "register".
type AuthDocument struct {
	Kind    string
	Message string
}

func (d *AuthDocument) Title() string {
	if d.Kind == "register" {
		return "Register"
	}
	return "Login"
}

func (d *AuthDocument) WriteHTML(w io.Writer) error {
	return pages.ExecuteTemplate(w, "auth", d)
}
