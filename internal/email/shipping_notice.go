// Package email provides the shipping notice template.
package email

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// ShippingNoticeSubject is the subject line for shipping notifications sent
// to the business owner.
const ShippingNoticeSubject = "New Shipping Info + Products"

const noProductsFallback = "No products provided"

// ShippingInfo is the address submitted at checkout.
type ShippingInfo struct {
	FullName   string
	Address    string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// CartItem is a purchased line as submitted by the storefront. Price is in
// major currency units.
type CartItem struct {
	Name         string
	SelectedSize string
	Quantity     int
	Price        float64
}

var shippingNoticeTemplate = template.Must(template.New("shipping_notice").Parse(`A new shipping address has been submitted:

Name: {{.FullName}}
Address: {{.Address}}
City: {{.City}}
Province: {{.Province}}
Postal Code: {{.PostalCode}}
Country: {{.Country}}

Products:
{{.ProductList}}
`))

// BuildShippingNotice renders the owner-facing notification email for a
// shipping submission and its cart contents.
func BuildShippingNotice(to string, info ShippingInfo, items []CartItem) (*Email, error) {
	data := struct {
		ShippingInfo
		ProductList string
	}{
		ShippingInfo: info,
		ProductList:  productList(items),
	}

	var body bytes.Buffer
	if err := shippingNoticeTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render shipping notice: %w", err)
	}

	return &Email{
		To:      to,
		Subject: ShippingNoticeSubject,
		Text:    body.String(),
	}, nil
}

func productList(items []CartItem) string {
	if len(items) == 0 {
		return noProductsFallback
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		lines = append(lines, fmt.Sprintf("%s (Size: %s, Qty: %d) - $%.2f",
			item.Name, item.SelectedSize, item.Quantity, lineTotal))
	}
	return strings.Join(lines, "\n")
}
