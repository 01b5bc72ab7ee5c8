package email

import (
	"strings"
	"testing"
)

func TestBuildShippingNotice(t *testing.T) {
	t.Parallel()

	info := ShippingInfo{
		FullName:   "Ada Obi",
		Address:    "12 Broadway Ave",
		City:       "Toronto",
		Province:   "ON",
		PostalCode: "A1B 2C3",
		Country:    "Canada",
	}
	items := []CartItem{
		{Name: "Agbada Set", SelectedSize: "L", Quantity: 2, Price: 45.50},
		{Name: "Ankara Shirt", SelectedSize: "M", Quantity: 1, Price: 25},
	}

	mail, err := BuildShippingNotice("owner@example.com", info, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mail.To != "owner@example.com" {
		t.Fatalf("unexpected recipient: %q", mail.To)
	}
	if mail.Subject != ShippingNoticeSubject {
		t.Fatalf("unexpected subject: %q", mail.Subject)
	}

	for _, want := range []string{
		"Name: Ada Obi",
		"Address: 12 Broadway Ave",
		"City: Toronto",
		"Province: ON",
		"Postal Code: A1B 2C3",
		"Country: Canada",
		"Agbada Set (Size: L, Qty: 2) - $91.00",
		"Ankara Shirt (Size: M, Qty: 1) - $25.00",
	} {
		if !strings.Contains(mail.Text, want) {
			t.Fatalf("body missing %q:\n%s", want, mail.Text)
		}
	}
}

func TestBuildShippingNoticeEmptyCart(t *testing.T) {
	t.Parallel()

	mail, err := BuildShippingNotice("owner@example.com", ShippingInfo{FullName: "Ada Obi"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mail.Text, "No products provided") {
		t.Fatalf("expected empty-cart fallback in body:\n%s", mail.Text)
	}
}

func TestSMTPProviderBuildsMessage(t *testing.T) {
	t.Parallel()

	msg := buildMessage("shop@example.com", &Email{
		To:      "owner@example.com",
		Subject: ShippingNoticeSubject,
		Text:    "body text",
	})

	text := string(msg)
	for _, want := range []string{
		"From: shop@example.com\r\n",
		"To: owner@example.com\r\n",
		"Subject: " + ShippingNoticeSubject + "\r\n",
		"\r\n\r\nbody text",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("message missing %q:\n%s", want, text)
		}
	}
}

func TestNewProviderRejectsUnknownProvider(t *testing.T) {
	t.Parallel()

	if _, err := NewProvider(Config{Provider: "sendgrid"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
