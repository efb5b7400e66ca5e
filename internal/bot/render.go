package bot

import (
	"fmt"
	"strings"

	"unclefries-order-backend/internal/catalog"
	"unclefries-order-backend/internal/payment"
)

// Menu rendering is pure: 1-based sequential numbering in fetch order.

// RenderMainMenu builds the numbered category list; it is also used by the
// menu preview endpoint.
func RenderMainMenu(r *Replies, categories []catalog.Category) string {
	var b strings.Builder
	b.WriteString(r.MenuHeader)
	for i, c := range categories {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, c.Name)
		if c.Description != "" {
			fmt.Fprintf(&b, "   %s\n", c.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString(r.MenuFooter)
	return b.String()
}

func renderCategoryMenu(r *Replies, category string, items []catalog.MenuItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s* 🍽️\n\n", strings.ToUpper(category))
	for i, it := range items {
		fmt.Fprintf(&b, "*%d. %s* - %s\n", i+1, it.ItemName, payment.FormatNaira(it.Price))
		if it.Options != "" {
			fmt.Fprintf(&b, "   📝 %s\n", it.Options)
		}
		b.WriteString("\n")
	}
	b.WriteString(r.ItemsFooter)
	return b.String()
}

func renderCart(r *Replies, cart []catalog.MenuItem) string {
	if len(cart) == 0 {
		return r.CartEmpty
	}
	var b strings.Builder
	b.WriteString(r.CartHeader)
	total := 0
	for i, it := range cart {
		total += it.Price
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, it.ItemName, payment.FormatNaira(it.Price))
	}
	fmt.Fprintf(&b, "\n*Total: %s*\nType *checkout* to order or *cancel* to start over.", payment.FormatNaira(total))
	return b.String()
}
