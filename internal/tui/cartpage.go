package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := a.svc.Cart.Lines()
	if a.cartCursor >= len(lines) && a.cartCursor > 0 {
		a.cartCursor = len(lines) - 1
	}
	switch msg.String() {
	case "up", "k":
		if a.cartCursor > 0 {
			a.cartCursor--
		}
	case "down", "j":
		if a.cartCursor < len(lines)-1 {
			a.cartCursor++
		}
	case "+", "right":
		if a.cartCursor < len(lines) {
			line := lines[a.cartCursor]
			a.svc.Cart.UpdateQuantity(line.Product.ID, line.Quantity+1)
		}
	case "-", "left":
		if a.cartCursor < len(lines) {
			line := lines[a.cartCursor]
			a.svc.Cart.UpdateQuantity(line.Product.ID, line.Quantity-1)
		}
	case "x", "delete":
		if a.cartCursor < len(lines) {
			a.svc.Cart.Remove(lines[a.cartCursor].Product.ID)
		}
	case "enter":
		if a.svc.Cart.IsEmpty() {
			return a, nil
		}
		if !a.svc.Session.IsAuthenticated() {
			a.statusText = ""
			a.errText = "please sign in to check out"
			a.enterLogin()
			return a, nil
		}
		a.enterCheckout()
		return a, nil
	}
	return a, nil
}

func (a *App) viewCart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your cart") + "\n")
	lines := a.svc.Cart.Lines()
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render("your cart is empty · p to browse products"))
		return b.String()
	}
	for i, line := range lines {
		row := line.Product.Name + "  × " + itoa(line.Quantity) + "  " + fmtPrice(line.Subtotal())
		if i == a.cartCursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	b.WriteString("\nTotal: " + priceStyle.Render(fmtPrice(a.svc.Cart.Total())) + "\n")
	b.WriteString(dimStyle.Render("\n+/- quantity · x remove · enter checkout"))
	return b.String()
}
