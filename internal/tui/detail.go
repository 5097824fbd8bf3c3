package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateProductDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.detail == nil {
		a.setPage(pageProducts)
		return a, nil
	}
	switch msg.String() {
	case "esc", "backspace":
		a.setPage(pageProducts)
		return a, nil
	case "+", "right":
		a.detailQty++
	case "-", "left":
		if a.detailQty > 1 {
			a.detailQty--
		}
	case "enter":
		a.svc.Cart.Add(*a.detail, a.detailQty)
		a.statusText = itoa(a.detailQty) + " × " + a.detail.Name + " added to cart"
		a.errText = ""
		a.detailQty = 1
	}
	return a, nil
}

func (a *App) viewProductDetail() string {
	p := a.detail
	if p == nil {
		return dimStyle.Render("loading...")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name) + "\n")
	b.WriteString(priceStyle.Render(fmtPrice(p.Price)) + "\n")
	if p.Category != nil {
		b.WriteString(dimStyle.Render(*p.Category) + "\n")
	}
	if p.Description != nil {
		b.WriteString("\n" + *p.Description + "\n")
	}
	b.WriteString("\nQuantity: " + selectedStyle.Render(itoa(a.detailQty)) + "\n")
	b.WriteString("\n" + dimStyle.Render("+/- quantity · enter add to cart · esc back"))
	return b.String()
}
