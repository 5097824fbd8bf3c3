package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("212")).
			Padding(0, 1)
)

// fmtPrice renders a money amount the way product cards show it.
func fmtPrice(amount decimal.Decimal) string {
	return "AED " + amount.StringFixed(2)
}

// viewHeader renders the shared navigation bar, the cart badge and any
// pending banner text.
func (a *App) viewHeader() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Fragrance & Decor"))
	b.WriteString(dimStyle.Render("  h home · p products · c cart · o orders · a account · q quit"))
	if n := a.svc.Cart.Count(); n > 0 {
		b.WriteString("  " + badgeStyle.Render(itoa(n)))
	}
	if a.svc.Session.IsAuthenticated() {
		b.WriteString(dimStyle.Render("  signed in: " + a.svc.Session.Customer().Email))
	}
	b.WriteString("\n")
	if a.errText != "" {
		b.WriteString(errStyle.Render(a.errText) + "\n")
	} else if a.statusText != "" {
		b.WriteString(okStyle.Render(a.statusText) + "\n")
	}
	return b.String()
}
