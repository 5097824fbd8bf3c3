package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

// productItem adapts a product to the bubbles list delegate.
type productItem struct {
	product storeapi.Product
}

func (i productItem) Title() string { return i.product.Name }

func (i productItem) Description() string {
	desc := fmtPrice(i.product.Price)
	if i.product.Category != nil {
		desc += " · " + *i.product.Category
	}
	if !i.product.IsActive {
		desc += " · unavailable"
	}
	return desc
}

func (i productItem) FilterValue() string { return i.product.Name }

func itoa(n int) string { return strconv.Itoa(n) }

// categories mirror the store's browsing taxonomy; "" is all products.
var categories = []string{
	"", "men", "women", "unisex",
	"living-room", "bedroom", "kids-room", "decoration",
}

func nextCategory(current string) string {
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}
	return ""
}

func (a *App) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch msg.String() {
		case "enter":
			a.searching = false
			a.searchInput.Blur()
			query := strings.TrimSpace(a.searchInput.Value())
			a.setPage(pageProducts)
			return a, a.loadProducts(storeapi.ListProductsParams{Search: query})
		case "esc":
			a.searching = false
			a.searchInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "/":
		a.searching = true
		a.searchInput.SetValue("")
		return a, a.searchInput.Focus()
	case "f":
		a.category = nextCategory(a.category)
		a.setPage(pageProducts)
		return a, a.loadProducts(storeapi.ListProductsParams{Category: a.category})
	case "enter":
		if item, ok := a.productList.SelectedItem().(productItem); ok {
			return a, a.loadProduct(item.product.ID)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.productList, cmd = a.productList.Update(msg)
	return a, cmd
}

func (a *App) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Signature scents and pieces for your home") + "\n")
	if a.loadingList {
		b.WriteString(dimStyle.Render("loading featured products...") + "\n")
		return b.String()
	}
	b.WriteString(a.productList.View())
	b.WriteString("\n" + dimStyle.Render("enter view product · / search"))
	return b.String()
}

func (a *App) viewProducts() string {
	var b strings.Builder
	if a.searching {
		b.WriteString("Search: " + a.searchInput.View() + "\n\n")
	}
	if a.category != "" {
		b.WriteString(dimStyle.Render("category: ") + selectedStyle.Render(a.category) + "\n")
	}
	if a.loadingList {
		b.WriteString(dimStyle.Render("loading products...") + "\n")
		return b.String()
	}
	b.WriteString(a.productList.View())
	b.WriteString("\n" + dimStyle.Render("enter view product · / search · f filter category"))
	return b.String()
}
