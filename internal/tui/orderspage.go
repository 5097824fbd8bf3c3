package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

func (a *App) updateOrders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.cancelPrompt {
		switch msg.String() {
		case "enter":
			order := a.cancelTarget()
			if order == nil {
				a.cancelPrompt = false
				return a, nil
			}
			a.ordersBusy = true
			a.cancelInput.Blur()
			return a, a.cancelOrder(*order, strings.TrimSpace(a.cancelInput.Value()))
		case "esc":
			a.cancelPrompt = false
			a.cancelInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.cancelInput, cmd = a.cancelInput.Update(msg)
		return a, cmd
	}

	if a.page == pageOrderDetail {
		switch msg.String() {
		case "esc", "backspace":
			a.setPage(pageOrders)
			a.selectedOrder = nil
			return a, nil
		case "x":
			if a.selectedOrder != nil && a.selectedOrder.Status.CanCancel() {
				a.startCancel()
			}
			return a, nil
		}
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		if a.orderCursor > 0 {
			a.orderCursor--
		}
	case "down", "j":
		if a.orderCursor < len(a.orderRows)-1 {
			a.orderCursor++
		}
	case "enter":
		if a.orderCursor < len(a.orderRows) {
			order := a.orderRows[a.orderCursor]
			a.selectedOrder = &order
			a.setPage(pageOrderDetail)
		}
	case "x":
		if a.orderCursor < len(a.orderRows) && a.orderRows[a.orderCursor].Status.CanCancel() {
			a.startCancel()
		}
	case "r":
		a.ordersBusy = true
		return a, a.loadOrders()
	}
	return a, nil
}

func (a *App) startCancel() {
	a.cancelPrompt = true
	a.cancelInput.SetValue("")
	a.cancelInput.Focus()
}

// cancelTarget resolves which order the prompt applies to, detail page or
// list cursor.
func (a *App) cancelTarget() *storeapi.Order {
	if a.page == pageOrderDetail {
		return a.selectedOrder
	}
	if a.orderCursor < len(a.orderRows) {
		return &a.orderRows[a.orderCursor]
	}
	return nil
}

func (a *App) viewOrders() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your orders") + "\n")
	if !a.svc.Session.IsAuthenticated() {
		b.WriteString(dimStyle.Render("sign in to see your orders · a account"))
		return b.String()
	}
	if a.ordersBusy {
		b.WriteString(dimStyle.Render("loading orders...") + "\n")
		return b.String()
	}
	if len(a.orderRows) == 0 {
		b.WriteString(dimStyle.Render("no orders yet · p to browse products"))
		return b.String()
	}
	for i, order := range a.orderRows {
		row := order.OrderNumber + "  " + order.CreatedAt.Format("2 Jan 2006") +
			"  " + string(order.Status) + "  " + fmtPrice(order.TotalAmount)
		if i == a.orderCursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	if a.cancelPrompt {
		b.WriteString("\nCancel this order? " + a.cancelInput.View() + dimStyle.Render("  enter confirm · esc keep") + "\n")
	} else {
		b.WriteString(dimStyle.Render("\nenter details · x cancel order · r refresh"))
	}
	return b.String()
}

func (a *App) viewOrderDetail() string {
	order := a.selectedOrder
	if order == nil {
		return dimStyle.Render("no order selected")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order "+order.OrderNumber) + "\n")
	b.WriteString("Placed " + order.CreatedAt.Format("2 January 2006") + " · " + string(order.Status) + "\n\n")

	for _, item := range order.Products {
		b.WriteString("  " + item.Name + "  × " + itoa(item.Quantity) + "  " + fmtPrice(item.Price) + "\n")
	}

	if addr := order.ShippingAddress; !addr.IsZero() {
		b.WriteString("\nShip to: " + addr.Name + ", " + addr.Line1 + ", " +
			addr.City + " " + addr.PostalCode + ", " + addr.Country + "\n")
	}

	b.WriteString("\n  Subtotal  " + fmtPrice(order.Subtotal) + "\n")
	b.WriteString("  Shipping  " + fmtPrice(order.ShippingCost) + "\n")
	b.WriteString("  Tax       " + fmtPrice(order.TaxAmount) + "\n")
	if !order.DiscountAmount.IsZero() {
		b.WriteString("  Discount  -" + fmtPrice(order.DiscountAmount) + "\n")
	}
	b.WriteString("  Total     " + priceStyle.Render(fmtPrice(order.TotalAmount)) + "\n")

	if order.TrackingNumber != nil {
		b.WriteString("\nTracking: " + *order.TrackingNumber + "\n")
	}
	if order.CancelReason != nil {
		b.WriteString("\nCancelled: " + *order.CancelReason + "\n")
	}

	if a.cancelPrompt {
		b.WriteString("\nCancel this order? " + a.cancelInput.View() + dimStyle.Render("  enter confirm · esc keep") + "\n")
	} else if order.Status.CanCancel() {
		b.WriteString(dimStyle.Render("\nx cancel order · esc back"))
	} else {
		b.WriteString(dimStyle.Render("\nesc back"))
	}
	return b.String()
}
