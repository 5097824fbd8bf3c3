package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mashood007/fp-store-front/internal/checkout"
	"github.com/mashood007/fp-store-front/pkg/enums"
	"github.com/mashood007/fp-store-front/pkg/types"
)

var addressLabels = []string{
	"name", "address line 1", "address line 2 (optional)",
	"city", "state", "postal code", "country", "phone",
}

// input layout: index 0 is email, 1..8 shipping, 9..16 billing. Billing
// inputs only receive focus while the same-address toggle is off.
const (
	fieldEmail    = 0
	shippingFirst = 1
	billingFirst  = shippingFirst + 8
	fieldCount    = billingFirst + 8
)

// enterCheckout starts a fresh form, prefilled from the signed-in profile.
func (a *App) enterCheckout() {
	a.setPage(pageCheckout)
	a.errText = ""
	a.statusText = ""
	a.submitting = false
	a.form = checkout.NewForm()
	a.checkoutFocus = 0
	a.billingEditable = false

	a.checkoutInputs = make([]textinput.Model, fieldCount)
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	a.checkoutInputs[fieldEmail] = email
	for i, label := range addressLabels {
		ship := textinput.New()
		ship.Placeholder = label
		a.checkoutInputs[shippingFirst+i] = ship
		bill := textinput.New()
		bill.Placeholder = "billing " + label
		a.checkoutInputs[billingFirst+i] = bill
	}

	if customer := a.svc.Session.Customer(); customer != nil {
		a.checkoutInputs[fieldEmail].SetValue(customer.Email)
		a.checkoutInputs[shippingFirst].SetValue(customer.Name)
		if customer.Phone != nil {
			a.checkoutInputs[shippingFirst+7].SetValue(*customer.Phone)
		}
	}
	a.syncForm()
	a.checkoutInputs[0].Focus()
}

// syncForm pushes the current input values into the form model, which
// handles billing mirroring.
func (a *App) syncForm() {
	a.form.Email = strings.TrimSpace(a.checkoutInputs[fieldEmail].Value())
	a.form.SetShipping(a.addressAt(shippingFirst))
	if !a.form.UseSameAddress {
		a.form.SetBilling(a.addressAt(billingFirst))
	}
}

func (a *App) addressAt(first int) types.Address {
	val := func(i int) string { return strings.TrimSpace(a.checkoutInputs[first+i].Value()) }
	return types.Address{
		Name:       val(0),
		Line1:      val(1),
		Line2:      val(2),
		City:       val(3),
		State:      val(4),
		PostalCode: val(5),
		Country:    val(6),
		Phone:      val(7),
	}
}

func (a *App) checkoutFieldCount() int {
	if a.form.UseSameAddress {
		return billingFirst
	}
	return fieldCount
}

func (a *App) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.submitting {
		// the orchestrator owns the flow now, only quit is honoured
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.setPage(pageCart)
		a.errText = ""
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	case "tab", "down":
		a.focusCheckout(a.checkoutFocus + 1)
		return a, nil
	case "shift+tab", "up":
		a.focusCheckout(a.checkoutFocus - 1)
		return a, nil
	case "ctrl+b":
		a.form.SetUseSameAddress(!a.form.UseSameAddress)
		if a.form.UseSameAddress && a.checkoutFocus >= billingFirst {
			a.focusCheckout(0)
		}
		a.syncForm()
		return a, nil
	case "ctrl+p":
		if a.form.PaymentMethod == enums.PaymentMethodCard {
			a.form.PaymentMethod = enums.PaymentMethodCashOnDelivery
		} else {
			a.form.PaymentMethod = enums.PaymentMethodCard
		}
		return a, nil
	case "enter":
		if a.checkoutFocus < a.checkoutFieldCount()-1 {
			a.focusCheckout(a.checkoutFocus + 1)
			return a, nil
		}
		return a.placeOrder()
	}

	var cmd tea.Cmd
	a.checkoutInputs[a.checkoutFocus], cmd = a.checkoutInputs[a.checkoutFocus].Update(msg)
	a.syncForm()
	return a, cmd
}

func (a *App) focusCheckout(i int) {
	n := a.checkoutFieldCount()
	if i < 0 {
		i = n - 1
	}
	if i >= n {
		i = 0
	}
	a.checkoutInputs[a.checkoutFocus].Blur()
	a.checkoutFocus = i
	a.checkoutInputs[a.checkoutFocus].Focus()
}

func (a *App) placeOrder() (tea.Model, tea.Cmd) {
	a.syncForm()
	if err := a.form.Validate(); err != nil {
		a.errText = userMessage(err)
		return a, nil
	}
	a.submitting = true
	a.errText = ""
	return a, tea.Batch(a.spin.Tick, a.submitCheckout())
}

func (a *App) viewCheckout() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Checkout") + "\n")

	if a.submitting {
		b.WriteString(a.spin.View() + " ")
		switch a.svc.Checkout.Phase() {
		case checkout.PhasePayment:
			b.WriteString("processing payment...")
		case checkout.PhaseSucceeded:
			b.WriteString("finishing up...")
		default:
			b.WriteString("placing your order...")
		}
		return b.String()
	}

	b.WriteString("Contact\n")
	b.WriteString("  " + a.checkoutInputs[fieldEmail].View() + "\n\n")
	b.WriteString("Shipping address\n")
	for i := range addressLabels {
		b.WriteString("  " + a.checkoutInputs[shippingFirst+i].View() + "\n")
	}

	toggle := "[x]"
	if !a.form.UseSameAddress {
		toggle = "[ ]"
	}
	b.WriteString("\n" + toggle + " billing same as shipping (ctrl+b)\n")
	if !a.form.UseSameAddress {
		b.WriteString("Billing address\n")
		for i := range addressLabels {
			b.WriteString("  " + a.checkoutInputs[billingFirst+i].View() + "\n")
		}
	}

	b.WriteString("\nPayment: " + selectedStyle.Render(a.form.PaymentMethod.String()) +
		dimStyle.Render(" (ctrl+p switches)") + "\n")
	b.WriteString("Order total: " + priceStyle.Render(fmtPrice(a.svc.Cart.Total())) + "\n")
	b.WriteString(dimStyle.Render("\ntab next field · enter on last field places the order · esc back to cart"))
	return b.String()
}

func (a *App) updateCheckoutSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "o":
		a.svc.Checkout.Reset()
		a.lastResult = nil
		a.setPage(pageOrders)
		a.ordersBusy = true
		return a, a.loadOrders()
	case "esc":
		a.svc.Checkout.Reset()
		a.lastResult = nil
		a.setPage(pageHome)
		return a, nil
	}
	return a, nil
}

func (a *App) viewCheckoutSuccess() string {
	var b strings.Builder
	b.WriteString(okStyle.Render("✓ Order placed") + "\n\n")
	if a.lastResult != nil {
		b.WriteString("Your order number is " + selectedStyle.Render(a.lastResult.OrderNumber) + ".\n")
	}
	b.WriteString("A confirmation email is on its way.\n")
	b.WriteString(dimStyle.Render("\nenter view your orders · esc home"))
	return b.String()
}
