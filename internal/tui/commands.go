package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mashood007/fp-store-front/internal/checkout"
	"github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

type productsLoadedMsg struct {
	products []storeapi.Product
}

type productLoadedMsg struct {
	product *storeapi.Product
}

type authDoneMsg struct {
	err error
}

type ordersLoadedMsg struct {
	orders []storeapi.Order
	err    error
}

type orderCancelledMsg struct {
	order *storeapi.Order
	err   error
}

type profileSavedMsg struct {
	err error
}

type checkoutDoneMsg struct {
	result *checkout.Result
	err    error
}

type errMsg struct {
	err error
}

func (a *App) loadProducts(params storeapi.ListProductsParams) tea.Cmd {
	a.loadingList = true
	svc := a.svc.Catalog
	return func() tea.Msg {
		resp, err := svc.List(context.Background(), params)
		if err != nil {
			return errMsg{err}
		}
		return productsLoadedMsg{products: resp.Products}
	}
}

func (a *App) loadProduct(id string) tea.Cmd {
	svc := a.svc.Catalog
	return func() tea.Msg {
		product, err := svc.Get(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return productLoadedMsg{product: product}
	}
}

func (a *App) loadOrders() tea.Cmd {
	svc := a.svc.Orders
	return func() tea.Msg {
		rows, err := svc.List(context.Background())
		return ordersLoadedMsg{orders: rows, err: err}
	}
}

func (a *App) cancelOrder(order storeapi.Order, reason string) tea.Cmd {
	svc := a.svc.Orders
	return func() tea.Msg {
		updated, err := svc.Cancel(context.Background(), order, reason)
		return orderCancelledMsg{order: updated, err: err}
	}
}

func (a *App) login(email, password string) tea.Cmd {
	session := a.svc.Session
	return func() tea.Msg {
		return authDoneMsg{err: session.Login(context.Background(), email, password)}
	}
}

func (a *App) register(data registerForm) tea.Cmd {
	session := a.svc.Session
	return func() tea.Msg {
		return authDoneMsg{err: session.Register(context.Background(), data.toRegisterData())}
	}
}

func (a *App) saveProfile(name, phone string) tea.Cmd {
	session := a.svc.Session
	return func() tea.Msg {
		update := storeapi.ProfileUpdate{}
		if name != "" {
			update.Name = &name
		}
		if phone != "" {
			update.Phone = &phone
		}
		return profileSavedMsg{err: session.UpdateProfile(context.Background(), update)}
	}
}

func (a *App) submitCheckout() tea.Cmd {
	orch := a.svc.Checkout
	form := a.form
	return func() tea.Msg {
		result, err := orch.Submit(context.Background(), form)
		return checkoutDoneMsg{result: result, err: err}
	}
}

// userMessage keeps raw transport detail out of the banner.
func userMessage(err error) string {
	return errors.UserMessage(err)
}
