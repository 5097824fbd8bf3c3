// Package tui renders the storefront pages in the terminal. It follows The
// Elm Architecture: one root model, messages for every state change, and
// commands for slow work so the update loop never blocks on the network.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mashood007/fp-store-front/internal/auth"
	"github.com/mashood007/fp-store-front/internal/cart"
	"github.com/mashood007/fp-store-front/internal/catalog"
	"github.com/mashood007/fp-store-front/internal/checkout"
	"github.com/mashood007/fp-store-front/internal/orders"
	"github.com/mashood007/fp-store-front/pkg/logger"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

// page identifies which storefront screen is showing.
type page int

const (
	pageHome page = iota
	pageProducts
	pageProductDetail
	pageCart
	pageCheckout
	pageCheckoutSuccess
	pageLogin
	pageRegister
	pageOrders
	pageOrderDetail
	pageProfile
)

// Services bundles everything the storefront pages operate on.
type Services struct {
	Logger   *logger.Logger
	Catalog  *catalog.Service
	Cart     *cart.Store
	Session  *auth.Session
	Orders   *orders.Service
	Checkout *checkout.Orchestrator
}

// App is the root model. All page state lives here; sub-models from bubbles
// (list, textinput, spinner) handle their own keystrokes.
type App struct {
	svc Services

	page   page
	width  int
	height int

	// transient banner shown at the top of the current page
	errText    string
	statusText string

	// products
	productList list.Model
	searchInput textinput.Model
	searching   bool
	category    string
	loadingList bool

	// product detail
	detail    *storeapi.Product
	detailQty int

	// cart
	cartCursor int

	// auth
	authInputs []textinput.Model
	authFocus  int
	authBusy   bool

	// checkout
	form            *checkout.Form
	checkoutInputs  []textinput.Model
	checkoutFocus   int
	submitting      bool
	spin            spinner.Model
	lastResult      *checkout.Result
	billingEditable bool

	// orders
	orderRows     []storeapi.Order
	orderCursor   int
	selectedOrder *storeapi.Order
	ordersBusy    bool
	cancelPrompt  bool
	cancelInput   textinput.Model

	// profile
	profileInputs  []textinput.Model
	profileFocus   int
	profileEditing bool
	profileBusy    bool
}

func (p page) name() string {
	switch p {
	case pageHome:
		return "home"
	case pageProducts:
		return "products"
	case pageProductDetail:
		return "product_detail"
	case pageCart:
		return "cart"
	case pageCheckout:
		return "checkout"
	case pageCheckoutSuccess:
		return "checkout_success"
	case pageLogin:
		return "login"
	case pageRegister:
		return "register"
	case pageOrders:
		return "orders"
	case pageOrderDetail:
		return "order_detail"
	case pageProfile:
		return "profile"
	}
	return "unknown"
}

// setPage switches the visible page and records the navigation.
func (a *App) setPage(p page) {
	a.page = p
	ctx := a.svc.Logger.WithPage(context.Background(), p.name())
	a.svc.Logger.Debug(ctx, "page opened")
}

// NewApp builds the root model at the home page.
func NewApp(svc Services) *App {
	delegate := list.NewDefaultDelegate()
	productList := list.New(nil, delegate, 0, 0)
	productList.Title = "Products"
	productList.SetShowStatusBar(false)

	search := textinput.New()
	search.Placeholder = "search perfumes and decor"
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	cancelReason := textinput.New()
	cancelReason.Placeholder = "reason (optional)"
	cancelReason.CharLimit = 120

	return &App{
		svc:         svc,
		page:        pageHome,
		productList: productList,
		searchInput: search,
		spin:        sp,
		cancelInput: cancelReason,
		detailQty:   1,
		form:        checkout.NewForm(),
	}
}

// Init loads the featured products behind the home page.
func (a *App) Init() tea.Cmd {
	return a.loadProducts(storeapi.ListProductsParams{Limit: 12})
}

// Update routes messages: global keys first, then async results, then the
// active page's own key handling.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.productList.SetSize(msg.Width-4, msg.Height-6)
		return a, nil

	case spinner.TickMsg:
		if !a.submitting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case productsLoadedMsg:
		a.loadingList = false
		items := make([]list.Item, 0, len(msg.products))
		for _, p := range msg.products {
			items = append(items, productItem{p})
		}
		a.productList.SetItems(items)
		return a, nil

	case productLoadedMsg:
		a.detail = msg.product
		a.detailQty = 1
		a.setPage(pageProductDetail)
		return a, nil

	case authDoneMsg:
		a.authBusy = false
		if msg.err != nil {
			a.errText = userMessage(msg.err)
			return a, nil
		}
		a.errText = ""
		a.statusText = "signed in as " + a.svc.Session.Customer().Name
		a.setPage(pageHome)
		return a, nil

	case ordersLoadedMsg:
		a.ordersBusy = false
		if msg.err != nil {
			a.errText = userMessage(msg.err)
			return a, nil
		}
		a.orderRows = msg.orders
		a.orderCursor = 0
		return a, nil

	case orderCancelledMsg:
		a.ordersBusy = false
		a.cancelPrompt = false
		if msg.err != nil {
			a.errText = userMessage(msg.err)
			return a, nil
		}
		a.errText = ""
		a.statusText = "order " + msg.order.OrderNumber + " cancelled"
		a.replaceOrder(*msg.order)
		a.selectedOrder = msg.order
		return a, nil

	case profileSavedMsg:
		a.profileBusy = false
		if msg.err != nil {
			a.errText = userMessage(msg.err)
			return a, nil
		}
		a.errText = ""
		a.statusText = "profile updated"
		a.profileEditing = false
		return a, nil

	case checkoutDoneMsg:
		a.submitting = false
		if msg.err != nil {
			a.errText = userMessage(msg.err)
			a.setPage(pageCheckout)
			return a, nil
		}
		a.errText = ""
		a.lastResult = msg.result
		a.setPage(pageCheckoutSuccess)
		return a, nil

	case errMsg:
		a.loadingList = false
		a.errText = userMessage(msg.err)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey dispatches keys to the active page. Typing pages swallow most
// keys; browsing pages share the global navigation set.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.typing() {
		return a.updateActivePage(msg)
	}
	if a.page == pageCheckout && a.submitting {
		return a.updateCheckout(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "h":
		a.leaveCheckout()
		a.setPage(pageHome)
		return a, nil
	case "p":
		a.leaveCheckout()
		a.setPage(pageProducts)
		return a, a.loadProducts(storeapi.ListProductsParams{})
	case "c":
		if a.page != pageOrders && a.page != pageOrderDetail {
			a.leaveCheckout()
			a.setPage(pageCart)
			a.cartCursor = 0
			return a, nil
		}
	case "o":
		a.leaveCheckout()
		a.setPage(pageOrders)
		a.ordersBusy = true
		return a, a.loadOrders()
	case "a":
		a.leaveCheckout()
		if a.svc.Session.IsAuthenticated() {
			a.setPage(pageProfile)
			a.profileEditing = false
		} else {
			a.enterLogin()
		}
		return a, nil
	}

	return a.updateActivePage(msg)
}

func (a *App) updateActivePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.page {
	case pageHome, pageProducts:
		return a.updateProducts(msg)
	case pageProductDetail:
		return a.updateProductDetail(msg)
	case pageCart:
		return a.updateCart(msg)
	case pageCheckout:
		return a.updateCheckout(msg)
	case pageCheckoutSuccess:
		return a.updateCheckoutSuccess(msg)
	case pageLogin, pageRegister:
		return a.updateAuth(msg)
	case pageOrders, pageOrderDetail:
		return a.updateOrders(msg)
	case pageProfile:
		return a.updateProfile(msg)
	}
	return a, nil
}

// typing reports whether a text input currently owns the keyboard.
func (a *App) typing() bool {
	switch a.page {
	case pageLogin, pageRegister:
		return true
	case pageCheckout:
		return !a.submitting
	case pageProfile:
		return a.profileEditing
	case pageOrders, pageOrderDetail:
		return a.cancelPrompt
	case pageHome, pageProducts:
		return a.searching
	}
	return false
}

// leaveCheckout abandons a non-submitting checkout so navigation elsewhere
// starts the next visit from a clean form phase.
func (a *App) leaveCheckout() {
	if a.page == pageCheckout && !a.submitting {
		a.errText = ""
	}
	if a.page == pageCheckoutSuccess {
		a.svc.Checkout.Reset()
		a.lastResult = nil
	}
}

func (a *App) replaceOrder(updated storeapi.Order) {
	for i := range a.orderRows {
		if a.orderRows[i].ID == updated.ID {
			a.orderRows[i] = updated
			return
		}
	}
}

// View renders the active page under a shared header.
func (a *App) View() string {
	body := ""
	switch a.page {
	case pageHome:
		body = a.viewHome()
	case pageProducts:
		body = a.viewProducts()
	case pageProductDetail:
		body = a.viewProductDetail()
	case pageCart:
		body = a.viewCart()
	case pageCheckout:
		body = a.viewCheckout()
	case pageCheckoutSuccess:
		body = a.viewCheckoutSuccess()
	case pageLogin:
		body = a.viewLogin()
	case pageRegister:
		body = a.viewRegister()
	case pageOrders:
		body = a.viewOrders()
	case pageOrderDetail:
		body = a.viewOrderDetail()
	case pageProfile:
		body = a.viewProfile()
	}
	return a.viewHeader() + "\n" + body
}
