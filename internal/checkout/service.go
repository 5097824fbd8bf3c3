// Package checkout drives the purchase workflow: order creation, payment
// initialization, and simulated payment completion, with the UI-visible
// phase transitions between them.
package checkout

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/logger"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

// Phase is the user-visible state of the checkout workflow.
type Phase string

const (
	PhaseForm       Phase = "form"
	PhaseProcessing Phase = "processing"
	PhasePayment    Phase = "payment"
	PhaseSucceeded  Phase = "succeeded"
)

type checkoutAPI interface {
	CreateOrder(ctx context.Context, token string, req storeapi.CreateOrderRequest) (*storeapi.Order, error)
	CreateCheckout(ctx context.Context, token string, req storeapi.CreateCheckoutRequest) (*storeapi.Checkout, error)
	CompleteCheckout(ctx context.Context, token, checkoutID string, req storeapi.CompleteCheckoutRequest) (*storeapi.Checkout, error)
}

type cartStore interface {
	IsEmpty() bool
	OrderItems() []storeapi.OrderItemInput
	Clear()
}

type sessionStore interface {
	IsAuthenticated() bool
	Token() string
}

// Result is what the success view needs: the order identity keyed by its
// human-readable number.
type Result struct {
	OrderID     string
	OrderNumber string
}

// OrchestratorParams bundles the dependencies required to build an
// orchestrator.
type OrchestratorParams struct {
	API          checkoutAPI
	Cart         cartStore
	Session      sessionStore
	Logger       *logger.Logger
	PaymentDelay time.Duration
	Gateway      string
	// OnTransition, when set, observes every phase change. Called outside
	// the orchestrator's lock.
	OnTransition func(Phase)
}

// Orchestrator sequences the three remote checkout calls in strict program
// order. Each attempt is terminal on failure: the phase returns to the form
// and a resubmission starts a fresh attempt (and a fresh order).
type Orchestrator struct {
	api          checkoutAPI
	cart         cartStore
	session      sessionStore
	logger       *logger.Logger
	paymentDelay time.Duration
	gateway      string
	onTransition func(Phase)

	// injectable for tests
	wait      func(ctx context.Context, d time.Duration) error
	reference func() string

	state phaseState
}

// NewOrchestrator validates dependencies and builds the orchestrator at
// PhaseForm.
func NewOrchestrator(params OrchestratorParams) (*Orchestrator, error) {
	if params.API == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if params.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.PaymentDelay < 0 {
		return nil, fmt.Errorf("payment delay must not be negative")
	}
	gateway := params.Gateway
	if gateway == "" {
		gateway = "simulation"
	}

	return &Orchestrator{
		api:          params.API,
		cart:         params.Cart,
		session:      params.Session,
		logger:       params.Logger,
		paymentDelay: params.PaymentDelay,
		gateway:      gateway,
		onTransition: params.OnTransition,
		wait:         waitFor,
		reference:    storeapi.NewPaymentReference,
		state:        newPhaseState(),
	}, nil
}

// Submit runs one checkout attempt. It short-circuits locally when the
// session is unauthenticated, the cart is empty, or the form is invalid; no
// remote call is issued in those cases. The simulated-payment delay is tied
// to ctx, so abandoning the flow cancels it.
func (o *Orchestrator) Submit(ctx context.Context, form *Form) (*Result, error) {
	if !o.state.begin() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout is already in progress")
	}

	result, err := o.run(ctx, form)
	if err != nil {
		o.state.fail(pkgerrors.UserMessage(err))
		o.notify(PhaseForm)
		return nil, err
	}

	o.state.succeed()
	o.notify(PhaseSucceeded)
	return result, nil
}

func (o *Orchestrator) run(ctx context.Context, form *Form) (*Result, error) {
	if !o.session.IsAuthenticated() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "please sign in to check out")
	}
	if o.cart.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "your cart is empty")
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	token := o.session.Token()

	o.advance(PhaseProcessing)

	order, err := o.api.CreateOrder(ctx, token, storeapi.CreateOrderRequest{
		Items:           o.cart.OrderItems(),
		ShippingAddress: form.Shipping,
	})
	if err != nil {
		return nil, err
	}
	ctx = o.logger.WithOrderID(ctx, order.ID)

	session, err := o.api.CreateCheckout(ctx, token, storeapi.CreateCheckoutRequest{
		OrderID:        order.ID,
		PaymentMethod:  form.PaymentMethod,
		BillingAddress: form.BillingAddress(),
	})
	if err != nil {
		return nil, err
	}

	o.advance(PhasePayment)

	if err := o.wait(ctx, o.paymentDelay); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checkout abandoned before payment completed")
	}

	if _, err := o.api.CompleteCheckout(ctx, token, session.ID, storeapi.CompleteCheckoutRequest{
		PaymentReference: o.reference(),
		PaymentGateway:   o.gateway,
		SessionID:        session.SessionID,
	}); err != nil {
		return nil, err
	}

	o.cart.Clear()
	o.logger.Info(ctx, "checkout completed")
	return &Result{OrderID: order.ID, OrderNumber: order.OrderNumber}, nil
}

// Phase reports the current user-visible phase.
func (o *Orchestrator) Phase() Phase {
	return o.state.phase()
}

// Err returns the user-visible message of the last failed attempt, cleared
// on the next submission.
func (o *Orchestrator) Err() string {
	return o.state.err()
}

// Reset returns the workflow to the form, e.g. when the customer leaves the
// confirmation view to shop again.
func (o *Orchestrator) Reset() {
	o.state.reset()
	o.notify(PhaseForm)
}

func (o *Orchestrator) advance(phase Phase) {
	o.state.advance(phase)
	o.notify(phase)
}

func (o *Orchestrator) notify(phase Phase) {
	if o.onTransition != nil {
		o.onTransition(phase)
	}
}

// waitFor blocks for the simulated payment delay or until ctx is done,
// whichever comes first.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
