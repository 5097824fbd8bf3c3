package checkout

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mashood007/fp-store-front/pkg/enums"
	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/types"
)

var validate = validator.New()

// contactFields carries the parts of the form checked by struct tags.
type contactFields struct {
	Email string `validate:"required,email"`
}

// Form is the checkout form state: contact email, shipping and billing
// addresses, the same-address toggle, and the chosen payment method.
//
// While UseSameAddress is on, every shipping edit mirrors into billing
// through deriveBilling. Turning the toggle off freezes billing at the last
// mirrored values; it then edits independently.
type Form struct {
	Email          string
	Shipping       types.Address
	Billing        types.Address
	UseSameAddress bool
	PaymentMethod  enums.PaymentMethod
}

// NewForm returns a form with the defaults the checkout page starts from.
func NewForm() *Form {
	return &Form{
		UseSameAddress: true,
		PaymentMethod:  enums.PaymentMethodCard,
	}
}

// deriveBilling is the one-way shipping-to-billing synchronization rule.
func deriveBilling(shipping types.Address) types.Address {
	return shipping
}

// SetShipping records a shipping edit, mirroring it into billing while the
// toggle is on.
func (f *Form) SetShipping(addr types.Address) {
	f.Shipping = addr
	if f.UseSameAddress {
		f.Billing = deriveBilling(addr)
	}
}

// SetBilling records a billing edit. It only takes effect while billing is
// independently editable.
func (f *Form) SetBilling(addr types.Address) {
	if f.UseSameAddress {
		return
	}
	f.Billing = addr
}

// SetUseSameAddress flips the toggle. Turning it on re-mirrors billing from
// the current shipping fields; turning it off leaves billing at its last
// mirrored values as the editing starting point.
func (f *Form) SetUseSameAddress(on bool) {
	f.UseSameAddress = on
	if on {
		f.Billing = deriveBilling(f.Shipping)
	}
}

// BillingAddress resolves the address sent on checkout initialization.
func (f *Form) BillingAddress() types.Address {
	if f.UseSameAddress {
		return deriveBilling(f.Shipping)
	}
	return f.Billing
}

// Validate checks the form before any remote call is issued.
func (f *Form) Validate() error {
	if err := validate.Struct(contactFields{Email: strings.TrimSpace(f.Email)}); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	if err := f.Shipping.Validate(); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping "+err.Error())
	}
	if err := f.BillingAddress().Validate(); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "billing "+err.Error())
	}
	if !f.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "a payment method is required")
	}
	return nil
}
