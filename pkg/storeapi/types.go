package storeapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mashood007/fp-store-front/pkg/enums"
	"github.com/mashood007/fp-store-front/pkg/types"
)

// ProductImage is one gallery entry on a product.
type ProductImage struct {
	ID    string  `json:"id"`
	URL   string  `json:"url"`
	Alt   *string `json:"alt"`
	Order int     `json:"order"`
}

// Product is one catalog entry as served by the store API.
type Product struct {
	ID          string          `json:"id"`
	FriendlyID  string          `json:"friendlyId"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    *string         `json:"category"`
	IsActive    bool            `json:"isActive"`
	Images      []ProductImage  `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Pagination is the cursorless window metadata on list responses.
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ProductsResponse is the catalog listing payload.
type ProductsResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ListProductsParams narrows a catalog listing. Zero values are omitted.
type ListProductsParams struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// Customer is the profile of the authenticated shopper.
type Customer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
}

// AuthResponse is the success payload of the auth endpoints.
type AuthResponse struct {
	Customer Customer `json:"customer"`
	Token    string   `json:"token"`
}

// ProfileUpdate is a partial profile change for PUT /customers/profile.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ProfileResponse wraps the updated customer.
type ProfileResponse struct {
	Customer Customer `json:"customer"`
}

// OrderItemInput is one purchased line sent on order creation. Pricing is
// resolved server-side; the client only names the product and quantity.
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress types.Address    `json:"shippingAddress"`
}

// OrderProduct is one priced line on a placed order.
type OrderProduct struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is the server-owned snapshot of a purchase. All amounts are computed
// by the backend and only displayed here.
type Order struct {
	ID              string            `json:"id"`
	OrderNumber     string            `json:"orderNumber"`
	Status          enums.OrderStatus `json:"status"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	ShippingCost    decimal.Decimal   `json:"shippingCost"`
	TaxAmount       decimal.Decimal   `json:"taxAmount"`
	DiscountAmount  decimal.Decimal   `json:"discountAmount"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	TrackingNumber  *string           `json:"trackingNumber"`
	CancelReason    *string           `json:"cancelReason"`
	ShippingAddress types.Address     `json:"shippingAddress"`
	Products        []OrderProduct    `json:"orderProducts"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// OrdersResponse is the order history payload.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// CreateCheckoutRequest is the body of POST /checkout.
type CreateCheckoutRequest struct {
	OrderID        string              `json:"orderId"`
	PaymentMethod  enums.PaymentMethod `json:"paymentMethod"`
	BillingAddress types.Address       `json:"billingAddress"`
}

// Checkout associates one order with a payment attempt. SessionID correlates
// the later completion call.
type Checkout struct {
	ID            string              `json:"id"`
	OrderID       string              `json:"orderId"`
	PaymentStatus enums.PaymentStatus `json:"paymentStatus"`
	SessionID     string              `json:"sessionId"`
}

// CompleteCheckoutRequest is the body of POST /checkout/{id}/complete.
type CompleteCheckoutRequest struct {
	PaymentReference string `json:"paymentReference"`
	PaymentGateway   string `json:"paymentGateway"`
	SessionID        string `json:"sessionId"`
}
