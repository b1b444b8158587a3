// internal/models/order.go
package models

import (
	"fmt"
	"time"

	"github.com/Thangttq233/FYP2025-FE/internal/i18n"
)

// OrderStatus and PaymentStatus travel over the wire as the backend's enum
// ordinals, so both are int-backed.
type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusConfirmed
	OrderStatusProcessing
	OrderStatusShipped
	OrderStatusDelivered
	OrderStatusCancelled
	OrderStatusReturned
)

type PaymentStatus int

const (
	PaymentStatusUnpaid PaymentStatus = iota
	PaymentStatusPaid
	PaymentStatusFailed
	PaymentStatusRefunded
)

// Severity is a presentation tag for a status badge. It carries no business
// meaning.
type Severity string

const (
	SeverityYellow Severity = "yellow"
	SeverityBlue   Severity = "blue"
	SeverityIndigo Severity = "indigo"
	SeverityCyan   Severity = "cyan"
	SeverityGreen  Severity = "green"
	SeverityRed    Severity = "red"
	SeverityGray   Severity = "gray"
	SeverityStone  Severity = "stone"
)

// Style is the display mapping for a status value.
type Style struct {
	LabelKey string
	Severity Severity
}

func (s OrderStatus) Valid() bool {
	return s >= OrderStatusPending && s <= OrderStatusReturned
}

// Terminal reports whether the status ends the order lifecycle.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusConfirmed:
		return "Confirmed"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	case OrderStatusReturned:
		return "Returned"
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

// Style returns the badge mapping for the status. Unknown values fall back to
// a neutral badge rather than panicking, since the wire value comes from the
// server.
func (s OrderStatus) Style() Style {
	switch s {
	case OrderStatusPending:
		return Style{i18n.KeyOrderStatusPending, SeverityYellow}
	case OrderStatusConfirmed:
		return Style{i18n.KeyOrderStatusConfirmed, SeverityBlue}
	case OrderStatusProcessing:
		return Style{i18n.KeyOrderStatusProcessing, SeverityIndigo}
	case OrderStatusShipped:
		return Style{i18n.KeyOrderStatusShipped, SeverityCyan}
	case OrderStatusDelivered:
		return Style{i18n.KeyOrderStatusDelivered, SeverityGreen}
	case OrderStatusCancelled:
		return Style{i18n.KeyOrderStatusCancelled, SeverityRed}
	case OrderStatusReturned:
		return Style{i18n.KeyOrderStatusReturned, SeverityGray}
	}
	return Style{LabelKey: s.String(), Severity: SeverityStone}
}

func (s OrderStatus) Label(lang string) string {
	return i18n.T(lang, s.Style().LabelKey)
}

// ParseOrderStatus maps a status name back to its enum value.
func ParseOrderStatus(name string) (OrderStatus, error) {
	for s := OrderStatusPending; s <= OrderStatusReturned; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown order status %q", name)
}

func (s PaymentStatus) Valid() bool {
	return s >= PaymentStatusUnpaid && s <= PaymentStatusRefunded
}

// Payable reports whether a payment attempt may be initiated. Unpaid is the
// only state that allows one.
func (s PaymentStatus) Payable() bool {
	return s == PaymentStatusUnpaid
}

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusUnpaid:
		return "Unpaid"
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusFailed:
		return "Failed"
	case PaymentStatusRefunded:
		return "Refunded"
	}
	return fmt.Sprintf("PaymentStatus(%d)", int(s))
}

func (s PaymentStatus) Style() Style {
	switch s {
	case PaymentStatusUnpaid:
		return Style{i18n.KeyPaymentStatusUnpaid, SeverityYellow}
	case PaymentStatusPaid:
		return Style{i18n.KeyPaymentStatusPaid, SeverityGreen}
	case PaymentStatusFailed:
		return Style{i18n.KeyPaymentStatusFailed, SeverityRed}
	case PaymentStatusRefunded:
		return Style{i18n.KeyPaymentStatusRefunded, SeverityBlue}
	}
	return Style{LabelKey: s.String(), Severity: SeverityStone}
}

func (s PaymentStatus) Label(lang string) string {
	return i18n.T(lang, s.Style().LabelKey)
}

// OrderItem snapshots the product and variant at order time. Later catalog
// edits must not alter historical orders.
type OrderItem struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"orderId"`
	ProductVariantID string  `json:"productVariantId"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unitPrice"`
	ProductName      string  `json:"productSnapshotName"`
	Color            string  `json:"productVariantSnapshotColor"`
	Size             string  `json:"productVariantSnapshotSize"`
	ImageURL         string  `json:"productVariantSnapshotImageUrl"`
}

type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	OrderDate       time.Time     `json:"orderDate"`
	TotalPrice      float64       `json:"totalPrice"`
	ShippingAddress string        `json:"shippingAddress"`
	PhoneNumber     string        `json:"phoneNumber"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerNotes   string        `json:"customerNotes,omitempty"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Items           []OrderItem   `json:"items"`
}

type CreateOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PhoneNumber     string `json:"phoneNumber"`
	CustomerNotes   string `json:"customerNotes"`
}

type UpdateOrderStatusRequest struct {
	OrderID   string      `json:"orderId"`
	NewStatus OrderStatus `json:"newStatus"`
}

type PaymentURLResponse struct {
	PaymentURL string `json:"paymentUrl"`
}
