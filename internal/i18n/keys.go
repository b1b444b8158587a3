// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Order status labels
	KeyOrderStatusPending    = "order_status.pending"
	KeyOrderStatusConfirmed  = "order_status.confirmed"
	KeyOrderStatusProcessing = "order_status.processing"
	KeyOrderStatusShipped    = "order_status.shipped"
	KeyOrderStatusDelivered  = "order_status.delivered"
	KeyOrderStatusCancelled  = "order_status.cancelled"
	KeyOrderStatusReturned   = "order_status.returned"

	// Payment status labels
	KeyPaymentStatusUnpaid   = "payment_status.unpaid"
	KeyPaymentStatusPaid     = "payment_status.paid"
	KeyPaymentStatusFailed   = "payment_status.failed"
	KeyPaymentStatusRefunded = "payment_status.refunded"

	// Errors
	KeyErrorGeneric       = "error.generic"
	KeyErrorCartLoad      = "error.cart_load"
	KeyErrorCartUpdate    = "error.cart_update"
	KeyErrorCartRemove    = "error.cart_remove"
	KeyErrorOrderLoad     = "error.order_load"
	KeyErrorStatusUpdate  = "error.status_update"
	KeyErrorSessionExpiry = "error.session_expired"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationEmail    = "validation.email"
	KeyValidationInvalid  = "validation.invalid"

	// Payment return
	KeyPaymentReturnSuccess = "payment_return.success"
	KeyPaymentReturnFailed  = "payment_return.failed"
	KeyPaymentReturnUnknown = "payment_return.unknown"
)
