// internal/i18n/i18n.go
package i18n

import "fmt"

const defaultLang = "vi"

// The client ships its own strings; unlike a server there is nothing to load
// at runtime, so the locale tables live here.
var translations = map[string]map[string]string{
	"vi": {
		KeyOrderStatusPending:    "Chờ xác nhận",
		KeyOrderStatusConfirmed:  "Đã xác nhận",
		KeyOrderStatusProcessing: "Đang xử lý",
		KeyOrderStatusShipped:    "Đang giao",
		KeyOrderStatusDelivered:  "Đã giao",
		KeyOrderStatusCancelled:  "Đã hủy",
		KeyOrderStatusReturned:   "Đã hoàn",

		KeyPaymentStatusUnpaid:   "Chưa thanh toán",
		KeyPaymentStatusPaid:     "Đã thanh toán",
		KeyPaymentStatusFailed:   "Thất bại",
		KeyPaymentStatusRefunded: "Đã hoàn tiền",

		KeyErrorGeneric:       "Đã có lỗi xảy ra. Vui lòng thử lại.",
		KeyErrorCartLoad:      "Không thể tải giỏ hàng, vui lòng thử lại.",
		KeyErrorCartUpdate:    "Không thể cập nhật số lượng, vui lòng thử lại.",
		KeyErrorCartRemove:    "Không thể xóa sản phẩm, vui lòng thử lại.",
		KeyErrorOrderLoad:     "Không thể tải đơn hàng.",
		KeyErrorStatusUpdate:  "Cập nhật trạng thái thất bại.",
		KeyErrorSessionExpiry: "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.",

		KeyValidationRequired: "Vui lòng điền %s.",
		KeyValidationEmail:    "Email không hợp lệ.",
		KeyValidationInvalid:  "%s không hợp lệ.",

		KeyPaymentReturnSuccess: "Thanh toán thành công!",
		KeyPaymentReturnFailed:  "Thanh toán thất bại!",
		KeyPaymentReturnUnknown: "Chưa xác định kết quả thanh toán.",
	},
	"en": {
		KeyOrderStatusPending:    "Pending",
		KeyOrderStatusConfirmed:  "Confirmed",
		KeyOrderStatusProcessing: "Processing",
		KeyOrderStatusShipped:    "Shipped",
		KeyOrderStatusDelivered:  "Delivered",
		KeyOrderStatusCancelled:  "Cancelled",
		KeyOrderStatusReturned:   "Returned",

		KeyPaymentStatusUnpaid:   "Unpaid",
		KeyPaymentStatusPaid:     "Paid",
		KeyPaymentStatusFailed:   "Failed",
		KeyPaymentStatusRefunded: "Refunded",

		KeyErrorGeneric:       "Something went wrong. Please try again.",
		KeyErrorCartLoad:      "Could not load your cart, please try again.",
		KeyErrorCartUpdate:    "Could not update quantity, please try again.",
		KeyErrorCartRemove:    "Could not remove the item, please try again.",
		KeyErrorOrderLoad:     "Could not load the order.",
		KeyErrorStatusUpdate:  "Status update failed.",
		KeyErrorSessionExpiry: "Your session has expired. Please log in again.",

		KeyValidationRequired: "Please fill in %s.",
		KeyValidationEmail:    "Invalid email format.",
		KeyValidationInvalid:  "%s is invalid.",

		KeyPaymentReturnSuccess: "Payment successful!",
		KeyPaymentReturnFailed:  "Payment failed!",
		KeyPaymentReturnUnknown: "Payment outcome is not yet known.",
	},
}

// T resolves a translation key, falling back to the default language and
// finally to the key itself.
func T(lang, key string, args ...interface{}) string {
	if text, ok := translations[lang][key]; ok {
		return format(text, args...)
	}
	if text, ok := translations[defaultLang][key]; ok {
		return format(text, args...)
	}
	return key
}

func format(text string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}
