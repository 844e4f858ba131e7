package view

import "fmt"

// MoneyFromCents converts cents to a human-readable currency string.
// E.g., 150000 NGN -> "₦1,500.00"
func MoneyFromCents(cents int64, currency string) string {
	major := cents / 100
	minor := cents % 100
	if minor < 0 {
		minor = -minor
	}
	return fmt.Sprintf("%s%s.%02d", currencySymbol(currency), groupThousands(major), minor)
}

func currencySymbol(code string) string {
	switch code {
	case "NGN":
		return "₦"
	case "GHS":
		return "GH₵"
	case "KES":
		return "KSh "
	case "ZAR":
		return "R"
	case "XOF":
		return "CFA "
	case "USD":
		return "$"
	default:
		return code + " "
	}
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// StatusLabel renders an order status enum as display text,
// e.g. READY_FOR_PICKUP -> "Ready for pickup".
func StatusLabel(status string) string {
	switch status {
	case "PENDING":
		return "Pending"
	case "CONFIRMED":
		return "Confirmed"
	case "READY_FOR_PICKUP":
		return "Ready for pickup"
	case "PICKED_UP":
		return "Picked up"
	case "IN_TRANSIT":
		return "In transit"
	case "DELIVERED":
		return "Delivered"
	case "CANCELLED":
		return "Cancelled"
	case "FAILED_DELIVERY":
		return "Failed delivery"
	default:
		return status
	}
}
