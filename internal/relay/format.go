package relay

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"vanta-be/internal/notify"
)

const rule = "━━━━━━━━━━━━━━━━━━"

// Messages are sent with parse_mode HTML, so every customer-supplied value is
// escaped before it is interpolated.
var esc = html.EscapeString

func FormatOrder(p notify.OrderPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 <b>New order #%d</b>\n", p.ID)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s\n", esc(p.CustomerName))
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", esc(p.CustomerPhone))
	b.WriteString(rule + "\n")
	b.WriteString("🛒 <b>Order:</b>\n")
	for _, it := range p.Items {
		size := ""
		if it.Size != "" {
			size = " (" + esc(it.Size) + ")"
		}
		fmt.Fprintf(&b, "  • %s%s x%d — $%.2f\n", esc(it.Name), size, it.Quantity, it.Price*float64(it.Quantity))
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "💰 <b>Total:</b> $%.2f", p.Total)
	return b.String()
}

func FormatReservation(p notify.ReservationPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🪑 <b>New reservation #%d</b>\n", p.ID)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", esc(p.CustomerName))
	fmt.Fprintf(&b, "📅 <b>Date:</b> %s\n", esc(p.Date))
	fmt.Fprintf(&b, "🕐 <b>Time:</b> %s\n", esc(p.Time))
	fmt.Fprintf(&b, "👥 <b>Guests:</b> %d\n", p.Guests)
	fmt.Fprintf(&b, "📱 <b>Contact:</b> %s\n", esc(p.CustomerContact))
	if p.Notes != "" {
		fmt.Fprintf(&b, "📝 <b>Notes:</b> %s\n", esc(p.Notes))
	}
	b.WriteString(rule)
	return b.String()
}

func FormatSubscription(p notify.SubscriptionPayload) string {
	var b strings.Builder
	b.WriteString("☕ <b>New subscription!</b>\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", esc(p.CustomerName))
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", esc(p.CustomerPhone))
	fmt.Fprintf(&b, "📦 <b>Plan:</b> %s\n", esc(p.Plan))
	fmt.Fprintf(&b, "💰 <b>Price:</b> $%s/mo\n", strconv.FormatFloat(p.Price, 'f', -1, 64))
	b.WriteString(rule)
	return b.String()
}
