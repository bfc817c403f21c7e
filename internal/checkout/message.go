package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/matematicodogreen/mhdelivery/internal/cart"
	"github.com/matematicodogreen/mhdelivery/internal/catalog"
)

func paymentText(method string) string {
	switch method {
	case PaymentPix:
		return "PIX (Pagamento antecipado)"
	case PaymentCredit:
		return "Cartão de Crédito (Pagamento na entrega)"
	default:
		return "Cartão de Débito (Pagamento na entrega)"
	}
}

// orderMessage renders the order summary sent to the store over WhatsApp.
func orderMessage(st catalog.Settings, req Request, lines []cart.Line, subtotal, fee, total decimal.Decimal) string {
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		items = append(items, fmt.Sprintf("• %s - Qtd: %d - R$ %s", l.Name, l.Quantity, lineTotal.StringFixed(2)))
	}

	var zoneText string
	for _, z := range st.DeliveryZones {
		if z.ID == req.ZoneID {
			zoneText = "\n🛵 *Zona de Entrega:* " + z.Name
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *NOVO PEDIDO - %s*\n\n", st.StoreName)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", req.Customer.Name)
	fmt.Fprintf(&b, "📱 *Telefone:* %s\n", req.Customer.Phone)
	fmt.Fprintf(&b, "📍 *Endereço:* %s\n", req.Customer.Address)
	if req.Customer.Complement != "" {
		fmt.Fprintf(&b, "🏠 *Complemento:* %s", req.Customer.Complement)
	}
	b.WriteString(zoneText)
	b.WriteString("\n\n📦 *Itens do Pedido:*\n")
	b.WriteString(strings.Join(items, "\n"))
	b.WriteString("\n\n💰 *Resumo do Pedido:*\n")
	fmt.Fprintf(&b, "Subtotal: R$ %s\n", subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Taxa de entrega: R$ %s\n", fee.StringFixed(2))
	fmt.Fprintf(&b, "*Total: R$ %s*\n\n", total.StringFixed(2))
	fmt.Fprintf(&b, "💳 *Forma de Pagamento:* %s\n\n", paymentText(req.PaymentMethod))
	if req.Customer.Observations != "" {
		fmt.Fprintf(&b, "📝 *Observações:* %s\n\n", req.Customer.Observations)
	}
	b.WriteString("---\nPedido realizado através do app de delivery")
	return b.String()
}

// whatsAppURL builds the wa.me deep link that opens a chat pre-filled with
// the order message.
func whatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
