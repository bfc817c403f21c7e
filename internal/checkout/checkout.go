// Package checkout computes order totals, gates submission and hands the
// finished order off to WhatsApp as a pre-formatted message link.
package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/matematicodogreen/mhdelivery/internal/cart"
	"github.com/matematicodogreen/mhdelivery/internal/catalog"
	"github.com/matematicodogreen/mhdelivery/internal/notice"
)

const (
	PaymentPix    = "pix"
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
)

type CustomerData struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Complement   string `json:"complement"`
	Observations string `json:"observations"`
}

type Request struct {
	Customer      CustomerData `json:"customer"`
	PaymentMethod string       `json:"paymentMethod"`
	ZoneID        string       `json:"zoneId"`
}

// Result is the outcome of a finished order. Redirect tells the caller to
// navigate to the WhatsApp URL immediately (PIX prepayment) instead of
// opening it in the background.
type Result struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsappUrl,omitempty"`
	Redirect    bool            `json:"redirect"`
	Notice      notice.Notice   `json:"notice"`
}

type Service struct {
	Catalog *catalog.Store
	Cart    *cart.Cart
}

// DeliveryFee resolves the fee for the selected zone, falling back to the
// default fee when no zone is selected or the id is unknown.
func (s *Service) DeliveryFee(zoneID string) decimal.Decimal {
	st := s.Catalog.Settings()
	if zoneID != "" && len(st.DeliveryZones) > 0 {
		for _, z := range st.DeliveryZones {
			if z.ID == zoneID {
				return z.Fee
			}
		}
	}
	return st.DefaultDeliveryFee
}

// Totals returns subtotal, delivery fee and payable total for the current
// cart and zone selection.
func (s *Service) Totals(zoneID string) (subtotal, fee, total decimal.Decimal) {
	subtotal = s.Cart.GetTotalPrice()
	fee = s.DeliveryFee(zoneID)
	return subtotal, fee, subtotal.Add(fee)
}

// Validate gates submission. It returns nil when the order may proceed and
// otherwise a notice with the specific rejection reason. Stock is
// re-validated here against the live catalog, not trusted from add time.
func (s *Service) Validate(req Request) *notice.Notice {
	st := s.Catalog.Settings()

	if req.Customer.Name == "" || req.Customer.Phone == "" || req.Customer.Address == "" ||
		req.PaymentMethod == "" {
		n := notice.Warn("Campos obrigatórios",
			"Por favor, preencha nome, telefone, endereço e forma de pagamento.")
		return &n
	}
	if len(st.DeliveryZones) > 0 && req.ZoneID == "" {
		n := notice.Warn("Zona de entrega", "Por favor, selecione uma zona de entrega.")
		return &n
	}
	if s.Cart.GetTotalPrice().LessThan(st.MinOrderValue) {
		n := notice.Warn("Valor mínimo não atingido",
			fmt.Sprintf("O pedido mínimo é de R$ %s", st.MinOrderValue.StringFixed(2)))
		return &n
	}
	for _, l := range s.Cart.Lines() {
		p, ok := s.Catalog.Get(l.ID)
		avail := 0
		if ok {
			avail = p.Stock
		}
		if !ok || avail < l.Quantity {
			n := notice.Warn("Estoque insuficiente",
				fmt.Sprintf("O produto %s não tem estoque suficiente. Disponível: %d.", l.Name, avail))
			return &n
		}
	}
	// PIX prepayment happens over WhatsApp, so the number must exist before
	// any stock is touched.
	if req.PaymentMethod == PaymentPix && st.WhatsAppNumber == "" {
		n := notice.Warn("WhatsApp não configurado",
			"O número do WhatsApp não foi configurado pelo administrador.")
		return &n
	}
	return nil
}

// Finish validates the order and, on success, decrements stock per line,
// clears the cart and builds the WhatsApp handoff. A validation failure is
// reported in Result.Notice with no state change.
func (s *Service) Finish(ctx context.Context, req Request) (Result, error) {
	subtotal, fee, total := s.Totals(req.ZoneID)
	res := Result{Subtotal: subtotal, DeliveryFee: fee, Total: total}

	if n := s.Validate(req); n != nil {
		res.Notice = *n
		return res, nil
	}

	st := s.Catalog.Settings()
	lines := s.Cart.Lines()

	for _, l := range lines {
		if err := s.Catalog.DecreaseStock(ctx, l.ID, l.Quantity); err != nil {
			return res, err
		}
	}

	res.Message = orderMessage(st, req, lines, subtotal, fee, total)
	if st.WhatsAppNumber != "" {
		res.WhatsAppURL = whatsAppURL(st.WhatsAppNumber, res.Message)
	}

	if err := s.Cart.ClearCart(ctx); err != nil {
		return res, err
	}

	if req.PaymentMethod == PaymentPix {
		res.Redirect = true
		res.Notice = notice.Info("Pedido enviado!",
			"Você será redirecionado para o WhatsApp para finalizar o pagamento via PIX.")
	} else {
		res.Notice = notice.Info("Pedido confirmado!",
			"Seu pedido foi enviado e será entregue em breve. O pagamento será feito na entrega.")
	}
	return res, nil
}
