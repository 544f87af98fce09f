package orders

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status define el estado de un pedido.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func (s Status) Label() string {
	switch s {
	case StatusShipped:
		return "Enviado"
	case StatusDelivered:
		return "Entregue"
	case StatusProcessing:
		return "Processando"
	default:
		return string(s)
	}
}

// PaymentMethod define los medios de pago ofrecidos.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentPix:
		return "Pix"
	case PaymentBoleto:
		return "Boleto"
	case PaymentCreditCard:
		return "Cartão de Crédito"
	default:
		return string(m)
	}
}

// Order es el snapshot inmutable de un checkout exitoso.
type Order struct {
	ID            string
	CreatedAt     time.Time
	Items         []Item
	Total         decimal.Decimal
	Status        Status
	PaymentMethod PaymentMethod
}

var ErrEmptyCart = errors.New("cart is empty")

// NewOrderID genera ids tipo ORD-xxxxxxxx.
func NewOrderID() string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return "ORD-" + strings.ToUpper(frag)
}

// Checkout materializa el pedido congelando los ítems y el total del
// carrito al momento de la confirmación. Nace Processing. No vacía el
// carrito: eso lo decide quien confirma, después de persistir el pedido.
func Checkout(c *Cart, method PaymentMethod, now time.Time) (Order, error) {
	if c == nil || c.Empty() {
		return Order{}, ErrEmptyCart
	}
	return Order{
		ID:            NewOrderID(),
		CreatedAt:     now,
		Items:         c.Items(),
		Total:         c.Total(),
		Status:        StatusProcessing,
		PaymentMethod: method,
	}, nil
}
