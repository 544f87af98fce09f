package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"vetcare-pro/internal/domain/orders"
)

// Settler es el colaborador de liquidación del checkout. La implementación
// real (pasarela de pago) entra por acá; un fallo devuelve el checkout al
// paso de pago en vez de avanzarlo.
type Settler interface {
	Settle(ctx context.Context, method orders.PaymentMethod, amount decimal.Decimal) error
}

// SimulatedSettler aprueba todo tras una demora fija, como el checkout
// simulado del front original. Err permite inyectar rechazos en tests.
type SimulatedSettler struct {
	Delay time.Duration
	Err   error
}

func (s SimulatedSettler) Settle(ctx context.Context, _ orders.PaymentMethod, _ decimal.Decimal) error {
	delay := s.Delay
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Err
}
