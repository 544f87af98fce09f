package memory

import (
	"context"
	"sync"

	"vetcare-pro/internal/domain/orders"
)

// OrdersHistory acumula pedidos en memoria, más reciente primero.
// Se pierde al cerrar el cliente, igual que en el front original.
type OrdersHistory struct {
	mu   sync.RWMutex
	list []orders.Order
}

func NewOrdersHistory() *OrdersHistory {
	return &OrdersHistory{}
}

func (h *OrdersHistory) Append(ctx context.Context, o orders.Order) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.list = append([]orders.Order{o}, h.list...)
	return nil
}

func (h *OrdersHistory) List(ctx context.Context) ([]orders.Order, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]orders.Order, len(h.list))
	copy(out, h.list)
	return out, nil
}
