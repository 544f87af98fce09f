package orders

import "context"

// HistoryRepository acumula los pedidos del cliente, más reciente primero.
// Hoy la única implementación vive en memoria (el historial se pierde al
// cerrar, igual que en el front original); un adapter contra el backend
// entra por esta misma interfaz cuando exista el contrato.
type HistoryRepository interface {
	Append(ctx context.Context, o Order) error
	List(ctx context.Context) ([]Order, error)
}
