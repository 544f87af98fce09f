package app

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"vetcare-pro/internal/domain/orders"
	"vetcare-pro/internal/domain/products"
	"vetcare-pro/internal/platform/logger"
)

// CheckoutStep es el paso del ciclo de compra. Browsing es catálogo con el
// panel del carrito cerrado; el ciclo es Browsing → Cart ⇄ Payment →
// Success, y volver a Browsing lo reinicia.
type CheckoutStep int

const (
	StepBrowsing CheckoutStep = iota
	StepCart
	StepPayment
	StepSuccess
)

// MarketTab selecciona entre catálogo e historial de pedidos.
type MarketTab int

const (
	TabCatalog MarketTab = iota
	TabOrders
)

// Marketplace es el controlador de catálogo, carrito y checkout.
type Marketplace struct {
	svc     *products.Service
	history orders.HistoryRepository
	settler Settler
	log     logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	gen     uint64
	state   LoadState
	loadErr error

	catalog  []products.Product
	term     string
	category products.Category
	tab      MarketTab

	cart       *orders.Cart
	step       CheckoutStep
	processing bool
	payErr     error
}

func NewMarketplace(svc *products.Service, history orders.HistoryRepository, settler Settler, log logger.Logger) *Marketplace {
	if log == nil {
		log = logger.Nop{}
	}
	return &Marketplace{
		svc:     svc,
		history: history,
		settler: settler,
		log:     log,
		now:     time.Now,
		cart:    orders.NewCart(),
		step:    StepBrowsing,
	}
}

func (m *Marketplace) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.state = StateLoading
	m.mu.Unlock()

	list, err := m.svc.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return nil
	}
	if err != nil {
		m.state = StateError
		m.loadErr = err
		m.log.Warn("catalog refresh failed", logger.Fields{"err": err.Error()})
		return err
	}
	m.state = StateReady
	m.loadErr = nil
	m.catalog = list
	return nil
}

func (m *Marketplace) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
}

func (m *Marketplace) State() (LoadState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.loadErr
}

func (m *Marketplace) SetSearch(term string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.term = term
}

// SetCategory filtra por categoría; vacía = todas.
func (m *Marketplace) SetCategory(c products.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.category = c
}

func (m *Marketplace) SetTab(t MarketTab) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tab = t
}

func (m *Marketplace) Tab() MarketTab {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tab
}

func (m *Marketplace) Visible() []products.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return products.Filter(m.catalog, m.term, m.category)
}

// AddToCart mergea la línea y abre el panel del carrito, como efecto
// colateral del original.
func (m *Marketplace) AddToCart(p products.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart.Add(p)
	m.step = StepCart
}

func (m *Marketplace) UpdateQuantity(productID string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart.UpdateQuantity(productID, delta)
}

func (m *Marketplace) RemoveFromCart(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart.Remove(productID)
}

func (m *Marketplace) CartItems() []orders.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Items()
}

// CartTotal se recalcula en cada lectura; nunca hay un total cacheado.
func (m *Marketplace) CartTotal() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Total()
}

func (m *Marketplace) CartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Count()
}

func (m *Marketplace) Step() CheckoutStep {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// OpenCart abre el panel siempre en el paso Cart: nunca se reabre
// directo en un Payment o Success viejo.
func (m *Marketplace) OpenCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = StepCart
	m.payErr = nil
}

// CloseCart vuelve a Browsing sin tocar el contenido del carrito.
func (m *Marketplace) CloseCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = StepBrowsing
	m.payErr = nil
}

// ProceedToPayment está deshabilitado con carrito vacío y solo se ofrece
// desde el paso Cart.
func (m *Marketplace) ProceedToPayment() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.step != StepCart {
		return ErrWrongStep
	}
	if m.cart.Empty() {
		return orders.ErrEmptyCart
	}
	m.step = StepPayment
	return nil
}

// BackToCart deshace Payment → Cart (el usuario puede volver).
func (m *Marketplace) BackToCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.step == StepPayment {
		m.step = StepCart
	}
}

// ConfirmPayment liquida contra el colaborador de pago. En fallo el paso
// vuelve a Payment con el error visible; en éxito congela el pedido, lo
// suma al historial, vacía el carrito y avanza a Success.
func (m *Marketplace) ConfirmPayment(ctx context.Context, method orders.PaymentMethod) (orders.Order, error) {
	m.mu.Lock()
	if m.step != StepPayment {
		m.mu.Unlock()
		return orders.Order{}, ErrWrongStep
	}
	if m.processing {
		m.mu.Unlock()
		return orders.Order{}, ErrPending
	}
	if m.cart.Empty() {
		m.mu.Unlock()
		return orders.Order{}, orders.ErrEmptyCart
	}
	m.processing = true
	amount := m.cart.Total()
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.processing = false
		m.mu.Unlock()
	}()

	if err := m.settler.Settle(ctx, method, amount); err != nil {
		m.mu.Lock()
		m.step = StepPayment
		m.payErr = err
		m.mu.Unlock()
		return orders.Order{}, err
	}

	m.mu.Lock()
	order, err := orders.Checkout(m.cart, method, m.now())
	if err != nil {
		m.mu.Unlock()
		return orders.Order{}, err
	}
	m.cart.Clear()
	m.step = StepSuccess
	m.payErr = nil
	m.mu.Unlock()

	if err := m.history.Append(ctx, order); err != nil {
		m.log.Warn("order history append failed", logger.Fields{"order": order.ID, "err": err.Error()})
	}

	m.log.Info("order placed", logger.Fields{"order": order.ID, "total": order.Total.StringFixed(2)})
	return order, nil
}

func (m *Marketplace) Processing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processing
}

func (m *Marketplace) PaymentError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payErr
}

func (m *Marketplace) Orders(ctx context.Context) ([]orders.Order, error) {
	return m.history.List(ctx)
}
