package app

import (
	"context"
	"sync"

	"vetcare-pro/internal/session"
)

// View identifica la feature montada. Hay exactamente una activa a la vez.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewPatients    View = "patients"
	ViewSchedule    View = "schedule"
	ViewMarketplace View = "marketplace"
	ViewAssistant   View = "ai-assistant"
)

func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewDashboard:
		return ViewDashboard, true
	case ViewPatients:
		return ViewPatients, true
	case ViewSchedule:
		return ViewSchedule, true
	case ViewMarketplace:
		return ViewMarketplace, true
	case ViewAssistant:
		return ViewAssistant, true
	}
	return "", false
}

// App es el shell: sesión compartida más el switcher de vistas. Cada
// controlador es dueño de su estado; acá solo se decide cuál está activo.
type App struct {
	sess *session.Session

	Dashboard   *Dashboard
	Roster      *Roster
	Scheduler   *Scheduler
	Marketplace *Marketplace
	Assistant   *Assistant

	mu   sync.Mutex
	view View
}

func New(sess *session.Session, d *Dashboard, r *Roster, s *Scheduler, m *Marketplace, a *Assistant) *App {
	return &App{
		sess:        sess,
		Dashboard:   d,
		Roster:      r,
		Scheduler:   s,
		Marketplace: m,
		Assistant:   a,
		view:        ViewDashboard,
	}
}

func (a *App) Session() *session.Session {
	return a.sess
}

func (a *App) Authenticated() bool {
	_, ok := a.sess.Current()
	return ok
}

func (a *App) CurrentView() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// SetView desmonta la vista actual (invalidando sus respuestas en vuelo,
// para que no muten estado que ya no está en pantalla) y carga la nueva.
// Sin sesión viva no se monta ninguna vista protegida.
func (a *App) SetView(ctx context.Context, v View) error {
	if !a.Authenticated() {
		return session.ErrNotAuthenticated
	}

	a.mu.Lock()
	prev := a.view
	a.view = v
	a.mu.Unlock()

	if prev != v {
		a.invalidate(prev)
	}
	return a.load(ctx, v)
}

func (a *App) invalidate(v View) {
	switch v {
	case ViewDashboard:
		a.Dashboard.Invalidate()
	case ViewPatients:
		a.Roster.Invalidate()
	case ViewSchedule:
		a.Scheduler.Invalidate()
	case ViewMarketplace:
		a.Marketplace.Invalidate()
	case ViewAssistant:
		// el asistente no tiene fetches de carga
	}
}

func (a *App) load(ctx context.Context, v View) error {
	switch v {
	case ViewDashboard:
		return a.Dashboard.Refresh(ctx)
	case ViewPatients:
		return a.Roster.Refresh(ctx)
	case ViewSchedule:
		return a.Scheduler.Refresh(ctx)
	case ViewMarketplace:
		return a.Marketplace.Refresh(ctx)
	case ViewAssistant:
		return nil
	}
	return nil
}
