package app

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/orders"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/platform/logger"
)

// Turnos atendibles por día; solo para la tasa de ocupación.
const dailySlots = 16

// KPI son los indicadores derivados de la vista general. Se calculan
// siempre sobre datos recién traídos, nunca se persisten.
type KPI struct {
	Revenue           decimal.Decimal
	AppointmentsToday int
	CompletedToday    int
	CanceledToday     int
	Patients          int
	NewPatients       int // pacientes sin visita registrada todavía
	OccupancyRate     int // porcentaje, 0-100
}

// Dashboard deriva los KPI y el preview de próximos turnos.
type Dashboard struct {
	appts   *appointments.Service
	pets    *pets.Service
	history orders.HistoryRepository
	log     logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	gen     uint64
	state   LoadState
	loadErr error
	kpi     KPI
	nextUp  []appointments.Appointment
}

func NewDashboard(appts *appointments.Service, petsSvc *pets.Service, history orders.HistoryRepository, log logger.Logger) *Dashboard {
	if log == nil {
		log = logger.Nop{}
	}
	return &Dashboard{
		appts:   appts,
		pets:    petsSvc,
		history: history,
		log:     log,
		now:     time.Now,
	}
}

// Refresh lanza los tres fetches en paralelo y los junta; no hay
// dependencia de orden entre ellos.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.state = StateLoading
	d.mu.Unlock()

	today, _ := appointments.SplitDateTime(d.now(), d.appts.Location())

	var (
		wg     sync.WaitGroup
		todays []appointments.Appointment
		roster []pets.Pet
		placed []orders.Order
		aErr   error
		pErr   error
		oErr   error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		todays, aErr = d.appts.ListForDate(ctx, today)
	}()
	go func() {
		defer wg.Done()
		roster, pErr = d.pets.List(ctx)
	}()
	go func() {
		defer wg.Done()
		placed, oErr = d.history.List(ctx)
	}()
	wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return nil
	}
	if aErr != nil || pErr != nil || oErr != nil {
		err := aErr
		if err == nil {
			err = pErr
		}
		if err == nil {
			err = oErr
		}
		d.state = StateError
		d.loadErr = err
		d.log.Warn("dashboard refresh failed", logger.Fields{"err": err.Error()})
		return err
	}

	d.kpi = deriveKPI(todays, roster, placed)
	d.nextUp = upcoming(todays, 5)
	d.state = StateReady
	d.loadErr = nil
	return nil
}

func (d *Dashboard) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
}

func (d *Dashboard) State() (LoadState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.loadErr
}

func (d *Dashboard) KPI() KPI {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.kpi
}

func (d *Dashboard) NextUp() []appointments.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]appointments.Appointment, len(d.nextUp))
	copy(out, d.nextUp)
	return out
}

func deriveKPI(todays []appointments.Appointment, roster []pets.Pet, placed []orders.Order) KPI {
	k := KPI{
		Revenue:           decimal.Zero,
		AppointmentsToday: len(todays),
		Patients:          len(roster),
	}

	for _, a := range todays {
		switch a.Status {
		case appointments.StatusCompleted:
			k.CompletedToday++
		case appointments.StatusCanceled:
			k.CanceledToday++
		case appointments.StatusScheduled:
			// cuenta solo en el total del día
		}
	}
	for _, p := range roster {
		if p.LastVisit == "" {
			k.NewPatients++
		}
	}
	for _, o := range placed {
		k.Revenue = k.Revenue.Add(o.Total)
	}

	occupied := len(todays) - k.CanceledToday
	rate := occupied * 100 / dailySlots
	if rate > 100 {
		rate = 100
	}
	if rate < 0 {
		rate = 0
	}
	k.OccupancyRate = rate
	return k
}

// upcoming corta el preview a los primeros n turnos aún agendados.
func upcoming(todays []appointments.Appointment, n int) []appointments.Appointment {
	out := make([]appointments.Appointment, 0, n)
	for _, a := range todays {
		if a.Status != appointments.StatusScheduled {
			continue
		}
		out = append(out, a)
		if len(out) == n {
			break
		}
	}
	return out
}
