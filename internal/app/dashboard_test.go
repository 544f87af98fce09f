package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"vetcare-pro/internal/adapters/memory"
	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/orders"
	"vetcare-pro/internal/domain/pets"
)

func TestDeriveKPI(t *testing.T) {
	todays := []appointments.Appointment{
		{Status: appointments.StatusScheduled},
		{Status: appointments.StatusScheduled},
		{Status: appointments.StatusCompleted},
		{Status: appointments.StatusCanceled},
	}
	roster := []pets.Pet{
		{Name: "Thor", LastVisit: "2024-05-10"},
		{Name: "Luna", LastVisit: ""},
		{Name: "Paçoca", LastVisit: ""},
	}
	placed := []orders.Order{
		{Total: decimal.RequireFromString("100.00")},
		{Total: decimal.RequireFromString("150.00")},
	}

	k := deriveKPI(todays, roster, placed)

	if k.AppointmentsToday != 4 || k.CompletedToday != 1 || k.CanceledToday != 1 {
		t.Fatalf("wrong appointment counters: %+v", k)
	}
	if k.Patients != 3 || k.NewPatients != 2 {
		t.Fatalf("wrong patient counters: %+v", k)
	}
	if !k.Revenue.Equal(decimal.RequireFromString("250.00")) {
		t.Fatalf("expected revenue 250.00, got %s", k.Revenue)
	}
	// 3 non-canceled of 16 daily slots.
	if k.OccupancyRate != 18 {
		t.Fatalf("expected occupancy 18, got %d", k.OccupancyRate)
	}
}

func TestDeriveKPI_OccupancyCappedAt100(t *testing.T) {
	todays := make([]appointments.Appointment, 40)
	for i := range todays {
		todays[i].Status = appointments.StatusScheduled
	}
	if k := deriveKPI(todays, nil, nil); k.OccupancyRate != 100 {
		t.Fatalf("expected cap at 100, got %d", k.OccupancyRate)
	}
}

func TestUpcoming_SkipsTerminalAndCaps(t *testing.T) {
	todays := []appointments.Appointment{
		{ID: "1", Status: appointments.StatusCompleted},
		{ID: "2", Status: appointments.StatusScheduled},
		{ID: "3", Status: appointments.StatusCanceled},
		{ID: "4", Status: appointments.StatusScheduled},
		{ID: "5", Status: appointments.StatusScheduled},
	}
	got := upcoming(todays, 2)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "4" {
		t.Fatalf("unexpected preview: %v", got)
	}
}

func TestDashboard_Refresh_JoinsAllSources(t *testing.T) {
	ctx := context.Background()

	petsRepo := memory.NewPetsRepo()
	petsRepo.SetOwner("owner-1", "Ana Silva")
	thor, _ := petsRepo.Create(ctx, pets.Pet{Name: "Thor", Species: pets.SpeciesCanine, OwnerID: "owner-1"})

	apptsRepo := memory.NewAppointmentsRepo(petsRepo, time.UTC)
	apptsSvc := appointments.NewService(apptsRepo, time.UTC)
	if _, err := apptsSvc.Create(ctx, appointments.CreateInput{
		Date: "2024-05-20", Time: "09:00", PetID: thor.ID, Type: "vaccine",
	}); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	history := memory.NewOrdersHistory()
	if err := history.Append(ctx, orders.Order{ID: "ORD-1", Total: decimal.RequireFromString("99.90")}); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	d := NewDashboard(apptsSvc, pets.NewService(petsRepo), history, nil)
	d.now = func() time.Time {
		return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	}

	if err := d.Refresh(ctx); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	k := d.KPI()
	if k.AppointmentsToday != 1 || k.Patients != 1 {
		t.Fatalf("wrong counters: %+v", k)
	}
	if !k.Revenue.Equal(decimal.RequireFromString("99.90")) {
		t.Fatalf("expected revenue 99.90, got %s", k.Revenue)
	}

	next := d.NextUp()
	if len(next) != 1 || next[0].PetName != "Thor" {
		t.Fatalf("unexpected preview: %v", next)
	}
}

func TestDashboard_Refresh_AnySourceFailureIsFatal(t *testing.T) {
	ctx := context.Background()

	apptsRepo := memory.NewAppointmentsRepo(nil, time.UTC)
	d := NewDashboard(
		appointments.NewService(apptsRepo, time.UTC),
		pets.NewService(failingPetsRepo{}),
		memory.NewOrdersHistory(),
		nil,
	)

	if err := d.Refresh(ctx); err == nil {
		t.Fatalf("expected error when a source fails")
	}
	if state, err := d.State(); state != StateError || err == nil {
		t.Fatalf("expected error state, got %d %v", state, err)
	}
}
