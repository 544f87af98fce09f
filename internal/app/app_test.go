package app

import (
	"context"
	"testing"
	"time"

	"vetcare-pro/internal/adapters/memory"
	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/assistant"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/domain/products"
	"vetcare-pro/internal/platform/storage"
	"vetcare-pro/internal/session"
)

func newApp(t *testing.T) *App {
	t.Helper()

	petsRepo := memory.NewPetsRepo()
	apptsRepo := memory.NewAppointmentsRepo(petsRepo, time.UTC)
	productsRepo := memory.NewProductsRepo()
	memory.Seed(petsRepo, apptsRepo, productsRepo)

	history := memory.NewOrdersHistory()
	petsSvc := pets.NewService(petsRepo)
	apptsSvc := appointments.NewService(apptsRepo, time.UTC)
	productsSvc := products.NewService(productsRepo)
	assistantSvc := assistant.NewService(memory.NewAssistant())

	sess := session.New(storage.NewMemory())
	sess.AttachAPI(memory.NewAuth())

	return New(
		sess,
		NewDashboard(apptsSvc, petsSvc, history, nil),
		NewRoster(petsSvc, nil),
		NewScheduler(apptsSvc, petsSvc, nil),
		NewMarketplace(productsSvc, history, SimulatedSettler{}, nil),
		NewAssistant(assistantSvc, nil),
	)
}

func login(t *testing.T, a *App) {
	t.Helper()
	if _, err := a.Session().Login(context.Background(), "ana@vet.com", "secret"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
}

func TestApp_SetView_RequiresSession(t *testing.T) {
	a := newApp(t)

	if err := a.SetView(context.Background(), ViewPatients); err != session.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if a.CurrentView() != ViewDashboard {
		t.Fatalf("rejected switch must not be applied, got %s", a.CurrentView())
	}
}

func TestApp_SetView_LoadsTheTarget(t *testing.T) {
	a := newApp(t)
	login(t, a)
	ctx := context.Background()

	if err := a.SetView(ctx, ViewPatients); err != nil {
		t.Fatalf("SetView returned error: %v", err)
	}
	if a.CurrentView() != ViewPatients {
		t.Fatalf("expected patients view, got %s", a.CurrentView())
	}
	if got := a.Roster.Visible(); len(got) != 3 {
		t.Fatalf("expected seeded roster, got %d", len(got))
	}

	if err := a.SetView(ctx, ViewMarketplace); err != nil {
		t.Fatalf("SetView returned error: %v", err)
	}
	if got := a.Marketplace.Visible(); len(got) != 6 {
		t.Fatalf("expected seeded catalog, got %d", len(got))
	}
}

func TestApp_SetView_AssistantNeedsNoFetch(t *testing.T) {
	a := newApp(t)
	login(t, a)

	if err := a.SetView(context.Background(), ViewAssistant); err != nil {
		t.Fatalf("SetView returned error: %v", err)
	}
	if a.CurrentView() != ViewAssistant {
		t.Fatalf("expected assistant view, got %s", a.CurrentView())
	}
}

func TestParseView(t *testing.T) {
	for _, s := range []string{"dashboard", "patients", "schedule", "marketplace", "ai-assistant"} {
		if _, ok := ParseView(s); !ok {
			t.Fatalf("expected %q to parse", s)
		}
	}
	if _, ok := ParseView("settings"); ok {
		t.Fatalf("unknown view must not parse")
	}
}
