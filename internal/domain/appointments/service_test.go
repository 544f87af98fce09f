package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID    map[string]Appointment
	nextID  int
	loc     *time.Location
	failAll error
}

func newTestRepo(loc *time.Location) *testRepo {
	return &testRepo{byID: map[string]Appointment{}, loc: loc}
}

func (r *testRepo) List(ctx context.Context) ([]Appointment, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) Create(ctx context.Context, rec CreateRecord) (Appointment, error) {
	r.nextID++
	date, tm := SplitDateTime(rec.When, r.loc)
	a := Appointment{
		ID:     fmt.Sprintf("appt-%d", r.nextID),
		PetID:  rec.PetID,
		Date:   date,
		Time:   tm,
		Type:   rec.Type,
		Status: StatusScheduled,
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, errRepoNotFound
	}
	a.Status = status
	r.byID[id] = a
	return a, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) seed(id, date, tm string, status Status) {
	r.byID[id] = Appointment{ID: id, PetID: "pet-1", Date: date, Time: tm, Type: TypeConsultation, Status: status}
}

// -------------------------
// Tests
// -------------------------

func TestService_ListForDate_FiltersAndSortsByTime(t *testing.T) {
	repo := newTestRepo(time.UTC)
	svc := NewService(repo, time.UTC)

	repo.seed("a-1", "2024-05-20", "14:00", StatusScheduled)
	repo.seed("a-2", "2024-05-20", "09:00", StatusScheduled)
	repo.seed("a-3", "2024-05-21", "08:00", StatusScheduled)
	repo.seed("a-4", "2024-05-20", "10:30", StatusCompleted)

	got, err := svc.ListForDate(context.Background(), "2024-05-20")
	if err != nil {
		t.Fatalf("ListForDate returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(got))
	}
	// Ascending by HH:MM; zero-padded times make lexicographic order
	// equal to chronological order.
	if got[0].Time != "09:00" || got[1].Time != "10:30" || got[2].Time != "14:00" {
		t.Fatalf("wrong order: %s %s %s", got[0].Time, got[1].Time, got[2].Time)
	}
}

func TestService_ListForDate_RejectsBadDate(t *testing.T) {
	svc := NewService(newTestRepo(time.UTC), time.UTC)
	if _, err := svc.ListForDate(context.Background(), "20-05-2024"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_ComposesInstantInServiceZone(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	repo := newTestRepo(loc)
	svc := NewService(repo, loc)

	a, err := svc.Create(context.Background(), CreateInput{
		Date:  "2024-05-20",
		Time:  "09:00",
		PetID: "pet-1",
		Type:  "vaccine",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("new appointment must be scheduled, got %s", a.Status)
	}
	if a.Date != "2024-05-20" || a.Time != "09:00" {
		t.Fatalf("wall clock changed through the repo: %s %s", a.Date, a.Time)
	}
	if a.Type != TypeVaccine {
		t.Fatalf("expected vaccine, got %s", a.Type)
	}
}

func TestService_Create_RejectsLocally(t *testing.T) {
	repo := newTestRepo(time.UTC)
	svc := NewService(repo, time.UTC)

	cases := []CreateInput{
		{Date: "2024-05-20", Time: "09:00", PetID: "", Type: "vaccine"},
		{Date: "2024-05-20", Time: "09:00", PetID: "pet-1", Type: "grooming"},
		{Date: "bad", Time: "09:00", PetID: "pet-1", Type: "vaccine"},
		{Date: "2024-05-20", Time: "9am", PetID: "pet-1", Type: "vaccine"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); err != ErrInvalidInput {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("rejected input must not reach the repo")
	}
}

func TestService_Complete_OnlyFromScheduled(t *testing.T) {
	repo := newTestRepo(time.UTC)
	svc := NewService(repo, time.UTC)
	repo.seed("a-1", "2024-05-20", "09:00", StatusScheduled)

	a, err := svc.Complete(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if a.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", a.Status)
	}

	// Completed is terminal: neither Complete nor Cancel may fire again.
	if _, err := svc.Complete(context.Background(), "a-1"); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "a-1"); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if repo.byID["a-1"].Status != StatusCompleted {
		t.Fatalf("terminal state mutated")
	}
}

func TestService_Cancel_OnlyFromScheduled(t *testing.T) {
	repo := newTestRepo(time.UTC)
	svc := NewService(repo, time.UTC)
	repo.seed("a-1", "2024-05-20", "09:00", StatusCanceled)

	if _, err := svc.Cancel(context.Background(), "a-1"); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.Complete(context.Background(), "a-1"); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestService_Transition_GuardRunsBeforeUpdate(t *testing.T) {
	repo := newTestRepo(time.UTC)
	svc := NewService(repo, time.UTC)

	if _, err := svc.Complete(context.Background(), ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
	if _, err := svc.Complete(context.Background(), "ghost"); err != errRepoNotFound {
		t.Fatalf("expected repo error to surface, got %v", err)
	}
}
