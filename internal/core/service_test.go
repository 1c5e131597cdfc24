package core

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldcrm/internal/store"
	"fieldcrm/internal/store/memory"
	"fieldcrm/pkg/domain"
)

// testClock is a settable time source shared by a test and its service.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, opts ...Option) (*Service, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)}
	st := store.New(memory.New(), quietLogger())
	base := []Option{WithClock(clock.Now)}
	return NewService(st, append(base, opts...)...), clock
}

func TestVisitLifecycle(t *testing.T) {
	svc, clock := newTestService(t)

	created := svc.Visits().Create(domain.Visit{
		FacilityName:     "City Hospital",
		FacilityType:     domain.FacilityHospital,
		Date:             "2024-03-15",
		Time:             "10:30",
		Status:           domain.VisitPlanned,
		RepresentativeID: "rep_001",
	})
	if created.ID == "" {
		t.Fatalf("create assigned no id")
	}
	if !created.CreatedAt.Equal(clock.Now()) || !created.UpdatedAt.Equal(clock.Now()) {
		t.Fatalf("create timestamps: %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	clock.Advance(time.Hour)
	status := domain.VisitCompleted
	updated, err := svc.Visits().Update(created.ID, domain.VisitPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.VisitCompleted {
		t.Fatalf("status not applied: %s", updated.Status)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update changed CreatedAt")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("update did not refresh UpdatedAt")
	}

	if _, err := svc.Visits().Update("missing", domain.VisitPatch{}); err == nil {
		t.Fatalf("update of missing id succeeded")
	} else {
		var nf domain.ErrNotFound
		if !errors.As(err, &nf) || nf.ID != "missing" {
			t.Fatalf("wrong error for missing id: %v", err)
		}
	}

	if !svc.Visits().Delete(created.ID) {
		t.Fatalf("delete reported no record")
	}
	if svc.Visits().Delete(created.ID) {
		t.Fatalf("second delete reported a record")
	}
	if got := svc.Visits().List(nil, nil, nil); len(got) != 0 {
		t.Fatalf("collection not empty after delete: %d", len(got))
	}
}

func TestOrderTotalsNormalized(t *testing.T) {
	svc, _ := newTestService(t)

	created := svc.Orders().Create(domain.Order{
		CustomerName: "Green Pharmacy",
		CustomerType: domain.CustomerPharmacy,
		Date:         "2024-03-15",
		Products: []domain.OrderItem{
			{ID: "i1", ProductName: "Aspirin", Quantity: 3, UnitPrice: 10, TotalPrice: 999},
			{ID: "i2", ProductName: "Ibuprofen", Quantity: 2, UnitPrice: 7.5},
		},
		TotalAmount: 12345,
		Status:      domain.OrderPending,
	})
	if created.Products[0].TotalPrice != 30 || created.Products[1].TotalPrice != 15 {
		t.Fatalf("line totals not recomputed: %+v", created.Products)
	}
	if created.TotalAmount != 45 {
		t.Fatalf("order total not recomputed: %v", created.TotalAmount)
	}

	items := []domain.OrderItem{{ID: "i3", ProductName: "Paracetamol", Quantity: 4, UnitPrice: 5}}
	updated, err := svc.Orders().Update(created.ID, domain.OrderPatch{Products: &items})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.TotalAmount != 20 {
		t.Fatalf("total after line replacement: %v", updated.TotalAmount)
	}
}

func TestAttendanceDuplicateRejected(t *testing.T) {
	svc, clock := newTestService(t)

	first, err := svc.Attendance().Create(domain.Attendance{
		Date:             "2024-03-15",
		CheckIn:          clock.Now(),
		Status:           domain.AttendancePresent,
		RepresentativeID: "rep_001",
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("create assigned no id")
	}

	_, err = svc.Attendance().Create(domain.Attendance{
		Date:             "2024-03-15",
		CheckIn:          clock.Now(),
		Status:           domain.AttendancePresent,
		RepresentativeID: "rep_001",
	})
	var dup domain.ErrDuplicateAttendance
	if !errors.As(err, &dup) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicateAttendance", err)
	}

	// A different representative on the same day is fine.
	if _, err := svc.Attendance().Create(domain.Attendance{
		Date:             "2024-03-15",
		CheckIn:          clock.Now(),
		Status:           domain.AttendancePresent,
		RepresentativeID: "rep_002",
	}); err != nil {
		t.Fatalf("second representative: %v", err)
	}
}

func TestCheckInCheckOutProtocol(t *testing.T) {
	svc, clock := newTestService(t)

	if _, err := svc.CheckOut("rep_001"); !errors.Is(err, domain.ErrNoCheckInToday) {
		t.Fatalf("checkout before checkin: %v", err)
	}

	record, err := svc.CheckIn("rep_001", "morning round")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if record.Status != domain.AttendancePresent || record.Date != "2024-03-15" {
		t.Fatalf("checkin record: %+v", record)
	}
	if record.Notes != "morning round" {
		t.Fatalf("notes not stored: %q", record.Notes)
	}

	if _, err := svc.CheckIn("rep_001", ""); !errors.Is(err, domain.ErrAlreadyCheckedIn) {
		t.Fatalf("second checkin: %v", err)
	}

	clock.Advance(8*time.Hour + 15*time.Minute)
	done, err := svc.CheckOut("rep_001")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if done.CheckOut == nil || !done.CheckOut.Equal(clock.Now()) {
		t.Fatalf("checkout instant: %+v", done.CheckOut)
	}
	if done.WorkingHours == nil || *done.WorkingHours != 8.25 {
		t.Fatalf("working hours: %+v", done.WorkingHours)
	}

	if _, err := svc.CheckOut("rep_001"); !errors.Is(err, domain.ErrAlreadyCheckedOut) {
		t.Fatalf("second checkout: %v", err)
	}
}

func TestSeedAndCurrentUser(t *testing.T) {
	svc, _ := newTestService(t)

	if _, ok := svc.CurrentUser(); ok {
		t.Fatalf("current user set before seed")
	}

	rep, seeded := svc.Seed()
	if !seeded || rep.ID != "rep_001" || rep.Name != "John Smith" {
		t.Fatalf("seed: seeded=%v rep=%+v", seeded, rep)
	}

	current, ok := svc.CurrentUser()
	if !ok || current.ID != "rep_001" {
		t.Fatalf("current user after seed: ok=%v %+v", ok, current)
	}

	// Seeding is idempotent once representatives exist.
	if _, seeded := svc.Seed(); seeded {
		t.Fatalf("second seed reported work")
	}
}

func TestGoalAndRepresentativeUpdates(t *testing.T) {
	svc, _ := newTestService(t)

	goal := svc.Goals().Create(domain.Goal{
		Type: domain.GoalVisits, Title: "March visits", Target: 40,
		Period: domain.PeriodMonthly, Status: domain.GoalActive,
		RepresentativeID: "rep_001",
	})
	achieved := 25.0
	updatedGoal, err := svc.Goals().Update(goal.ID, domain.GoalPatch{Achieved: &achieved})
	if err != nil || updatedGoal.Achieved != 25 {
		t.Fatalf("goal update: %v %+v", err, updatedGoal)
	}

	rep := svc.Representatives().Create(domain.Representative{Name: "Jane Doe", IsActive: true})
	territory := "South District"
	updatedRep, err := svc.Representatives().Update(rep.ID, domain.RepresentativePatch{Territory: &territory})
	if err != nil || updatedRep.Territory != "South District" {
		t.Fatalf("representative update: %v %+v", err, updatedRep)
	}
}

func TestRecorderSeesOperations(t *testing.T) {
	rec := NewExpvarRecorder("")
	svc, _ := newTestService(t, WithRecorder(rec))

	svc.Visits().Create(domain.Visit{Date: "2024-03-15", Status: domain.VisitPlanned})
	if _, err := svc.Visits().Update("missing", domain.VisitPatch{}); err == nil {
		t.Fatalf("expected update failure")
	}

	snap := rec.Snapshot()
	if snap.Results["visits.create"]["success"] != 1 {
		t.Fatalf("create not recorded: %+v", snap.Results)
	}
	if snap.Results["visits.update"]["error"] != 1 {
		t.Fatalf("failed update not recorded: %+v", snap.Results)
	}
}
