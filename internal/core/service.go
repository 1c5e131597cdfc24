package core

import (
	"log/slog"
	"time"

	"fieldcrm/internal/store"
	"fieldcrm/pkg/domain"
)

// Service is the facade over the repositories, the check-in protocol, the
// current-user pointer, import/export, and the metrics engine. Construct one
// per store; there is no process-wide instance.
type Service struct {
	d deps

	visits     *Visits
	orders     *Orders
	attendance *AttendanceLog
	goals      *Goals
	reps       *Representatives
	metrics    *Metrics
}

// Option customizes a Service at construction time.
type Option func(*deps)

// WithClock overrides the time source, mainly for tests and for metric
// window pinning.
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// WithIDGenerator overrides record identifier generation.
func WithIDGenerator(gen func() string) Option {
	return func(d *deps) { d.newID = gen }
}

// WithRecorder wires an operation recorder.
func WithRecorder(rec Recorder) Option {
	return func(d *deps) { d.obs = rec }
}

// WithLogger overrides the logger inherited from the store.
func WithLogger(log *slog.Logger) Option {
	return func(d *deps) { d.log = log }
}

// NewService constructs a service over the given record store.
func NewService(st *store.Store, opts ...Option) *Service {
	d := deps{
		store: st,
		log:   st.Log(),
		now:   func() time.Time { return time.Now().UTC() },
		newID: newID,
		obs:   NopRecorder{},
	}
	for _, opt := range opts {
		opt(&d)
	}
	s := &Service{d: d}
	s.visits = &Visits{deps: &s.d}
	s.orders = &Orders{deps: &s.d}
	s.attendance = &AttendanceLog{deps: &s.d}
	s.goals = &Goals{deps: &s.d}
	s.reps = &Representatives{deps: &s.d}
	s.metrics = &Metrics{deps: &s.d, visits: s.visits, orders: s.orders, attendance: s.attendance}
	return s
}

// Visits returns the visit repository.
func (s *Service) Visits() *Visits { return s.visits }

// Orders returns the order repository.
func (s *Service) Orders() *Orders { return s.orders }

// Attendance returns the attendance repository.
func (s *Service) Attendance() *AttendanceLog { return s.attendance }

// Goals returns the goal repository.
func (s *Service) Goals() *Goals { return s.goals }

// Representatives returns the representative repository.
func (s *Service) Representatives() *Representatives { return s.reps }

// CurrentUser returns the active representative, if one is set. Storage
// failures read as absent.
func (s *Service) CurrentUser() (domain.Representative, bool) {
	rep, ok, err := store.ReadOne[domain.Representative](s.d.store, domain.KeyCurrentUser)
	if err != nil {
		s.d.log.Error("storage read failed, treating current user as unset", "error", err)
		return domain.Representative{}, false
	}
	return rep, ok
}

// SetCurrentUser stores the active representative pointer. The record is
// kept independent of the representatives collection.
func (s *Service) SetCurrentUser(rep domain.Representative) {
	if err := store.WriteOne(s.d.store, domain.KeyCurrentUser, rep); err != nil {
		s.d.log.Error("storage write failed, current user not durable", "error", err)
	}
}

// CheckIn records today's attendance for the representative. It fails when a
// record for (today, representative) already exists.
func (s *Service) CheckIn(representativeID, notes string) (domain.Attendance, error) {
	start := s.d.now()
	today := dateString(start)
	if _, exists := s.attendance.GetByDate(today, representativeID); exists {
		s.d.observe("attendance.checkin", start, domain.ErrAlreadyCheckedIn)
		return domain.Attendance{}, domain.ErrAlreadyCheckedIn
	}
	record, err := s.attendance.Create(domain.Attendance{
		Date:             today,
		CheckIn:          start,
		Status:           domain.AttendancePresent,
		RepresentativeID: representativeID,
		Notes:            notes,
	})
	if err != nil {
		// The duplicate guard inside Create caught a record the pre-check
		// missed; report it as the protocol failure.
		s.d.observe("attendance.checkin", start, err)
		return domain.Attendance{}, domain.ErrAlreadyCheckedIn
	}
	s.d.observe("attendance.checkin", start, nil)
	return record, nil
}

// CheckOut completes today's attendance: it stamps the check-out instant and
// stores the working hours, rounded to two decimals. It fails when no
// check-in exists for today or when check-out was already recorded.
func (s *Service) CheckOut(representativeID string) (domain.Attendance, error) {
	start := s.d.now()
	today := dateString(start)
	existing, ok := s.attendance.GetByDate(today, representativeID)
	if !ok {
		s.d.observe("attendance.checkout", start, domain.ErrNoCheckInToday)
		return domain.Attendance{}, domain.ErrNoCheckInToday
	}
	if existing.CheckOut != nil {
		s.d.observe("attendance.checkout", start, domain.ErrAlreadyCheckedOut)
		return domain.Attendance{}, domain.ErrAlreadyCheckedOut
	}

	checkOut := start
	hours := round2(checkOut.Sub(existing.CheckIn).Hours())
	updated, err := s.attendance.Update(existing.ID, domain.AttendancePatch{
		CheckOut:     &checkOut,
		WorkingHours: &hours,
	})
	s.d.observe("attendance.checkout", start, err)
	return updated, err
}

// Seed installs the bootstrap representative and current user when the
// representatives collection is empty. It reports whether seeding happened.
func (s *Service) Seed() (domain.Representative, bool) {
	if len(s.reps.List(nil, nil, nil)) > 0 {
		return domain.Representative{}, false
	}
	now := s.d.now()
	rep := domain.Representative{
		Base:      domain.Base{ID: "rep_001", CreatedAt: now, UpdatedAt: now},
		Name:      "John Smith",
		Email:     "john.smith@company.com",
		Phone:     "+1-555-0123",
		Territory: "North District",
		JoinDate:  "2023-01-15",
		IsActive:  true,
	}
	saveAll(&s.d, domain.CollectionRepresentatives, []domain.Representative{rep})
	s.SetCurrentUser(rep)
	return rep, true
}
