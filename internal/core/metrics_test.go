package core

import (
	"testing"
	"time"

	"fieldcrm/pkg/domain"
)

func timeDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// seedMetricsData installs a fixed March 2024 dataset around the pinned test
// clock (2024-03-15).
func seedMetricsData(t *testing.T, svc *Service) {
	t.Helper()

	type v struct {
		date   string
		status domain.VisitStatus
		rep    string
	}
	for _, x := range []v{
		{"2024-03-05", domain.VisitCompleted, "rep_001"},
		{"2024-03-10", domain.VisitCompleted, "rep_001"},
		{"2024-03-12", domain.VisitPlanned, "rep_001"},
		{"2024-03-14", domain.VisitCancelled, "rep_001"},
		{"2024-03-25", domain.VisitPlanned, "rep_001"}, // next-week window
		{"2024-02-10", domain.VisitCompleted, "rep_001"},
		{"2024-02-20", domain.VisitCompleted, "rep_001"},
		{"2024-03-11", domain.VisitCompleted, "rep_002"}, // other representative
	} {
		svc.Visits().Create(domain.Visit{Date: x.date, Status: x.status, RepresentativeID: x.rep})
	}

	type o struct {
		date   string
		status domain.OrderStatus
		amount float64
		rep    string
	}
	for _, x := range []o{
		{"2024-03-08", domain.OrderCompleted, 100, "rep_001"},
		{"2024-03-20", domain.OrderPending, 50, "rep_001"},
		{"2024-02-15", domain.OrderCompleted, 75, "rep_001"},
	} {
		svc.Orders().Create(domain.Order{
			Date:             x.date,
			Status:           x.status,
			RepresentativeID: x.rep,
			Products:         []domain.OrderItem{{ID: "i", ProductName: "Med", Quantity: 1, UnitPrice: x.amount}},
		})
	}

	type a struct {
		date   string
		status domain.AttendanceStatus
	}
	for _, x := range []a{
		{"2024-03-04", domain.AttendancePresent},
		{"2024-03-05", domain.AttendancePresent},
		{"2024-03-06", domain.AttendancePresent},
		{"2024-03-07", domain.AttendanceHalfDay},
	} {
		if _, err := svc.Attendance().Create(domain.Attendance{
			Date: x.date, Status: x.status, RepresentativeID: "rep_001",
		}); err != nil {
			t.Fatalf("attendance seed: %v", err)
		}
	}
}

func TestDashboardMetrics(t *testing.T) {
	svc, _ := newTestService(t)
	seedMetricsData(t, svc)

	m := svc.Dashboard("rep_001")

	if m.TotalVisits.Current != 5 || m.TotalVisits.Previous != 2 {
		t.Fatalf("visit counts: %+v", m.TotalVisits)
	}
	if m.TotalVisits.PercentageChange != 150 {
		t.Fatalf("visit change: %v", m.TotalVisits.PercentageChange)
	}

	if m.PlannedVisits.ThisWeek != 2 {
		t.Fatalf("planned this month: %d", m.PlannedVisits.ThisWeek)
	}
	if m.PlannedVisits.NextWeek != 1 {
		t.Fatalf("planned next week: %d", m.PlannedVisits.NextWeek)
	}

	if m.Orders.Current != 2 || m.Orders.Previous != 1 {
		t.Fatalf("order counts: %+v", m.Orders)
	}
	if m.Orders.PercentageChange != 100 || m.Orders.TotalRevenue != 150 {
		t.Fatalf("order change/revenue: %+v", m.Orders)
	}

	if m.CompletionRate.Visits != 40 {
		t.Fatalf("visit completion: %v", m.CompletionRate.Visits)
	}
	if m.CompletionRate.Orders != 50 {
		t.Fatalf("order completion: %v", m.CompletionRate.Orders)
	}
	if m.CompletionRate.Goals != goalsCompletionRate {
		t.Fatalf("goal completion: %v", m.CompletionRate.Goals)
	}

	if m.Attendance.DaysPresent != 3 || m.Attendance.TotalWorkingDays != 31 {
		t.Fatalf("attendance counts: %+v", m.Attendance)
	}
	if m.Attendance.ThisMonth != 9.68 {
		t.Fatalf("attendance rate: %v", m.Attendance.ThisMonth)
	}
}

func TestDashboardMetricsEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)
	m := svc.Dashboard("rep_001")

	if m.TotalVisits.Current != 0 || m.TotalVisits.PercentageChange != 0 {
		t.Fatalf("empty visits: %+v", m.TotalVisits)
	}
	if m.Orders.PercentageChange != 0 || m.Orders.TotalRevenue != 0 {
		t.Fatalf("empty orders: %+v", m.Orders)
	}
	if m.CompletionRate.Visits != 0 || m.CompletionRate.Orders != 0 {
		t.Fatalf("empty completion: %+v", m.CompletionRate)
	}
	if m.Attendance.ThisMonth != 0 || m.Attendance.TotalWorkingDays != 31 {
		t.Fatalf("empty attendance: %+v", m.Attendance)
	}
}

func TestPerformanceMetrics(t *testing.T) {
	svc, _ := newTestService(t)
	seedMetricsData(t, svc)

	p := svc.Performance("rep_001")

	if p.VisitToOrderConversion != 40 {
		t.Fatalf("conversion: %v", p.VisitToOrderConversion)
	}
	if p.AverageOrderValue != 75 {
		t.Fatalf("average order value: %v", p.AverageOrderValue)
	}
	if p.MonthlyAchieved != 150 || p.WeeklyAchieved != 37.5 {
		t.Fatalf("achieved: %+v", p)
	}
	if p.MonthlyTarget != 50000 || p.WeeklyTarget != 12500 {
		t.Fatalf("targets: %+v", p)
	}
	if p.TerritoryRanking != 3 || p.CustomerSatisfaction != 4.2 {
		t.Fatalf("fixed scores: %+v", p)
	}
}

func TestPerformanceMetricsNoActivity(t *testing.T) {
	svc, _ := newTestService(t)
	p := svc.Performance("")
	if p.VisitToOrderConversion != 0 || p.AverageOrderValue != 0 {
		t.Fatalf("empty ratios: %+v", p)
	}
}

func TestMonthWindowRollover(t *testing.T) {
	from, to := previousMonthBounds(timeDate(2024, 1, 15))
	if from != "2023-12-01" || to != "2023-12-31" {
		t.Fatalf("january rollover: %s .. %s", from, to)
	}
	from, to = monthBounds(timeDate(2024, 2, 10))
	if from != "2024-02-01" || to != "2024-02-29" {
		t.Fatalf("leap february: %s .. %s", from, to)
	}
}
