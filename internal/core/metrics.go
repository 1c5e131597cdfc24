package core

import "fieldcrm/pkg/domain"

// Targets and scores the dashboard still carries as fixed values: they are
// not yet derived from goal records, matching the behavior of the system
// this one replaces.
const (
	goalsCompletionRate  = 85
	monthlyTarget        = 50000
	weeklyTarget         = 12500
	territoryRanking     = 3
	customerSatisfaction = 4.2
)

// ChangeStat compares a current-month count against the previous month.
type ChangeStat struct {
	Current          int     `json:"current"`
	Previous         int     `json:"previous"`
	PercentageChange float64 `json:"percentageChange"`
}

// PlannedVisitStat counts planned visits for the near-term windows.
type PlannedVisitStat struct {
	ThisWeek int `json:"thisWeek"`
	NextWeek int `json:"nextWeek"`
}

// OrderStat extends the month-over-month comparison with current revenue.
type OrderStat struct {
	Current          int     `json:"current"`
	Previous         int     `json:"previous"`
	PercentageChange float64 `json:"percentageChange"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// CompletionRateStat holds completed-over-total percentages.
type CompletionRateStat struct {
	Visits float64 `json:"visits"`
	Orders float64 `json:"orders"`
	Goals  float64 `json:"goals"`
}

// AttendanceStat summarizes the current month's attendance.
type AttendanceStat struct {
	ThisMonth        float64 `json:"thisMonth"`
	DaysPresent      int     `json:"daysPresent"`
	TotalWorkingDays int     `json:"totalWorkingDays"`
}

// DashboardMetrics is the aggregate summary surfaced on the dashboard. Every
// field is always populated; a failing computation yields the zero value.
type DashboardMetrics struct {
	TotalVisits    ChangeStat         `json:"totalVisits"`
	PlannedVisits  PlannedVisitStat   `json:"plannedVisits"`
	Orders         OrderStat          `json:"orders"`
	CompletionRate CompletionRateStat `json:"completionRate"`
	Attendance     AttendanceStat     `json:"attendance"`
}

// PerformanceMetrics summarizes the current month's selling performance.
type PerformanceMetrics struct {
	VisitToOrderConversion float64 `json:"visitToOrderConversion"`
	AverageOrderValue      float64 `json:"averageOrderValue"`
	MonthlyTarget          float64 `json:"monthlyTarget"`
	MonthlyAchieved        float64 `json:"monthlyAchieved"`
	WeeklyTarget           float64 `json:"weeklyTarget"`
	WeeklyAchieved         float64 `json:"weeklyAchieved"`
	TerritoryRanking       int     `json:"territoryRanking"`
	CustomerSatisfaction   float64 `json:"customerSatisfaction"`
}

// Metrics derives summaries by issuing date-bounded queries against the
// repositories; it never touches the record store directly.
type Metrics struct {
	*deps
	visits     *Visits
	orders     *Orders
	attendance *AttendanceLog
}

// percentChange returns the month-over-month change in percent, defined as 0
// when the previous count is 0.
func percentChange(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

// completionRate returns completed/total in percent, 0 when total is 0.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) / float64(total) * 100)
}

// Dashboard computes the dashboard summary for one representative, or for
// all representatives when the id is empty.
func (m *Metrics) Dashboard(representativeID string) DashboardMetrics {
	start := m.now()
	defer m.observe("metrics.dashboard", start, nil)

	curFrom, curTo := monthBounds(start)
	prevFrom, prevTo := previousMonthBounds(start)

	currentVisits := m.visits.List(&domain.Filter{
		DateFrom: curFrom, DateTo: curTo, RepresentativeID: representativeID,
	}, nil, nil)
	previousVisits := m.visits.List(&domain.Filter{
		DateFrom: prevFrom, DateTo: prevTo, RepresentativeID: representativeID,
	}, nil, nil)
	currentOrders := m.orders.List(&domain.Filter{
		DateFrom: curFrom, DateTo: curTo, RepresentativeID: representativeID,
	}, nil, nil)
	previousOrders := m.orders.List(&domain.Filter{
		DateFrom: prevFrom, DateTo: prevTo, RepresentativeID: representativeID,
	}, nil, nil)

	// Planned visits 7 days ahead: [today+7, today+13] inclusive.
	nextWeekVisits := m.visits.List(&domain.Filter{
		DateFrom:         dateString(start.AddDate(0, 0, 7)),
		DateTo:           dateString(start.AddDate(0, 0, 13)),
		Status:           string(domain.VisitPlanned),
		RepresentativeID: representativeID,
	}, nil, nil)

	var completedVisits, plannedThisMonth int
	for _, v := range currentVisits {
		switch v.Status {
		case domain.VisitCompleted:
			completedVisits++
		case domain.VisitPlanned:
			plannedThisMonth++
		}
	}
	var completedOrders int
	var revenue float64
	for _, o := range currentOrders {
		if o.Status == domain.OrderCompleted {
			completedOrders++
		}
		revenue += o.TotalAmount
	}

	attendanceRecords := m.attendance.List(&domain.Filter{
		DateFrom: curFrom, DateTo: curTo, RepresentativeID: representativeID,
	}, nil, nil)
	var daysPresent int
	for _, a := range attendanceRecords {
		if a.Status == domain.AttendancePresent {
			daysPresent++
		}
	}
	// Denominator is total calendar days of the month, not business days;
	// kept as-is from the original reporting rules.
	totalDays := daysInMonth(start)

	return DashboardMetrics{
		TotalVisits: ChangeStat{
			Current:          len(currentVisits),
			Previous:         len(previousVisits),
			PercentageChange: percentChange(len(currentVisits), len(previousVisits)),
		},
		PlannedVisits: PlannedVisitStat{
			ThisWeek: plannedThisMonth,
			NextWeek: len(nextWeekVisits),
		},
		Orders: OrderStat{
			Current:          len(currentOrders),
			Previous:         len(previousOrders),
			PercentageChange: percentChange(len(currentOrders), len(previousOrders)),
			TotalRevenue:     revenue,
		},
		CompletionRate: CompletionRateStat{
			Visits: completionRate(completedVisits, len(currentVisits)),
			Orders: completionRate(completedOrders, len(currentOrders)),
			Goals:  goalsCompletionRate,
		},
		Attendance: AttendanceStat{
			ThisMonth:        completionRate(daysPresent, totalDays),
			DaysPresent:      daysPresent,
			TotalWorkingDays: totalDays,
		},
	}
}

// Performance computes the current-month performance summary for one
// representative, or for all when the id is empty.
func (m *Metrics) Performance(representativeID string) PerformanceMetrics {
	start := m.now()
	defer m.observe("metrics.performance", start, nil)

	from, to := monthBounds(start)
	visits := m.visits.List(&domain.Filter{
		DateFrom: from, DateTo: to, RepresentativeID: representativeID,
	}, nil, nil)
	orders := m.orders.List(&domain.Filter{
		DateFrom: from, DateTo: to, RepresentativeID: representativeID,
	}, nil, nil)

	var revenue float64
	for _, o := range orders {
		revenue += o.TotalAmount
	}

	var conversion, avgValue float64
	if len(visits) > 0 {
		conversion = round2(float64(len(orders)) / float64(len(visits)) * 100)
	}
	if len(orders) > 0 {
		avgValue = round2(revenue / float64(len(orders)))
	}

	return PerformanceMetrics{
		VisitToOrderConversion: conversion,
		AverageOrderValue:      avgValue,
		MonthlyTarget:          monthlyTarget,
		MonthlyAchieved:        revenue,
		WeeklyTarget:           weeklyTarget,
		WeeklyAchieved:         revenue / 4,
		TerritoryRanking:       territoryRanking,
		CustomerSatisfaction:   customerSatisfaction,
	}
}

// Dashboard exposes the metrics engine through the service facade.
func (s *Service) Dashboard(representativeID string) DashboardMetrics {
	return s.metrics.Dashboard(representativeID)
}

// Performance exposes the metrics engine through the service facade.
func (s *Service) Performance(representativeID string) PerformanceMetrics {
	return s.metrics.Performance(representativeID)
}
