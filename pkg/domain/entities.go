// Package domain defines the persistent CRM entities, their enumerations,
// query descriptors, and the persistence primitives shared by the storage and
// service layers.
package domain

import "time"

// CollectionName identifies a persisted record collection.
type CollectionName string

// Storage keys for the persisted collections. The values are carried over
// from the original deployment so existing snapshots remain importable.
const (
	CollectionVisits          CollectionName = "crm_visits"
	CollectionOrders          CollectionName = "crm_orders"
	CollectionAttendance      CollectionName = "crm_attendance"
	CollectionGoals           CollectionName = "crm_goals"
	CollectionRepresentatives CollectionName = "crm_representatives"
	// KeyCurrentUser holds the single active-representative record, stored
	// outside the collections.
	KeyCurrentUser CollectionName = "crm_current_user"
)

// Collections lists every multi-record collection key in persistence order.
func Collections() []CollectionName {
	return []CollectionName{
		CollectionVisits,
		CollectionOrders,
		CollectionAttendance,
		CollectionGoals,
		CollectionRepresentatives,
	}
}

// AllKeys lists every key the store may hold, including the current-user
// pointer. ClearAll removes exactly these.
func AllKeys() []CollectionName {
	return append(Collections(), KeyCurrentUser)
}

// FacilityType classifies the facility a visit targets.
type FacilityType string

const (
	FacilityHospital     FacilityType = "Hospital"
	FacilityClinic       FacilityType = "Clinic"
	FacilityPharmacy     FacilityType = "Pharmacy"
	FacilityDoctorOffice FacilityType = "Doctor Office"
)

// CustomerType classifies an ordering customer.
type CustomerType string

const (
	CustomerHospital CustomerType = "Hospital"
	CustomerClinic   CustomerType = "Clinic"
	CustomerPharmacy CustomerType = "Pharmacy"
	CustomerDoctor   CustomerType = "Doctor"
)

// VisitStatus enumerates the visit workflow states.
type VisitStatus string

const (
	VisitPlanned   VisitStatus = "Planned"
	VisitCompleted VisitStatus = "Completed"
	VisitCancelled VisitStatus = "Cancelled"
)

// OrderStatus enumerates the order workflow states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

// AttendanceStatus enumerates daily attendance states.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceHalfDay AttendanceStatus = "Half Day"
)

// GoalType enumerates what a goal measures.
type GoalType string

const (
	GoalVisits  GoalType = "Visits"
	GoalOrders  GoalType = "Orders"
	GoalRevenue GoalType = "Revenue"
)

// GoalPeriod enumerates goal horizons.
type GoalPeriod string

const (
	PeriodWeekly  GoalPeriod = "Weekly"
	PeriodMonthly GoalPeriod = "Monthly"
)

// GoalStatus enumerates goal lifecycle states.
type GoalStatus string

const (
	GoalActive    GoalStatus = "Active"
	GoalCompleted GoalStatus = "Completed"
	GoalOverdue   GoalStatus = "Overdue"
)

// Base contains the common fields of every persisted record. The identifier
// and creation timestamp are immutable after Create; UpdatedAt is refreshed
// on every mutation.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Visit records a sales call on a facility. Date is an ISO YYYY-MM-DD string;
// Time is the scheduled HH:MM wall time.
type Visit struct {
	Base
	FacilityName     string       `json:"facilityName"`
	FacilityType     FacilityType `json:"facilityType"`
	Date             string       `json:"date"`
	Time             string       `json:"time"`
	Notes            string       `json:"notes"`
	Status           VisitStatus  `json:"status"`
	RepresentativeID string       `json:"representativeId"`
}

// OrderItem is one line of an order. TotalPrice is quantity times unit price
// and is recomputed by the repository whenever the line set changes.
type OrderItem struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Order records a customer order, optionally linked to the visit that
// produced it. VisitID is a weak reference: it is never validated or
// cascade-maintained.
type Order struct {
	Base
	CustomerName     string       `json:"customerName"`
	CustomerType     CustomerType `json:"customerType"`
	Products         []OrderItem  `json:"products"`
	TotalAmount      float64      `json:"totalAmount"`
	Status           OrderStatus  `json:"status"`
	Date             string       `json:"date"`
	RepresentativeID string       `json:"representativeId"`
	VisitID          string       `json:"visitId,omitempty"`
}

// Attendance records one representative-day. At most one record exists per
// (Date, RepresentativeID) pair; the repository rejects duplicates on create.
// WorkingHours is set only once CheckOut is recorded.
type Attendance struct {
	Base
	Date             string           `json:"date"`
	CheckIn          time.Time        `json:"checkIn"`
	CheckOut         *time.Time       `json:"checkOut,omitempty"`
	Status           AttendanceStatus `json:"status"`
	RepresentativeID string           `json:"representativeId"`
	WorkingHours     *float64         `json:"workingHours,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}

// Goal tracks a periodic target for a representative.
type Goal struct {
	Base
	Type             GoalType   `json:"type"`
	Title            string     `json:"title"`
	Target           float64    `json:"target"`
	Achieved         float64    `json:"achieved"`
	Period           GoalPeriod `json:"period"`
	StartDate        string     `json:"startDate"`
	EndDate          string     `json:"endDate"`
	RepresentativeID string     `json:"representativeId"`
	Status           GoalStatus `json:"status"`
}

// Representative is a sales representative profile.
type Representative struct {
	Base
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Territory string `json:"territory"`
	JoinDate  string `json:"joinDate"`
	IsActive  bool   `json:"isActive"`
}

func cloneItems(items []OrderItem) []OrderItem {
	if items == nil {
		return nil
	}
	return append([]OrderItem(nil), items...)
}

// Clone returns a deep copy of the order; the line-item slice is the only
// reference field on any entity.
func (o Order) Clone() Order {
	cp := o
	cp.Products = cloneItems(o.Products)
	return cp
}
