package domain

import "time"

// Patch types carry partial updates. A nil field leaves the target field
// unchanged. Identifier and creation timestamp are not patchable by
// construction; unknown fields cannot be expressed at all.

// VisitPatch is a partial update of a Visit.
type VisitPatch struct {
	FacilityName     *string
	FacilityType     *FacilityType
	Date             *string
	Time             *string
	Notes            *string
	Status           *VisitStatus
	RepresentativeID *string
}

// Apply merges the set fields into the visit.
func (p VisitPatch) Apply(v *Visit) {
	if p.FacilityName != nil {
		v.FacilityName = *p.FacilityName
	}
	if p.FacilityType != nil {
		v.FacilityType = *p.FacilityType
	}
	if p.Date != nil {
		v.Date = *p.Date
	}
	if p.Time != nil {
		v.Time = *p.Time
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.RepresentativeID != nil {
		v.RepresentativeID = *p.RepresentativeID
	}
}

// OrderPatch is a partial update of an Order. Setting Products replaces the
// whole line set; the repository recomputes line and order totals.
type OrderPatch struct {
	CustomerName     *string
	CustomerType     *CustomerType
	Products         *[]OrderItem
	Status           *OrderStatus
	Date             *string
	RepresentativeID *string
	VisitID          *string
}

// Apply merges the set fields into the order.
func (p OrderPatch) Apply(o *Order) {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.CustomerType != nil {
		o.CustomerType = *p.CustomerType
	}
	if p.Products != nil {
		o.Products = cloneItems(*p.Products)
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.RepresentativeID != nil {
		o.RepresentativeID = *p.RepresentativeID
	}
	if p.VisitID != nil {
		o.VisitID = *p.VisitID
	}
}

// AttendancePatch is a partial update of an Attendance record.
type AttendancePatch struct {
	Status       *AttendanceStatus
	CheckOut     *time.Time
	WorkingHours *float64
	Notes        *string
}

// Apply merges the set fields into the attendance record.
func (p AttendancePatch) Apply(a *Attendance) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.CheckOut != nil {
		t := *p.CheckOut
		a.CheckOut = &t
	}
	if p.WorkingHours != nil {
		h := *p.WorkingHours
		a.WorkingHours = &h
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

// GoalPatch is a partial update of a Goal.
type GoalPatch struct {
	Type             *GoalType
	Title            *string
	Target           *float64
	Achieved         *float64
	Period           *GoalPeriod
	StartDate        *string
	EndDate          *string
	RepresentativeID *string
	Status           *GoalStatus
}

// Apply merges the set fields into the goal.
func (p GoalPatch) Apply(g *Goal) {
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Target != nil {
		g.Target = *p.Target
	}
	if p.Achieved != nil {
		g.Achieved = *p.Achieved
	}
	if p.Period != nil {
		g.Period = *p.Period
	}
	if p.StartDate != nil {
		g.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		g.EndDate = *p.EndDate
	}
	if p.RepresentativeID != nil {
		g.RepresentativeID = *p.RepresentativeID
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
}

// RepresentativePatch is a partial update of a Representative profile.
type RepresentativePatch struct {
	Name      *string
	Email     *string
	Phone     *string
	Territory *string
	JoinDate  *string
	IsActive  *bool
}

// Apply merges the set fields into the representative.
func (p RepresentativePatch) Apply(r *Representative) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Territory != nil {
		r.Territory = *p.Territory
	}
	if p.JoinDate != nil {
		r.JoinDate = *p.JoinDate
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}
