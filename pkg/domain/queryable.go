package domain

import "time"

// Compile-time assertions that every entity satisfies the query contract.
var (
	_ Queryable = Visit{}
	_ Queryable = Order{}
	_ Queryable = Attendance{}
	_ Queryable = Goal{}
	_ Queryable = Representative{}
)

func sortTime(t time.Time) SortValue {
	return SortString(t.UTC().Format(time.RFC3339Nano))
}

func sortTimePtr(t *time.Time) SortValue {
	if t == nil {
		return SortString("")
	}
	return sortTime(*t)
}

// QueryFilterFields implements Queryable.
func (v Visit) QueryFilterFields() FilterFields {
	return FilterFields{
		Date:             v.Date,
		Status:           string(v.Status),
		FacilityType:     string(v.FacilityType),
		RepresentativeID: v.RepresentativeID,
	}
}

// QuerySortValue implements Queryable. Field names are the JSON names.
func (v Visit) QuerySortValue(field string) (SortValue, bool) {
	switch field {
	case "id":
		return SortString(v.ID), true
	case "facilityName":
		return SortString(v.FacilityName), true
	case "facilityType":
		return SortString(string(v.FacilityType)), true
	case "date":
		return SortString(v.Date), true
	case "time":
		return SortString(v.Time), true
	case "status":
		return SortString(string(v.Status)), true
	case "representativeId":
		return SortString(v.RepresentativeID), true
	case "createdAt":
		return sortTime(v.CreatedAt), true
	case "updatedAt":
		return sortTime(v.UpdatedAt), true
	}
	return SortValue{}, false
}

// QueryFilterFields implements Queryable.
func (o Order) QueryFilterFields() FilterFields {
	return FilterFields{
		Date:             o.Date,
		Status:           string(o.Status),
		CustomerType:     string(o.CustomerType),
		RepresentativeID: o.RepresentativeID,
	}
}

// QuerySortValue implements Queryable.
func (o Order) QuerySortValue(field string) (SortValue, bool) {
	switch field {
	case "id":
		return SortString(o.ID), true
	case "customerName":
		return SortString(o.CustomerName), true
	case "customerType":
		return SortString(string(o.CustomerType)), true
	case "totalAmount":
		return SortNumber(o.TotalAmount), true
	case "status":
		return SortString(string(o.Status)), true
	case "date":
		return SortString(o.Date), true
	case "visitId":
		return SortString(o.VisitID), true
	case "createdAt":
		return sortTime(o.CreatedAt), true
	case "updatedAt":
		return sortTime(o.UpdatedAt), true
	}
	return SortValue{}, false
}

// QueryFilterFields implements Queryable.
func (a Attendance) QueryFilterFields() FilterFields {
	return FilterFields{
		Date:             a.Date,
		Status:           string(a.Status),
		RepresentativeID: a.RepresentativeID,
	}
}

// QuerySortValue implements Queryable.
func (a Attendance) QuerySortValue(field string) (SortValue, bool) {
	switch field {
	case "id":
		return SortString(a.ID), true
	case "date":
		return SortString(a.Date), true
	case "checkIn":
		return sortTime(a.CheckIn), true
	case "checkOut":
		return sortTimePtr(a.CheckOut), true
	case "status":
		return SortString(string(a.Status)), true
	case "representativeId":
		return SortString(a.RepresentativeID), true
	case "workingHours":
		if a.WorkingHours == nil {
			return SortNumber(0), true
		}
		return SortNumber(*a.WorkingHours), true
	case "createdAt":
		return sortTime(a.CreatedAt), true
	case "updatedAt":
		return sortTime(a.UpdatedAt), true
	}
	return SortValue{}, false
}

// QueryFilterFields implements Queryable. Goals carry no single date field,
// so date-bound predicates pass them through.
func (g Goal) QueryFilterFields() FilterFields {
	return FilterFields{
		Status:           string(g.Status),
		RepresentativeID: g.RepresentativeID,
	}
}

// QuerySortValue implements Queryable.
func (g Goal) QuerySortValue(field string) (SortValue, bool) {
	switch field {
	case "id":
		return SortString(g.ID), true
	case "type":
		return SortString(string(g.Type)), true
	case "title":
		return SortString(g.Title), true
	case "target":
		return SortNumber(g.Target), true
	case "achieved":
		return SortNumber(g.Achieved), true
	case "period":
		return SortString(string(g.Period)), true
	case "startDate":
		return SortString(g.StartDate), true
	case "endDate":
		return SortString(g.EndDate), true
	case "status":
		return SortString(string(g.Status)), true
	case "representativeId":
		return SortString(g.RepresentativeID), true
	case "createdAt":
		return sortTime(g.CreatedAt), true
	case "updatedAt":
		return sortTime(g.UpdatedAt), true
	}
	return SortValue{}, false
}

// QueryFilterFields implements Queryable. Representatives expose only their
// own identifier; any other equality predicate excludes them.
func (r Representative) QueryFilterFields() FilterFields {
	return FilterFields{RepresentativeID: r.ID}
}

// QuerySortValue implements Queryable.
func (r Representative) QuerySortValue(field string) (SortValue, bool) {
	switch field {
	case "id":
		return SortString(r.ID), true
	case "name":
		return SortString(r.Name), true
	case "email":
		return SortString(r.Email), true
	case "phone":
		return SortString(r.Phone), true
	case "territory":
		return SortString(r.Territory), true
	case "joinDate":
		return SortString(r.JoinDate), true
	case "isActive":
		return SortBool(r.IsActive), true
	case "createdAt":
		return sortTime(r.CreatedAt), true
	case "updatedAt":
		return sortTime(r.UpdatedAt), true
	}
	return SortValue{}, false
}
