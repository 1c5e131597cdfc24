package domain

import "sort"

// Filter is a conjunction of optional predicates. A zero-valued field is
// unconstrained. Date bounds are inclusive and compared lexically, which is
// valid because dates are stored in ISO YYYY-MM-DD form.
type Filter struct {
	DateFrom         string
	DateTo           string
	Status           string
	FacilityType     string
	CustomerType     string
	RepresentativeID string
}

// SortDirection orders a sort ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort orders a collection by a single named field. Ties keep the prior
// relative order (the underlying sort is stable).
type Sort struct {
	Field     string
	Direction SortDirection
}

// Page selects a 1-indexed slice of the result. Out-of-range pages yield an
// empty sequence, never an error.
type Page struct {
	Number int
	Limit  int
}

// FilterFields exposes the filterable values of a record. An empty string
// marks a field the entity does not carry: equality predicates on a missing
// field exclude the record, date-bound predicates ignore it.
type FilterFields struct {
	Date             string
	Status           string
	FacilityType     string
	CustomerType     string
	RepresentativeID string
}

// Matches reports whether the record fields satisfy every set predicate.
func (ff FilterFields) Matches(f Filter) bool {
	if f.DateFrom != "" && ff.Date != "" && ff.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && ff.Date != "" && ff.Date > f.DateTo {
		return false
	}
	if f.Status != "" && ff.Status != f.Status {
		return false
	}
	if f.FacilityType != "" && ff.FacilityType != f.FacilityType {
		return false
	}
	if f.CustomerType != "" && ff.CustomerType != f.CustomerType {
		return false
	}
	if f.RepresentativeID != "" && ff.RepresentativeID != f.RepresentativeID {
		return false
	}
	return true
}

type sortKind int

const (
	sortKindString sortKind = iota
	sortKindNumber
)

// SortValue is an ordered scalar used for field comparisons during sorting.
type SortValue struct {
	kind sortKind
	str  string
	num  float64
}

// SortString wraps a string for natural lexical ordering.
func SortString(s string) SortValue { return SortValue{kind: sortKindString, str: s} }

// SortNumber wraps a numeric field value.
func SortNumber(n float64) SortValue { return SortValue{kind: sortKindNumber, num: n} }

// SortBool orders false before true.
func SortBool(b bool) SortValue {
	if b {
		return SortNumber(1)
	}
	return SortNumber(0)
}

// Less compares two values of the same kind; mixed kinds compare as strings.
func (v SortValue) Less(o SortValue) bool {
	if v.kind == sortKindNumber && o.kind == sortKindNumber {
		return v.num < o.num
	}
	return v.str < o.str
}

// Queryable is implemented by every entity so the query pipeline can filter
// and sort heterogeneous collections through one contract.
type Queryable interface {
	// QueryFilterFields returns the record's filterable field values.
	QueryFilterFields() FilterFields
	// QuerySortValue resolves a field name (JSON name) to an orderable
	// value. Unknown fields report ok=false and leave the order unchanged.
	QuerySortValue(field string) (SortValue, bool)
}

// Apply runs the fixed query pipeline: filter, then sort, then paginate.
// Nil descriptors skip their stage. The input slice is never mutated.
func Apply[T Queryable](records []T, filter *Filter, srt *Sort, page *Page) []T {
	out := records
	if filter != nil {
		kept := make([]T, 0, len(records))
		for _, r := range records {
			if r.QueryFilterFields().Matches(*filter) {
				kept = append(kept, r)
			}
		}
		out = kept
	}
	if srt != nil {
		if out = append([]T(nil), out...); len(out) > 1 {
			desc := srt.Direction == SortDesc
			sort.SliceStable(out, func(i, j int) bool {
				a, aok := out[i].QuerySortValue(srt.Field)
				b, bok := out[j].QuerySortValue(srt.Field)
				if !aok || !bok {
					return false
				}
				if desc {
					return b.Less(a)
				}
				return a.Less(b)
			})
		}
	}
	if page != nil {
		out = paginate(out, *page)
	}
	return out
}

func paginate[T any](records []T, p Page) []T {
	if p.Limit <= 0 || p.Number <= 0 {
		return nil
	}
	start := (p.Number - 1) * p.Limit
	if start >= len(records) {
		return nil
	}
	end := start + p.Limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
