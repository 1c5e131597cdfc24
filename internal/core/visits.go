package core

import "fieldcrm/pkg/domain"

// Visits is the repository for visit records.
type Visits struct {
	*deps
}

// List returns visits after applying the filter, sort, paginate pipeline.
// With no descriptors it returns the full collection in storage order.
func (r *Visits) List(filter *domain.Filter, sort *domain.Sort, page *domain.Page) []domain.Visit {
	defer r.observe("visits.list", r.now(), nil)
	visits := loadAll[domain.Visit](r.deps, domain.CollectionVisits)
	return domain.Apply(visits, filter, sort, page)
}

// Get returns the visit with the given identifier.
func (r *Visits) Get(id string) (domain.Visit, bool) {
	for _, v := range loadAll[domain.Visit](r.deps, domain.CollectionVisits) {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Visit{}, false
}

// Create stores a new visit. The identifier and both timestamps are assigned
// here; any values present on the input are discarded.
func (r *Visits) Create(v domain.Visit) domain.Visit {
	start := r.now()
	defer r.observe("visits.create", start, nil)

	v.ID = r.newID()
	v.CreatedAt = start
	v.UpdatedAt = start

	visits := loadAll[domain.Visit](r.deps, domain.CollectionVisits)
	visits = append(visits, v)
	saveAll(r.deps, domain.CollectionVisits, visits)
	return v
}

// Update merges the patch into the stored visit and refreshes its update
// timestamp. Identifier and creation timestamp are immutable.
func (r *Visits) Update(id string, patch domain.VisitPatch) (domain.Visit, error) {
	start := r.now()
	visits := loadAll[domain.Visit](r.deps, domain.CollectionVisits)
	for i := range visits {
		if visits[i].ID != id {
			continue
		}
		patch.Apply(&visits[i])
		visits[i].UpdatedAt = start
		saveAll(r.deps, domain.CollectionVisits, visits)
		r.observe("visits.update", start, nil)
		return visits[i], nil
	}
	err := domain.ErrNotFound{Collection: domain.CollectionVisits, ID: id}
	r.observe("visits.update", start, err)
	return domain.Visit{}, err
}

// Delete removes the visit, reporting whether a record was deleted.
func (r *Visits) Delete(id string) bool {
	start := r.now()
	visits := loadAll[domain.Visit](r.deps, domain.CollectionVisits)
	kept := visits[:0:0]
	for _, v := range visits {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(visits) {
		r.observe("visits.delete", start, domain.ErrNotFound{Collection: domain.CollectionVisits, ID: id})
		return false
	}
	saveAll(r.deps, domain.CollectionVisits, kept)
	r.observe("visits.delete", start, nil)
	return true
}
