package core

import "fieldcrm/pkg/domain"

// Representatives is the repository for representative profiles.
type Representatives struct {
	*deps
}

// List returns representatives after the filter, sort, paginate pipeline.
func (r *Representatives) List(filter *domain.Filter, sort *domain.Sort, page *domain.Page) []domain.Representative {
	defer r.observe("representatives.list", r.now(), nil)
	reps := loadAll[domain.Representative](r.deps, domain.CollectionRepresentatives)
	return domain.Apply(reps, filter, sort, page)
}

// Get returns the representative with the given identifier.
func (r *Representatives) Get(id string) (domain.Representative, bool) {
	for _, rep := range loadAll[domain.Representative](r.deps, domain.CollectionRepresentatives) {
		if rep.ID == id {
			return rep, true
		}
	}
	return domain.Representative{}, false
}

// Create stores a new representative, assigning identifier and timestamps.
func (r *Representatives) Create(rep domain.Representative) domain.Representative {
	start := r.now()
	defer r.observe("representatives.create", start, nil)

	rep.ID = r.newID()
	rep.CreatedAt = start
	rep.UpdatedAt = start

	reps := loadAll[domain.Representative](r.deps, domain.CollectionRepresentatives)
	reps = append(reps, rep)
	saveAll(r.deps, domain.CollectionRepresentatives, reps)
	return rep
}

// Update merges the patch into the stored representative and refreshes the
// update timestamp.
func (r *Representatives) Update(id string, patch domain.RepresentativePatch) (domain.Representative, error) {
	start := r.now()
	reps := loadAll[domain.Representative](r.deps, domain.CollectionRepresentatives)
	for i := range reps {
		if reps[i].ID != id {
			continue
		}
		patch.Apply(&reps[i])
		reps[i].UpdatedAt = start
		saveAll(r.deps, domain.CollectionRepresentatives, reps)
		r.observe("representatives.update", start, nil)
		return reps[i], nil
	}
	err := domain.ErrNotFound{Collection: domain.CollectionRepresentatives, ID: id}
	r.observe("representatives.update", start, err)
	return domain.Representative{}, err
}
