package core

import "fieldcrm/pkg/domain"

// Goals is the repository for goal records. Like attendance, goals are
// append/update-only.
type Goals struct {
	*deps
}

// List returns goals after the filter, sort, paginate pipeline. Goals carry
// no date field, so date-bound predicates pass them through.
func (r *Goals) List(filter *domain.Filter, sort *domain.Sort, page *domain.Page) []domain.Goal {
	defer r.observe("goals.list", r.now(), nil)
	goals := loadAll[domain.Goal](r.deps, domain.CollectionGoals)
	return domain.Apply(goals, filter, sort, page)
}

// Get returns the goal with the given identifier.
func (r *Goals) Get(id string) (domain.Goal, bool) {
	for _, g := range loadAll[domain.Goal](r.deps, domain.CollectionGoals) {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Goal{}, false
}

// Create stores a new goal, assigning identifier and timestamps.
func (r *Goals) Create(g domain.Goal) domain.Goal {
	start := r.now()
	defer r.observe("goals.create", start, nil)

	g.ID = r.newID()
	g.CreatedAt = start
	g.UpdatedAt = start

	goals := loadAll[domain.Goal](r.deps, domain.CollectionGoals)
	goals = append(goals, g)
	saveAll(r.deps, domain.CollectionGoals, goals)
	return g
}

// Update merges the patch into the stored goal and refreshes the update
// timestamp.
func (r *Goals) Update(id string, patch domain.GoalPatch) (domain.Goal, error) {
	start := r.now()
	goals := loadAll[domain.Goal](r.deps, domain.CollectionGoals)
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		patch.Apply(&goals[i])
		goals[i].UpdatedAt = start
		saveAll(r.deps, domain.CollectionGoals, goals)
		r.observe("goals.update", start, nil)
		return goals[i], nil
	}
	err := domain.ErrNotFound{Collection: domain.CollectionGoals, ID: id}
	r.observe("goals.update", start, err)
	return domain.Goal{}, err
}
