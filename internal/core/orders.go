package core

import "fieldcrm/pkg/domain"

// Orders is the repository for order records.
type Orders struct {
	*deps
}

// normalize recomputes every line total and the order total so the invariant
// totalAmount == sum(line totals) holds after any mutation of the line set.
func normalizeOrder(o *domain.Order) {
	var total float64
	for i := range o.Products {
		o.Products[i].TotalPrice = o.Products[i].Quantity * o.Products[i].UnitPrice
		total += o.Products[i].TotalPrice
	}
	o.TotalAmount = total
}

// List returns orders after applying the filter, sort, paginate pipeline.
func (r *Orders) List(filter *domain.Filter, sort *domain.Sort, page *domain.Page) []domain.Order {
	defer r.observe("orders.list", r.now(), nil)
	orders := loadAll[domain.Order](r.deps, domain.CollectionOrders)
	return domain.Apply(orders, filter, sort, page)
}

// Get returns the order with the given identifier.
func (r *Orders) Get(id string) (domain.Order, bool) {
	for _, o := range loadAll[domain.Order](r.deps, domain.CollectionOrders) {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return domain.Order{}, false
}

// Create stores a new order, assigning identifier and timestamps and
// normalizing line totals.
func (r *Orders) Create(o domain.Order) domain.Order {
	start := r.now()
	defer r.observe("orders.create", start, nil)

	o = o.Clone()
	o.ID = r.newID()
	o.CreatedAt = start
	o.UpdatedAt = start
	normalizeOrder(&o)

	orders := loadAll[domain.Order](r.deps, domain.CollectionOrders)
	orders = append(orders, o)
	saveAll(r.deps, domain.CollectionOrders, orders)
	return o
}

// Update merges the patch into the stored order, renormalizes totals, and
// refreshes the update timestamp.
func (r *Orders) Update(id string, patch domain.OrderPatch) (domain.Order, error) {
	start := r.now()
	orders := loadAll[domain.Order](r.deps, domain.CollectionOrders)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		patch.Apply(&orders[i])
		normalizeOrder(&orders[i])
		orders[i].UpdatedAt = start
		saveAll(r.deps, domain.CollectionOrders, orders)
		r.observe("orders.update", start, nil)
		return orders[i].Clone(), nil
	}
	err := domain.ErrNotFound{Collection: domain.CollectionOrders, ID: id}
	r.observe("orders.update", start, err)
	return domain.Order{}, err
}

// Delete removes the order, reporting whether a record was deleted.
func (r *Orders) Delete(id string) bool {
	start := r.now()
	orders := loadAll[domain.Order](r.deps, domain.CollectionOrders)
	kept := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		r.observe("orders.delete", start, domain.ErrNotFound{Collection: domain.CollectionOrders, ID: id})
		return false
	}
	saveAll(r.deps, domain.CollectionOrders, kept)
	r.observe("orders.delete", start, nil)
	return true
}
