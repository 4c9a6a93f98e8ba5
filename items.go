package restock

import "iter"

// SupplyItem holds the restocking parameters of one supply, identified by its
// name in the enclosing Items collection.
type SupplyItem struct {
	Coefficient Quantity // usage per 1000 units (or per unit, see CalcMode) of total sales
	Unit        string   // free-text label, may be empty
	Inventory   Quantity // on-hand quantity
	Supplier    string   // free-text label, optional
}

// Equal reports whether both items carry the same values.
func (s SupplyItem) Equal(o SupplyItem) bool {
	return s.Coefficient.Equal(o.Coefficient) &&
		s.Unit == o.Unit &&
		s.Inventory.Equal(o.Inventory) &&
		s.Supplier == o.Supplier
}

// Items is the collection of supply items of a configuration. Names are
// unique, and the collection remembers insertion order: requirement tables
// and the persisted document list items in the order the user created them,
// never sorted.
type Items struct {
	names  []string
	byName map[string]SupplyItem
}

// NewItems returns an empty item collection.
func NewItems() *Items {
	return &Items{byName: make(map[string]SupplyItem)}
}

// Len returns the number of items.
func (it *Items) Len() int { return len(it.names) }

// Has reports whether an item with that name exists.
func (it *Items) Has(name string) bool {
	_, ok := it.byName[name]
	return ok
}

// Get returns the item with that name.
func (it *Items) Get(name string) (SupplyItem, bool) {
	item, ok := it.byName[name]
	return item, ok
}

// Put inserts the item under the given name, or replaces the existing one in
// place. A replaced item keeps its position in the insertion order.
func (it *Items) Put(name string, item SupplyItem) {
	if _, ok := it.byName[name]; !ok {
		it.names = append(it.names, name)
	}
	it.byName[name] = item
}

// Remove deletes the item with that name and reports whether it existed.
func (it *Items) Remove(name string) bool {
	if _, ok := it.byName[name]; !ok {
		return false
	}
	delete(it.byName, name)
	for i, n := range it.names {
		if n == name {
			it.names = append(it.names[:i], it.names[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the item names in insertion order.
func (it *Items) Names() []string {
	names := make([]string, len(it.names))
	copy(names, it.names)
	return names
}

// All iterates over (name, item) pairs in insertion order.
func (it *Items) All() iter.Seq2[string, SupplyItem] {
	return func(yield func(string, SupplyItem) bool) {
		for _, name := range it.names {
			if !yield(name, it.byName[name]) {
				return
			}
		}
	}
}

// Equal reports whether both collections hold the same items in the same
// order.
func (it *Items) Equal(o *Items) bool {
	if it.Len() != o.Len() {
		return false
	}
	for i, name := range it.names {
		if o.names[i] != name {
			return false
		}
		if !it.byName[name].Equal(o.byName[name]) {
			return false
		}
	}
	return true
}
