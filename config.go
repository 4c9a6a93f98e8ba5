package restock

// SalesEstimates maps every one of the seven canonical weekdays to the
// forecast sales figure for that day.
type SalesEstimates map[Weekday]Quantity

// NewSalesEstimates returns estimates with all seven days present and zero.
func NewSalesEstimates() SalesEstimates {
	se := make(SalesEstimates, 7)
	for _, d := range Weekdays() {
		se[d] = Q(0)
	}
	return se
}

// Clone returns an independent copy of the estimates.
func (se SalesEstimates) Clone() SalesEstimates {
	clone := make(SalesEstimates, len(se))
	for d, q := range se {
		clone[d] = q
	}
	return clone
}

// Equal reports whether both estimate sets carry the same figure for every
// canonical day.
func (se SalesEstimates) Equal(o SalesEstimates) bool {
	for _, d := range Weekdays() {
		if !se[d].Equal(o[d]) {
			return false
		}
	}
	return true
}

// Configuration is the root aggregate and sole unit of persistence: weekday
// sales estimates, the supply items, and the display preference. It tracks a
// dirty flag, set on every mutation and cleared only by a successful save,
// which gates the "discard unsaved changes?" prompt of interactive shells.
type Configuration struct {
	estimates SalesEstimates
	items     *Items
	darkMode  bool
	dirty     bool
}

// NewConfiguration returns the first-run configuration: seven zero-valued
// weekdays, no supply items, dark mode on.
func NewConfiguration() *Configuration {
	return &Configuration{
		estimates: NewSalesEstimates(),
		items:     NewItems(),
		darkMode:  true,
	}
}

// Dirty reports whether the configuration holds unsaved changes.
func (c *Configuration) Dirty() bool { return c.dirty }

// Estimate returns the forecast sales figure for the given day.
func (c *Configuration) Estimate(d Weekday) Quantity { return c.estimates[d] }

// Estimates returns a copy of the per-day sales estimates.
func (c *Configuration) Estimates() SalesEstimates { return c.estimates.Clone() }

// SetEstimate records the forecast sales figure for the given day.
func (c *Configuration) SetEstimate(d Weekday, q Quantity) {
	c.estimates[d] = q
	c.dirty = true
}

// Items returns the live supply item collection. Mutate items through the
// Configuration methods so the dirty flag stays accurate.
func (c *Configuration) Items() *Items { return c.items }

// AddItem inserts or replaces the named item with the given coefficient,
// unit and supplier. Inventory is always reset to zero for an added item,
// even when the name already exists. An empty name is silently ignored,
// rejecting it with a message is the caller's job.
func (c *Configuration) AddItem(name string, coefficient Quantity, unit, supplier string) {
	if name == "" {
		return
	}
	c.items.Put(name, SupplyItem{
		Coefficient: coefficient,
		Unit:        unit,
		Inventory:   Q(0),
		Supplier:    supplier,
	})
	c.dirty = true
}

// PutItem inserts or replaces the named item as given, keeping its position
// when it already exists. Unlike AddItem it does not touch inventory, it is
// the primitive behind in-place edits. An empty name is silently ignored.
func (c *Configuration) PutItem(name string, item SupplyItem) {
	if name == "" {
		return
	}
	c.items.Put(name, item)
	c.dirty = true
}

// RemoveItem deletes the named item and reports whether it existed.
func (c *Configuration) RemoveItem(name string) bool {
	if !c.items.Remove(name) {
		return false
	}
	c.dirty = true
	return true
}

// DarkMode reports the persisted display preference.
func (c *Configuration) DarkMode() bool { return c.darkMode }

// SetDarkMode records the display preference for the next startup.
func (c *Configuration) SetDarkMode(v bool) {
	c.darkMode = v
	c.dirty = true
}

// Equal reports whether both configurations hold the same persisted state.
// The dirty flag is transient and not part of the comparison.
func (c *Configuration) Equal(o *Configuration) bool {
	return c.estimates.Equal(o.estimates) &&
		c.items.Equal(o.items) &&
		c.darkMode == o.darkMode
}
