package models

import (
	"fmt"
)

// PolicyTable is an ordered set of options for one category
type PolicyTable struct {
	Category Category
	Options  []PolicyOption
}

// Catalog holds the static configuration tables for a playthrough
type Catalog struct {
	Policies map[Category]*PolicyTable
	Events   []RandomEvent
}

// NewCatalog creates an empty catalog with a table per category
func NewCatalog() *Catalog {
	c := &Catalog{Policies: make(map[Category]*PolicyTable)}
	for _, cat := range AllCategories() {
		c.Policies[cat] = &PolicyTable{Category: cat}
	}
	return c
}

// AddOption appends an option to a category table
func (c *Catalog) AddOption(cat Category, opt PolicyOption) {
	if c.Policies == nil {
		c.Policies = make(map[Category]*PolicyTable)
	}
	t, ok := c.Policies[cat]
	if !ok {
		t = &PolicyTable{Category: cat}
		c.Policies[cat] = t
	}
	t.Options = append(t.Options, opt)
}

// Options returns the options of a category in declaration order
func (c *Catalog) Options(cat Category) []PolicyOption {
	t, ok := c.Policies[cat]
	if !ok {
		return nil
	}
	return t.Options
}

// Lookup finds an option by label
func (c *Catalog) Lookup(cat Category, label string) (PolicyOption, bool) {
	for _, o := range c.Options(cat) {
		if o.Label == label {
			return o, true
		}
	}
	return PolicyOption{}, false
}

// Resolve looks up all four selections, failing on the first unknown label
func (c *Catalog) Resolve(sel Selections) ([]PolicyOption, error) {
	opts := make([]PolicyOption, 0, len(AllCategories()))
	for _, cat := range AllCategories() {
		label := sel.Get(cat)
		opt, ok := c.Lookup(cat, label)
		if !ok {
			return nil, &SelectionError{Category: cat, Label: label}
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// DefaultSelections picks the first option of every category
func (c *Catalog) DefaultSelections() Selections {
	var sel Selections
	for _, cat := range AllCategories() {
		if opts := c.Options(cat); len(opts) > 0 {
			sel.Set(cat, opts[0].Label)
		}
	}
	return sel
}

// Validate checks that every table is non-empty and every cost is non-negative
func (c *Catalog) Validate() error {
	for _, cat := range AllCategories() {
		opts := c.Options(cat)
		if len(opts) == 0 {
			return fmt.Errorf("%w: no %s options", ErrInvalidCatalog, cat)
		}
		seen := make(map[string]bool, len(opts))
		for _, o := range opts {
			if o.Label == "" {
				return fmt.Errorf("%w: empty %s label", ErrInvalidCatalog, cat)
			}
			if seen[o.Label] {
				return fmt.Errorf("%w: duplicate %s option %q", ErrInvalidCatalog, cat, o.Label)
			}
			seen[o.Label] = true
			if o.Cost < 0 {
				return fmt.Errorf("%w: %s option %q has negative cost %d", ErrInvalidCatalog, cat, o.Label, o.Cost)
			}
		}
	}

	if len(c.Events) == 0 {
		return fmt.Errorf("%w: no random events", ErrInvalidCatalog)
	}
	for i, e := range c.Events {
		if e.Description == "" {
			return fmt.Errorf("%w: event %d has no description", ErrInvalidCatalog, i)
		}
		if e.OnRespond.Cost < 0 || e.OnIgnore.Cost < 0 {
			return fmt.Errorf("%w: event %q has a negative cost", ErrInvalidCatalog, e.Description)
		}
	}

	return nil
}
