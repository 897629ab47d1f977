package chat

import (
	"fmt"
	"slices"
)

// Module is a capability module that can be equipped on an agent.
type Module struct {
	ID       int
	Name     string
	Style    string // palette tag, e.g. "blue"
	Equipped bool
}

// ActiveModules is the set of equipped modules, kept as ordered ids so that
// newly equipped modules show up last.
type ActiveModules struct {
	catalog []Module
	ids     []int
}

// NewActiveModules seeds the set with every module marked Equipped.
func NewActiveModules(catalog []Module) *ActiveModules {
	am := &ActiveModules{catalog: slices.Clone(catalog)}
	for _, m := range catalog {
		if m.Equipped {
			am.ids = append(am.ids, m.ID)
		}
	}
	return am
}

// Catalog returns every known module.
func (am *ActiveModules) Catalog() []Module { return slices.Clone(am.catalog) }

// Toggle equips or unequips a module by id and reports whether it is now
// equipped. Ids outside the catalog are ignored.
func (am *ActiveModules) Toggle(id int) bool {
	if !slices.ContainsFunc(am.catalog, func(m Module) bool { return m.ID == id }) {
		return false
	}
	if i := slices.Index(am.ids, id); i >= 0 {
		am.ids = slices.Delete(am.ids, i, i+1)
		return false
	}
	am.ids = append(am.ids, id)
	return true
}

// Has reports whether the module is equipped.
func (am *ActiveModules) Has(id int) bool { return slices.Contains(am.ids, id) }

// Len is the number of equipped modules.
func (am *ActiveModules) Len() int { return len(am.ids) }

// IDs returns the equipped ids in the order they were equipped.
func (am *ActiveModules) IDs() []int { return slices.Clone(am.ids) }

// Active returns the equipped modules in the order they were equipped.
func (am *ActiveModules) Active() []Module {
	out := make([]Module, 0, len(am.ids))
	for _, id := range am.ids {
		if i := slices.IndexFunc(am.catalog, func(m Module) bool { return m.ID == id }); i >= 0 {
			out = append(out, am.catalog[i])
		}
	}
	return out
}

// Badges returns the names of the first n equipped modules, followed by a
// "+k" badge when more are equipped.
func (am *ActiveModules) Badges(n int) []string {
	active := am.Active()
	var out []string
	for i, m := range active {
		if i == n {
			out = append(out, fmt.Sprintf("+%d", len(active)-n))
			break
		}
		out = append(out, m.Name)
	}
	return out
}
