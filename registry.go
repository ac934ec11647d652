package squill

import (
	"sort"
	"sync"
)

// TableRegistry maps logical names to table references. It is an explicit
// handle: create one per schema or test fixture rather than sharing a
// package-level instance. Safe for concurrent use. Readers never panic;
// a name that was never registered simply reads as not found.
type TableRegistry struct {
	mu     sync.RWMutex
	tables map[string]TableRef
}

// NewTableRegistry creates an empty registry.
func NewTableRegistry() *TableRegistry {
	return &TableRegistry{tables: make(map[string]TableRef)}
}

// Register stores a table reference under the given name, replacing any
// previous entry.
func (r *TableRegistry) Register(name string, table TableRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[name] = table
}

// Get looks up a table reference by name.
func (r *TableRegistry) Get(name string) (TableRef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.tables[name]
	return table, ok
}

// Remove deletes the entry for the given name, if any.
func (r *TableRegistry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, name)
}

// Clear removes all entries.
func (r *TableRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = make(map[string]TableRef)
}

// Count returns the number of registered tables.
func (r *TableRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// Names returns the registered names in sorted order.
func (r *TableRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
