package mustache

import "sync"

// registryEntry pairs a definition with whether it may appear at the
// template's top level (spec §4.3/§6: register_tag(definition, is_top_level)).
type registryEntry struct {
	def        TagDefinition
	isTopLevel bool
}

// TagRegistry is a case-sensitive catalog of tag definitions (spec §4.3).
// Re-registering a name replaces the prior definition — deliberately
// different from the reference package's error-on-duplicate RegisterTag
// (see DESIGN.md).
type TagRegistry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

// NewTagRegistry returns an empty registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{entries: make(map[string]registryEntry)}
}

// Register installs def under its own Name(), replacing any prior
// definition of that name.
func (r *TagRegistry) Register(def TagDefinition, isTopLevel bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[def.Name()] = registryEntry{def: def, isTopLevel: isTopLevel}
}

// Tag looks up a definition by name.
func (r *TagRegistry) Tag(name string) (TagDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.def, true
}

// IsTopLevel reports whether name may appear at the template's top level.
func (r *TagRegistry) IsTopLevel(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return ok && e.isTopLevel
}

// HasTag reports whether name is registered at all.
func (r *TagRegistry) HasTag(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// ListTags returns every registered tag name, in no particular order.
func (r *TagRegistry) ListTags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// UnregisterTag removes a tag definition.
func (r *TagRegistry) UnregisterTag(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}
