package mustache

import "strings"

// ScopeStack is the ordered (outermost to innermost) stack of values
// consulted during rendering (spec §4.4).
type ScopeStack struct {
	frames   []any
	resolver PropertyResolver
}

// NewScopeStack builds a stack seeded with one frame (the render call's
// top-level data) and a property resolver.
func NewScopeStack(data any, resolver PropertyResolver) *ScopeStack {
	if resolver == nil {
		resolver = DefaultPropertyResolver
	}
	return &ScopeStack{frames: []any{data}, resolver: resolver}
}

// Push adds a new innermost scope.
func (s *ScopeStack) Push(v any) { s.frames = append(s.frames, v) }

// Pop removes the innermost scope.
func (s *ScopeStack) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Current returns the innermost scope.
func (s *ScopeStack) Current() any {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Resolve implements spec §4.4's path resolution: "this" is current();
// a bare leading segment is probed from innermost outward (first hit is
// the anchor); remaining segments drill strictly into that anchor. A
// miss at the anchor or at any drill segment is ErrKeyNotFound, reported
// as *RenderError. A null scope with "this" yields nil, not an error.
// "this" also anchors a longer dotted path (e.g. "this.Name") the same
// way, rather than being probed as an ordinary property name (spec §4.1:
// "this" is a reserved identifier usable as any PATH segment).
func (s *ScopeStack) Resolve(path string) (any, error) {
	if path == "this" {
		return s.Current(), nil
	}

	segments := strings.Split(path, ".")

	var anchor any
	if segments[0] == "this" {
		anchor = s.Current()
	} else {
		a, ok := s.probe(segments[0])
		if !ok {
			return nil, keyNotFound(path)
		}
		anchor = a
	}

	value := anchor
	for _, seg := range segments[1:] {
		if resolved(value) == nil {
			return nil, keyNotFound(path)
		}
		v, ok := s.resolver(value, seg)
		if !ok {
			return nil, keyNotFound(path)
		}
		value = v
	}
	return value, nil
}

// probe looks up name against frames from innermost to outermost.
func (s *ScopeStack) probe(name string) (any, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.resolver(s.frames[i], name); ok {
			return v, true
		}
	}
	return nil, false
}
