package drafting

// Model stores named reference points and a list of dependent callbacks.
// Entities resolve their references by name against a model and register a
// callback to be told when the model content changes. A Model is not safe
// for concurrent use.
type Model struct {
	pairs map[string]Point
	deps  []func()
}

// SetNamedPair registers point p under name, overwriting a previous entry.
func (m *Model) SetNamedPair(name string, p Point) {
	if m.pairs == nil {
		m.pairs = map[string]Point{}
	}
	m.pairs[name] = p
}

// DeleteNamedPair removes the entry under name, if any.
func (m *Model) DeleteNamedPair(name string) {
	delete(m.pairs, name)
}

// NamedPair returns the point registered under name.
func (m *Model) NamedPair(name string) (Point, bool) {
	p, ok := m.pairs[name]
	return p, ok
}

// AddDependency registers fn to be called when the model changes.
func (m *Model) AddDependency(fn func()) {
	m.deps = append(m.deps, fn)
}

// Changed notifies all registered dependents that the model content
// changed, typically invalidating their cached geometry.
func (m *Model) Changed() {
	for _, fn := range m.deps {
		fn()
	}
}
