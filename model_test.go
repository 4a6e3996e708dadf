package drafting

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestModel(t *testing.T) {
	var m Model
	_, ok := m.NamedPair("hole")
	test.That(t, !ok)

	m.SetNamedPair("hole", Point{10, 20})
	p, ok := m.NamedPair("hole")
	test.That(t, ok)
	test.T(t, p, Point{10, 20})

	m.SetNamedPair("hole", Point{15, 20})
	p, _ = m.NamedPair("hole")
	test.T(t, p, Point{15, 20})

	m.DeleteNamedPair("hole")
	_, ok = m.NamedPair("hole")
	test.That(t, !ok)
}

func TestModelDependencies(t *testing.T) {
	var m Model
	calls := 0
	m.AddDependency(func() { calls++ })
	m.AddDependency(func() { calls++ })

	m.Changed()
	test.T(t, calls, 2)
	m.Changed()
	test.T(t, calls, 4)
}

func TestPathModel(t *testing.T) {
	// a path carries named pairs along with its outline
	p := MustParsePath("M0 0L10 0")
	p.SetNamedPair("end", Point{10, 0})
	q, ok := p.NamedPair("end")
	test.That(t, ok)
	test.T(t, q, Point{10, 0})
}
