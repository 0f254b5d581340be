package executor

import (
	"maps"
	"math"
	"slices"

	"go.creack.net/calc/value"
)

// Environment maps case-sensitive identifiers to values. It is owned by the
// caller and passed to every evaluation; the executor adds or overwrites
// bindings but never removes them.
type Environment map[string]value.Value

// NewEnvironment returns an environment seeded with the constants pi and e.
func NewEnvironment() Environment {
	return Environment{
		"pi": value.Float(math.Pi),
		"e":  value.Float(math.E),
	}
}

// Names returns the bound identifiers, sorted.
func (env Environment) Names() []string {
	return slices.Sorted(maps.Keys(env))
}

// scope stages the assignments of one evaluation on top of the caller's
// environment. Nothing reaches the environment until commit.
type scope struct {
	env    Environment
	staged map[string]value.Value
}

func newScope(env Environment) *scope {
	return &scope{env: env, staged: map[string]value.Value{}}
}

func (s *scope) lookup(name string) (value.Value, bool) {
	if v, ok := s.staged[name]; ok {
		return v, true
	}
	v, ok := s.env[name]
	return v, ok
}

func (s *scope) assign(name string, v value.Value) {
	s.staged[name] = v
}

func (s *scope) commit() {
	maps.Copy(s.env, s.staged)
}
