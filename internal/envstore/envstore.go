// Package envstore provides environment-variable lookup for the lint engine.
// The engine never reads the process environment directly; a Store is
// injected so tests and callers control exactly which bindings are visible.
package envstore

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Store is a read-only name -> value lookup.
type Store interface {
	// Lookup returns the value bound to name and whether a binding exists.
	Lookup(name string) (string, bool)
}

// Map is an in-memory Store, primarily for tests.
type Map map[string]string

// Lookup implements Store.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type osStore struct{}

func (osStore) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OS returns a Store backed by the process environment.
func OS() Store {
	return osStore{}
}

type layered struct {
	base     Store
	fallback Map
}

func (l layered) Lookup(name string) (string, bool) {
	if v, ok := l.base.Lookup(name); ok {
		return v, true
	}
	v, ok := l.fallback[name]
	return v, ok
}

// WithDotenv layers bindings from a dotenv file underneath base.
// Bindings already present in base win, matching godotenv's no-override
// loading behavior.
func WithDotenv(base Store, path string) (Store, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return layered{base: base, fallback: Map(vars)}, nil
}
