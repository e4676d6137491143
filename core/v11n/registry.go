package v11n

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/FocuswithJustin/JuniperV11n/core/errors"
	"github.com/FocuswithJustin/JuniperV11n/internal/logging"
)

// Registry serves named versifications as shared immutable instances.
// Each name is built at most once, on first request; concurrent first
// requests wait for the same build. Names are matched case-insensitively.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]*Definition
	built map[string]*Versification
	group singleflight.Group
}

// NewRegistry returns a registry holding the built-in canons.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, def := range builtinDefinitions() {
		r.defs[registryKey(def.Name)] = def
	}
	return r
}

// NewEmptyRegistry returns a registry with no canons.
func NewEmptyRegistry() *Registry {
	return &Registry{
		defs:  make(map[string]*Definition),
		built: make(map[string]*Versification),
	}
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a definition. The definition is copied and validated eagerly
// so a broken table is reported here rather than on first use.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return errors.NewValidation("definition", "nil definition")
	}
	def = def.clone()
	if _, err := newLayout(def); err != nil {
		return err
	}

	key := registryKey(def.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[key]; ok {
		return fmt.Errorf("versification %q: %w", def.Name, errors.ErrAlreadyExists)
	}
	r.defs[key] = def
	return nil
}

// Has reports whether name is known to the registry.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[registryKey(name)]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		names = append(names, def.Name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Get returns the shared versification for name, building it on first use.
// Unknown names fail with ErrUnknownCanon; a broken definition fails with
// ErrMalformedCanon and is not cached.
func (r *Registry) Get(name string) (*Versification, error) {
	key := registryKey(name)

	r.mu.RLock()
	v, ok := r.built[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.RLock()
		v, ok := r.built[key]
		def := r.defs[key]
		r.mu.RUnlock()
		if ok {
			return v, nil
		}
		if def == nil {
			return nil, &errors.NotFoundError{Resource: "versification", ID: name, Err: ErrUnknownCanon}
		}

		start := time.Now()
		v, err := New(def)
		if err != nil {
			logging.CanonError(def.Name, "build", err)
			return nil, err
		}
		logging.CanonBuilt(v.Name(), v.BookCount(), v.MaximumOrdinal()+1, time.Since(start))

		r.mu.Lock()
		r.built[key] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Versification), nil
}

// MustGet is like Get but panics on error. It is meant for the built-in
// names, which are known to be valid.
func (r *Registry) MustGet(name string) *Versification {
	v, err := r.Get(name)
	if err != nil {
		panic(fmt.Sprintf("v11n: %v", err))
	}
	return v
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// GetVersification returns a versification from the process-wide registry.
func GetVersification(name string) (*Versification, error) {
	return Default().Get(name)
}

// HasVersification reports whether the process-wide registry knows name.
func HasVersification(name string) bool {
	return Default().Has(name)
}

// Register adds a definition to the process-wide registry.
func Register(def *Definition) error {
	return Default().Register(def)
}
