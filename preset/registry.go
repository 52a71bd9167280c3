// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Lazily decoded, process-lifetime cache of preset tables.
// Policy:
//   - Each name is decoded at most once, however many goroutines ask first.
//   - Success and failure are both cached; a failed preset is never replaced
//     by a default table.
//   - Tables handed out are immutable and shared by all callers.

package preset

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/vvvfpwm/switchangle"
)

// entry is the once-guarded load state of one name.
type entry struct {
	once  sync.Once
	done  atomic.Bool
	table *switchangle.SwitchAngleTable
	err   error
}

// Registry maps preset names to decoded tables, decoding on first access.
// It is safe for concurrent use.
type Registry struct {
	provider   Provider
	decodeOpts []switchangle.Option
	anyName    bool
	logger     *log.Logger

	mu      sync.RWMutex
	entries map[Name]*entry
}

// NewRegistry returns an empty registry reading through p.
//
// Errors:
//   - ErrNilProvider if p is nil or a nil ProviderFunc. Other typed-nil
//     providers are not detected and fail when Get first calls Open.
func NewRegistry(p Provider, opts ...Option) (*Registry, error) {
	if p == nil {
		return nil, fmt.Errorf("NewRegistry: %w", ErrNilProvider)
	}
	if f, ok := p.(ProviderFunc); ok && f == nil {
		return nil, fmt.Errorf("NewRegistry: %w", ErrNilProvider)
	}
	r := &Registry{
		provider: p,
		logger:   log.New(io.Discard, "", 0),
		entries:  make(map[Name]*entry),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Get returns the table of name, decoding it on the first call.
//
// Implementation:
//   - Stage 1: look up the entry under a read lock; create it under the
//     write lock only if missing.
//   - Stage 2: run the load inside the entry's sync.Once; concurrent first
//     callers block until it finishes and then share its result.
//
// Errors:
//   - ErrUnknownPreset if name is outside the catalog and WithAnyName is off.
//   - ErrProvider wrapping the provider's error if the stream cannot be opened,
//     or alone if the first load panicked; the panic propagates to that first
//     caller only.
//   - switchangle sentinels (ErrTruncated, ErrMalformedTable, ...) on decode
//     failure. Errors are cached: later calls return the same error.
func (r *Registry) Get(name Name) (*switchangle.SwitchAngleTable, error) {
	if !r.anyName && !name.Known() {
		return nil, fmt.Errorf("Get(%s): %w", name, ErrUnknownPreset)
	}
	e := r.entry(name)
	e.once.Do(func() {
		defer e.done.Store(true)
		// Stays in place if load panics: sync.Once will not run it again.
		e.err = fmt.Errorf("Get(%s): %w: load aborted", name, ErrProvider)
		e.table, e.err = r.load(name)
	})
	return e.table, e.err
}

// MustGet is Get that panics on error. Intended for setup code where a
// missing preset should abort startup.
func (r *Registry) MustGet(name Name) *switchangle.SwitchAngleTable {
	t, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Preload decodes every given name, or the whole catalog when none is given,
// and returns all failures joined. Use it in a setup phase so that the
// simulation path only ever hits cached entries.
func (r *Registry) Preload(names ...Name) error {
	if len(names) == 0 {
		names = catalog
	}
	var errs []error
	for _, n := range names {
		if _, err := r.Get(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Loaded returns the names whose tables decoded successfully, sorted.
func (r *Registry) Loaded() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Name, 0, len(r.entries))
	for n, e := range r.entries {
		if e.done.Load() && e.err == nil {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}

// entry returns the entry of name, creating it if needed.
func (r *Registry) entry(name Name) *entry {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok = r.entries[name]; !ok {
		e = &entry{}
		r.entries[name] = e
	}
	return e
}

// load opens and decodes one preset. Decode closes the stream.
func (r *Registry) load(name Name) (*switchangle.SwitchAngleTable, error) {
	rc, err := r.provider.Open(name)
	if err != nil {
		r.logger.Printf("preset %s: open failed: %v", name, err)
		return nil, fmt.Errorf("Get(%s): %w: %w", name, ErrProvider, err)
	}
	if rc == nil {
		r.logger.Printf("preset %s: provider returned no stream", name)
		return nil, fmt.Errorf("Get(%s): %w", name, switchangle.ErrInvalidInput)
	}
	t, err := switchangle.Decode(rc, r.decodeOpts...)
	if err != nil {
		r.logger.Printf("preset %s: decode failed: %v", name, err)
		return nil, fmt.Errorf("Get(%s): %w", name, err)
	}
	r.logger.Printf("preset %s: decoded %d blocks × %d switches, div=%g",
		name, t.BlockCount(), t.SwitchCount(), t.ModulationIndexDivision())
	return t, nil
}
