package radial

import (
	"slices"
	"sync"
)

// Responsive pairs a media query with a partial option set. Entries whose
// query holds in the current environment are merged over the base options in
// list order, later entries winning.
type Responsive struct {
	Query   string
	Options Options
}

// Resolver merges a base option layer, a caller override layer, and an
// ordered list of responsive entries into one effective configuration, and
// keeps that configuration synchronized with the environment.
//
// The merge order is DefaultOptions ← base ← override ← each responsive
// entry whose query currently holds, in list order. The resolver subscribes
// to the environment and re-resolves on every change; when the set of
// holding queries differs from the previous resolution, the onChange
// callback receives the new effective configuration. With no responsive
// entries the resolver never subscribes and onChange is never invoked.
//
// A Resolver owns its environment subscription. Call Stop when the chart is
// disposed.
type Resolver struct {
	base       Options
	override   Options
	responsive []Responsive
	env        Environment
	onChange   func(Options)

	mu      sync.Mutex
	matched []bool
	current Options
	cancel  func()
}

// NewResolver creates a resolver and performs the initial resolution
// synchronously, so Current is valid immediately. onChange may be nil.
func NewResolver(base, override Options, responsive []Responsive, env Environment, onChange func(Options)) *Resolver {
	r := &Resolver{
		base:       base,
		override:   override,
		responsive: responsive,
		env:        env,
		onChange:   onChange,
	}
	r.matched = r.evaluate()
	r.current = r.merge(r.matched)
	if len(responsive) > 0 {
		r.cancel = env.Subscribe(r.reevaluate)
	}
	return r
}

// evaluate reports which responsive queries currently hold.
func (r *Resolver) evaluate() []bool {
	matched := make([]bool, len(r.responsive))
	for i, entry := range r.responsive {
		matched[i] = r.env.Matches(entry.Query)
	}
	return matched
}

// merge builds the effective configuration for a given match set.
func (r *Resolver) merge(matched []bool) Options {
	eff := DefaultOptions()
	for _, layer := range []Options{r.base, r.override} {
		if err := mergeOptions(&eff, layer); err != nil {
			logger().Warn("options merge failed", "err", err)
		}
	}
	for i, entry := range r.responsive {
		if !matched[i] {
			continue
		}
		if err := mergeOptions(&eff, entry.Options); err != nil {
			logger().Warn("responsive merge failed", "query", entry.Query, "err", err)
		}
	}
	return cloneOptions(eff)
}

// reevaluate runs on every environment change and notifies only when the
// match set, and therefore the merged result, changed.
func (r *Resolver) reevaluate() {
	r.mu.Lock()
	matched := r.evaluate()
	if slices.Equal(matched, r.matched) {
		r.mu.Unlock()
		return
	}
	r.matched = matched
	r.current = r.merge(matched)
	eff := cloneOptions(r.current)
	onChange := r.onChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(eff)
	}
}

// Current returns the effective configuration from the latest resolution.
func (r *Resolver) Current() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneOptions(r.current)
}

// Stop cancels the environment subscription. The resolver keeps answering
// Current with the last resolved configuration.
func (r *Resolver) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
