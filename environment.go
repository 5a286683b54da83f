package radial

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Environment is the runtime display environment a chart renders against.
// It answers the current surface size, evaluates media queries, and
// delivers change notifications.
//
// Implementations must deliver Subscribe callbacks serially; the chart
// render path relies on notifications never overlapping.
type Environment interface {
	// Size returns the current viewport size in pixels.
	Size() (width, height float64)

	// Matches reports whether a media query currently holds. Queries that
	// fail to parse do not hold.
	Matches(query string) bool

	// Subscribe registers fn to run on every environment change and
	// returns a cancel function that removes the registration. Cancel is
	// idempotent.
	Subscribe(fn func()) (cancel func())
}

// queryTermRe matches one media feature term like "(min-width: 600px)".
var queryTermRe = regexp.MustCompile(`^\(\s*(min-width|max-width|min-height|max-height)\s*:\s*([0-9]+(?:\.[0-9]+)?)px\s*\)$`)

// queryTerm is one parsed media feature.
type queryTerm struct {
	feature string
	value   float64
}

// parseQuery parses a media query of "and"-joined dimension terms, e.g.
// "(min-width: 600px) and (max-width: 1024px)".
func parseQuery(query string) ([]queryTerm, error) {
	parts := strings.Split(query, " and ")
	terms := make([]queryTerm, 0, len(parts))
	for _, part := range parts {
		m := queryTermRe.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return nil, fmt.Errorf("unsupported media query term %q", part)
		}
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, fmt.Errorf("media query term %q: %w", part, err)
		}
		terms = append(terms, queryTerm{feature: m[1], value: v})
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty media query")
	}
	return terms, nil
}

// holds evaluates the term against a viewport size.
func (t queryTerm) holds(width, height float64) bool {
	switch t.feature {
	case "min-width":
		return width >= t.value
	case "max-width":
		return width <= t.value
	case "min-height":
		return height >= t.value
	case "max-height":
		return height <= t.value
	}
	return false
}

// Viewport is the default Environment: a mutable surface size with
// synchronous change fan-out. SetSize invokes all subscribers on the calling
// goroutine, one after another, preserving the serial-notification
// guarantee.
type Viewport struct {
	mu     sync.Mutex
	width  float64
	height float64
	subs   map[int]func()
	nextID int
}

// NewViewport creates a viewport with the given initial size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size returns the current viewport size.
func (v *Viewport) Size() (float64, float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Matches evaluates a media query against the current size. A query that
// fails to parse is logged and does not hold; it is never fatal.
func (v *Viewport) Matches(query string) bool {
	terms, err := parseQuery(query)
	if err != nil {
		logger().Warn("ignoring media query", "query", query, "err", err)
		return false
	}
	w, h := v.Size()
	for _, t := range terms {
		if !t.holds(w, h) {
			return false
		}
	}
	return true
}

// SetSize updates the viewport size and notifies all subscribers. Unchanged
// sizes notify nobody.
func (v *Viewport) SetSize(width, height float64) {
	v.mu.Lock()
	if v.width == width && v.height == height {
		v.mu.Unlock()
		return
	}
	v.width = width
	v.height = height
	fns := make([]func(), 0, len(v.subs))
	ids := make([]int, 0, len(v.subs))
	for id := range v.subs {
		ids = append(ids, id)
	}
	// Notify in subscription order.
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, v.subs[id])
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Subscribe registers fn for size-change notifications.
func (v *Viewport) Subscribe(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.subs == nil {
		v.subs = make(map[int]func())
	}
	id := v.nextID
	v.nextID++
	v.subs[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}
