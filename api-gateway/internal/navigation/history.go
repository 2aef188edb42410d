package navigation

import "sync"

// History is the single source of truth for the current route. It mirrors
// the browser's session history: Navigate pushes, Back and Forward move a
// cursor, and PopState re-derives the route from a URL.
type History struct {
	mu      sync.Mutex
	entries []Route
	index   int
}

// NewHistory seeds the history with the route resolved from the initial URL.
func NewHistory(initialURL string) *History {
	return &History{entries: []Route{Resolve(initialURL)}}
}

func (h *History) Current() Route {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Navigate makes r current and drops any forward entries. It reports false
// without pushing when r has the same URL as the current route.
func (h *History) Navigate(r Route) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.entries[h.index].URL() == r.URL() {
		return false
	}
	h.entries = append(h.entries[:h.index+1], r)
	h.index++
	return true
}

// NavigateURL resolves raw and navigates to the result.
func (h *History) NavigateURL(raw string) bool {
	return h.Navigate(Resolve(raw))
}

// Back returns the new current route, or false at the first entry.
func (h *History) Back() (Route, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == 0 {
		return h.entries[0], false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward returns the new current route, or false at the last entry.
func (h *History) Forward() (Route, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == len(h.entries)-1 {
		return h.entries[h.index], false
	}
	h.index++
	return h.entries[h.index], true
}

// PopState handles a history move made outside Back/Forward. The cursor
// follows an adjacent entry with the same URL; otherwise the current entry
// is replaced.
func (h *History) PopState(raw string) Route {
	h.mu.Lock()
	defer h.mu.Unlock()

	r := Resolve(raw)
	target := r.URL()

	switch {
	case h.index > 0 && h.entries[h.index-1].URL() == target:
		h.index--
	case h.index < len(h.entries)-1 && h.entries[h.index+1].URL() == target:
		h.index++
	default:
		h.entries[h.index] = r
	}
	return h.entries[h.index]
}

// Len is the number of entries, including forward ones.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
