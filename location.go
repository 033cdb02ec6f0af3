package console

import (
	"errors"
	"net/url"
)

// Location is the browser location as seen by the Router.
type Location interface {
	Push(pathAndQuery string)    // add a history entry
	Replace(pathAndQuery string) // replace the current history entry
	Read() (*url.URL, error)     // current path and query
	Listen(f func()) error       // call f when the user moves through history
	Unlisten() error
}

// MemLocation is an in-memory Location with a history stack.  It is used
// outside the browser, mostly in tests.
type MemLocation struct {
	history  []string
	idx      int
	listener func()
}

// NewMemLocation returns a MemLocation whose only entry is start.
func NewMemLocation(start string) *MemLocation {
	if start == "" {
		start = "/"
	}
	return &MemLocation{history: []string{start}}
}

// Push implements Location.
func (l *MemLocation) Push(pathAndQuery string) {
	l.history = append(l.history[:l.idx+1], pathAndQuery)
	l.idx = len(l.history) - 1
}

// Replace implements Location.
func (l *MemLocation) Replace(pathAndQuery string) {
	l.history[l.idx] = pathAndQuery
}

// Read implements Location.
func (l *MemLocation) Read() (*url.URL, error) {
	return url.Parse(l.history[l.idx])
}

// Current returns the current path and query.
func (l *MemLocation) Current() string { return l.history[l.idx] }

// Len returns the number of history entries.
func (l *MemLocation) Len() int { return len(l.history) }

// Listen implements Location.
func (l *MemLocation) Listen(f func()) error {
	if l.listener != nil {
		return errors.New("history listener already set")
	}
	l.listener = f
	return nil
}

// Unlisten implements Location.
func (l *MemLocation) Unlisten() error {
	if l.listener == nil {
		return errors.New("history listener not set")
	}
	l.listener = nil
	return nil
}

// Back moves one entry back and notifies the listener, like the browser back button.
func (l *MemLocation) Back() bool {
	if l.idx == 0 {
		return false
	}
	l.idx--
	if l.listener != nil {
		l.listener()
	}
	return true
}
