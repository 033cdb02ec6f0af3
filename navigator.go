package console

import "net/url"

// NavigatorOpt is a marker interface to ensure that options to Navigator are passed intentionally.
type NavigatorOpt interface {
	IsNavigatorOpt()
}

type intNavigatorOpt int

// IsNavigatorOpt implements NavigatorOpt.
func (i intNavigatorOpt) IsNavigatorOpt() {}

var (
	// NavReplace will cause this navigation to replace the
	// current history entry rather than pushing to the stack.
	// Implemented using window.history.replaceState()
	NavReplace NavigatorOpt = intNavigatorOpt(1)

	// NavSkipRender will cause this navigation to change the location
	// without reloading the active route.  The route resolved for the new
	// path is discarded once navigation completes and the previously active
	// view and controller stay in place.  It is what NavigateWithoutReload uses.
	NavSkipRender NavigatorOpt = intNavigatorOpt(2)
)

type navOpts []NavigatorOpt

func (no navOpts) has(o NavigatorOpt) bool {
	for _, o2 := range no {
		if o == o2 {
			return true
		}
	}
	return false
}

// Navigator changes the application location.
type Navigator interface {
	// Navigate changes the location and reloads the route matching path.
	Navigate(path string, query url.Values, opts ...NavigatorOpt) error
	// NavigateWithoutReload changes the location but keeps the active route.
	NavigateWithoutReload(path string, query url.Values, opts ...NavigatorOpt) error
}

// NavigatorRef can be embedded in a component to have the Navigator injected.
type NavigatorRef struct {
	Navigator // embed Navigator
}

// NavigatorSet implements NavigatorSetter.
func (h *NavigatorRef) NavigatorSet(o Navigator) {
	h.Navigator = o
}

// NavigatorSetter is implemented by things that want a Navigator injected.
type NavigatorSetter interface {
	NavigatorSet(Navigator)
}
