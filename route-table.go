package console

import (
	"errors"
	"fmt"
	"net/url"
	"path"
)

// ErrNoRoute is returned when neither a route nor the fallback matches a path.
var ErrNoRoute = errors.New("no route matches path")

// RouteEntry is one declared route: a path pattern plus the view template
// and controller that handle it.
type RouteEntry struct {
	Pattern    string // e.g. "/main/:application"
	View       string // view template reference
	Controller string // controller reference

	mpath mpath
}

// ParamNames returns the names of the pattern's parameters in order.
func (e RouteEntry) ParamNames() []string { return e.mpath.paramNames() }

// RouteTable is an ordered list of routes.  Resolution is first-match in
// declaration order, so a pattern must be declared before any later pattern
// whose paths it would otherwise capture.  Patterns with a different segment
// count never compete, matching is purely structural.
type RouteTable struct {
	entries  []RouteEntry
	fallback string
}

// NewRouteTable returns an empty RouteTable with no fallback.
func NewRouteTable() *RouteTable {
	return &RouteTable{}
}

// MustAddRoute is like AddRoute but panics upon error.
func (t *RouteTable) MustAddRoute(pattern, view, controller string) {
	err := t.AddRoute(pattern, view, controller)
	if err != nil {
		panic(err)
	}
}

// AddRoute appends a route to the table.
func (t *RouteTable) AddRoute(pattern, view, controller string) error {

	mp, err := parseMpath(pattern)
	if err != nil {
		return err
	}

	t.entries = append(t.entries, RouteEntry{
		Pattern:    mp.String(),
		View:       view,
		Controller: controller,
		mpath:      mp,
	})

	return nil
}

// Otherwise sets the path every unmatched path is redirected to.
func (t *RouteTable) Otherwise(redirectTo string) {
	t.fallback = redirectTo
}

// Fallback returns the redirect target for unmatched paths.
func (t *RouteTable) Fallback() string { return t.fallback }

// Entries returns a copy of the declared routes in order.
func (t *RouteTable) Entries() []RouteEntry {
	ret := make([]RouteEntry, len(t.entries))
	copy(ret, t.entries)
	return ret
}

// Resolve returns the first route matching p.  If ok is false the caller
// should redirect to Fallback().
func (t *RouteTable) Resolve(p string) (rm *RouteMatch, ok bool) {

	for i := range t.entries {
		re := &t.entries[i]
		pvals, matched := re.mpath.match(p)
		if !matched {
			continue
		}

		var plist PathParamList
		for _, name := range re.mpath.paramNames() {
			plist = append(plist, PathParam{Key: name, Value: pvals.Get(name)})
		}

		return &RouteMatch{
			Path:       path.Clean("/" + p),
			RoutePath:  re.Pattern,
			View:       re.View,
			Controller: re.Controller,
			Params:     pvals,
			PathParams: plist,
		}, true
	}

	return nil, false
}

// Path builds a concrete path for the route declared with pattern.
// Params not used by the pattern are returned as the remaining query.
func (t *RouteTable) Path(pattern string, params url.Values) (string, url.Values, error) {
	mp, err := parseMpath(pattern)
	if err != nil {
		return "", nil, err
	}
	for _, re := range t.entries {
		if re.Pattern == mp.String() {
			return re.mpath.merge(params)
		}
	}
	return "", nil, fmt.Errorf("route %q not declared", pattern)
}

// Shadow describes a route that can never be selected because an earlier
// route matches every path it would.
type Shadow struct {
	Shadowed RouteEntry
	By       RouteEntry
}

// String implements fmt.Stringer.
func (s Shadow) String() string {
	return fmt.Sprintf("%s is shadowed by %s", s.Shadowed.Pattern, s.By.Pattern)
}

// Shadowed reports every route hidden by an earlier declaration.  It is a
// declaration-time check only, Resolve never consults it.
func (t *RouteTable) Shadowed() []Shadow {
	var ret []Shadow
	for i := range t.entries {
		for j := 0; j < i; j++ {
			if t.entries[j].mpath.covers(t.entries[i].mpath) {
				ret = append(ret, Shadow{Shadowed: t.entries[i], By: t.entries[j]})
				break
			}
		}
	}
	return ret
}
