package console

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
)

// ErrNotStarted is returned by navigation before Start has been called.
var ErrNotStarted = errors.New("router not started")

// EventEnv is our view of a Vugu EventEnv
type EventEnv interface {
	Lock()         // acquire write lock
	UnlockOnly()   // release write lock
	UnlockRender() // release write lock and request re-render
}

// New returns a new Router dispatching against routes.  Outside of a wasm
// environment SetLocation must be called before Start.
//
// Router methods are not synchronized.  Code running outside a Vugu event
// handler must hold the EventEnv lock while calling them.
func New(eventEnv EventEnv, routes *RouteTable) *Router {
	if routes == nil {
		routes = NewRouteTable()
	}
	return &Router{
		eventEnv:     eventEnv,
		routes:       routes,
		loc:          &jsLocation{},
		handlers:     make(map[string]RouteHandler),
		bindParamMap: make(map[string]BindParam),
		logger:       slog.Default(),
	}
}

// Router handles URL routing.
type Router struct {
	eventEnv EventEnv
	loc      Location
	routes   *RouteTable
	logger   *slog.Logger

	handlers        map[string]RouteHandler // by controller name
	defaultHandler  RouteHandler
	notFoundHandler RouteHandler

	started   bool
	current   *RouteMatch // active route
	location  string      // last path and query navigated to
	listeners []*Subscription
	keep      *Subscription // pending restore of a no-reload navigation

	bindParamMap map[string]BindParam
}

// UseFragment sets the fragment flag which if set means the fragment part of the URL (after the "#")
// is used as the path and query string.  This can be useful for compatibility in applications which are
// served statically and do not have the ability to handle URL routing on the server side.
// This option is disabled by default and only applies to the browser location.  If used it should be
// set immediately after creation.
func (r *Router) UseFragment(v bool) {
	if jl, ok := r.loc.(*jsLocation); ok {
		jl.useFragment = v
	}
}

// SetLocation replaces the browser location, e.g. with a MemLocation.
func (r *Router) SetLocation(loc Location) {
	r.loc = loc
}

// SetLogger sets the logger, slog.Default() is used otherwise.
func (r *Router) SetLogger(l *slog.Logger) {
	r.logger = l
}

// Routes returns the route table.
func (r *Router) Routes() *RouteTable { return r.routes }

// Handle registers the handler activated for routes of controller.
func (r *Router) Handle(controller string, rh RouteHandler) {
	r.handlers[controller] = rh
}

// SetDefaultHandler assigns the handler for controllers without their own handler.
func (r *Router) SetDefaultHandler(rh RouteHandler) {
	r.defaultHandler = rh
}

// SetNotFound assigns the handler for the case where neither a route
// nor the fallback matches.
func (r *Router) SetNotFound(rh RouteHandler) {
	r.notFoundHandler = rh
}

// Start installs the router as the application navigator and begins
// following browser history changes.  Navigation fails until it is called.
func (r *Router) Start() error {
	if r.started {
		return nil
	}
	err := r.loc.Listen(r.onHistory)
	if err != nil {
		return fmt.Errorf("listening to location: %w", err)
	}
	r.started = true
	return nil
}

// Stop detaches from browser history.
func (r *Router) Stop() error {
	if !r.started {
		return nil
	}
	r.started = false
	return r.loc.Unlisten()
}

// Started reports whether Start has been called.
func (r *Router) Started() bool { return r.started }

func (r *Router) onHistory() {
	if r.eventEnv != nil {
		r.eventEnv.Lock()
		defer r.eventEnv.UnlockRender()
	}
	if err := r.Pull(); err != nil {
		r.logger.Warn("history navigation failed", "err", err)
	}
}

// Current returns the active route or nil before the first navigation.
func (r *Router) Current() *RouteMatch { return r.current }

// Location returns the last path and query navigated to.
func (r *Router) Location() string { return r.location }

// MustNavigate is like Navigate but panics upon error.
func (r *Router) MustNavigate(path string, query url.Values, opts ...NavigatorOpt) {
	err := r.Navigate(path, query, opts...)
	if err != nil {
		panic(err)
	}
}

// Navigate will go the specified path and query and activate the matching route.
// path is in escaped form, as produced by RouteTable.Path.  With NavSkipRender it behaves like NavigateWithoutReload.
func (r *Router) Navigate(path string, query url.Values, opts ...NavigatorOpt) error {

	if !r.started {
		return ErrNotStarted
	}

	if navOpts(opts).has(NavSkipRender) {
		r.keepRoute()
	}

	pq := pathAndQuery(path, query)
	if navOpts(opts).has(NavReplace) {
		r.loc.Replace(pq)
	} else {
		r.loc.Push(pq)
	}

	return r.process(path, query)
}

// NavigateWithoutReload changes the location to path and query while the
// active route, its view and controller, stay in place.
func (r *Router) NavigateWithoutReload(path string, query url.Values, opts ...NavigatorOpt) error {
	return r.Navigate(path, query, append(opts, NavSkipRender)...)
}

// keepRoute snapshots the active route and restores it when the next
// navigation completes.  A pending restore from an earlier call is
// cancelled first so only one is ever registered.
func (r *Router) keepRoute() {
	if r.keep != nil {
		r.keep.Cancel()
	}
	snapshot := r.current
	r.keep = r.OnceNavigated(func(*RouteMatch) {
		r.current = snapshot
		r.keep = nil
	})
}

// Pull will read the current browser URL and navigate to it.  This is generally called
// once at application startup and again whenever the user moves through history.
func (r *Router) Pull() error {

	if !r.started {
		return ErrNotStarted
	}

	u, err := r.loc.Read()
	if err != nil {
		return err
	}

	return r.process(u.EscapedPath(), u.Query())
}

// Push will take any bound parameters and put them into the URL of the active
// route without reloading it.
func (r *Router) Push(opts ...NavigatorOpt) error {

	if r.current == nil {
		return errors.New("no active route")
	}

	params := make(url.Values, len(r.bindParamMap))
	for k, v := range r.bindParamMap {
		params[k] = v.BindParamRead()
	}
	// unbound path params keep their current values
	for _, pp := range r.current.PathParams {
		if _, ok := params[pp.Key]; !ok {
			params.Set(pp.Key, pp.Value)
		}
	}

	outPath, outParams, err := r.routes.Path(r.current.RoutePath, params)
	if err != nil {
		return err
	}

	return r.NavigateWithoutReload(outPath, outParams, opts...)
}

// UnbindParams will remove any previous parameter bindings.
// Note that this is called implicitly when a route is activated since that involves re-binding newly based on the
// path being navigated to.
func (r *Router) UnbindParams() {
	for k := range r.bindParamMap {
		delete(r.bindParamMap, k)
	}
}

// process is used interally to resolve the route for path, fire the
// navigation-completed listeners and activate the route unless a
// listener restored the previous one.
func (r *Router) process(path string, query url.Values) error {

	rm, ok := r.routes.Resolve(path)
	if !ok {
		fb := r.routes.Fallback()
		if fb != "" {
			rm, ok = r.routes.Resolve(fb)
		}
		if !ok {
			if r.keep != nil {
				r.keep.Cancel()
				r.keep = nil
			}
			if r.notFoundHandler != nil {
				r.notFoundHandler.RouteHandle(&RouteMatch{router: r, Path: path, Query: query})
			}
			return fmt.Errorf("%w: %q", ErrNoRoute, path)
		}
		r.logger.Debug("redirecting unmatched path", "path", path, "to", fb)
		path = fb
		r.loc.Replace(pathAndQuery(path, query))
	}

	// merge any other values from query into the params
	if rm.Params == nil && len(query) > 0 {
		rm.Params = make(url.Values, len(query))
	}
	for k, v := range query {
		if rm.Params[k] == nil {
			rm.Params[k] = v
		}
	}
	rm.Query = query
	rm.router = r

	r.location = pathAndQuery(path, query)
	r.current = rm

	r.emitNavigated(rm)

	if r.current != rm {
		// a no-reload navigation put the previous route back
		return nil
	}

	r.UnbindParams()
	r.activate(rm)

	return nil
}

func (r *Router) activate(rm *RouteMatch) {
	rh := r.handlers[rm.Controller]
	if rh == nil {
		rh = r.defaultHandler
	}
	if rh == nil {
		r.logger.Debug("no handler for controller", "controller", rm.Controller, "path", rm.Path)
		return
	}
	rh.RouteHandle(rm)
}

func pathAndQuery(path string, query url.Values) string {
	pq := path
	q := query.Encode()
	if len(q) > 0 {
		pq = pq + "?" + q
	}
	return pq
}

// RouteHandler implementations are called in response to a route being activated.
type RouteHandler interface {
	RouteHandle(rm *RouteMatch)
}

// RouteHandlerFunc implements RouteHandler as a function.
type RouteHandlerFunc func(rm *RouteMatch)

// RouteHandle implements the RouteHandler interface.
func (f RouteHandlerFunc) RouteHandle(rm *RouteMatch) { f(rm) }

// RouteMatch describes a resolved route.
type RouteMatch struct {
	Path       string        // path input (with any params interpolated)
	RoutePath  string        // route path pattern with params as :param
	View       string        // view template reference
	Controller string        // controller reference
	Params     url.Values    // parameters (combined query and route params)
	PathParams PathParamList // route params in pattern order
	Query      url.Values    // query string values

	router *Router
}

// Bind adds a BindParam to the list of bound parameters.
// Later calls to Bind with the same name will replace the bind
// from earlier calls.
func (r *RouteMatch) Bind(name string, param BindParam) {
	if r.router == nil {
		return
	}
	if r.router.bindParamMap == nil {
		r.router.bindParamMap = make(map[string]BindParam)
	}
	r.router.bindParamMap[name] = param
}

// BindParam is implemented by something that can be read and written as a URL param.
type BindParam interface {
	BindParamRead() []string
	BindParamWrite(v []string)
}

// StringParam implements BindParam on a string.
type StringParam string

// BindParamRead implements BindParam.
func (s *StringParam) BindParamRead() []string { return []string{string(*s)} }

// BindParamWrite implements BindParam.
func (s *StringParam) BindParamWrite(v []string) {
	if len(v) == 0 {
		*s = ""
		return
	}
	*s = StringParam(v[0])
}
