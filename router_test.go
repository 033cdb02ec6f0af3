package console

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appRouter struct {
	*Router
	loc       *MemLocation
	activated []RouteMatch
}

func newAppRouter(t *testing.T, routes *RouteTable) *appRouter {
	t.Helper()
	ar := &appRouter{Router: New(nil, routes), loc: NewMemLocation("/")}
	ar.SetLocation(ar.loc)
	ar.SetDefaultHandler(RouteHandlerFunc(func(rm *RouteMatch) {
		ar.activated = append(ar.activated, *rm)
	}))
	require.NoError(t, ar.Start())
	return ar
}

func TestRouter(t *testing.T) {

	type tcase struct {
		path  string   // the path to request
		rp    []string // route paths for which we AddRoute
		check func(ar *appRouter) bool
	}

	tclist := []tcase{

		{
			"/",
			[]string{"/"},
			func(ar *appRouter) bool { return ar.Current().RoutePath == "/" },
		},

		{
			"/nothing",
			[]string{"/"},
			func(ar *appRouter) bool { return ar.Current().RoutePath == "/" && ar.loc.Current() == "/" },
		},

		{
			"/a",
			[]string{"/", "/a"},
			func(ar *appRouter) bool { return ar.Current().RoutePath == "/a" },
		},

		{
			"/a/v1",
			[]string{"/", "/a", "/a/:id"},
			func(ar *appRouter) bool {
				return ar.Current().RoutePath == "/a/:id" &&
					ar.Current().Params.Get("id") == "v1" &&
					len(ar.activated) == 1
			},
		},
	}

	for i, tc := range tclist {
		t.Run(fmt.Sprint(i), func(t *testing.T) {

			rt := NewRouteTable()
			for _, p := range tc.rp {
				rt.MustAddRoute(p, p, "C"+p)
			}
			rt.Otherwise("/")

			ar := newAppRouter(t, rt)
			require.NoError(t, ar.Navigate(tc.path, nil))

			if !tc.check(ar) {
				t.Fail()
			}

		})
	}

}

func TestRouterNotStarted(t *testing.T) {

	r := New(nil, DefaultRoutes())
	r.SetLocation(NewMemLocation("/"))

	assert.ErrorIs(t, r.Navigate("/main", nil), ErrNotStarted)
	assert.ErrorIs(t, r.NavigateWithoutReload("/main", nil), ErrNotStarted)
	assert.ErrorIs(t, r.Pull(), ErrNotStarted)
	assert.Nil(t, r.Current())

}

func TestRouterNavigateReload(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	require.NoError(t, ar.Navigate("/main/ApiGateway", nil))
	require.NoError(t, ar.Navigate("/inspector/ApiGateway/5m/2024-01-02-10-00-00/agent-1", url.Values{"tab": {"jvm"}}))

	cur := ar.Current()
	assert.Equal("inspector", cur.View)
	assert.Equal(ControllerInspector, cur.Controller)
	assert.Equal("agent-1", cur.Params.Get("agentId"))
	assert.Equal("jvm", cur.Params.Get("tab"))
	assert.Equal("/inspector/ApiGateway/5m/2024-01-02-10-00-00/agent-1?tab=jvm", ar.loc.Current())
	assert.Equal(ar.loc.Current(), ar.Location())
	assert.Len(ar.activated, 2)

	// same path again still reloads
	require.NoError(t, ar.Navigate("/inspector/ApiGateway/5m/2024-01-02-10-00-00/agent-1", nil))
	assert.Len(ar.activated, 3)
	assert.NotSame(cur, ar.Current())

}

func TestRouterNavigateWithoutReload(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	require.NoError(t, ar.Navigate("/main/ApiGateway/5m", nil))
	before := ar.Current()
	require.Len(t, ar.activated, 1)

	require.NoError(t, ar.NavigateWithoutReload("/main/ApiGateway/1h/2024-01-02-10-00-00", nil))

	assert.Same(before, ar.Current())
	assert.Equal("/main/ApiGateway/1h/2024-01-02-10-00-00", ar.loc.Current())
	assert.Equal("/main/ApiGateway/1h/2024-01-02-10-00-00", ar.Location())
	assert.Len(ar.activated, 1)
	assert.Nil(ar.keep)
	assert.Empty(ar.listeners)

	// the restore listener is gone, a normal navigation reloads again
	require.NoError(t, ar.Navigate("/threadDump/ApiGateway/agent-1", nil))
	assert.Equal("threadDump", ar.Current().View)
	assert.Len(ar.activated, 2)

}

func TestRouterNavigateWithoutReloadOverlap(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	require.NoError(t, ar.Navigate("/main/ApiGateway", nil))
	before := ar.Current()

	// two pending restores before any navigation completes
	ar.keepRoute()
	first := ar.keep
	ar.keepRoute()

	assert.False(first.Active())
	assert.Len(ar.listeners, 1)

	require.NoError(t, ar.Navigate("/main/ApiGateway/5m", nil))
	assert.Same(before, ar.Current())
	assert.Empty(ar.listeners)
	assert.Len(ar.activated, 1)

}

func TestRouterFallback(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	for _, p := range []string{"/", "/nowhere", "/main/a/b/c/d/e", "/transactionDetail/only-one"} {
		require.NoError(t, ar.Navigate(p, nil))
		assert.Equal("/main", ar.Current().Path, p)
		assert.Equal("main-ready", ar.Current().View, p)
		assert.Equal("/main", ar.loc.Current(), p)
	}

}

func TestRouterNotFound(t *testing.T) {

	rt := NewRouteTable()
	rt.MustAddRoute("/a", "a", "A")

	ar := newAppRouter(t, rt)
	var nf string
	ar.SetNotFound(RouteHandlerFunc(func(rm *RouteMatch) { nf = rm.Path }))

	err := ar.Navigate("/b", nil)
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Equal(t, "/b", nf)
	assert.Nil(t, ar.Current())

	// an aborted no-reload navigation leaves no listener behind
	require.NoError(t, ar.Navigate("/a", nil))
	assert.ErrorIs(t, ar.NavigateWithoutReload("/b", nil), ErrNoRoute)
	assert.Empty(t, ar.listeners)
	assert.Equal(t, "/a", ar.Current().Path)

}

func TestRouterHandlersByController(t *testing.T) {

	ar := newAppRouter(t, DefaultRoutes())
	var got []string
	ar.Handle(ControllerMain, RouteHandlerFunc(func(rm *RouteMatch) { got = append(got, "main:"+rm.View) }))
	ar.Handle(ControllerThreadDump, RouteHandlerFunc(func(rm *RouteMatch) { got = append(got, "td:"+rm.Params.Get("agentId")) }))

	require.NoError(t, ar.Navigate("/main", nil))
	require.NoError(t, ar.Navigate("/threadDump/app/a1", nil))
	require.NoError(t, ar.Navigate("/transactionDetail", nil))

	assert.Equal(t, []string{"main:main-ready", "td:a1"}, got)
	assert.Len(t, ar.activated, 1) // transactionDetail went to the default handler

}

func TestRouterBack(t *testing.T) {

	ar := newAppRouter(t, DefaultRoutes())

	require.NoError(t, ar.Navigate("/main/app", nil))
	require.NoError(t, ar.Navigate("/threadDump/app/a1", nil))
	require.True(t, ar.loc.Back())

	assert.Equal(t, "/main/app", ar.Current().Path)
	assert.Len(t, ar.activated, 3)

	require.NoError(t, ar.Stop())
	assert.False(t, ar.Started())

}

func TestRouterPush(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	period := StringParam("5m")
	ar.Handle(ControllerMain, RouteHandlerFunc(func(rm *RouteMatch) {
		period = StringParam(rm.Params.Get("readablePeriod"))
		rm.Bind("readablePeriod", &period)
	}))

	require.NoError(t, ar.Navigate("/main/app/5m", url.Values{"x": {"1"}}))
	before := ar.Current()

	period.BindParamWrite([]string{"3h"})
	require.NoError(t, ar.Push())

	assert.Equal("/main/app/3h", ar.loc.Current())
	assert.Same(before, ar.Current())

}

func TestRouterPushEscapedParam(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	app := StringParam("")
	ar.Handle(ControllerMain, RouteHandlerFunc(func(rm *RouteMatch) {
		app = StringParam(rm.Params.Get("application"))
		rm.Bind("application", &app)
	}))

	require.NoError(t, ar.Navigate("/main/app", nil))

	app = "group/app"
	require.NoError(t, ar.Push())
	assert.Equal("/main/group%2Fapp", ar.loc.Current())

	require.NoError(t, ar.Pull())
	assert.Equal("/main/:application", ar.Current().RoutePath)
	assert.Equal("group/app", ar.Current().Params.Get("application"))

}

func TestSubscription(t *testing.T) {

	assert := assert.New(t)
	ar := newAppRouter(t, DefaultRoutes())

	var every, once int
	s1 := ar.OnNavigated(func(*RouteMatch) { every++ })
	s2 := ar.OnceNavigated(func(*RouteMatch) { once++ })

	require.NoError(t, ar.Navigate("/main", nil))
	require.NoError(t, ar.Navigate("/main/app", nil))

	assert.Equal(2, every)
	assert.Equal(1, once)
	assert.True(s1.Active())
	assert.False(s2.Active())

	s1.Cancel()
	s1.Cancel()
	require.NoError(t, ar.Navigate("/main", nil))
	assert.Equal(2, every)
	assert.Empty(ar.listeners)

}

func TestStringParam(t *testing.T) {

	var s StringParam
	s.BindParamWrite([]string{"a", "b"})
	assert.Equal(t, []string{"a"}, s.BindParamRead())
	s.BindParamWrite(nil)
	assert.Equal(t, StringParam(""), s)

}

func TestRouterQueryUpdate(t *testing.T) {

	ar := newAppRouter(t, DefaultRoutes())

	agent := StringParam("")
	ar.Handle(ControllerInspector, RouteHandlerFunc(func(rm *RouteMatch) {
		agent = StringParam(rm.Params.Get("agentId"))
		rm.Bind("agentId", &agent)
	}))

	require.NoError(t, ar.Navigate("/inspector/app/5m/2024-01-02-10-00-00/a1", nil))
	n := ar.loc.Len()

	var ref QueryUpdaterRef
	ref.QueryUpdaterSet(ar.Router)

	agent = "a2"
	require.NoError(t, ref.QueryUpdate())

	assert.Equal(t, "/inspector/app/5m/2024-01-02-10-00-00/a2", ar.loc.Current())
	assert.Equal(t, n, ar.loc.Len())
	assert.Equal(t, "a1", ar.Current().Params.Get("agentId"))

}

func TestNavigatorRef(t *testing.T) {

	ar := newAppRouter(t, DefaultRoutes())

	var ref NavigatorRef
	var setter NavigatorSetter = &ref
	setter.NavigatorSet(ar.Router)

	require.NoError(t, ref.NavigateWithoutReload("/main/app", nil))
	assert.Nil(t, ar.Current())
	require.NoError(t, ref.Navigate("/main/app", nil, NavReplace))
	assert.Equal(t, "main", ar.Current().View)

}
