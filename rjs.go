package console

import (
	"errors"
	"net/url"
	"strings"

	"github.com/vugu/vugu/js"
)

var errNotInBrowser = errors.New("not in browser (js) environment")

// jsLocation is the browser Location backed by window.history.
type jsLocation struct {
	useFragment  bool
	popStateFunc js.Func
}

func (l *jsLocation) Push(pathAndQuery string) {

	g := js.Global()
	if g.Truthy() {
		pqv := pathAndQuery
		if l.useFragment {
			pqv = "#" + pathAndQuery
		}
		g.Get("window").Get("history").Call("pushState", nil, "", pqv)
	}

}

func (l *jsLocation) Replace(pathAndQuery string) {

	g := js.Global()
	if g.Truthy() {
		pqv := pathAndQuery
		if l.useFragment {
			pqv = "#" + pathAndQuery
		}
		g.Get("window").Get("history").Call("replaceState", nil, "", pqv)
	}

}

func (l *jsLocation) Read() (*url.URL, error) {

	g := js.Global()
	if !g.Truthy() {
		return nil, errNotInBrowser
	}

	var locstr string
	if l.useFragment {
		locstr = strings.TrimPrefix(g.Get("window").Get("location").Get("hash").String(), "#")
	} else {
		locstr = g.Get("window").Get("location").Call("toString").String()
	}

	return url.Parse(locstr)

}

func (l *jsLocation) Unlisten() error {

	g := js.Global()
	if !g.Truthy() {
		return errNotInBrowser
	}

	if l.popStateFunc.IsUndefined() {
		return errors.New("popstate listener not set")
	}

	g.Get("window").Call("removeEventListener", "popstate", l.popStateFunc)

	l.popStateFunc.Release()
	l.popStateFunc = js.Func{}

	return nil
}

func (l *jsLocation) Listen(f func()) error {

	g := js.Global()
	if !g.Truthy() {
		return errNotInBrowser
	}

	if !l.popStateFunc.IsUndefined() {
		return errors.New("popstate listener already set")
	}

	jf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f()
		return nil
	})

	g.Get("window").Call("addEventListener", "popstate", jf)

	l.popStateFunc = jf

	return nil

}

// jsBrowser implements Browser and ItemReader with the window object.
type jsBrowser struct{}

// DefaultBrowser returns the Browser backed by the js window.  Outside a
// browser it reports full capability and does nothing.
func DefaultBrowser() Browser { return jsBrowser{} }

// DefaultStorage returns window.localStorage as an ItemReader.
func DefaultStorage() ItemReader { return jsBrowser{} }

func (jsBrowser) Assign(u string) {
	g := js.Global()
	if g.Truthy() {
		g.Get("window").Get("location").Call("assign", u)
	}
}

func (jsBrowser) CanvasSupported() bool {
	g := js.Global()
	if !g.Truthy() {
		return true
	}
	elem := g.Get("document").Call("createElement", "canvas")
	if !elem.Get("getContext").Truthy() {
		return false
	}
	return elem.Call("getContext", "2d").Truthy()
}

// ShowNotice opens the bootstrap modal with the given element id.
func (jsBrowser) ShowNotice(id string) {
	g := js.Global()
	if !g.Truthy() || !g.Get("$").Truthy() {
		return
	}
	g.Call("$", "#"+id).Call("modal")
}

func (jsBrowser) Item(key string) (string, bool) {
	g := js.Global()
	if !g.Truthy() {
		return "", false
	}
	ls := g.Get("window").Get("localStorage")
	if !ls.Truthy() {
		return "", false
	}
	v := ls.Call("getItem", key)
	if !v.Truthy() {
		return "", false
	}
	return v.String(), true
}
