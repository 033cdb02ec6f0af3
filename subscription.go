package console

// Subscription is a registered navigation-completed listener.
type Subscription struct {
	f         func(rm *RouteMatch)
	once      bool
	cancelled bool
	owner     *Router
}

// Cancel removes the listener.  It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.owner.removeListener(s)
}

// Active returns false once the subscription is cancelled or a one-shot
// subscription has fired.
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled
}

// OnNavigated registers f to be called every time a navigation completes.
func (r *Router) OnNavigated(f func(rm *RouteMatch)) *Subscription {
	return r.addListener(f, false)
}

// OnceNavigated registers f for the next completed navigation only.  The
// subscription is cancelled before f runs.
func (r *Router) OnceNavigated(f func(rm *RouteMatch)) *Subscription {
	return r.addListener(f, true)
}

func (r *Router) addListener(f func(rm *RouteMatch), once bool) *Subscription {
	s := &Subscription{f: f, once: once, owner: r}
	r.listeners = append(r.listeners, s)
	return s
}

func (r *Router) removeListener(s *Subscription) {
	for i, l := range r.listeners {
		if l == s {
			r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
			return
		}
	}
}

// emitNavigated calls every listener registered when the event started.
func (r *Router) emitNavigated(rm *RouteMatch) {
	ls := make([]*Subscription, len(r.listeners))
	copy(ls, r.listeners)
	for _, s := range ls {
		if s.cancelled {
			continue
		}
		if s.once {
			s.Cancel()
		}
		s.f(rm)
	}
}
