package console

// QueryUpdater writes bound parameters back into the location
// without reloading the active route or adding a history entry.
type QueryUpdater interface {
	QueryUpdate() error
}

// QueryUpdaterRef can be embedded in a component to have the QueryUpdater injected.
type QueryUpdaterRef struct {
	QueryUpdater // embed QueryUpdater
}

// QueryUpdaterSet implements QueryUpdaterSetter.
func (h *QueryUpdaterRef) QueryUpdaterSet(o QueryUpdater) {
	h.QueryUpdater = o
}

// QueryUpdaterSetter is implemented by things that want a QueryUpdater injected.
type QueryUpdaterSetter interface {
	QueryUpdaterSet(QueryUpdater)
}

// QueryUpdate implements QueryUpdater.
func (r *Router) QueryUpdate() error {
	return r.Push(NavReplace)
}
