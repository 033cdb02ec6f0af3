package console

//go:generate go run ./cmd/routegen -f routes.yaml -p console .

// RouteDecl is a route declaration as written in a routes file.
type RouteDecl struct {
	Pattern    string `yaml:"pattern"`
	View       string `yaml:"view"`
	Controller string `yaml:"controller"`
}

// Controller names used by the console route table.
const (
	ControllerMain                  = "Main"
	ControllerFilteredMap           = "FilteredMap"
	ControllerInspector             = "Inspector"
	ControllerTransactionList       = "TransactionList"
	ControllerTransactionDetail     = "TransactionDetail"
	ControllerTransactionView       = "TransactionView"
	ControllerScatterFullScreenMode = "ScatterFullScreenMode"
	ControllerThreadDump            = "ThreadDump"
)

// NewRouteTableFromDecls builds a table from decls in order and sets the fallback.
func NewRouteTableFromDecls(decls []RouteDecl, fallback string) (*RouteTable, error) {
	t := NewRouteTable()
	for _, d := range decls {
		if err := t.AddRoute(d.Pattern, d.View, d.Controller); err != nil {
			return nil, err
		}
	}
	t.Otherwise(fallback)
	return t, nil
}

// DefaultRoutes returns the console route table.
func DefaultRoutes() *RouteTable {
	t, err := NewRouteTableFromDecls(routeDecls, routeFallback)
	if err != nil {
		panic(err)
	}
	return t
}
