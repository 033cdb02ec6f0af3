// Package rgen generates the console route declarations from a YAML routes file.
package rgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"

	console "github.com/pinpoint-apm/pinpoint-console"
)

// OutputFileName is the name of the generated file.
const OutputFileName = "0_routes_gen.go"

// New returns a new Generator instance.
func New() *Generator {
	return &Generator{logger: slog.Default()}
}

// Generator writes the route declarations of a routes file as Go source.
type Generator struct {
	file        string // routes file
	dir         string // output directory
	packageName string // package clause of the generated file
	importPath  string // import path of the console package, empty when generating inside it
	strict      bool   // if true shadowed routes are an error
	logger      *slog.Logger
}

// SetFile sets the routes file to read.
func (g *Generator) SetFile(file string) *Generator {
	g.file = file
	return g
}

// SetDir assigns the directory the generated file is written to.
func (g *Generator) SetDir(dir string) *Generator {
	g.dir = dir
	return g
}

// SetPackageName sets the package name of the generated file.
// If not set the base name of the output directory is used.
func (g *Generator) SetPackageName(packageName string) *Generator {
	g.packageName = packageName
	return g
}

// SetImportPath sets the import path of the console package for generated
// files that live outside it.  RouteDecl is then referenced as console.RouteDecl.
func (g *Generator) SetImportPath(importPath string) *Generator {
	g.importPath = importPath
	return g
}

// SetStrict makes shadowed routes fail generation instead of only being logged.
func (g *Generator) SetStrict(strict bool) *Generator {
	g.strict = strict
	return g
}

// SetLogger sets the logger used for warnings.
func (g *Generator) SetLogger(l *slog.Logger) *Generator {
	g.logger = l
	return g
}

// RoutesFile is the YAML layout of a routes file.
type RoutesFile struct {
	Otherwise string              `yaml:"otherwise"`
	Routes    []console.RouteDecl `yaml:"routes"`
}

// ReadRoutesFile parses and validates the routes file at path.
func ReadRoutesFile(path string) (*RoutesFile, *console.RouteTable, error) {

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var rf RoutesFile
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return nil, nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	if len(rf.Routes) == 0 {
		return nil, nil, fmt.Errorf("%q declares no routes", path)
	}
	if rf.Otherwise == "" {
		return nil, nil, fmt.Errorf("%q declares no otherwise route", path)
	}

	t, err := console.NewRouteTableFromDecls(rf.Routes, rf.Otherwise)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid route in %q: %w", path, err)
	}

	if _, ok := t.Resolve(rf.Otherwise); !ok {
		return nil, nil, fmt.Errorf("otherwise path %q matches no route", rf.Otherwise)
	}

	return &rf, t, nil
}

// ErrShadowed is returned in strict mode when a route can never be selected.
var ErrShadowed = errors.New("shadowed routes")

// Generate does the route generation.
func (g *Generator) Generate() error {

	if g.file == "" {
		return errors.New("no routes file set")
	}

	// to keep our sanity we need to guarantee that g.dir is absolute
	dir, err := filepath.Abs(g.dir)
	if err != nil {
		return err
	}
	g.dir = dir

	rf, t, err := ReadRoutesFile(g.file)
	if err != nil {
		return err
	}

	shadows := t.Shadowed()
	for _, s := range shadows {
		g.logger.Warn("route can never be selected", "route", s.Shadowed.Pattern, "shadowed_by", s.By.Pattern)
	}
	if g.strict && len(shadows) > 0 {
		return fmt.Errorf("%w: %v", ErrShadowed, shadows)
	}

	src, err := g.render(rf)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(g.dir, OutputFileName), src, 0644)
}

var routesTemplate = template.Must(template.New(OutputFileName).Parse(`package {{.Package}}

// WARNING: This file was generated by rgen. Do not modify.
{{if .Import}}
import console {{printf "%q" .Import}}
{{end}}
// routeDecls is the generated route list in declaration order.
var routeDecls = []{{.Qualifier}}RouteDecl{
{{range .Routes}}	{Pattern: {{printf "%q" .Pattern}}, View: {{printf "%q" .View}}, Controller: {{printf "%q" .Controller}}},
{{end}}}

// routeFallback is where unmatched paths are redirected.
const routeFallback = {{printf "%q" .Otherwise}}
`))

func (g *Generator) render(rf *RoutesFile) ([]byte, error) {

	pkg := g.packageName
	if pkg == "" {
		pkg = filepath.Base(g.dir)
	}

	qualifier := ""
	if g.importPath != "" {
		qualifier = "console."
	}

	var buf bytes.Buffer
	err := routesTemplate.Execute(&buf, map[string]interface{}{
		"Package":   pkg,
		"Import":    g.importPath,
		"Qualifier": qualifier,
		"Routes":    rf.Routes,
		"Otherwise": rf.Otherwise,
	})
	if err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
