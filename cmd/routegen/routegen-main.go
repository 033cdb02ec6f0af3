package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/pinpoint-apm/pinpoint-console/rgen"
)

func main() {

	file := flag.String("f", "routes.yaml", "The routes file to read")
	packageName := flag.String("p", "", "The package name to use.  If unspecified the output directory name is used")
	importPath := flag.String("i", "", "Import path of the console package when generating outside of it")
	strict := flag.Bool("strict", false, "Fail if a route can never be selected")
	q := flag.Bool("q", false, "Only print information upon error (quiet mode)")

	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"."} // default to current dir
	}

	if len(args) > 1 {
		log.Fatalf("only one output directory may be given")
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		log.Fatalf("Error converting %q to absolute path: %v", args[0], err)
	}

	if !*q {
		log.Printf("Generating routes from %s into dir: %s", *file, dir)
	}

	err = rgen.New().
		SetFile(*file).
		SetDir(dir).
		SetPackageName(*packageName).
		SetImportPath(*importPath).
		SetStrict(*strict).
		Generate()
	if err != nil {
		log.Fatal(err)
	}

}
