// predgen writes Go source for a divisibility predicate over a fixed list of
// bases, such as
//
//	func divisibleBy3or5(n uint64) bool {
//		return n%3 == 0 || n%5 == 0
//	}
//
// The generated code is formatted with golang.org/x/tools/imports.
package predgen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/goose-lang/multisum"
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

// Config describes the file to generate.
type Config struct {
	// Package clause of the generated file.
	Package string
	// Name of the predicate. Defaults to FuncName(Bases).
	Func  string
	Bases []uint64
}

// FuncName is the default predicate name for bases, e.g. divisibleBy3or5.
func FuncName(bases []uint64) string {
	var parts []string
	for _, d := range bases {
		parts = append(parts, strconv.FormatUint(d, 10))
	}
	return "divisibleBy" + strings.Join(parts, "or")
}

// ParseBases parses a comma-separated list such as "3,5".
func ParseBases(s string) ([]uint64, error) {
	var bases []uint64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		d, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad base %q", f)
		}
		bases = append(bases, d)
	}
	return bases, nil
}

var fileTmpl = template.Must(template.New("pred.go").Parse(`// Code generated by predgen; DO NOT EDIT.

package {{.Package}}

// {{.Func}}Bases lists the divisors tested by {{.Func}}.
var {{.Func}}Bases = []uint64{ {{- .List -}} }

func {{.Func}}(n uint64) bool {
	return {{.Expr}}
}
`))

type fileData struct {
	Package string
	Func    string
	List    string
	Expr    string
}

// Generate returns the formatted source file for c.
func Generate(c Config) ([]byte, error) {
	if c.Package == "" {
		return nil, errors.New("no package name")
	}
	if err := multisum.ValidateBases(c.Bases); err != nil {
		return nil, err
	}
	bases := multisum.Normalize(c.Bases)
	if c.Func == "" {
		c.Func = FuncName(bases)
	}

	var list, tests []string
	for _, d := range bases {
		list = append(list, strconv.FormatUint(d, 10))
		tests = append(tests, fmt.Sprintf("n%%%d == 0", d))
	}
	data := fileData{
		Package: c.Package,
		Func:    c.Func,
		List:    strings.Join(list, ", "),
		Expr:    strings.Join(tests, " || "),
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		panic(fmt.Errorf("internal error: executing template: %v", err))
	}
	src, err := imports.Process(c.Package+"_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "generated code does not format")
	}
	return src, nil
}
