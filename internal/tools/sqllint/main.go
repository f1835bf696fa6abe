// Command sqllint checks that every SQL constant carries a `--sql <uuid>`
// audit marker on its first line and that no marker is reused. The runner
// logs markers instead of statement text, so a missing or duplicated marker
// makes a query untraceable.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sqlKeywordPattern = regexp.MustCompile(`(?i)\b(select|insert|update|delete|with)\b`)
	uuidMarkerPattern = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

type violation struct {
	file    string
	name    string
	line    int
	message string
}

func main() {
	flag.Parse()
	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"internal/sqlinline"}
	}

	seen := map[string]string{} // marker -> constant that owns it
	var violations []violation

	for _, target := range targets {
		err := filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") || d.Name() == "vendor" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			vs, err := lintFile(path, seen)
			if err != nil {
				return err
			}
			violations = append(violations, vs...)
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
			os.Exit(1)
		}
	}

	if len(violations) > 0 {
		fmt.Fprintln(os.Stderr, "sqllint: marker violations")
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "  %s:%d %s: %s\n", v.file, v.line, v.name, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(path string, seen map[string]string) ([]violation, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, err
	}

	var violations []violation
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, value := range vspec.Values {
				lit, ok := value.(*ast.BasicLit)
				if !ok || lit.Kind != token.STRING {
					continue
				}
				text, err := strconv.Unquote(lit.Value)
				if err != nil || !sqlKeywordPattern.MatchString(text) {
					continue
				}
				name := vspec.Names[i].Name
				line := fset.Position(lit.Pos()).Line
				first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
				first = strings.TrimSpace(first)
				if !uuidMarkerPattern.MatchString(first) {
					violations = append(violations, violation{
						file: path, name: name, line: line,
						message: "first line must be a `--sql <uuid>` marker",
					})
					continue
				}
				if owner, dup := seen[first]; dup {
					violations = append(violations, violation{
						file: path, name: name, line: line,
						message: fmt.Sprintf("marker already used by %s", owner),
					})
					continue
				}
				seen[first] = name
			}
		}
	}
	return violations, nil
}
