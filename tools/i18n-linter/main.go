// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation catalogue against the source tree.
// It reports i18n.T calls with keys missing from the English catalogue,
// catalogue keys nothing uses, keys a translation lacks, and messages whose
// fmt verbs disagree between languages or with the arguments passed at the
// call site. Run it from the module root.
package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultLocales = "internal/i18n/locales"
	primaryLocale  = "active.en.yaml"
)

// use is one i18n.T call with a literal key.
type use struct {
	Pos  token.Position
	Args int
}

var verbRe = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]+)?[a-zA-Z]`)

func main() {
	os.Exit(run(".", defaultLocales, os.Stdout))
}

// run lints the tree at root and returns the exit status.
func run(root, localesDir string, out io.Writer) int {
	uses, err := findUses(root)
	if err != nil {
		fmt.Fprintf(out, "scan: %v\n", err)
		return 2
	}
	primary, err := loadLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Fprintf(out, "load %s: %v\n", primaryLocale, err)
		return 2
	}
	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Fprintf(out, "glob: %v\n", err)
		return 2
	}

	var problems, warnings int
	report := func(fatal bool, format string, args ...any) {
		level := "warning"
		if fatal {
			level = "error"
			problems++
		} else {
			warnings++
		}
		fmt.Fprintf(out, "%s: "+format+"\n", append([]any{level}, args...)...)
	}

	for _, key := range sortedKeys(uses) {
		msg, ok := primary[key]
		if !ok {
			for _, u := range uses[key] {
				report(true, "%s: undefined key %q", u.Pos, key)
			}
			continue
		}
		verbs := countVerbs(msg)
		for _, u := range uses[key] {
			// A single map argument is template data, not fmt arguments.
			if u.Args > 0 && verbs > 0 && u.Args != verbs {
				report(true, "%s: %q expects %d arguments, got %d", u.Pos, key, verbs, u.Args)
			}
		}
	}
	for _, key := range sortedKeys(primary) {
		if _, ok := uses[key]; !ok {
			report(false, "%s: unused key %q", primaryLocale, key)
		}
	}

	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		other, err := loadLocale(file)
		if err != nil {
			report(true, "%s: %v", name, err)
			continue
		}
		for _, key := range sortedKeys(primary) {
			msg, ok := other[key]
			switch {
			case !ok:
				report(true, "%s: missing key %q", name, key)
			case countVerbs(msg) != countVerbs(primary[key]):
				report(true, "%s: %q has %d placeholders, %s has %d", name, key, countVerbs(msg), primaryLocale, countVerbs(primary[key]))
			}
		}
		for _, key := range sortedKeys(other) {
			if _, ok := primary[key]; !ok {
				report(false, "%s: key %q is not in %s", name, key, primaryLocale)
			}
		}
	}

	fmt.Fprintf(out, "%d keys used, %d defined, %d errors, %d warnings\n", len(uses), len(primary), problems, warnings)
	if problems > 0 {
		return 1
	}
	return 0
}

// findUses parses every non-test Go file below root and collects the
// literal keys passed to i18n.T. Hidden directories, tools/ and _examples
// style directories are skipped.
func findUses(root string) (map[string][]use, error) {
	uses := make(map[string][]use)
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return err
		}
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || !isTranslateCall(call) || len(call.Args) == 0 {
				return true
			}
			lit, ok := call.Args[0].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				return true
			}
			key, err := strconv.Unquote(lit.Value)
			if err != nil {
				return true
			}
			uses[key] = append(uses[key], use{Pos: fset.Position(call.Pos()), Args: len(call.Args) - 1})
			return true
		})
		return nil
	})
	return uses, err
}

func isTranslateCall(call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "T" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "i18n"
}

// loadLocale reads a catalogue into a flat key to message map. Nested
// mappings are joined with dots.
func loadLocale(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", doc, out)
	return out, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			if prefix != "" {
				k = prefix + "." + k
			}
			flatten(k, child, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// countVerbs counts fmt verbs in msg, ignoring escaped percent signs.
func countVerbs(msg string) int {
	return len(verbRe.FindAllString(strings.ReplaceAll(msg, "%%", ""), -1))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
