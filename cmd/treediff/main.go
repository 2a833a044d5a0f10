// Package main provides the treediff CLI, which compares two tree-layout
// fixtures and prints the edit script a live widget would apply to
// transition between them.
//
// Usage:
//
//	treediff old.yaml new.yaml
//
// A fixture lists sections with their item identifiers:
//
//	sections:
//	  - id: inbox
//	    items: [msg-1, msg-2]
//	  - id: archive
//	    items: [msg-9]
//
// The output is the edit script (one edit per line) followed by a unified
// diff of the two layouts.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-drift/listkit/cmd/treediff/internal/fixture"
	"github.com/go-drift/listkit/pkg/diff"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: treediff <old.yaml> <new.yaml>")
		return 2
	}
	oldFix, err := fixture.Load(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "treediff: %v\n", err)
		return 1
	}
	newFix, err := fixture.Load(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "treediff: %v\n", err)
		return 1
	}

	script := diff.Diff(oldFix.Tree(), newFix.Tree())
	if script.Empty() {
		fmt.Fprintln(stdout, "no changes")
		return 0
	}
	fmt.Fprint(stdout, script.String())

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(render(oldFix)),
		B:        difflib.SplitLines(render(newFix)),
		FromFile: args[0],
		ToFile:   args[1],
		Context:  2,
	})
	if err != nil {
		fmt.Fprintf(stderr, "treediff: %v\n", err)
		return 1
	}
	if text != "" {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, text)
	}
	return 0
}

func render(f *fixture.Fixture) string {
	var b strings.Builder
	for _, sec := range f.Sections {
		fmt.Fprintf(&b, "%s: %s\n", sec.ID, strings.Join(sec.Items, " "))
	}
	return b.String()
}
