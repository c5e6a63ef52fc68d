// Package tsc is the compile collaborator: it parses the supported
// TypeScript subset, lowers module syntax for the legacy target, runs
// caller-supplied tree transforms, and prints the result.
//
// The package owns all syntax knowledge. Callers influence the output
// only through Settings, the before-transformer list, and per-kind
// node substitutions.
package tsc

import (
	"fmt"
	"strings"

	"github.com/gscript-labs/ts2gs/tsast"
)

// Transformer rewrites the input tree before lowering.
type Transformer func(*tsast.SourceFile) *tsast.SourceFile

// Substitution replaces nodes of one kind in the lowered tree. All
// substitutions registered for a kind run in order, each receiving the
// previous one's result, so registering a new substitution never
// disables an existing one.
type Substitution struct {
	Kind tsast.Kind
	Fn   func(tsast.Node) tsast.Node
}

// Request is the full configuration for one compilation.
type Request struct {
	Compiler Settings
	Before   []Transformer
	Subs     []Substitution
}

// Result is the outcome of a compilation: the lowered tree, ready for
// emission. Callers may inspect File, or edit it, between Compile and
// Text; the registered substitutions fire during Text. Nothing is
// retained across calls.
type Result struct {
	File   *tsast.SourceFile
	subs   []Substitution
	indent string
}

// Text emits the tree as legacy source text. The request's
// substitutions run here, on every node of their declared kind, before
// the node is printed.
func (r *Result) Text() string {
	applySubstitutions(r.File, r.subs)
	tsast.ResolveParents(r.File)
	return printFile(r.File, r.indent)
}

// Compile runs parsing, the before-transforms, and lowering. It
// returns a *ParseError when no tree can be built from source, and a
// plain error for unsupported configuration.
func Compile(source string, req Request) (*Result, error) {
	if t := req.Compiler.target(); t != TargetES3 {
		return nil, fmt.Errorf("unsupported emission target %q: only %s is supported", t, TargetES3)
	}

	file, err := Parse(source)
	if err != nil {
		return nil, err
	}

	for _, transform := range req.Before {
		if transform == nil {
			continue
		}
		file = transform(file)
	}
	tsast.ResolveParents(file)

	lowered := lowerFile(file)
	tsast.ResolveParents(lowered)

	return &Result{
		File:   lowered,
		subs:   req.Subs,
		indent: strings.Repeat(" ", req.Compiler.indentWidth()),
	}, nil
}

func applySubstitutions(file *tsast.SourceFile, subs []Substitution) {
	if len(subs) == 0 {
		return
	}
	tsast.Rewrite(file, func(n tsast.Node) tsast.Node {
		for _, sub := range subs {
			if sub.Fn == nil || n.Kind() != sub.Kind {
				continue
			}
			if out := sub.Fn(n); out != nil {
				n = out
			}
		}
		return n
	})
}
