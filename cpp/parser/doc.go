// Package parser provides a backtracking, error-tolerant parser for a
// C++ subset, built for editor-style tooling.
//
// # Overview
//
// The parser always produces a tree: malformed input yields a
// best-effort TranslationUnit plus an ordered diagnostics list, never
// an error return or a panic. After Parse, the tree and the token
// stream answer position-based queries (NodeAt, TokenAt, TextOfNode)
// for hover and navigation features.
//
// # Speculation
//
// Grammar alternatives whose token prefixes overlap (C-style cast vs.
// parenthesized expression, constructor vs. member function, template
// argument list vs. less-than) are disambiguated by speculative
// probes. A probe snapshots the cursor index plus the lengths of the
// diagnostics log and node arena, parses against a throwaway dummy
// parent, and restores the snapshot before reporting a boolean. Failed
// probes are therefore invisible: they leave no tokens consumed, no
// diagnostics and no nodes behind. Probes are tried in a fixed order
// and the first success wins; that order is the sole disambiguation
// policy.
//
// # Lifecycle
//
//	p := parser.New(source, parser.WithFile("main.cpp"))
//	root := p.Parse()          // effective once
//	errs := p.Errors()         // ordered diagnostics
//	node := p.NodeAt(pos)      // smallest node covering pos
//
// Construction tokenizes the source exactly once, applying the
// supplied preprocessor definitions table (see WithDefinitions) and
// recording every macro substitution it performs. All query methods
// are read-only against the frozen token list and arena.
package parser
