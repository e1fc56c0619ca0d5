// Package grammar holds the EBNF description of the checked language.
//
// Productions with an upper-case name are nonterminals and correspond one
// to one to the parser's rules; lower-case productions are lexical.
package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production every program is derived from.
const Start = "Program"

const filename = "grammar.ebnf"

//go:embed grammar.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Verify checks that every production is defined and reachable from Start.
func Verify() error {
	g, err := Load()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Nonterminals returns the sorted names of all non-lexical productions.
func Nonterminals() ([]string, error) {
	g, err := Load()
	if err != nil {
		return nil, err
	}
	var names []string
	for name := range g {
		if !isLexical(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Terminals returns the sorted, de-duplicated literal tokens used by the
// nonterminals, e.g. "PROGRAM", ";" and "==".
func Terminals() ([]string, error) {
	g, err := Load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for name, prod := range g {
		if isLexical(name) || prod.Expr == nil {
			continue
		}
		collectTokens(prod.Expr, seen)
	}
	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms, nil
}

func collectTokens(expr ebnf.Expression, seen map[string]bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		seen[tokenText(e.String)] = true
	case ebnf.Sequence:
		for _, item := range e {
			collectTokens(item, seen)
		}
	case ebnf.Alternative:
		for _, alt := range e {
			collectTokens(alt, seen)
		}
	case *ebnf.Group:
		collectTokens(e.Body, seen)
	case *ebnf.Option:
		collectTokens(e.Body, seen)
	case *ebnf.Repetition:
		collectTokens(e.Body, seen)
	}
}

func tokenText(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return unquoted
		}
	}
	return s
}

func isLexical(name string) bool {
	return name != "" && name[0] >= 'a' && name[0] <= 'z'
}
