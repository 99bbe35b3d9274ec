// Package fixtures builds the grammars the earley and gll test suites
// share, grounded on the example grammars in the retrieved Earley/GLL
// reference material rather than invented from scratch.
package fixtures

import "github.com/dekarrin/cfgparse/grammar"

func must(g *grammar.Grammar, head string, prods ...grammar.Production) {
	for _, p := range prods {
		if err := g.AddRule(head, p); err != nil {
			panic(err)
		}
	}
}

// Arithmetic returns the unambiguous digit-expression grammar used
// throughout the reference material to exercise ordinary recursive-descent
// shaped recursion: <expr> ::= <term> (+|-) <expr> | <term>, down through
// <digit>.
func Arithmetic() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>", grammar.Production{"<expr>"})
	must(g, "<expr>",
		grammar.Production{"<term>", "+", "<expr>"},
		grammar.Production{"<term>", "-", "<expr>"},
		grammar.Production{"<term>"},
	)
	must(g, "<term>",
		grammar.Production{"<fact>", "*", "<term>"},
		grammar.Production{"<fact>", "/", "<term>"},
		grammar.Production{"<fact>"},
	)
	must(g, "<fact>",
		grammar.Production{"<digits>"},
		grammar.Production{"(", "<expr>", ")"},
	)
	must(g, "<digits>",
		grammar.Production{"<digit>", "<digits>"},
		grammar.Production{"<digit>"},
	)
	for i := 0; i < 10; i++ {
		digit := string(rune('0' + i))
		must(g, "<digit>", grammar.Production{digit})
	}
	return g
}

// AmbiguousArithmetic is the same surface language as Arithmetic but
// left-flattened so that "1+2+3" has more than one derivation, exercising
// forest/SPPF ambiguity handling rather than FIRST/FOLLOW correctness.
func AmbiguousArithmetic() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>", grammar.Production{"<expr>"})
	must(g, "<expr>",
		grammar.Production{"<expr>", "+", "<expr>"},
		grammar.Production{"<expr>", "*", "<expr>"},
		grammar.Production{"<digit>"},
	)
	for i := 0; i < 10; i++ {
		digit := string(rune('0' + i))
		must(g, "<digit>", grammar.Production{digit})
	}
	return g
}

// LeftRecursive is a directly left-recursive list grammar: <start> ::=
// <start> "a" | "a". Naive recursive descent loops forever on it; Earley
// and GLL must not.
func LeftRecursive() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>",
		grammar.Production{"<start>", "a"},
		grammar.Production{"a"},
	)
	return g
}

// RightRecursive is a directly right-recursive list grammar, the shape
// Joop Leo's optimization collapses from O(n^2) Earley items to O(n):
// <start> ::= "a" <start> | "a".
func RightRecursive() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>",
		grammar.Production{"a", "<start>"},
		grammar.Production{"a"},
	)
	return g
}

// NullableGrammar is GLL.py's nullable_grammar, used to exercise the
// Aycock-Horspool nullable-predict fix and GLL's immediate-pop-on-epsilon
// path: <start> ::= <A> <B>; <A> ::= "a" | epsilon | <C>; <B> ::= "b";
// <C> ::= <A> | <B>.
func NullableGrammar() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>", grammar.Production{"<A>", "<B>"})
	must(g, "<A>",
		grammar.Production{"a"},
		grammar.Production{},
		grammar.Production{"<C>"},
	)
	must(g, "<B>", grammar.Production{"b"})
	must(g, "<C>",
		grammar.Production{"<A>"},
		grammar.Production{"<B>"},
	)
	return g
}

// JSONLike is a small JSON-shaped grammar (object/array/string/number),
// enough to exercise nested nonterminal recursion without pulling in a
// full JSON grammar's terminal alphabet.
func JSONLike() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>", grammar.Production{"<value>"})
	must(g, "<value>",
		grammar.Production{"<object>"},
		grammar.Production{"<array>"},
		grammar.Production{"str"},
		grammar.Production{"num"},
	)
	must(g, "<object>",
		grammar.Production{"{", "}"},
		grammar.Production{"{", "<members>", "}"},
	)
	must(g, "<members>",
		grammar.Production{"str", ":", "<value>"},
		grammar.Production{"str", ":", "<value>", ",", "<members>"},
	)
	must(g, "<array>",
		grammar.Production{"[", "]"},
		grammar.Production{"[", "<elements>", "]"},
	)
	must(g, "<elements>",
		grammar.Production{"<value>"},
		grammar.Production{"<value>", ",", "<elements>"},
	)
	return g
}

// CyclicUnit is a unit-production cycle (<a> ::= <b>, <b> ::= <a> | "x")
// that the enhanced extractor must not recurse into forever while
// enumerating trees.
func CyclicUnit() *grammar.Grammar {
	g := grammar.NewGrammar()
	must(g, "<start>", grammar.Production{"<a>"})
	must(g, "<a>", grammar.Production{"<b>"})
	must(g, "<b>",
		grammar.Production{"<a>"},
		grammar.Production{"x"},
	)
	return g
}

// Tokenize splits s into single-character tokens, the shape both engines'
// text inputs take in these fixtures' tests.
func Tokenize(s string) []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
