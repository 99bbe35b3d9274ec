/*
Parsecheck parses a single input string against a grammar defined in a TOML
file and reports whether it is accepted, using either the Earley or GLL
engine.

Usage:

	parsecheck --grammar FILE --start SYM --engine earley|gll [--tree] TOKEN...

The grammar file is TOML of the shape:

	[rules]
	"<start>" = [["<expr>"]]
	"<expr>" = [["<term>", "+", "<expr>"], ["<term>"]]
*/
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dekarrin/cfgparse/earley"
	"github.com/dekarrin/cfgparse/gll"
	"github.com/dekarrin/cfgparse/grammar"
)

// grammarFile is the TOML-decodable shape of a --grammar file.
type grammarFile struct {
	Rules map[string][][]string `toml:"rules"`
}

func loadGrammar(path string) (*grammar.Grammar, error) {
	var gf grammarFile
	if _, err := toml.DecodeFile(path, &gf); err != nil {
		return nil, fmt.Errorf("decode grammar file: %w", err)
	}

	g := grammar.NewGrammar()
	for head, prods := range gf.Rules {
		for _, prod := range prods {
			if err := g.AddRule(head, grammar.Production(prod)); err != nil {
				return nil, fmt.Errorf("rule %s: %w", head, err)
			}
		}
	}
	return g, nil
}

func main() {
	var grammarPath string
	var start string
	var engine string
	var showTree bool

	rootCmd := &cobra.Command{
		Use:   "parsecheck TOKEN...",
		Short: "Check whether a token sequence is derivable from a grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarPath)
			if err != nil {
				return err
			}
			if err := g.Validate(); err != nil {
				return err
			}

			switch engine {
			case "earley":
				p := earley.NewParser(g)
				ok, err := p.Recognize(args, start)
				if !ok {
					fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
					os.Exit(1)
				}
				fmt.Println("accepted")
				if showTree {
					f, err := p.ParseOn(args, start)
					if err != nil {
						return err
					}
					fmt.Println(f.FirstTree().ToString())
				}
			case "gll":
				pr := gll.Compile(g)
				ok, err := pr.Recognize(args, start)
				if !ok {
					fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
					os.Exit(1)
				}
				fmt.Println("accepted")
				if showTree {
					sppf, err := pr.ParseOn(args, start)
					if err != nil {
						return err
					}
					tree := gll.NewExtractor(sppf).ExtractATree()
					fmt.Println(tree.ToString())
				}
			default:
				return fmt.Errorf("unknown engine %q (want earley or gll)", engine)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&grammarPath, "grammar", "g", "grammar.toml", "TOML grammar file")
	rootCmd.Flags().StringVarP(&start, "start", "s", "<start>", "start symbol")
	rootCmd.Flags().StringVarP(&engine, "engine", "e", "earley", "parsing engine to use (earley, gll)")
	rootCmd.Flags().BoolVarP(&showTree, "tree", "t", false, "print the first derivation tree's yield on acceptance")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
