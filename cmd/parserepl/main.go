/*
Parserepl is an interactive session for trying a grammar against many inputs
in a row without restarting the process for each one.

Usage:

	parserepl --grammar FILE [--start SYM] [--engine earley|gll]

Once started, each line of input is split on whitespace into tokens and
parsed against the configured grammar. Type "QUIT" to exit.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgparse/earley"
	"github.com/dekarrin/cfgparse/gll"
	"github.com/dekarrin/cfgparse/grammar"
	"github.com/dekarrin/cfgparse/ptree"
)

var (
	grammarPath = pflag.StringP("grammar", "g", "grammar.toml", "TOML grammar file")
	start       = pflag.StringP("start", "s", "<start>", "start symbol")
	engine      = pflag.StringP("engine", "e", "earley", "parsing engine (earley, gll)")
)

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
	pflag.Parse()

	g, err := loadGrammar(*grammarPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	if err := g.Validate(); err != nil {
		pterm.Warning.Printfln("grammar diagnostic: %s", err)
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: "parse> "})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	defer rl.Close()

	sessionID := uuid.NewString()
	pterm.Info.Printfln("session %s using engine %q, start symbol %q", sessionID, *engine, *start)

	ep := earley.NewParser(g)
	gp := gll.Compile(g)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return
			}
			pterm.Error.Println(err)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") {
			return
		}

		tokens := strings.Fields(line)
		runOne(ep, gp, tokens)
	}
}

func runOne(ep *earley.Parser, gp *gll.Program, tokens []string) {
	switch *engine {
	case "gll":
		ok, err := gp.Recognize(tokens, *start)
		if !ok {
			pterm.Error.Printfln("rejected: %v", err)
			return
		}
		pterm.Success.Println("accepted")

		sppf, err := gp.ParseOn(tokens, *start)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		printTrees(gll.NewExtractor(sppf).ExtractATree)
	default:
		ok, err := ep.Recognize(tokens, *start)
		if !ok {
			pterm.Error.Printfln("rejected: %v", err)
			return
		}
		pterm.Success.Println("accepted")

		f, err := ep.ParseOn(tokens, *start)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		printTrees(earley.NewExtractor(f).ExtractATree)
	}
}

// printTrees renders up to 3 distinct derivations using next, one of the
// ExtractATree method values from either engine's Extractor, so the REPL
// never has to care which engine produced it.
func printTrees(next func() *ptree.Tree) {
	for i := 0; i < 3; i++ {
		tree := next()
		if tree == nil {
			if i == 0 {
				pterm.Warning.Println("no derivation could be extracted")
			}
			return
		}
		pterm.Printfln("derivation %d (yield %q):", i+1, tree.ToString())
		pterm.DefaultTree.WithRoot(treeNode(tree)).Render()
	}
}

func treeNode(t *ptree.Tree) pterm.TreeNode {
	node := pterm.TreeNode{Text: t.Symbol}
	for _, c := range t.Children {
		node.Children = append(node.Children, treeNode(c))
	}
	return node
}
