/*
Ictolex compiles a TOML rule bundle into a lexer and LALR(1) parser and
runs it over an input file.

Usage:

	ictolex [flags]

The flags are:

	-b, --bundle FILE
		The TOML rule bundle describing lexer rules and grammar
		productions. Defaults to "bundle.toml" in the current working
		directory.

	-i, --input FILE
		The file to tokenize and parse. If omitted, input is read from
		stdin.

	--dump-lexer
		Print the compiled lexer's rule and DFA transition table instead
		of running it.

	--dump-table
		Print the compiled ACTION/GOTO table instead of running it.

Every run is stamped with a random run ID, printed alongside any table
dump, so separate dumps from the same bundle can be told apart in logs.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/ictiobus/parse"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const (
	ExitSuccess = iota
	ExitBundleError
	ExitInputError
	ExitRejectError
)

var (
	bundlePath = pflag.StringP("bundle", "b", "bundle.toml", "TOML rule bundle of lexer rules and grammar productions")
	inputPath  = pflag.StringP("input", "i", "", "File to tokenize and parse; reads stdin if omitted")
	dumpLexer  = pflag.Bool("dump-lexer", false, "Print the compiled lexer's rule and DFA table instead of parsing")
	dumpTable  = pflag.Bool("dump-table", false, "Print the compiled ACTION/GOTO table instead of parsing")
)

func main() {
	returnCode := run()
	os.Exit(returnCode)
}

func run() int {
	pflag.Parse()
	runID := uuid.New()

	bundle, err := LoadBundle(*bundlePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitBundleError
	}

	termIndex := bundle.TerminalIndex()
	lx, err := bundle.BuildLexer(termIndex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitBundleError
	}

	g, err := bundle.BuildGrammar(termIndex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitBundleError
	}

	firsts := g.ComputeFirst()
	ca := parse.BuildCharacteristicAutomaton(g)
	lookaheads := parse.ComputeLookaheads(g, firsts, ca)
	tbl, err := parse.NewTable(g, firsts, ca, lookaheads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitBundleError
	}

	if *dumpLexer {
		fmt.Printf("# run %s\n%s\n", runID, lx)
		return ExitSuccess
	}
	if *dumpTable {
		fmt.Printf("# run %s\n%s\n", runID, tbl)
		return ExitSuccess
	}

	input, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitInputError
	}

	tokens, err := lx.Tokenize(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitInputError
	}

	root, err := parse.Parse(g, tbl, tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR [run %s]: %s\n", runID, err)
		return ExitRejectError
	}

	fmt.Printf("# run %s: accepted, %d tokens\n", runID, len(tokens))
	printTree(root, 0)
	return ExitSuccess
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printTree(n *parse.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if n.IsLeaf {
		fmt.Printf("%s%s %q\n", indent, n.Symbol, n.Token.Lexeme)
		return
	}
	fmt.Printf("%s%s\n", indent, n.Symbol)
	for _, c := range n.Children {
		printTree(c, depth+1)
	}
}
