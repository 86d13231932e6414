// Command quickparsec is a small console utility around the gql
// front-end: it parses an input file against a textual grammar
// description and prints the resulting syntax tree, or reformats a
// grammar file through its canonical gql.String rendering. It plays
// the role llxgen plays for the teacher repo, built around cobra
// instead of the teacher's bare flag package since this module's
// domain stack already pulls in cobra/pflag for CLI wiring.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ava12/quickparse/gql"
	"github.com/ava12/quickparse/parser"
	"github.com/ava12/quickparse/synstree"
)

var log = logrus.New()

func main() {
	verbosity := 0

	root := &cobra.Command{
		Use:           "quickparsec",
		Short:         "Parse or reformat a gql grammar description",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case verbosity >= 2:
				log.SetLevel(logrus.TraceLevel)
			case verbosity == 1:
				log.SetLevel(logrus.DebugLevel)
			default:
				log.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newFmtCmd())

	if e := root.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, "quickparsec:", e)
		os.Exit(1)
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <grammar-file> <input-file>",
		Short: "Parse input-file against the grammar in grammar-file and print its syntax tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarSrc, e := os.ReadFile(args[0])
			if e != nil {
				return e
			}
			log.Debugf("loading grammar from %s", args[0])

			g, e := gql.Parse(args[0], string(grammarSrc))
			if e != nil {
				return fmt.Errorf("compiling grammar: %w", e)
			}
			log.Infof("grammar %s: %d constructs, %d named tokens", args[0], len(g.ConstructsByName), len(g.TokensByName))

			p, e := parser.New(g)
			if e != nil {
				return fmt.Errorf("building parser: %w", e)
			}

			input, e := os.ReadFile(args[1])
			if e != nil {
				return e
			}

			tree, e := p.Parse(string(input))
			if e != nil {
				return fmt.Errorf("parsing %s: %w", args[1], e)
			}
			log.Infof("parsed %s: root span [%d:%d)", args[1], tree.Start(), tree.End())

			printTree(cmd.OutOrStdout(), tree)
			return nil
		},
	}
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <grammar-file>",
		Short: "Print the canonical gql rendering of a grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, e := os.ReadFile(args[0])
			if e != nil {
				return e
			}

			g, e := gql.Parse(args[0], string(src))
			if e != nil {
				return fmt.Errorf("compiling grammar: %w", e)
			}

			fmt.Fprint(cmd.OutOrStdout(), gql.String(g))
			return nil
		},
	}
}

// printTree renders a syntax tree as indented lines, one node per line.
func printTree(w interface{ Write([]byte) (int, error) }, root synstree.Node) {
	depth := 0
	v := &synstree.Visitor{
		EnterConstruct: func(n *synstree.ConstructNode) {
			fmt.Fprintf(w, "%s%s [%d:%d)\n", strings.Repeat("  ", depth), n.Name(), n.Start(), n.End())
			depth++
		},
		Token: func(n *synstree.TokenNode) {
			name := n.Name()
			if name == "" {
				name = "<anon>"
			}
			fmt.Fprintf(w, "%s%s %q [%d:%d)\n", strings.Repeat("  ", depth), name, n.Value(), n.Start(), n.End())
		},
		ExitConstruct: func(n *synstree.ConstructNode) {
			depth--
		},
	}
	synstree.Walk(root, v)
}
