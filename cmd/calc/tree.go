package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/calc/ast"
	"github.com/xiam/calc/lexer"
	"github.com/xiam/calc/parser"
)

func newTreeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <expression>",
		Short: "Print the syntax tree of an expression",
		Long: `Parse an expression without evaluating it, then print its syntax tree
followed by its canonical form.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := expressionArg(args)
			if err != nil {
				return err
			}

			root, err := parser.Parse(lexer.StripSpaces(expr))
			if err != nil {
				return &usageError{code: exitEvalError, msg: "Parse error", err: err}
			}
			o.logger.Debugf("Parsed: %s", ast.Encode(root))

			w := cmd.OutOrStdout()
			ast.Fprint(w, root)
			fmt.Fprintln(w, string(ast.Encode(root)))
			return nil
		},
	}
}
