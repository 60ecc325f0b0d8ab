package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiam/calc"
)

const usageLine = "usage: calc [--log-level=(ERROR,INFO,DEBUG)] [--log-file=path] [--] <expression>"

const (
	exitFailure          = 1
	exitNoArguments      = 2
	exitTooManyArguments = 3
	exitBlankExpression  = 5
	exitEvalError        = 6
)

// usageError is a failure reported to the user with a dedicated exit code.
type usageError struct {
	code int
	msg  string
	err  error
}

func (e *usageError) Error() string {
	if e.err != nil {
		return e.msg + ", " + e.err.Error()
	}
	return e.msg
}

func (e *usageError) Unwrap() error {
	return e.err
}

type options struct {
	logLevel      string
	logFile       string
	checkOverflow bool
	noColor       bool

	logger *zap.SugaredLogger
}

func (o *options) computeOptions() []calc.Option {
	opts := []calc.Option{calc.WithLogger(o.logger)}
	if o.checkOverflow {
		opts = append(opts, calc.WithOverflowCheck())
	}
	return opts
}

func expressionArg(args []string) (string, error) {
	switch {
	case len(args) == 0:
		return "", &usageError{code: exitNoArguments, msg: "Empty parameters"}
	case len(args) > 1:
		return "", &usageError{code: exitTooManyArguments, msg: "Too many parameters"}
	case strings.TrimSpace(args[0]) == "":
		return "", &usageError{code: exitBlankExpression, msg: "Empty parameter"}
	}
	return args[0], nil
}

func newRootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate let-expressions",
		Long: `Evaluate an expression made of nested add, sub, mult, div and let calls,
for instance:

  calc 'let(a, 5, let(b, mult(a, 10), add(b, a)))'

Use "--" before expressions that start with a minus sign.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = color.NoColor || o.noColor

			logger, err := newLogger(o.logLevel, o.logFile)
			if err != nil {
				return err
			}
			o.logger = logger
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := expressionArg(args)
			if err != nil {
				return err
			}

			o.logger.Infof("Invocation: calc %q", expr)
			v, err := calc.ComputeString(expr, o.computeOptions()...)
			if err != nil {
				return &usageError{code: exitEvalError, msg: "Parse error", err: err}
			}
			o.logger.Infof("Result: %d, from Expression: %s", v, expr)

			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "INFO",
		"Log level: ERROR, INFO or DEBUG")
	cmd.PersistentFlags().StringVar(&o.logFile, "log-file", "calculator.log",
		`Log file, "-" for stderr`)
	cmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false,
		"Disable colored output")
	cmd.Flags().BoolVar(&o.checkOverflow, "check-overflow", false,
		"Fail on integer overflow instead of wrapping around")

	cmd.AddCommand(newTreeCmd(o))

	return cmd
}
