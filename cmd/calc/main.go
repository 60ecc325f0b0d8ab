// Command calc evaluates let-expressions given on the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func main() {
	o := &options{}
	if err := newRootCmd(o).Execute(); err != nil {
		os.Exit(handleError(o, os.Stderr, err))
	}
}

// handleError reports err to the user and to the log, and returns the exit
// code for it.
func handleError(o *options, w io.Writer, err error) int {
	code := exitFailure
	var ue *usageError
	if errors.As(err, &ue) {
		code = ue.code
	}

	msg := "error: " + err.Error()
	if o.logger != nil {
		o.logger.Error(msg)
		o.logger.Info(usageLine)
		_ = o.logger.Sync()
	}

	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(w, red(msg))
	fmt.Fprintln(w, usageLine)

	return code
}
