// Command humantime parses and formats human-readable durations and RFC 3339
// timestamps from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("humantime"),
		kong.Description("Parse and format human-readable durations and RFC 3339 timestamps."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version},
	)
	if err != nil {
		fmt.Fprintf(stderr, "humantime: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "humantime: %v\n", err)
		return 2
	}

	out := &printer{w: stdout, format: cli.Output}
	logger := newLogger(stderr, cli.LogFormat, cli.LogLevel)

	if err := ctx.Run(out, logger); err != nil {
		var inputErr *inputError
		if errors.As(err, &inputErr) {
			inputErr.render(stderr)
			return 1
		}
		fmt.Fprintf(stderr, "humantime: %v\n", err)
		return 1
	}
	return 0
}
