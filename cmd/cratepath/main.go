// Package main is the entry point for the cratepath CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cratepath/cmd/cratepath/commands"
	"go.trai.ch/cratepath/internal/app"
	"go.trai.ch/cratepath/internal/core/domain"
	_ "go.trai.ch/cratepath/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = components.App.Close() }()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	cli.SetVerboseHook(func(verbose bool) {
		if l, ok := components.Logger.(interface{ SetVerbose(bool) }); ok {
			l.SetVerbose(verbose)
		}
	})

	if err := cli.Execute(ctx); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

// report prints err, naming the failed stage for resolution errors.
// zerr prints metadata such as the cargo exit code and stderr when using %+v.
func report(w io.Writer, err error) {
	var resolveErr *domain.ResolveError
	if errors.As(err, &resolveErr) {
		_, _ = fmt.Fprintf(w, "Error: %s failed: %+v\n", resolveErr.Stage(), err)
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %+v\n", err)
}
