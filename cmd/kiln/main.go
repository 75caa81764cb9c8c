// Package main is the entry point for the kiln CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	_ "go.trai.ch/kiln/internal/wiring" // register every Graft node
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := app.NewApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err) //nolint:errcheck
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if toolchainErr, ok := asToolchainError(err); ok {
			components.Logger.Error(toolchainErr, "build failed")
			return toolchainExitCode(toolchainErr)
		}
		fmt.Fprintf(os.Stderr, "%+v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}

func asToolchainError(err error) (*domain.ToolchainError, bool) {
	var toolchainErr *domain.ToolchainError
	for err != nil {
		if te, ok := err.(*domain.ToolchainError); ok { //nolint:errorlint // zerr wraps rather than chains via Unwrap here
			return te, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return toolchainErr, false
}

func toolchainExitCode(te *domain.ToolchainError) int {
	if te.Signaled {
		return 1
	}
	if te.ExitCode != 0 {
		return te.ExitCode
	}
	return 1
}
