package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/alexflint/markmedium/publisher"
	"golang.org/x/term"
)

type initArgs struct {
	Token string `arg:"positional,env:MEDIUM_TOKEN" help:"integration token from your Medium settings page"`
}

// promptToken reads a token from the terminal without echoing it
func promptToken() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", errors.New("no integration token given, pass it as an argument or set MEDIUM_TOKEN")
	}

	fmt.Fprint(os.Stderr, "Enter integration token: ")
	token, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("error reading token: %w", err)
	}
	return string(token), nil
}

func runInit(ctx context.Context, args *initArgs, opts publisher.Options) error {
	token := args.Token
	if token == "" {
		var err error
		token, err = promptToken()
		if err != nil {
			return err
		}
	}

	path, err := publisher.Init(ctx, token, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Saved token and author ID at %s\n", path)
	return nil
}
