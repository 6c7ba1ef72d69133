package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexflint/markmedium/publisher"
	"github.com/pkg/browser"
	"github.com/rs/zerolog"
)

type publishArgs struct {
	File   string `arg:"positional,required" help:"markdown file with a front-matter header"`
	Open   bool   `help:"open the published post in a browser"`
	DryRun bool   `arg:"--dry-run" help:"print the request instead of sending it"`
}

func runPublish(ctx context.Context, args *publishArgs, opts publisher.Options, log zerolog.Logger) error {
	if args.DryRun {
		draft, err := publisher.Prepare(args.File, opts)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(draft.Request)
	}

	url, err := publisher.Publish(ctx, args.File, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Done! Your post has been published at %s\n", url)

	if args.Open {
		err = browser.OpenURL(url)
		if err != nil {
			log.Warn().Err(err).Msg("could not open browser")
		}
	}
	return nil
}
