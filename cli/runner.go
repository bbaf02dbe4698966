package cli

import (
	"context"
	"github.com/jessevdk/go-flags"
	"os"
)

func Run(args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return New(options).Run(ctx, os.Stdout)
}
