package main

import (
	"fmt"

	"github.com/raws-format/go-raws/raw"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc := raw.NewDocument()
	batchErr := importAll(cfg.MainConfig, cc, doc, reg, args)
	errs := doc.Validate()
	for _, e := range errs {
		fmt.Fprintln(cc.Out, e)
	}
	if len(errs) > 0 {
		return cli.ExitCodeErr(1)
	}
	return batchErr
}
