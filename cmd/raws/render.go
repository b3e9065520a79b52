package main

import (
	"github.com/raws-format/go-raws/encode"
	"github.com/raws-format/go-raws/raw"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc := raw.NewDocument()
	batchErr := importAll(cfg.MainConfig, cc, doc, reg, args)
	opts := cfg.encOpts(cc.Out)
	for _, f := range doc.Files() {
		if err := encode.File(f, cc.Out, opts...); err != nil {
			return err
		}
	}
	return batchErr
}
