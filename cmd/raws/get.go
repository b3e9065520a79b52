package main

import (
	"fmt"

	"github.com/raws-format/go-raws/encode"
	"github.com/raws-format/go-raws/raw"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: get requires <type> <subtype> <name>", cli.ErrUsage)
	}
	typ, subtype, name := args[0], args[1], args[2]
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc := raw.NewDocument()
	batchErr := importAll(cfg.MainConfig, cc, doc, reg, args[3:])
	rec, ok := doc.Lookup(typ, subtype, name)
	if !ok {
		return fmt.Errorf("%w: no record %s/%s/%s", raw.ErrNotFound, typ, subtype, name)
	}
	if err := encode.Record(rec, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return batchErr
}
