package main

import (
	"fmt"
	"io"

	"github.com/raws-format/go-raws/parse"
	"github.com/raws-format/go-raws/raw"

	"github.com/scott-cotton/cli"
)

func appendTag(cfg *AppendConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Append.Parse(cc, args)
	if err != nil {
		cfg.Append.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 4 {
		return fmt.Errorf("%w: append requires <type> <subtype> <name> <tag>", cli.ErrUsage)
	}
	typ, subtype, name, text := args[0], args[1], args[2], args[3]
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc := raw.NewDocument()
	batchErr := importAll(cfg.MainConfig, cc, doc, reg, args[4:])
	rec, ok := doc.Lookup(typ, subtype, name)
	if !ok {
		return fmt.Errorf("%w: no record %s/%s/%s", raw.ErrNotFound, typ, subtype, name)
	}
	tag, err := parse.Tag(reg, doc.Interner(), text)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", text, err)
	}
	rec.Append(tag)
	out, err := doc.Render(rec.Start.File)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return batchErr
}
