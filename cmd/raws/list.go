package main

import (
	"fmt"

	"github.com/raws-format/go-raws/query"
	"github.com/raws-format/go-raws/raw"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var q *query.Query
	if cfg.Where != "" {
		q, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc := raw.NewDocument()
	batchErr := importAll(cfg.MainConfig, cc, doc, reg, args)
	for _, rec := range doc.Records() {
		if q != nil {
			ok, err := q.Match(rec)
			if err != nil {
				return fmt.Errorf("error evaluating %s on %s: %w", q, rec.Key(), err)
			}
			if !ok {
				continue
			}
		}
		fmt.Fprintf(cc.Out, "%s\t%s:%d\n", rec.Key(), rec.Start.File, rec.Start.Line)
	}
	return batchErr
}
