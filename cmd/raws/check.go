package main

import (
	"fmt"
	"io"
	"os"

	"github.com/raws-format/go-raws/parse"
	"github.com/raws-format/go-raws/raw"
	"github.com/raws-format/go-raws/syntax"
	"github.com/raws-format/go-raws/textdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		if err := checkFile(cfg, cc, reg, file); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, reg *syntax.Registry, file string) error {
	var (
		d   []byte
		err error
	)
	if file != "-" {
		d, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
	} else {
		d, err = io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	doc := raw.NewDocument()
	if err := parse.ImportBytes(doc, reg, file, d, cfg.parseOpts()...); err != nil {
		return err
	}
	got, err := doc.Render(file)
	if err != nil {
		return err
	}
	if got == string(d) {
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s differs after re-rendering:\n", file)
		io.WriteString(cc.Out, textdiff.Unified(string(d), got))
	}
	return fmt.Errorf("%s: render does not reproduce input", file)
}
