package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raws-format/go-raws/encode"
	"github.com/raws-format/go-raws/parse"
	"github.com/raws-format/go-raws/raw"
	"github.com/raws-format/go-raws/syntax"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Syntax    string `cli:"name=syntax desc='builtin grammar version (default 40d)'"`
	Color     bool   `cli:"name=color desc='render with color'"`
	Overwrite bool   `cli:"name=overwrite desc='let later duplicate definitions replace earlier ones'"`

	Grammar string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) registry() (*syntax.Registry, error) {
	if cfg.Grammar != "" {
		reg, err := syntax.LoadYAMLFile(cfg.Grammar)
		if err != nil {
			return nil, fmt.Errorf("error loading grammar %q: %w", cfg.Grammar, err)
		}
		return reg, nil
	}
	v := cfg.Syntax
	if v == "" {
		v = "40d"
	}
	reg, ok := syntax.ForVersion(v)
	if !ok {
		return nil, fmt.Errorf("%w: unknown syntax version %q, have %s",
			cli.ErrUsage, v, strings.Join(syntax.Versions(), ", "))
	}
	return reg, nil
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	return []parse.Option{parse.Overwrite(cfg.Overwrite)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	var res []encode.Option
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) grammarOpt(cc *cli.Context, a string) (any, error) {
	cfg.Grammar = a
	return nil, nil
}

// importAll reads every named file (or cc.In for "-") into doc. A
// file that fails to import is reported on stderr with its position,
// dropped from doc, and does not stop the batch.
func importAll(cfg *MainConfig, cc *cli.Context, doc *raw.Document, reg *syntax.Registry, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	failed := false
	for _, file := range files {
		if err := importOne(cfg, cc, doc, reg, file); err != nil {
			fmt.Fprintln(os.Stderr, err)
			doc.DropFile(file)
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func importOne(cfg *MainConfig, cc *cli.Context, doc *raw.Document, reg *syntax.Registry, file string) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return parse.Import(doc, reg, file, r, cfg.parseOpts()...)
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress diffs, only set the exit code'"`

	Check *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='filter records with a boolean expression'"`

	List *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type AppendConfig struct {
	*MainConfig

	Append *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Validate *cli.Command
}
