package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ksptools/sfs-format/go-sfs"
	"github.com/ksptools/sfs-format/go-sfs/encode"
	"github.com/ksptools/sfs-format/go-sfs/format"
	"github.com/ksptools/sfs-format/go-sfs/treepath"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Depth   int  `cli:"name=d aliases=depth desc='maximum nesting depth of the input'"`
	ReType  bool `cli:"name=R aliases=retype desc='coerce values to typed scalars'"`
	Pretty  bool `cli:"name=f aliases=pretty desc='indent the output'"`
	Y       bool `cli:"name=y aliases=yaml desc='output yaml'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Color   bool `cli:"name=color desc='encode with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
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

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []sfs.Option {
	res := []sfs.Option{
		sfs.ReType(cfg.ReType),
	}
	if cfg.Depth > 0 {
		res = append(res, sfs.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut || !cfg.Pretty),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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

type ConvertConfig struct {
	*MainConfig

	Trans bool `cli:"name=t aliases=trans desc='also write the intermediate text to <file>.debug.json'"`

	Convert *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Full bool `cli:"name=k aliases=full desc='show the full game version'"`

	Info *cli.Command
}

type branchRef struct {
	Branch treepath.Branch
	Ref    string
}

type GetConfig struct {
	*MainConfig

	Where string `cli:"name=w aliases=where desc='filter sequence elements by expression'"`

	Refs []branchRef

	Get *cli.Command
}
