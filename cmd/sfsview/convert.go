package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ksptools/sfs-format/go-sfs"
	"github.com/ksptools/sfs-format/go-sfs/encode"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: convert requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		if err := convertArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, cc *cli.Context, arg string) error {
	var extra []sfs.Option
	trans := bytes.NewBuffer(nil)
	if cfg.Trans && arg != "-" {
		extra = append(extra, sfs.Intermediate(trans))
	}
	y, err := parseArg(cfg.MainConfig, arg, extra...)
	// the intermediate dump is written even when the parse fails
	if cfg.Trans && arg != "-" {
		if werr := os.WriteFile(arg+".debug.json", trans.Bytes(), 0644); werr != nil {
			return fmt.Errorf("error writing intermediate text for %s: %w", arg, werr)
		}
	}
	if err != nil {
		return err
	}
	// -o (or stdin input) routes the document to the command output,
	// otherwise each file gets a sibling <file>.<suffix>.
	if cfg.Out != "" || arg == "-" {
		if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		return nil
	}
	eOpts := cfg.encOpts(nil)
	out := arg + encode.FormatFromOpts(eOpts...).Suffix()
	f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", out, err)
	}
	defer f.Close()
	if err := encode.Encode(y, f, eOpts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return nil
}
