package main

import (
	"errors"
	"fmt"

	"github.com/ksptools/sfs-format/go-sfs/encode"
	"github.com/ksptools/sfs-format/go-sfs/eval"
	"github.com/ksptools/sfs-format/go-sfs/ir"
	"github.com/ksptools/sfs-format/go-sfs/treepath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Refs) == 0 {
		return fmt.Errorf("%w: get requires at least one of -p, -q, -r", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		y, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		for _, br := range cfg.Refs {
			if err := getRef(cfg, cc, y, br); err != nil {
				return err
			}
		}
	}
	return nil
}

// getRef resolves one reference and prints the result. A missing step is
// reported and skipped so the remaining references still run.
func getRef(cfg *GetConfig, cc *cli.Context, root *ir.Node, br branchRef) error {
	fmt.Fprintf(cc.Out, "%s/%s\n", br.Branch, br.Ref)
	res, err := treepath.Resolve(root, br.Branch, br.Ref)
	if errors.Is(err, treepath.ErrNotFound) {
		fmt.Fprintf(cc.Out, "reference failed (%v), please check the spelling; references are case sensitive\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.Where != "" && res.Type == ir.ArrayType {
		res, err = eval.Select(res, cfg.Where)
		if err != nil {
			return fmt.Errorf("error filtering %s/%s: %w", br.Branch, br.Ref, err)
		}
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding %s/%s: %w", br.Branch, br.Ref, err)
	}
	return nil
}
