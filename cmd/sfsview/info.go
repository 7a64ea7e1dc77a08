package main

import (
	"fmt"
	"os"

	"github.com/ksptools/sfs-format/go-sfs"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := infoArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func infoArg(cfg *InfoConfig, cc *cli.Context, arg string) error {
	y, err := parseArg(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	s, err := sfs.Summarize(y, cfg.Full)
	if err != nil {
		return fmt.Errorf("error summarizing %s: %w", arg, err)
	}
	title := s.Title
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		title = color.New(color.Bold).Sprint(title)
	}
	fmt.Fprintf(cc.Out, "%s\n\n", title)
	fmt.Fprintf(cc.Out, "Save Time:\t%s\n", s.SaveTime)
	fmt.Fprintf(cc.Out, "Game Version:\t%s\n\n", s.Version)
	return nil
}
