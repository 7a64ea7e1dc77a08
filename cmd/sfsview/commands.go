package main

import (
	"github.com/ksptools/sfs-format/go-sfs/treepath"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sfsview").
		WithSynopsis("sfsview [opts] command [opts]").
		WithDescription("sfsview is a tool for reading game savefiles in node notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sfsviewMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			InfoCommand(cfg),
			GetCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithSynopsis("convert [-t] [files]").
		WithDescription("convert savefiles to json (or yaml) documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("info").
		WithAliases("i").
		WithSynopsis("info [-k] [files]").
		WithDescription("show the title, save time and game version of savefiles").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
	cfg.Info = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, []*cli.Opt{
		&cli.Opt{
			Name:        "p",
			Description: "print an object inside GAME/PARAMETERS, or ALL",
			Type:        cli.NamedFuncOpt(refOptTypeFunc(cfg, treepath.Parameters), "(ref/to/obj)"),
		},
		&cli.Opt{
			Name:        "q",
			Description: "print an object inside GAME, or ALL",
			Type:        cli.NamedFuncOpt(refOptTypeFunc(cfg, treepath.Game), "(ref/to/obj)"),
		},
		&cli.Opt{
			Name:        "r",
			Description: "print an object inside GAME/FLIGHTSTATE, or ALL",
			Type:        cli.NamedFuncOpt(refOptTypeFunc(cfg, treepath.FlightState), "(ref/to/obj)"),
		}}...)
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [-p|-q|-r ref]... [-w expr] [files]").
		WithDescription("print objects from savefiles by slash-delimited reference").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func refOptTypeFunc(cfg *GetConfig, branch treepath.Branch) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		cfg.Refs = append(cfg.Refs, branchRef{Branch: branch, Ref: a})
		return a, nil
	})
}
