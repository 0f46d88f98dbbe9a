/*
File    : mova/cmd/mova/main.go
Package : main

Package main is Mova's command-line entry point: `run` (also the bare
default), `repl`, and `version`, built on github.com/urfave/cli/v2, with
fatih/color for results and errors, a banner, and a REPL over
chzyer/readline.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/upyrov/mova/config"
	"github.com/upyrov/mova/file"
	"github.com/upyrov/mova/logging"
	"github.com/upyrov/mova/repl"
	"github.com/upyrov/mova/runner"
	"github.com/upyrov/mova/value"
)

const version = "0.1.0"

const banner = `
 ███▄ ▄███▓ ▒█████   ██▒   █▓▄▄▄
▓██▒▀█▀ ██▒▒██▒  ██▒▓██░   █▒▒████▄
▓██    ▓██░▒██░  ██▒ ▓██  █▒░▒██  ▀█▄
▒██    ▒██ ▒██   ██░  ▒██ █░░░██▄▄▄▄██
▒██▒   ░██▒░ ████▓▒░   ▒▀█░   ▓█   ▓██▒
░ ▒░   ░  ░░ ▒░▒░▒░    ░ ▐░   ▒▒   ▓▒█░
`

var redColor = color.New(color.FgRed)

func main() {
	app := &cli.App{
		Name:                 "mova",
		Usage:                "an affine-ownership tree-walking interpreter",
		Version:              version,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "trace", Usage: "raise diagnostic log verbosity"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI color in output"},
			&cli.StringFlag{Name: "config", Usage: "override .mova.yaml discovery with an explicit path"},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "tokenize, parse, and evaluate one or more Mova source files",
				ArgsUsage: "<path>...",
				Action:    runCommand,
			},
			{
				Name:   "repl",
				Usage:  "start an interactive read-eval-print loop",
				Action: replCommand,
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					cli.ShowVersion(c)
					return nil
				},
			},
		},
		// A bare `mova <path>...` with no subcommand runs the paths directly.
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return replCommand(c)
			}
			return runCommand(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			redColor.Fprintln(os.Stderr, msg)
		}
		code := 1
		if coder, ok := err.(cli.ExitCoder); ok {
			code = coder.ExitCode()
		}
		os.Exit(code)
	}
}

func resolveConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Discover(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.Bool("trace") {
		cfg.Trace = true
	}
	if c.Bool("no-color") {
		cfg.Color = false
	}
	return cfg, nil
}

func runCommand(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}
	color.NoColor = !cfg.Color
	logger := logging.New(cfg.Trace)
	run := runner.New(logger)

	if c.NArg() == 0 {
		return cli.Exit("usage: mova run <path>...", 1)
	}

	exitCode := 0
	for _, path := range c.Args().Slice() {
		src, err := file.ReadSource(path)
		if err != nil {
			redColor.Fprintln(os.Stderr, err)
			exitCode = 1
			continue
		}
		v, err := run.Run(src)
		if err != nil {
			redColor.Fprintln(os.Stderr, err)
			exitCode = 1
			continue
		}
		if v != value.Unit {
			color.New(color.FgYellow).Println(v.String())
		}
	}
	if exitCode != 0 {
		return cli.Exit("", exitCode)
	}
	return nil
}

func replCommand(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}
	color.NoColor = !cfg.Color
	logger := logging.New(cfg.Trace)

	r := repl.New(banner, version, "----------------------------------------------------------------", "mova >>> ", logger)
	return r.Start(os.Stdin, os.Stdout)
}
