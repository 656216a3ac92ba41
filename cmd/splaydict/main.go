package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/g-m-twostay/go-splay/Dict"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var log = slog.Default().With("system", "splaydict")

func main() {
	if err := run(os.Args); err != nil {
		slog.Error(err.Error())
		code := 1
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "splaydict",
		Usage:   "word dictionary backed by a splay tree",
		Version: versioninfo.Short(),
	}
	// exit codes are applied by main.
	app.ExitErrHandler = func(*cli.Context, error) {}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "dictionary file with one word<TAB>definition per line",
			Required: true,
			EnvVars:  []string{"SPLAYDICT_FILE"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"SPLAYDICT_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = configLogging
	app.Commands = []*cli.Command{
		cmdList,
		cmdLookup,
		cmdTree,
	}
	return app.Run(args)
}

func configLogging(cctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	log = logger.With("system", "splaydict")
	return nil
}

func load(cctx *cli.Context) (*Dict.Dictionary, error) {
	path := cctx.String("file")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dictionary")
	}
	defer f.Close()
	d := Dict.New()
	n, err := d.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	log.Debug("dictionary loaded", "path", path, "definitions", n, "words", d.Len(), "height", d.Tree().Height())
	return d, nil
}

var cmdList = &cli.Command{
	Name:  "list",
	Usage: "print every word with its definitions in alphabetical order",
	Action: func(cctx *cli.Context) error {
		d, err := load(cctx)
		if err != nil {
			return err
		}
		for _, e := range d.Entries() {
			fmt.Println(e)
		}
		return nil
	},
}

var cmdLookup = &cli.Command{
	Name:      "lookup",
	Usage:     "print the definitions of the given words",
	ArgsUsage: "<word>...",
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() == 0 {
			return errors.New("need at least one word to look up")
		}
		d, err := load(cctx)
		if err != nil {
			return err
		}
		missing := 0
		for _, w := range cctx.Args().Slice() {
			defs, ok := d.Lookup(w)
			if !ok {
				log.Warn("word not found", "word", w)
				missing++
				continue
			}
			fmt.Printf("%s:\n", w)
			for i, def := range defs {
				fmt.Printf("  %d. %s\n", i+1, def)
			}
		}
		if missing > 0 {
			return cli.Exit(fmt.Sprintf("%d word(s) not found", missing), 2)
		}
		return nil
	},
}

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "draw the splay tree after loading, optionally after looking up words",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "touch",
			Usage: "words to look up before drawing, in order",
		},
	},
	Action: func(cctx *cli.Context) error {
		d, err := load(cctx)
		if err != nil {
			return err
		}
		for _, w := range cctx.StringSlice("touch") {
			if _, ok := d.Lookup(strings.TrimSpace(w)); !ok {
				log.Warn("word not found", "word", w)
			}
		}
		fmt.Print(d.Tree().Dump())
		log.Info("tree stats", "words", d.Len(), "height", d.Tree().Height())
		return nil
	},
}
