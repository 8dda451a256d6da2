package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/xiam/lispm"
	"github.com/xiam/lispm/lexer"
	"github.com/xiam/lispm/parser"
)

const stdinName = "-"

var errInvalidProgram = errors.New("invalid program")

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	log *logrus.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		log:    logrus.New(),
	}
	a.log.SetOutput(errOut)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &cli.App{
		Name:      "lispm",
		Usage:     "inspect the tokens and the syntax tree of a program",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug messages",
				EnvVars: []string{"LISPM_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				a.log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the tokens of a program",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{formatFlag(formatText, "LISPM_TOKENS_FORMAT")},
				Action:    a.tokensAction,
			},
			{
				Name:      "tree",
				Usage:     "print the syntax tree of a program",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{formatFlag(formatTree, "LISPM_TREE_FORMAT")},
				Action:    a.treeAction,
			},
		},
	}
}

func formatFlag(value, envVar string) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   value,
		Usage:   "output format: " + formatNames(),
		EnvVars: []string{envVar},
	}
}

// readSource reads the file named by the first argument, or stdin.
func (a *app) readSource(c *cli.Context) (string, string, error) {
	name := c.Args().First()
	if name == "" {
		name = stdinName
	}

	var (
		buf []byte
		err error
	)
	if name == stdinName {
		buf, err = io.ReadAll(a.in)
	} else {
		buf, err = os.ReadFile(name)
	}
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", name)
	}

	a.log.WithFields(logrus.Fields{"source": name, "bytes": len(buf)}).Debug("read source")
	return name, string(buf), nil
}

// report prints a caret snippet for lexical and syntax errors.
func (a *app) report(err error, name, src string) error {
	formatted := lispm.FormatErrorWithName(err, name, src)
	color.New(color.FgRed, color.Bold).Fprintln(a.errOut, formatted.Error())
	return errors.Wrap(errInvalidProgram, name)
}

func (a *app) tokensAction(c *cli.Context) error {
	format := c.String("format")
	if !isTokenFormat(format) {
		return errors.Errorf("unsupported format %q", format)
	}

	name, src, err := a.readSource(c)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return a.report(err, name, src)
	}
	a.log.WithField("tokens", len(tokens)).Debug("tokenized")

	return writeTokens(a.out, format, tokens)
}

func (a *app) treeAction(c *cli.Context) error {
	format := c.String("format")
	if !isTreeFormat(format) {
		return errors.Errorf("unsupported format %q", format)
	}

	name, src, err := a.readSource(c)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return a.report(err, name, src)
	}

	nodes, err := parser.Parse(tokens)
	if err != nil {
		return a.report(err, name, src)
	}
	a.log.WithFields(logrus.Fields{"tokens": len(tokens), "nodes": len(nodes)}).Debug("parsed")

	return writeTree(a.out, format, nodes)
}
