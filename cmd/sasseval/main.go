// Command sasseval evaluates SassScript: a single expression given with -e,
// or every declaration of the stylesheets named on the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"bennypowers.dev/sasseval/internal/builtin"
	"bennypowers.dev/sasseval/internal/config"
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/parser/css"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/stylesheet"
	"bennypowers.dev/sasseval/internal/version"
	"github.com/mattn/go-isatty"
)

const appName = "sasseval"

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	css.ClosePool()
	os.Exit(code)
}

// cli holds one invocation's settings and output streams.
type cli struct {
	cfg    *config.Config
	ev     *eval.Evaluator
	stdout io.Writer
	stderr io.Writer
	color  bool
	failed bool
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: sasseval.json or sasseval.yaml in the working directory)")
	expr := fs.String("e", "", "evaluate the given expression and exit")
	precision := fs.Int("precision", -1, "fractional digits of rendered numbers (overrides the config)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.GetFullVersion())
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	if *precision >= 0 {
		cfg.Precision = *precision
	}
	log.SetLevel(cfg.Level())

	c := &cli{
		cfg:    cfg,
		ev:     eval.New(builtin.NewRegistry(), eval.WithPrecision(cfg.Precision)),
		stdout: stdout,
		stderr: stderr,
		color:  isTerminal(stderr),
	}

	if *expr != "" {
		c.expression(*expr)
	} else {
		files := fs.Args()
		if len(files) == 0 {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", appName, err)
				return 2
			}
			if files, err = cfg.Discover(wd); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", appName, err)
				return 2
			}
			log.Info("Discovered %d stylesheets", len(files))
		}
		for _, file := range files {
			c.file(file)
		}
	}

	if c.failed {
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadDir(wd)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *cli) expression(src string) {
	x, err := css.ParseExpression(src)
	if err != nil {
		c.report("-e", err)
		return
	}
	v, err := c.ev.Eval(x)
	if err != nil {
		c.report("-e", err)
		return
	}
	out, err := c.ev.Printer().ToCSS(v, position.Span{})
	if err != nil {
		c.report("-e", err)
		return
	}
	fmt.Fprintln(c.stdout, out)
}

func (c *cli) file(path string) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: paths come from the command line or config globs
	if err != nil {
		c.report(path, err)
		return
	}
	log.Debug("Evaluating %s", path)
	result, err := stylesheet.Evaluate(string(data), c.ev)
	if err != nil {
		c.report(path, err)
		return
	}
	fmt.Fprint(c.stdout, result.Render())
	for _, err := range result.Errors() {
		c.report(path, err)
	}
}

func (c *cli) report(file string, err error) {
	c.failed = true
	msg := sasserr.Format(file, err)
	if c.color {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(c.stderr, msg)
}
