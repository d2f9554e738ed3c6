package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lett-lang/lett/internal/cli"
	"github.com/lett-lang/lett/internal/eval"
	"github.com/lett-lang/lett/internal/grammar"
	"github.com/lett-lang/lett/internal/watch"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		showHelp    = flag.Bool("help", false, "show help information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		exprStr     = flag.String("expr", "", "check a literal expression instead of files")
		evalMode    = flag.Bool("eval", false, "also evaluate after parsing")
		watchMode   = flag.Bool("watch", false, "watch files and re-check on changes")
		verbose     = flag.Bool("verbose", false, "verbose output")
		debugMode   = flag.Bool("debug", false, "enable debug output")
		require     = flag.String("require", "", "require tool version to satisfy SemVer constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [FILES...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse Lett expression files and report the resulting ASTs.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s program.lett             # Parse one file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --eval program.lett      # Parse and evaluate\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --watch program.lett     # Re-check on every write\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --expr \"let x = 1 in x\"  # Check a literal expression\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		cli.PrintVersion("Lett Check", *jsonOutput)
		os.Exit(0)
	}

	cli.RequireVersion("lett-check", *require)

	logger := cli.NewLogger(*verbose, *debugMode)
	checker := &Checker{evaluate: *evalMode, logger: logger}

	if *exprStr != "" {
		if err := checker.CheckSource("<expr>", *exprStr); err != nil {
			cli.ExitWithError("%v", err)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, file := range files {
		if err := checker.CheckFile(file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed = true
		}
	}

	if *watchMode {
		if err := watchFiles(checker, files); err != nil {
			cli.ExitWithError("%v", err)
		}
		return
	}

	if failed {
		os.Exit(1)
	}
}

// Checker parses (and optionally evaluates) Lett sources.
type Checker struct {
	evaluate bool
	logger   *cli.Logger
}

// CheckFile reads and checks a single file.
func (c *Checker) CheckFile(filename string) error {
	c.logger.Debug("checking %s", filename)
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return c.CheckSource(filename, string(content))
}

// CheckSource parses src, printing the AST (and its value in eval
// mode) on success.
func (c *Checker) CheckSource(name, src string) error {
	expr, err := grammar.ParseString(strings.TrimSpace(src))
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", name, expr)

	if c.evaluate {
		value, err := eval.Evaluate(expr, nil)
		if err != nil {
			return err
		}
		fmt.Printf("%s: => %d\n", name, value)
	}
	return nil
}

// watchFiles re-checks each file on every write event until the
// watcher fails or the process is interrupted.
func watchFiles(checker *Checker, files []string) error {
	w, err := watch.NewFSWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, file := range files {
		if err := w.Add(file); err != nil {
			return fmt.Errorf("watch %s: %w", file, err)
		}
		checker.logger.Info("watching %s", file)
	}

	for {
		select {
		case ev := <-w.Events():
			if ev.Op&(watch.OpRemove|watch.OpRename) != 0 {
				checker.logger.Warn("%s was removed or renamed; no longer watching it", ev.Path)
				continue
			}
			if ev.Op&(watch.OpWrite|watch.OpCreate) == 0 {
				continue
			}
			checker.logger.Info("change detected: %s", ev.Path)
			if err := checker.CheckFile(ev.Path); err != nil {
				checker.logger.Error("%s: %v", ev.Path, err)
			}
		case err := <-w.Errors():
			return err
		}
	}
}
