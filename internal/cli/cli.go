// Package cli implements the pcomb command: it parses inputs with one of the
// bundled grammars and reports the outcomes in batch or interactively.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/apstndb/lox"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/term"
	"spheric.cloud/xiter"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
	exitCodeUsage   = 2
)

// env is everything the command touches outside the process.
type env struct {
	fs         afero.Fs
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	terminal   bool
	cnfFiles   []string
	newReader  func(s *session, history History) lineReader
	setDefault bool
}

// Main runs the command with the process environment and returns its exit code.
func Main(ctx context.Context, args []string) int {
	cwd, _ := os.Getwd() // ignore err
	return run(ctx, args, env{
		fs:       afero.NewOsFs(),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		terminal: term.IsTerminal(int(os.Stdin.Fd())),
		cnfFiles: defaultConfigFiles(cwd),
		newReader: func(s *session, history History) lineReader {
			return newEditor(s, history)
		},
		setDefault: true,
	})
}

func run(ctx context.Context, args []string, e env) int {
	cfg, err := parseOptions(e.fs, e.cnfFiles, args, e.stderr)
	switch {
	case errors.Is(err, errHelp):
		return exitCodeSuccess
	case err != nil:
		fmt.Fprintf(e.stderr, "%v\n", err)
		return exitCodeUsage
	}

	if nonEmptyInputCount := xiter.Count(xiter.Of(len(cfg.Inputs) > 0, cfg.File != ""), lox.Identity); nonEmptyInputCount > 1 {
		fmt.Fprintln(e.stderr, "Invalid combination: INPUT arguments and --file are exclusive")
		return exitCodeUsage
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	logger := newLogger(e.stderr, cfg.LogLevel, cfg.Trace)
	if e.setDefault {
		slog.SetDefault(logger)
	}

	eval, err := newEvaluator(cfg.Grammar, logger, cfg.Trace)
	if err != nil {
		fmt.Fprintf(e.stderr, "%v\n", err)
		return exitCodeUsage
	}

	s := &session{
		grammar: cfg.Grammar,
		format:  cfg.Format,
		eval:    eval,
		logger:  logger,
		trace:   cfg.Trace,
		out:     e.stdout,
		errOut:  e.stderr,
	}

	inputs, err := readInputs(e, cfg)
	if err != nil {
		fmt.Fprintf(e.stderr, "%v\n", err)
		return exitCodeError
	}

	if inputs == nil {
		history, err := loadHistory(e.fs, cfg.HistoryFile)
		if err != nil {
			fmt.Fprintf(e.stderr, "%v\n", err)
			return exitCodeError
		}
		return s.runInteractive(ctx, e.newReader(s, history), history)
	}

	return s.runBatch(ctx, inputs, cfg.Jobs, cfg.Timeout)
}

// readInputs returns nil when the session should be interactive.
func readInputs(e env, cfg *config) ([]string, error) {
	switch {
	case len(cfg.Inputs) > 0:
		return cfg.Inputs, nil
	case cfg.File == "-":
		return readLines(e.stdin, "stdin")
	case cfg.File != "":
		f, err := e.fs.Open(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("read from file %v failed: %w", cfg.File, err)
		}
		defer f.Close()
		return readLines(f, cfg.File)
	case !e.terminal:
		return readLines(e.stdin, "stdin")
	default:
		return nil, nil
	}
}

// readLines returns the non-blank lines of r. It never returns nil on
// success so that empty input stays a batch.
func readLines(r io.Reader, name string) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read from %v failed: %w", name, err)
	}
	lines := lo.Filter(strings.Split(string(b), "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	return lo.Map(lines, func(line string, _ int) string {
		return strings.TrimSuffix(line, "\r")
	}), nil
}

// runBatch evaluates inputs and prints their outcomes. The summary line goes
// to errOut so that machine-readable formats stay clean on out.
func (s *session) runBatch(ctx context.Context, inputs []string, jobs int, timeout time.Duration) int {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	outcomes := evaluateAll(ctx, s.eval, inputs, jobs)
	if err := printOutcomes(s.out, s.format, outcomes); err != nil {
		fmt.Fprintf(s.errOut, "ERROR: %v\n", err)
		return exitCodeError
	}

	fmt.Fprintln(s.errOut, summary(outcomes))
	return lo.Ternary(lo.EveryBy(outcomes, Outcome.OK), exitCodeSuccess, exitCodeError)
}
