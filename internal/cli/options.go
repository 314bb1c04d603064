package cli

import (
	"errors"
	"fmt"
	"io"
	"os/user"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apstndb/pcomb/enums"
	"github.com/apstndb/pcomb/internal/value"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"
)

type globalOptions struct {
	Pcomb pcombOptions `group:"pcomb"`
}

// We can't use `default` because config files and flags are processed by separate flags.NewParser() calls.
type pcombOptions struct {
	Grammar  string  `long:"grammar" short:"g" env:"PCOMB_GRAMMAR" description:"Grammar to parse inputs with (CALC|SEMVER)" default-mask:"CALC"`
	Format   string  `long:"format" short:"F" env:"PCOMB_FORMAT" description:"Output format (TABLE|VERTICAL|JSON|YAML|DEBUG)" default-mask:"TABLE"`
	Jobs     string  `long:"jobs" short:"j" description:"Number of inputs evaluated concurrently (1-256)" default-mask:"4"`
	File     string  `long:"file" short:"f" description:"Read inputs from the file, one per line. - reads stdin."`
	Timeout  string  `long:"timeout" description:"Give up on inputs not evaluated within the duration (e.g. 30s). 0 disables it." default-mask:"0"`
	LogLevel string  `long:"log-level" description:"Log level (DEBUG|INFO|WARN|ERROR)"`
	Trace    string  `long:"trace" description:"Log every grammar attempt at DEBUG level" optional:"true" optional-value:"true"`
	History  *string `long:"history" description:"Set the history file to the specified path. NULL keeps history in memory only." default-mask:"~/.pcomb_history"`
	NoColor  string  `long:"no-color" description:"Disable colored output" optional:"true" optional-value:"true"`
	Help     bool    `long:"help" short:"h" hidden:"true"`
}

const (
	defaultJobs        = 4
	defaultHistoryFile = ".pcomb_history"
	cnfFileName        = ".pcomb.cnf"
)

var longDescription = heredoc.Doc(`
	Parse each INPUT with the selected grammar and report how much of it matched.

	Inputs come from the arguments, from --file (one input per line), or from
	standard input when it is not a terminal. With no input on a terminal, an
	interactive session starts. Options can also be set in .pcomb.cnf in the
	home directory or the current directory.
`)

// config is the validated form of pcombOptions.
type config struct {
	Grammar     enums.GrammarKind
	Format      enums.DisplayMode
	Jobs        int
	File        string
	Timeout     time.Duration
	LogLevel    enums.LogLevel
	Trace       bool
	HistoryFile string // empty keeps history in memory only
	NoColor     bool
	Inputs      []string
}

var (
	grammarParser  = value.NewEnumParser(enums.GrammarKindValues())
	formatParser   = value.NewEnumParser(enums.DisplayModeValues())
	logLevelParser = value.NewEnumParser(enums.LogLevelValues())
	jobsParser     = value.WithTransform[int64](value.NewIntParser().WithRange(1, 256), func(n int64) (int, error) {
		return int(n), nil
	})
	timeoutParser = value.NewDurationParser().WithMin(0)
	boolParser    = value.NewBoolParser()
	pathParser    = value.WithValidation[string](value.NewQuotedStringParser(), func(path string) error {
		if path == "" {
			return errEmptyPath
		}
		return nil
	})
	historyParser = value.NewOptionalParser(pathParser)
)

var errEmptyPath = errors.New("path must not be empty")

// errHelp is returned when help was requested and written.
var errHelp = errors.New("help requested")

func newFlagParser(opts *globalOptions, options flags.Options) *flags.Parser {
	p := flags.NewParser(opts, options)
	p.Usage = "[OPTIONS] [INPUT...]"
	p.LongDescription = longDescription
	return p
}

// parseOptions processes config files first and then environment variables
// and command line arguments, which take precedence.
func parseOptions(fs afero.Fs, cnfFiles []string, args []string, helpOut io.Writer) (*config, error) {
	var gopts globalOptions

	if err := readConfigFile(fs, newFlagParser(&gopts, flags.Default), cnfFiles); err != nil {
		return nil, fmt.Errorf("invalid config file format: %w", err)
	}

	flagParser := newFlagParser(&gopts, flags.PassDoubleDash)

	// Workaround to avoid displaying config values as defaults
	parserForHelp := newFlagParser(&globalOptions{}, flags.Default)

	rest, err := flagParser.ParseArgs(args)
	if err != nil {
		parserForHelp.WriteHelp(helpOut)
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if gopts.Pcomb.Help {
		parserForHelp.WriteHelp(helpOut)
		return nil, errHelp
	}

	cfg, err := resolveOptions(&gopts.Pcomb)
	if err != nil {
		return nil, err
	}
	cfg.Inputs = rest
	return cfg, nil
}

func resolveOptions(opts *pcombOptions) (*config, error) {
	cfg := &config{
		Grammar:  enums.GrammarKindCalc,
		Format:   enums.DisplayModeTable,
		Jobs:     defaultJobs,
		LogLevel: enums.LogLevelUnspecified,
	}

	var errs []error
	if opts.Grammar != "" {
		v, err := grammarParser.ParseAndValidate(opts.Grammar)
		errs = append(errs, wrapOption("--grammar", err))
		cfg.Grammar = v
	}
	if opts.Format != "" {
		v, err := formatParser.ParseAndValidate(opts.Format)
		errs = append(errs, wrapOption("--format", err))
		cfg.Format = v
	}
	if opts.Jobs != "" {
		v, err := jobsParser.ParseAndValidate(opts.Jobs)
		errs = append(errs, wrapOption("--jobs", err))
		cfg.Jobs = v
	}
	if opts.File != "" {
		v, err := pathParser.ParseAndValidate(opts.File)
		errs = append(errs, wrapOption("--file", err))
		cfg.File = v
	}
	if opts.Timeout != "" {
		v, err := timeoutParser.ParseAndValidate(opts.Timeout)
		errs = append(errs, wrapOption("--timeout", err))
		cfg.Timeout = v
	}
	if opts.Trace != "" {
		v, err := boolParser.ParseAndValidate(opts.Trace)
		errs = append(errs, wrapOption("--trace", err))
		cfg.Trace = v
	}
	if opts.NoColor != "" {
		v, err := boolParser.ParseAndValidate(opts.NoColor)
		errs = append(errs, wrapOption("--no-color", err))
		cfg.NoColor = v
	}
	if opts.LogLevel != "" {
		v, err := logLevelParser.ParseAndValidate(opts.LogLevel)
		errs = append(errs, wrapOption("--log-level", err))
		cfg.LogLevel = v
	}
	if opts.History != nil {
		v, err := historyParser.ParseAndValidate(*opts.History)
		errs = append(errs, wrapOption("--history", err))
		cfg.HistoryFile = v.OrElse("")
	} else if u, err := user.Current(); err == nil {
		cfg.HistoryFile = filepath.Join(u.HomeDir, defaultHistoryFile)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func wrapOption(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("error on parsing %s: %w", name, err)
}

// defaultConfigFiles lists the config file in the home directory and then
// the one in the current directory.
func defaultConfigFiles(cwd string) []string {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}
	return append(cnfFiles, filepath.Join(cwd, cnfFileName))
}

func readConfigFile(fs afero.Fs, parser *flags.Parser, cnfFiles []string) error {
	iniParser := flags.NewIniParser(parser)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		f, err := fs.Open(cnfFile)
		if err != nil {
			continue
		}
		err = iniParser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cnfFile, err)
		}
	}
	return nil
}
