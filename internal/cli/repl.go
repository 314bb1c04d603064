package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/apstndb/pcomb/enums"
	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/nyaosorg/go-readline-ny"
)

// lineReader is satisfied by *readline.Editor.
type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

var errQuit = errors.New("quit")

func replHelp() string {
	return fmt.Sprintf(`\g NAME  switch grammar (%s)
\f NAME  switch output format (%s)
\?       show this help
\q       quit
`, strings.Join(grammarParser.Names(), ", "), strings.Join(formatParser.Names(), ", "))
}

func newEditor(s *session, history History) *readline.Editor {
	ed := &readline.Editor{
		PromptWriter: func(w io.Writer) (int, error) {
			return io.WriteString(w, s.prompt())
		},
		Writer:         s.out,
		History:        history,
		HistoryCycling: true,
	}
	if !color.NoColor {
		ed.ResetColor = colorToSequence(color.Reset)
		ed.DefaultColor = colorToSequence(color.Reset)
	}
	return ed
}

func colorToSequence(attr ...color.Attribute) string {
	var sb strings.Builder
	color.New(attr...).SetWriter(&sb)
	return sb.String()
}

func (s *session) prompt() string {
	return strings.ToLower(s.grammar.String()) + "> "
}

// runInteractive reads lines until \q or end of input. It returns the exit
// code of the session, which is 0 unless reading failed.
func (s *session) runInteractive(ctx context.Context, r lineReader, history History) int {
	for {
		line, err := r.ReadLine(ctx)
		switch {
		case errors.Is(err, readline.CtrlC):
			continue
		case errors.Is(err, io.EOF):
			return exitCodeSuccess
		case err != nil:
			fmt.Fprintf(s.errOut, "ERROR: %v\n", err)
			return exitCodeError
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		history.Add(input)

		if strings.HasPrefix(input, `\`) {
			if err := s.runMetaCommand(input); errors.Is(err, errQuit) {
				return exitCodeSuccess
			} else if err != nil {
				fmt.Fprintf(s.errOut, "ERROR: %v\n", err)
			}
			continue
		}

		if err := printOutcomes(s.out, s.format, []Outcome{s.eval(input)}); err != nil {
			fmt.Fprintf(s.errOut, "ERROR: %v\n", err)
		}
	}
}

func (s *session) runMetaCommand(input string) error {
	// shellquote treats a backslash as an escape, so the leading one is
	// removed before splitting.
	args, err := shellquote.Split(strings.TrimPrefix(input, `\`))
	if err != nil {
		return fmt.Errorf("invalid meta command: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf(`empty meta command, \? for help`)
	}

	switch name, params := args[0], args[1:]; name {
	case "q":
		return errQuit
	case "?":
		_, err := io.WriteString(s.out, replHelp())
		return err
	case "g":
		if len(params) != 1 {
			return fmt.Errorf(`\g takes exactly one grammar name`)
		}
		kind, err := grammarParser.ParseAndValidate(params[0])
		if err != nil {
			return err
		}
		eval, err := newEvaluator(kind, s.logger, s.trace)
		if err != nil {
			return err
		}
		s.grammar, s.eval = kind, eval
		return nil
	case "f":
		if len(params) != 1 {
			return fmt.Errorf(`\f takes exactly one format name`)
		}
		mode, err := formatParser.ParseAndValidate(params[0])
		if err != nil {
			return err
		}
		s.format = mode
		return nil
	default:
		return fmt.Errorf(`unknown meta command \%s, \? for help`, name)
	}
}

// session is the mutable state of one command invocation.
type session struct {
	grammar enums.GrammarKind
	format  enums.DisplayMode
	eval    Evaluator
	logger  *slog.Logger
	trace   bool
	out     io.Writer
	errOut  io.Writer
}
