package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/apstndb/lox"
	"github.com/apstndb/pcomb/enums"
	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-runewidth"
	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
)

// maxRemainingWidth is the display width remainders are truncated to in
// table and vertical output.
const maxRemainingWidth = 32

var columnNames = []string{"Input", "Status", "Tree", "Value", "Remaining"}

// printOutcomes writes outcomes to out in the given mode.
func printOutcomes(out io.Writer, mode enums.DisplayMode, outcomes []Outcome) error {
	switch mode {
	case enums.DisplayModeTable, enums.DisplayModeUnspecified:
		return printTable(out, outcomes)
	case enums.DisplayModeVertical:
		printVertical(out, outcomes)
		return nil
	case enums.DisplayModeJSON:
		return json.MarshalWrite(out, outcomes, jsontext.WithIndent("  "))
	case enums.DisplayModeYAML:
		return yaml.NewEncoder(out, yaml.UseJSONMarshaler()).Encode(outcomes)
	case enums.DisplayModeDebug:
		printer := pp.New()
		printer.SetColoringEnabled(!color.NoColor)
		_, err := printer.Fprintln(out, outcomes)
		return err
	default:
		return fmt.Errorf("unsupported format: %v", mode)
	}
}

func toRow(o Outcome) []string {
	return []string{
		o.Input,
		colorStatus(o.Status),
		o.Tree,
		lox.IfOrEmpty(o.Value != nil, fmt.Sprint(o.Value)) + o.Error,
		runewidth.Truncate(o.Remaining, maxRemainingWidth, "..."),
	}
}

func printTable(out io.Writer, outcomes []Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	var tableBuf strings.Builder
	table := tablewriter.NewTable(&tableBuf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	table.Header(columnNames)
	for row := range hiter.Map(toRow, slices.Values(outcomes)) {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("tablewriter.Table.Append() failed: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("tablewriter.Table.Render() failed: %w", err)
	}

	_, err := fmt.Fprintln(out, strings.TrimSpace(tableBuf.String()))
	return err
}

func printVertical(out io.Writer, outcomes []Outcome) {
	maxLen := runewidth.StringWidth(slices.MaxFunc(columnNames, func(a, b string) int {
		return runewidth.StringWidth(a) - runewidth.StringWidth(b)
	}))
	format := fmt.Sprintf("%%%ds: %%s\n", maxLen)
	for i, o := range outcomes {
		fmt.Fprintf(out, "*************************** %d. row ***************************\n", i+1)
		for j, column := range toRow(o) {
			fmt.Fprintf(out, format, columnNames[j], column)
		}
	}
}

var statusColors = map[Status]*color.Color{
	StatusOK:        color.New(color.FgGreen),
	StatusPartial:   color.New(color.FgYellow),
	StatusNoMatch:   color.New(color.FgRed),
	StatusEvalError: color.New(color.FgRed, color.Bold),
}

func colorStatus(s Status) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

// summary is the line printed after the outcomes of a batch.
func summary(outcomes []Outcome) string {
	failed := lo.CountBy(outcomes, func(o Outcome) bool { return !o.OK() })
	return fmt.Sprintf("%d input%s, %d failed", len(outcomes), lox.IfOrEmpty(len(outcomes) != 1, "s"), failed)
}
