package enums

import (
	"fmt"
	"strings"
)

// DisplayMode represents different output display formats
type DisplayMode int

const (
	DisplayModeUnspecified DisplayMode = iota
	DisplayModeTable
	DisplayModeVertical
	DisplayModeJSON
	DisplayModeYAML
	DisplayModeDebug
)

var displayModeNames = map[DisplayMode]string{
	DisplayModeUnspecified: "UNSPECIFIED",
	DisplayModeTable:       "TABLE",
	DisplayModeVertical:    "VERTICAL",
	DisplayModeJSON:        "JSON",
	DisplayModeYAML:        "YAML",
	DisplayModeDebug:       "DEBUG",
}

func (m DisplayMode) String() string {
	if s, ok := displayModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// DisplayModeValues maps the selectable names to display modes.
func DisplayModeValues() map[string]DisplayMode {
	return selectable(displayModeNames, DisplayModeUnspecified)
}

// GrammarKind selects the grammar inputs are parsed with.
type GrammarKind int

const (
	GrammarKindUnspecified GrammarKind = iota
	GrammarKindCalc
	GrammarKindSemver
)

var grammarKindNames = map[GrammarKind]string{
	GrammarKindUnspecified: "UNSPECIFIED",
	GrammarKindCalc:        "CALC",
	GrammarKindSemver:      "SEMVER",
}

func (k GrammarKind) String() string {
	if s, ok := grammarKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("GrammarKind(%d)", int(k))
}

// GrammarKindValues maps the selectable names to grammars.
func GrammarKindValues() map[string]GrammarKind {
	return selectable(grammarKindNames, GrammarKindUnspecified)
}

// LogLevel mirrors the slog levels selectable from the command line.
type LogLevel int

const (
	LogLevelUnspecified LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevelNames = map[LogLevel]string{
	LogLevelUnspecified: "UNSPECIFIED",
	LogLevelDebug:       "DEBUG",
	LogLevelInfo:        "INFO",
	LogLevelWarn:        "WARN",
	LogLevelError:       "ERROR",
}

func (l LogLevel) String() string {
	if s, ok := logLevelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// LogLevelValues maps the selectable names to log levels.
func LogLevelValues() map[string]LogLevel {
	return selectable(logLevelNames, LogLevelUnspecified)
}

func selectable[T comparable](names map[T]string, unspecified T) map[string]T {
	m := make(map[string]T, len(names))
	for v, name := range names {
		if v == unspecified {
			continue
		}
		m[strings.ToUpper(name)] = v
	}
	return m
}
