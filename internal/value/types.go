package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BoolParser parses boolean values.
// It accepts the same spellings as strconv.ParseBool:
// "1", "t", "T", "true", "TRUE", "True",
// "0", "f", "F", "false", "FALSE", "False".
type BoolParser struct {
	BaseParser[bool]
}

// NewBoolParser creates a new boolean parser.
func NewBoolParser() *BoolParser {
	return &BoolParser{
		BaseParser: *NewGrammarParser("boolean", boolGrammar),
	}
}

// IntParser parses integer values with optional range validation.
type IntParser struct {
	BaseParser[int64]
	min *int64
	max *int64
}

// NewIntParser creates a new integer parser.
func NewIntParser() *IntParser {
	digits := NewGrammarParser("integer", intGrammar)
	return &IntParser{
		BaseParser: BaseParser[int64]{
			ParseFunc: func(value string) (int64, error) {
				s, err := digits.Parse(value)
				if err != nil {
					return 0, err
				}
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return 0, fmt.Errorf("integer %q out of range: %w", value, err)
				}
				return n, nil
			},
		},
	}
}

// WithRange adds range validation to the integer parser.
func (p *IntParser) WithRange(min, max int64) *IntParser {
	p.min = &min
	p.max = &max
	p.ValidateFunc = p.validateRange
	return p
}

func (p *IntParser) validateRange(value int64) error {
	return CreateRangeValidator(p.min, p.max)(value)
}

// DurationParser parses duration values with an optional lower bound.
type DurationParser struct {
	BaseParser[time.Duration]
	min *time.Duration
}

// NewDurationParser creates a new duration parser.
func NewDurationParser() *DurationParser {
	shape := NewGrammarParser("duration", durationGrammar)
	return &DurationParser{
		BaseParser: BaseParser[time.Duration]{
			ParseFunc: func(value string) (time.Duration, error) {
				if _, err := shape.Parse(value); err != nil {
					return 0, err
				}
				return time.ParseDuration(strings.TrimSpace(value))
			},
		},
	}
}

// WithMin adds minimum duration validation.
func (p *DurationParser) WithMin(min time.Duration) *DurationParser {
	p.min = &min
	p.ValidateFunc = p.validateRange
	return p
}

func (p *DurationParser) validateRange(value time.Duration) error {
	return CreateDurationRangeValidator(p.min, nil)(value)
}

// StringParser parses string values.
type StringParser struct {
	BaseParser[string]
}

// NewQuotedStringParser creates a string parser that trims surrounding
// white space and then removes one pair of matching quotes, if present.
// A value containing its own quote character is returned unchanged.
func NewQuotedStringParser() *StringParser {
	unquote := NewGrammarParser("quoted string", quotedStringGrammar)
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				return unquote.Parse(strings.TrimSpace(value))
			},
		},
	}
}
