package value

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// EnumParser parses string values into enum types.
// Matching is case-insensitive.
type EnumParser[T comparable] struct {
	BaseParser[T]
	values map[string]T
}

// NewEnumParser creates a new enum parser with the given valid values.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	parser := &EnumParser[T]{
		values: lo.MapKeys(values, func(_ T, k string) string {
			return strings.ToUpper(k)
		}),
	}

	parser.BaseParser = BaseParser[T]{
		ParseFunc: parser.parseEnum,
	}

	return parser
}

// Names returns the accepted spellings in sorted order.
func (p *EnumParser[T]) Names() []string {
	return slices.Sorted(maps.Keys(p.values))
}

func (p *EnumParser[T]) parseEnum(value string) (T, error) {
	if result, ok := p.values[strings.ToUpper(strings.TrimSpace(value))]; ok {
		return result, nil
	}

	var zero T
	return zero, fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(p.Names(), ", "))
}
