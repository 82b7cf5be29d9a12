package mustache

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrFormatArgs indicates a format directive was called with a missing or
// malformed operand. This is scoped to the default FormatProvider's own
// directive dispatch — spec §7's taxonomy doesn't cover formatting errors,
// since the Formatter is an opaque host capability there.
var ErrFormatArgs = errors.New("invalid format directive arguments")

// ErrFormatInvalidKeyType indicates the extract directive's key path used
// a key of the wrong kind for the value it addressed.
var ErrFormatInvalidKeyType = errors.New("invalid key type for extract")

// ErrFormatIndexOutOfRange indicates the extract directive's key path
// addressed a sequence index outside its bounds.
var ErrFormatIndexOutOfRange = errors.New("index out of range for extract")

// formatDirective is the shape of one named formatting primitive: the
// resolved value plus any operands parsed out of the format spec string.
type formatDirective func(value any, args ...string) (any, error)

// formatDirectives rehomes the reference package's filter library (real
// github.com/kaptinlin/filter- and github.com/go-json-experiment/json-
// backed functions, kept in builtin_array.go, builtin_date.go,
// builtin_format.go, builtin_map.go, builtin_math.go, builtin_string.go)
// from a pipe-filter language feature this spec doesn't have onto the
// Formatter capability it does have (spec §4.6): each format spec string
// names one directive to apply to the resolved placeholder value.
var formatDirectives = map[string]formatDirective{
	// array
	"unique":  uniqueFilter,
	"join":    joinFilter,
	"first":   firstFilter,
	"last":    lastFilter,
	"random":  randomFilter,
	"reverse": reverseFilter,
	"shuffle": shuffleFilter,
	"size":    sizeFilter,
	"max":     maxFilter,
	"min":     minFilter,
	"sum":     sumFilter,
	"average": averageFilter,
	"map":     mapFilter,

	// date
	"date":       dateFilter,
	"day":        dayFilter,
	"month":      monthFilter,
	"month_full": monthFullFilter,
	"year":       yearFilter,
	"week":       weekFilter,
	"weekday":    weekdayFilter,
	"timeago":    timeAgoFilter,

	// json
	"json": jsonFilter,

	// map
	"extract": extractFilter,

	// math
	"abs":     absFilter,
	"atLeast": atLeastFilter,
	"atMost":  atMostFilter,
	"round":   roundFilter,
	"floor":   floorFilter,
	"ceil":    ceilFilter,
	"plus":    plusFilter,
	"minus":   minusFilter,
	"times":   timesFilter,
	"divide":  divideFilter,
	"modulo":  moduloFilter,

	// string
	"default":       defaultFilter,
	"trim":          trimFilter,
	"split":         splitFilter,
	"replace":       replaceFilter,
	"remove":        removeFilter,
	"append":        appendFilter,
	"prepend":       prependFilter,
	"length":        lengthFilter,
	"upper":         upperFilter,
	"lower":         lowerFilter,
	"titleize":      titleizeFilter,
	"capitalize":    capitalizeFilter,
	"camelize":      camelizeFilter,
	"pascalize":     pascalizeFilter,
	"dasherize":     dasherizeFilter,
	"slugify":       slugifyFilter,
	"pluralize":     pluralizeFilter,
	"ordinalize":    ordinalizeFilter,
	"truncate":      truncateFilter,
	"truncateWords": truncateWordsFilter,
}

// DefaultFormatProvider is the FormatProvider used automatically when a
// Generator is rendered without one.
//
// The spec names a directive, optionally followed by ":" and its operands
// ("|"-separated when more than one is needed, e.g. "replace:old|new"); a
// known directive name (including the date-family ones, e.g. "day",
// "timeago", or "date:Y-m-d" with its PHP-style layout) always dispatches
// to that directive. For a time.Time value whose spec does *not* name a
// registered directive, the spec is instead treated as a .NET/C# composite
// date format string (so "{{When:yyyyMMdd}}" works the way this language's
// origin, a C# Mustache dialect, expects — see DESIGN.md) and translated to
// a Go reference-time layout, since the date directive's PHP-style tokens
// (grounded on the reference package's builtin_date.go) mean something
// different for the same letters.
type DefaultFormatProvider struct{}

// FormatValue implements FormatProvider.
func (DefaultFormatProvider) FormatValue(value any, spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	value = resolved(value)

	name, args := splitDirective(spec)
	if fn, ok := formatDirectives[name]; ok {
		result, err := fn(value, args...)
		if err != nil {
			return "", err
		}
		return toString(result), nil
	}

	if t, ok := value.(time.Time); ok {
		return t.Format(translateDotNetDateLayout(spec)), nil
	}

	return "", fmt.Errorf("%w: unknown format directive %q", ErrFormatArgs, name)
}

// dotNetDateTokens maps .NET/C# composite-date-format tokens to Go's
// reference-time layout, longest token first so greedy matching doesn't
// stop at a prefix (e.g. "yyyy" must be tried before "yy").
var dotNetDateTokens = []struct {
	token, layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"fff", "000"},
	{"tt", "PM"},
	{"t", "PM"},
}

// translateDotNetDateLayout rewrites a .NET/C# composite date format string
// (e.g. "yyyyMMdd") into the equivalent Go reference-time layout, passing
// through any character that isn't part of a recognized token unchanged.
func translateDotNetDateLayout(spec string) string {
	var out strings.Builder
	for i := 0; i < len(spec); {
		matched := false
		for _, tok := range dotNetDateTokens {
			if strings.HasPrefix(spec[i:], tok.token) {
				out.WriteString(tok.layout)
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(spec[i])
			i++
		}
	}
	return out.String()
}

func splitDirective(spec string) (name string, args []string) {
	idx := strings.Index(spec, ":")
	if idx < 0 {
		return spec, nil
	}
	name = spec[:idx]
	rest := spec[idx+1:]
	if rest == "" {
		return name, nil
	}
	return name, strings.Split(rest, "|")
}
