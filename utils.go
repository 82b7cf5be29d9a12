package mustache

import (
	"fmt"
	"strconv"
)

// toString coerces a resolved value to its string form for use as a format
// directive operand, mirroring the reference package's toString helper.
func toString(v any) string {
	v = resolved(v)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return naturalString(v)
}

// toInteger coerces a resolved value (or a numeric string) to an int,
// mirroring the reference package's toInteger helper.
func toInteger(v any) (int, error) {
	switch n := resolved(v).(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrFormatArgs, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: value is not numeric", ErrFormatArgs)
	}
}
