package mustache

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/filter"
)

// extractFilter retrieves a nested value from a map, slice, or array using a dot-separated key path.
func extractFilter(value any, args ...string) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: extract directive requires a key path argument", ErrFormatArgs)
	}
	keyPath := args[0]
	result, err := filter.Extract(value, keyPath)

	if err != nil {
		switch {
		case errors.Is(err, filter.ErrKeyNotFound):
			return nil, ErrKeyNotFound
		case errors.Is(err, filter.ErrInvalidKeyType):
			return nil, ErrFormatInvalidKeyType
		case errors.Is(err, filter.ErrIndexOutOfRange):
			return nil, ErrFormatIndexOutOfRange
		}

		return nil, err
	}
	return result, nil
}
