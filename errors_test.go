package mustache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorWrapsAndReportsPosition(t *testing.T) {
	err := parseErrorf(3, 7, ErrUnknownTag, "tag %q", "frobnicate")
	assert.True(t, errors.Is(err, ErrUnknownTag))
	assert.Equal(t, `3:7: unknown tag: tag "frobnicate"`, err.Error())

	var perr *ParseError
	require := assert.New(t)
	require.True(errors.As(err, &perr))
	require.Equal(3, perr.Line)
	require.Equal(7, perr.Col)
}

func TestRenderErrorWrapsPath(t *testing.T) {
	err := keyNotFound("User.Name")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, "User.Name: key not found", err.Error())
}

func TestRenderErrorWithoutPath(t *testing.T) {
	err := &RenderError{Err: ErrKeyNotFound}
	assert.Equal(t, "key not found", err.Error())
}
