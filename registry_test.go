package mustache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRegistryRegisterAndLookup(t *testing.T) {
	r := NewTagRegistry()
	r.Register(ifTag{}, true)

	def, ok := r.Tag("if")
	require.True(t, ok)
	assert.Equal(t, "if", def.Name())
	assert.True(t, r.IsTopLevel("if"))
	assert.True(t, r.HasTag("if"))
}

func TestTagRegistryReRegistrationReplaces(t *testing.T) {
	r := NewTagRegistry()
	r.Register(eachTag{}, true)
	r.Register(eachTag{}, false)

	assert.False(t, r.IsTopLevel("each"))
	assert.True(t, r.HasTag("each"))
}

func TestTagRegistryUnregisterTag(t *testing.T) {
	r := NewTagRegistry()
	r.Register(withTag{}, true)
	r.UnregisterTag("with")

	_, ok := r.Tag("with")
	assert.False(t, ok)
	assert.False(t, r.HasTag("with"))
}

func TestTagRegistryListTags(t *testing.T) {
	r := NewTagRegistry()
	registerBuiltins(r)

	names := r.ListTags()
	assert.ElementsMatch(t, []string{"if", "each", "with", "!"}, names)
}

func TestIfTagSubsectionParameters(t *testing.T) {
	params, ok := ifTag{}.SubsectionParameters("elif")
	require.True(t, ok)
	assert.Len(t, params, 1)

	params, ok = ifTag{}.SubsectionParameters("else")
	require.True(t, ok)
	assert.Empty(t, params)

	_, ok = ifTag{}.SubsectionParameters("nope")
	assert.False(t, ok)
}
