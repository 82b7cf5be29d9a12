package mustache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioBarePlaceholder(t *testing.T) {
	out := render(t, "Hello, {{Name}}!!!", map[string]any{"Name": "Bob"})
	assert.Equal(t, "Hello, Bob!!!", out)
}

func TestScenarioLeftAlignedPlaceholder(t *testing.T) {
	out := render(t, "Hello, {{Name,-10}}!!!", map[string]any{"Name": "Bob"})
	assert.Equal(t, "Hello, Bob       !!!", out)
}

func TestScenarioIfElseFalseBranch(t *testing.T) {
	out := render(t, "Before{{#if this}}Yay{{#else}}Nay{{/if}}After", false)
	assert.Equal(t, "BeforeNayAfter", out)
}

func TestScenarioEachOverSlice(t *testing.T) {
	out := render(t, "Before{{#each this}}{{this}}{{/each}}After", []any{1, 2, 3})
	assert.Equal(t, "Before123After", out)
}

func TestScenarioIfElifElse(t *testing.T) {
	tmpl := "Before{{#if First}}First{{#elif Second}}Second{{#else}}Third{{/if}}After"
	out := render(t, tmpl, map[string]any{"First": false, "Second": false})
	assert.Equal(t, "BeforeThirdAfter", out)

	out = render(t, tmpl, map[string]any{"First": false, "Second": true})
	assert.Equal(t, "BeforeSecondAfter", out)

	out = render(t, tmpl, map[string]any{"First": true, "Second": false})
	assert.Equal(t, "BeforeFirstAfter", out)
}

func TestScenarioCommentLineElided(t *testing.T) {
	out := render(t, "{{#! c }}\n{{this}}", "X")
	assert.Equal(t, "X", out)
}

func TestScenarioDateFormatSpec(t *testing.T) {
	when := time.Date(2012, time.January, 31, 0, 0, 0, 0, time.UTC)
	out := render(t, "Hello, {{When:yyyyMMdd}}!!!", map[string]any{"When": when})
	assert.Equal(t, "Hello, 20120131!!!", out)
}

func TestTagFreeFidelity(t *testing.T) {
	out := render(t, "just plain text, no tags here", nil)
	assert.Equal(t, "just plain text, no tags here", out)
}

func TestWhitespaceOnlyFidelity(t *testing.T) {
	out := render(t, "   \n\t  \n", nil)
	assert.Equal(t, "   \n\t  \n", out)
}

func TestIdempotenceForPurelyLiteralTemplate(t *testing.T) {
	gen, err := NewCompiler().Compile("static text")
	require.NoError(t, err)

	out1, err := gen.Render(map[string]any{"Name": "Ada"})
	require.NoError(t, err)
	out2, err := gen.Render(map[string]any{"Name": "Grace"})
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, "static text", out1)
}

func TestMissingKeyFault(t *testing.T) {
	gen, err := NewCompiler().Compile("{{Missing}}")
	require.NoError(t, err)
	_, err = gen.Render(map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestThisNullRule(t *testing.T) {
	out := render(t, "{{this}}", nil)
	assert.Equal(t, "", out)
}

// TestNullPlaceholderBypassesFormatAndAlignment covers spec §4.5: a null
// resolved value always emits "", without consulting the format provider
// (which could otherwise substitute a default) or padding via alignment.
func TestNullPlaceholderBypassesFormatAndAlignment(t *testing.T) {
	out := render(t, "[{{Missing:default:N/A}}]", map[string]any{"Missing": nil})
	assert.Equal(t, "[]", out)

	out = render(t, "[{{Missing,-10}}]", map[string]any{"Missing": nil})
	assert.Equal(t, "[]", out)
}

func TestCompileEmptyTemplateIsNullTemplateError(t *testing.T) {
	_, err := NewCompiler().Compile("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNullTemplate))
}

func TestCompileUnknownTagIsError(t *testing.T) {
	_, err := NewCompiler().Compile("{{#nope}}{{/nope}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTag))
}

func TestCompileUnmatchedCloseIsError(t *testing.T) {
	_, err := NewCompiler().Compile("{{/if}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnmatchedClose))
}

func TestCompileMismatchedCloseIsUnmatchedClose(t *testing.T) {
	_, err := NewCompiler().Compile("{{#if this}}body{{/each}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnmatchedClose))
}

func TestCompileUnterminatedTagErrorsOnEOF(t *testing.T) {
	_, err := NewCompiler().Compile("{{#if this}}body")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedTag))
}

func TestCompileElifElseOutsideIfIsUnexpectedTag(t *testing.T) {
	_, err := NewCompiler().Compile("{{#elif this}}{{/elif}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedTag))
}

func TestCompileDuplicateElseIsParseError(t *testing.T) {
	_, err := NewCompiler().Compile("{{#if this}}a{{#else}}b{{#else}}c{{/if}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateElse))
}

func TestCompileElifAfterElseIsUnexpectedTag(t *testing.T) {
	_, err := NewCompiler().Compile("{{#if this}}a{{#else}}b{{#elif this}}c{{/if}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedTag))
}

func TestAlignmentPositiveAndNegativeAndPlusPrefix(t *testing.T) {
	assert.Equal(t, "Bob       ", align("Bob", -10))
	assert.Equal(t, "       Bob", align("Bob", 10))
	assert.Equal(t, "Bob", align("Bob", 2))
	assert.Equal(t, "       Bob", render(t, "{{Name,+10}}", map[string]any{"Name": "Bob"}))
}

func TestWithPushesResolvedScope(t *testing.T) {
	out := render(t, "{{#with User}}{{Name}}{{/with}}", map[string]any{
		"User": map[string]any{"Name": "Ada"},
	})
	assert.Equal(t, "Ada", out)
}

// TestWithRendersBodyOnceEvenWhenFalsy covers spec §3: with carries no
// truthiness gate (unlike if's explicit "iff <cond> is truthy"), so its
// body renders exactly once with the resolved value pushed as current
// scope, even when that value is null or otherwise falsy.
func TestWithRendersBodyOnceEvenWhenFalsy(t *testing.T) {
	out := render(t, "Before{{#with User}}{{this}}{{/with}}After", map[string]any{"User": nil})
	assert.Equal(t, "BeforeAfter", out)

	out = render(t, "Before{{#with Flag}}{{this}}{{/with}}After", map[string]any{"Flag": false})
	assert.Equal(t, "BeforefalseAfter", out)
}

func TestEachSkipsNonIterableValue(t *testing.T) {
	out := render(t, "Before{{#each Items}}{{this}}{{/each}}After", map[string]any{"Items": nil})
	assert.Equal(t, "BeforeAfter", out)
}

func TestEachElementThisDottedPath(t *testing.T) {
	tmpl := "{{#each Items}}[{{this.Name}}]{{/each}}"
	out := render(t, tmpl, map[string]any{
		"Name":  "outer",
		"Items": []any{map[string]any{"Name": "a"}, map[string]any{"Name": "b"}},
	})
	assert.Equal(t, "[a][b]", out)
}

func TestNestedEachInsideIf(t *testing.T) {
	tmpl := "{{#if Show}}{{#each Items}}[{{this}}]{{/each}}{{/if}}"
	out := render(t, tmpl, map[string]any{"Show": true, "Items": []any{"a", "b"}})
	assert.Equal(t, "[a][b]", out)
}

func TestRenderWithCustomPropertyResolver(t *testing.T) {
	gen, err := NewCompiler().Compile("{{secret}}")
	require.NoError(t, err)

	resolver := func(scope any, name string) (any, bool) {
		if name == "secret" {
			return "shh", true
		}
		return nil, false
	}
	out, err := gen.Render(nil, WithPropertyResolver(resolver))
	require.NoError(t, err)
	assert.Equal(t, "shh", out)
}

func TestRegisterTagReplacesExistingDefinition(t *testing.T) {
	c := NewCompiler()
	c.RegisterTag(eachTag{}, true)
	assert.True(t, c.registry.HasTag("each"))

	c.RegisterTag(eachTag{}, false)
	assert.False(t, c.registry.IsTopLevel("each"))
}

// boxTag is a custom compound tag whose only legal child is labelTag, per
// spec §4.3: "the caller supplies the set of parent tags under which the new
// tag is valid."
type boxTag struct{}

func (boxTag) Name() string              { return "box" }
func (boxTag) IsContextSensitive() bool   { return false }
func (boxTag) HasCloser() bool            { return true }
func (boxTag) Parameters() []TagParameter { return nil }
func (boxTag) ChildTags() []string        { return []string{"label"} }

func (boxTag) RenderBody(args []Arg, body *BodyRenderer) error {
	return body.RenderDefault()
}

// labelTag is registered as non-top-level: it is legal only as a child of
// boxTag, never at the template's top level or inside any other parent.
type labelTag struct{}

func (labelTag) Name() string              { return "label" }
func (labelTag) IsContextSensitive() bool   { return false }
func (labelTag) HasCloser() bool            { return false }
func (labelTag) Parameters() []TagParameter { return nil }
func (labelTag) ChildTags() []string        { return nil }

func (labelTag) GetText(scopes *ScopeStack, provider FormatProvider, args []Arg) (string, error) {
	return "LBL", nil
}

// TestChildTagLegalOnlyUnderItsDeclaredParent covers spec §4.3: a tag
// registered non-top-level is legal as a child wherever the open frame's own
// ChildTags() names it, and an error everywhere else.
func TestChildTagLegalOnlyUnderItsDeclaredParent(t *testing.T) {
	c := NewCompiler()
	c.RegisterTag(boxTag{}, true)
	c.RegisterTag(labelTag{}, false)

	gen, err := c.Compile("[{{#box}}{{#label}}{{/box}}]")
	require.NoError(t, err)
	out, err := gen.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[LBL]", out)

	_, err = c.Compile("{{#label}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedTag))

	_, err = c.Compile("{{#if this}}{{#label}}{{/if}}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedTag))
}

// TestConcurrentRenderAgainstOneGenerator exercises spec §5: a compiled
// Generator is immutable, so independent Render calls with their own data
// may run concurrently against it.
func TestConcurrentRenderAgainstOneGenerator(t *testing.T) {
	gen, err := NewCompiler().Compile("Before{{#each Items}}[{{this}}]{{/each}}After, {{Name}}")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			out, err := gen.Render(map[string]any{
				"Name":  fmt.Sprintf("User%d", id),
				"Items": []any{id, id + 1},
			})
			if err != nil {
				errs <- err
				return
			}
			want := fmt.Sprintf("Before[%d][%d]After, User%d", id, id+1, id)
			if out != want {
				errs <- fmt.Errorf("render %d: got %q, want %q", id, out, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
