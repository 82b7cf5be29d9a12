package mustache

import "strings"

// renderState carries the mutable state threaded through one Render call:
// the scope stack, the output buffer, and the format provider in effect.
type renderState struct {
	scopes   *ScopeStack
	provider FormatProvider
	out      *strings.Builder
}

// BodyRenderer is the handle a CompoundTagDefinition uses to render its own
// body and subsections (spec §6): it hides the node tree and the output
// buffer behind a small surface so a custom tag never touches either
// directly.
type BodyRenderer struct {
	rc   *renderState
	node CompoundTagNode
}

// RenderDefault renders the tag's primary body (the text between the
// opener and its closer). For a subsectioning tag such as if, the primary
// body is empty: the opener's own branch is Subsections()[0].
func (b *BodyRenderer) RenderDefault() error {
	return b.rc.renderNodes(b.node.Body)
}

// Subsections returns the tag's captured branches in source order (empty
// for tags, like each/with, that declare none).
func (b *BodyRenderer) Subsections() []Subsection {
	return b.node.Subsections
}

// RenderSubsection renders one previously-returned subsection's body.
func (b *BodyRenderer) RenderSubsection(s Subsection) error {
	return b.rc.renderNodes(s.Body)
}

// Scopes exposes the active scope stack so a context-sensitive tag can
// resolve its own arguments and push a new innermost scope.
func (b *BodyRenderer) Scopes() *ScopeStack { return b.rc.scopes }

// PushScope pushes a new innermost scope for the duration of a body render.
func (b *BodyRenderer) PushScope(v any) { b.rc.scopes.Push(v) }

// PopScope removes the scope most recently pushed with PushScope.
func (b *BodyRenderer) PopScope() { b.rc.scopes.Pop() }

// renderNodes walks a node list, writing each node's rendered text to the
// render state's output buffer in order (spec §5).
func (rc *renderState) renderNodes(nodes []Node) error {
	for _, n := range nodes {
		if err := rc.renderNode(n); err != nil {
			return err
		}
	}
	return nil
}

func (rc *renderState) renderNode(n Node) error {
	switch node := n.(type) {
	case StaticNode:
		rc.out.WriteString(node.Text)
		return nil

	case PlaceholderNode:
		value, err := rc.scopes.Resolve(node.Path)
		if err != nil {
			return err
		}
		text, err := formatValue(value, node.Alignment, node.HasAlign, node.Format, node.HasFormat, rc.provider)
		if err != nil {
			return err
		}
		rc.out.WriteString(text)
		return nil

	case InlineTagNode:
		text, err := node.Def.GetText(rc.scopes, rc.provider, node.Args)
		if err != nil {
			return err
		}
		rc.out.WriteString(text)
		return nil

	case CompoundTagNode:
		return node.Def.RenderBody(node.Args, &BodyRenderer{rc: rc, node: node})

	default:
		return nil
	}
}

// RenderOption configures a single Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	resolver PropertyResolver
	provider FormatProvider
}

// WithPropertyResolver overrides DefaultPropertyResolver for one Render call.
func WithPropertyResolver(r PropertyResolver) RenderOption {
	return func(c *renderConfig) { c.resolver = r }
}

// WithFormatProvider overrides DefaultFormatProvider for one Render call.
func WithFormatProvider(p FormatProvider) RenderOption {
	return func(c *renderConfig) { c.provider = p }
}

// Render walks the compiled tree against data, producing its text (spec
// §5). A Generator is immutable once compiled, so concurrent Render calls
// with independent data and options are safe.
func (g *Generator) Render(data any, opts ...RenderOption) (string, error) {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	provider := cfg.provider
	if provider == nil {
		provider = DefaultFormatProvider{}
	}

	rc := &renderState{
		scopes:   NewScopeStack(data, cfg.resolver),
		provider: provider,
		out:      &strings.Builder{},
	}
	if err := rc.renderNodes(g.root); err != nil {
		return "", err
	}
	return rc.out.String(), nil
}
