package mustache

// Compiler turns template text into a compiled Generator (spec §6),
// against a TagRegistry that starts out holding the built-in tags and can
// be extended with RegisterTag before Compile is called.
type Compiler struct {
	registry *TagRegistry
}

// CompilerOption configures a Compiler at construction.
type CompilerOption func(*Compiler)

// WithTagRegistry replaces the compiler's registry outright, bypassing the
// built-in registration NewCompiler otherwise performs. Most callers
// should use RegisterTag instead.
func WithTagRegistry(r *TagRegistry) CompilerOption {
	return func(c *Compiler) { c.registry = r }
}

// NewCompiler returns a Compiler preloaded with if/each/with/#!.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{registry: NewTagRegistry()}
	registerBuiltins(c.registry)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterTag installs a custom tag definition (spec §6). isTopLevel
// reports whether the tag may appear outside any other tag's body;
// re-registering a name replaces its previous definition.
func (c *Compiler) RegisterTag(def TagDefinition, isTopLevel bool) {
	c.registry.Register(def, isTopLevel)
}

// Compile parses template text into a Generator. An empty template is an
// error (spec §7's ErrNullTemplate); every other compile-time failure is
// reported as a *ParseError wrapping one of the sentinels in errors.go.
func (c *Compiler) Compile(template string) (*Generator, error) {
	if template == "" {
		return nil, ErrNullTemplate
	}

	tokens, err := Tokenize(template)
	if err != nil {
		return nil, err
	}
	tokens = stripStandaloneLines(tokens)

	root, err := parseTokens(tokens, c.registry)
	if err != nil {
		return nil, err
	}
	return &Generator{root: root}, nil
}
