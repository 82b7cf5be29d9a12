package mustache

// Node is one element of a compiled Generator tree (spec §3's "Generator
// Node"). The concrete types below are its only variants.
type Node interface {
	isNode()
}

// StaticNode is a possibly-rewritten (by standalone-line elision) literal
// run, appended verbatim.
type StaticNode struct {
	Text string
}

func (StaticNode) isNode() {}

// PlaceholderNode is a bare key interpolation: {{PATH[,ALIGN][:FORMAT]}}.
type PlaceholderNode struct {
	Path      string
	Alignment int
	HasAlign  bool
	Format    string
	HasFormat bool
}

func (PlaceholderNode) isNode() {}

// InlineTagNode is a tag with no closer, producing text directly from its
// bound arguments (e.g. the #! comment tag).
type InlineTagNode struct {
	Def  InlineTagDefinition
	Args []Arg
}

func (InlineTagNode) isNode() {}

// Subsection is one named branch of a CompoundTagNode, captured during the
// parent tag's own parse rather than as a tree sibling (spec §9) — this is
// how elif/else attach to if.
type Subsection struct {
	Name string
	Args []Arg
	Body []Node
}

// CompoundTagNode is a paired tag: definition, bound arguments, its primary
// body, and any subsections (elif/else-like branches; empty for tags that
// don't define any, such as each/with). For a subsectioning tag (if), Args
// and Body are empty and the opener's own arguments and body are held in
// Subsections[0].
type CompoundTagNode struct {
	Def         CompoundTagDefinition
	Args        []Arg
	Body        []Node
	Subsections []Subsection
}

func (CompoundTagNode) isNode() {}

// Generator is a compiled template: an immutable tree of Node, safe for
// concurrent Render calls with independent data (spec §5).
type Generator struct {
	root []Node
}
