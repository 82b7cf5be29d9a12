package mustache

// condParam is the single condition argument shared by if/elif/each/with.
var condParam = TagParameter{Name: "cond", Required: true}

// ifTag implements the if/elif/else compound tag (spec §3). Its own
// unconditional-vs-conditional branch is Subsections[0]; elif/else are
// recognized only as subsections of an open if frame, never as
// independently registered tags (see parser.go's subsection handling).
type ifTag struct{}

func (ifTag) Name() string              { return "if" }
func (ifTag) IsContextSensitive() bool   { return false }
func (ifTag) HasCloser() bool            { return true }
func (ifTag) Parameters() []TagParameter { return []TagParameter{condParam} }
func (ifTag) ChildTags() []string        { return []string{"elif", "else"} }

// SubsectionParameters reports the parameter list a given subsection name
// binds its own arguments against: elif takes a condition, else takes none.
func (ifTag) SubsectionParameters(name string) ([]TagParameter, bool) {
	switch name {
	case "elif":
		return []TagParameter{condParam}, true
	case "else":
		return nil, true
	default:
		return nil, false
	}
}

// RenderBody renders the first branch (in source order) whose condition is
// true; else, if present, always qualifies.
func (ifTag) RenderBody(args []Arg, body *BodyRenderer) error {
	for _, sub := range body.Subsections() {
		if sub.Name != "else" {
			cond, err := sub.Args[0].Resolve(body.Scopes())
			if err != nil {
				return err
			}
			if !isTrue(cond) {
				continue
			}
		}
		return body.RenderSubsection(sub)
	}
	return nil
}

// eachTag implements the each compound tag: it pushes every element of its
// resolved argument as the innermost scope, in order, and renders its body
// once per element.
type eachTag struct{}

func (eachTag) Name() string              { return "each" }
func (eachTag) IsContextSensitive() bool   { return true }
func (eachTag) HasCloser() bool            { return true }
func (eachTag) Parameters() []TagParameter { return []TagParameter{condParam} }
func (eachTag) ChildTags() []string        { return nil }

func (eachTag) RenderBody(args []Arg, body *BodyRenderer) error {
	value, err := args[0].Resolve(body.Scopes())
	if err != nil {
		return err
	}
	var renderErr error
	iterate(value, func(elem any) {
		if renderErr != nil {
			return
		}
		body.PushScope(elem)
		renderErr = body.RenderDefault()
		body.PopScope()
	})
	return renderErr
}

// withTag implements the with compound tag: it pushes its resolved
// argument as the innermost scope and renders its body exactly once (spec
// §3 states no truthiness gate for with, unlike if's explicit "iff <cond>
// is truthy" — see DESIGN.md).
type withTag struct{}

func (withTag) Name() string              { return "with" }
func (withTag) IsContextSensitive() bool   { return true }
func (withTag) HasCloser() bool            { return true }
func (withTag) Parameters() []TagParameter { return []TagParameter{condParam} }
func (withTag) ChildTags() []string        { return nil }

func (withTag) RenderBody(args []Arg, body *BodyRenderer) error {
	value, err := args[0].Resolve(body.Scopes())
	if err != nil {
		return err
	}
	body.PushScope(value)
	defer body.PopScope()
	return body.RenderDefault()
}

// commentTag implements the #! inline comment tag: it always renders as
// empty text, regardless of its contents.
type commentTag struct{}

func (commentTag) Name() string              { return "!" }
func (commentTag) IsContextSensitive() bool   { return false }
func (commentTag) HasCloser() bool            { return false }
func (commentTag) Parameters() []TagParameter { return nil }
func (commentTag) ChildTags() []string        { return nil }

func (commentTag) GetText(scopes *ScopeStack, provider FormatProvider, args []Arg) (string, error) {
	return "", nil
}

// subsectioningTag is implemented by a CompoundTagDefinition whose child
// tags are subsections of the same frame (recognized in place, without
// pushing a new parse frame) rather than independently nested tags.
type subsectioningTag interface {
	CompoundTagDefinition
	SubsectionParameters(name string) ([]TagParameter, bool)
}

// registerBuiltins installs if/each/with/#! into r, all as legal top-level
// tags (spec §3). elif and else are not registered directly: they are
// reached only through ifTag.ChildTags()/SubsectionParameters via the
// parser's subsection handling.
func registerBuiltins(r *TagRegistry) {
	r.Register(ifTag{}, true)
	r.Register(eachTag{}, true)
	r.Register(withTag{}, true)
	r.Register(commentTag{}, true)
}
