package mustache

// TagParameter describes one positional argument a tag accepts (spec §3).
type TagParameter struct {
	Name     string
	Required bool
	Default  any
	Variadic bool
}

// TagDefinition is the extension point external code implements to add a
// tag (spec §6). Built-ins (if/each/with/#!) implement it too; elif and
// else are subsections of if, not definitions of their own.
type TagDefinition interface {
	Name() string
	IsContextSensitive() bool
	HasCloser() bool
	Parameters() []TagParameter
	ChildTags() []string
}

// InlineTagDefinition is a TagDefinition with no closer; it produces text
// directly from its bound arguments, resolved against the active scope
// stack.
type InlineTagDefinition interface {
	TagDefinition
	GetText(scopes *ScopeStack, provider FormatProvider, args []Arg) (string, error)
}

// CompoundTagDefinition is a TagDefinition with a closer; it orchestrates
// rendering of its body (and any subsections) through body, which hides
// the render state so external tag definitions never need an unexported
// type to implement this interface.
type CompoundTagDefinition interface {
	TagDefinition
	RenderBody(args []Arg, body *BodyRenderer) error
}

// Arg is one bound argument: the parameter it satisfies, and the raw path
// expression text supplied at the call site (empty if the parameter's
// default was used). Resolve evaluates it against a scope stack.
type Arg struct {
	Param TagParameter
	Raw   string
	// Variadic parameters collect every excess positional argument here;
	// Raw is unused in that case.
	Variadic []string
}

// Resolve evaluates the argument's raw path expression against the scope
// stack, or returns the parameter's default if no value was supplied.
func (a Arg) Resolve(scopes *ScopeStack) (any, error) {
	if a.Raw == "" {
		return a.Param.Default, nil
	}
	return scopes.Resolve(a.Raw)
}

// bindArguments binds a tag occurrence's raw positional tokens to a tag
// definition's parameter list (spec §4.2 step 2): extra positional
// arguments beyond the last non-variadic parameter are errors unless the
// last parameter is variadic, and missing required arguments are errors.
func bindArguments(def TagDefinition, raw []string) ([]Arg, error) {
	params := def.Parameters()
	var args []Arg

	for i, p := range params {
		if p.Variadic {
			args = append(args, Arg{Param: p, Variadic: raw[i:]})
			return args, nil
		}
		if i >= len(raw) {
			if p.Required {
				return nil, errBadArgs("missing required argument %q for tag %q", p.Name, def.Name())
			}
			args = append(args, Arg{Param: p})
			continue
		}
		args = append(args, Arg{Param: p, Raw: raw[i]})
	}

	if len(params) == 0 || !params[len(params)-1].Variadic {
		if len(raw) > len(params) {
			return nil, errBadArgs("too many arguments for tag %q", def.Name())
		}
	}

	return args, nil
}

func errBadArgs(format string, args ...any) error {
	return parseErrorf(0, 0, ErrBadArguments, format, args...)
}
