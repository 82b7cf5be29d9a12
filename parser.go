package mustache

// frame is one open compound tag on the parser's stack (spec §4.2). A
// subsectioning frame (if) accumulates its current branch in curBody and
// moves it into subsections each time elif/else is encountered; a plain
// frame (each/with) accumulates directly into body.
type frame struct {
	name    string
	def     CompoundTagDefinition
	args    []Arg
	openTok Token

	subsectioning bool
	subTag        subsectioningTag
	curName       string
	curArgs       []Arg
	curBody       []Node
	subsections   []Subsection

	body []Node
}

type parser struct {
	tokens   []Token
	pos      int
	registry *TagRegistry
	stack    []*frame
	root     []Node
}

// parseTokens builds a Generator node tree from a standalone-line-stripped
// token stream (spec §4.2).
func parseTokens(tokens []Token, registry *TagRegistry) ([]Node, error) {
	p := &parser{tokens: tokens, registry: registry}
	for {
		tok := p.tokens[p.pos]
		if tok.Type == TokenEOF {
			break
		}
		p.pos++

		var err error
		switch tok.Type {
		case TokenLiteral:
			if tok.Text != "" {
				p.emit(StaticNode{Text: tok.Text})
			}
		case TokenPlaceholder:
			p.emit(PlaceholderNode{
				Path:      tok.Path,
				Alignment: tok.Alignment,
				HasAlign:  tok.HasAlign,
				Format:    tok.Format,
				HasFormat: tok.HasFormat,
			})
		case TokenComment:
			p.emit(InlineTagNode{Def: commentTag{}})
		case TokenOpen:
			err = p.handleOpen(tok)
		case TokenClose:
			err = p.handleClose(tok)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		return nil, parseErrorf(top.openTok.Line, top.openTok.Col, ErrUnterminatedTag, "tag %q was never closed", top.name)
	}
	return p.root, nil
}

// emit appends a node to whatever the innermost open frame is currently
// collecting, or to the root if the stack is empty.
func (p *parser) emit(n Node) {
	if len(p.stack) == 0 {
		p.root = append(p.root, n)
		return
	}
	top := p.stack[len(p.stack)-1]
	if top.subsectioning {
		top.curBody = append(top.curBody, n)
	} else {
		top.body = append(top.body, n)
	}
}

// tagAllowedHere decides whether tok.Name may legally open here (spec §4.3:
// "the caller supplies the set of parent tags under which the new tag is
// valid"). An open frame's own ChildTags() takes precedence: if it names
// tok.Name explicitly, that settles it regardless of top-level status. With
// no open frame, or when the open frame's ChildTags() doesn't mention
// tok.Name, a tag is legal only if the registry marks it top-level.
func (p *parser) tagAllowedHere(name string) bool {
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		for _, child := range top.def.ChildTags() {
			if child == name {
				return true
			}
		}
	}
	return p.registry.IsTopLevel(name)
}

func (p *parser) handleOpen(tok Token) error {
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.subsectioning {
			if params, ok := top.subTag.SubsectionParameters(tok.Name); ok {
				return p.openSubsection(top, tok, params)
			}
		}
	}

	if tok.Name == "elif" || tok.Name == "else" {
		return parseErrorf(tok.Line, tok.Col, ErrUnexpectedTag, "%q is only valid inside an if block", tok.Name)
	}

	def, ok := p.registry.Tag(tok.Name)
	if !ok {
		return parseErrorf(tok.Line, tok.Col, ErrUnknownTag, "%q is not a registered tag", tok.Name)
	}
	if !p.tagAllowedHere(tok.Name) {
		return parseErrorf(tok.Line, tok.Col, ErrUnexpectedTag, "%q is not valid here", tok.Name)
	}

	args, err := bindArguments(def, tok.Args)
	if err != nil {
		return err
	}

	if !def.HasCloser() {
		idef, ok := def.(InlineTagDefinition)
		if !ok {
			return parseErrorf(tok.Line, tok.Col, ErrBadArguments, "%q has no usable definition", tok.Name)
		}
		p.emit(InlineTagNode{Def: idef, Args: args})
		return nil
	}

	cdef, ok := def.(CompoundTagDefinition)
	if !ok {
		return parseErrorf(tok.Line, tok.Col, ErrBadArguments, "%q declares a closer but has no body renderer", tok.Name)
	}

	f := &frame{name: tok.Name, def: cdef, args: args, openTok: tok}
	if subTag, ok := cdef.(subsectioningTag); ok {
		f.subsectioning = true
		f.subTag = subTag
		f.curName = tok.Name
		f.curArgs = args
	}
	p.stack = append(p.stack, f)
	return nil
}

// openSubsection starts a new branch (elif/else) of an open subsectioning
// frame, closing out whichever branch was previously accumulating.
func (p *parser) openSubsection(top *frame, tok Token, params []TagParameter) error {
	if top.curName == "else" {
		if tok.Name == "else" {
			return parseErrorf(tok.Line, tok.Col, ErrDuplicateElse, "if block already has an else")
		}
		return parseErrorf(tok.Line, tok.Col, ErrUnexpectedTag, "%q cannot follow else", tok.Name)
	}

	args, err := bindSubsectionArgs(tok.Name, params, tok.Args)
	if err != nil {
		return err
	}

	top.subsections = append(top.subsections, Subsection{Name: top.curName, Args: top.curArgs, Body: top.curBody})
	top.curName = tok.Name
	top.curArgs = args
	top.curBody = nil
	return nil
}

func bindSubsectionArgs(name string, params []TagParameter, raw []string) ([]Arg, error) {
	var args []Arg
	for i, p := range params {
		if i >= len(raw) {
			if p.Required {
				return nil, errBadArgs("missing required argument %q for %q", p.Name, name)
			}
			args = append(args, Arg{Param: p})
			continue
		}
		args = append(args, Arg{Param: p, Raw: raw[i]})
	}
	if len(raw) > len(params) {
		return nil, errBadArgs("too many arguments for %q", name)
	}
	return args, nil
}

func (p *parser) handleClose(tok Token) error {
	if len(p.stack) == 0 {
		return parseErrorf(tok.Line, tok.Col, ErrUnmatchedClose, "%q has no matching opener", tok.Name)
	}
	top := p.stack[len(p.stack)-1]
	if top.name != tok.Name {
		return parseErrorf(tok.Line, tok.Col, ErrUnmatchedClose, "expected closer for %q, found %q", top.name, tok.Name)
	}
	p.stack = p.stack[:len(p.stack)-1]

	var node CompoundTagNode
	if top.subsectioning {
		top.subsections = append(top.subsections, Subsection{Name: top.curName, Args: top.curArgs, Body: top.curBody})
		node = CompoundTagNode{Def: top.def, Subsections: top.subsections}
	} else {
		node = CompoundTagNode{Def: top.def, Args: top.args, Body: top.body}
	}
	p.emit(node)
	return nil
}
