package mustache

import (
	"strconv"
	"strings"
)

// Lexer converts template text into a flat Token stream (spec §4.1). It is
// restartable and always terminates in a TokenEOF token.
type Lexer struct {
	src       string
	pos       int
	line, col int
}

// NewLexer constructs a Lexer over template text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize scans the entire source and returns the resulting token stream.
func Tokenize(src string) ([]Token, error) {
	lx := NewLexer(src)
	var tokens []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (lx *Lexer) next() (Token, error) {
	if lx.pos >= len(lx.src) {
		return Token{Type: TokenEOF, Line: lx.line, Col: lx.col}, nil
	}
	if strings.HasPrefix(lx.src[lx.pos:], "{{") {
		return lx.lexTag()
	}
	return lx.lexLiteral(), nil
}

// lexLiteral consumes the longest run not starting with "{{".
func (lx *Lexer) lexLiteral() Token {
	startLine, startCol := lx.line, lx.col
	start := lx.pos
	for lx.pos < len(lx.src) && !strings.HasPrefix(lx.src[lx.pos:], "{{") {
		lx.advance()
	}
	return Token{Type: TokenLiteral, Text: lx.src[start:lx.pos], Line: startLine, Col: startCol}
}

func (lx *Lexer) advance() {
	if lx.src[lx.pos] == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	lx.pos++
}

// lexTag consumes a {{...}} tag and classifies it.
func (lx *Lexer) lexTag() (Token, error) {
	startLine, startCol := lx.line, lx.col
	lx.advance()
	lx.advance() // consume "{{"

	innerStart := lx.pos
	for lx.pos < len(lx.src) && !strings.HasPrefix(lx.src[lx.pos:], "}}") {
		lx.advance()
	}
	if lx.pos >= len(lx.src) {
		return Token{}, parseErrorf(startLine, startCol, ErrUnterminatedTag, "unterminated tag, missing '}}'")
	}
	inner := lx.src[innerStart:lx.pos]
	lx.advance()
	lx.advance() // consume "}}"

	switch {
	case strings.HasPrefix(inner, "#!"):
		return Token{Type: TokenComment, Text: strings.TrimSpace(inner[2:]), Line: startLine, Col: startCol}, nil
	case strings.HasPrefix(inner, "#"):
		fields := strings.Fields(inner[1:])
		if len(fields) == 0 {
			return Token{}, parseErrorf(startLine, startCol, ErrBadArguments, "empty tag name")
		}
		return Token{Type: TokenOpen, Name: fields[0], Args: fields[1:], Line: startLine, Col: startCol}, nil
	case strings.HasPrefix(inner, "/"):
		name := strings.TrimSpace(inner[1:])
		if name == "" {
			return Token{}, parseErrorf(startLine, startCol, ErrBadArguments, "empty closing tag name")
		}
		return Token{Type: TokenClose, Name: name, Line: startLine, Col: startCol}, nil
	default:
		return lx.lexPlaceholder(inner, startLine, startCol)
	}
}

// lexPlaceholder parses "PATH[,ALIGN][:FORMAT]" out of a bare tag's inner
// text.
func (lx *Lexer) lexPlaceholder(inner string, line, col int) (Token, error) {
	rest := inner
	format := ""
	hasFormat := false
	if idx := strings.Index(rest, ":"); idx >= 0 {
		hasFormat = true
		format = rest[idx+1:]
		rest = rest[:idx]
	}

	path := rest
	alignment := 0
	hasAlign := false
	if idx := strings.Index(rest, ","); idx >= 0 {
		path = rest[:idx]
		alignText := strings.TrimSpace(rest[idx+1:])
		n, err := strconv.Atoi(alignText)
		if err != nil {
			return Token{}, parseErrorf(line, col, ErrBadArguments, "invalid alignment %q", alignText)
		}
		alignment = n
		hasAlign = true
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return Token{}, parseErrorf(line, col, ErrBadArguments, "empty placeholder path")
	}

	return Token{
		Type:      TokenPlaceholder,
		Path:      path,
		Alignment: alignment,
		HasAlign:  hasAlign,
		Format:    format,
		HasFormat: hasFormat,
		Line:      line,
		Col:       col,
	}, nil
}
