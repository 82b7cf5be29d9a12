package mustache

import "strings"

// qualifies reports whether a token qualifies for standalone-line elision
// (spec §4.2): control-structure openers/closers/subsection tags, or the
// comment tag. Placeholders never qualify.
func qualifies(t Token) bool {
	switch t.Type {
	case TokenOpen, TokenClose, TokenComment:
		return true
	default:
		return false
	}
}

// segment is one piece of the line-oriented view of the token stream used
// to detect standalone occurrences.
type segment struct {
	isNewline bool
	isTag     bool
	text      string // valid when !isNewline && !isTag
	tokIdx    int    // valid when isTag; index into the original token slice
}

// stripStandaloneLines implements spec §4.2's standalone-line rule as a
// token-stream pass run once before parsing (see DESIGN.md: this is
// equivalent to the per-frame pass the spec's implementation-guidance
// paragraph describes, since qualification is a line-local property of
// token adjacency, not of tree nesting).
func stripStandaloneLines(tokens []Token) []Token {
	segs := toSegments(tokens)

	lineStart := 0
	for i := 0; i <= len(segs); i++ {
		if i == len(segs) || segs[i].isNewline {
			processLine(segs, lineStart, i, tokens)
			lineStart = i + 1
		}
	}

	return fromSegments(segs, tokens)
}

func toSegments(tokens []Token) []segment {
	var segs []segment
	for i, t := range tokens {
		if t.Type == TokenLiteral {
			pieces := strings.Split(t.Text, "\n")
			for j, p := range pieces {
				if p != "" {
					segs = append(segs, segment{text: p})
				}
				if j < len(pieces)-1 {
					segs = append(segs, segment{isNewline: true})
				}
			}
			continue
		}
		if t.Type == TokenEOF {
			continue
		}
		segs = append(segs, segment{isTag: true, tokIdx: i})
	}
	return segs
}

// processLine checks whether segs[lineStart:lineEnd] (a single logical
// line, newline markers excluded) is a standalone occurrence, and if so,
// blanks its text segments so fromSegments drops them.
func processLine(segs []segment, lineStart, lineEnd int, original []Token) {
	if lineStart >= lineEnd {
		return
	}
	sawTag := false
	for i := lineStart; i < lineEnd; i++ {
		s := segs[i]
		if !s.isTag {
			if strings.TrimSpace(s.text) != "" {
				return // non-blank literal content on the line
			}
			continue
		}
		sawTag = true
		if !qualifies(original[s.tokIdx]) {
			return // a placeholder on the line blocks elision entirely
		}
	}
	if !sawTag {
		return // pure-whitespace line with no tags: nothing to elide
	}
	for i := lineStart; i < lineEnd; i++ {
		if !segs[i].isTag {
			segs[i].text = ""
		}
	}
	// Drop the newline terminating this line, if any (absent at EOF).
	if lineEnd < len(segs) && segs[lineEnd].isNewline {
		segs[lineEnd].isNewline = false
		segs[lineEnd].text = "\x00drop\x00"
	}
}

// fromSegments reassembles the token stream: consecutive text/newline
// segments are merged back into Literal tokens (dropped segments
// contribute nothing); tag segments are copied from the original tokens
// unchanged, plus the trailing EOF.
func fromSegments(segs []segment, original []Token) []Token {
	var out []Token
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, Token{Type: TokenLiteral, Text: buf.String()})
			buf.Reset()
		}
	}
	for _, s := range segs {
		switch {
		case s.isTag:
			flush()
			out = append(out, original[s.tokIdx])
		case s.text == "\x00drop\x00":
			// elided newline: contributes nothing
		case s.isNewline:
			buf.WriteByte('\n')
		default:
			buf.WriteString(s.text)
		}
	}
	flush()
	out = append(out, Token{Type: TokenEOF})
	return out
}
