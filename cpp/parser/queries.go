package parser

// NodeAt returns the smallest node whose span contains pos. Ties go to
// the node created later, which is the deeper and therefore more
// specific one. Returns nil when no node covers the position.
func (p *Parser) NodeAt(pos Position) *Node {
	if index, ok := p.IndexOfNodeAt(pos); ok {
		return p.nodes[index]
	}
	return nil
}

// IndexOfNodeAt returns the arena index of the node NodeAt would
// return.
func (p *Parser) IndexOfNodeAt(pos Position) (int, bool) {
	best := -1
	for i, node := range p.nodes {
		if !node.Span.Contains(pos) {
			continue
		}
		if best < 0 || spanSize(node.Span) <= spanSize(p.nodes[best].Span) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// EofNode returns the most recently created node, which tooling uses
// to anchor the end of the parsed input.
func (p *Parser) EofNode() *Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[len(p.nodes)-1]
}

// TokenAt returns the token whose span contains pos.
func (p *Parser) TokenAt(pos Position) (Token, bool) {
	if index, ok := p.IndexOfTokenAt(pos); ok {
		return p.tokens[index], true
	}
	return Token{}, false
}

func (p *Parser) IndexOfTokenAt(pos Position) (int, bool) {
	for i, tok := range p.tokens {
		if tok.Span.Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// TextOfNode returns the exact source substring covered by the node's
// span.
func (p *Parser) TextOfNode(node *Node) string {
	if node == nil {
		return ""
	}
	return p.TextInRange(node.Span.Start, node.Span.End)
}

func (p *Parser) TextOfToken(tok Token) string {
	return p.TextInRange(tok.Span.Start, tok.Span.End)
}

// TextInRange returns the source text between two positions,
// half-open. Offsets are recomputed from line and column so that
// caller-constructed positions work the same as lexer-produced ones.
func (p *Parser) TextInRange(start, end Position) string {
	from := p.offsetOf(start)
	to := p.offsetOf(end)
	if from > to {
		from, to = to, from
	}
	return string(p.source[from:to])
}

// offsetOf maps a line/column pair to a byte offset. Columns past the
// end of a line clamp to that line's newline, not to end-of-file.
func (p *Parser) offsetOf(pos Position) int {
	line, column := 1, 1
	for i := 0; i < len(p.source); i++ {
		if line > pos.Line {
			return i
		}
		if line == pos.Line {
			if column == pos.Column {
				return i
			}
			if p.source[i] == '\n' {
				return i
			}
		}
		if p.source[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return len(p.source)
}

// spanSize orders spans by extent: fewer lines first, then fewer
// columns. The absolute value is meaningless, only the ordering
// matters.
func spanSize(s Span) int {
	if s.Start.Line == s.End.Line {
		return s.End.Column - s.Start.Column
	}
	return (s.End.Line - s.Start.Line) * 10000
}
