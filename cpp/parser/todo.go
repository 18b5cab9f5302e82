package parser

import "strings"

// TodoEntry is a comment-derived marker, independent of the grammar.
type TodoEntry struct {
	Content  string
	Filename string
	Line     int
	Column   int
}

var todoMarkers = []string{"TODO", "FIXME"}

// TodoEntries projects the collected comment tokens onto the TODO
// markers they start with. Purely derived data; parsing decisions are
// never influenced by it.
func (p *Parser) TodoEntries() []TodoEntry {
	var entries []TodoEntry
	for _, tok := range p.comments {
		content, ok := todoContent(tok.Literal)
		if !ok {
			continue
		}
		entries = append(entries, TodoEntry{
			Content:  content,
			Filename: p.filename,
			Line:     tok.Span.Start.Line,
			Column:   tok.Span.Start.Column,
		})
	}
	return entries
}

func todoContent(comment string) (string, bool) {
	text := comment
	switch {
	case strings.HasPrefix(text, "//"):
		text = text[2:]
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	text = strings.TrimSpace(text)

	for _, marker := range todoMarkers {
		if !strings.HasPrefix(text, marker) {
			continue
		}
		rest := text[len(marker):]
		rest = strings.TrimPrefix(rest, ":")
		return strings.TrimSpace(rest), true
	}
	return "", false
}
