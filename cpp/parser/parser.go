package parser

import (
	"fmt"
	"io"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.filename = path
	}
}

// WithDefinitions supplies the preprocessor definitions table used for
// macro substitution during token setup.
func WithDefinitions(defs Definitions) Option {
	return func(p *Parser) {
		p.definitions = defs
	}
}

// parseState is a snapshot of everything a speculative probe may
// mutate. Diagnostics and arena entries are restored by truncating
// back to the recorded lengths.
type parseState struct {
	tokenIndex int
	errorCount int
	nodeCount  int
}

type Parser struct {
	filename    string
	source      []byte
	definitions Definitions

	tokens   []Token
	comments []Token
	eofToken Token
	replaced []Substitution

	index     int
	errors    []string
	nodes     []*Node
	saved     []parseState
	root      *Node
	dummy     *Node
	exprDepth int
}

// New builds a parser over source. Tokenization (including macro
// substitution from the definitions table) happens here, once; the
// token list is immutable afterwards.
func New(source []byte, opts ...Option) *Parser {
	p := &Parser{
		source:      source,
		definitions: Definitions{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.initializeProgramTokens()
	return p
}

// NewFromReader reads all of r and builds a parser over the contents.
func NewFromReader(r io.Reader, opts ...Option) (*Parser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return New(data, opts...), nil
}

// Parse builds the tree. It always returns a non-nil TranslationUnit,
// regardless of how malformed the input is; problems are recorded in
// Errors. Repeated calls return the same root.
func (p *Parser) Parse() *Node {
	if p.root != nil {
		return p.root
	}
	root := p.createRootASTNode()
	p.parseDeclarationsInTranslationUnit(root)
	root.Span.End = p.eofToken.Span.End
	return root
}

// Eof reports whether the cursor has consumed every token.
func (p *Parser) Eof() bool {
	return p.index >= len(p.tokens)
}

func (p *Parser) RootNode() *Node {
	return p.root
}

// Errors returns the ordered diagnostics recorded so far.
func (p *Parser) Errors() []string {
	return p.errors
}

// Definitions returns the preprocessor definitions table the parser
// was constructed with.
func (p *Parser) Definitions() Definitions {
	return p.definitions
}

// Comments returns the comment tokens collected during token setup,
// in source order.
func (p *Parser) Comments() []Token {
	return p.comments
}

// Tokens returns the grammar token list (whitespace, comments and
// preprocessor directives excluded).
func (p *Parser) Tokens() []Token {
	return p.tokens
}

// DumpTokens writes a listing of the token stream, for debugging.
func (p *Parser) DumpTokens(w io.Writer) {
	for _, tok := range p.tokens {
		fmt.Fprintf(w, "%s %q %s-%s\n", tok.Kind, tok.Literal, tok.Span.Start, tok.Span.End)
	}
}

// Cursor

func (p *Parser) peek() Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) Token {
	if p.index+n >= len(p.tokens) {
		return p.eofToken
	}
	return p.tokens[p.index+n]
}

// consume returns the current token and advances. At EOF it returns
// the sentinel without moving, so callers can never run past the end.
func (p *Parser) consume() Token {
	tok := p.peek()
	if p.index < len(p.tokens) {
		p.index++
	}
	return tok
}

// consumeKind advances unconditionally. A mismatch is recorded as a
// diagnostic, not a failure: skipping the unexpected token is the
// recovery strategy.
func (p *Parser) consumeKind(kind TokenKind) Token {
	tok := p.peek()
	if tok.Kind != kind {
		p.error(fmt.Sprintf("expected %s, got %s", kind, tok.Kind))
	}
	return p.consume()
}

func (p *Parser) consumeKeyword(keyword string) Token {
	tok := p.peek()
	if tok.Kind != TokenKeyword || tok.Literal != keyword {
		p.error(fmt.Sprintf("expected keyword %q, got %q", keyword, tok.Literal))
	}
	return p.consume()
}

func (p *Parser) match(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) matchKeyword(keyword string) bool {
	tok := p.peek()
	return tok.Kind == TokenKeyword && tok.Literal == keyword
}

// Backtracking

func (p *Parser) saveState() {
	p.saved = append(p.saved, parseState{
		tokenIndex: p.index,
		errorCount: len(p.errors),
		nodeCount:  len(p.nodes),
	})
}

// loadState pops the most recent snapshot. Every saveState must be
// paired with exactly one loadState on all code paths; an unbalanced
// pair is a bug in the grammar engine, not a recoverable condition.
func (p *Parser) loadState() {
	state := p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
	p.index = state.tokenIndex
	p.errors = p.errors[:state.errorCount]
	p.nodes = p.nodes[:state.nodeCount]
}

// Diagnostics

// error appends a diagnostic. An empty message derives a default from
// the token under the cursor. Parsing always continues.
func (p *Parser) error(message string) {
	if message == "" {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			message = "unexpected end of file"
		} else {
			message = fmt.Sprintf("unexpected token %s (%q)", tok.Kind, tok.Literal)
		}
	}
	pos := p.peek().Span.Start
	p.errors = append(p.errors, fmt.Sprintf("%s:%d:%d: %s", p.filename, pos.Line, pos.Column, message))
}

// Arena

// createASTNode allocates a node owned by parent. Nodes whose parent
// is the shared dummy sentinel are probe scaffolding and stay out of
// the authoritative list, so position queries never see them.
func (p *Parser) createASTNode(parent *Node, kind NodeKind) *Node {
	start := p.peek().Span.Start
	node := &Node{
		Kind:   kind,
		Parent: parent,
		Span:   Span{Start: start, End: start},
	}
	if parent == nil || !parent.dummy {
		p.nodes = append(p.nodes, node)
	}
	return node
}

func (p *Parser) createRootASTNode() *Node {
	start := Position{File: p.filename, Line: 1, Column: 1}
	if len(p.tokens) > 0 {
		start = p.tokens[0].Span.Start
	}
	node := &Node{
		Kind: KindTranslationUnit,
		Span: Span{Start: start, End: start},
	}
	p.nodes = append(p.nodes, node)
	p.root = node
	return node
}

// finishNode clips the span to what was actually consumed. When the
// cursor ran off the end, the node is extended to end-of-input.
func (p *Parser) finishNode(node *Node) *Node {
	if p.index >= len(p.tokens) {
		node.Span.End = p.eofToken.Span.End
	} else if p.index > 0 {
		node.Span.End = p.tokens[p.index-1].Span.End
	}
	return node
}

// createTokenNode allocates a leaf node covering exactly one token.
func (p *Parser) createTokenNode(parent *Node, kind NodeKind, tok Token) *Node {
	node := &Node{
		Kind:   kind,
		Parent: parent,
		Span:   tok.Span,
		Token:  &tok,
		Name:   tok.Literal,
	}
	if parent == nil || !parent.dummy {
		p.nodes = append(p.nodes, node)
	}
	return node
}

// dummyNode returns the lazily built shared sentinel that speculative
// code paths parent throwaway nodes under.
func (p *Parser) dummyNode() *Node {
	if p.dummy == nil {
		p.dummy = &Node{Kind: KindDummy, dummy: true}
	}
	return p.dummy
}

// Nodes returns the authoritative node list in creation order.
func (p *Parser) Nodes() []*Node {
	return p.nodes
}
