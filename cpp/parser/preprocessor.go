package parser

// Definitions maps a macro name to its resolved value. The table is
// supplied by the caller; this package consumes it but never computes
// definitions itself.
type Definitions map[string]string

// Substitution records one macro replacement performed during token
// setup: the original identifier token and the value it resolved to.
type Substitution struct {
	Token Token
	Value string
}

// ReplacedPreprocessorTokens returns the ordered macro-substitution
// log, so tooling can show both the macro reference and what it
// expanded to without re-running a preprocessor.
func (p *Parser) ReplacedPreprocessorTokens() []Substitution {
	return p.replaced
}

// initializeProgramTokens runs the lexer once over the source,
// filtering whitespace and preprocessor directives, collecting
// comments aside, and splicing in definition values for identifiers
// that name a macro.
func (p *Parser) initializeProgramTokens() {
	lexer := NewLexer(p.source, p.filename)
	for {
		tok := lexer.NextToken()
		switch tok.Kind {
		case TokenEOF:
			p.eofToken = tok
			return
		case TokenWhitespace, TokenPreprocessor:
			continue
		case TokenComment, TokenLineComment:
			p.comments = append(p.comments, tok)
			continue
		case TokenIdent:
			if value, ok := p.definitions[tok.Literal]; ok {
				p.addTokensForPreprocessor(tok, value)
				continue
			}
		}
		p.tokens = append(p.tokens, tok)
	}
}

// addTokensForPreprocessor lexes the defined value and splices its
// tokens into the stream in place of the macro reference. Every
// spliced token keeps the reference's span so position queries map
// back to the use site. Substitution is single-level: values are not
// scanned for further macro names.
func (p *Parser) addTokensForPreprocessor(replaced Token, value string) {
	p.replaced = append(p.replaced, Substitution{Token: replaced, Value: value})

	lexer := NewLexer([]byte(value), p.filename)
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			return
		}
		if tok.Kind == TokenWhitespace || tok.Kind == TokenComment || tok.Kind == TokenLineComment {
			continue
		}
		tok.Span = replaced.Span
		p.tokens = append(p.tokens, tok)
	}
}
