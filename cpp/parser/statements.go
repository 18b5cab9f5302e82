package parser

// parseStatement dispatches on the current token. Expression
// statements are represented by the expression node itself, with the
// trailing semicolon consumed here.
func (p *Parser) parseStatement(parent *Node) *Node {
	switch {
	case p.match(TokenSemicolon):
		// Empty statement.
		p.consume()
		return nil
	case p.matchBlockStatement():
		return p.parseBlockStatement(parent)
	case p.matchKeyword("return"):
		return p.parseReturnStatement(parent)
	case p.matchKeyword("if"):
		return p.parseIfStatement(parent)
	case p.matchKeyword("for"):
		return p.parseForStatement(parent)
	case p.matchKeyword("while"):
		return p.parseWhileStatement(parent)
	case p.matchVariableDeclaration():
		return p.parseVariableDeclaration(parent, true)
	default:
		expr := p.parseExpression(parent)
		p.consumeKind(TokenSemicolon)
		return expr
	}
}

func (p *Parser) matchBlockStatement() bool {
	return p.match(TokenLBrace)
}

func (p *Parser) parseBlockStatement(parent *Node) *Node {
	block := p.createASTNode(parent, KindBlockStatement)
	p.consumeKind(TokenLBrace)
	for !p.Eof() && !p.match(TokenRBrace) {
		block.AddChild(p.parseStatement(block))
	}
	p.consumeKind(TokenRBrace)
	return p.finishNode(block)
}

func (p *Parser) parseReturnStatement(parent *Node) *Node {
	ret := p.createASTNode(parent, KindReturnStatement)
	p.consumeKeyword("return")
	if !p.match(TokenSemicolon) {
		ret.AddChild(p.parseExpression(ret))
	}
	p.consumeKind(TokenSemicolon)
	return p.finishNode(ret)
}

// parseIfStatement: children are predicate, then-branch and, when an
// else clause is present, the else-branch (else-if chains nest as an
// IfStatement in the else slot).
func (p *Parser) parseIfStatement(parent *Node) *Node {
	stmt := p.createASTNode(parent, KindIfStatement)
	p.consumeKeyword("if")
	p.consumeKind(TokenLParen)
	stmt.AddChild(p.parseExpression(stmt))
	p.consumeKind(TokenRParen)
	stmt.AddChild(p.parseStatement(stmt))
	if p.matchKeyword("else") {
		p.consume()
		stmt.AddChild(p.parseStatement(stmt))
	}
	return p.finishNode(stmt)
}

func (p *Parser) parseForStatement(parent *Node) *Node {
	stmt := p.createASTNode(parent, KindForStatement)
	p.consumeKeyword("for")
	p.consumeKind(TokenLParen)

	if !p.match(TokenSemicolon) {
		stmt.AddChild(p.parseVariableDeclaration(stmt, false))
	}
	p.consumeKind(TokenSemicolon)

	if !p.match(TokenSemicolon) {
		stmt.AddChild(p.parseExpression(stmt))
	}
	p.consumeKind(TokenSemicolon)

	if !p.match(TokenRParen) {
		stmt.AddChild(p.parseExpression(stmt))
	}
	p.consumeKind(TokenRParen)

	stmt.AddChild(p.parseStatement(stmt))
	return p.finishNode(stmt)
}

func (p *Parser) parseWhileStatement(parent *Node) *Node {
	stmt := p.createASTNode(parent, KindWhileStatement)
	p.consumeKeyword("while")
	p.consumeKind(TokenLParen)
	stmt.AddChild(p.parseExpression(stmt))
	p.consumeKind(TokenRParen)
	stmt.AddChild(p.parseStatement(stmt))
	return p.finishNode(stmt)
}
