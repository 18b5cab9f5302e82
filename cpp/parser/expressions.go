package parser

// parseExpression folds secondary forms (binary operators,
// assignments, calls, member access) onto the primary expression in a
// loop. The loop makes the default associativity left-to-right;
// assignment re-enters parseExpression for its right-hand side and so
// binds right-to-left.
// maxExpressionDepth bounds expression nesting so pathological input
// like thousands of opening parentheses cannot exhaust the stack.
const maxExpressionDepth = 256

func (p *Parser) parseExpression(parent *Node) *Node {
	if p.exprDepth >= maxExpressionDepth {
		p.error("expression nesting too deep")
		node := p.createASTNode(parent, KindInvalid)
		if !p.Eof() {
			p.consume()
		}
		return p.finishNode(node)
	}
	p.exprDepth++
	defer func() { p.exprDepth-- }()

	expr := p.parsePrimaryExpression(parent)
	for p.matchSecondaryExpression() {
		expr = p.parseSecondaryExpression(parent, expr)
	}
	return expr
}

func (p *Parser) matchExpression() bool {
	return p.matchLiteral() ||
		p.matchName() ||
		p.matchUnaryExpression() ||
		p.matchCppCastExpression() ||
		p.matchCStyleCastExpression() ||
		p.matchSizeofExpression() ||
		p.matchBracedInitList() ||
		p.match(TokenLParen)
}

// parsePrimaryExpression tries the overlapping prefix forms in fixed
// order; the first probe that matches wins. On total failure it
// records a diagnostic, consumes one token and returns a placeholder
// node, which keeps expression loops terminating on garbage input.
func (p *Parser) parsePrimaryExpression(parent *Node) *Node {
	switch {
	case p.matchUnaryExpression():
		return p.parseUnaryExpression(parent)
	case p.match(TokenLParen):
		if p.matchCStyleCastExpression() {
			return p.parseCStyleCastExpression(parent)
		}
		p.consume()
		expr := p.parseExpression(parent)
		p.consumeKind(TokenRParen)
		return expr
	case p.matchBracedInitList():
		return p.parseBracedInitList(parent)
	case p.matchLiteral():
		return p.parseLiteral(parent)
	case p.matchCppCastExpression():
		return p.parseCppCastExpression(parent)
	case p.matchSizeofExpression():
		return p.parseSizeofExpression(parent)
	case p.matchName():
		return p.parseName(parent)
	}

	p.error("expected primary expression")
	node := p.createASTNode(parent, KindInvalid)
	if !p.Eof() {
		p.consume()
	}
	return p.finishNode(node)
}

// Secondary forms

var binaryOperatorTokens = map[TokenKind]bool{
	TokenPlus:    true,
	TokenMinus:   true,
	TokenStar:    true,
	TokenSlash:   true,
	TokenPercent: true,
	TokenBitXor:  true,
	TokenBitAnd:  true,
	TokenBitOr:   true,
	TokenLT:      true,
	TokenLE:      true,
	TokenGT:      true,
	TokenGE:      true,
	TokenEQ:      true,
	TokenNE:      true,
	TokenAnd:     true,
	TokenOr:      true,
}

var assignmentOperatorTokens = map[TokenKind]bool{
	TokenAssign:      true,
	TokenPlusAssign:  true,
	TokenMinusAssign: true,
}

func (p *Parser) matchSecondaryExpression() bool {
	kind := p.peek().Kind
	return binaryOperatorTokens[kind] ||
		assignmentOperatorTokens[kind] ||
		kind == TokenLParen ||
		kind == TokenDot ||
		kind == TokenArrow
}

func (p *Parser) parseSecondaryExpression(parent *Node, lhs *Node) *Node {
	kind := p.peek().Kind
	switch {
	case binaryOperatorTokens[kind]:
		return p.parseBinaryExpression(parent, lhs)
	case assignmentOperatorTokens[kind]:
		return p.parseAssignmentExpression(parent, lhs)
	case kind == TokenLParen:
		return p.parseFunctionCall(parent, lhs)
	case kind == TokenDot || kind == TokenArrow:
		return p.parseMemberExpression(parent, lhs)
	}
	p.error("expected secondary expression")
	return lhs
}

// parseBinaryExpression takes only a primary expression on the right;
// the enclosing loop folds further operators in from the left.
func (p *Parser) parseBinaryExpression(parent *Node, lhs *Node) *Node {
	expr := p.createASTNode(parent, KindBinaryExpression)
	expr.Span.Start = lhs.Span.Start
	expr.Operator = p.consume().Literal
	expr.AddChild(lhs)
	expr.AddChild(p.parsePrimaryExpression(expr))
	return p.finishNode(expr)
}

func (p *Parser) parseAssignmentExpression(parent *Node, lhs *Node) *Node {
	expr := p.createASTNode(parent, KindAssignmentExpression)
	expr.Span.Start = lhs.Span.Start
	expr.Operator = p.consume().Literal
	expr.AddChild(lhs)
	expr.AddChild(p.parseExpression(expr))
	return p.finishNode(expr)
}

func (p *Parser) parseFunctionCall(parent *Node, callee *Node) *Node {
	call := p.createASTNode(parent, KindFunctionCall)
	call.Span.Start = callee.Span.Start
	call.AddChild(callee)
	p.consumeKind(TokenLParen)
	for !p.Eof() && !p.match(TokenRParen) {
		call.AddChild(p.parseExpression(call))
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	p.consumeKind(TokenRParen)
	return p.finishNode(call)
}

func (p *Parser) parseMemberExpression(parent *Node, object *Node) *Node {
	expr := p.createASTNode(parent, KindMemberExpression)
	expr.Span.Start = object.Span.Start
	expr.Operator = p.consume().Literal // . or ->
	expr.AddChild(object)
	expr.AddChild(p.parseName(expr))
	return p.finishNode(expr)
}

// Unary expressions

func (p *Parser) matchUnaryExpression() bool {
	switch p.peek().Kind {
	case TokenMinus, TokenPlus, TokenNot, TokenBitNot, TokenIncrement, TokenDecrement, TokenBitAnd, TokenStar:
		return true
	}
	return false
}

func (p *Parser) parseUnaryExpression(parent *Node) *Node {
	expr := p.createASTNode(parent, KindUnaryExpression)
	expr.Operator = p.consume().Literal
	expr.AddChild(p.parsePrimaryExpression(expr))
	return p.finishNode(expr)
}

// Literals

func (p *Parser) matchLiteral() bool {
	switch p.peek().Kind {
	case TokenInteger, TokenFloat, TokenChar, TokenString:
		return true
	}
	return p.matchBooleanLiteral() || p.matchKeyword("nullptr")
}

func (p *Parser) matchBooleanLiteral() bool {
	return p.matchKeyword("true") || p.matchKeyword("false")
}

func (p *Parser) parseLiteral(parent *Node) *Node {
	switch {
	case p.match(TokenString):
		return p.parseStringLiteral(parent)
	case p.match(TokenInteger), p.match(TokenFloat):
		tok := p.consume()
		return p.createTokenNode(parent, KindNumericLiteral, tok)
	case p.match(TokenChar):
		tok := p.consume()
		return p.createTokenNode(parent, KindCharLiteral, tok)
	case p.matchBooleanLiteral():
		return p.parseBooleanLiteral(parent)
	case p.matchKeyword("nullptr"):
		tok := p.consume()
		return p.createTokenNode(parent, KindNullPointerLiteral, tok)
	}
	p.error("expected literal")
	node := p.createASTNode(parent, KindInvalid)
	return p.finishNode(node)
}

// parseStringLiteral merges adjacent string tokens into one node, the
// way C++ concatenates adjacent literals.
func (p *Parser) parseStringLiteral(parent *Node) *Node {
	lit := p.createASTNode(parent, KindStringLiteral)
	tok := p.consumeKind(TokenString)
	lit.Token = &tok
	for p.match(TokenString) {
		p.consume()
	}
	return p.finishNode(lit)
}

func (p *Parser) parseBooleanLiteral(parent *Node) *Node {
	tok := p.consume()
	return p.createTokenNode(parent, KindBooleanLiteral, tok)
}

// Casts

var cppCastKeywords = []string{"static_cast", "dynamic_cast", "reinterpret_cast", "const_cast"}

func (p *Parser) matchCppCastExpression() bool {
	for _, kw := range cppCastKeywords {
		if p.matchKeyword(kw) {
			return true
		}
	}
	return false
}

func (p *Parser) parseCppCastExpression(parent *Node) *Node {
	cast := p.createASTNode(parent, KindCppCastExpression)
	cast.Operator = p.consume().Literal
	p.consumeKind(TokenLT)
	cast.AddChild(p.parseType(cast))
	p.consumeKind(TokenGT)
	p.consumeKind(TokenLParen)
	cast.AddChild(p.parseExpression(cast))
	p.consumeKind(TokenRParen)
	return p.finishNode(cast)
}

// matchCStyleCastExpression probes the "(type) expression" shape,
// whose prefix overlaps with a parenthesized expression. First match
// wins; the probe order in parsePrimaryExpression is the sole
// disambiguation.
func (p *Parser) matchCStyleCastExpression() bool {
	p.saveState()
	defer p.loadState()

	if !p.match(TokenLParen) {
		return false
	}
	p.consume()

	if !p.matchType() {
		return false
	}
	p.parseType(p.dummyNode())

	if !p.match(TokenRParen) {
		return false
	}
	p.consume()

	return p.matchExpression()
}

func (p *Parser) parseCStyleCastExpression(parent *Node) *Node {
	cast := p.createASTNode(parent, KindCStyleCastExpression)
	p.consumeKind(TokenLParen)
	cast.AddChild(p.parseType(cast))
	p.consumeKind(TokenRParen)
	cast.AddChild(p.parseExpression(cast))
	return p.finishNode(cast)
}

// sizeof

func (p *Parser) matchSizeofExpression() bool {
	return p.matchKeyword("sizeof")
}

func (p *Parser) parseSizeofExpression(parent *Node) *Node {
	expr := p.createASTNode(parent, KindSizeofExpression)
	p.consumeKeyword("sizeof")
	p.consumeKind(TokenLParen)
	expr.AddChild(p.parseType(expr))
	p.consumeKind(TokenRParen)
	return p.finishNode(expr)
}

// Braced init lists

func (p *Parser) matchBracedInitList() bool {
	return p.match(TokenLBrace)
}

func (p *Parser) parseBracedInitList(parent *Node) *Node {
	list := p.createASTNode(parent, KindBracedInitList)
	p.consumeKind(TokenLBrace)
	for !p.Eof() && !p.match(TokenRBrace) {
		list.AddChild(p.parseExpression(list))
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	p.consumeKind(TokenRBrace)
	return p.finishNode(list)
}
