package parser

type declarationType int

const (
	declFunction declarationType = iota
	declVariable
	declEnum
	declClass
	declNamespace
	declConstructor
	declDestructor
)

// parseDeclarationsInTranslationUnit drives the top-level loop. The
// forward-progress rule lives in parseSingleDeclarationInTranslationUnit:
// when no probe matches, one token is skipped with a diagnostic, so the
// loop terminates on any input.
func (p *Parser) parseDeclarationsInTranslationUnit(parent *Node) {
	for !p.Eof() {
		decl := p.parseSingleDeclarationInTranslationUnit(parent)
		if decl != nil {
			parent.AddChild(decl)
		}
	}
}

func (p *Parser) parseSingleDeclarationInTranslationUnit(parent *Node) *Node {
	for !p.Eof() {
		if declType, ok := p.matchDeclarationInTranslationUnit(); ok {
			return p.parseDeclaration(parent, declType)
		}
		p.error("")
		p.consume()
	}
	return nil
}

// matchDeclarationInTranslationUnit probes the declaration forms in
// fixed priority order; the first match wins.
func (p *Parser) matchDeclarationInTranslationUnit() (declarationType, bool) {
	switch {
	case p.matchFunctionDeclaration():
		return declFunction, true
	case p.matchVariableDeclaration():
		return declVariable, true
	case p.matchEnumDeclaration():
		return declEnum, true
	case p.matchClassDeclaration():
		return declClass, true
	case p.matchNamespaceDeclaration():
		return declNamespace, true
	}
	return 0, false
}

func (p *Parser) parseDeclaration(parent *Node, declType declarationType) *Node {
	switch declType {
	case declFunction:
		return p.parseFunctionDeclaration(parent)
	case declVariable:
		return p.parseVariableDeclaration(parent, true)
	case declEnum:
		return p.parseEnumDeclaration(parent)
	case declClass:
		return p.parseClassDeclaration(parent)
	case declNamespace:
		return p.parseNamespaceDeclaration(parent)
	case declConstructor:
		return p.parseConstructor(parent)
	case declDestructor:
		return p.parseDestructor(parent)
	}
	p.error("unexpected declaration type")
	node := p.createASTNode(parent, KindInvalid)
	return p.finishNode(node)
}

// Functions

func (p *Parser) matchFunctionDeclaration() bool {
	p.saveState()
	defer p.loadState()

	p.parseFunctionQualifiers()
	if !p.matchType() {
		return false
	}
	p.parseType(p.dummyNode())

	if !p.match(TokenIdent) {
		return false
	}
	p.consume()

	if !p.match(TokenLParen) {
		return false
	}
	p.consume()

	if _, ok := p.parseParameterList(p.dummyNode()); !ok {
		return false
	}

	if !p.match(TokenRParen) {
		return false
	}
	p.consume()

	for p.matchKeyword("const") || p.matchKeyword("override") {
		p.consume()
	}
	p.consumeAttributeSpecification()

	return p.match(TokenSemicolon) || p.match(TokenLBrace)
}

// parseFunctionDeclaration commits a function. When a body follows,
// the node becomes a FunctionDefinition with a BlockStatement child.
func (p *Parser) parseFunctionDeclaration(parent *Node) *Node {
	fn := p.createASTNode(parent, KindFunctionDeclaration)
	fn.Qualifiers = p.parseFunctionQualifiers()

	fn.AddChild(p.parseType(fn))

	name := p.consumeKind(TokenIdent)
	fn.Name = name.Literal
	fn.Token = &name

	p.consumeKind(TokenLParen)
	params, _ := p.parseParameterList(fn)
	for _, param := range params {
		fn.AddChild(param)
	}
	p.consumeKind(TokenRParen)

	for p.matchKeyword("const") || p.matchKeyword("override") {
		fn.Qualifiers = append(fn.Qualifiers, p.consume().Literal)
	}
	p.consumeAttributeSpecification()

	if p.match(TokenLBrace) {
		fn.Kind = KindFunctionDefinition
		fn.AddChild(p.parseBlockStatement(fn))
	} else {
		p.consumeKind(TokenSemicolon)
	}
	return p.finishNode(fn)
}

// parseParameterList reads parameters up to (but not including) the
// closing parenthesis. On malformed input it reports what it has and
// false, so speculative callers can reject the function shape.
func (p *Parser) parseParameterList(parent *Node) ([]*Node, bool) {
	var params []*Node
	for !p.Eof() && !p.match(TokenRParen) {
		if p.matchEllipsis() {
			param := p.createASTNode(parent, KindParameter)
			tok := p.consume()
			param.Token = &tok
			param.Name = tok.Literal
			params = append(params, p.finishNode(param))
		} else {
			if !p.matchType() {
				p.error("expected parameter type")
				return params, false
			}
			param := p.createASTNode(parent, KindParameter)
			param.AddChild(p.parseType(param))
			if p.match(TokenIdent) {
				tok := p.consume()
				param.Token = &tok
				param.Name = tok.Literal
			}
			params = append(params, p.finishNode(param))
		}
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	return params, true
}

func (p *Parser) parseFunctionQualifiers() []string {
	var qualifiers []string
	for p.matchKeyword("inline") || p.matchKeyword("static") ||
		p.matchKeyword("extern") || p.matchKeyword("virtual") ||
		p.matchKeyword("constexpr") {
		qualifiers = append(qualifiers, p.consume().Literal)
	}
	return qualifiers
}

// Variables

func (p *Parser) matchVariableDeclaration() bool {
	p.saveState()
	defer p.loadState()

	if !p.matchType() {
		return false
	}
	p.parseType(p.dummyNode())

	if !p.match(TokenIdent) {
		return false
	}
	p.consume()

	if p.match(TokenAssign) {
		p.consume()
		if !p.matchExpression() {
			return false
		}
		p.parseExpression(p.dummyNode())
		return p.match(TokenSemicolon)
	}
	if p.matchBracedInitList() {
		p.parseBracedInitList(p.dummyNode())
	}
	return p.match(TokenSemicolon)
}

func (p *Parser) parseVariableDeclaration(parent *Node, expectSemicolon bool) *Node {
	v := p.createASTNode(parent, KindVariableDeclaration)

	v.AddChild(p.parseType(v))

	name := p.consumeKind(TokenIdent)
	v.Name = name.Literal
	v.Token = &name

	if p.match(TokenAssign) {
		p.consume()
		v.AddChild(p.parseExpression(v))
	} else if p.matchBracedInitList() {
		v.AddChild(p.parseBracedInitList(v))
	}

	if expectSemicolon {
		p.consumeKind(TokenSemicolon)
	}
	return p.finishNode(v)
}

// Enums

func (p *Parser) matchEnumDeclaration() bool {
	return p.matchKeyword("enum")
}

func (p *Parser) parseEnumDeclaration(parent *Node) *Node {
	e := p.createASTNode(parent, KindEnumDeclaration)
	p.consumeKeyword("enum")

	// Scoped enums: enum class / enum struct.
	if p.matchKeyword("class") || p.matchKeyword("struct") {
		e.Qualifiers = append(e.Qualifiers, p.consume().Literal)
	}

	name := p.consumeKind(TokenIdent)
	e.Name = name.Literal
	e.Token = &name

	p.consumeKind(TokenLBrace)
	for !p.Eof() && !p.match(TokenRBrace) {
		entryToken := p.consumeKind(TokenIdent)
		entry := p.createTokenNode(e, KindIdentifier, entryToken)
		if p.match(TokenAssign) {
			p.consume()
			entry.AddChild(p.parseExpression(entry))
			p.finishNode(entry)
		}
		e.AddChild(entry)
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	p.consumeKind(TokenRBrace)
	p.consumeKind(TokenSemicolon)
	return p.finishNode(e)
}

// Classes

func (p *Parser) matchClassDeclaration() bool {
	return p.matchKeyword("struct") || p.matchKeyword("class")
}

func (p *Parser) parseClassDeclaration(parent *Node) *Node {
	c := p.createASTNode(parent, KindClassDeclaration)

	keyword := p.consume() // struct or class
	c.Qualifiers = append(c.Qualifiers, keyword.Literal)

	name := p.consumeKind(TokenIdent)
	c.Name = name.Literal
	c.Token = &name

	// Forward declaration.
	if p.match(TokenSemicolon) {
		p.consume()
		return p.finishNode(c)
	}

	if p.match(TokenColon) {
		c.AddChild(p.parseBaseClause(c))
	}

	p.consumeKind(TokenLBrace)
	p.parseClassMembers(c)
	p.consumeKind(TokenRBrace)
	p.consumeKind(TokenSemicolon)
	return p.finishNode(c)
}

func (p *Parser) parseBaseClause(parent *Node) *Node {
	base := p.createASTNode(parent, KindBaseClause)
	p.consumeKind(TokenColon)
	for !p.Eof() {
		if p.matchKeyword("public") || p.matchKeyword("private") || p.matchKeyword("protected") || p.matchKeyword("virtual") {
			p.consume()
			continue
		}
		base.AddChild(p.parseName(base))
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	return p.finishNode(base)
}

// parseClassMembers dispatches member declarations until the closing
// brace. Same forward-progress rule as the translation-unit loop.
func (p *Parser) parseClassMembers(class *Node) {
	for !p.Eof() && !p.match(TokenRBrace) {
		if declType, ok := p.matchClassMember(class.Name); ok {
			class.AddChild(p.parseDeclaration(class, declType))
			continue
		}
		if p.matchAccessSpecifier() {
			class.AddChild(p.parseAccessSpecifier(class))
			continue
		}
		p.error("")
		p.consume()
	}
}

func (p *Parser) matchClassMember(className string) (declarationType, bool) {
	switch {
	case p.matchConstructor(className):
		return declConstructor, true
	case p.matchDestructor(className):
		return declDestructor, true
	case p.matchFunctionDeclaration():
		return declFunction, true
	case p.matchEnumDeclaration():
		return declEnum, true
	case p.matchClassDeclaration():
		return declClass, true
	case p.matchVariableDeclaration():
		return declVariable, true
	}
	return 0, false
}

func (p *Parser) matchAccessSpecifier() bool {
	if !p.matchKeyword("public") && !p.matchKeyword("private") && !p.matchKeyword("protected") {
		return false
	}
	return p.peekN(1).Kind == TokenColon
}

func (p *Parser) parseAccessSpecifier(parent *Node) *Node {
	spec := p.createASTNode(parent, KindAccessSpecifier)
	tok := p.consume()
	spec.Name = tok.Literal
	spec.Token = &tok
	p.consumeKind(TokenColon)
	return p.finishNode(spec)
}

// Constructors and destructors

func (p *Parser) matchConstructor(className string) bool {
	p.saveState()
	defer p.loadState()

	tok := p.consume()
	if tok.Literal != className {
		return false
	}

	if !p.match(TokenLParen) {
		return false
	}
	p.consume()

	if _, ok := p.parseParameterList(p.dummyNode()); !ok {
		return false
	}

	if !p.match(TokenRParen) {
		return false
	}
	p.consume()

	return p.match(TokenSemicolon) || p.match(TokenLBrace) || p.match(TokenColon)
}

func (p *Parser) matchDestructor(className string) bool {
	p.saveState()
	defer p.loadState()

	if !p.match(TokenBitNot) {
		return false
	}
	p.consume()

	tok := p.consume()
	if tok.Literal != className {
		return false
	}

	if !p.match(TokenLParen) {
		return false
	}
	p.consume()

	if !p.match(TokenRParen) {
		return false
	}
	p.consume()

	return p.match(TokenSemicolon) || p.match(TokenLBrace)
}

func (p *Parser) parseConstructor(parent *Node) *Node {
	ctor := p.createASTNode(parent, KindConstructor)
	p.parseConstructorOrDestructorImpl(ctor)
	return p.finishNode(ctor)
}

func (p *Parser) parseDestructor(parent *Node) *Node {
	dtor := p.createASTNode(parent, KindDestructor)
	p.consumeKind(TokenBitNot)
	p.parseConstructorOrDestructorImpl(dtor)
	return p.finishNode(dtor)
}

func (p *Parser) parseConstructorOrDestructorImpl(node *Node) {
	name := p.consumeKind(TokenIdent)
	node.Name = name.Literal
	node.Token = &name

	p.consumeKind(TokenLParen)
	params, _ := p.parseParameterList(node)
	for _, param := range params {
		node.AddChild(param)
	}
	p.consumeKind(TokenRParen)

	// Member initializer lists are tolerated but not modeled.
	if p.match(TokenColon) {
		for !p.Eof() && !p.match(TokenLBrace) && !p.match(TokenSemicolon) {
			p.consume()
		}
	}

	if p.match(TokenLBrace) {
		node.AddChild(p.parseBlockStatement(node))
	} else {
		p.consumeKind(TokenSemicolon)
	}
}

// Namespaces

func (p *Parser) matchNamespaceDeclaration() bool {
	return p.matchKeyword("namespace")
}

func (p *Parser) parseNamespaceDeclaration(parent *Node) *Node {
	ns := p.createASTNode(parent, KindNamespaceDeclaration)
	p.consumeKeyword("namespace")

	name := p.consumeKind(TokenIdent)
	ns.Name = name.Literal
	ns.Token = &name

	// Nested form: namespace a::b { ... }
	for p.match(TokenColonColon) {
		p.consume()
		part := p.consumeKind(TokenIdent)
		ns.Name += "::" + part.Literal
	}

	p.consumeKind(TokenLBrace)
	for !p.Eof() && !p.match(TokenRBrace) {
		if declType, ok := p.matchDeclarationInTranslationUnit(); ok {
			ns.AddChild(p.parseDeclaration(ns, declType))
			continue
		}
		p.error("")
		p.consume()
	}
	p.consumeKind(TokenRBrace)
	return p.finishNode(ns)
}

// Types

func (p *Parser) matchType() bool {
	p.saveState()
	defer p.loadState()

	p.parseTypeQualifiers()
	if p.match(TokenKnownType) {
		return true
	}
	return p.matchName()
}

func (p *Parser) parseType(parent *Node) *Node {
	typ := p.createASTNode(parent, KindType)
	typ.Qualifiers = p.parseTypeQualifiers()

	if p.match(TokenKnownType) {
		tok := p.consume()
		typ.Token = &tok
		typ.Name = tok.Literal
		// Multi-token builtins: unsigned long, long long int, ...
		for p.match(TokenKnownType) {
			next := p.consume()
			typ.Name += " " + next.Literal
		}
	} else if p.matchName() {
		name := p.parseName(typ)
		typ.AddChild(name)
		typ.Name = name.Name
	} else {
		p.error("expected type name")
	}
	result := p.finishNode(typ)

	for p.match(TokenStar) || p.match(TokenBitAnd) {
		tok := p.consume()
		kind := KindPointer
		if tok.Kind == TokenBitAnd {
			kind = KindReference
		}
		wrapper := p.createASTNode(parent, kind)
		wrapper.Span.Start = typ.Span.Start
		wrapper.AddChild(result)
		result = p.finishNode(wrapper)
	}
	return result
}

func (p *Parser) parseTypeQualifiers() []string {
	var qualifiers []string
	for p.matchKeyword("const") || p.matchKeyword("volatile") || p.matchKeyword("mutable") {
		qualifiers = append(qualifiers, p.consume().Literal)
	}
	return qualifiers
}

// Names

func (p *Parser) matchName() bool {
	kind := p.peek().Kind
	return kind == TokenIdent || kind == TokenKnownType
}

// parseName reads a possibly scope-qualified name with optional
// template arguments: a::b::c<int>. Scope components become
// Identifier children; the final component is the node's own token.
func (p *Parser) parseName(parent *Node) *Node {
	name := p.createASTNode(parent, KindName)

	for p.match(TokenIdent) && p.peekN(1).Kind == TokenColonColon {
		scope := p.consume()
		name.AddChild(p.createTokenNode(name, KindIdentifier, scope))
		p.consume() // ::
	}

	if p.match(TokenIdent) || p.match(TokenKnownType) {
		tok := p.consume()
		name.Token = &tok
		name.Name = tok.Literal
	} else {
		p.error("expected name")
	}

	if p.matchTemplateArguments() {
		name.AddChild(p.parseTemplateArguments(name))
	}
	return p.finishNode(name)
}

// Template arguments

func (p *Parser) matchTemplateArguments() bool {
	p.saveState()
	defer p.loadState()

	if !p.match(TokenLT) {
		return false
	}
	p.consume()

	for !p.Eof() && !p.match(TokenGT) {
		if !p.matchType() {
			return false
		}
		p.parseType(p.dummyNode())
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	return p.match(TokenGT)
}

func (p *Parser) parseTemplateArguments(parent *Node) *Node {
	args := p.createASTNode(parent, KindTemplateArguments)
	p.consumeKind(TokenLT)
	for !p.Eof() && !p.match(TokenGT) {
		args.AddChild(p.parseType(args))
		if !p.match(TokenComma) {
			break
		}
		p.consume()
	}
	p.consumeKind(TokenGT)
	return p.finishNode(args)
}

// Attributes

func (p *Parser) matchAttributeSpecification() bool {
	return p.match(TokenAttributeOpen)
}

// consumeAttributeSpecification skips a [[...]] block. Attributes are
// recognized so they do not derail declarations, but carry no nodes.
func (p *Parser) consumeAttributeSpecification() {
	if !p.matchAttributeSpecification() {
		return
	}
	p.consume()
	for !p.Eof() && !p.match(TokenAttributeClose) {
		p.consume()
	}
	p.consumeKind(TokenAttributeClose)
}

func (p *Parser) matchEllipsis() bool {
	return p.match(TokenEllipsis)
}
