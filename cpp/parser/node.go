package parser

type NodeKind int

const (
	KindInvalid NodeKind = iota

	KindTranslationUnit

	// Declarations
	KindFunctionDeclaration
	KindFunctionDefinition
	KindVariableDeclaration
	KindEnumDeclaration
	KindClassDeclaration
	KindNamespaceDeclaration
	KindConstructor
	KindDestructor
	KindAccessSpecifier
	KindParameter
	KindBaseClause

	// Types
	KindType
	KindPointer
	KindReference
	KindTemplateArguments

	// Statements
	KindBlockStatement
	KindReturnStatement
	KindIfStatement
	KindForStatement
	KindWhileStatement

	// Expressions
	KindBinaryExpression
	KindAssignmentExpression
	KindUnaryExpression
	KindFunctionCall
	KindMemberExpression
	KindCStyleCastExpression
	KindCppCastExpression
	KindSizeofExpression
	KindBracedInitList
	KindStringLiteral
	KindNumericLiteral
	KindCharLiteral
	KindBooleanLiteral
	KindNullPointerLiteral
	KindName
	KindIdentifier

	KindDummy
)

var nodeKindNames = map[NodeKind]string{
	KindInvalid:              "Invalid",
	KindTranslationUnit:      "TranslationUnit",
	KindFunctionDeclaration:  "FunctionDeclaration",
	KindFunctionDefinition:   "FunctionDefinition",
	KindVariableDeclaration:  "VariableDeclaration",
	KindEnumDeclaration:      "EnumDeclaration",
	KindClassDeclaration:     "ClassDeclaration",
	KindNamespaceDeclaration: "NamespaceDeclaration",
	KindConstructor:          "Constructor",
	KindDestructor:           "Destructor",
	KindAccessSpecifier:      "AccessSpecifier",
	KindParameter:            "Parameter",
	KindBaseClause:           "BaseClause",
	KindType:                 "Type",
	KindPointer:              "Pointer",
	KindReference:            "Reference",
	KindTemplateArguments:    "TemplateArguments",
	KindBlockStatement:       "BlockStatement",
	KindReturnStatement:      "ReturnStatement",
	KindIfStatement:          "IfStatement",
	KindForStatement:         "ForStatement",
	KindWhileStatement:       "WhileStatement",
	KindBinaryExpression:     "BinaryExpression",
	KindAssignmentExpression: "AssignmentExpression",
	KindUnaryExpression:      "UnaryExpression",
	KindFunctionCall:         "FunctionCall",
	KindMemberExpression:     "MemberExpression",
	KindCStyleCastExpression: "CStyleCastExpression",
	KindCppCastExpression:    "CppCastExpression",
	KindSizeofExpression:     "SizeofExpression",
	KindBracedInitList:       "BracedInitList",
	KindStringLiteral:        "StringLiteral",
	KindNumericLiteral:       "NumericLiteral",
	KindCharLiteral:          "CharLiteral",
	KindBooleanLiteral:       "BooleanLiteral",
	KindNullPointerLiteral:   "NullPointerLiteral",
	KindName:                 "Name",
	KindIdentifier:           "Identifier",
	KindDummy:                "Dummy",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is the shared header of every AST variant. The Kind tag decides
// which payload fields are meaningful: declarations carry Name and
// Qualifiers, expressions carry Operator, literals and names carry
// Token. Parent is fixed at creation and never reassigned.
type Node struct {
	Kind       NodeKind
	Span       Span
	Parent     *Node
	Children   []*Node
	Token      *Token
	Name       string
	Operator   string
	Qualifiers []string
	dummy      bool
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsDummy() bool {
	return n.dummy
}

func (n *Node) IsDeclaration() bool {
	switch n.Kind {
	case KindFunctionDeclaration, KindFunctionDefinition, KindVariableDeclaration,
		KindEnumDeclaration, KindClassDeclaration, KindNamespaceDeclaration,
		KindConstructor, KindDestructor:
		return true
	}
	return false
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Kind.String()
	if showPositions {
		result += " [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]"
	}
	if n.Name != "" {
		result += " " + n.Name
	} else if n.Token != nil {
		result += " " + n.Token.Literal
	}
	if n.Operator != "" {
		result += " " + n.Operator
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, showPositions)
	}
	return result
}
