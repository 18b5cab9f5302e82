package parser

import "strconv"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span is a half-open [Start, End) range over the source text.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether pos lies inside the span.
func (s Span) Contains(pos Position) bool {
	if pos.Line < s.Start.Line {
		return false
	}
	if pos.Line == s.Start.Line && pos.Column < s.Start.Column {
		return false
	}
	if pos.Line > s.End.Line {
		return false
	}
	if pos.Line == s.End.Line && pos.Column >= s.End.Column {
		return false
	}
	return true
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenUnknown
	TokenWhitespace
	TokenComment
	TokenLineComment
	TokenPreprocessor

	TokenIdent
	TokenKeyword
	TokenKnownType

	// Literals
	TokenInteger
	TokenFloat
	TokenChar
	TokenString

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenArrow
	TokenColonColon
	TokenColon
	TokenQuestion
	TokenEllipsis
	TokenAttributeOpen
	TokenAttributeClose

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenBitXor
	TokenBitAnd
	TokenBitOr
	TokenBitNot
	TokenNot
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenIncrement
	TokenDecrement
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:            "EOF",
	TokenUnknown:        "Unknown",
	TokenWhitespace:     "Whitespace",
	TokenComment:        "Comment",
	TokenLineComment:    "LineComment",
	TokenPreprocessor:   "Preprocessor",
	TokenIdent:          "Identifier",
	TokenKeyword:        "Keyword",
	TokenKnownType:      "KnownType",
	TokenInteger:        "Integer",
	TokenFloat:          "Float",
	TokenChar:           "Char",
	TokenString:         "String",
	TokenLParen:         "(",
	TokenRParen:         ")",
	TokenLBrace:         "{",
	TokenRBrace:         "}",
	TokenLBracket:       "[",
	TokenRBracket:       "]",
	TokenSemicolon:      ";",
	TokenComma:          ",",
	TokenDot:            ".",
	TokenArrow:          "->",
	TokenColonColon:     "::",
	TokenColon:          ":",
	TokenQuestion:       "?",
	TokenEllipsis:       "...",
	TokenAttributeOpen:  "[[",
	TokenAttributeClose: "]]",
	TokenPlus:           "+",
	TokenMinus:          "-",
	TokenStar:           "*",
	TokenSlash:          "/",
	TokenPercent:        "%",
	TokenBitXor:         "^",
	TokenBitAnd:         "&",
	TokenBitOr:          "|",
	TokenBitNot:         "~",
	TokenNot:            "!",
	TokenAssign:         "=",
	TokenPlusAssign:     "+=",
	TokenMinusAssign:    "-=",
	TokenEQ:             "==",
	TokenNE:             "!=",
	TokenLT:             "<",
	TokenLE:             "<=",
	TokenGT:             ">",
	TokenGE:             ">=",
	TokenAnd:            "&&",
	TokenOr:             "||",
	TokenIncrement:      "++",
	TokenDecrement:      "--",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]bool{
	"break":            true,
	"case":             true,
	"class":            true,
	"const":            true,
	"const_cast":       true,
	"constexpr":        true,
	"continue":         true,
	"default":          true,
	"delete":           true,
	"do":               true,
	"dynamic_cast":     true,
	"else":             true,
	"enum":             true,
	"extern":           true,
	"false":            true,
	"for":              true,
	"goto":             true,
	"if":               true,
	"inline":           true,
	"mutable":          true,
	"namespace":        true,
	"new":              true,
	"nullptr":          true,
	"operator":         true,
	"override":         true,
	"private":          true,
	"protected":        true,
	"public":           true,
	"reinterpret_cast": true,
	"return":           true,
	"sizeof":           true,
	"static":           true,
	"static_cast":      true,
	"struct":           true,
	"switch":           true,
	"template":         true,
	"this":             true,
	"true":             true,
	"typedef":          true,
	"typename":         true,
	"using":            true,
	"virtual":          true,
	"volatile":         true,
	"while":            true,
}

var knownTypes = map[string]bool{
	"auto":     true,
	"bool":     true,
	"char":     true,
	"double":   true,
	"float":    true,
	"int":      true,
	"long":     true,
	"short":    true,
	"signed":   true,
	"unsigned": true,
	"void":     true,
	"wchar_t":  true,
}

func LookupKeyword(ident string) TokenKind {
	if knownTypes[ident] {
		return TokenKnownType
	}
	if keywords[ident] {
		return TokenKeyword
	}
	return TokenIdent
}
