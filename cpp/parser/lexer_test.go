package parser

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"class", []TokenKind{TokenKeyword, TokenEOF}},
		{"int", []TokenKind{TokenKnownType, TokenEOF}},
		{"main", []TokenKind{TokenIdent, TokenEOF}},
		{"int main() {}", []TokenKind{TokenKnownType, TokenIdent, TokenLParen, TokenRParen, TokenLBrace, TokenRBrace, TokenEOF}},
		{"123", []TokenKind{TokenInteger, TokenEOF}},
		{"0x1F", []TokenKind{TokenInteger, TokenEOF}},
		{"42u", []TokenKind{TokenInteger, TokenEOF}},
		{"3.14", []TokenKind{TokenFloat, TokenEOF}},
		{"3.14f", []TokenKind{TokenFloat, TokenEOF}},
		{"1e10", []TokenKind{TokenFloat, TokenEOF}},
		{"\"hello\"", []TokenKind{TokenString, TokenEOF}},
		{"'a'", []TokenKind{TokenChar, TokenEOF}},
		{"'\\n'", []TokenKind{TokenChar, TokenEOF}},
		{"+ - * / %", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenEOF}},
		{"== != < <= > >=", []TokenKind{TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE, TokenEOF}},
		{"&& || !", []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{"& | ^ ~", []TokenKind{TokenBitAnd, TokenBitOr, TokenBitXor, TokenBitNot, TokenEOF}},
		{"++ --", []TokenKind{TokenIncrement, TokenDecrement, TokenEOF}},
		{"-> . ::", []TokenKind{TokenArrow, TokenDot, TokenColonColon, TokenEOF}},
		{"= += -=", []TokenKind{TokenAssign, TokenPlusAssign, TokenMinusAssign, TokenEOF}},
		{"...", []TokenKind{TokenEllipsis, TokenEOF}},
		{"[[nodiscard]]", []TokenKind{TokenAttributeOpen, TokenIdent, TokenAttributeClose, TokenEOF}},
		{"[0]", []TokenKind{TokenLBracket, TokenInteger, TokenRBracket, TokenEOF}},
		{"static_cast", []TokenKind{TokenKeyword, TokenEOF}},
		{"nullptr", []TokenKind{TokenKeyword, TokenEOF}},
		{"$", []TokenKind{TokenUnknown, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.cpp")
			var got []TokenKind
			for {
				tok := lexer.NextToken()
				if tok.Kind != TokenWhitespace && tok.Kind != TokenComment && tok.Kind != TokenLineComment {
					got = append(got, tok.Kind)
				}
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  TokenKind
	}{
		{"line comment", "// hello", TokenLineComment},
		{"block comment", "/* hello */", TokenComment},
		{"unterminated block comment", "/* hello", TokenComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.cpp")
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("got %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerPreprocessorDirective(t *testing.T) {
	input := "#include <stdio.h>\nint x;"
	lexer := NewLexer([]byte(input), "test.cpp")

	tok := lexer.NextToken()
	if tok.Kind != TokenPreprocessor {
		t.Fatalf("got %v, want Preprocessor", tok.Kind)
	}
	if tok.Literal != "#include <stdio.h>" {
		t.Errorf("literal = %q", tok.Literal)
	}
}

func TestLexerHashInsideLineIsNotADirective(t *testing.T) {
	lexer := NewLexer([]byte("x # y"), "test.cpp")
	var kinds []TokenKind
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenWhitespace {
			continue
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == TokenEOF {
			break
		}
	}
	want := []TokenKind{TokenIdent, TokenUnknown, TokenIdent, TokenEOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerPositions(t *testing.T) {
	lexer := NewLexer([]byte("int\nmain"), "test.cpp")

	tok := lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 1 {
		t.Errorf("int starts at %v, want 1:1", tok.Span.Start)
	}
	if tok.Span.End.Line != 1 || tok.Span.End.Column != 4 {
		t.Errorf("int ends at %v, want 1:4", tok.Span.End)
	}

	lexer.NextToken() // whitespace
	tok = lexer.NextToken()
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 1 {
		t.Errorf("main starts at %v, want 2:1", tok.Span.Start)
	}
}
