package parser

import (
	"strings"
	"testing"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindTranslationUnit, "TranslationUnit"},
		{KindFunctionDefinition, "FunctionDefinition"},
		{KindVariableDeclaration, "VariableDeclaration"},
		{KindBinaryExpression, "BinaryExpression"},
		{NodeKind(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAddChildIgnoresNil(t *testing.T) {
	n := &Node{Kind: KindBlockStatement}
	n.AddChild(nil)
	if len(n.Children) != 0 {
		t.Errorf("nil child was appended: %v", n.Children)
	}
	n.AddChild(&Node{Kind: KindReturnStatement})
	if len(n.Children) != 1 {
		t.Errorf("got %d children, want 1", len(n.Children))
	}
}

func TestFirstChildOfKind(t *testing.T) {
	parent := &Node{Kind: KindTranslationUnit}
	first := &Node{Kind: KindVariableDeclaration, Name: "a"}
	second := &Node{Kind: KindVariableDeclaration, Name: "b"}
	parent.AddChild(&Node{Kind: KindEnumDeclaration})
	parent.AddChild(first)
	parent.AddChild(second)

	if got := parent.FirstChildOfKind(KindVariableDeclaration); got != first {
		t.Errorf("got %v, want first variable", got)
	}
	if got := parent.FirstChildOfKind(KindClassDeclaration); got != nil {
		t.Errorf("got %v for absent kind, want nil", got)
	}
	if got := parent.ChildrenOfKind(KindVariableDeclaration); len(got) != 2 {
		t.Errorf("ChildrenOfKind returned %d nodes, want 2", len(got))
	}
}

// Probe scaffolding hangs off the shared dummy sentinel; committed
// nodes never report as dummy.
func TestIsDummy(t *testing.T) {
	p := New([]byte("int x;"), WithFile("test.cpp"))
	if !p.dummyNode().IsDummy() {
		t.Error("dummy sentinel does not report as dummy")
	}
	p.Parse()
	for _, node := range p.Nodes() {
		if node.IsDummy() {
			t.Errorf("arena node %v reports as dummy", node.Kind)
		}
	}
}

func TestIsDeclaration(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want bool
	}{
		{KindFunctionDeclaration, true},
		{KindFunctionDefinition, true},
		{KindVariableDeclaration, true},
		{KindNamespaceDeclaration, true},
		{KindConstructor, true},
		{KindDestructor, true},
		{KindBinaryExpression, false},
		{KindBlockStatement, false},
		{KindType, false},
	}
	for _, tt := range tests {
		n := &Node{Kind: tt.kind}
		if got := n.IsDeclaration(); got != tt.want {
			t.Errorf("IsDeclaration(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestNodeString(t *testing.T) {
	p := parseSource(t, "int main() { return 0; }")
	out := p.RootNode().String()

	for _, want := range []string{"TranslationUnit", "FunctionDefinition main", "BlockStatement", "ReturnStatement", "NumericLiteral 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree dump missing %q:\n%s", want, out)
		}
	}
}

func TestNodeStringWithPositions(t *testing.T) {
	p := parseSource(t, "int x;")
	out := p.RootNode().StringWithPositions()
	if !strings.Contains(out, "[1:1-") {
		t.Errorf("tree dump missing positions:\n%s", out)
	}
}

func TestSpanContains(t *testing.T) {
	span := Span{Start: pos(1, 5), End: pos(1, 8)}

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"start is inside", pos(1, 5), true},
		{"middle", pos(1, 6), true},
		{"end is outside", pos(1, 8), false},
		{"before", pos(1, 4), false},
		{"earlier line", pos(0, 6), false},
		{"later line", pos(2, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := span.Contains(tt.pos); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestMultiLineSpanContains(t *testing.T) {
	span := Span{Start: pos(2, 5), End: pos(4, 2)}

	tests := []struct {
		pos  Position
		want bool
	}{
		{pos(2, 5), true},
		{pos(3, 1), true},
		{pos(3, 999), true},
		{pos(4, 1), true},
		{pos(4, 2), false},
		{pos(2, 4), false},
	}

	for _, tt := range tests {
		if got := span.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
