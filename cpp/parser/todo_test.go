package parser

import "testing"

func TestTodoEntries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		entries []TodoEntry
	}{
		{
			"line comment with colon",
			"// TODO: fix this\nint x;",
			[]TodoEntry{{Content: "fix this", Filename: "test.cpp", Line: 1, Column: 1}},
		},
		{
			"line comment without colon",
			"// TODO fix this\nint x;",
			[]TodoEntry{{Content: "fix this", Filename: "test.cpp", Line: 1, Column: 1}},
		},
		{
			"fixme marker",
			"int x;\n// FIXME: broken\n",
			[]TodoEntry{{Content: "broken", Filename: "test.cpp", Line: 2, Column: 1}},
		},
		{
			"block comment",
			"/* TODO: later */ int x;",
			[]TodoEntry{{Content: "later", Filename: "test.cpp", Line: 1, Column: 1}},
		},
		{
			"indented comment",
			"int f() {\n    // TODO: implement\n}\n",
			[]TodoEntry{{Content: "implement", Filename: "test.cpp", Line: 2, Column: 5}},
		},
		{
			"plain comment",
			"// nothing to see\nint x;",
			nil,
		},
		{
			"marker not at start",
			"// see TODO list\nint x;",
			nil,
		},
		{
			"todo in string literal is ignored",
			`char* s = "TODO: not a comment";`,
			nil,
		},
		{
			"multiple markers",
			"// TODO: first\n// FIXME: second\n",
			[]TodoEntry{
				{Content: "first", Filename: "test.cpp", Line: 1, Column: 1},
				{Content: "second", Filename: "test.cpp", Line: 2, Column: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New([]byte(tt.input), WithFile("test.cpp"))
			got := p.TodoEntries()
			if len(got) != len(tt.entries) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.entries), got)
			}
			for i, want := range tt.entries {
				if got[i] != want {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

func TestTodoEntriesDoNotRequireParse(t *testing.T) {
	p := New([]byte("// TODO: before parsing\n"), WithFile("test.cpp"))
	if entries := p.TodoEntries(); len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if p.RootNode() != nil {
		t.Error("scanning TODOs must not build a tree")
	}
}
