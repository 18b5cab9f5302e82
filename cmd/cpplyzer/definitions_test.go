package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefinitions(t *testing.T) {
	dir := t.TempDir()
	defsPath := filepath.Join(dir, "defines.yaml")
	if err := os.WriteFile(defsPath, []byte("VALUE: \"42\"\nNAME: app\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		file    string
		defines []string
		want    map[string]string
		wantErr bool
	}{
		{"empty", "", nil, map[string]string{}, false},
		{"flags only", "", []string{"A=1", "B=x y"}, map[string]string{"A": "1", "B": "x y"}, false},
		{"file only", defsPath, nil, map[string]string{"VALUE": "42", "NAME": "app"}, false},
		{"flag overrides file", defsPath, []string{"VALUE=7"}, map[string]string{"VALUE": "7", "NAME": "app"}, false},
		{"empty value", "", []string{"A="}, map[string]string{"A": ""}, false},
		{"missing equals", "", []string{"BROKEN"}, nil, true},
		{"empty name", "", []string{"=1"}, nil, true},
		{"missing file", filepath.Join(dir, "gone.yaml"), nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadDefinitions(tt.file, tt.defines)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for name, value := range tt.want {
				if got[name] != value {
					t.Errorf("%s = %q, want %q", name, got[name], value)
				}
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		line    int
		column  int
		wantErr bool
	}{
		{"3:7", 3, 7, false},
		{"1:1", 1, 1, false},
		{"0:1", 0, 0, true},
		{"1:0", 0, 0, true},
		{"12", 0, 0, true},
		{"a:b", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			line, column, err := parsePosition(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if line != tt.line || column != tt.column {
				t.Errorf("got %d:%d, want %d:%d", line, column, tt.line, tt.column)
			}
		})
	}
}
