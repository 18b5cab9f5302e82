package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/cpplyzer/cpp/parser"

	"gopkg.in/yaml.v3"
)

// loadDefinitions merges a YAML definitions file with repeated
// --define NAME=VALUE flags. Flags win over file entries.
func loadDefinitions(definesFile string, defines []string) (parser.Definitions, error) {
	result := parser.Definitions{}

	if definesFile != "" {
		data, err := os.ReadFile(definesFile)
		if err != nil {
			return nil, fmt.Errorf("read definitions file: %w", err)
		}
		var fromFile map[string]string
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("parse definitions file %s: %w", definesFile, err)
		}
		for name, value := range fromFile {
			result[name] = value
		}
	}

	for _, define := range defines {
		name, value, found := strings.Cut(define, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid definition %q (expected NAME=VALUE)", define)
		}
		result[name] = value
	}

	return result, nil
}
