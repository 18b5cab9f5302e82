package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/cpplyzer/cpp/codebase"
	"github.com/dhamidi/cpplyzer/cpp/parser"

	"github.com/spf13/cobra"
)

func newTodosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos <path>",
		Short: "List TODO and FIXME comments in a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			var entries []parser.TodoEntry
			if info.IsDir() {
				c := codebase.New(path, nil)
				if err := c.ScanAll(); err != nil {
					return fmt.Errorf("scan %s: %w", path, err)
				}
				entries = c.TodoEntries()
			} else {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				p := parser.New(data, parser.WithFile(filepath.Base(path)))
				entries = p.TodoEntries()
			}

			for _, entry := range entries {
				fmt.Printf("%s:%d:%d: %s\n", entry.Filename, entry.Line, entry.Column, entry.Content)
			}
			return nil
		},
	}

	return cmd
}
