package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhamidi/cpplyzer/cpp/parser"

	"github.com/spf13/cobra"
)

func newAtCmd() *cobra.Command {
	var showToken bool
	var defines []string
	var definesFile string

	cmd := &cobra.Command{
		Use:   "at <file> <line>:<column>",
		Short: "Show the node or token at a source position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			line, column, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			definitions, err := loadDefinitions(definesFile, defines)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			p := parser.New(data,
				parser.WithFile(filepath.Base(filename)),
				parser.WithDefinitions(definitions))
			p.Parse()

			pos := parser.Position{Line: line, Column: column}

			if showToken {
				tok, ok := p.TokenAt(pos)
				if !ok {
					return fmt.Errorf("no token at %d:%d", line, column)
				}
				fmt.Printf("%s %q %s-%s\n", tok.Kind, tok.Literal, tok.Span.Start, tok.Span.End)
				return nil
			}

			node := p.NodeAt(pos)
			if node == nil {
				return fmt.Errorf("no node at %d:%d", line, column)
			}

			fmt.Printf("%s [%s-%s]\n", node.Kind, node.Span.Start, node.Span.End)
			if node.Name != "" {
				fmt.Printf("name: %s\n", node.Name)
			}
			fmt.Println(p.TextOfNode(node))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showToken, "token", false, "show the token instead of the node")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "preprocessor definition NAME=VALUE (repeatable)")
	cmd.Flags().StringVar(&definesFile, "defines", "", "YAML file with preprocessor definitions")

	return cmd
}

func parsePosition(arg string) (line, column int, err error) {
	lineStr, columnStr, found := strings.Cut(arg, ":")
	if !found {
		return 0, 0, fmt.Errorf("invalid position %q (expected line:column)", arg)
	}
	line, err = strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return 0, 0, fmt.Errorf("invalid line in %q", arg)
	}
	column, err = strconv.Atoi(columnStr)
	if err != nil || column < 1 {
		return 0, 0, fmt.Errorf("invalid column in %q", arg)
	}
	return line, column, nil
}
