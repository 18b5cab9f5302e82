package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/cpplyzer/cpp/parser"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool
	var dumpTokens bool
	var defines []string
	var definesFile string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a C++ file and dump the tree; '-' reads stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			definitions, err := loadDefinitions(definesFile, defines)
			if err != nil {
				return err
			}

			var p *parser.Parser
			if filename == "-" {
				p, err = parser.NewFromReader(os.Stdin,
					parser.WithFile("<stdin>"),
					parser.WithDefinitions(definitions))
				if err != nil {
					return err
				}
			} else {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read source file: %w", err)
				}
				p = parser.New(data,
					parser.WithFile(filepath.Base(filename)),
					parser.WithDefinitions(definitions))
			}

			if dumpTokens {
				p.DumpTokens(os.Stdout)
				return nil
			}

			node := p.Parse()

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "tree":
				if includePositions {
					fmt.Print(node.StringWithPositions())
				} else {
					fmt.Print(node.String())
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			for _, diagnostic := range p.Errors() {
				fmt.Fprintln(os.Stderr, diagnostic)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include spans in tree output")
	cmd.Flags().BoolVar(&dumpTokens, "tokens", false, "dump the token stream instead of parsing")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "preprocessor definition NAME=VALUE (repeatable)")
	cmd.Flags().StringVar(&definesFile, "defines", "", "YAML file with preprocessor definitions")

	return cmd
}
