package main

import (
	"github.com/dhamidi/cpplyzer/cpp/codebase"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	var verbosity int
	var defines []string
	var definesFile string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			definitions, err := loadDefinitions(definesFile, defines)
			if err != nil {
				return err
			}

			server := codebase.NewLSPServer(version, definitions)
			return server.RunStdio()
		},
	}

	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "preprocessor definition NAME=VALUE (repeatable)")
	cmd.Flags().StringVar(&definesFile, "defines", "", "YAML file with preprocessor definitions")

	return cmd
}
