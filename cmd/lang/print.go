package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lang/internal/diagfmt"
	"lang/internal/source"
)

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [flags] file.lang",
		Short: "Echo a lang source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbered, err := cmd.Flags().GetBool("numbered")
			if err != nil {
				return fmt.Errorf("failed to get numbered flag: %w", err)
			}
			fs := source.NewFileSet()
			fileID, err := fs.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			return diagfmt.FormatSource(cmd.OutOrStdout(), fs.Get(fileID), numbered)
		},
	}
	cmd.Flags().Bool("numbered", false, "prefix every line with its number")
	return cmd
}
