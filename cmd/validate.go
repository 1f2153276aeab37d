package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/navstyle/internal/questionbank"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := questionbank.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions in %d sections\n",
			args[0], bank.Len(), len(bank.Sections()))
		return nil
	},
}
