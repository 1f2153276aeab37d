package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/navstyle/internal/questionbank"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), e.bank.All())
		}
		printQuestions(cmd.OutOrStdout(), e.bank)
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("json", false, "Print questions as JSON")
}

func printQuestions(w io.Writer, bank *questionbank.Bank) {
	fmt.Fprintf(w, "%-10s  %-16s  %-28s  %s\n", "ID", "Kind", "Section", "Prompt")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, q := range bank.All() {
		fmt.Fprintf(w, "%-10s  %-16s  %-28s  %s\n", q.ID, q.Kind, q.Section, truncate(q.Prompt, 36))

		if q.Kind.UsesOptions() {
			for _, o := range q.Options {
				fmt.Fprintf(w, "%12s %s) %-60s %3d\n", "", o.ID, truncate(o.Text, 60), o.Score)
			}
			continue
		}
		fmt.Fprintf(w, "%12s %d (%s) .. %d (%s)\n", "",
			q.Scale.Min, q.Scale.MinLabel, q.Scale.Max, q.Scale.MaxLabel)
	}

	fmt.Fprintf(w, "\n%d questions in %d sections\n", bank.Len(), len(bank.Sections()))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
