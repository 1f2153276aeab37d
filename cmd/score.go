package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/navstyle/internal/assessment"
	"github.com/abhisek/navstyle/internal/questionbank"
	"github.com/abhisek/navstyle/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a full set of answers without the terminal UI",
	Long: "Score drives an assessment with the given answers and prints the report.\n" +
		"Every question must be answered. A numeric VALUE is a scale rating for\n" +
		"likert questions; any other VALUE is an option id.",
	Example: "  navstyle score --answer comm-1=b --answer comm-2=4 --answer comm-3=a \\\n" +
		"    --answer collab-1=b --answer collab-2=5",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		raw, _ := cmd.Flags().GetStringArray("answer")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}

		report, err := scoreAnswers(e.bank, answers, e.logger)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringArray("answer", nil, "Answer as QUESTION_ID=VALUE (repeatable)")
	scoreCmd.Flags().Bool("json", false, "Print the report as JSON")
}

// parseAnswers turns ID=VALUE pairs into a map. A question answered twice
// keeps the last value.
func parseAnswers(pairs []string) (map[string]string, error) {
	answers := make(map[string]string, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		id, value = strings.TrimSpace(id), strings.TrimSpace(value)
		if !ok || id == "" || value == "" {
			return nil, fmt.Errorf("invalid answer %q: want QUESTION_ID=VALUE", p)
		}
		answers[id] = value
	}
	return answers, nil
}

// scoreAnswers runs a session over bank with the given answers and
// aggregates the result.
func scoreAnswers(bank *questionbank.Bank, answers map[string]string, logger *slog.Logger) (scoring.Report, error) {
	var unknown []string
	for id := range answers {
		if _, ok := bank.Lookup(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return scoring.Report{}, fmt.Errorf("unknown question ids: %s", strings.Join(unknown, ", "))
	}

	s := assessment.New(bank, logger)
	for !s.Completed() {
		q := s.Current()
		raw, ok := answers[q.ID]
		if !ok {
			return scoring.Report{}, fmt.Errorf("question %q is unanswered", q.ID)
		}
		v := answerValue(q, raw)
		if v.IsScale() && q.Scale != nil && !q.Scale.Contains(v.Scale()) {
			return scoring.Report{}, fmt.Errorf("question %q: rating %d outside %d-%d",
				q.ID, v.Scale(), q.Scale.Min, q.Scale.Max)
		}
		if err := s.SelectOption(v); err != nil {
			return scoring.Report{}, fmt.Errorf("select %s: %w", q.ID, err)
		}
		if err := s.Advance(); err != nil {
			return scoring.Report{}, fmt.Errorf("advance past %s: %w", q.ID, err)
		}
	}
	return scoring.Aggregate(s.Responses()), nil
}

// answerValue interprets raw for q: integers are scale ratings on likert
// questions, everything else is an option id.
func answerValue(q questionbank.Question, raw string) assessment.Value {
	if q.Kind == questionbank.KindLikert {
		if n, err := strconv.Atoi(raw); err == nil {
			return assessment.ScaleValue(n)
		}
	}
	return assessment.OptionValue(raw)
}

func printReport(w io.Writer, r scoring.Report) {
	fmt.Fprintf(w, "Style:               %s\n", r.StyleLabel)
	fmt.Fprintf(w, "Overall CQ:          %d\n", r.Overall)
	fmt.Fprintf(w, "Development focus:   %s\n", r.RecommendationType)
	fmt.Fprintln(w)
	title := cases.Title(language.English)
	for _, b := range r.Buckets() {
		fmt.Fprintf(w, "  %-18s %3d\n", title.String(b.Name), b.Score)
	}
}
