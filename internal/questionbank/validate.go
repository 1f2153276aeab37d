package questionbank

import (
	"fmt"
	"strings"
)

// ValidationError describes one problem with one question.
type ValidationError struct {
	QuestionID string
	Field      string
	Message    string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("question %q: %s", e.QuestionID, e.Message)
	}
	return fmt.Sprintf("question %q: %s: %s", e.QuestionID, e.Field, e.Message)
}

// ValidationErrors collects every problem found in a bank.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("invalid question bank:\n  %s", strings.Join(msgs, "\n  "))
}

// validateQuestions performs the structural checks the schema cannot express.
func validateQuestions(questions []Question) ValidationErrors {
	var errs ValidationErrors
	add := func(id, field, format string, args ...any) {
		errs = append(errs, ValidationError{QuestionID: id, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(questions) == 0 {
		add("", "", "bank has no questions")
		return errs
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			add(q.ID, "id", "must not be empty")
		} else if seen[q.ID] {
			add(q.ID, "id", "duplicate question id")
		}
		seen[q.ID] = true

		if !q.Kind.Valid() {
			add(q.ID, "kind", "unknown kind %q", q.Kind)
			continue
		}

		// Exactly one of options or scale, decided by kind.
		if q.Kind.UsesOptions() {
			if len(q.Options) == 0 {
				add(q.ID, "options", "required for %s questions", q.Kind)
			}
			if q.Scale != nil {
				add(q.ID, "scale", "not allowed for %s questions", q.Kind)
			}
		} else {
			if q.Scale == nil {
				add(q.ID, "scale", "required for likert questions")
			}
			if len(q.Options) > 0 {
				add(q.ID, "options", "not allowed for likert questions")
			}
		}

		optIDs := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if optIDs[o.ID] {
				add(q.ID, "options", "duplicate option id %q", o.ID)
			}
			optIDs[o.ID] = true
			if o.Score < 0 || o.Score > 100 {
				add(q.ID, "options", "option %q score %d outside 0-100", o.ID, o.Score)
			}
		}

		if q.Scale != nil && q.Scale.Min >= q.Scale.Max {
			add(q.ID, "scale", "min %d must be below max %d", q.Scale.Min, q.Scale.Max)
		}
		if q.Scale != nil && q.Scale.Min < 0 {
			add(q.ID, "scale", "min must not be negative, got %d", q.Scale.Min)
		}
		if q.Scale != nil && q.Scale.Max <= 0 {
			add(q.ID, "scale", "max must be positive, got %d", q.Scale.Max)
		}
	}

	return errs
}
