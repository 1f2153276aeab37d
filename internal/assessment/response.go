package assessment

import "github.com/abhisek/navstyle/internal/questionbank"

// DefaultOptionScore is the score given to an option selection that matches
// none of the question's options.
const DefaultOptionScore = 50

// Response is the recorded answer to one question. Question fields are
// copied at answer time so later bank changes do not affect it.
type Response struct {
	QuestionID string
	Section    string
	Kind       questionbank.Kind
	ScaleMax   int

	RawValue Value

	// DerivedScore is the option score (0-100) for option kinds and the raw
	// scale point for likert. Likert normalization happens during aggregation.
	DerivedScore float64
}

// NewResponse snapshots q and resolves the derived score for v.
func NewResponse(q questionbank.Question, v Value) Response {
	return Response{
		QuestionID:   q.ID,
		Section:      q.Section,
		Kind:         q.Kind,
		ScaleMax:     q.ScaleMax(),
		RawValue:     v,
		DerivedScore: resolveScore(q, v),
	}
}

// resolveScore applies the per-kind resolution rule.
func resolveScore(q questionbank.Question, v Value) float64 {
	if q.Kind == questionbank.KindLikert {
		// An option id on a likert question has no scale point.
		return float64(v.Scale())
	}
	if score, ok := lookupOptionScore(q, v); ok {
		return float64(score)
	}
	return DefaultOptionScore
}

// lookupOptionScore finds the score of the selected option, if any.
func lookupOptionScore(q questionbank.Question, v Value) (int, bool) {
	if v.IsScale() {
		return 0, false
	}
	o, ok := q.Option(v.OptionID())
	if !ok {
		return 0, false
	}
	return o.Score, true
}
