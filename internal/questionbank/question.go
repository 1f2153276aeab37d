package questionbank

import "slices"

// Kind is the presentation and scoring type of a question.
type Kind string

const (
	KindScenario        Kind = "scenario"
	KindLikert          Kind = "likert"
	KindMultipleChoice  Kind = "multiple-choice"
	KindPerceptionCheck Kind = "perception-check"
)

// AllKinds returns every supported kind in display order.
func AllKinds() []Kind {
	return []Kind{KindScenario, KindLikert, KindMultipleChoice, KindPerceptionCheck}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return slices.Contains(AllKinds(), k)
}

// UsesOptions reports whether questions of this kind carry an option list.
// Likert questions carry a scale instead.
func (k Kind) UsesOptions() bool {
	return k != KindLikert
}

// DisplayName returns the badge label shown next to a question.
func (k Kind) DisplayName() string {
	switch k {
	case KindScenario:
		return "Scenario"
	case KindLikert:
		return "Scale Rating"
	case KindPerceptionCheck:
		return "Knowledge Check"
	case KindMultipleChoice:
		return "Multiple Choice"
	default:
		return string(k)
	}
}

// Option is one selectable answer of an option-based question.
type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"` // 0-100
}

// Scale bounds the integer rating of a likert question.
type Scale struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	MinLabel string `json:"min_label,omitempty"`
	MaxLabel string `json:"max_label,omitempty"`
}

// Points returns every selectable value from Min to Max inclusive.
func (s Scale) Points() []int {
	if s.Max < s.Min {
		return nil
	}
	pts := make([]int, 0, s.Max-s.Min+1)
	for v := s.Min; v <= s.Max; v++ {
		pts = append(pts, v)
	}
	return pts
}

// Contains reports whether v lies within the scale bounds.
func (s Scale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Question is a single immutable assessment item.
type Question struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Section string `json:"section"`
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`

	// Options is set for option-based kinds, Scale for likert. Never both.
	Options []Option `json:"options,omitempty"`
	Scale   *Scale   `json:"scale,omitempty"`
}

// Option looks up an option by id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// ScaleMax returns the scale maximum, or 0 when the question has no scale.
func (q Question) ScaleMax() int {
	if q.Scale == nil {
		return 0
	}
	return q.Scale.Max
}
