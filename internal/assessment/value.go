package assessment

import "strconv"

// Value is a selection for one question: either an option id or a scale point.
type Value struct {
	optionID string
	scale    int
	isScale  bool
	set      bool
}

// OptionValue selects the option with the given id.
func OptionValue(id string) Value {
	return Value{optionID: id, set: true}
}

// ScaleValue selects a point on a likert scale.
func ScaleValue(n int) Value {
	return Value{scale: n, isScale: true, set: true}
}

// IsZero reports whether v holds no selection.
func (v Value) IsZero() bool { return !v.set }

// IsScale reports whether v is a scale point.
func (v Value) IsScale() bool { return v.isScale }

// OptionID returns the selected option id ("" for scale values).
func (v Value) OptionID() string { return v.optionID }

// Scale returns the selected scale point (0 for option values).
func (v Value) Scale() int { return v.scale }

func (v Value) String() string {
	switch {
	case !v.set:
		return ""
	case v.isScale:
		return strconv.Itoa(v.scale)
	default:
		return v.optionID
	}
}
