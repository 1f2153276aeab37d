package scoring

import "testing"

func TestStyleLabel(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{100, "Diplomatic Challenger"},
		{80, "Diplomatic Challenger"},
		{79, "Empathic Moderator"},
		{70, "Empathic Moderator"},
		{69, "Assertive Analyst"},
		{60, "Assertive Analyst"},
		{59, "Developing Navigator"},
		{0, "Developing Navigator"},
	}
	for _, tt := range tests {
		if got := StyleLabel(tt.overall); got != tt.want {
			t.Errorf("StyleLabel(%d) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}

func TestRecommendationType(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{80, "Lead Confidently"},
		{79, "Grow Confidently"},
		{70, "Grow Confidently"},
		{69, "Develop Systematically"},
		{60, "Develop Systematically"},
	}
	for _, tt := range tests {
		if got := RecommendationType(tt.overall); got != tt.want {
			t.Errorf("RecommendationType(%d) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}
