package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/abhisek/navstyle/internal/assessment"
	"github.com/abhisek/navstyle/internal/questionbank"
)

// Section substrings that route a response into a bucket. Each test is
// independent: a section naming both contributes to both buckets.
const (
	communicationMarker = "Communication"
	collaborationMarker = "Collaboration"
)

// Fallbacks for buckets with no contributing responses.
const (
	FallbackCommunication = 75
	FallbackCollaboration = 72
)

// Placeholder scores for dimensions the bank does not cover yet. Extending
// the bank to these sections means replacing them with a bucket mean.
const (
	PlaceholderContextual = 78
	PlaceholderCoach      = 76
)

// DefaultScaleMax normalizes likert responses that carry no scale maximum.
const DefaultScaleMax = 5

// Aggregate computes the score report for a set of responses keyed by
// question id. It is pure: equal inputs always give equal reports.
func Aggregate(responses map[string]assessment.Response) Report {
	// Sum in key order so float accumulation is independent of map order.
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var comm, collab bucketSum
	for _, id := range ids {
		r := responses[id]
		c := contribution(r)
		if strings.Contains(r.Section, communicationMarker) {
			comm.add(c)
		}
		if strings.Contains(r.Section, collaborationMarker) {
			collab.add(c)
		}
	}

	rep := Report{
		Communication: comm.mean(FallbackCommunication),
		Collaboration: collab.mean(FallbackCollaboration),
		Contextual:    PlaceholderContextual,
		Coach:         PlaceholderCoach,
	}
	rep.Overall = round(float64(rep.Communication+rep.Collaboration+rep.Contextual+rep.Coach) / 4)
	rep.StyleLabel = StyleLabel(rep.Overall)
	rep.RecommendationType = RecommendationType(rep.Overall)
	return rep
}

// contribution converts a response to its 0-100 bucket contribution.
func contribution(r assessment.Response) float64 {
	if r.Kind != questionbank.KindLikert {
		return r.DerivedScore
	}
	scaleMax := r.ScaleMax
	if scaleMax <= 0 {
		scaleMax = DefaultScaleMax
	}
	return r.DerivedScore / float64(scaleMax) * 100
}

type bucketSum struct {
	total float64
	count int
}

func (b *bucketSum) add(v float64) {
	b.total += v
	b.count++
}

func (b bucketSum) mean(fallback int) int {
	if b.count == 0 {
		return fallback
	}
	return round(b.total / float64(b.count))
}

// round rounds half away from zero; scores are never negative.
func round(v float64) int {
	return int(math.Round(v))
}
