package scoring

// Report is the profile derived from one completed assessment.
type Report struct {
	Communication int `json:"communication"`
	Collaboration int `json:"collaboration"`
	Contextual    int `json:"contextual"`
	Coach         int `json:"coach"`

	// Overall is the rounded mean of the four bucket scores.
	Overall int `json:"overall"`

	StyleLabel         string `json:"style_label"`
	RecommendationType string `json:"recommendation_type"`
}

// Buckets returns the four bucket scores in display order.
func (r Report) Buckets() []Bucket {
	return []Bucket{
		{Name: BucketCommunication, Score: r.Communication},
		{Name: BucketCollaboration, Score: r.Collaboration},
		{Name: BucketContextual, Score: r.Contextual},
		{Name: BucketCoach, Score: r.Coach},
	}
}

// Bucket is one named aggregate dimension.
type Bucket struct {
	Name  string
	Score int
}

const (
	BucketCommunication = "communication"
	BucketCollaboration = "collaboration"
	BucketContextual    = "contextual"
	BucketCoach         = "coach"
)
