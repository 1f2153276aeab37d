package scoring

// Style labels, highest tier first.
const (
	StyleDiplomaticChallenger = "Diplomatic Challenger"
	StyleEmpathicModerator    = "Empathic Moderator"
	StyleAssertiveAnalyst     = "Assertive Analyst"
	StyleDevelopingNavigator  = "Developing Navigator"
)

// Recommendation types, highest tier first.
const (
	RecommendLeadConfidently       = "Lead Confidently"
	RecommendGrowConfidently       = "Grow Confidently"
	RecommendDevelopSystematically = "Develop Systematically"
)

// StyleLabel returns the conflict navigation style for an overall score.
// Lower bounds are inclusive.
func StyleLabel(overall int) string {
	switch {
	case overall >= 80:
		return StyleDiplomaticChallenger
	case overall >= 70:
		return StyleEmpathicModerator
	case overall >= 60:
		return StyleAssertiveAnalyst
	default:
		return StyleDevelopingNavigator
	}
}

// RecommendationType returns the development focus for an overall score.
func RecommendationType(overall int) string {
	switch {
	case overall >= 80:
		return RecommendLeadConfidently
	case overall >= 70:
		return RecommendGrowConfidently
	default:
		return RecommendDevelopSystematically
	}
}
