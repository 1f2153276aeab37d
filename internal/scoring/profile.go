package scoring

// Fixed profile values the bank does not measure yet.
const (
	PlaceholderOpenness = 82
	PlaceholderHarmony  = 79
	PlaceholderOneOnOne = 85
	PlaceholderDigital  = 68
)

// Dimension is a labelled score shown as a bar on the results screen.
type Dimension struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// CoachProfile returns the COACH framework dimensions for a report.
func CoachProfile(r Report) []Dimension {
	return []Dimension{
		{Label: "Clarity", Score: r.Communication},
		{Label: "Openness", Score: PlaceholderOpenness},
		{Label: "Alignment", Score: r.Collaboration},
		{Label: "Conflict Nav", Score: r.Overall},
		{Label: "Harmony", Score: PlaceholderHarmony},
	}
}

// ContextAgility returns how the profile holds up across settings.
func ContextAgility(r Report) []Dimension {
	return []Dimension{
		{Label: "1-on-1", Score: PlaceholderOneOnOne},
		{Label: "Group", Score: r.Collaboration},
		{Label: "Conflict", Score: r.Overall},
		{Label: "Digital", Score: PlaceholderDigital},
	}
}

// Intelligence is one row of the intelligence breakdown.
type Intelligence struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

// Breakdown returns the per-intelligence scores with their descriptions.
func Breakdown(r Report) []Intelligence {
	return []Intelligence{
		{
			Name:        "Communication Intelligence",
			Description: "Clarity and tone management under stress",
			Score:       r.Communication,
		},
		{
			Name:        "Collaboration Intelligence",
			Description: "Team dynamics and conflict mediation",
			Score:       r.Collaboration,
		},
		{
			Name:        "Contextual Social Intelligence",
			Description: "Adaptability across different environments",
			Score:       r.Contextual,
		},
	}
}

// GrowthPlan is the personalized development guidance.
type GrowthPlan struct {
	TopStrength        string   `json:"top_strength"`
	GrowthOpportunity  string   `json:"growth_opportunity"`
	TeamRoles          []string `json:"team_roles"`
	DevelopmentActions []string `json:"development_actions"`
}

// Plan returns the growth plan for a report. The copy is the same for
// every profile today.
func Plan(Report) GrowthPlan {
	return GrowthPlan{
		TopStrength: "You maintain tone and calm well during conflict, " +
			"creating psychological safety for others to express their views.",
		GrowthOpportunity: "Practice initiating resolution earlier and phrasing " +
			"tension as shared goals: \"We both want X. How do we get there?\"",
		TeamRoles: []string{
			"Cross-functional Lead",
			"Project Mediator",
			"Client-facing Role",
		},
		DevelopmentActions: []string{
			"Practice tension de-escalation scripts",
			"Role-play heated team meetings",
			"Maintain conflict resolution journal",
		},
	}
}
