package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoachProfile(t *testing.T) {
	r := Report{Communication: 91, Collaboration: 64, Overall: 77}
	assert.Equal(t, []Dimension{
		{Label: "Clarity", Score: 91},
		{Label: "Openness", Score: 82},
		{Label: "Alignment", Score: 64},
		{Label: "Conflict Nav", Score: 77},
		{Label: "Harmony", Score: 79},
	}, CoachProfile(r))
}

func TestContextAgility(t *testing.T) {
	r := Report{Collaboration: 64, Overall: 77}
	assert.Equal(t, []Dimension{
		{Label: "1-on-1", Score: 85},
		{Label: "Group", Score: 64},
		{Label: "Conflict", Score: 77},
		{Label: "Digital", Score: 68},
	}, ContextAgility(r))
}

func TestBreakdown(t *testing.T) {
	r := Aggregate(nil)
	rows := Breakdown(r)
	if assert.Len(t, rows, 3) {
		assert.Equal(t, "Communication Intelligence", rows[0].Name)
		assert.Equal(t, 75, rows[0].Score)
		assert.Equal(t, 72, rows[1].Score)
		assert.Equal(t, 78, rows[2].Score)
		for _, row := range rows {
			assert.NotEmpty(t, row.Description)
		}
	}
}

func TestPlan(t *testing.T) {
	p := Plan(Report{})
	assert.NotEmpty(t, p.TopStrength)
	assert.NotEmpty(t, p.GrowthOpportunity)
	assert.Equal(t, []string{"Cross-functional Lead", "Project Mediator", "Client-facing Role"}, p.TeamRoles)
	assert.Len(t, p.DevelopmentActions, 3)
}
