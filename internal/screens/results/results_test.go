package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navstyle/internal/router"
	"github.com/abhisek/navstyle/internal/scoring"
)

func testReport() scoring.Report {
	return scoring.Report{
		Communication:      97,
		Collaboration:      83,
		Contextual:         78,
		Coach:              76,
		Overall:            84,
		StyleLabel:         scoring.StyleDiplomaticChallenger,
		RecommendationType: scoring.RecommendLeadConfidently,
	}
}

func TestResultsScreen_Title(t *testing.T) {
	r := New(testReport())
	if r.Title() != "Your Profile" {
		t.Errorf("Title = %q, want %q", r.Title(), "Your Profile")
	}
	if r.Status() != "CQ 84" {
		t.Errorf("Status = %q, want %q", r.Status(), "CQ 84")
	}
}

func TestResultsScreen_Overview(t *testing.T) {
	view := New(testReport()).View(100, 30)
	for _, want := range []string{
		"Assessment Complete",
		"Diplomatic Challenger",
		"Lead Confidently",
		"Communication Intelligence",
		"Clarity and tone management under stress",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestResultsScreen_Pages(t *testing.T) {
	r := New(testReport())

	r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if r.Page() != PageCoach {
		t.Fatalf("Page = %v, want %v", r.Page(), PageCoach)
	}
	view := r.View(100, 30)
	for _, want := range []string{"Clarity", "Openness", "Harmony", "1-on-1", "Digital"} {
		if !strings.Contains(view, want) {
			t.Errorf("coach page missing %q", want)
		}
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if r.Page() != PageGrowth {
		t.Fatalf("Page = %v, want %v", r.Page(), PageGrowth)
	}
	if !strings.Contains(r.View(100, 30), "Project Mediator") {
		t.Error("growth page missing team roles")
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if r.Page() != PageOverview {
		t.Errorf("Page = %v, want wrap to %v", r.Page(), PageOverview)
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if r.Page() != PageGrowth {
		t.Errorf("Page = %v, want wrap back to %v", r.Page(), PageGrowth)
	}
}

func TestResultsScreen_RetakeGoesHome(t *testing.T) {
	r := New(testReport())
	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	if _, ok := cmd().(router.HomeMsg); !ok {
		t.Errorf("expected router.HomeMsg, got %T", cmd())
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	hints := New(testReport()).KeyHints()
	if len(hints) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(hints))
	}
}
