package landing

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navstyle/internal/questionbank"
	"github.com/abhisek/navstyle/internal/router"
	"github.com/abhisek/navstyle/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "assessment" }
func (s *stubScreen) Title() string                           { return "Assessment" }

func newTestLanding() (*LandingScreen, *int) {
	calls := 0
	l := New(questionbank.Default(), func() screen.Screen {
		calls++
		return &stubScreen{}
	})
	return l, &calls
}

func TestLanding_BeginPushesAssessment(t *testing.T) {
	l, calls := newTestLanding()

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Assessment" {
		t.Errorf("pushed %q, want Assessment", msg.Screen.Title())
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestLanding_EachBeginIsFresh(t *testing.T) {
	l, calls := newTestLanding()
	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if *calls != 2 {
		t.Errorf("factory calls = %d, want 2", *calls)
	}
}

func TestLanding_ExitQuits(t *testing.T) {
	l, calls := newTestLanding()
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	if *calls != 0 {
		t.Errorf("factory called on exit")
	}
}

func TestLanding_View(t *testing.T) {
	l, _ := newTestLanding()
	view := l.View(100, 30)
	for _, want := range append([]string{"Conflict Navigation Style", "Begin Assessment", "5 questions"}, Outline...) {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLanding_CompactDropsIntro(t *testing.T) {
	l, _ := newTestLanding()
	if strings.Contains(l.View(80, 18), "Conflict is inevitable") {
		t.Error("intro should be hidden at compact height")
	}
	if !strings.Contains(l.View(100, 30), "Conflict is inevitable") {
		t.Error("intro should be shown at full height")
	}
}
