package assessment

import (
	"errors"
	"testing"

	"github.com/abhisek/navstyle/internal/questionbank"
)

func testSession() *Session {
	return New(questionbank.Default(), nil)
}

// answerAll walks the default bank choosing "b" for options and 4 for scales.
func answerAll(t *testing.T, s *Session) {
	t.Helper()
	for !s.Completed() {
		q := s.Current()
		v := OptionValue("b")
		if q.Kind == questionbank.KindLikert {
			v = ScaleValue(4)
		}
		if err := s.SelectOption(v); err != nil {
			t.Fatalf("SelectOption: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance at %d: %v", s.Index(), err)
		}
	}
}

func TestNew_InitialState(t *testing.T) {
	s := testSession()

	if s.Phase() != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress", s.Phase())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if len(s.Responses()) != 0 {
		t.Errorf("Responses = %d, want 0", len(s.Responses()))
	}
	if s.CanAdvance() {
		t.Error("CanAdvance should be false before any selection")
	}
	if s.ID() == "" {
		t.Error("expected a session id")
	}
}

func TestAdvance_NoSelection(t *testing.T) {
	s := testSession()

	err := s.Advance()
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("Advance err = %v, want ErrNoSelection", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if len(s.Responses()) != 0 {
		t.Errorf("Responses = %d, want 0", len(s.Responses()))
	}
}

func TestAdvance_RecordsAndMoves(t *testing.T) {
	s := testSession()

	s.SelectOption(OptionValue("b"))
	if !s.CanAdvance() {
		t.Fatal("CanAdvance should be true after selection")
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
	if _, ok := s.Pending(); ok {
		t.Error("pending selection should be cleared after advancing")
	}

	r, ok := s.Response("comm-1")
	if !ok {
		t.Fatal("expected response for comm-1")
	}
	if r.DerivedScore != 90 {
		t.Errorf("DerivedScore = %v, want 90", r.DerivedScore)
	}
	if r.Section != "Communication Intelligence" {
		t.Errorf("Section = %q", r.Section)
	}
}

func TestAdvance_LastQuestionCompletes(t *testing.T) {
	s := testSession()
	answerAll(t, s)

	if !s.Completed() {
		t.Fatal("expected session to be completed")
	}
	if s.Index() != s.Total()-1 {
		t.Errorf("Index = %d, want last index %d", s.Index(), s.Total()-1)
	}
	if got := len(s.Responses()); got != s.Total() {
		t.Errorf("Responses = %d, want %d", got, s.Total())
	}
}

func TestCompleted_RejectsNavigation(t *testing.T) {
	s := testSession()
	answerAll(t, s)

	if err := s.SelectOption(OptionValue("a")); !errors.Is(err, ErrCompleted) {
		t.Errorf("SelectOption err = %v, want ErrCompleted", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrCompleted) {
		t.Errorf("Advance err = %v, want ErrCompleted", err)
	}
	if err := s.Retreat(); !errors.Is(err, ErrCompleted) {
		t.Errorf("Retreat err = %v, want ErrCompleted", err)
	}
	if s.CanAdvance() {
		t.Error("CanAdvance should be false once completed")
	}
}

func TestRetreat_NoopAtFirst(t *testing.T) {
	s := testSession()
	s.SelectOption(OptionValue("c"))

	if err := s.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	if v, ok := s.Pending(); !ok || v.OptionID() != "c" {
		t.Errorf("pending = %v, want c (retreat at 0 changes nothing)", v)
	}
}

func TestRetreat_RestoresSelection(t *testing.T) {
	s := testSession()
	s.SelectOption(OptionValue("d"))
	s.Advance()

	s.SelectOption(ScaleValue(2))
	if err := s.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}

	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.Index())
	}
	v, ok := s.Pending()
	if !ok || v != OptionValue("d") {
		t.Errorf("pending = %v, want d", v)
	}
	if len(s.Responses()) != 1 {
		t.Errorf("Responses = %d, want 1 (retreat never removes)", len(s.Responses()))
	}
}

func TestRetreat_MultipleSteps(t *testing.T) {
	s := testSession()
	s.SelectOption(OptionValue("a"))
	s.Advance()
	s.SelectOption(ScaleValue(3))
	s.Advance()
	s.SelectOption(OptionValue("c"))

	s.Retreat()
	if v, _ := s.Pending(); v != ScaleValue(3) {
		t.Errorf("pending at 1 = %v, want 3", v)
	}
	s.Retreat()
	if v, _ := s.Pending(); v != OptionValue("a") {
		t.Errorf("pending at 0 = %v, want a", v)
	}

	// The unsaved selection on index 2 is gone; only two responses exist.
	if len(s.Responses()) != 2 {
		t.Errorf("Responses = %d, want 2", len(s.Responses()))
	}
}

func TestRoundTrip_RetreatAdvance(t *testing.T) {
	s := testSession()
	s.SelectOption(OptionValue("b"))
	s.Advance()
	before, _ := s.Response("comm-1")

	s.Retreat()
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	after, _ := s.Response("comm-1")
	if before != after {
		t.Errorf("response changed across round trip: %+v -> %+v", before, after)
	}
	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
}

func TestReanswer_Overwrites(t *testing.T) {
	s := testSession()
	s.SelectOption(OptionValue("a"))
	s.Advance()

	s.Retreat()
	s.SelectOption(OptionValue("b"))
	s.Advance()

	if len(s.Responses()) != 1 {
		t.Fatalf("Responses = %d, want 1", len(s.Responses()))
	}
	r, _ := s.Response("comm-1")
	if r.DerivedScore != 90 {
		t.Errorf("DerivedScore = %v, want 90 after overwrite", r.DerivedScore)
	}
}

func TestResponsesNeverExceedBank(t *testing.T) {
	s := testSession()
	for i := 0; i < 20; i++ {
		s.SelectOption(OptionValue("a"))
		if i%3 == 2 {
			s.Retreat()
			continue
		}
		if err := s.Advance(); errors.Is(err, ErrCompleted) {
			break
		}
		if n := len(s.Responses()); n > s.Total() {
			t.Fatalf("Responses = %d exceeds bank size %d", n, s.Total())
		}
	}
}

func TestProgressFraction(t *testing.T) {
	s := testSession()
	if got := s.ProgressFraction(); got != 0.2 {
		t.Errorf("ProgressFraction at 0 = %v, want 0.2", got)
	}

	prev := s.ProgressFraction()
	for !s.IsLast() {
		s.SelectOption(OptionValue("a"))
		s.Advance()
		if s.ProgressFraction() < prev {
			t.Fatal("progress decreased on advance")
		}
		prev = s.ProgressFraction()
	}
	if got := s.ProgressFraction(); got != 1 {
		t.Errorf("ProgressFraction at last = %v, want exactly 1", got)
	}
}

func TestRestart(t *testing.T) {
	s := testSession()
	answerAll(t, s)

	s.Restart()

	if s.Phase() != PhaseInProgress || s.Index() != 0 {
		t.Errorf("after restart: phase=%v index=%d", s.Phase(), s.Index())
	}
	if len(s.Responses()) != 0 {
		t.Error("restart should clear responses")
	}
	if _, ok := s.Pending(); ok {
		t.Error("restart should clear pending selection")
	}
}

func TestResponses_ReturnsCopy(t *testing.T) {
	s := testSession()
	s.SelectOption(OptionValue("a"))
	s.Advance()

	rs := s.Responses()
	delete(rs, "comm-1")

	if _, ok := s.Response("comm-1"); !ok {
		t.Error("deleting from Responses() copy must not affect the session")
	}
}
