package questionbank

import (
	_ "embed"
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the panic value wrapped by Get when the index is
// outside the bank. Callers that navigate with Session never trigger it.
var ErrIndexOutOfRange = errors.New("question index out of range")

//go:embed default_bank.yaml
var defaultBankYAML []byte

// defaultBank is the process-wide bank, built by init() from the embedded document.
var defaultBank *Bank

func init() {
	b, err := Parse(defaultBankYAML)
	if err != nil {
		panic(fmt.Sprintf("questionbank: invalid embedded bank: %v", err))
	}
	defaultBank = b
}

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}

// Bank is an ordered, read-only list of questions.
type Bank struct {
	questions []Question
	byID      map[string]int
	sections  []string
}

// newBank indexes an already-validated question list.
func newBank(questions []Question) *Bank {
	b := &Bank{
		questions: questions,
		byID:      make(map[string]int, len(questions)),
	}
	seen := make(map[string]bool)
	for i, q := range questions {
		b.byID[q.ID] = i
		if !seen[q.Section] {
			seen[q.Section] = true
			b.sections = append(b.sections, q.Section)
		}
	}
	return b
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Get returns the question at index. It panics on an out-of-range index.
func (b *Bank) Get(index int) Question {
	if index < 0 || index >= len(b.questions) {
		panic(fmt.Errorf("%w: %d (bank has %d questions)", ErrIndexOutOfRange, index, len(b.questions)))
	}
	return b.questions[index]
}

// All returns a copy of the questions in order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Lookup finds a question by id.
func (b *Bank) Lookup(id string) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Sections returns the distinct section labels in first-appearance order.
func (b *Bank) Sections() []string {
	out := make([]string, len(b.sections))
	copy(out, b.sections)
	return out
}
