package questionbank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type rawBank struct {
	Questions []rawQuestion `yaml:"questions"`
}

type rawQuestion struct {
	ID      string      `yaml:"id"`
	Kind    string      `yaml:"kind"`
	Section string      `yaml:"section"`
	Prompt  string      `yaml:"prompt"`
	Context string      `yaml:"context"`
	Options []rawOption `yaml:"options"`
	Scale   *rawScale   `yaml:"scale"`
}

type rawOption struct {
	ID    string `yaml:"id"`
	Text  string `yaml:"text"`
	Score int    `yaml:"score"`
}

type rawScale struct {
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	MinLabel string `yaml:"min_label"`
	MaxLabel string `yaml:"max_label"`
}

// LoadFile reads and validates a bank document from path.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML bank document, validates it, and builds a Bank.
// Structural problems are returned together as ValidationErrors.
func Parse(data []byte) (*Bank, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateShape(doc); err != nil {
		return nil, err
	}

	var raw rawBank
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		questions = append(questions, rq.toQuestion())
	}

	if errs := validateQuestions(questions); len(errs) > 0 {
		return nil, errs
	}
	return newBank(questions), nil
}

func (rq rawQuestion) toQuestion() Question {
	q := Question{
		ID:      rq.ID,
		Kind:    Kind(rq.Kind),
		Section: rq.Section,
		Prompt:  rq.Prompt,
		Context: rq.Context,
	}
	for _, o := range rq.Options {
		q.Options = append(q.Options, Option{ID: o.ID, Text: o.Text, Score: o.Score})
	}
	if rq.Scale != nil {
		q.Scale = &Scale{
			Min:      rq.Scale.Min,
			Max:      rq.Scale.Max,
			MinLabel: rq.Scale.MinLabel,
			MaxLabel: rq.Scale.MaxLabel,
		}
	}
	return q
}
