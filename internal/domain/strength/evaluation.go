package strength

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is the audit record of one scoring request. It never holds the
// password or the name fragments.
type Evaluation struct {
	ID           uuid.UUID `json:"id"`
	Score        int       `json:"score"`
	Label        string    `json:"label"`
	Color        Color     `json:"color"`
	Length       int       `json:"length"`
	NameProvided bool      `json:"name_provided"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewEvaluation(result Result, passwordLength int, nameProvided bool) (*Evaluation, error) {
	evaluation := &Evaluation{
		ID:           uuid.New(),
		Score:        result.Score,
		Label:        result.Label,
		Color:        result.Color,
		Length:       passwordLength,
		NameProvided: nameProvided,
		CreatedAt:    time.Now(),
	}

	if err := NewEvaluationValidator().ValidateEvaluation(evaluation); err != nil {
		return nil, err
	}

	return evaluation, nil
}

func (e *Evaluation) Result() Result {
	return Result{Score: e.Score, Label: e.Label, Color: e.Color}
}

type Stats struct {
	Total   int            `json:"total"`
	ByLabel map[string]int `json:"by_label"`
}

func NewStats(counts map[string]int) Stats {
	stats := Stats{ByLabel: make(map[string]int, len(Labels))}
	for _, label := range Labels {
		stats.ByLabel[label] = 0
	}
	for label, count := range counts {
		stats.ByLabel[label] += count
		stats.Total += count
	}
	return stats
}
