package scoring

import (
	"strings"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
)

// Evaluator is the document-level entry point: it runs signal extraction
// followed by category scoring and aggregation.
type Evaluator struct {
	extractor *signals.Extractor
}

// NewEvaluator creates an evaluator over the given signal extractor.
func NewEvaluator(extractor *signals.Extractor) *Evaluator {
	return &Evaluator{extractor: extractor}
}

// EvaluateDocument scores extracted document text. Blank text is rejected
// with EmptyInputError before signal extraction runs; every other input is
// scored without error. The returned bundle is the evaluation's own
// snapshot and can be handed to a session store.
func (ev *Evaluator) EvaluateDocument(text string, pageCount int) (*Evaluation, *signals.Bundle, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, &EmptyInputError{}
	}
	bundle := ev.extractor.Extract(text, pageCount)
	return Evaluate(bundle), bundle, nil
}
