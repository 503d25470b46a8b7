package conjugate

import (
	"log/slog"

	"github.com/f3rmion/katsuyou/internal/classify"
	"github.com/f3rmion/katsuyou/internal/verb"
)

// Engine classifies and conjugates verbs in one call.
type Engine struct {
	classifier *classify.Classifier
	logger     *slog.Logger
}

// NewEngine creates an engine that resolves kanji readings through src.
// A nil logger falls back to slog.Default().
func NewEngine(src classify.ReadingSource, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		classifier: classify.New(src),
		logger:     logger,
	}
}

// Classify classifies input without generating forms.
func (e *Engine) Classify(input string) (verb.VerbInfo, error) {
	info, err := e.classifier.Classify(input)
	if err != nil {
		e.logger.Debug("classification failed",
			"input", input,
			"code", verb.CodeOf(err),
			"step", e.classifier.Explain(input),
		)
		return verb.VerbInfo{}, err
	}
	e.logger.Debug("classified verb",
		"verb", info.DictionaryForm,
		"type", info.Label(),
		"reading", info.Reading,
		"prefix", info.CompoundPrefix,
	)
	return info, nil
}

// Conjugate classifies input and generates its full form table.
func (e *Engine) Conjugate(input string) (verb.Result, error) {
	info, err := e.Classify(input)
	if err != nil {
		return verb.Result{}, err
	}

	forms, err := Conjugate(info)
	if err != nil {
		e.logger.Warn("conjugation failed", "verb", info.DictionaryForm, "error", err)
		return verb.Result{}, err
	}
	e.logger.Debug("conjugated verb", "verb", info.DictionaryForm, "forms", len(forms))

	return verb.Result{Verb: info, Forms: forms}, nil
}

// Explain names the classification step that decides input.
func (e *Engine) Explain(input string) string {
	return e.classifier.Explain(input)
}
