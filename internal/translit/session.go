package translit

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"codeberg.org/snonux/banglahindi/internal/feedback"
)

// Session is the state one user builds up: custom words and pending
// corrections.
type Session struct {
	id             string
	transliterator *Transliterator
	words          *CustomWords
	trainer        *feedback.Trainer
	logger         *zap.SugaredLogger
}

// NewSession creates a session around a transliterator. trainer may be nil,
// in which case feedback is rejected.
func NewSession(t *Transliterator, trainer *feedback.Trainer, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	id := uuid.NewString()
	return &Session{
		id:             id,
		transliterator: t,
		words:          NewRenderedCustomWords(t.Render),
		trainer:        trainer,
		logger:         logger.With("session", id),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Words returns the session's custom words.
func (s *Session) Words() *CustomWords {
	return s.words
}

// Trainer returns the session's feedback trainer, if any.
func (s *Session) Trainer() *feedback.Trainer {
	return s.trainer
}

// AddWord registers a custom override.
func (s *Session) AddWord(word, replacement string) error {
	if err := s.words.Add(word, replacement); err != nil {
		return err
	}
	s.logger.Debugw("Custom word added", "word", word, "replacement", replacement)
	return nil
}

// Transliterate runs the pipeline and applies the custom words to its
// output. Bangla words match their converted form.
func (s *Session) Transliterate(ctx context.Context, text string) Result {
	result := s.transliterator.Transliterate(ctx, text)
	result.Text = s.words.Apply(result.Text)
	return result
}

// TranslateIdiom delegates to the transliterator.
func (s *Session) TranslateIdiom(ctx context.Context, text string) string {
	return s.transliterator.TranslateIdiom(ctx, text)
}

// SubmitFeedback records a corrected transliteration.
func (s *Session) SubmitFeedback(ctx context.Context, original, corrected string) error {
	if s.trainer == nil {
		return errors.New("feedback is not enabled for this session")
	}
	if err := s.trainer.Record(ctx, original, corrected); err != nil {
		return err
	}
	s.logger.Infow("Feedback recorded",
		"pending", s.trainer.Len(),
		"capacity", s.trainer.Capacity())
	return nil
}

// Flush submits pending corrections now.
func (s *Session) Flush(ctx context.Context) error {
	if s.trainer == nil {
		return nil
	}
	return s.trainer.Flush(ctx)
}
