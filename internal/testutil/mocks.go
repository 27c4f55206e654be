package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/banglahindi/internal/nlp"
)

// MockCollaborator is a scripted nlp.Collaborator. Unset results echo the
// input back; a set error makes the call fail.
type MockCollaborator struct {
	mu sync.Mutex

	IdiomResult       string
	RestructureResult string
	RefineResult      string

	IdiomErr       error
	RestructureErr error
	RefineErr      error
	ImproveErr     error

	// RestructureFunc, when set, replaces RestructureResult and RestructureErr.
	RestructureFunc func(sentence string) (string, error)

	Calls    []string
	Improved [][]nlp.Pair
}

var _ nlp.Collaborator = (*MockCollaborator)(nil)

func (m *MockCollaborator) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// TranslateIdiom mocks idiom translation
func (m *MockCollaborator) TranslateIdiom(ctx context.Context, text string) (string, error) {
	m.record(fmt.Sprintf("idiom: %s", text))
	if m.IdiomErr != nil {
		return "", m.IdiomErr
	}
	if m.IdiomResult != "" {
		return m.IdiomResult, nil
	}
	return text, nil
}

// RestructureComplexSentence mocks sentence restructuring
func (m *MockCollaborator) RestructureComplexSentence(ctx context.Context, sentence string) (string, error) {
	m.record(fmt.Sprintf("restructure: %s", sentence))
	if m.RestructureFunc != nil {
		return m.RestructureFunc(sentence)
	}
	if m.RestructureErr != nil {
		return "", m.RestructureErr
	}
	if m.RestructureResult != "" {
		return m.RestructureResult, nil
	}
	return sentence, nil
}

// Refine mocks the final refinement pass
func (m *MockCollaborator) Refine(ctx context.Context, text string) (string, error) {
	m.record(fmt.Sprintf("refine: %s", text))
	if m.RefineErr != nil {
		return "", m.RefineErr
	}
	if m.RefineResult != "" {
		return m.RefineResult, nil
	}
	return text, nil
}

// Improve mocks a corpus submission
func (m *MockCollaborator) Improve(ctx context.Context, pairs []nlp.Pair) error {
	m.record(fmt.Sprintf("improve: %d pairs", len(pairs)))
	if m.ImproveErr != nil {
		return m.ImproveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	batch := make([]nlp.Pair, len(pairs))
	copy(batch, pairs)
	m.Improved = append(m.Improved, batch)
	return nil
}

// CallCount returns how many recorded calls start with prefix.
func (m *MockCollaborator) CallCount(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, call := range m.Calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
