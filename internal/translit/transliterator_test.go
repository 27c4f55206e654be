package translit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/banglahindi/internal/segment"
	"codeberg.org/snonux/banglahindi/internal/testutil"
)

func TestTransliterateRuleBased(t *testing.T) {
	tr := NewTransliterator(Options{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single word", "আমি", "मैं"},
		{"two sentences", "আমি ভাত খাই। তুমি কি খাও?", "मैं भात खाइ। तुम क्या खाओ?"},
		{"idiom", "চোখে ধুলো দেওয়া", "आँखों में धूल झोंकना"},
		{"correlative", "যদি সে আসে তাহলে আমি যাব", "अगर वह आसे तो मैं जाव"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tr.Transliterate(context.Background(), tt.input)
			assert.Equal(t, tt.want, result.Text)
			assert.Equal(t, tt.want, result.RuleBased)
			assert.False(t, result.Refined)
			assert.False(t, result.RuleBasedOnly)
			assert.Empty(t, result.Advisory)
		})
	}
}

func TestTransliterateSingleSimpleSentence(t *testing.T) {
	result := NewTransliterator(Options{}).Transliterate(context.Background(), "আমি")

	require.Len(t, result.Sentences, 1)
	assert.Equal(t, segment.Simple, result.Sentences[0].Kind)
	assert.Equal(t, "मैं", result.Sentences[0].Output)
}

func TestTransliterateGlyphOnlyText(t *testing.T) {
	tr := NewTransliterator(Options{})

	for _, input := range []string{"কমল", "কমল। জল"} {
		result := tr.Transliterate(context.Background(), input)
		assert.Equal(t, segment.FallbackMap(input), result.Text, input)
	}
}

func TestTransliterateNormalizesInput(t *testing.T) {
	tr := NewTransliterator(Options{})

	// ো written as its two parts.
	decomposed := "ভাল\u09c7\u09be"
	composed := "ভাল\u09cb"

	assert.Equal(t, "भालो", tr.Transliterate(context.Background(), composed).Text)
	assert.Equal(t, "भालो", tr.Transliterate(context.Background(), decomposed).Text)
}

func TestTransliterateEscalatesComplexSentences(t *testing.T) {
	mock := &testutil.MockCollaborator{RestructureResult: "आँखों में धूल लगी।"}
	tr := NewTransliterator(Options{Restructurer: mock})

	result := tr.Transliterate(context.Background(), "চোখে ধুলো লাগল। আমি যাব।")

	require.Len(t, result.Sentences, 2)
	assert.Equal(t, segment.Complex, result.Sentences[0].Kind)
	assert.True(t, result.Sentences[0].Escalated)
	assert.Equal(t, segment.Simple, result.Sentences[1].Kind)
	assert.Equal(t, "आँखों में धूल लगी। मैं जाव।", result.Text)
	assert.Equal(t, []string{"restructure: চোখে ধুলো লাগল।"}, mock.Calls)
}

func TestTransliterateRestructureFailureFallsBack(t *testing.T) {
	mock := &testutil.MockCollaborator{RestructureErr: errors.New("timeout")}
	tr := NewTransliterator(Options{Restructurer: mock})

	result := tr.Transliterate(context.Background(), "চোখে ধুলো লাগল।")

	require.Len(t, result.Sentences, 1)
	assert.True(t, result.Sentences[0].FellBack)
	assert.Equal(t, "चोखे धुलो लागल।", result.Text)
}

func TestTransliterateRefines(t *testing.T) {
	mock := &testutil.MockCollaborator{RefineResult: "मैं भात खाता हूँ।"}
	tr := NewTransliterator(Options{Refiner: mock, Refine: true})

	result := tr.Transliterate(context.Background(), "আমি ভাত খাই।")

	assert.Equal(t, "मैं भात खाता हूँ।", result.Text)
	assert.Equal(t, "मैं भात खाइ।", result.RuleBased)
	assert.True(t, result.Refined)
	assert.Empty(t, result.Advisory)
	assert.Equal(t, []string{"refine: मैं भात खाइ।"}, mock.Calls)
}

func TestTransliterateRefineFailure(t *testing.T) {
	mock := &testutil.MockCollaborator{RefineErr: errors.New("service unavailable")}
	tr := NewTransliterator(Options{Refiner: mock, Refine: true})

	result := tr.Transliterate(context.Background(), "আমি ভাত খাই।")

	assert.Equal(t, result.RuleBased, result.Text)
	assert.Equal(t, "मैं भात खाइ।", result.Text)
	assert.True(t, result.RuleBasedOnly)
	assert.Equal(t, AdvisoryRuleBasedOnly, result.Advisory)
}

func TestTransliterateRefineDisabled(t *testing.T) {
	mock := &testutil.MockCollaborator{RefineResult: "changed"}
	tr := NewTransliterator(Options{Refiner: mock, Refine: false})

	result := tr.Transliterate(context.Background(), "আমি")

	assert.Equal(t, "मैं", result.Text)
	assert.Zero(t, mock.CallCount("refine"))
}

func TestTranslateIdiom(t *testing.T) {
	t.Run("translated", func(t *testing.T) {
		mock := &testutil.MockCollaborator{IdiomResult: "नाक में दम करना"}
		tr := NewTransliterator(Options{IdiomTranslator: mock})
		assert.Equal(t, "नाक में दम करना", tr.TranslateIdiom(context.Background(), "নাকে কাঁদা"))
	})

	t.Run("failure returns input", func(t *testing.T) {
		mock := &testutil.MockCollaborator{IdiomErr: errors.New("down")}
		tr := NewTransliterator(Options{IdiomTranslator: mock})
		assert.Equal(t, "নাকে কাঁদা", tr.TranslateIdiom(context.Background(), "নাকে কাঁদা"))
	})

	t.Run("no translator", func(t *testing.T) {
		tr := NewTransliterator(Options{})
		assert.Equal(t, "নাকে কাঁদা", tr.TranslateIdiom(context.Background(), "নাকে কাঁদা"))
	})
}
