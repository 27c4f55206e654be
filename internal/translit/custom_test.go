package translit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomWordsAddAndGet(t *testing.T) {
	cw := NewCustomWords()

	require.NoError(t, cw.Add("ভাত", "चावल"))
	require.NoError(t, cw.Add(" ভাত ", "भात"))

	got, ok := cw.Get("ভাত")
	assert.True(t, ok)
	assert.Equal(t, "भात", got, "last write wins")
	assert.Equal(t, 1, cw.Len())

	_, ok = cw.Get("মাছ")
	assert.False(t, ok)
}

func TestCustomWordsRejectsEmpty(t *testing.T) {
	cw := NewCustomWords()

	assert.Error(t, cw.Add("", "चावल"))
	assert.Error(t, cw.Add("ভাত", "  "))
	assert.Zero(t, cw.Len())
}

func TestCustomWordsGetAllIsCopy(t *testing.T) {
	cw := NewCustomWords()
	require.NoError(t, cw.Add("ভাত", "भात"))

	all := cw.GetAll()
	all["মাছ"] = "मछली"

	assert.Equal(t, 1, cw.Len())
}

func TestCustomWordsApply(t *testing.T) {
	cw := NewCustomWords()
	require.NoError(t, cw.Add("मैं", "हम"))
	require.NoError(t, cw.Add("खाइ", "खाता हूँ"))
	require.NoError(t, cw.Add("खा", "खाना"))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whole words", "मैं भात खाइ।", "हम भात खाता हूँ।"},
		{"not inside longer words", "मैंने", "मैंने"},
		{"longest key wins", "खाइ खा", "खाता हूँ खाना"},
		{"no match", "तुम", "तुम"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cw.Apply(tt.input))
		})
	}
}

func TestCustomWordsApplyEmpty(t *testing.T) {
	assert.Equal(t, "मैं", NewCustomWords().Apply("मैं"))
}

func TestCustomWordsApplyAfterAdd(t *testing.T) {
	cw := NewCustomWords()
	require.NoError(t, cw.Add("मैं", "हम"))
	assert.Equal(t, "हम", cw.Apply("मैं"))

	require.NoError(t, cw.Add("मैं", "मै"))
	assert.Equal(t, "मै", cw.Apply("मैं"))
}

func TestCustomWordsConcurrentAccess(t *testing.T) {
	cw := NewCustomWords()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = cw.Add("मैं", "हम")
		}()
		go func() {
			defer wg.Done()
			_ = cw.Apply("मैं भात")
		}()
	}
	wg.Wait()

	assert.Equal(t, "हम भात", cw.Apply("मैं भात"))
}

func TestRenderedCustomWords(t *testing.T) {
	render := func(word string) string {
		return map[string]string{"খাই": "खाइ", "খাঈ": "खाइ"}[word]
	}
	cw := NewRenderedCustomWords(render)

	require.NoError(t, cw.Add("খাই", "खाता हूँ"))
	assert.Equal(t, "मैं खाता हूँ", cw.Apply("मैं खाइ"))
	assert.Equal(t, "खाता हूँ", cw.Apply("খাই"))

	// A word as written beats a rendered form of another word.
	require.NoError(t, cw.Add("खाइ", "खाऊँ"))
	assert.Equal(t, "मैं खाऊँ", cw.Apply("मैं खाइ"))

	// Two words with the same rendered form do not collide.
	require.NoError(t, cw.Add("খাঈ", "खाई"))
	assert.NotPanics(t, func() { cw.Apply("खाइ") })
}
