package feedback

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	cerrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/banglahindi/internal/archive"
	"codeberg.org/snonux/banglahindi/internal/nlp"
	"codeberg.org/snonux/banglahindi/internal/testutil"
)

func recordN(t *testing.T, trainer *Trainer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, trainer.Record(context.Background(), fmt.Sprintf("বাক্য %d", i), fmt.Sprintf("वाक्य %d", i)))
	}
}

func TestTrainerDefaultCapacity(t *testing.T) {
	trainer, err := NewTrainer(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 100, trainer.Capacity())
}

func TestTrainerBelowCapacity(t *testing.T) {
	mock := &testutil.MockCollaborator{}
	trainer, err := NewTrainer(mock, Options{Capacity: 3})
	require.NoError(t, err)

	recordN(t, trainer, 2)

	assert.Equal(t, 2, trainer.Len())
	assert.Zero(t, mock.CallCount("improve"))
}

func TestTrainerFlushesAtCapacity(t *testing.T) {
	mock := &testutil.MockCollaborator{}
	archiveDir := filepath.Join(t.TempDir(), "corpus")
	trainer, err := NewTrainer(mock, Options{Capacity: 3, ArchiveDir: archiveDir})
	require.NoError(t, err)

	recordN(t, trainer, 3)

	assert.Zero(t, trainer.Len())
	require.Len(t, mock.Improved, 1)
	assert.Len(t, mock.Improved[0], 3)
	assert.Equal(t, nlp.Pair{Bangla: "বাক্য 0", Hindi: "वाक्य 0"}, mock.Improved[0][0])

	corpora, err := archive.ListCorpora(archiveDir)
	require.NoError(t, err)
	require.Len(t, corpora, 1)
	testutil.AssertFileContains(t, corpora[0].Path, "Bangla: বাক্য 2\nHindi: वाक्य 2")
}

func TestTrainerKeepsPairsWhenSubmissionFails(t *testing.T) {
	mock := &testutil.MockCollaborator{ImproveErr: errors.New("service down")}
	trainer, err := NewTrainer(mock, Options{Capacity: 2})
	require.NoError(t, err)

	recordN(t, trainer, 2)
	assert.Equal(t, 2, trainer.Len())
	assert.Equal(t, 1, mock.CallCount("improve"))

	// The queue stays full and the next submission waits for a full
	// round of new records.
	mock.ImproveErr = nil
	recordN(t, trainer, 1)
	assert.Equal(t, 2, trainer.Len())
	assert.Equal(t, 1, mock.CallCount("improve"))

	recordN(t, trainer, 1)
	assert.Zero(t, trainer.Len())
	require.Len(t, mock.Improved, 1)
	assert.Len(t, mock.Improved[0], 2)
}

func TestTrainerQueueIsBounded(t *testing.T) {
	mock := &testutil.MockCollaborator{ImproveErr: errors.New("service down")}
	store := openTestStore(t)
	trainer, err := NewTrainer(mock, Options{Capacity: 100, Store: store})
	require.NoError(t, err)

	recordN(t, trainer, 250)

	assert.Equal(t, 100, trainer.Len())
	assert.Equal(t, 150, trainer.Dropped())
	assert.Equal(t, 2, mock.CallCount("improve"))

	pending := trainer.Pending()
	assert.Equal(t, "বাক্য 150", pending[0].Bangla)
	assert.Equal(t, "বাক্য 249", pending[99].Bangla)

	stored, err := store.Pending()
	require.NoError(t, err)
	assert.Equal(t, pending, stored)
}

func TestTrainerWithoutImproverStaysBounded(t *testing.T) {
	trainer, err := NewTrainer(nil, Options{Capacity: 5})
	require.NoError(t, err)

	recordN(t, trainer, 12)

	assert.Equal(t, 5, trainer.Len())
	assert.Equal(t, 7, trainer.Dropped())
}

func TestTrainerTrimsOversizedStore(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(nlp.Pair{Bangla: fmt.Sprintf("বাক্য %d", i), Hindi: "वाक्य"}))
	}

	trainer, err := NewTrainer(nil, Options{Capacity: 3, Store: store})
	require.NoError(t, err)

	assert.Equal(t, 3, trainer.Len())
	assert.Equal(t, 2, trainer.Dropped())
	assert.Equal(t, "বাক্য 2", trainer.Pending()[0].Bangla)

	stored, err := store.Pending()
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestTrainerFlushEmpty(t *testing.T) {
	mock := &testutil.MockCollaborator{}
	trainer, err := NewTrainer(mock, Options{})
	require.NoError(t, err)

	require.NoError(t, trainer.Flush(context.Background()))
	assert.Zero(t, mock.CallCount("improve"))
}

func TestTrainerFlushWithoutImprover(t *testing.T) {
	trainer, err := NewTrainer(nil, Options{Capacity: 10})
	require.NoError(t, err)
	recordN(t, trainer, 1)

	err = trainer.Flush(context.Background())
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, nlp.ErrUnavailable))
	assert.Equal(t, 1, trainer.Len())
}

func TestTrainerRejectsEmptyPair(t *testing.T) {
	trainer, err := NewTrainer(nil, Options{})
	require.NoError(t, err)

	assert.ErrorIs(t, trainer.Record(context.Background(), "", "मैं"), ErrEmptyPair)
	assert.ErrorIs(t, trainer.Record(context.Background(), "আমি", ""), ErrEmptyPair)
	assert.Zero(t, trainer.Len())
}

func TestTrainerPersistsPendingPairs(t *testing.T) {
	store := openTestStore(t)

	first, err := NewTrainer(nil, Options{Capacity: 10, Store: store})
	require.NoError(t, err)
	recordN(t, first, 2)

	mock := &testutil.MockCollaborator{}
	second, err := NewTrainer(mock, Options{Capacity: 10, Store: store})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Len())

	require.NoError(t, second.Flush(context.Background()))

	pending, err := store.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	count, total, err := store.Submissions()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, total)
}

func TestTrainerPendingIsCopy(t *testing.T) {
	trainer, err := NewTrainer(nil, Options{Capacity: 10})
	require.NoError(t, err)
	recordN(t, trainer, 1)

	pending := trainer.Pending()
	pending[0].Hindi = "changed"

	assert.Equal(t, "वाक्य 0", trainer.Pending()[0].Hindi)
}
