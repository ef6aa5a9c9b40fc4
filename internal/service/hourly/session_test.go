package hourly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

func activeTestWindow(t *testing.T) domain.HourlyWindow {
	t.Helper()
	now := time.Now()
	return domain.ActiveWindow(now, now.Add(8*time.Hour))
}

func TestSession_ApplySnapshotInOrder(t *testing.T) {
	sess := newSession(1)
	sess.activate(activeTestWindow(t))

	seq1 := sess.nextSeq()
	seq2 := sess.nextSeq()

	require.True(t, sess.applySnapshot(seq1, nil, time.Now()))
	require.True(t, sess.applySnapshot(seq2, nil, time.Now()))

	snap := sess.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, seq2, snap.Seq)
}

func TestSession_StaleSnapshotDropped(t *testing.T) {
	sess := newSession(1)
	sess.activate(activeTestWindow(t))

	seq1 := sess.nextSeq()
	seq2 := sess.nextSeq()

	// Более поздний опрос завершился первым
	require.True(t, sess.applySnapshot(seq2, nil, time.Now()))

	// Ответ обогнанного опроса не должен затереть свежий снимок
	assert.False(t, sess.applySnapshot(seq1, nil, time.Now()))

	snap := sess.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, seq2, snap.Seq)
}

func TestSession_SnapshotNotAppliedWhenInactive(t *testing.T) {
	sess := newSession(1)

	seq := sess.nextSeq()
	assert.False(t, sess.applySnapshot(seq, nil, time.Now()))
	assert.Nil(t, sess.Snapshot())
}

func TestSession_DeactivateClearsSnapshot(t *testing.T) {
	sess := newSession(1)
	sess.activate(activeTestWindow(t))

	require.True(t, sess.applySnapshot(sess.nextSeq(), nil, time.Now()))
	require.NotNil(t, sess.Snapshot())

	sess.deactivate()

	assert.False(t, sess.IsActive())
	assert.Nil(t, sess.Snapshot())
}
