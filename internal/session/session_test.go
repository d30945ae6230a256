package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
)

func newAid(t *testing.T) *aid.Aid {
	t.Helper()
	cfg := aid.DefaultConfig()
	cfg.LoadDefaultWordList = false
	a, err := aid.New(cfg, nil)
	require.NoError(t, err)
	return a.WithWordList([]string{"SLOSH", "SHUNT", "TRAIN", "CRANE"})
}

func TestNewSession(t *testing.T) {
	s := New()
	assert.Len(t, s.ID, 16)
	assert.Empty(t, s.History)
	assert.False(t, s.Solved())
	assert.NotEqual(t, s.ID, New().ID)
}

func TestRecordAppends(t *testing.T) {
	a := newAid(t)
	s := New()

	fb, err := a.Compare("SLOSH", "SHUNT")
	require.NoError(t, err)
	got, err := s.Record(a, aid.GuessRecord{Word: "SLOSH", Feedback: fb})
	require.NoError(t, err)
	assert.Equal(t, []string{"SHUNT"}, got)
	require.Len(t, s.History, 1)

	fb, err = a.Compare("SHUNT", "SHUNT")
	require.NoError(t, err)
	_, err = s.Record(a, aid.GuessRecord{Word: "SHUNT", Feedback: fb})
	require.NoError(t, err)
	assert.True(t, s.Solved())
	assert.Len(t, s.History, 2)
}

func TestRecordRejectsInvalidRecord(t *testing.T) {
	a := newAid(t)
	s := New()
	before := s.UpdatedAt

	_, err := s.Record(a, aid.GuessRecord{Word: "CAT", Feedback: aid.Feedback{aid.TileHit}})
	require.ErrorIs(t, err, aid.ErrInvalidInput)
	assert.Empty(t, s.History)
	assert.Equal(t, before, s.UpdatedAt)
}

func TestCloneIsDeep(t *testing.T) {
	s := New()
	s.History = append(s.History, aid.GuessRecord{Word: "CRANE", Feedback: aid.Feedback{aid.TileHit}})

	cp := s.Clone()
	cp.History[0].Feedback[0] = aid.TileAbsent
	cp.History = append(cp.History, aid.GuessRecord{Word: "TRAIN"})

	assert.Equal(t, aid.TileHit, s.History[0].Feedback[0])
	assert.Len(t, s.History, 1)
}
