package aid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	lists map[string][]string
	names []string
}

func (s *stubSource) Load(name string) ([]string, error) {
	s.names = append(s.names, name)
	words, ok := s.lists[name]
	if !ok {
		return nil, errors.New("missing " + name)
	}
	return words, nil
}

func TestNewLoadsDefaultWordList(t *testing.T) {
	src := &stubSource{lists: map[string][]string{DefaultWordListName: {"CRANE", "SHUNT"}}}
	a, err := New(DefaultConfig(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultWordListName}, src.names)
	assert.Equal(t, []string{"CRANE", "SHUNT"}, a.Words())
	assert.Equal(t, RenderBlocks, a.Rendering())
	assert.Equal(t, DefaultWordLength, a.WordLength())
}

func TestNewSkipsWordListWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoadDefaultWordList = false
	a, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, a.Words())
}

func TestNewWordListErrors(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	require.ErrorIs(t, err, ErrNoWordList)

	cfg := DefaultConfig()
	cfg.WordListName = "nope.txt"
	_, err = New(cfg, &stubSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoadDefaultWordList = false

	bad := cfg
	bad.Rendering = "emoji"
	_, err := New(bad, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "emoji")

	bad = cfg
	bad.WordLength = 0
	_, err = New(bad, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	ok := cfg
	ok.Rendering = "ALPHA"
	a, err := New(ok, nil)
	require.NoError(t, err)
	assert.Equal(t, RenderAlpha, a.Rendering())
}

func TestWithWordListLeavesOriginalUntouched(t *testing.T) {
	a := newTestAid(t)
	b := a.WithWordList([]string{"CRANE"})
	assert.Nil(t, a.Words())
	assert.Equal(t, []string{"CRANE"}, b.Words())
}
