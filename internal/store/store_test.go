package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/session"
)

// StoreSuite runs the same checks against every backend.
type StoreSuite struct {
	suite.Suite
	open  func(t *testing.T) Store
	store Store
	ctx   context.Context
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{open: func(*testing.T) Store { return NewMemoryStore() }})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreSuite{open: func(t *testing.T) Store {
		st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "aid.db"))
		require.NoError(t, err)
		return st
	}})
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, &StoreSuite{open: func(t *testing.T) Store {
		mini := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
		return NewRedisStoreWithClient(client, time.Hour)
	}})
}

func (s *StoreSuite) SetupTest() {
	s.store = s.open(s.T())
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func sampleSession() *session.Session {
	sess := session.New()
	sess.History = append(sess.History, aid.GuessRecord{
		Word:     "SLOSH",
		Feedback: aid.Feedback{aid.TileHit, aid.TileAbsent, aid.TileAbsent, aid.TileAbsent, aid.TilePresent},
	})
	return sess
}

func (s *StoreSuite) TestSaveAndGet() {
	sess := sampleSession()
	s.Require().NoError(s.store.Save(s.ctx, sess))

	got, err := s.store.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.ID, got.ID)
	s.Equal(sess.History, got.History)
	s.WithinDuration(sess.CreatedAt, got.CreatedAt, time.Millisecond)
}

func (s *StoreSuite) TestSaveOverwrites() {
	sess := sampleSession()
	s.Require().NoError(s.store.Save(s.ctx, sess))

	sess.History = append(sess.History, aid.GuessRecord{
		Word:     "SHUNT",
		Feedback: aid.Feedback{aid.TileHit, aid.TileHit, aid.TileHit, aid.TileHit, aid.TileHit},
	})
	s.Require().NoError(s.store.Save(s.ctx, sess))

	got, err := s.store.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Len(got.History, 2)
	s.True(got.Solved())
}

func (s *StoreSuite) TestGetReturnsIndependentCopy() {
	sess := sampleSession()
	s.Require().NoError(s.store.Save(s.ctx, sess))

	got, err := s.store.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	got.History = nil

	again, err := s.store.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Len(again.History, 1)
}

func (s *StoreSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestDelete() {
	sess := sampleSession()
	s.Require().NoError(s.store.Save(s.ctx, sess))
	s.Require().NoError(s.store.Delete(s.ctx, sess.ID))

	_, err := s.store.Get(s.ctx, sess.ID)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(s.store.Delete(s.ctx, sess.ID), ErrNotFound)
}

func TestOpen(t *testing.T) {
	st, err := Open(Options{})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = Open(Options{Backend: "etcd"})
	require.Error(t, err)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aid.db")
	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestSQLiteRejectsCorruptTimestamps(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "aid.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	sess := sampleSession()
	require.NoError(t, st.Save(ctx, sess))

	_, err = st.(*sqliteStore).db.ExecContext(ctx, `UPDATE sessions SET created_at='yesterday' WHERE id=?`, sess.ID)
	require.NoError(t, err)

	_, err = st.Get(ctx, sess.ID)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "created_at")
}
