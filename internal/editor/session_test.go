package editor_test

import (
	"errors"
	"testing"

	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SaveHandsOverWorkingCopy(t *testing.T) {
	var saved record.Record
	s := editor.NewSession(func(r record.Record) error {
		saved = r
		return nil
	})
	s.Open(record.Record{{Key: "a", Value: 1.0}})
	require.True(t, s.IsOpen())
	assert.False(t, s.Dirty())

	e := editor.New(s.Working(), s.Edit, editor.WithIDs(kvtree.Sequence("n")))
	require.True(t, e.Update(e.Tree()[0].ID, kvtree.FieldValue, "2"))
	assert.True(t, s.Dirty())

	require.NoError(t, s.Save())
	assert.False(t, s.IsOpen())
	assert.Equal(t, record.Record{{Key: "a", Value: 2.0}}, saved)
	assert.Equal(t, saved, s.Committed())
	assert.False(t, s.Dirty())
}

func TestSession_CancelRestoresCommitted(t *testing.T) {
	saves := 0
	s := editor.NewSession(func(record.Record) error {
		saves++
		return nil
	})
	orig := record.Record{{Key: "a", Value: 1.0}}
	s.Open(orig)
	s.Edit(record.Record{})
	require.True(t, s.Dirty())

	s.Cancel()
	assert.False(t, s.IsOpen())
	assert.Equal(t, orig, s.Working())
	assert.Zero(t, saves)
}

func TestSession_SaveFailureKeepsSessionOpen(t *testing.T) {
	boom := errors.New("disk full")
	s := editor.NewSession(func(record.Record) error { return boom })
	s.Open(record.Record{})
	s.Edit(record.Record{{Key: "k", Value: "v"}})

	err := s.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "saving parameters")
	assert.True(t, s.IsOpen())
	assert.True(t, s.Dirty())
}

func TestSession_SaveWhenClosed(t *testing.T) {
	s := editor.NewSession(nil)
	assert.ErrorIs(t, s.Save(), editor.ErrSessionClosed)

	s.Open(nil)
	assert.Equal(t, record.Record{}, s.Working())
	assert.NoError(t, s.Save())
}

func TestSession_ReorderIsDirty(t *testing.T) {
	s := editor.NewSession(nil)
	s.Open(record.Record{{Key: "a", Value: 1.0}, {Key: "b", Value: 2.0}})
	s.Edit(record.Record{{Key: "b", Value: 2.0}, {Key: "a", Value: 1.0}})
	assert.True(t, s.Dirty())
}
