package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndGet(t *testing.T) {
	s := openTemp(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	seq, err := s.Add(Pairing{Left: "Physics", Right: "Art", At: at})
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	p, err := s.Pairing(seq)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Seq)
	assert.Equal(t, "Physics", p.Left)
	assert.Equal(t, "Art", p.Right)
	assert.True(t, at.Equal(p.At))
}

func TestPairingNotFound(t *testing.T) {
	s := openTemp(t)
	_, err := s.Pairing(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecentNewestFirst(t *testing.T) {
	s := openTemp(t)
	for _, right := range []string{"Art", "Economics", "Education"} {
		_, err := s.Add(Pairing{Left: "Geology", Right: right})
		require.NoError(t, err)
	}

	got, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Education", got[0].Right)
	assert.Equal(t, 3, got[0].Seq)
	assert.Equal(t, "Economics", got[1].Right)

	all, err := s.Recent(10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Add(Pairing{Left: "Biology", Right: "Linguistics"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Linguistics", got[0].Right)

	seq, err := s.Add(Pairing{Left: "Biology", Right: "Art"})
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}
