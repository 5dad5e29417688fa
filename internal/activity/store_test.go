package activity

import (
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(10)
	s.now = fixedClock(time.Unix(0, 0), 250*time.Millisecond)

	id := s.Start(KindSuggest, "teh cat sat")
	assert.Equal(t, 1, s.Pending(KindSuggest))
	assert.Equal(t, 0, s.Pending(KindEnhance))

	require.NoError(t, s.Finish(id, 2, nil))
	e, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, e.Status)
	assert.Equal(t, int64(250), e.DurationMs)
	assert.Equal(t, 2, e.Results)
	assert.Equal(t, 0, s.Pending(KindSuggest))

	id2 := s.Start(KindEnhance, "draft")
	require.NoError(t, s.Finish(id2, 0, errors.New("quota")))
	e, _ = s.Get(id2)
	assert.Equal(t, StatusError, e.Status)
	assert.Equal(t, "quota", e.ErrorMessage)
}

func TestStoreListNewestFirst(t *testing.T) {
	s := NewStore(10)
	for _, in := range []string{"a", "b", "c"} {
		s.Start(KindSuggest, in)
	}

	all := s.List(0)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Input)
	assert.Equal(t, "a", all[2].Input)
	assert.Len(t, s.List(2), 2)
}

func TestStoreLimit(t *testing.T) {
	s := NewStore(2)
	first := s.Start(KindSuggest, "1")
	s.Start(KindSuggest, "2")
	s.Start(KindSuggest, "3")

	assert.Equal(t, 2, s.Len())
	_, err := s.Get(first)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Finish(first, 0, nil), ErrNotFound)
	assert.ErrorIs(t, s.MarkStale(first), ErrNotFound)
}

func TestStoreMarkStale(t *testing.T) {
	s := NewStore(0)
	id := s.Start(KindSuggest, "x")
	require.NoError(t, s.MarkStale(id))
	e, _ := s.Get(id)
	assert.True(t, e.Stale)
}

func TestInputPreview(t *testing.T) {
	e := Entry{Input: "line one\n  line   two"}
	assert.Equal(t, "line one line two", e.InputPreview(40))
	assert.Equal(t, "line o...", e.InputPreview(9))

	accented := &Entry{Input: "café crème brûlée"}
	got := accented.InputPreview(8)
	assert.True(t, utf8.ValidString(got), "cut must land on a rune boundary: %q", got)
	assert.Equal(t, "café ...", got)
}
