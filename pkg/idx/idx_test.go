package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndSortable(t *testing.T) {
	a := New()
	b := New()

	require.NotEqual(t, a, b)
	require.Less(t, a.String(), b.String(), "monotonic ids should sort in creation order")
}

func TestNewAtEmbedsTime(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(ts)

	require.Equal(t, ts.UnixMilli(), id.Time().UnixMilli())
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse("  " + id.String() + " ")
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	for _, bad := range []string{"", "   ", "not-a-ulid", "01HZZZZZZZZZZZZZZZZZZZZZZZZ"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrInvalid, bad)
		require.False(t, Valid(bad))
	}
}

func TestZero(t *testing.T) {
	require.True(t, Zero.IsZero())
	require.True(t, Zero.Time().IsZero())
	require.False(t, New().IsZero())
}
