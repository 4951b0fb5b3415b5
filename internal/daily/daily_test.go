package daily

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-02-28", DateKey(d))
}

func TestSourceStablePerDay(t *testing.T) {
	morning := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)

	a := NewSource(morning, "salt")
	b := NewSource(evening, "salt")
	assert.Equal(t, "2026-10-18", a.Date())
	for _, n := range []int{1, 2, 7, 1000, 1 << 30} {
		assert.Equal(t, a.IntN(n), b.IntN(n), "n=%d", n)
		v := a.IntN(n)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, n)
	}
}

func TestSourceVariesBySaltAndDate(t *testing.T) {
	const n = 1 << 30
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	seen := map[int]bool{}
	for i := 0; i < 10; i++ {
		seen[NewSource(day.AddDate(0, 0, i), "salt").IntN(n)] = true
	}
	assert.Greater(t, len(seen), 1)

	assert.NotEqual(t, NewSource(day, "salt-a").IntN(n), NewSource(day, "salt-b").IntN(n))
}

func TestSourceLongSalt(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	src := NewSource(day, strings.Repeat("s", 200))
	require.NotPanics(t, func() { src.IntN(10) })
}

func TestSourceRejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { NewSource(time.Now(), "").IntN(0) })
}
