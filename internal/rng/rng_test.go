package rng

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicStreamsRepeat(t *testing.T) {
	t.Parallel()

	a := New(Deterministic, 42)
	b := New(Deterministic, 42)

	for i := 0; i < 5; i++ {
		ra, rb := a.Stream(), b.Stream()
		assert.Equal(t, ra.Address(), rb.Address())
		assert.Equal(t, ra.UUID(), rb.UUID())
		assert.Equal(t, ra.Uniform(0, 100), rb.Uniform(0, 100))
	}
}

func TestStreamsDiffer(t *testing.T) {
	t.Parallel()

	f := New(Deterministic, 7)
	assert.NotEqual(t, f.Stream().TxHash(), f.Stream().TxHash())
}

func TestHexFormats(t *testing.T) {
	t.Parallel()

	r := New(Deterministic, 1).Stream()
	addr := regexp.MustCompile(`^0x[0-9a-f]{40}$`)
	hash := regexp.MustCompile(`^0x[0-9a-f]{64}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, addr, r.Address())
		assert.Regexp(t, hash, r.TxHash())
		assert.Len(t, r.Hex(7), 7)
	}
}

func TestRanges(t *testing.T) {
	t.Parallel()

	r := New(Deterministic, 3).Stream()
	for i := 0; i < 1000; i++ {
		v := r.IntRange(2, 5)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 5)

		f := r.Uniform(-1.5, 1.5)
		require.GreaterOrEqual(t, f, -1.5)
		require.Less(t, f, 1.5)
	}
	assert.Equal(t, 4, r.IntRange(4, 4))
	assert.Equal(t, 2.0, r.Uniform(2, 2))
}

func TestWeightedNeverPicksZeroWeight(t *testing.T) {
	t.Parallel()

	r := New(Deterministic, 9).Stream()
	items := []string{"a", "b", "c"}
	weights := []float64{0.5, 0, 0.5}
	for i := 0; i < 500; i++ {
		assert.NotEqual(t, "b", Weighted(r, items, weights))
	}
}

func TestSampleIsDistinct(t *testing.T) {
	t.Parallel()

	r := New(Deterministic, 11).Stream()
	items := []int{1, 2, 3, 4, 5, 6}

	got := Sample(r, items, 4)
	require.Len(t, got, 4)
	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}

	assert.Len(t, Sample(r, items, 50), len(items))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, items, "input must not be reordered")
}

func TestFromSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FromSeed(5).Stream().Int63(), New(Deterministic, 5).Stream().Int63())
	assert.NotNil(t, FromSeed(0).Stream())
}
