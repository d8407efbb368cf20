package named

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformRandomSample(t *testing.T) {
	b := newTestBackend()
	axes := AxisSet{{"row", 4}, {"col", 8}}

	u, err := NewUniformRandomSample(2, 5, axes, 42, b)
	require.NoError(t, err)

	a, err := u.Materialize()
	require.NoError(t, err)
	assert.Equal(t, axes, a.Axes())
	for _, v := range a.Buffer().AsFloat64() {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}

	t.Run("same seed reproduces", func(t *testing.T) {
		again, err := u.Materialize()
		require.NoError(t, err)
		assert.True(t, a.Equal(again))
	})
	t.Run("different seed differs", func(t *testing.T) {
		other, err := NewUniformRandomSample(2, 5, axes, 43, b)
		require.NoError(t, err)
		oa, err := other.Materialize()
		require.NoError(t, err)
		assert.False(t, a.Equal(oa))
	})
	t.Run("duplicate axes rejected", func(t *testing.T) {
		_, err := NewUniformRandomSample(2, 5, AxisSet{{"x", 2}, {"x", 3}}, 42, b)
		assert.ErrorIs(t, err, ErrAxisMismatch)
	})
}

func TestUniformRandomSample_NegativeSeedDrawsFresh(t *testing.T) {
	b := newTestBackend()

	u, err := NewUniformRandomSample(0, 1, AxisSet{{"x", 16}}, -1, b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, u.Seed, int64(0), "drawn seed is stored")

	first, err := u.Materialize()
	require.NoError(t, err)
	second, err := u.Materialize()
	require.NoError(t, err)
	assert.True(t, first.Equal(second), "stored seed keeps Materialize repeatable")
}

func TestNormalRandomSample(t *testing.T) {
	b := newTestBackend()

	n, err := NewNormalRandomSample(10, 2, AxisSet{{"x", 2000}}, 7, b)
	require.NoError(t, err)

	a, err := n.Materialize()
	require.NoError(t, err)

	mean, err := a.Mean()
	require.NoError(t, err)
	m, err := mean.Item()
	require.NoError(t, err)
	assert.InDelta(t, 10, m, 0.3)

	sd, err := a.Std()
	require.NoError(t, err)
	s, err := sd.Item()
	require.NoError(t, err)
	assert.InDelta(t, 2, s, 0.3)

	t.Run("same seed reproduces", func(t *testing.T) {
		again, err := n.Materialize()
		require.NoError(t, err)
		assert.True(t, a.Equal(again))
	})
	t.Run("negative width rejected", func(t *testing.T) {
		_, err := NewNormalRandomSample(0, -1, AxisSet{{"x", 4}}, 7, b)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestStratifiedRandomSpace(t *testing.T) {
	b := newTestBackend()

	s, err := NewStratifiedRandomSpace(0, 10, "x", 10, false, 42, b)
	require.NoError(t, err)

	a, err := s.Materialize()
	require.NoError(t, err)
	assert.Equal(t, AxisSet{{"x", 10}}, a.Axes())

	centers, err := s.Centers().Materialize()
	require.NoError(t, err)
	step := s.Centers().Step()
	assert.Equal(t, 1.0, step)

	samples := a.Buffer().AsFloat64()
	grid := centers.Buffer().AsFloat64()
	for i, v := range samples {
		assert.LessOrEqual(t, math.Abs(v-grid[i]), step/2,
			"sample %d strays from its cell", i)
	}

	t.Run("same seed reproduces", func(t *testing.T) {
		again, err := s.Materialize()
		require.NoError(t, err)
		assert.True(t, a.Equal(again))
	})
	t.Run("single sample stays put", func(t *testing.T) {
		one, err := NewStratifiedRandomSpace(3, 9, "x", 1, true, 42, b)
		require.NoError(t, err)
		a, err := one.Materialize()
		require.NoError(t, err)
		assert.Equal(t, []float64{3}, a.Buffer().AsFloat64())
	})
	t.Run("centers match the plain grid", func(t *testing.T) {
		lin, err := NewLinearSpace(0, 10, "x", 10, false, b)
		require.NoError(t, err)
		want, err := lin.Materialize()
		require.NoError(t, err)
		assert.True(t, centers.Equal(want))
	})
}
