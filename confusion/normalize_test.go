package confusion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confmat/confusion"
)

func TestNormalize_UnitRange(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(0, 1))

	// min=1, max=4: [0][0] -> (1-1)/3 = 0, [1][1] -> (4-1)/3 = 1.
	cells := m.Cells()
	assert.InDelta(t, 0.0, cells[0][0], 1e-12)
	assert.InDelta(t, 1.0/3.0, cells[0][1], 1e-12)
	assert.InDelta(t, 2.0/3.0, cells[1][0], 1e-12)
	assert.InDelta(t, 1.0, cells[1][1], 1e-12)
	assert.Equal(t, 1, m.HistoryLen())
}

func TestNormalize_ArbitraryRange(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(10, 20))

	cells := m.Cells()
	assert.InDelta(t, 10.0, cells[0][0], 1e-12)
	assert.InDelta(t, 20.0, cells[1][1], 1e-12)
	assert.InDelta(t, 10.0+10.0/3.0, cells[0][1], 1e-12)
}

func TestNormalize_InvalidRange(t *testing.T) {
	m := newHappySad(t)

	assert.ErrorIs(t, m.Normalize(1, 0), confusion.ErrInvalidRange, "min >= max must be rejected")
	assert.ErrorIs(t, m.Normalize(1, 1), confusion.ErrInvalidRange)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Cells(), "failed Normalize must not mutate")
	assert.Equal(t, 0, m.HistoryLen(), "failed Normalize must not push a snapshot")
}

func TestNormalize_ZeroOriginRejected(t *testing.T) {
	m, err := confusion.New([]string{"A", "B"}, [][]float64{{0, 2}, {3, 4}})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Normalize(0, 1), confusion.ErrNormalization,
		"the zero-origin quirk disables min/max and therefore normalization")
}

func TestNormalize_FlatMatrixRejected(t *testing.T) {
	m, err := confusion.New([]string{"A", "B"}, [][]float64{{5, 5}, {5, 5}})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Normalize(0, 1), confusion.ErrNormalization,
		"min == max would divide by zero; rejected instead of producing NaN")
	assert.Equal(t, 0, m.HistoryLen())
}

func TestNormalize_FractionDigits(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(0, 1, confusion.WithFractionDigits(2)))

	cells := m.Cells()
	assert.InDelta(t, 0.33, cells[0][1], 1e-12)
	assert.InDelta(t, 0.67, cells[1][0], 1e-12)
}

func TestWithFractionDigits_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { confusion.WithFractionDigits(-1) })
	assert.Panics(t, func() { confusion.WithFractionDigits(21) })
	assert.NotPanics(t, func() { confusion.WithFractionDigits(0) })
	assert.NotPanics(t, func() { confusion.WithFractionDigits(20) })
}

// Round-trip: Normalize followed by RevertNormalization restores the exact
// pre-normalize values.
func TestRevertNormalization_RoundTrip(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(0, 1))
	require.True(t, m.RevertNormalization())

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Cells(), "revert must be bit-identical")
	assert.Equal(t, 0, m.HistoryLen())
}

func TestRevertNormalization_EmptyHistoryNoOp(t *testing.T) {
	m := newHappySad(t)

	assert.False(t, m.RevertNormalization(), "empty history reverts nothing")
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Cells())
}

// Snapshots are deep copies: later mutations of the live matrix never leak
// into a previously pushed snapshot.
func TestRevertNormalization_SnapshotIndependence(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(1, 2))
	require.NoError(t, m.SetMatrix([][]float64{{8, 8}, {8, 9}}))

	require.True(t, m.RevertNormalization())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Cells(),
		"snapshot must reflect the pre-normalize state, not later mutations")
}

func TestRevertNormalization_LIFO(t *testing.T) {
	m := newHappySad(t)

	// First pass keeps [0][0] at 1 so a second pass stays normalizable.
	require.NoError(t, m.Normalize(1, 2))
	afterFirst := m.Cells()
	require.NoError(t, m.Normalize(10, 20))
	require.Equal(t, 2, m.HistoryLen())

	require.True(t, m.RevertNormalization())
	assert.Equal(t, afterFirst, m.Cells(), "newest snapshot pops first")

	require.True(t, m.RevertNormalization())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Cells())
}

// RevertAllNormalizations restores the oldest snapshot — the state before
// the first Normalize call — and clears the stack.
func TestRevertAllNormalizations(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(1, 2))
	require.NoError(t, m.Normalize(10, 20))
	require.NoError(t, m.Normalize(100, 200))
	require.Equal(t, 3, m.HistoryLen())

	require.True(t, m.RevertAllNormalizations())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Cells())
	assert.Equal(t, 0, m.HistoryLen(), "revert-all clears the stack")

	assert.False(t, m.RevertAllNormalizations(), "second call is a no-op")
}

// A normalized matrix with its minimum mapped to 0 lands on the zero-origin
// quirk: the result cannot be normalized again until reverted.
func TestNormalize_UnitRangeThenQuirk(t *testing.T) {
	m := newHappySad(t)

	require.NoError(t, m.Normalize(0, 1))
	assert.ErrorIs(t, m.Normalize(0, 1), confusion.ErrNormalization)

	require.True(t, m.RevertNormalization())
	assert.NoError(t, m.Normalize(0, 1))
}
