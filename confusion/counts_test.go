package confusion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confmat/confusion"
)

// Concrete scenario from the package docs: labels {Happy, Sad} with
// [[1,2],[3,4]] yields {TP:1, FP:2, FN:3, TN:4} for "Happy".
func TestCountsFor_Happy(t *testing.T) {
	m := newHappySad(t)

	c, err := m.CountsFor("Happy")
	require.NoError(t, err)
	assert.Equal(t, confusion.Counts{
		TruePositive:  1,
		TrueNegative:  4,
		FalsePositive: 2,
		FalseNegative: 3,
	}, c)
}

func TestCountsFor_Sad(t *testing.T) {
	m := newHappySad(t)

	c, err := m.CountsFor("Sad")
	require.NoError(t, err)
	assert.Equal(t, confusion.Counts{
		TruePositive:  4,
		TrueNegative:  1,
		FalsePositive: 3,
		FalseNegative: 2,
	}, c)
	assert.Equal(t, 10.0, c.Total(), "per-label total equals the grand total")
}

func TestCountsFor_BadLabel(t *testing.T) {
	m := newHappySad(t)

	_, err := m.CountsFor("")
	assert.ErrorIs(t, err, confusion.ErrInvalidLabel)

	_, err = m.CountsFor("Angry")
	assert.ErrorIs(t, err, confusion.ErrUnknownLabel)
}

func TestAllCounts_LabelOrder(t *testing.T) {
	m := newHappySad(t)

	all := m.AllCounts()
	require.Len(t, all, 2)

	happy, err := m.CountsFor("Happy")
	require.NoError(t, err)
	sad, err := m.CountsFor("Sad")
	require.NoError(t, err)
	assert.Equal(t, happy, all[0])
	assert.Equal(t, sad, all[1])
}

// SumCounts must equal the element-wise sum of AllCounts — the micro pool.
func TestSumCounts_MatchesManualPooling(t *testing.T) {
	m, err := confusion.New(
		[]string{"A", "B", "C"},
		[][]float64{{5, 1, 0}, {2, 7, 1}, {0, 3, 9}},
	)
	require.NoError(t, err)

	var manual confusion.Counts
	for _, c := range m.AllCounts() {
		manual = manual.Add(c)
	}
	assert.Equal(t, manual, m.SumCounts())

	// For a square matrix the pooled TP is the trace.
	assert.Equal(t, 5.0+7.0+9.0, m.SumCounts().TruePositive)
}

// Counts are derived, never cached: they track mutations immediately.
func TestCounts_TrackMutation(t *testing.T) {
	m := newHappySad(t)
	require.NoError(t, m.SetMatrix([][]float64{{10, 0}, {0, 10}}))

	c, err := m.CountsFor("Happy")
	require.NoError(t, err)
	assert.Equal(t, confusion.Counts{TruePositive: 10, TrueNegative: 10}, c)
}
