package confusion_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/confmat/confusion"
)

// benchMatrix builds an n×n matrix with a nonzero origin cell so that
// normalization stays legal.
func benchMatrix(b *testing.B, n int) *confusion.Matrix {
	b.Helper()

	labels := make([]string, n)
	cells := make([][]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = fmt.Sprintf("class-%d", i)
		cells[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cells[i][j] = float64(1 + (i+j)%7)
		}
	}

	m, err := confusion.New(labels, cells)
	if err != nil {
		b.Fatalf("benchMatrix: %v", err)
	}

	return m
}

func BenchmarkSumCounts100(b *testing.B) {
	m := benchMatrix(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SumCounts()
	}
}

func BenchmarkNormalizeRevert100(b *testing.B) {
	m := benchMatrix(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Normalize(1, 2); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
		if !m.RevertNormalization() {
			b.Fatal("revert failed: empty history")
		}
	}
}
