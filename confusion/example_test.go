package confusion_test

import (
	"fmt"

	"github.com/katalvlaran/confmat/confusion"
)

// ExampleNew builds a small two-class matrix and reads its class counts.
func ExampleNew() {
	m, _ := confusion.New(
		[]string{"Happy", "Sad"},
		[][]float64{{1, 2}, {3, 4}},
	)

	c, _ := m.CountsFor("Happy")
	fmt.Println("TP:", c.TruePositive)
	fmt.Println("TN:", c.TrueNegative)
	fmt.Println("FP:", c.FalsePositive)
	fmt.Println("FN:", c.FalseNegative)

	// Output:
	// TP: 1
	// TN: 4
	// FP: 2
	// FN: 3
}

// ExampleMatrix_Normalize rescales into the unit range and undoes it.
func ExampleMatrix_Normalize() {
	m, _ := confusion.New(
		[]string{"Happy", "Sad"},
		[][]float64{{1, 2}, {3, 4}},
	)

	_ = m.Normalize(0, 1, confusion.WithFractionDigits(2))
	fmt.Println("normalized:", m.Cells())

	m.RevertNormalization()
	fmt.Println("reverted:  ", m.Cells())

	// Output:
	// normalized: [[0 0.33] [0.67 1]]
	// reverted:   [[1 2] [3 4]]
}
