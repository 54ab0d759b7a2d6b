// Package confmat is an in-memory toolkit for evaluating classifiers
// from their confusion matrices — per-label quality metrics, three
// averaging strategies, and reversible value normalization.
//
// 🚀 What is confmat?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Labeled square confusion matrices with strict structural validation
//		• Class counts: true/false positives and negatives per label
//		• Metrics: accuracy, misclassification rate, precision, recall,
//		  specificity, F1 — per label or micro/macro/weighted averaged
//		• Min-max normalization with a full undo history
//
// ✨ Why choose confmat?
//
//   - Atomic mutations – a failed setter never leaves a half-applied matrix
//   - Value semantics – every boundary deep-copies; snapshots never alias
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, no global state
//
// Everything is organized under two subpackages:
//
//	confusion/ — the labeled matrix store, class-count extraction and
//	             normalization history
//	metrics/   — metric formulas, averaging modes and aggregate reports
//
// Quick example: labels {Happy, Sad} with matrix
//
//	    predicted:  Happy Sad
//	    Happy     [   1    2 ]
//	    Sad       [   3    4 ]
//
// yields counts {TP:1, FP:2, FN:3, TN:4} for "Happy" and a per-label
// accuracy of (1+4)/(1+2+3+4) = 0.5.
//
// Dive into the package docs of confusion and metrics for the full contract.
//
//	go get github.com/katalvlaran/confmat
package confmat
