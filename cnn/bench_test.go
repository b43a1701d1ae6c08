// Package cnn_test provides benchmarks for the classifier operators at the
// 28×28 input geometry.
package cnn_test

import (
	"testing"

	"github.com/katalvlaran/glassocr/cnn"
	"github.com/katalvlaran/glassocr/matrix"
)

var sinkM *matrix.Dense

func BenchmarkConvolve28(b *testing.B) {
	b.ReportAllocs()
	X := randomDense(b, 28, 28, 1)
	K := randomDense(b, 3, 3, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := cnn.Convolve(X, K)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkMaxPool26(b *testing.B) {
	b.ReportAllocs()
	X := randomDense(b, 26, 26, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := cnn.MaxPool(X, cnn.DefaultPoolStep)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkConvPoolStage(b *testing.B) {
	b.ReportAllocs()
	stage := cnn.ConvPoolStage{Kernel: randomDense(b, 3, 3, 4), Bias: 0.1}
	X := randomDense(b, 28, 28, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := stage.Forward(X)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = out.Pooled
	}
}
