package pipeline_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/glassocr/pipeline"
)

var sinkBest int

func BenchmarkInfer(b *testing.B) {
	set := randomSet(b, 1)
	img := randomImage(b, 28, 2)
	for _, n := range []int{1, 2, 8} {
		b.Run(fmt.Sprintf("parallel=%d", n), func(b *testing.B) {
			p, err := pipeline.New(set, pipeline.WithParallelism(n))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := p.Infer(context.Background(), img)
				if err != nil {
					b.Fatal(err)
				}
				sinkBest = res.Best
			}
		})
	}
}
