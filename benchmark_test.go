// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mond_test

import (
	"testing"

	"code.hybscloud.com/mond"
)

func BenchmarkFlatMapEitherChain(b *testing.B) {
	b.ReportAllocs()
	step := func(x int) mond.Either[string, int] { return mond.Right[string](x + 1) }
	for i := 0; i < b.N; i++ {
		e := mond.Right[string](0)
		for j := 0; j < 8; j++ {
			e = mond.FlatMapEither(e, step)
		}
		if v, _ := e.GetRight(); v != 8 {
			b.Fatalf("got %d, want 8", v)
		}
	}
}

func BenchmarkSequenceEither(b *testing.B) {
	b.ReportAllocs()
	xs := make([]mond.Either[string, int], 64)
	for i := range xs {
		xs[i] = mond.Right[string](i)
	}
	for i := 0; i < b.N; i++ {
		if e := mond.SequenceEither(xs); e.IsLeft() {
			b.Fatal("unexpected Left")
		}
	}
}

func BenchmarkDoEither(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result := mond.DoEither[string, int](
			mond.YieldEither(mond.Right[string](20), func(x int) mond.Step {
				return mond.YieldEither(mond.Right[string](22), func(y int) mond.Step {
					return mond.Return(x + y)
				})
			}),
		)
		if v, _ := result.GetRight(); v != 42 {
			b.Fatalf("got %d, want 42", v)
		}
	}
}

func BenchmarkDeepMerge(b *testing.B) {
	b.ReportAllocs()
	d1 := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": 3}
	d2 := map[string]any{"a": map[string]any{"y": 4, "z": 5}, "c": 6}
	for i := 0; i < b.N; i++ {
		mond.DeepMerge(d1, d2)
	}
}

func BenchmarkUnflatten(b *testing.B) {
	b.ReportAllocs()
	flat := map[string]any{
		"db.host":        "localhost",
		"db.port":        5432,
		"db.tls.enabled": true,
		"api.timeout":    "5s",
		"name":           "svc",
	}
	for i := 0; i < b.N; i++ {
		mond.Unflatten(flat, ".")
	}
}
