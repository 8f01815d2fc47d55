// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mond_test

import (
	"testing"

	"code.hybscloud.com/mond"
)

func TestSomeGet(t *testing.T) {
	o := mond.Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatal("expected Some")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestNoneGet(t *testing.T) {
	o := mond.None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatal("expected None")
	}
	v, ok := o.Get()
	if ok || v != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", v, ok)
	}
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var o mond.Option[string]
	if !o.IsNone() {
		t.Fatal("zero value should be None")
	}
}

func TestOptionOf(t *testing.T) {
	x := 7
	if v := mond.OptionOf(&x).GetOrElse(0); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
	if o := mond.OptionOf[int](nil); !o.IsNone() {
		t.Fatal("nil pointer should produce None")
	}
}

func TestMapOptionSome(t *testing.T) {
	o := mond.MapOption(mond.Some(21), func(x int) int { return x * 2 })
	if v := o.GetOrElse(0); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestMapOptionNoneSkipsFunc(t *testing.T) {
	calls := 0
	o := mond.MapOption(mond.None[int](), func(x int) int {
		calls++
		return x
	})
	if !o.IsNone() {
		t.Fatal("expected None")
	}
	if calls != 0 {
		t.Fatalf("f invoked %d times on None, want 0", calls)
	}
}

func TestFlatMapOption(t *testing.T) {
	half := func(x int) mond.Option[int] {
		if x%2 != 0 {
			return mond.None[int]()
		}
		return mond.Some(x / 2)
	}
	if v := mond.FlatMapOption(mond.Some(84), half).GetOrElse(0); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if o := mond.FlatMapOption(mond.Some(3), half); !o.IsNone() {
		t.Fatal("expected None for odd input")
	}
	if o := mond.FlatMapOption(mond.None[int](), half); !o.IsNone() {
		t.Fatal("expected None to propagate")
	}
}

func TestGetOrElse(t *testing.T) {
	if v := mond.Some("a").GetOrElse("d"); v != "a" {
		t.Fatalf("got %q, want %q", v, "a")
	}
	if v := mond.None[string]().GetOrElse("d"); v != "d" {
		t.Fatalf("got %q, want %q", v, "d")
	}
}

func TestOrElse(t *testing.T) {
	if v := mond.Some(1).OrElse(mond.Some(2)).GetOrElse(0); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
	if v := mond.None[int]().OrElse(mond.Some(2)).GetOrElse(0); v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

func TestFoldOption(t *testing.T) {
	double := func(x int) int { return x * 2 }
	if v := mond.FoldOption(mond.Some(21), -1, double); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if v := mond.FoldOption(mond.None[int](), -1, double); v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
}

func TestMatchOption(t *testing.T) {
	desc := func(o mond.Option[int]) string {
		return mond.MatchOption(o,
			func() string { return "nothing" },
			func(x int) string { return "some" },
		)
	}
	if got := desc(mond.Some(1)); got != "some" {
		t.Fatalf("got %q, want %q", got, "some")
	}
	if got := desc(mond.None[int]()); got != "nothing" {
		t.Fatalf("got %q, want %q", got, "nothing")
	}
}
