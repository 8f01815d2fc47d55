// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mond

import (
	"maps"
	"slices"
	"strings"
)

// Associative-mapping combinators. All functions are pure: inputs are
// never mutated, results are freshly built maps.

// FilterWithKey returns the entries for which p(key, value) holds.
func FilterWithKey[K comparable, V any](p func(K, V) bool, m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if p(k, v) {
			out[k] = v
		}
	}
	return out
}

// FilterByKey returns the entries whose key is in the key space ks.
func FilterByKey[K comparable, V any](ks []K, m map[K]V) map[K]V {
	in := make(map[K]struct{}, len(ks))
	for _, k := range ks {
		in[k] = struct{}{}
	}
	return FilterWithKey(func(k K, _ V) bool {
		_, ok := in[k]
		return ok
	}, m)
}

// Lookup returns the value associated with a key, or None.
func Lookup[K comparable, V any](k K, m map[K]V) Option[V] {
	if v, ok := m[k]; ok {
		return Some(v)
	}
	return None[V]()
}

// GetByKeys looks up every key of the ordered key space ks and returns
// the sub-mapping restricted to exactly those keys. The first key in ks
// order with no entry short-circuits the scan and is returned as Left.
// The caller owns deduplication and ordering of ks.
func GetByKeys[K comparable, V any](ks []K, m map[K]V) Either[K, map[K]V] {
	type entry struct {
		k K
		v V
	}
	got := TraverseEither(ks, func(k K) Either[K, entry] {
		return FoldOption(Lookup(k, m), Left[K, entry](k), func(v V) Either[K, entry] {
			return Right[K](entry{k: k, v: v})
		})
	})
	return MapEither(got, func(es []entry) map[K]V {
		out := make(map[K]V, len(es))
		for _, e := range es {
			out[e.k] = e.v
		}
		return out
	})
}

// Delete returns a copy of the map without the given key.
func Delete[K comparable, V any](key K, m map[K]V) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		return map[K]V{}
	}
	delete(out, key)
	return out
}

// Insert returns a copy of the map with the key/value pair set,
// overwriting an existing entry for the key.
func Insert[K comparable, V any](key K, v V, m map[K]V) map[K]V {
	out := make(map[K]V, len(m)+1)
	maps.Copy(out, m)
	out[key] = v
	return out
}

// Merge is a curried one-level merge for two maps.
// Entries of the second map override same-keyed entries of the first.
func Merge[K comparable, V any](m1 map[K]V) func(map[K]V) map[K]V {
	return func(m2 map[K]V) map[K]V {
		out := make(map[K]V, len(m1)+len(m2))
		maps.Copy(out, m1)
		maps.Copy(out, m2)
		return out
	}
}

// DeepMerge recursively combines two nested maps. A key present in both
// operands whose values are both maps is merged recursively; every other
// conflict is resolved with d2's value. Keys present in only one operand
// are carried through.
//
// Recursion depth is bounded by the nesting depth of the inputs.
// Precondition: finite, tree-shaped nesting — self-referential maps are
// not handled.
func DeepMerge[K comparable](d1, d2 map[K]any) map[K]any {
	out := make(map[K]any, len(d1)+len(d2))
	maps.Copy(out, d1)
	for k, v2 := range d2 {
		if m1, ok := out[k].(map[K]any); ok {
			if m2, ok := v2.(map[K]any); ok {
				out[k] = DeepMerge(m1, m2)
				continue
			}
		}
		out[k] = v2
	}
	return out
}

// Unflatten expands keys containing sep into nested maps: each entry's
// key is split into path segments, a singleton nested map mirroring that
// path is built with the value at the leaf, and all singletons are folded
// together with DeepMerge starting from the empty map. Keys without sep
// become top-level leaves.
//
// Go maps have no defined iteration order, so entries are folded in
// sorted key order; DeepMerge's last-write-wins rule then resolves
// leaf-vs-subtree conflicts deterministically.
func Unflatten(m map[string]any, sep string) map[string]any {
	out := map[string]any{}
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	for _, k := range ks {
		out = DeepMerge(out, singleton(strings.Split(k, sep), m[k]))
	}
	return out
}

// singleton builds the nested map mirroring a key path, with the value
// at the leaf.
func singleton(path []string, v any) map[string]any {
	if len(path) == 1 {
		return map[string]any{path[0]: v}
	}
	return map[string]any{path[0]: singleton(path[1:], v)}
}
