// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

import (
	"cmp"
	"slices"
)

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Entries is an ordered sequence of key/value pairs: the value view of a
// map, with an explicit, stable entry order. The [EntriesCollect] instance
// traverses values and leaves keys untouched; dropping a value drops its
// whole entry.
type Entries[K, V any] []Pair[K, V]

// EntriesOfMap builds Entries from a Go map in ascending key order, giving
// map data a deterministic traversal order.
func EntriesOfMap[K cmp.Ordered, V any](m map[K]V) Entries[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	es := make(Entries[K, V], 0, len(m))
	for _, k := range keys {
		es = append(es, Pair[K, V]{Fst: k, Snd: m[k]})
	}
	return es
}

// Values returns the values in entry order.
func (es Entries[K, V]) Values() List[V] {
	vs := make(List[V], 0, len(es))
	for _, e := range es {
		vs = append(vs, e.Snd)
	}
	return vs
}

// Empty implements [Container]. The empty Entries is Entries[K, V]{}.
func (Entries[K, V]) Empty() Container[V] { return Entries[K, V]{} }

// Len implements [Container].
func (es Entries[K, V]) Len() int { return len(es) }

// EntriesCollect is the [Collect] instance for the [Entries] container,
// elementwise over values. K rides along unchanged.
type EntriesCollect[K, A, B any] struct{}

// Map implements [Traverse]: rebuilds the entries with f applied to each
// value, keys preserved.
func (EntriesCollect[K, A, B]) Map(fa Container[A], f func(A) B) Container[B] {
	ea := fa.(Entries[K, A])
	eb := make(Entries[K, B], 0, len(ea))
	for _, e := range ea {
		eb = append(eb, Pair[K, B]{Fst: e.Fst, Snd: f(e.Snd)})
	}
	return eb
}

// Traverse implements [Traverse] by keeping every element.
func (c EntriesCollect[K, A, B]) Traverse(g Applicative, fa Container[A], f func(A) Erased) Erased {
	return TraverseCollect[A, B](c, g, fa, f)
}

// MapOptionA implements [Collect]: a left fold in entry order, same
// discipline as the List instance. A None decision removes the entire
// entry, key included.
func (EntriesCollect[K, A, B]) MapOptionA(g Applicative, fa Container[A], f func(A) Erased) Erased {
	ea := fa.(Entries[K, A])
	acc := g.Pure(Entries[K, B]{})
	for _, e := range ea {
		k := e.Fst
		acc = g.Map2(acc, f(e.Snd), func(xs, ob Erased) Erased {
			eb := xs.(Entries[K, B])
			b, ok := ob.(Option[B]).Get()
			if !ok {
				return eb
			}
			out := make(Entries[K, B], len(eb), len(eb)+1)
			copy(out, eb)
			return append(out, Pair[K, B]{Fst: k, Snd: b})
		})
	}
	return acc
}
