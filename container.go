// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

// Container is the abstract container type the [Traverse] and [Collect]
// dictionaries operate on. Each dictionary instance fixes the concrete
// container and recovers it by type assertion, the same way [Applicative]
// dictionaries fix the concrete effect.
//
// User code may define its own containers: implement Container on the
// concrete type and supply a [Collect] instance for it.
type Container[T any] interface {
	// Empty returns this container shape's empty value. Implementations
	// must return a canonical non-nil value (e.g. List[T]{}, not a nil
	// slice) so that structurally empty results compare equal.
	Empty() Container[T]

	// Len reports the number of elements.
	Len() int
}

// List is an ordered sequence container.
type List[T any] []T

// Empty implements [Container]. The empty List is List[T]{}.
func (List[T]) Empty() Container[T] { return List[T]{} }

// Len implements [Container].
func (l List[T]) Len() int { return len(l) }

// ListCollect is the [Collect] instance for the [List] container.
// Traversal order is slice order; removal closes the gap, preserving the
// relative order of the kept elements.
type ListCollect[A, B any] struct{}

// Map implements [Traverse]: rebuilds the list with f applied elementwise.
func (ListCollect[A, B]) Map(fa Container[A], f func(A) B) Container[B] {
	la := fa.(List[A])
	lb := make(List[B], 0, len(la))
	for _, a := range la {
		lb = append(lb, f(a))
	}
	return lb
}

// Traverse implements [Traverse] by keeping every element.
func (c ListCollect[A, B]) Traverse(g Applicative, fa Container[A], f func(A) Erased) Erased {
	return TraverseCollect[A, B](c, g, fa, f)
}

// MapOptionA implements [Collect] as a left fold: the accumulator is the
// kept-so-far list under the effect, and each element's effect is
// sequenced after it via Map2, so effects occur once per element in slice
// order regardless of decisions. The combiner copies before appending —
// nondeterministic effects call it several times with the same prefix.
func (ListCollect[A, B]) MapOptionA(g Applicative, fa Container[A], f func(A) Erased) Erased {
	la := fa.(List[A])
	acc := g.Pure(List[B]{})
	for _, a := range la {
		acc = g.Map2(acc, f(a), func(xs, ob Erased) Erased {
			lb := xs.(List[B])
			b, ok := ob.(Option[B]).Get()
			if !ok {
				return lb
			}
			out := make(List[B], len(lb), len(lb)+1)
			copy(out, lb)
			return append(out, b)
		})
	}
	return acc
}
