// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

// Collect operations.
//
// Minimal definition: MapOptionA is necessary and sufficient. Everything
// else — MapOption, CollectPartial, FlattenOption, FilterA, Filter and
// even Traverse itself — derives from it by fixing the effect, the
// decision function, or both.

// Collect is the capability of simultaneously mapping and effectfully
// filtering a container's elements in one traversal. It refines
// [Traverse]: a container that can be rebuilt under an effect, and whose
// shape additionally admits element removal.
type Collect[A, B any] interface {
	Traverse[A, B]

	// MapOptionA walks fa in traversal order, sequencing f's effect at
	// every element exactly once, and rebuilds the container under the
	// effect with the None-decided elements removed. Kept elements stay
	// in their original relative order; nothing is duplicated or
	// fabricated.
	//
	// f maps an element to G[Option[B]] for g's effect G, as [Erased];
	// the result is G[Container[B]], as Erased. Removal happens under the
	// effect, after sequencing: MapOptionA must be equivalent to a full
	// Traverse into G[Container[Option[B]]] followed by discarding the
	// Nones inside G. Effects of dropped elements still occur.
	//
	// There are no failure modes at this level; failure, if any, lives
	// inside the caller's effect.
	MapOptionA(g Applicative, fa Container[A], f func(A) Erased) Erased
}

// Partial is a function defined only for a subset of its inputs, in the
// comma-ok form: ok reports whether the function is defined at a.
// An undefined point and an explicit absence are the same thing here.
type Partial[A, B any] func(a A) (B, bool)

// Lift converts the partial function to a total Option-returning one.
func (p Partial[A, B]) Lift() func(A) Option[B] {
	return func(a A) Option[B] {
		if b, ok := p(a); ok {
			return Some(b)
		}
		return None[B]()
	}
}

// MapOption maps and filters synchronously: it is [Collect.MapOptionA]
// under the identity effect. Elements mapped to None are dropped.
func MapOption[A, B any](c Collect[A, B], fa Container[A], f func(A) Option[B]) Container[B] {
	out := c.MapOptionA(identityAp{}, fa, func(a A) Erased {
		return f(a)
	})
	return out.(Container[B])
}

// CollectPartial applies a partial function where it is defined and drops
// the elements where it is not: [MapOption] with the lifted function.
func CollectPartial[A, B any](c Collect[A, B], fa Container[A], pf Partial[A, B]) Container[B] {
	return MapOption(c, fa, pf.Lift())
}

// FlattenOption drops the None elements of a container of Options and
// unwraps the Somes: [MapOption] with the identity function.
func FlattenOption[A any](c Collect[Option[A], A], fa Container[Option[A]]) Container[A] {
	return MapOption(c, fa, func(oa Option[A]) Option[A] { return oa })
}

// FilterA filters with an effectful predicate. f maps an element to
// G[bool], as [Erased]; the result is G[Container[A]], as Erased. The
// element itself is kept unchanged when the predicate's result is true.
func FilterA[A any](c Collect[A, A], g Applicative, fa Container[A], f func(A) Erased) Erased {
	return c.MapOptionA(g, fa, func(a A) Erased {
		return g.Map(f(a), func(keep Erased) Erased {
			if keep.(bool) {
				return Some(a)
			}
			return None[A]()
		})
	})
}

// Filter filters synchronously with a pure predicate, preserving order:
// [FilterA] under the identity effect.
func Filter[A any](c Collect[A, A], fa Container[A], p func(A) bool) Container[A] {
	out := FilterA(c, identityAp{}, fa, func(a A) Erased {
		return p(a)
	})
	return out.(Container[A])
}

// TraverseCollect derives [Traverse.Traverse] from [Collect.MapOptionA] by
// unconditionally keeping every element: Collect is strictly more general
// than plain traversal. Instances implement their Traverse method with it.
func TraverseCollect[A, B any](c Collect[A, B], g Applicative, fa Container[A], f func(A) Erased) Erased {
	return c.MapOptionA(g, fa, func(a A) Erased {
		return g.Map(f(a), func(b Erased) Erased {
			return Some(b.(B))
		})
	})
}
