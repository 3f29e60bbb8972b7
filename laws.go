// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

import "reflect"

// Law suites for Traverse and Collect instances.
//
// A law is an equality between two expressions over arbitrary inputs. The
// suites only state the obligations as [IsEq] pairs; a property harness
// discharges them by instantiating containers, effects and functions with
// generated values and checking [IsEq.Holds] on each.
//
// Collect refines Traverse, so its suite is checked as a composition: run
// the base [TraverseLaws] obligations first (obtained via
// [CollectLaws.TraverseLaws]), then the Collect-specific ones.

// IsEq pairs two erased values that a lawful instance must make equal.
type IsEq struct {
	Lhs Erased
	Rhs Erased
}

// Holds reports whether both sides are structurally equal.
//
// Structural equality is reflect.DeepEqual over the erased values; the
// canonical non-nil empty containers (see [Container.Empty]) keep this
// stable for structurally empty results.
func (e IsEq) Holds() bool {
	return reflect.DeepEqual(e.Lhs, e.Rhs)
}

// TraverseLaws states the obligations of a [Traverse] instance across the
// element types A, B, C. The three dictionary fields are the same
// container's instance at the three type pairs the laws range over.
type TraverseLaws[A, B, C any] struct {
	AB Traverse[A, B]
	BC Traverse[B, C]
	AC Traverse[A, C]
}

// TraverseIdentity: traversing under the identity effect is Map.
//
//	Traverse(IdentityAp, fa, f) == Map(fa, f)
func (l TraverseLaws[A, B, C]) TraverseIdentity(fa Container[A], f func(A) B) IsEq {
	lhs := l.AB.Traverse(identityAp{}, fa, func(a A) Erased {
		return f(a)
	})
	rhs := l.AB.Map(fa, f)
	return IsEq{Lhs: lhs, Rhs: rhs}
}

// TraverseSequentialComposition: traversing with f under M and then, inside
// M, traversing the result with g under N equals one traversal under the
// composed effect M∘N with g mapped over f's results.
//
// f maps A to M[B]; g maps B to N[C]; both sides are M[N[Container[C]]].
func (l TraverseLaws[A, B, C]) TraverseSequentialComposition(m, n Applicative, fa Container[A], f func(A) Erased, g func(B) Erased) IsEq {
	lhs := m.Map(l.AB.Traverse(m, fa, f), func(fb Erased) Erased {
		return l.BC.Traverse(n, fb.(Container[B]), g)
	})
	rhs := l.AC.Traverse(ComposeAp(m, n), fa, func(a A) Erased {
		return m.Map(f(a), func(b Erased) Erased {
			return g(b.(B))
		})
	})
	return IsEq{Lhs: lhs, Rhs: rhs}
}

// CollectLaws states the obligations of a [Collect] instance across the
// element types A, B, C. AA is the instance at the endo pair (A, A),
// needed by the laws that keep or filter elements in place.
type CollectLaws[A, B, C any] struct {
	AB Collect[A, B]
	BC Collect[B, C]
	AC Collect[A, C]
	AA Collect[A, A]
}

// TraverseLaws returns the base obligations this suite refines. A harness
// checks these first, then the Collect-specific laws.
func (l CollectLaws[A, B, C]) TraverseLaws() TraverseLaws[A, B, C] {
	return TraverseLaws[A, B, C]{AB: l.AB, BC: l.BC, AC: l.AC}
}

// MapOptionAIdentity: keeping every element with a pure decision is a
// no-op under the ambient effect.
//
//	MapOptionA(g, fa, a => g.Pure(Some(a))) == g.Pure(fa)
func (l CollectLaws[A, B, C]) MapOptionAIdentity(g Applicative, fa Container[A]) IsEq {
	lhs := l.AA.MapOptionA(g, fa, func(a A) Erased {
		return g.Pure(Some(a))
	})
	rhs := g.Pure(fa)
	return IsEq{Lhs: lhs, Rhs: rhs}
}

// MapOptionAComposition: filtering with f under M and then, inside M,
// filtering the result with g under N equals one filtering traversal under
// the composed effect M∘N with the Kleisli-composed decision function,
// where a None from f propagates as n.Pure(None) without running g.
//
// f maps A to M[Option[B]]; g maps B to N[Option[C]]; both sides are
// M[N[Container[C]]].
func (l CollectLaws[A, B, C]) MapOptionAComposition(m, n Applicative, fa Container[A], f func(A) Erased, g func(B) Erased) IsEq {
	lhs := m.Map(l.AB.MapOptionA(m, fa, f), func(fb Erased) Erased {
		return l.BC.MapOptionA(n, fb.(Container[B]), g)
	})
	rhs := l.AC.MapOptionA(ComposeAp(m, n), fa, func(a A) Erased {
		return m.Map(f(a), func(ob Erased) Erased {
			b, ok := ob.(Option[B]).Get()
			if !ok {
				return n.Pure(None[C]())
			}
			return g(b)
		})
	})
	return IsEq{Lhs: lhs, Rhs: rhs}
}

// MapOptionAConsistentWithTraverse: the instance's own Traverse method
// agrees with the derivation through MapOptionA. f maps A to G[B].
func (l CollectLaws[A, B, C]) MapOptionAConsistentWithTraverse(g Applicative, fa Container[A], f func(A) Erased) IsEq {
	lhs := l.AB.Traverse(g, fa, f)
	rhs := TraverseCollect[A, B](l.AB, g, fa, f)
	return IsEq{Lhs: lhs, Rhs: rhs}
}

// FilterConsistentWithMapOption: Filter agrees with MapOption over the
// predicate's Option image.
func (l CollectLaws[A, B, C]) FilterConsistentWithMapOption(fa Container[A], p func(A) bool) IsEq {
	lhs := Filter(l.AA, fa, p)
	rhs := MapOption(l.AA, fa, func(a A) Option[A] {
		if p(a) {
			return Some(a)
		}
		return None[A]()
	})
	return IsEq{Lhs: lhs, Rhs: rhs}
}

// CollectPartialConsistentWithMapOption: CollectPartial agrees with
// MapOption over the lifted partial function.
func (l CollectLaws[A, B, C]) CollectPartialConsistentWithMapOption(fa Container[A], pf Partial[A, B]) IsEq {
	lhs := CollectPartial(l.AB, fa, pf)
	rhs := MapOption(l.AB, fa, pf.Lift())
	return IsEq{Lhs: lhs, Rhs: rhs}
}
