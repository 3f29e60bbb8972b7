// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package collect provides effectful filter-map traversals over generic
// containers in Go.
//
// The core capability [Collect] generalizes "traverse with effectful
// filtering": given a container of elements and a function mapping each
// element to an optional value inside an effect, produce the effect of the
// container with the absent elements removed. Everything else in the
// package derives from that one primitive.
//
// # Design Philosophy
//
// collect provides:
//   - Minimal but complete dictionary interfaces for containers and effects
//   - A single primitive ([Collect.MapOptionA]) with all specializations derived
//   - Law suites stating the algebraic obligations of every instance
//
// Go has no higher-kinded type parameters, so neither the container type F
// nor the effect type G can be a type parameter. Both become explicit
// dictionaries:
//
//   - [Applicative]: the effect dictionary — Pure, Map, Map2 over [Erased]
//     values, where an Erased value stands for G[X] of the dictionary's
//     fixed effect G. Concrete types are recovered by assertion at
//     dictionary boundaries.
//   - [Traverse] and [Collect]: per-container dictionaries fixed at one
//     (A, B) element-type pair, operating on the [Container] interface and
//     asserting their own concrete container.
//
// All operations are pure: inputs are never mutated, results are freshly
// built, and the contract has no failure modes of its own — failure, if
// any, is whatever the caller's effect encodes.
//
// # Core Operation
//
//   - [Collect.MapOptionA]: map each element to G[Option[B]], sequence
//     every element's effect exactly once in traversal order, and rebuild
//     the container under G with the None-decided elements removed.
//     Removal happens under the effect, after sequencing: the operation is
//     equivalent to a full traversal into G[Container[Option[B]]] followed
//     by discarding Nones inside G.
//
// # Derived Operations
//
//   - [MapOption]: synchronous map+filter — MapOptionA under [IdentityAp]
//   - [CollectPartial]: apply a [Partial] function where defined, drop elsewhere
//   - [FlattenOption]: drop None elements, unwrap Some — MapOption with identity
//   - [FilterA]: effectful predicate filter, elements kept unchanged
//   - [Filter]: synchronous predicate filter, order-preserving
//   - [TraverseCollect]: plain traversal — MapOptionA keeping everything
//
// # Containers
//
//   - [List]: ordered sequence, instance [ListCollect]
//   - [Option]: at-most-one-element container, instance [OptionCollect]
//   - [Entries]: ordered key/value view of a map, instance [EntriesCollect];
//     [EntriesOfMap] builds a deterministic view in ascending key order
//
// [Either] is deliberately not a container — it has no empty shape — and
// participates as the fallibility effect instead.
//
// # Effects
//
//   - [IdentityAp]: G[X] = X, the trivial effect behind the synchronous ops
//   - [OptionAp]: absence — any None collapses the combination
//   - [EitherAp]: fallibility — the first Left wins
//   - [ListAp]: nondeterminism — Map2 is the ordered cartesian product
//   - [ComposeAp]: the nested effect M∘N, composing two lawful
//     applicatives into one
//
// FilterA over [ListAp] with a both-ways predicate enumerates all
// subsequences of a list; the enumeration order is ListAp's own contract,
// not a law of Collect.
//
// # Laws
//
// [TraverseLaws] states the base obligations (identity, sequential
// composition). [CollectLaws] refines them with:
//
//   - [CollectLaws.MapOptionAIdentity]: keeping everything under Pure is a no-op
//   - [CollectLaws.MapOptionAComposition]: nested two-effect filtering
//     equals one filtering traversal under [ComposeAp] with the
//     Kleisli-composed, None-propagating decision function
//
// plus consistency obligations tying the derived operations to the
// primitive. Laws are stated as [IsEq] pairs and discharged by a property
// harness over generated inputs.
//
// # Example
//
//	words := map[int]string{1: "one", 3: "three"}
//	out := collect.MapOption(
//		collect.ListCollect[int, string]{},
//		collect.List[int]{1, 2, 3, 4},
//		func(n int) collect.Option[string] {
//			if w, ok := words[n]; ok {
//				return collect.Some(w)
//			}
//			return collect.None[string]()
//		},
//	)
//	// out == collect.List[string]{"one", "three"}
package collect
