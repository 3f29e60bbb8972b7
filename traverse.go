// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

// Traverse is the capability of walking a container while sequencing an
// effect at each position and rebuilding the container inside that effect.
//
// An instance fixes the concrete container for one (A, B) element-type
// pair; instances are stateless values (typically empty structs) passed
// explicitly where a language with higher-kinded generics would infer them.
type Traverse[A, B any] interface {
	// Map rebuilds the container with f applied to every element.
	Map(fa Container[A], f func(A) B) Container[B]

	// Traverse walks fa in the container's traversal order, sequencing
	// f's effect at each element and rebuilding the container under the
	// effect.
	//
	// f maps an element to G[B] for g's effect G, as [Erased]; the result
	// is G[Container[B]], as Erased. The shape never changes: every
	// element is kept.
	Traverse(g Applicative, fa Container[A], f func(A) Erased) Erased
}
