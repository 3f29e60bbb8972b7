// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

// Erased represents a type-erased effect value. A value of type Erased
// stands for G[X] for whatever effect G the ambient [Applicative]
// dictionary interprets. Concrete types are recovered via type assertions
// at dictionary boundaries.
type Erased = any

// Applicative is the effect dictionary: the capability of embedding plain
// values into an effect and combining independent effects positionally.
//
// Because Go has no higher-kinded type parameters, the effect type G is not
// a type parameter; it is fixed by the dictionary value, and all G[X]
// values travel as [Erased]. Each dictionary documents the concrete Go type
// its erased values carry.
//
// Obligations:
//   - Map(fa, f) must equal Map2(fa, Pure(u), func(a, _) { return f(a) })
//     for any u — Map is kept in the interface because every instance
//     implements it directly and callers use it on hot paths.
//   - Map2 must sequence its first operand before its second.
type Applicative interface {
	// Pure embeds a plain value as a trivial effect: X -> G[X].
	Pure(v Erased) Erased

	// Map applies a pure function under the effect: G[X], (X -> Y) -> G[Y].
	Map(fa Erased, f func(Erased) Erased) Erased

	// Map2 combines two independent effects' results positionally:
	// G[X], G[Y], ((X, Y) -> Z) -> G[Z].
	Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased
}

// identityAp is the trivial effect: G[X] = X.
type identityAp struct{}

func (identityAp) Pure(v Erased) Erased { return v }

func (identityAp) Map(fa Erased, f func(Erased) Erased) Erased { return f(fa) }

func (identityAp) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	return f(fa, fb)
}

// IdentityAp returns the identity effect: erased values are the plain
// values themselves. It turns effectful operations into synchronous ones
// and backs [MapOption], [Filter], [CollectPartial] and [FlattenOption].
func IdentityAp() Applicative { return identityAp{} }

// optionAp is the absence effect: erased values are Option[Erased].
type optionAp struct{}

func (optionAp) Pure(v Erased) Erased { return Some[Erased](v) }

func (optionAp) Map(fa Erased, f func(Erased) Erased) Erased {
	if a, ok := fa.(Option[Erased]).Get(); ok {
		return Some(f(a))
	}
	return None[Erased]()
}

func (optionAp) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	a, ok := fa.(Option[Erased]).Get()
	if !ok {
		return None[Erased]()
	}
	b, ok := fb.(Option[Erased]).Get()
	if !ok {
		return None[Erased]()
	}
	return Some(f(a, b))
}

// OptionAp returns the absence effect: erased values are Option[Erased],
// and any None collapses the whole combination to None.
func OptionAp() Applicative { return optionAp{} }

// eitherAp is the fallibility effect: erased values are
// Either[Erased, Erased].
type eitherAp struct{}

func (eitherAp) Pure(v Erased) Erased { return Right[Erased, Erased](v) }

func (eitherAp) Map(fa Erased, f func(Erased) Erased) Erased {
	return MapEither(fa.(Either[Erased, Erased]), f)
}

func (eitherAp) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	ea := fa.(Either[Erased, Erased])
	a, ok := ea.GetRight()
	if !ok {
		return ea
	}
	eb := fb.(Either[Erased, Erased])
	b, ok := eb.GetRight()
	if !ok {
		return eb
	}
	return Right[Erased, Erased](f(a, b))
}

// EitherAp returns the fallibility effect: erased values are
// Either[Erased, Erased]. Map2 keeps the first Left, checking the first
// operand before the second.
func EitherAp() Applicative { return eitherAp{} }

// listAp is the nondeterminism effect: erased values are []Erased, one
// element per possible outcome.
type listAp struct{}

func (listAp) Pure(v Erased) Erased { return []Erased{v} }

func (listAp) Map(fa Erased, f func(Erased) Erased) Erased {
	xs := fa.([]Erased)
	out := make([]Erased, 0, len(xs))
	for _, a := range xs {
		out = append(out, f(a))
	}
	return out
}

// Map2 is the ordered cartesian product: outer loop over the first
// operand, inner loop over the second. This enumeration order is part of
// this effect's contract; FilterA over it yields subsequences in the
// order the doc example shows.
func (listAp) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	xs := fa.([]Erased)
	ys := fb.([]Erased)
	out := make([]Erased, 0, len(xs)*len(ys))
	for _, a := range xs {
		for _, b := range ys {
			out = append(out, f(a, b))
		}
	}
	return out
}

// ListAp returns the nondeterminism effect: erased values are []Erased,
// one element per outcome, combined as an ordered cartesian product.
func ListAp() Applicative { return listAp{} }

// composeAp nests two effects: G[X] = M[N[X]] with erased values being
// outer-effect values whose payloads are inner-effect values.
type composeAp struct {
	outer Applicative
	inner Applicative
}

func (c composeAp) Pure(v Erased) Erased {
	return c.outer.Pure(c.inner.Pure(v))
}

func (c composeAp) Map(fa Erased, f func(Erased) Erased) Erased {
	return c.outer.Map(fa, func(na Erased) Erased {
		return c.inner.Map(na, f)
	})
}

func (c composeAp) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	return c.outer.Map2(fa, fb, func(na, nb Erased) Erased {
		return c.inner.Map2(na, nb, f)
	})
}

// ComposeAp nests two effects into one: values of the composed effect are
// outer-effect values carrying inner-effect payloads (M[N[X]]). The
// composition of two lawful applicatives is itself lawful, which is what
// lets the law suite compare two-stage and one-stage filtering as values
// of a single effect.
func ComposeAp(outer, inner Applicative) Applicative {
	return composeAp{outer: outer, inner: inner}
}
