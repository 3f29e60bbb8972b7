// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect

// Option represents a value that is either present (Some) or absent (None).
// It is the per-element decision type of [Collect.MapOptionA]: Some keeps
// the transformed element, None drops it.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value if present, otherwise the fallback.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Option is itself a container of at most one element, so it participates
// in the [Container] hierarchy: None is the empty shape.

// Empty implements [Container]. The empty Option is None.
func (Option[A]) Empty() Container[A] { return None[A]() }

// Len implements [Container]: 1 for Some, 0 for None.
func (o Option[A]) Len() int {
	if o.present {
		return 1
	}
	return 0
}

// OptionCollect is the [Collect] instance for the [Option] container.
// Its container values are Option[A]; removal turns Some into None.
type OptionCollect[A, B any] struct{}

// Map implements [Traverse]: applies f under Some, preserves None.
func (OptionCollect[A, B]) Map(fa Container[A], f func(A) B) Container[B] {
	if a, ok := fa.(Option[A]).Get(); ok {
		return Some(f(a))
	}
	return None[B]()
}

// Traverse implements [Traverse] by keeping every element.
func (c OptionCollect[A, B]) Traverse(g Applicative, fa Container[A], f func(A) Erased) Erased {
	return TraverseCollect[A, B](c, g, fa, f)
}

// MapOptionA implements [Collect]. None traverses to Pure(None) — there is
// no element, hence no effect to sequence. Some sequences f's effect and
// keeps or drops the single element by its decision.
func (OptionCollect[A, B]) MapOptionA(g Applicative, fa Container[A], f func(A) Erased) Erased {
	a, ok := fa.(Option[A]).Get()
	if !ok {
		return g.Pure(None[B]())
	}
	return g.Map(f(a), func(ob Erased) Erased {
		if b, ok := ob.(Option[B]).Get(); ok {
			return Some(b)
		}
		return None[B]()
	})
}
