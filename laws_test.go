// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collect_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/collect"
)

// listLaws is the CollectLaws suite instantiated for the List container at
// the element types (int, string, int).
func listLaws() collect.CollectLaws[int, string, int] {
	return collect.CollectLaws[int, string, int]{
		AB: collect.ListCollect[int, string]{},
		BC: collect.ListCollect[string, int]{},
		AC: collect.ListCollect[int, int]{},
		AA: collect.ListCollect[int, int]{},
	}
}

func optionLaws() collect.CollectLaws[int, string, int] {
	return collect.CollectLaws[int, string, int]{
		AB: collect.OptionCollect[int, string]{},
		BC: collect.OptionCollect[string, int]{},
		AC: collect.OptionCollect[int, int]{},
		AA: collect.OptionCollect[int, int]{},
	}
}

func entriesLaws() collect.CollectLaws[int, string, int] {
	return collect.CollectLaws[int, string, int]{
		AB: collect.EntriesCollect[string, int, string]{},
		BC: collect.EntriesCollect[string, string, int]{},
		AC: collect.EntriesCollect[string, int, int]{},
		AA: collect.EntriesCollect[string, int, int]{},
	}
}

// effects under test, with a constructor for a failing/zero-outcome value
// where the effect has one.
type testEffect struct {
	name string
	ap   collect.Applicative
	fail func() collect.Erased
}

func testEffects() []testEffect {
	return []testEffect{
		{name: "identity", ap: collect.IdentityAp()},
		{name: "option", ap: collect.OptionAp(), fail: func() collect.Erased {
			return collect.None[collect.Erased]()
		}},
		{name: "either", ap: collect.EitherAp(), fail: func() collect.Erased {
			return collect.Left[collect.Erased, collect.Erased]("boom")
		}},
		{name: "list", ap: collect.ListAp(), fail: func() collect.Erased {
			return []collect.Erased{}
		}},
	}
}

// decideAB maps int to M[Option[string]] for the effect e: elements
// divisible by failAt fail at the effect level (where the effect can),
// even elements are dropped, the rest are kept stringified.
func decideAB(e testEffect, failAt int) func(int) collect.Erased {
	return func(a int) collect.Erased {
		if e.fail != nil && failAt != 0 && a%failAt == 0 {
			return e.fail()
		}
		if a%2 == 0 {
			return e.ap.Pure(collect.None[string]())
		}
		return e.ap.Pure(collect.Some(strconv.Itoa(a)))
	}
}

// decideBC maps string to N[Option[int]]: even-length strings are dropped,
// the rest are kept by length; strings of length failAt fail at the effect
// level where the effect can.
func decideBC(e testEffect, failAt int) func(string) collect.Erased {
	return func(b string) collect.Erased {
		if e.fail != nil && failAt != 0 && len(b) == failAt {
			return e.fail()
		}
		if len(b)%2 == 0 {
			return e.ap.Pure(collect.None[int]())
		}
		return e.ap.Pure(collect.Some(len(b)))
	}
}

func TestListCollectLaws(t *testing.T) {
	laws := listLaws()
	fa := collect.List[int]{3, 10, 7, 44, 5, 6, 21}

	base := laws.TraverseLaws()
	eq := base.TraverseIdentity(fa, strconv.Itoa)
	if !eq.Holds() {
		t.Fatalf("traverse identity: %v != %v", eq.Lhs, eq.Rhs)
	}
	for _, e := range testEffects() {
		for _, n := range testEffects() {
			eq = base.TraverseSequentialComposition(e.ap, n.ap, fa,
				func(a int) collect.Erased { return e.ap.Pure(strconv.Itoa(a)) },
				func(b string) collect.Erased { return n.ap.Pure(len(b)) },
			)
			if !eq.Holds() {
				t.Fatalf("traverse composition (%s, %s): %v != %v", e.name, n.name, eq.Lhs, eq.Rhs)
			}
		}
	}

	for _, e := range testEffects() {
		eq := laws.MapOptionAIdentity(e.ap, fa)
		if !eq.Holds() {
			t.Fatalf("mapOptionA identity (%s): %v != %v", e.name, eq.Lhs, eq.Rhs)
		}
		eq = laws.MapOptionAConsistentWithTraverse(e.ap, fa, func(a int) collect.Erased {
			return e.ap.Pure(strconv.Itoa(a))
		})
		if !eq.Holds() {
			t.Fatalf("traverse consistency (%s): %v != %v", e.name, eq.Lhs, eq.Rhs)
		}
		for _, n := range testEffects() {
			eq = laws.MapOptionAComposition(e.ap, n.ap, fa, decideAB(e, 5), decideBC(n, 1))
			if !eq.Holds() {
				t.Fatalf("mapOptionA composition (%s, %s): %v != %v", e.name, n.name, eq.Lhs, eq.Rhs)
			}
		}
	}

	eq = laws.FilterConsistentWithMapOption(fa, func(a int) bool { return a%3 == 0 })
	if !eq.Holds() {
		t.Fatalf("filter consistency: %v != %v", eq.Lhs, eq.Rhs)
	}
	eq = laws.CollectPartialConsistentWithMapOption(fa, func(a int) (string, bool) {
		if a > 6 {
			return strconv.Itoa(a), true
		}
		return "", false
	})
	if !eq.Holds() {
		t.Fatalf("collect consistency: %v != %v", eq.Lhs, eq.Rhs)
	}
}

func TestOptionCollectLaws(t *testing.T) {
	laws := optionLaws()

	for _, fa := range []collect.Container[int]{collect.Some(7), collect.Some(4), collect.None[int]()} {
		for _, e := range testEffects() {
			eq := laws.MapOptionAIdentity(e.ap, fa)
			if !eq.Holds() {
				t.Fatalf("mapOptionA identity (%s, %v): %v != %v", e.name, fa, eq.Lhs, eq.Rhs)
			}
			for _, n := range testEffects() {
				eq = laws.MapOptionAComposition(e.ap, n.ap, fa, decideAB(e, 7), decideBC(n, 1))
				if !eq.Holds() {
					t.Fatalf("mapOptionA composition (%s, %s, %v): %v != %v", e.name, n.name, fa, eq.Lhs, eq.Rhs)
				}
			}
		}

		eq := laws.TraverseLaws().TraverseIdentity(fa, strconv.Itoa)
		if !eq.Holds() {
			t.Fatalf("traverse identity (%v): %v != %v", fa, eq.Lhs, eq.Rhs)
		}
	}
}

func TestEntriesCollectLaws(t *testing.T) {
	laws := entriesLaws()
	fa := collect.Entries[string, int]{
		{Fst: "a", Snd: 3},
		{Fst: "b", Snd: 10},
		{Fst: "c", Snd: 7},
		{Fst: "d", Snd: 44},
	}

	for _, e := range testEffects() {
		eq := laws.MapOptionAIdentity(e.ap, fa)
		if !eq.Holds() {
			t.Fatalf("mapOptionA identity (%s): %v != %v", e.name, eq.Lhs, eq.Rhs)
		}
		for _, n := range testEffects() {
			eq = laws.MapOptionAComposition(e.ap, n.ap, fa, decideAB(e, 5), decideBC(n, 1))
			if !eq.Holds() {
				t.Fatalf("mapOptionA composition (%s, %s): %v != %v", e.name, n.name, eq.Lhs, eq.Rhs)
			}
		}
	}

	eq := laws.TraverseLaws().TraverseIdentity(fa, strconv.Itoa)
	if !eq.Holds() {
		t.Fatalf("traverse identity: %v != %v", eq.Lhs, eq.Rhs)
	}
	eq = laws.FilterConsistentWithMapOption(fa, func(a int) bool { return a < 10 })
	if !eq.Holds() {
		t.Fatalf("filter consistency: %v != %v", eq.Lhs, eq.Rhs)
	}
}

func TestLawsEmptyContainers(t *testing.T) {
	laws := listLaws()
	empty := collect.List[int]{}

	for _, e := range testEffects() {
		eq := laws.MapOptionAIdentity(e.ap, empty)
		if !eq.Holds() {
			t.Fatalf("mapOptionA identity on empty (%s): %v != %v", e.name, eq.Lhs, eq.Rhs)
		}
		for _, n := range testEffects() {
			eq = laws.MapOptionAComposition(e.ap, n.ap, empty, decideAB(e, 5), decideBC(n, 1))
			if !eq.Holds() {
				t.Fatalf("mapOptionA composition on empty (%s, %s): %v != %v", e.name, n.name, eq.Lhs, eq.Rhs)
			}
		}
	}
}
