package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDefined(t *testing.T) {
	cases := map[string]struct {
		e    Element
		want bool
	}{
		"int":           {Int(3), true},
		"float":         {MustFloat(3.14), true},
		"string":        {Str("foo"), true},
		"any":           {Any, false},
		"none":          {None, false},
		"defined tuple": {Nested(NewTuple(Int(1), Str("x"))), true},
		"undefined tuple": {
			Nested(NewTuple(Int(1), Any)), false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.e.IsDefined())
		})
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Element
		matches bool
	}{
		{"equal ints", Int(1), Int(1), true},
		{"unequal ints", Int(1), Int(2), false},
		{"any matches int", Any, Int(1), true},
		{"int matches any", Int(1), Any, true},
		{"any does not match any", Any, Any, false},
		{"none matches nothing", None, Int(1), false},
		{"nothing matches none", Int(1), None, false},
		{"any does not match none", Any, None, false},
		{"different kinds", Int(1), Str("1"), false},
		{"equal strings", Str("a"), Str("a"), true},
		{"bit exact floats equal", MustFloat(0.1), MustFloat(0.1), true},
		{"close but not bit exact floats differ", MustFloat(0.1), MustFloat(0.1000001), false},
		{
			"nested tuples",
			Nested(NewTuple(Str("command"), Any)),
			Nested(NewTuple(Str("command"), Str("wobble"))),
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.matches, tc.a.Matches(tc.b))
		})
	}
}

func TestFloatRejectsNaN(t *testing.T) {
	_, err := Float(nan())
	assert.Error(t, err)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestCompareOrderAcrossKinds(t *testing.T) {
	ordered := []Element{
		Any,
		Int(-1),
		Int(5),
		MustFloat(-1.5),
		MustFloat(5.5),
		Str("a"),
		Str("b"),
		Nested(NewTuple(Int(1))),
		None,
	}
	for i := 0; i < len(ordered)-1; i++ {
		assert.True(t, ordered[i].Compare(ordered[i+1]) < 0, "expected %v < %v", ordered[i], ordered[i+1])
		assert.True(t, ordered[i+1].Compare(ordered[i]) > 0, "expected %v > %v", ordered[i+1], ordered[i])
	}
}

func TestIdenticalTreatsAnyAsLiteral(t *testing.T) {
	assert.True(t, Any.Identical(Any))
	assert.False(t, Any.Matches(Any))
	assert.False(t, Any.Identical(Int(1)))
}

func TestDisplay(t *testing.T) {
	cases := map[string]Element{
		"1":       Int(1),
		"-1":      Int(-1),
		"1.5":     MustFloat(1.5),
		"1.0":     MustFloat(1),
		`"foo"`:   Str("foo"),
		"_":       Any,
		"nil":     None,
		"(1,_)":   Nested(NewTuple(Int(1), Any)),
	}
	for want, e := range cases {
		assert.Equal(t, want, e.String())
	}
}
