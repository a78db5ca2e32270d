package either

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/ib-77/roptypes/pkg/rop/option"
)

const propertyN = 1000

func TestMatch_DefaultPanics(t *testing.T) {
	t.Parallel()

	var e Either[string, int]

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrDefaultValue))
	}()

	Match(e, func(s string) string { return s }, strconv.Itoa)
	t.Fatal("Match on a default Either must panic")
}

func TestMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Match(Right[string](42), func(s string) string { return s }, strconv.Itoa))
	assert.Equal(t, "foo", Match(Left[string, int]("foo"), func(s string) string { return s }, strconv.Itoa))
}

func TestMatchOption(t *testing.T) {
	t.Parallel()

	toOpt := func(s string) option.Option[string] { return option.Some(s) }
	itoaOpt := func(i int) option.Option[string] { return option.Some(strconv.Itoa(i)) }

	assert.True(t, MatchOption(Either[string, int]{}, toOpt, itoaOpt).IsNone())
	assert.True(t, MatchOption(Right[string](7), toOpt, itoaOpt).Equal(option.Some("7")))
	assert.True(t, MatchOption(Left[string, int]("a"), toOpt, itoaOpt).Equal(option.Some("a")))
}

func TestDiscriminant(t *testing.T) {
	t.Parallel()

	var e Either[string, int]
	assert.True(t, e.IsDefault())
	assert.False(t, e.IsLeft())
	assert.False(t, e.IsRight())
	assert.Equal(t, uint8(0), e.Discriminant())
	assert.Equal(t, uint8(1), Left[string, int]("a").Discriminant())
	assert.Equal(t, uint8(2), Right[string](1).Discriminant())
}

func TestGetLeftGetRight(t *testing.T) {
	t.Parallel()

	l, ok := Left[string, int]("foo").GetLeft()
	assert.True(t, ok)
	assert.Equal(t, "foo", l)

	_, ok = Left[string, int]("foo").GetRight()
	assert.False(t, ok)

	r, ok := Right[string](5).GetRight()
	assert.True(t, ok)
	assert.Equal(t, 5, r)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Left[string, int]("a").Equal(Left[string, int]("a")))
	assert.False(t, Left[string, int]("a").Equal(Left[string, int]("b")))
	assert.True(t, Right[string](1).Equal(Right[string](1)))
	assert.False(t, Right[string](0).Equal(Left[string, int]("")))
	assert.True(t, Either[string, int]{}.Equal(Either[string, int]{}))
	assert.False(t, Either[string, int]{}.Equal(Left[string, int]("")))
}

func TestHashCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), Either[string, int]{}.HashCode())
	assert.Equal(t, uint64(42), Right[string](42).HashCode())
	assert.Equal(t, Left[string, int]("foo").HashCode(), Left[string, int]("foo").HashCode())
	assert.NotEqual(t, Left[string, int]("foo").HashCode(), Left[string, int]("bar").HashCode())
}

func TestMap_DefaultDoesNotCallSelectors(t *testing.T) {
	t.Parallel()

	called := false
	out := Map(Either[string, int]{},
		func(s string) int { called = true; return len(s) },
		func(i int) int { called = true; return i })

	assert.True(t, out.IsDefault())
	assert.False(t, called)
	assert.True(t, MapLeft(Either[string, int]{}, strings.ToUpper).IsDefault())
	assert.True(t, MapRight(Either[string, int]{}, strconv.Itoa).IsDefault())
}

func TestMapLeftLeavesRightUntouched(t *testing.T) {
	t.Parallel()

	out := MapLeft(Right[string](9), strings.ToUpper)
	assert.True(t, out.Equal(Right[string](9)))

	out = MapLeft(Left[string, int]("foo"), strings.ToUpper)
	assert.True(t, out.Equal(Left[string, int]("FOO")))
}

// Map(id, id) == e
func TestPropertyIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e := randEither(rng)
		if got := Map(e, identity[string], identity[int]); !got.Equal(e) {
			t.Fatalf("identity: %v != %v", got, e)
		}
		if got := MapLeft(e, identity[string]); !got.Equal(e) {
			t.Fatalf("left identity: %v != %v", got, e)
		}
		if got := MapRight(e, identity[int]); !got.Equal(e) {
			t.Fatalf("right identity: %v != %v", got, e)
		}
	}
}

// MapLeft(g).MapLeft(f) == MapLeft(f . g), same for MapRight and Map
func TestPropertyComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(s string) int { return len(s) }
	g := func(s string) string { return s + "-x" }
	h := func(i int) bool { return i%2 == 0 }
	k := func(i int) int { return i * 3 }

	for range propertyN {
		e := randEither(rng)

		left := MapLeft(MapLeft(e, g), f)
		if want := MapLeft(e, func(s string) int { return f(g(s)) }); !left.Equal(want) {
			t.Fatalf("left composition: %v != %v", left, want)
		}

		right := MapRight(MapRight(e, k), h)
		if want := MapRight(e, func(i int) bool { return h(k(i)) }); !right.Equal(want) {
			t.Fatalf("right composition: %v != %v", right, want)
		}

		both := Map(Map(e, g, k), f, h)
		if want := Map(e, func(s string) int { return f(g(s)) }, func(i int) bool { return h(k(i)) }); !both.Equal(want) {
			t.Fatalf("composition: %v != %v", both, want)
		}
	}
}

// Map(f, g) == MapLeft(f).MapRight(g) == MapRight(g).MapLeft(f)
func TestPropertyConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(s string) int { return len(s) }
	g := func(i int) string { return strconv.Itoa(i) }

	for range propertyN {
		e := randEither(rng)
		both := Map(e, f, g)
		if lr := MapRight(MapLeft(e, f), g); !both.Equal(lr) {
			t.Fatalf("left then right: %v != %v", both, lr)
		}
		if rl := MapLeft(MapRight(e, g), f); !both.Equal(rl) {
			t.Fatalf("right then left: %v != %v", both, rl)
		}
	}
}

func TestRef_SelectBothKeepsSide(t *testing.T) {
	t.Parallel()

	got := SelectBoth[string, int](NewLeft[string, int]("foo"),
		func(s string) int { return len(s) },
		identity[int])

	require.True(t, got.IsLeft())
	assert.Equal(t, 3, MatchRef(got, identity[int], func(int) int { return -1 }))
	assert.True(t, ToEither(got).Equal(Left[int, int](3)))

	right := SelectBoth[string, int](NewRight[string](4), strings.ToUpper, strconv.Itoa)
	assert.True(t, right.IsRight())
	assert.True(t, ToEither(right).Equal(Right[string]("4")))
}

func TestRef_MapLeftMapRight(t *testing.T) {
	t.Parallel()

	var e Ref[string, int] = NewRight[string](10)

	assert.True(t, ToEither(MapLeftRef(e, strings.ToUpper)).Equal(Right[string](10)))
	assert.True(t, ToEither(MapRightRef(e, strconv.Itoa)).Equal(Right[string]("10")))

	e = NewLeft[string, int]("abc")
	assert.True(t, ToEither(MapLeftRef(e, strings.ToUpper)).Equal(Left[string, int]("ABC")))
}

func TestRef_Equal(t *testing.T) {
	t.Parallel()

	a := NewLeft[string, int]("a")
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(NewLeft[string, int]("a")))
	assert.False(t, a.Equal(NewLeft[string, int]("b")))
	assert.False(t, a.Equal(nil))

	r := NewRight[string](1)
	assert.True(t, r.Equal(NewRight[string](1)))
	assert.False(t, r.Equal(NewRight[string](2)))

	assert.Equal(t, uint64(1), r.HashCode())
	assert.Equal(t, a.HashCode(), NewLeft[string, int]("a").HashCode())
	assert.Equal(t, "a", a.Value())
	assert.Equal(t, "1", r.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Either[string, int]
		want string
	}{
		{name: "left", in: Left[string, int]("foo"), want: `{"variant":1,"left":"foo"}`},
		{name: "right", in: Right[string](42), want: `{"variant":2,"right":42}`},
		{name: "right zero", in: Right[string](0), want: `{"variant":2,"right":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var out Either[string, int]
			require.NoError(t, json.Unmarshal(data, &out))
			assert.True(t, out.Equal(tt.in))
		})
	}
}

func TestJSON_DefaultCannotBeEncoded(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(Either[string, int]{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDefaultValue)

	var out Either[string, int]
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"variant":0}`), &out), ErrDefaultValue)
	assert.Error(t, json.Unmarshal([]byte(`{"variant":1,"left":5}`), &out))
}

func TestYAML(t *testing.T) {
	t.Parallel()

	for _, in := range []Either[string, int]{Left[string, int]("foo"), Right[string](42)} {
		data, err := yaml.Marshal(in)
		require.NoError(t, err)

		var out Either[string, int]
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.True(t, out.Equal(in), "round trip of %v", in)
	}

	_, err := yaml.Marshal(Either[string, int]{})
	assert.ErrorContains(t, err, ErrDefaultValue.Error())
}

func randEither(rng *rand.Rand) Either[string, int] {
	if rng.IntN(2) == 0 {
		return Left[string, int](strconv.Itoa(rng.IntN(100000)))
	}
	return Right[string](rng.IntN(2001) - 1000)
}
