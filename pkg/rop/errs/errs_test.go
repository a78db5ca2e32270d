package errs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/roptypes/pkg/rop"
	"github.com/ib-77/roptypes/pkg/rop/option"
)

type SampleKind int

const (
	Unknown SampleKind = iota
	ItemDoesNotExist
	InvalidOptions
)

func (k SampleKind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case ItemDoesNotExist:
		return "ItemDoesNotExist"
	case InvalidOptions:
		return "InvalidOptions"
	default:
		return "SampleKind(" + rop.FormatKind(k) + ")"
	}
}

var (
	_ Error                                = Plain{}
	_ KindError[SampleKind]                = Err[SampleKind]{}
	_ KindError[SampleKind]                = ErrX[SampleKind, *fs.PathError]{}
	_ KindError[SampleKind]                = (*Typed[SampleKind])(nil)
	_ KindError[SampleKind]                = (*TypedX[SampleKind, *fs.PathError])(nil)
	_ HasCause[error]                      = Plain{}
	_ HasCause[*fs.PathError]              = ErrX[SampleKind, *fs.PathError]{}
	_ HasCause[*fs.PathError]              = (*TypedX[SampleKind, *fs.PathError])(nil)
	_ rop.BaseCauser                       = Plain{}
	_ interface{ Unwrap() []error }        = Err[SampleKind]{}
	_ interface{ Format(fmt.State, rune) } = (*Typed[SampleKind])(nil)
)

func TestKindFallbackMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  KindError[SampleKind]
		want string
	}{
		{name: "typed", err: New(Unknown), want: "0"},
		{name: "typed with cause", err: NewX(ItemDoesNotExist, option.None[*fs.PathError]()), want: "1"},
		{name: "value", err: Make(InvalidOptions), want: "2"},
		{name: "value with cause", err: MakeX(InvalidOptions, option.None[*fs.PathError]()), want: "2"},
		{name: "explicit message", err: New(Unknown, WithMessage("oops")), want: "oops"},
		{name: "explicit empty message", err: Make(Unknown, WithMessage("")), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Message())
			assert.Equal(t, tt.err.Message(), tt.err.Error())
			assert.True(t, tt.err.Source().IsNone())
		})
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	e := NewPlain("plain")

	assert.Equal(t, "plain", e.Error())
	assert.True(t, e.Source().IsNone())
	assert.True(t, e.Cause().IsNone())
	assert.True(t, e.BaseCause().IsNone())
	assert.Empty(t, e.Unwrap())
}

func TestFromError(t *testing.T) {
	t.Parallel()

	native := fmt.Errorf("read config: %w", io.ErrUnexpectedEOF)
	e := FromError(native)

	assert.Equal(t, native.Error(), e.Message())
	assert.True(t, e.Cause().Equal(option.Some[error](native)))
	assert.True(t, e.BaseCause().Equal(option.Some(io.ErrUnexpectedEOF)))
	assert.ErrorIs(t, e, io.ErrUnexpectedEOF)
}

func TestSourceChain(t *testing.T) {
	t.Parallel()

	root := NewPlain("disk full")
	mid := Make(InvalidOptions, WithMessage("cannot save options"), WithSource(root))
	top := New(ItemDoesNotExist, WithSource(mid))

	var messages []string
	for e := range Chain(top) {
		messages = append(messages, e.Message())
	}
	assert.Equal(t, []string{"1", "cannot save options", "disk full"}, messages)

	assert.ErrorIs(t, top, root)
	assert.ErrorIs(t, top, mid)

	found := As[Err[SampleKind]](top)
	got, ok := found.Get()
	require.True(t, ok)
	assert.Equal(t, InvalidOptions, got.Kind())
}

func TestChain_StopsEarly(t *testing.T) {
	t.Parallel()

	top := Make(Unknown, WithSource(Make(ItemDoesNotExist, WithSource(NewPlain("x")))))

	count := 0
	for range Chain(top) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	count = 0
	for range Chain(nil) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestWithSource_NilIsNone(t *testing.T) {
	t.Parallel()

	var missing *Typed[SampleKind]

	assert.True(t, Make(Unknown, WithSource(nil)).Source().IsNone())
	assert.True(t, Make(Unknown, WithSource(missing)).Source().IsNone())
	assert.True(t, NewPlain("x", WithCause(nil)).Cause().IsNone())
}

func TestNativeCause(t *testing.T) {
	t.Parallel()

	pathErr := &fs.PathError{Op: "open", Path: "/etc/app.yaml", Err: fs.ErrNotExist}
	e := NewX(ItemDoesNotExist, option.Some(pathErr), WithMessage("config missing"))

	cause, ok := e.Cause().Get()
	require.True(t, ok)
	assert.Same(t, pathErr, cause)

	base, ok := e.BaseCause().Get()
	require.True(t, ok)
	assert.Equal(t, fs.ErrNotExist, base)

	assert.ErrorIs(t, e, fs.ErrNotExist)
	var target *fs.PathError
	require.ErrorAs(t, e, &target)
	assert.Equal(t, "/etc/app.yaml", target.Path)

	v := MakeX(ItemDoesNotExist, option.Some(pathErr))
	assert.ErrorIs(t, v, fs.ErrNotExist)
	assert.True(t, v.BaseCause().Equal(option.Some(fs.ErrNotExist)))
}

func TestRoot(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")

	assert.Nil(t, Root(nil))
	assert.Equal(t, first, Root(first))
	assert.Equal(t, first, Root(fmt.Errorf("a: %w", fmt.Errorf("b: %w", first))))
	assert.Equal(t, first, Root(errors.Join(first, second)))
}

func TestValueEquality(t *testing.T) {
	t.Parallel()

	src := NewPlain("src")

	a := Make(ItemDoesNotExist, WithMessage("m"), WithSource(src))
	b := Make(ItemDoesNotExist, WithMessage("m"), WithSource(NewPlain("src")))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, a.Equal(Make(InvalidOptions, WithMessage("m"), WithSource(src))))
	assert.False(t, a.Equal(Make(ItemDoesNotExist, WithMessage("n"), WithSource(src))))
	assert.False(t, a.Equal(Make(ItemDoesNotExist, WithMessage("m"))))

	assert.True(t, NewPlain("p").Equal(NewPlain("p")))
	assert.Equal(t, NewPlain("p").HashCode(), NewPlain("p").HashCode())
	assert.False(t, NewPlain("p").Equal(NewPlain("q")))

	cause := errors.New("io")
	x1 := MakeX(Unknown, option.Some(cause))
	x2 := MakeX(Unknown, option.Some(cause))
	assert.True(t, x1.Equal(x2))
	assert.Equal(t, x1.HashCode(), x2.HashCode())
	assert.False(t, x1.Equal(MakeX(Unknown, option.Some(errors.New("io")))))

	// value forms work as errors.Is targets
	assert.ErrorIs(t, New(Unknown, WithSource(a)), b)
}

func TestPointerIdentity(t *testing.T) {
	t.Parallel()

	a := New(Unknown)
	b := New(Unknown)

	assert.NotSame(t, a, b)
	assert.ErrorIs(t, Make(InvalidOptions, WithSource(a)), a)
	assert.NotErrorIs(t, Make(InvalidOptions, WithSource(a)), b)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	e := New(ItemDoesNotExist,
		WithMessage("item 7"),
		WithSource(Make(InvalidOptions, WithSource(NewPlain("bad flag")))))

	assert.Equal(t, "item 7", fmt.Sprint(e))
	assert.Equal(t, "item 7", fmt.Sprintf("%s", e))
	assert.Equal(t, `"item 7"`, fmt.Sprintf("%q", e))
	assert.Equal(t, "ItemDoesNotExist:item 7\n  source: InvalidOptions:2\n  source: bad flag", fmt.Sprintf("%+v", e))

	x := MakeX(Unknown, option.Some(io.EOF), WithMessage("read"))
	assert.Equal(t, "Unknown:read\n  cause: EOF", fmt.Sprintf("%+v", x))
	assert.Equal(t, "plain", fmt.Sprintf("%+v", NewPlain("plain")))
}
