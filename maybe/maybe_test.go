package maybe_test

import (
	"testing"

	. "github.com/npillmayer/pfds/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	v, ok := x.Value()
	if !ok || v != 7 {
		t.Errorf("expected x to be Just(7), is %#v", x)
	}
	if _, ok = y.Value(); ok {
		t.Errorf("expected y to be Nothing, is %#v", y)
	}
	if !y.IsNothing() {
		t.Error("expected Nothing.IsNothing() to be true, isn't")
	}
}

func TestMaybeZeroValue(t *testing.T) {
	var m Maybe[int]
	if !m.IsNothing() {
		t.Error("expected zero value Maybe to be Nothing, isn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, hasn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, doesn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Value(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if v, _ := Map(double, Just(10)).Value(); v != 20 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Map(…, Just 10) to return 20, didn't")
	}
	if m := Nothing[int]().Map(double); !m.IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	gt := AndThen(gt0, Just(7))
	if isGreater, ok := gt.Value(); !ok || !isGreater {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if m := AndThen(gt0, Nothing[int]()); !m.IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
