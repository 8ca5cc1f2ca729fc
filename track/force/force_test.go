package force

import (
	"fmt"
	"testing"
)

type testCase struct {
	progress int16
	want     int32
}

func runCases(t *testing.T, fn Func, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.progress), func(t *testing.T) {
			got := fn(tc.progress)
			if got != tc.want {
				t.Fatalf("progress %d: got %d, want %d", tc.progress, got, tc.want)
			}
		})
	}
}

func TestWaterSplash(t *testing.T) {
	runCases(t, WaterSplash, []testCase{
		{0, -150}, {31, -150},
		{32, 150}, {63, 150},
		{64, 0}, {95, 0},
		{96, 150}, {127, 150},
		{128, -150}, {200, -150},
	})
}

func TestHeartLineTransfer(t *testing.T) {
	up := []testCase{
		{0, 103}, {31, 103},
		{32, -103}, {63, -103},
		{64, 0}, {95, 0},
		{96, 103}, {127, 103},
		{128, -103}, {255, -103},
	}
	t.Run("up", func(t *testing.T) { runCases(t, HeartLineTransferUp, up) })
	down := make([]testCase, len(up))
	for i, tc := range up {
		down[i] = testCase{tc.progress, -tc.want}
	}
	t.Run("down", func(t *testing.T) { runCases(t, HeartLineTransferDown, down) })
}

func TestLoops(t *testing.T) {
	t.Run("vertical", func(t *testing.T) {
		runCases(t, VerticalLoop, []testCase{{0, 105}, {154, 28}, {155, 28}, {156, 28}, {157, 29}, {310, 105}})
	})
	t.Run("half-up", func(t *testing.T) {
		runCases(t, HalfLoopUp, []testCase{{0, 105}, {1, 105}, {2, 104}, {155, 28}})
	})
	t.Run("half-down", func(t *testing.T) {
		runCases(t, HalfLoopDown, []testCase{{0, 28}, {155, 105}})
	})
	t.Run("medium-up", func(t *testing.T) {
		runCases(t, MediumHalfLoopUp, []testCase{{0, 108}, {244, 47}})
	})
	t.Run("medium-down", func(t *testing.T) {
		runCases(t, MediumHalfLoopDown, []testCase{{0, 47}, {244, 108}})
	})
	t.Run("large-up", func(t *testing.T) {
		runCases(t, LargeHalfLoopUp, []testCase{{0, 123}, {311, 46}})
	})
	t.Run("large-down", func(t *testing.T) {
		runCases(t, LargeHalfLoopDown, []testCase{{0, 46}, {311, 123}})
	})
	t.Run("up90-quarter", func(t *testing.T) {
		runCases(t, Up90QuarterLoop, []testCase{{0, 89}, {137, 55}})
	})
	t.Run("down90-quarter", func(t *testing.T) {
		runCases(t, Down90QuarterLoop, []testCase{{0, 55}, {137, 89}})
	})
}

func TestRamps(t *testing.T) {
	t.Run("large-corkscrew-up", func(t *testing.T) {
		runCases(t, LargeCorkscrewUp, []testCase{{0, 174}, {174, 0}, {200, -26}})
	})
	t.Run("large-corkscrew-down", func(t *testing.T) {
		runCases(t, LargeCorkscrewDown, []testCase{{0, -17}, {17, 0}, {100, 83}})
	})
	t.Run("large-zero-g-roll-up", func(t *testing.T) {
		runCases(t, LargeZeroGRollUp, []testCase{{0, 0}, {114, 0}, {115, 141}, {150, 71}})
	})
	t.Run("large-zero-g-roll-down", func(t *testing.T) {
		runCases(t, LargeZeroGRollDown, []testCase{{0, 67}, {37, 141}, {38, 0}, {100, 0}})
	})
	t.Run("large-zero-g-roll-up-left", func(t *testing.T) {
		runCases(t, LargeZeroGRollUpLeft, []testCase{{0, 387}, {100, 187}})
	})
	t.Run("large-zero-g-roll-down-left", func(t *testing.T) {
		runCases(t, LargeZeroGRollDownLeft, []testCase{{0, 5}, {100, 205}})
	})
	t.Run("zero-g-roll-up-left", func(t *testing.T) {
		runCases(t, ZeroGRollUpLeft, []testCase{{0, 98}, {98, 0}})
	})
	t.Run("zero-g-roll-down-left", func(t *testing.T) {
		runCases(t, ZeroGRollDownLeft, []testCase{{0, 3}, {50, 53}})
	})
	t.Run("s-bend-left", func(t *testing.T) {
		runCases(t, SBendLeft, []testCase{{0, 98}, {47, 98}, {48, -98}, {95, -98}})
	})
}

func TestMirroredPairs(t *testing.T) {
	pairs := []struct {
		name        string
		left, right Func
	}{
		{"s-bend", SBendLeft, SBendRight},
		{"zero-g-roll-up", ZeroGRollUpLeft, ZeroGRollUpRight},
		{"zero-g-roll-down", ZeroGRollDownLeft, ZeroGRollDownRight},
		{"large-zero-g-roll-up", LargeZeroGRollUpLeft, LargeZeroGRollUpRight},
		{"large-zero-g-roll-down", LargeZeroGRollDownLeft, LargeZeroGRollDownRight},
	}
	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			for p := int16(0); p < 320; p++ {
				if l, r := pair.left(p), pair.right(p); l != -r {
					t.Fatalf("progress %d: left %d, right %d", p, l, r)
				}
			}
		})
	}
}

// unsignedReflected evaluates (C - progress) / d + e the way 16-bit unsigned
// arithmetic does it.
func unsignedReflected(c, d, e int32) Func {
	return func(progress int16) int32 {
		return int32(uint16(-(int32(progress)-c)))/d + e
	}
}

func TestReflectedMatchesUnsigned(t *testing.T) {
	cases := []struct {
		name string
		fn   Func
		ref  Func
		max  int16
	}{
		{"half-loop-up", HalfLoopUp, unsignedReflected(155, 2, 28), 155},
		{"medium-half-loop-up", MediumHalfLoopUp, unsignedReflected(244, 4, 47), 244},
		{"large-half-loop-up", LargeHalfLoopUp, unsignedReflected(311, 4, 46), 311},
		{"up90-quarter-loop", Up90QuarterLoop, unsignedReflected(137, 4, 55), 137},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for p := int16(0); p <= tc.max; p++ {
				if got, want := tc.fn(p), tc.ref(p); got != want {
					t.Fatalf("progress %d: got %d, want %d", p, got, want)
				}
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	for _, k := range Kinds() {
		fn := k.Func()
		for p := int16(-10); p < 400; p += 7 {
			if a, b := fn(p), fn(p); a != b {
				t.Fatalf("%s(%d): %d then %d", k, p, a, b)
			}
		}
	}
}

func TestKind(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range Kinds() {
		name := k.String()
		if prev, ok := seen[name]; ok {
			t.Fatalf("%d and %d share name %s", prev, k, name)
		}
		seen[name] = k

		text, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var k2 Kind
		err = k2.UnmarshalText(text)
		if err != nil {
			t.Fatal(err)
		}
		if k2 != k {
			t.Fatalf("round trip: got %s, want %s", k2, k)
		}
		if k.Func() == nil {
			t.Fatalf("%s: nil func", k)
		}
	}

	if c, ok := KindConstNeg65.Constant(); !ok || c != -65 {
		t.Fatalf("const-neg-65: got %d, %t", c, ok)
	}
	if _, ok := KindWaterSplash.Constant(); ok {
		t.Fatal("water-splash reported as constant")
	}
	if got := Kind(250).Func()(10); got != 0 {
		t.Fatalf("unknown kind evaluated to %d", got)
	}
	var k Kind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestConstKinds(t *testing.T) {
	for _, k := range Kinds() {
		c, ok := k.Constant()
		if !ok {
			continue
		}
		fn := k.Func()
		for _, p := range []int16{0, 1, 100, 255} {
			if got := fn(p); got != c {
				t.Fatalf("%s(%d): got %d, want %d", k, p, got, c)
			}
		}
	}
}
