package stats

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/go-cmp/cmp"
)

const testVelocity = 0x50000

func TestAt(t *testing.T) {
	cases := []struct {
		typ      track.ElemType
		progress int16
		velocity int32
		want     GForces
	}{
		{track.Flat, 0, 0, GForces{100, 0}},
		{track.Flat, 10, testVelocity, GForces{100, 0}},
		{track.Up25, 0, testVelocity, GForces{90, 0}},
		{track.LeftBank, 0, testVelocity, GForces{70, 0}},
		{track.FlatToUp25, 0, testVelocity, GForces{147, 0}},
		{track.FlatToUp25, 0, -testVelocity, GForces{147, 0}},
		{track.Up25ToFlat, 0, testVelocity, GForces{43, 0}},
		{track.HalfLoopUp, 0, testVelocity, GForces{137, 0}},
		{track.LeftQuarterTurn5Tiles, 0, testVelocity, GForces{100, 50}},
		{track.RightQuarterTurn5Tiles, 0, testVelocity, GForces{100, -50}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%d", tc.typ, tc.velocity), func(t *testing.T) {
			got := At(track.GetDescriptor(tc.typ), tc.progress, tc.velocity)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSamples(t *testing.T) {
	samples := Samples(track.Watersplash, 32)
	want := []Sample{
		{0, -150, 0},
		{32, 150, 0},
		{64, 0, 0},
		{96, 150, 0},
		{128, -150, 0},
		{160, -150, 0},
	}
	if diff := cmp.Diff(want, samples); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if n := len(Samples(track.Flat, 0)); n != 32 {
		t.Fatalf("step 0: %d samples", n)
	}
}

func TestAnalyze(t *testing.T) {
	pieces := []track.ElemType{
		track.Flat,
		track.FlatToUp25,
		track.Up25,
		track.Up25ToFlat,
		track.LeftQuarterTurn5Tiles,
	}
	got := Analyze(pieces, testVelocity)
	want := Summary{
		MaxVertical:      147,
		MaxVerticalPiece: 1,
		MinVertical:      43,
		MinVerticalPiece: 3,
		MaxLateral:       50,
		MaxLateralPiece:  4,
		Samples:          32 + 32 + 33 + 32 + 124,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	empty := Analyze(nil, testVelocity)
	if empty.Samples != 0 || empty.MaxVerticalPiece != -1 {
		t.Fatalf("empty: %+v", empty)
	}
}

func TestAnalyzeMirrored(t *testing.T) {
	pieces := []track.ElemType{track.SBendLeft, track.LeftEighthToDiag}
	mirrored := []track.ElemType{track.SBendRight, track.RightEighthToDiag}
	a, b := Analyze(pieces, testVelocity), Analyze(mirrored, testVelocity)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("(-left +right):\n%s", diff)
	}
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFit(t *testing.T) {
	r, err := Fit(Samples(track.HalfLoopUp, 1), AxisVertical)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Coeffs) != 3 {
		t.Fatalf("coeffs: %v", r.Coeffs)
	}
	if y := r.Evaluate(0); !near(y, 105, 1) {
		t.Errorf("f(0) = %f", y)
	}
	if y := r.Evaluate(154); !near(y, 28.5, 1) {
		t.Errorf("f(154) = %f", y)
	}
	x, ok := r.SolveForX(66.5, 0, 155)
	if !ok || !near(x, 77, 2) {
		t.Errorf("solve: %f, %t", x, ok)
	}

	r, err = Fit(Samples(track.LeftQuarterTurn5Tiles, 4), AxisLateral)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{0, 50, 120} {
		if y := r.Evaluate(x); !near(y, 98, 1e-3) {
			t.Errorf("constant f(%f) = %f", x, y)
		}
	}

	_, err = Fit(nil, AxisVertical)
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("got %v", err)
	}
	r, err = Fit([]Sample{{Progress: 3, Vertical: 7}}, AxisVertical)
	if err != nil || r.Evaluate(100) != 7 {
		t.Fatalf("single sample: %v, %v", r, err)
	}
}

func TestSolveForX(t *testing.T) {
	cases := []struct {
		name     string
		r        Relation
		y        float64
		min, max float64
		want     float64
		ok       bool
	}{
		{"linear", Relation{[]float64{1, 2}}, 5, 0, 10, 2, true},
		{"linear-out-of-range", Relation{[]float64{1, 2}}, 50, 0, 10, 24.5, false},
		{"flat", Relation{[]float64{1, 0}}, 5, 0, 10, 0, false},
		{"quadratic", Relation{[]float64{-6, 1, 1}}, 0, 0, 10, 2, true},
		{"quadratic-both", Relation{[]float64{6, -5, 1}}, 0, 0, 10, 2, true},
		{"quadratic-none", Relation{[]float64{1, 0, 1}}, 0, -10, 10, 0, false},
		{"constant", Relation{[]float64{4}}, 4, 0, 10, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, ok := tc.r.SolveForX(tc.y, tc.min, tc.max)
			if ok != tc.ok || !near(x, tc.want, 1e-9) {
				t.Fatalf("got %f, %t; want %f, %t", x, ok, tc.want, tc.ok)
			}
		})
	}
}
