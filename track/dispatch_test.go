package track

import (
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/track/force"
)

func TestDispatchTotal(t *testing.T) {
	for typ := ElemType(0); typ < ElemTypeCount; typ++ {
		if !LateralKind(typ).Valid() || !VerticalKind(typ).Valid() {
			t.Fatalf("%s: invalid kind", typ)
		}
		if LateralFunction(typ) == nil || VerticalFunction(typ) == nil {
			t.Fatalf("%s: nil function", typ)
		}
	}
}

func TestDispatchDefaultZero(t *testing.T) {
	zero := []ElemType{
		Flat, EndStation, BeginStation, MiddleStation,
		Up25, Up60, Down25, Down60, Up90, Down90,
		FlatToLeftBank, LeftBank, DiagFlat, DiagUp25,
		LeftTwistDownToUp, RightTwistUpToDown,
		LeftBarrelRollUpToDown, RightBarrelRollDownToUp,
		LeftHeartLineRoll, RightHeartLineRoll,
		LeftFlyerTwistUp, RightFlyerTwistDown,
		Brakes, Booster, BlockBrakes, DiagBrakes, DiagBooster, Down25Brakes,
		Maze, Waterfall, Rapids, Whirlpool, OnRidePhoto,
		TowerBase, TowerSection, PoweredLift, CableLiftHill,
		LogFlumeReverser, SpinningTunnel, RotationControlToggle,
		MinigolfHoleA, MinigolfHoleE,
		FlatTrack1x4A, FlatTrack3x3,
		AirThrustTopCap, ReverseFreefallSlope,
		ElemTypeCount, ElemTypeCount + 1, ElemTypeNone,
	}
	for _, typ := range zero {
		if k := LateralKind(typ); k != force.KindZero {
			t.Errorf("%s: lateral %s", typ, k)
		}
		if k := VerticalKind(typ); k != force.KindZero {
			t.Errorf("%s: vertical %s", typ, k)
		}
		for p := int16(0); p < 256; p += 15 {
			if LateralFunction(typ)(p) != 0 || VerticalFunction(typ)(p) != 0 {
				t.Fatalf("%s(%d): non-zero", typ, p)
			}
		}
	}
}

func TestDispatchFamilies(t *testing.T) {
	type family struct {
		name     string
		members  []ElemType
		lateral  force.Kind
		vertical force.Kind
	}
	families := []family{
		{"quarter-turn-5-left", []ElemType{
			LeftQuarterTurn5Tiles, BankedLeftQuarterTurn5Tiles, LeftQuarterTurn5TilesUp25,
			LeftQuarterTurn5TilesDown25, LeftQuarterTurn5TilesCovered, LeftHalfBankedHelixUpLarge,
			LeftHalfBankedHelixDownLarge, LeftQuarterBankedHelixLargeUp, LeftQuarterBankedHelixLargeDown,
			LeftQuarterHelixLargeUp, LeftQuarterHelixLargeDown,
		}, force.KindConst98, force.KindZero},
		{"quarter-turn-3-right", []ElemType{
			RightQuarterTurn3Tiles, RightBankedQuarterTurn3Tiles, RightQuarterTurn3TilesUp25,
			RightQuarterTurn3TilesDown25, RightQuarterTurn3TilesCovered, RightHalfBankedHelixUpSmall,
			RightHalfBankedHelixDownSmall, RightCurvedLiftHill,
		}, force.KindConstNeg59, force.KindZero},
		{"quarter-turn-1-left", []ElemType{
			LeftQuarterTurn1Tile, LeftQuarterTurn1TileUp60, LeftQuarterTurn1TileDown60,
			LeftQuarterTurn1TileUp90, LeftQuarterTurn1TileDown90,
		}, force.KindConst45, force.KindZero},
		{"eighth-right", []ElemType{
			RightEighthToDiag, RightEighthToOrthogonal, RightEighthBankToDiag, RightEighthBankToOrthogonal,
		}, force.KindConstNeg137, force.KindZero},
		{"concave-25", []ElemType{
			FlatToUp25, Down25ToFlat, LeftBankToUp25, Down25ToRightBank, FlatToUp25Covered,
			Down25ToFlatCovered, FlatToLeftBankedUp25, RightBankedDown25ToFlat,
		}, force.KindZero, force.KindConst103},
		{"convex-25", []ElemType{
			Up25ToFlat, FlatToDown25, Up25ToLeftBank, RightBankToDown25, Up25ToFlatCovered,
			FlatToDown25Covered, LeftBankedUp25ToFlat, FlatToRightBankedDown25,
		}, force.KindZero, force.KindConstNeg103},
		{"corkscrew", []ElemType{
			LeftCorkscrewUp, RightCorkscrewUp, LeftCorkscrewDown, RightCorkscrewDown,
			LeftFlyerCorkscrewUp, RightFlyerCorkscrewDown,
		}, force.KindZero, force.KindConst52},
		{"half-loop-up", []ElemType{
			HalfLoopUp, FlyerHalfLoopUninvertedUp, FlyerHalfLoopInvertedUp,
		}, force.KindZero, force.KindHalfLoopUp},
		{"half-loop-down", []ElemType{
			HalfLoopDown, FlyerHalfLoopInvertedDown, FlyerHalfLoopUninvertedDown,
		}, force.KindZero, force.KindHalfLoopDown},
		{"large-half-loop-up", []ElemType{
			LeftLargeHalfLoopUp, RightLargeHalfLoopUp, LeftFlyerLargeHalfLoopUninvertedUp,
			RightFlyerLargeHalfLoopInvertedUp,
		}, force.KindZero, force.KindLargeHalfLoopUp},
		{"quarter-loop-up", []ElemType{
			Up90ToInvertedFlatQuarterLoop, MultiDimUp90ToInvertedFlatQuarterLoop,
			MultiDimInvertedUp90ToFlatQuarterLoop,
		}, force.KindZero, force.KindUp90QuarterLoop},
		{"quarter-loop-down", []ElemType{
			InvertedFlatToDown90QuarterLoop, MultiDimInvertedFlatToDown90QuarterLoop,
			MultiDimFlatToDown90QuarterLoop,
		}, force.KindZero, force.KindDown90QuarterLoop},
		{"s-bend-left", []ElemType{SBendLeft, SBendLeftCovered}, force.KindSBendLeft, force.KindZero},
		{"vertical-loop", []ElemType{LeftVerticalLoop, RightVerticalLoop}, force.KindZero, force.KindVerticalLoop},
		{"large-zero-g-roll-up-left", []ElemType{LeftLargeZeroGRollUp}, force.KindLargeZeroGRollUpLeft, force.KindLargeZeroGRollUp},
		{"water-splash", []ElemType{Watersplash}, force.KindZero, force.KindWaterSplash},
		{"brake-for-drop", []ElemType{BrakeForDrop}, force.KindZero, force.KindConstNeg65},
	}
	for _, f := range families {
		t.Run(f.name, func(t *testing.T) {
			for _, typ := range f.members {
				if k := LateralKind(typ); k != f.lateral {
					t.Errorf("%s: lateral %s, want %s", typ, k, f.lateral)
				}
				if k := VerticalKind(typ); k != f.vertical {
					t.Errorf("%s: vertical %s, want %s", typ, k, f.vertical)
				}
			}
		})
	}
}

// TestDispatchMirror checks that mirroring an element flips the sign of its
// lateral force and leaves the vertical force alone.
func TestDispatchMirror(t *testing.T) {
	for _, d := range All() {
		m := d.Mirror()
		for p := int16(0); p <= d.PieceLength; p++ {
			if l, ml := d.LateralFactor(p), m.LateralFactor(p); l != -ml {
				t.Fatalf("%s/%s(%d): lateral %d vs %d", d.Type, m.Type, p, l, ml)
			}
			if v, mv := d.VerticalFactor(p), m.VerticalFactor(p); v != mv {
				t.Fatalf("%s/%s(%d): vertical %d vs %d", d.Type, m.Type, p, v, mv)
			}
		}
	}
}

func TestDispatchAlternative(t *testing.T) {
	for _, d := range All() {
		if !d.HasAlternative() {
			continue
		}
		alt := GetDescriptor(d.AlternativeType)
		if d.LateralKind != alt.LateralKind || d.VerticalKind != alt.VerticalKind {
			t.Errorf("%s/%s: kinds %s/%s vs %s/%s", d.Type, alt.Type,
				d.LateralKind, d.VerticalKind, alt.LateralKind, alt.VerticalKind)
		}
	}
}

func TestDispatchTurnsLean(t *testing.T) {
	for _, d := range All() {
		c, ok := d.LateralKind.Constant()
		if !ok || c == 0 {
			continue
		}
		if c > 0 && !d.HasFlag(FlagTurnLeft) {
			t.Errorf("%s: positive lateral without a left turn", d.Type)
		}
		if c < 0 && !d.HasFlag(FlagTurnRight) {
			t.Errorf("%s: negative lateral without a right turn", d.Type)
		}
	}
}

func TestDispatchValues(t *testing.T) {
	cases := []struct {
		name     string
		fn       force.Func
		progress int16
		want     int32
	}{
		{"watersplash-0", VerticalFunction(Watersplash), 0, -150},
		{"watersplash-31", VerticalFunction(Watersplash), 31, -150},
		{"watersplash-32", VerticalFunction(Watersplash), 32, 150},
		{"watersplash-200", VerticalFunction(Watersplash), 200, -150},
		{"vertical-loop-155", VerticalFunction(LeftVerticalLoop), 155, 28},
		{"half-loop-up-0", VerticalFunction(HalfLoopUp), 0, 105},
		{"heartline-up-0", VerticalFunction(HeartLineTransferUp), 0, 103},
		{"heartline-up-32", VerticalFunction(HeartLineTransferUp), 32, -103},
		{"heartline-up-64", VerticalFunction(HeartLineTransferUp), 64, 0},
		{"heartline-up-96", VerticalFunction(HeartLineTransferUp), 96, 103},
		{"heartline-up-128", VerticalFunction(HeartLineTransferUp), 128, -103},
		{"heartline-down-0", VerticalFunction(HeartLineTransferDown), 0, -103},
		{"large-zero-g-roll-up-114", VerticalFunction(RightLargeZeroGRollUp), 114, 0},
		{"large-zero-g-roll-up-115", VerticalFunction(RightLargeZeroGRollUp), 115, 141},
		{"large-zero-g-roll-up-right", LateralFunction(RightLargeZeroGRollUp), 0, -387},
		{"s-bend-right-0", LateralFunction(SBendRightCovered), 0, -98},
		{"diag-flat-to-up60", VerticalFunction(DiagFlatToUp60), 10, 60},
		{"long-base", VerticalFunction(FlatToDown60LongBase), 10, -160},
		{"up60-to-up90", VerticalFunction(Up60ToUp90), 10, 110},
		{"left-eighth", LateralFunction(LeftEighthBankToOrthogonal), 10, 137},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.progress); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDispatchDeterministic(t *testing.T) {
	var lateral, vertical [ElemTypeCount]force.Kind
	for typ := ElemType(0); typ < ElemTypeCount; typ++ {
		lateral[typ], vertical[typ] = LateralKind(typ), VerticalKind(typ)
	}
	for typ := ElemType(0); typ < ElemTypeCount; typ++ {
		if lateral[typ] != LateralKind(typ) || vertical[typ] != VerticalKind(typ) {
			t.Fatalf("%s: unstable kind", typ)
		}
		a, b := VerticalFunction(typ), VerticalFunction(typ)
		for p := int16(0); p < 320; p += 3 {
			if a(p) != b(p) {
				t.Fatalf("%s(%d): %d vs %d", typ, p, a(p), b(p))
			}
		}
	}
}
