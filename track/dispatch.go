package track

import "github.com/OpenRCT2/OpenRCT2-sub002/track/force"

// LateralKind returns the lateral evaluator bound to t. Elements that do not
// turn (and anything not listed, including invalid values) get KindZero.
func LateralKind(t ElemType) force.Kind {
	switch t {
	case LeftQuarterTurn5Tiles,
		BankedLeftQuarterTurn5Tiles,
		LeftQuarterTurn5TilesUp25,
		LeftQuarterTurn5TilesDown25,
		LeftQuarterTurn5TilesCovered,
		LeftHalfBankedHelixUpLarge,
		LeftHalfBankedHelixDownLarge,
		LeftQuarterBankedHelixLargeUp,
		LeftQuarterBankedHelixLargeDown,
		LeftQuarterHelixLargeUp,
		LeftQuarterHelixLargeDown,
		LeftBankedQuarterTurn5TileUp25,
		LeftBankedQuarterTurn5TileDown25:
		return force.KindConst98

	case RightQuarterTurn5Tiles,
		BankedRightQuarterTurn5Tiles,
		RightQuarterTurn5TilesUp25,
		RightQuarterTurn5TilesDown25,
		RightQuarterTurn5TilesCovered,
		RightHalfBankedHelixUpLarge,
		RightHalfBankedHelixDownLarge,
		RightQuarterBankedHelixLargeUp,
		RightQuarterBankedHelixLargeDown,
		RightQuarterHelixLargeUp,
		RightQuarterHelixLargeDown,
		RightBankedQuarterTurn5TileUp25,
		RightBankedQuarterTurn5TileDown25:
		return force.KindConstNeg98

	case LeftQuarterTurn3Tiles,
		LeftBankedQuarterTurn3Tiles,
		LeftQuarterTurn3TilesUp25,
		LeftQuarterTurn3TilesDown25,
		LeftQuarterTurn3TilesCovered,
		LeftHalfBankedHelixUpSmall,
		LeftHalfBankedHelixDownSmall,
		LeftBankToLeftQuarterTurn3TilesUp25,
		LeftQuarterTurn3TilesDown25ToLeftBank,
		LeftCurvedLiftHill,
		LeftBankedQuarterTurn3TileUp25,
		LeftBankedQuarterTurn3TileDown25:
		return force.KindConst59

	case RightQuarterTurn3Tiles,
		RightBankedQuarterTurn3Tiles,
		RightQuarterTurn3TilesUp25,
		RightQuarterTurn3TilesDown25,
		RightQuarterTurn3TilesCovered,
		RightHalfBankedHelixUpSmall,
		RightHalfBankedHelixDownSmall,
		RightBankToRightQuarterTurn3TilesUp25,
		RightQuarterTurn3TilesDown25ToRightBank,
		RightCurvedLiftHill,
		RightBankedQuarterTurn3TileUp25,
		RightBankedQuarterTurn3TileDown25:
		return force.KindConstNeg59

	case LeftQuarterTurn1Tile,
		LeftQuarterTurn1TileUp60,
		LeftQuarterTurn1TileDown60,
		LeftQuarterTurn1TileUp90,
		LeftQuarterTurn1TileDown90:
		return force.KindConst45

	case RightQuarterTurn1Tile,
		RightQuarterTurn1TileUp60,
		RightQuarterTurn1TileDown60,
		RightQuarterTurn1TileUp90,
		RightQuarterTurn1TileDown90:
		return force.KindConstNeg45

	case LeftEighthToDiag,
		LeftEighthToOrthogonal,
		LeftEighthBankToDiag,
		LeftEighthBankToOrthogonal:
		return force.KindConst137

	case RightEighthToDiag,
		RightEighthToOrthogonal,
		RightEighthBankToDiag,
		RightEighthBankToOrthogonal:
		return force.KindConstNeg137

	case SBendLeft, SBendLeftCovered:
		return force.KindSBendLeft
	case SBendRight, SBendRightCovered:
		return force.KindSBendRight

	case LeftZeroGRollUp:
		return force.KindZeroGRollUpLeft
	case RightZeroGRollUp:
		return force.KindZeroGRollUpRight
	case LeftZeroGRollDown:
		return force.KindZeroGRollDownLeft
	case RightZeroGRollDown:
		return force.KindZeroGRollDownRight

	case LeftLargeZeroGRollUp:
		return force.KindLargeZeroGRollUpLeft
	case RightLargeZeroGRollUp:
		return force.KindLargeZeroGRollUpRight
	case LeftLargeZeroGRollDown:
		return force.KindLargeZeroGRollDownLeft
	case RightLargeZeroGRollDown:
		return force.KindLargeZeroGRollDownRight

	default:
		return force.KindZero
	}
}

// VerticalKind returns the vertical evaluator bound to t. Straight track of
// constant pitch, twists and rolls get KindZero, as does anything not listed.
func VerticalKind(t ElemType) force.Kind {
	switch t {
	// Flat to 25 degree transitions. Entering a slope from below pushes
	// riders into their seats; cresting lifts them.
	case FlatToUp25,
		Down25ToFlat,
		LeftBankToUp25,
		RightBankToUp25,
		Down25ToLeftBank,
		Down25ToRightBank,
		FlatToUp25Covered,
		Down25ToFlatCovered,
		LeftBankedFlatToLeftBankedUp25,
		RightBankedFlatToRightBankedUp25,
		LeftBankedDown25ToLeftBankedFlat,
		RightBankedDown25ToRightBankedFlat,
		FlatToLeftBankedUp25,
		FlatToRightBankedUp25,
		LeftBankedDown25ToFlat,
		RightBankedDown25ToFlat:
		return force.KindConst103

	case Up25ToFlat,
		FlatToDown25,
		Up25ToLeftBank,
		Up25ToRightBank,
		LeftBankToDown25,
		RightBankToDown25,
		Up25ToFlatCovered,
		FlatToDown25Covered,
		LeftBankedUp25ToLeftBankedFlat,
		RightBankedUp25ToRightBankedFlat,
		LeftBankedFlatToLeftBankedDown25,
		RightBankedFlatToRightBankedDown25,
		LeftBankedUp25ToFlat,
		RightBankedUp25ToFlat,
		FlatToLeftBankedDown25,
		FlatToRightBankedDown25:
		return force.KindConstNeg103

	case Up25ToUp60, Down60ToDown25, Up25ToUp60Covered, Down60ToDown25Covered:
		return force.KindConst82
	case Up60ToUp25, Down25ToDown60, Up60ToUp25Covered, Down25ToDown60Covered:
		return force.KindConstNeg82

	case FlatToUp60, Down60ToFlat:
		return force.KindConst56
	case Up60ToFlat, FlatToDown60:
		return force.KindConstNeg56

	case FlatToUp60LongBase, Down60ToFlatLongBase:
		return force.KindConst160
	case Up60ToFlatLongBase, FlatToDown60LongBase:
		return force.KindConstNeg160

	case Up60ToUp90, Down90ToDown60:
		return force.KindConst110
	case Up90ToUp60, Down60ToDown90:
		return force.KindConstNeg110

	case BrakeForDrop:
		return force.KindConstNeg65

	// Diagonal transitions are shorter than their orthogonal counterparts,
	// so the factors differ.
	case DiagFlatToUp25,
		DiagDown25ToFlat,
		DiagLeftBankToUp25,
		DiagRightBankToUp25,
		DiagDown25ToLeftBank,
		DiagDown25ToRightBank:
		return force.KindConst113
	case DiagUp25ToFlat,
		DiagFlatToDown25,
		DiagUp25ToLeftBank,
		DiagUp25ToRightBank,
		DiagLeftBankToDown25,
		DiagRightBankToDown25:
		return force.KindConstNeg113

	case DiagUp25ToUp60, DiagDown60ToDown25:
		return force.KindConst95
	case DiagUp60ToUp25, DiagDown25ToDown60:
		return force.KindConstNeg95

	case DiagFlatToUp60, DiagDown60ToFlat:
		return force.KindConst60
	case DiagUp60ToFlat, DiagFlatToDown60:
		return force.KindConstNeg60

	case LeftCorkscrewUp,
		RightCorkscrewUp,
		LeftCorkscrewDown,
		RightCorkscrewDown,
		LeftFlyerCorkscrewUp,
		RightFlyerCorkscrewUp,
		LeftFlyerCorkscrewDown,
		RightFlyerCorkscrewDown:
		return force.KindConst52

	case LeftVerticalLoop, RightVerticalLoop:
		return force.KindVerticalLoop

	case HalfLoopUp, FlyerHalfLoopUninvertedUp, FlyerHalfLoopInvertedUp:
		return force.KindHalfLoopUp
	case HalfLoopDown, FlyerHalfLoopInvertedDown, FlyerHalfLoopUninvertedDown:
		return force.KindHalfLoopDown

	case LeftMediumHalfLoopUp, RightMediumHalfLoopUp:
		return force.KindMediumHalfLoopUp
	case LeftMediumHalfLoopDown, RightMediumHalfLoopDown:
		return force.KindMediumHalfLoopDown

	case LeftLargeHalfLoopUp,
		RightLargeHalfLoopUp,
		LeftFlyerLargeHalfLoopUninvertedUp,
		RightFlyerLargeHalfLoopUninvertedUp,
		LeftFlyerLargeHalfLoopInvertedUp,
		RightFlyerLargeHalfLoopInvertedUp:
		return force.KindLargeHalfLoopUp
	case LeftLargeHalfLoopDown,
		RightLargeHalfLoopDown,
		LeftFlyerLargeHalfLoopInvertedDown,
		RightFlyerLargeHalfLoopInvertedDown,
		LeftFlyerLargeHalfLoopUninvertedDown,
		RightFlyerLargeHalfLoopUninvertedDown:
		return force.KindLargeHalfLoopDown

	case Up90ToInvertedFlatQuarterLoop,
		MultiDimUp90ToInvertedFlatQuarterLoop,
		MultiDimInvertedUp90ToFlatQuarterLoop:
		return force.KindUp90QuarterLoop
	case InvertedFlatToDown90QuarterLoop,
		MultiDimInvertedFlatToDown90QuarterLoop,
		MultiDimFlatToDown90QuarterLoop:
		return force.KindDown90QuarterLoop

	case LeftLargeCorkscrewUp, RightLargeCorkscrewUp:
		return force.KindLargeCorkscrewUp
	case LeftLargeCorkscrewDown, RightLargeCorkscrewDown:
		return force.KindLargeCorkscrewDown

	case LeftLargeZeroGRollUp, RightLargeZeroGRollUp:
		return force.KindLargeZeroGRollUp
	case LeftLargeZeroGRollDown, RightLargeZeroGRollDown:
		return force.KindLargeZeroGRollDown

	case Watersplash:
		return force.KindWaterSplash

	case HeartLineTransferUp:
		return force.KindHeartLineTransferUp
	case HeartLineTransferDown:
		return force.KindHeartLineTransferDown

	default:
		return force.KindZero
	}
}

// LateralFunction returns the lateral evaluator for t. It never returns nil.
func LateralFunction(t ElemType) force.Func {
	return LateralKind(t).Func()
}

// VerticalFunction returns the vertical evaluator for t. It never returns nil.
func VerticalFunction(t ElemType) force.Func {
	return VerticalKind(t).Func()
}
