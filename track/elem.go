// Package track is the static catalog of track elements: geometry, pricing,
// flags, chaining, mirroring, spin behaviour, per-tile sequences and the
// force evaluators bound to each element.
package track

import (
	"errors"
	"fmt"
)

// ElemType identifies a single track element (piece) geometry.
// Values are contiguous from Flat up to (but not including) ElemTypeCount.
type ElemType uint16

const (
	Flat ElemType = iota
	EndStation
	BeginStation
	MiddleStation
	Up25
	Up60
	FlatToUp25
	Up25ToUp60
	Up60ToUp25
	Up25ToFlat
	Down25
	Down60
	FlatToDown25
	Down25ToDown60
	Down60ToDown25
	Down25ToFlat
	LeftQuarterTurn5Tiles
	RightQuarterTurn5Tiles
	FlatToLeftBank
	FlatToRightBank
	LeftBankToFlat
	RightBankToFlat
	BankedLeftQuarterTurn5Tiles
	BankedRightQuarterTurn5Tiles
	LeftBankToUp25
	RightBankToUp25
	Up25ToLeftBank
	Up25ToRightBank
	LeftBankToDown25
	RightBankToDown25
	Down25ToLeftBank
	Down25ToRightBank
	LeftBank
	RightBank
	LeftQuarterTurn5TilesUp25
	RightQuarterTurn5TilesUp25
	LeftQuarterTurn5TilesDown25
	RightQuarterTurn5TilesDown25
	SBendLeft
	SBendRight
	LeftVerticalLoop
	RightVerticalLoop
	LeftQuarterTurn3Tiles
	RightQuarterTurn3Tiles
	LeftBankedQuarterTurn3Tiles
	RightBankedQuarterTurn3Tiles
	LeftQuarterTurn3TilesUp25
	RightQuarterTurn3TilesUp25
	LeftQuarterTurn3TilesDown25
	RightQuarterTurn3TilesDown25
	LeftQuarterTurn1Tile
	RightQuarterTurn1Tile
	LeftTwistDownToUp
	RightTwistDownToUp
	LeftTwistUpToDown
	RightTwistUpToDown
	HalfLoopUp
	HalfLoopDown
	LeftCorkscrewUp
	RightCorkscrewUp
	LeftCorkscrewDown
	RightCorkscrewDown
	FlatToUp60
	Up60ToFlat
	FlatToDown60
	Down60ToFlat
	TowerBase
	TowerSection
	FlatCovered
	Up25Covered
	Up60Covered
	FlatToUp25Covered
	Up25ToUp60Covered
	Up60ToUp25Covered
	Up25ToFlatCovered
	Down25Covered
	Down60Covered
	FlatToDown25Covered
	Down25ToDown60Covered
	Down60ToDown25Covered
	Down25ToFlatCovered
	LeftQuarterTurn5TilesCovered
	RightQuarterTurn5TilesCovered
	SBendLeftCovered
	SBendRightCovered
	LeftQuarterTurn3TilesCovered
	RightQuarterTurn3TilesCovered
	LeftHalfBankedHelixUpSmall
	RightHalfBankedHelixUpSmall
	LeftHalfBankedHelixDownSmall
	RightHalfBankedHelixDownSmall
	LeftHalfBankedHelixUpLarge
	RightHalfBankedHelixUpLarge
	LeftHalfBankedHelixDownLarge
	RightHalfBankedHelixDownLarge
	LeftQuarterTurn1TileUp60
	RightQuarterTurn1TileUp60
	LeftQuarterTurn1TileDown60
	RightQuarterTurn1TileDown60
	Brakes
	Booster
	Maze
	LeftQuarterBankedHelixLargeUp
	RightQuarterBankedHelixLargeUp
	LeftQuarterBankedHelixLargeDown
	RightQuarterBankedHelixLargeDown
	LeftQuarterHelixLargeUp
	RightQuarterHelixLargeUp
	LeftQuarterHelixLargeDown
	RightQuarterHelixLargeDown
	Up25LeftBanked
	Up25RightBanked
	Waterfall
	Rapids
	OnRidePhoto
	Down25LeftBanked
	Down25RightBanked
	Watersplash
	FlatToUp60LongBase
	Up60ToFlatLongBase
	Whirlpool
	Down60ToFlatLongBase
	FlatToDown60LongBase
	CableLiftHill
	ReverseFreefallSlope
	ReverseFreefallVertical
	Up90
	Down90
	Up60ToUp90
	Down90ToDown60
	Up90ToUp60
	Down60ToDown90
	BrakeForDrop
	LeftEighthToDiag
	RightEighthToDiag
	LeftEighthToOrthogonal
	RightEighthToOrthogonal
	LeftEighthBankToDiag
	RightEighthBankToDiag
	LeftEighthBankToOrthogonal
	RightEighthBankToOrthogonal
	DiagFlat
	DiagUp25
	DiagUp60
	DiagFlatToUp25
	DiagUp25ToUp60
	DiagUp60ToUp25
	DiagUp25ToFlat
	DiagDown25
	DiagDown60
	DiagFlatToDown25
	DiagDown25ToDown60
	DiagDown60ToDown25
	DiagDown25ToFlat
	DiagFlatToUp60
	DiagUp60ToFlat
	DiagFlatToDown60
	DiagDown60ToFlat
	DiagFlatToLeftBank
	DiagFlatToRightBank
	DiagLeftBankToFlat
	DiagRightBankToFlat
	DiagLeftBankToUp25
	DiagRightBankToUp25
	DiagUp25ToLeftBank
	DiagUp25ToRightBank
	DiagLeftBankToDown25
	DiagRightBankToDown25
	DiagDown25ToLeftBank
	DiagDown25ToRightBank
	DiagLeftBank
	DiagRightBank
	LogFlumeReverser
	SpinningTunnel
	LeftBarrelRollUpToDown
	RightBarrelRollUpToDown
	LeftBarrelRollDownToUp
	RightBarrelRollDownToUp
	LeftBankToLeftQuarterTurn3TilesUp25
	RightBankToRightQuarterTurn3TilesUp25
	LeftQuarterTurn3TilesDown25ToLeftBank
	RightQuarterTurn3TilesDown25ToRightBank
	PoweredLift
	LeftLargeHalfLoopUp
	RightLargeHalfLoopUp
	RightLargeHalfLoopDown
	LeftLargeHalfLoopDown
	LeftFlyerTwistUp
	RightFlyerTwistUp
	LeftFlyerTwistDown
	RightFlyerTwistDown
	FlyerHalfLoopUninvertedUp
	FlyerHalfLoopInvertedDown
	LeftFlyerCorkscrewUp
	RightFlyerCorkscrewUp
	LeftFlyerCorkscrewDown
	RightFlyerCorkscrewDown
	HeartLineTransferUp
	HeartLineTransferDown
	LeftHeartLineRoll
	RightHeartLineRoll
	MinigolfHoleA
	MinigolfHoleB
	MinigolfHoleC
	MinigolfHoleD
	MinigolfHoleE
	MultiDimInvertedFlatToDown90QuarterLoop
	Up90ToInvertedFlatQuarterLoop
	InvertedFlatToDown90QuarterLoop
	LeftCurvedLiftHill
	RightCurvedLiftHill
	LeftReverser
	RightReverser
	AirThrustTopCap
	AirThrustVerticalDown
	AirThrustVerticalDownToLevel
	BlockBrakes
	LeftBankedQuarterTurn3TileUp25
	RightBankedQuarterTurn3TileUp25
	LeftBankedQuarterTurn3TileDown25
	RightBankedQuarterTurn3TileDown25
	LeftBankedQuarterTurn5TileUp25
	RightBankedQuarterTurn5TileUp25
	LeftBankedQuarterTurn5TileDown25
	RightBankedQuarterTurn5TileDown25
	Up25ToLeftBankedUp25
	Up25ToRightBankedUp25
	LeftBankedUp25ToUp25
	RightBankedUp25ToUp25
	Down25ToLeftBankedDown25
	Down25ToRightBankedDown25
	LeftBankedDown25ToDown25
	RightBankedDown25ToDown25
	LeftBankedFlatToLeftBankedUp25
	RightBankedFlatToRightBankedUp25
	LeftBankedUp25ToLeftBankedFlat
	RightBankedUp25ToRightBankedFlat
	LeftBankedFlatToLeftBankedDown25
	RightBankedFlatToRightBankedDown25
	LeftBankedDown25ToLeftBankedFlat
	RightBankedDown25ToRightBankedFlat
	FlatToLeftBankedUp25
	FlatToRightBankedUp25
	LeftBankedUp25ToFlat
	RightBankedUp25ToFlat
	FlatToLeftBankedDown25
	FlatToRightBankedDown25
	LeftBankedDown25ToFlat
	RightBankedDown25ToFlat
	LeftQuarterTurn1TileUp90
	RightQuarterTurn1TileUp90
	LeftQuarterTurn1TileDown90
	RightQuarterTurn1TileDown90
	MultiDimUp90ToInvertedFlatQuarterLoop
	MultiDimFlatToDown90QuarterLoop
	MultiDimInvertedUp90ToFlatQuarterLoop
	RotationControlToggle
	FlatTrack1x4A
	FlatTrack2x2
	FlatTrack4x4
	FlatTrack2x4
	FlatTrack1x5
	FlatTrack1x1A
	FlatTrack1x4B
	FlatTrack1x1B
	FlatTrack1x4C
	FlatTrack3x3
	LeftLargeCorkscrewUp
	RightLargeCorkscrewUp
	LeftLargeCorkscrewDown
	RightLargeCorkscrewDown
	LeftMediumHalfLoopUp
	RightMediumHalfLoopUp
	LeftMediumHalfLoopDown
	RightMediumHalfLoopDown
	LeftZeroGRollUp
	RightZeroGRollUp
	LeftZeroGRollDown
	RightZeroGRollDown
	LeftLargeZeroGRollUp
	RightLargeZeroGRollUp
	LeftLargeZeroGRollDown
	RightLargeZeroGRollDown
	LeftFlyerLargeHalfLoopUninvertedUp
	RightFlyerLargeHalfLoopUninvertedUp
	LeftFlyerLargeHalfLoopInvertedDown
	RightFlyerLargeHalfLoopInvertedDown
	LeftFlyerLargeHalfLoopInvertedUp
	RightFlyerLargeHalfLoopInvertedUp
	LeftFlyerLargeHalfLoopUninvertedDown
	RightFlyerLargeHalfLoopUninvertedDown
	FlyerHalfLoopInvertedUp
	FlyerHalfLoopUninvertedDown
	DiagBrakes
	DiagBlockBrakes
	Down25Brakes
	DiagBooster

	// ElemTypeCount is the number of element types. It is not a valid ElemType.
	ElemTypeCount
)

// ElemTypeNone marks the absence of an element in tables that refer to other elements.
const ElemTypeNone ElemType = 0xFFFF

var ErrUnknownElemType = errors.New("unknown element type")

// Valid reports whether t is one of the enumerated element types.
func (t ElemType) Valid() bool {
	return t < ElemTypeCount
}

func (t ElemType) String() string {
	if t == ElemTypeNone {
		return "None"
	}
	if !t.Valid() {
		return fmt.Sprintf("ElemType(%d)", uint16(t))
	}
	return elemTypeNames[t]
}

// ParseElemType is the inverse of ElemType.String.
func ParseElemType(name string) (ElemType, error) {
	if name == "None" {
		return ElemTypeNone, nil
	}
	t, ok := elemTypesByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownElemType, name)
	}
	return t, nil
}

// MustParseElemType is ParseElemType but panics on unknown names.
// This is for fixtures and tests.
func MustParseElemType(name string) ElemType {
	t, err := ParseElemType(name)
	if err != nil {
		panic(err)
	}
	return t
}

func (t ElemType) MarshalText() ([]byte, error) {
	if t != ElemTypeNone && !t.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", t, ErrUnknownElemType)
	}
	return []byte(t.String()), nil
}

func (t *ElemType) UnmarshalText(text []byte) error {
	t2, err := ParseElemType(string(text))
	if err != nil {
		return err
	}
	*t = t2
	return nil
}

var elemTypesByName = func() map[string]ElemType {
	m := make(map[string]ElemType, ElemTypeCount)
	for i, name := range elemTypeNames {
		m[name] = ElemType(i)
	}
	return m
}()

var elemTypeNames = [ElemTypeCount]string{
	Flat:                                    "Flat",
	EndStation:                              "EndStation",
	BeginStation:                            "BeginStation",
	MiddleStation:                           "MiddleStation",
	Up25:                                    "Up25",
	Up60:                                    "Up60",
	FlatToUp25:                              "FlatToUp25",
	Up25ToUp60:                              "Up25ToUp60",
	Up60ToUp25:                              "Up60ToUp25",
	Up25ToFlat:                              "Up25ToFlat",
	Down25:                                  "Down25",
	Down60:                                  "Down60",
	FlatToDown25:                            "FlatToDown25",
	Down25ToDown60:                          "Down25ToDown60",
	Down60ToDown25:                          "Down60ToDown25",
	Down25ToFlat:                            "Down25ToFlat",
	LeftQuarterTurn5Tiles:                   "LeftQuarterTurn5Tiles",
	RightQuarterTurn5Tiles:                  "RightQuarterTurn5Tiles",
	FlatToLeftBank:                          "FlatToLeftBank",
	FlatToRightBank:                         "FlatToRightBank",
	LeftBankToFlat:                          "LeftBankToFlat",
	RightBankToFlat:                         "RightBankToFlat",
	BankedLeftQuarterTurn5Tiles:             "BankedLeftQuarterTurn5Tiles",
	BankedRightQuarterTurn5Tiles:            "BankedRightQuarterTurn5Tiles",
	LeftBankToUp25:                          "LeftBankToUp25",
	RightBankToUp25:                         "RightBankToUp25",
	Up25ToLeftBank:                          "Up25ToLeftBank",
	Up25ToRightBank:                         "Up25ToRightBank",
	LeftBankToDown25:                        "LeftBankToDown25",
	RightBankToDown25:                       "RightBankToDown25",
	Down25ToLeftBank:                        "Down25ToLeftBank",
	Down25ToRightBank:                       "Down25ToRightBank",
	LeftBank:                                "LeftBank",
	RightBank:                               "RightBank",
	LeftQuarterTurn5TilesUp25:               "LeftQuarterTurn5TilesUp25",
	RightQuarterTurn5TilesUp25:              "RightQuarterTurn5TilesUp25",
	LeftQuarterTurn5TilesDown25:             "LeftQuarterTurn5TilesDown25",
	RightQuarterTurn5TilesDown25:            "RightQuarterTurn5TilesDown25",
	SBendLeft:                               "SBendLeft",
	SBendRight:                              "SBendRight",
	LeftVerticalLoop:                        "LeftVerticalLoop",
	RightVerticalLoop:                       "RightVerticalLoop",
	LeftQuarterTurn3Tiles:                   "LeftQuarterTurn3Tiles",
	RightQuarterTurn3Tiles:                  "RightQuarterTurn3Tiles",
	LeftBankedQuarterTurn3Tiles:             "LeftBankedQuarterTurn3Tiles",
	RightBankedQuarterTurn3Tiles:            "RightBankedQuarterTurn3Tiles",
	LeftQuarterTurn3TilesUp25:               "LeftQuarterTurn3TilesUp25",
	RightQuarterTurn3TilesUp25:              "RightQuarterTurn3TilesUp25",
	LeftQuarterTurn3TilesDown25:             "LeftQuarterTurn3TilesDown25",
	RightQuarterTurn3TilesDown25:            "RightQuarterTurn3TilesDown25",
	LeftQuarterTurn1Tile:                    "LeftQuarterTurn1Tile",
	RightQuarterTurn1Tile:                   "RightQuarterTurn1Tile",
	LeftTwistDownToUp:                       "LeftTwistDownToUp",
	RightTwistDownToUp:                      "RightTwistDownToUp",
	LeftTwistUpToDown:                       "LeftTwistUpToDown",
	RightTwistUpToDown:                      "RightTwistUpToDown",
	HalfLoopUp:                              "HalfLoopUp",
	HalfLoopDown:                            "HalfLoopDown",
	LeftCorkscrewUp:                         "LeftCorkscrewUp",
	RightCorkscrewUp:                        "RightCorkscrewUp",
	LeftCorkscrewDown:                       "LeftCorkscrewDown",
	RightCorkscrewDown:                      "RightCorkscrewDown",
	FlatToUp60:                              "FlatToUp60",
	Up60ToFlat:                              "Up60ToFlat",
	FlatToDown60:                            "FlatToDown60",
	Down60ToFlat:                            "Down60ToFlat",
	TowerBase:                               "TowerBase",
	TowerSection:                            "TowerSection",
	FlatCovered:                             "FlatCovered",
	Up25Covered:                             "Up25Covered",
	Up60Covered:                             "Up60Covered",
	FlatToUp25Covered:                       "FlatToUp25Covered",
	Up25ToUp60Covered:                       "Up25ToUp60Covered",
	Up60ToUp25Covered:                       "Up60ToUp25Covered",
	Up25ToFlatCovered:                       "Up25ToFlatCovered",
	Down25Covered:                           "Down25Covered",
	Down60Covered:                           "Down60Covered",
	FlatToDown25Covered:                     "FlatToDown25Covered",
	Down25ToDown60Covered:                   "Down25ToDown60Covered",
	Down60ToDown25Covered:                   "Down60ToDown25Covered",
	Down25ToFlatCovered:                     "Down25ToFlatCovered",
	LeftQuarterTurn5TilesCovered:            "LeftQuarterTurn5TilesCovered",
	RightQuarterTurn5TilesCovered:           "RightQuarterTurn5TilesCovered",
	SBendLeftCovered:                        "SBendLeftCovered",
	SBendRightCovered:                       "SBendRightCovered",
	LeftQuarterTurn3TilesCovered:            "LeftQuarterTurn3TilesCovered",
	RightQuarterTurn3TilesCovered:           "RightQuarterTurn3TilesCovered",
	LeftHalfBankedHelixUpSmall:              "LeftHalfBankedHelixUpSmall",
	RightHalfBankedHelixUpSmall:             "RightHalfBankedHelixUpSmall",
	LeftHalfBankedHelixDownSmall:            "LeftHalfBankedHelixDownSmall",
	RightHalfBankedHelixDownSmall:           "RightHalfBankedHelixDownSmall",
	LeftHalfBankedHelixUpLarge:              "LeftHalfBankedHelixUpLarge",
	RightHalfBankedHelixUpLarge:             "RightHalfBankedHelixUpLarge",
	LeftHalfBankedHelixDownLarge:            "LeftHalfBankedHelixDownLarge",
	RightHalfBankedHelixDownLarge:           "RightHalfBankedHelixDownLarge",
	LeftQuarterTurn1TileUp60:                "LeftQuarterTurn1TileUp60",
	RightQuarterTurn1TileUp60:               "RightQuarterTurn1TileUp60",
	LeftQuarterTurn1TileDown60:              "LeftQuarterTurn1TileDown60",
	RightQuarterTurn1TileDown60:             "RightQuarterTurn1TileDown60",
	Brakes:                                  "Brakes",
	Booster:                                 "Booster",
	Maze:                                    "Maze",
	LeftQuarterBankedHelixLargeUp:           "LeftQuarterBankedHelixLargeUp",
	RightQuarterBankedHelixLargeUp:          "RightQuarterBankedHelixLargeUp",
	LeftQuarterBankedHelixLargeDown:         "LeftQuarterBankedHelixLargeDown",
	RightQuarterBankedHelixLargeDown:        "RightQuarterBankedHelixLargeDown",
	LeftQuarterHelixLargeUp:                 "LeftQuarterHelixLargeUp",
	RightQuarterHelixLargeUp:                "RightQuarterHelixLargeUp",
	LeftQuarterHelixLargeDown:               "LeftQuarterHelixLargeDown",
	RightQuarterHelixLargeDown:              "RightQuarterHelixLargeDown",
	Up25LeftBanked:                          "Up25LeftBanked",
	Up25RightBanked:                         "Up25RightBanked",
	Waterfall:                               "Waterfall",
	Rapids:                                  "Rapids",
	OnRidePhoto:                             "OnRidePhoto",
	Down25LeftBanked:                        "Down25LeftBanked",
	Down25RightBanked:                       "Down25RightBanked",
	Watersplash:                             "Watersplash",
	FlatToUp60LongBase:                      "FlatToUp60LongBase",
	Up60ToFlatLongBase:                      "Up60ToFlatLongBase",
	Whirlpool:                               "Whirlpool",
	Down60ToFlatLongBase:                    "Down60ToFlatLongBase",
	FlatToDown60LongBase:                    "FlatToDown60LongBase",
	CableLiftHill:                           "CableLiftHill",
	ReverseFreefallSlope:                    "ReverseFreefallSlope",
	ReverseFreefallVertical:                 "ReverseFreefallVertical",
	Up90:                                    "Up90",
	Down90:                                  "Down90",
	Up60ToUp90:                              "Up60ToUp90",
	Down90ToDown60:                          "Down90ToDown60",
	Up90ToUp60:                              "Up90ToUp60",
	Down60ToDown90:                          "Down60ToDown90",
	BrakeForDrop:                            "BrakeForDrop",
	LeftEighthToDiag:                        "LeftEighthToDiag",
	RightEighthToDiag:                       "RightEighthToDiag",
	LeftEighthToOrthogonal:                  "LeftEighthToOrthogonal",
	RightEighthToOrthogonal:                 "RightEighthToOrthogonal",
	LeftEighthBankToDiag:                    "LeftEighthBankToDiag",
	RightEighthBankToDiag:                   "RightEighthBankToDiag",
	LeftEighthBankToOrthogonal:              "LeftEighthBankToOrthogonal",
	RightEighthBankToOrthogonal:             "RightEighthBankToOrthogonal",
	DiagFlat:                                "DiagFlat",
	DiagUp25:                                "DiagUp25",
	DiagUp60:                                "DiagUp60",
	DiagFlatToUp25:                          "DiagFlatToUp25",
	DiagUp25ToUp60:                          "DiagUp25ToUp60",
	DiagUp60ToUp25:                          "DiagUp60ToUp25",
	DiagUp25ToFlat:                          "DiagUp25ToFlat",
	DiagDown25:                              "DiagDown25",
	DiagDown60:                              "DiagDown60",
	DiagFlatToDown25:                        "DiagFlatToDown25",
	DiagDown25ToDown60:                      "DiagDown25ToDown60",
	DiagDown60ToDown25:                      "DiagDown60ToDown25",
	DiagDown25ToFlat:                        "DiagDown25ToFlat",
	DiagFlatToUp60:                          "DiagFlatToUp60",
	DiagUp60ToFlat:                          "DiagUp60ToFlat",
	DiagFlatToDown60:                        "DiagFlatToDown60",
	DiagDown60ToFlat:                        "DiagDown60ToFlat",
	DiagFlatToLeftBank:                      "DiagFlatToLeftBank",
	DiagFlatToRightBank:                     "DiagFlatToRightBank",
	DiagLeftBankToFlat:                      "DiagLeftBankToFlat",
	DiagRightBankToFlat:                     "DiagRightBankToFlat",
	DiagLeftBankToUp25:                      "DiagLeftBankToUp25",
	DiagRightBankToUp25:                     "DiagRightBankToUp25",
	DiagUp25ToLeftBank:                      "DiagUp25ToLeftBank",
	DiagUp25ToRightBank:                     "DiagUp25ToRightBank",
	DiagLeftBankToDown25:                    "DiagLeftBankToDown25",
	DiagRightBankToDown25:                   "DiagRightBankToDown25",
	DiagDown25ToLeftBank:                    "DiagDown25ToLeftBank",
	DiagDown25ToRightBank:                   "DiagDown25ToRightBank",
	DiagLeftBank:                            "DiagLeftBank",
	DiagRightBank:                           "DiagRightBank",
	LogFlumeReverser:                        "LogFlumeReverser",
	SpinningTunnel:                          "SpinningTunnel",
	LeftBarrelRollUpToDown:                  "LeftBarrelRollUpToDown",
	RightBarrelRollUpToDown:                 "RightBarrelRollUpToDown",
	LeftBarrelRollDownToUp:                  "LeftBarrelRollDownToUp",
	RightBarrelRollDownToUp:                 "RightBarrelRollDownToUp",
	LeftBankToLeftQuarterTurn3TilesUp25:     "LeftBankToLeftQuarterTurn3TilesUp25",
	RightBankToRightQuarterTurn3TilesUp25:   "RightBankToRightQuarterTurn3TilesUp25",
	LeftQuarterTurn3TilesDown25ToLeftBank:   "LeftQuarterTurn3TilesDown25ToLeftBank",
	RightQuarterTurn3TilesDown25ToRightBank: "RightQuarterTurn3TilesDown25ToRightBank",
	PoweredLift:                             "PoweredLift",
	LeftLargeHalfLoopUp:                     "LeftLargeHalfLoopUp",
	RightLargeHalfLoopUp:                    "RightLargeHalfLoopUp",
	RightLargeHalfLoopDown:                  "RightLargeHalfLoopDown",
	LeftLargeHalfLoopDown:                   "LeftLargeHalfLoopDown",
	LeftFlyerTwistUp:                        "LeftFlyerTwistUp",
	RightFlyerTwistUp:                       "RightFlyerTwistUp",
	LeftFlyerTwistDown:                      "LeftFlyerTwistDown",
	RightFlyerTwistDown:                     "RightFlyerTwistDown",
	FlyerHalfLoopUninvertedUp:               "FlyerHalfLoopUninvertedUp",
	FlyerHalfLoopInvertedDown:               "FlyerHalfLoopInvertedDown",
	LeftFlyerCorkscrewUp:                    "LeftFlyerCorkscrewUp",
	RightFlyerCorkscrewUp:                   "RightFlyerCorkscrewUp",
	LeftFlyerCorkscrewDown:                  "LeftFlyerCorkscrewDown",
	RightFlyerCorkscrewDown:                 "RightFlyerCorkscrewDown",
	HeartLineTransferUp:                     "HeartLineTransferUp",
	HeartLineTransferDown:                   "HeartLineTransferDown",
	LeftHeartLineRoll:                       "LeftHeartLineRoll",
	RightHeartLineRoll:                      "RightHeartLineRoll",
	MinigolfHoleA:                           "MinigolfHoleA",
	MinigolfHoleB:                           "MinigolfHoleB",
	MinigolfHoleC:                           "MinigolfHoleC",
	MinigolfHoleD:                           "MinigolfHoleD",
	MinigolfHoleE:                           "MinigolfHoleE",
	MultiDimInvertedFlatToDown90QuarterLoop: "MultiDimInvertedFlatToDown90QuarterLoop",
	Up90ToInvertedFlatQuarterLoop:           "Up90ToInvertedFlatQuarterLoop",
	InvertedFlatToDown90QuarterLoop:         "InvertedFlatToDown90QuarterLoop",
	LeftCurvedLiftHill:                      "LeftCurvedLiftHill",
	RightCurvedLiftHill:                     "RightCurvedLiftHill",
	LeftReverser:                            "LeftReverser",
	RightReverser:                           "RightReverser",
	AirThrustTopCap:                         "AirThrustTopCap",
	AirThrustVerticalDown:                   "AirThrustVerticalDown",
	AirThrustVerticalDownToLevel:            "AirThrustVerticalDownToLevel",
	BlockBrakes:                             "BlockBrakes",
	LeftBankedQuarterTurn3TileUp25:          "LeftBankedQuarterTurn3TileUp25",
	RightBankedQuarterTurn3TileUp25:         "RightBankedQuarterTurn3TileUp25",
	LeftBankedQuarterTurn3TileDown25:        "LeftBankedQuarterTurn3TileDown25",
	RightBankedQuarterTurn3TileDown25:       "RightBankedQuarterTurn3TileDown25",
	LeftBankedQuarterTurn5TileUp25:          "LeftBankedQuarterTurn5TileUp25",
	RightBankedQuarterTurn5TileUp25:         "RightBankedQuarterTurn5TileUp25",
	LeftBankedQuarterTurn5TileDown25:        "LeftBankedQuarterTurn5TileDown25",
	RightBankedQuarterTurn5TileDown25:       "RightBankedQuarterTurn5TileDown25",
	Up25ToLeftBankedUp25:                    "Up25ToLeftBankedUp25",
	Up25ToRightBankedUp25:                   "Up25ToRightBankedUp25",
	LeftBankedUp25ToUp25:                    "LeftBankedUp25ToUp25",
	RightBankedUp25ToUp25:                   "RightBankedUp25ToUp25",
	Down25ToLeftBankedDown25:                "Down25ToLeftBankedDown25",
	Down25ToRightBankedDown25:               "Down25ToRightBankedDown25",
	LeftBankedDown25ToDown25:                "LeftBankedDown25ToDown25",
	RightBankedDown25ToDown25:               "RightBankedDown25ToDown25",
	LeftBankedFlatToLeftBankedUp25:          "LeftBankedFlatToLeftBankedUp25",
	RightBankedFlatToRightBankedUp25:        "RightBankedFlatToRightBankedUp25",
	LeftBankedUp25ToLeftBankedFlat:          "LeftBankedUp25ToLeftBankedFlat",
	RightBankedUp25ToRightBankedFlat:        "RightBankedUp25ToRightBankedFlat",
	LeftBankedFlatToLeftBankedDown25:        "LeftBankedFlatToLeftBankedDown25",
	RightBankedFlatToRightBankedDown25:      "RightBankedFlatToRightBankedDown25",
	LeftBankedDown25ToLeftBankedFlat:        "LeftBankedDown25ToLeftBankedFlat",
	RightBankedDown25ToRightBankedFlat:      "RightBankedDown25ToRightBankedFlat",
	FlatToLeftBankedUp25:                    "FlatToLeftBankedUp25",
	FlatToRightBankedUp25:                   "FlatToRightBankedUp25",
	LeftBankedUp25ToFlat:                    "LeftBankedUp25ToFlat",
	RightBankedUp25ToFlat:                   "RightBankedUp25ToFlat",
	FlatToLeftBankedDown25:                  "FlatToLeftBankedDown25",
	FlatToRightBankedDown25:                 "FlatToRightBankedDown25",
	LeftBankedDown25ToFlat:                  "LeftBankedDown25ToFlat",
	RightBankedDown25ToFlat:                 "RightBankedDown25ToFlat",
	LeftQuarterTurn1TileUp90:                "LeftQuarterTurn1TileUp90",
	RightQuarterTurn1TileUp90:               "RightQuarterTurn1TileUp90",
	LeftQuarterTurn1TileDown90:              "LeftQuarterTurn1TileDown90",
	RightQuarterTurn1TileDown90:             "RightQuarterTurn1TileDown90",
	MultiDimUp90ToInvertedFlatQuarterLoop:   "MultiDimUp90ToInvertedFlatQuarterLoop",
	MultiDimFlatToDown90QuarterLoop:         "MultiDimFlatToDown90QuarterLoop",
	MultiDimInvertedUp90ToFlatQuarterLoop:   "MultiDimInvertedUp90ToFlatQuarterLoop",
	RotationControlToggle:                   "RotationControlToggle",
	FlatTrack1x4A:                           "FlatTrack1x4A",
	FlatTrack2x2:                            "FlatTrack2x2",
	FlatTrack4x4:                            "FlatTrack4x4",
	FlatTrack2x4:                            "FlatTrack2x4",
	FlatTrack1x5:                            "FlatTrack1x5",
	FlatTrack1x1A:                           "FlatTrack1x1A",
	FlatTrack1x4B:                           "FlatTrack1x4B",
	FlatTrack1x1B:                           "FlatTrack1x1B",
	FlatTrack1x4C:                           "FlatTrack1x4C",
	FlatTrack3x3:                            "FlatTrack3x3",
	LeftLargeCorkscrewUp:                    "LeftLargeCorkscrewUp",
	RightLargeCorkscrewUp:                   "RightLargeCorkscrewUp",
	LeftLargeCorkscrewDown:                  "LeftLargeCorkscrewDown",
	RightLargeCorkscrewDown:                 "RightLargeCorkscrewDown",
	LeftMediumHalfLoopUp:                    "LeftMediumHalfLoopUp",
	RightMediumHalfLoopUp:                   "RightMediumHalfLoopUp",
	LeftMediumHalfLoopDown:                  "LeftMediumHalfLoopDown",
	RightMediumHalfLoopDown:                 "RightMediumHalfLoopDown",
	LeftZeroGRollUp:                         "LeftZeroGRollUp",
	RightZeroGRollUp:                        "RightZeroGRollUp",
	LeftZeroGRollDown:                       "LeftZeroGRollDown",
	RightZeroGRollDown:                      "RightZeroGRollDown",
	LeftLargeZeroGRollUp:                    "LeftLargeZeroGRollUp",
	RightLargeZeroGRollUp:                   "RightLargeZeroGRollUp",
	LeftLargeZeroGRollDown:                  "LeftLargeZeroGRollDown",
	RightLargeZeroGRollDown:                 "RightLargeZeroGRollDown",
	LeftFlyerLargeHalfLoopUninvertedUp:      "LeftFlyerLargeHalfLoopUninvertedUp",
	RightFlyerLargeHalfLoopUninvertedUp:     "RightFlyerLargeHalfLoopUninvertedUp",
	LeftFlyerLargeHalfLoopInvertedDown:      "LeftFlyerLargeHalfLoopInvertedDown",
	RightFlyerLargeHalfLoopInvertedDown:     "RightFlyerLargeHalfLoopInvertedDown",
	LeftFlyerLargeHalfLoopInvertedUp:        "LeftFlyerLargeHalfLoopInvertedUp",
	RightFlyerLargeHalfLoopInvertedUp:       "RightFlyerLargeHalfLoopInvertedUp",
	LeftFlyerLargeHalfLoopUninvertedDown:    "LeftFlyerLargeHalfLoopUninvertedDown",
	RightFlyerLargeHalfLoopUninvertedDown:   "RightFlyerLargeHalfLoopUninvertedDown",
	FlyerHalfLoopInvertedUp:                 "FlyerHalfLoopInvertedUp",
	FlyerHalfLoopUninvertedDown:             "FlyerHalfLoopUninvertedDown",
	DiagBrakes:                              "DiagBrakes",
	DiagBlockBrakes:                         "DiagBlockBrakes",
	Down25Brakes:                            "Down25Brakes",
	DiagBooster:                             "DiagBooster",
}
