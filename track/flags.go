package track

import "strings"

// Flags is a set of boolean element attributes used by placement validation
// and ride physics.
type Flags uint32

const (
	FlagOnlyUnderwater Flags = 1 << iota
	FlagTurnLeft
	FlagTurnRight
	FlagTurnBanked
	FlagTurnSloped
	FlagDown
	FlagUp
	FlagNormalToInversion
	FlagIsGolfHole
	FlagStartsAtHalfHeight
	FlagOnlyAboveGround
	// FlagIsSteepUp marks climbs steep enough to need the steep lift chain.
	FlagIsSteepUp
	FlagHelix
	FlagAllowLiftHill
	FlagCurveAllowsLift
	FlagInversionToNormal
	// FlagBanked is set when either end of the element is rolled left or right.
	FlagBanked
	FlagCanBePartlyUnderwater
)

var flagNames = []string{
	"only-underwater",
	"turn-left",
	"turn-right",
	"turn-banked",
	"turn-sloped",
	"down",
	"up",
	"normal-to-inversion",
	"is-golf-hole",
	"starts-at-half-height",
	"only-above-ground",
	"is-steep-up",
	"helix",
	"allow-lift-hill",
	"curve-allows-lift",
	"inversion-to-normal",
	"banked",
	"can-be-partly-underwater",
}

// Has reports whether all bits in f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Names lists the set flags in bit order.
func (f Flags) Names() []string {
	res := make([]string, 0, 4)
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			res = append(res, name)
		}
	}
	return res
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

var flagsTable = [ElemTypeCount]Flags{
	Flat:                                    FlagAllowLiftHill,
	EndStation:                              0,
	BeginStation:                            0,
	MiddleStation:                           0,
	Up25:                                    FlagUp | FlagAllowLiftHill,
	Up60:                                    FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	FlatToUp25:                              FlagUp | FlagAllowLiftHill,
	Up25ToUp60:                              FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	Up60ToUp25:                              FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	Up25ToFlat:                              FlagUp | FlagStartsAtHalfHeight | FlagAllowLiftHill,
	Down25:                                  FlagDown | FlagAllowLiftHill,
	Down60:                                  FlagDown | FlagAllowLiftHill,
	FlatToDown25:                            FlagDown | FlagStartsAtHalfHeight | FlagAllowLiftHill,
	Down25ToDown60:                          FlagDown | FlagAllowLiftHill,
	Down60ToDown25:                          FlagDown | FlagAllowLiftHill,
	Down25ToFlat:                            FlagDown | FlagAllowLiftHill,
	LeftQuarterTurn5Tiles:                   FlagTurnLeft,
	RightQuarterTurn5Tiles:                  FlagTurnRight,
	FlatToLeftBank:                          FlagBanked,
	FlatToRightBank:                         FlagBanked,
	LeftBankToFlat:                          FlagBanked,
	RightBankToFlat:                         FlagBanked,
	BankedLeftQuarterTurn5Tiles:             FlagTurnLeft | FlagTurnBanked | FlagBanked,
	BankedRightQuarterTurn5Tiles:            FlagTurnRight | FlagTurnBanked | FlagBanked,
	LeftBankToUp25:                          FlagUp | FlagBanked,
	RightBankToUp25:                         FlagUp | FlagBanked,
	Up25ToLeftBank:                          FlagUp | FlagBanked,
	Up25ToRightBank:                         FlagUp | FlagBanked,
	LeftBankToDown25:                        FlagDown | FlagBanked,
	RightBankToDown25:                       FlagDown | FlagBanked,
	Down25ToLeftBank:                        FlagDown | FlagBanked,
	Down25ToRightBank:                       FlagDown | FlagBanked,
	LeftBank:                                FlagBanked,
	RightBank:                               FlagBanked,
	LeftQuarterTurn5TilesUp25:               FlagTurnLeft | FlagTurnSloped | FlagUp,
	RightQuarterTurn5TilesUp25:              FlagTurnRight | FlagTurnSloped | FlagUp,
	LeftQuarterTurn5TilesDown25:             FlagTurnLeft | FlagTurnSloped | FlagDown,
	RightQuarterTurn5TilesDown25:            FlagTurnRight | FlagTurnSloped | FlagDown,
	SBendLeft:                               0,
	SBendRight:                              0,
	LeftVerticalLoop:                        FlagNormalToInversion | FlagInversionToNormal,
	RightVerticalLoop:                       FlagNormalToInversion | FlagInversionToNormal,
	LeftQuarterTurn3Tiles:                   FlagTurnLeft,
	RightQuarterTurn3Tiles:                  FlagTurnRight,
	LeftBankedQuarterTurn3Tiles:             FlagTurnLeft | FlagTurnBanked | FlagBanked,
	RightBankedQuarterTurn3Tiles:            FlagTurnRight | FlagTurnBanked | FlagBanked,
	LeftQuarterTurn3TilesUp25:               FlagTurnLeft | FlagTurnSloped | FlagUp | FlagCurveAllowsLift,
	RightQuarterTurn3TilesUp25:              FlagTurnRight | FlagTurnSloped | FlagUp | FlagCurveAllowsLift,
	LeftQuarterTurn3TilesDown25:             FlagTurnLeft | FlagTurnSloped | FlagDown,
	RightQuarterTurn3TilesDown25:            FlagTurnRight | FlagTurnSloped | FlagDown,
	LeftQuarterTurn1Tile:                    FlagTurnLeft,
	RightQuarterTurn1Tile:                   FlagTurnRight,
	LeftTwistDownToUp:                       FlagInversionToNormal,
	RightTwistDownToUp:                      FlagInversionToNormal,
	LeftTwistUpToDown:                       FlagNormalToInversion,
	RightTwistUpToDown:                      FlagNormalToInversion,
	HalfLoopUp:                              FlagUp | FlagNormalToInversion,
	HalfLoopDown:                            FlagDown | FlagInversionToNormal,
	LeftCorkscrewUp:                         FlagTurnLeft | FlagTurnSloped | FlagUp | FlagNormalToInversion,
	RightCorkscrewUp:                        FlagTurnRight | FlagTurnSloped | FlagUp | FlagNormalToInversion,
	LeftCorkscrewDown:                       FlagTurnLeft | FlagTurnSloped | FlagDown | FlagInversionToNormal,
	RightCorkscrewDown:                      FlagTurnRight | FlagTurnSloped | FlagDown | FlagInversionToNormal,
	FlatToUp60:                              FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	Up60ToFlat:                              FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	FlatToDown60:                            FlagDown | FlagAllowLiftHill,
	Down60ToFlat:                            FlagDown | FlagAllowLiftHill,
	TowerBase:                               FlagUp | FlagOnlyAboveGround,
	TowerSection:                            FlagUp | FlagOnlyAboveGround,
	FlatCovered:                             FlagAllowLiftHill,
	Up25Covered:                             FlagUp | FlagAllowLiftHill,
	Up60Covered:                             FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	FlatToUp25Covered:                       FlagUp | FlagAllowLiftHill,
	Up25ToUp60Covered:                       FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	Up60ToUp25Covered:                       FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	Up25ToFlatCovered:                       FlagUp | FlagStartsAtHalfHeight | FlagAllowLiftHill,
	Down25Covered:                           FlagDown,
	Down60Covered:                           FlagDown,
	FlatToDown25Covered:                     FlagDown | FlagStartsAtHalfHeight,
	Down25ToDown60Covered:                   FlagDown,
	Down60ToDown25Covered:                   FlagDown,
	Down25ToFlatCovered:                     FlagDown,
	LeftQuarterTurn5TilesCovered:            FlagTurnLeft,
	RightQuarterTurn5TilesCovered:           FlagTurnRight,
	SBendLeftCovered:                        0,
	SBendRightCovered:                       0,
	LeftQuarterTurn3TilesCovered:            FlagTurnLeft,
	RightQuarterTurn3TilesCovered:           FlagTurnRight,
	LeftHalfBankedHelixUpSmall:              FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagHelix | FlagBanked,
	RightHalfBankedHelixUpSmall:             FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagHelix | FlagBanked,
	LeftHalfBankedHelixDownSmall:            FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagHelix | FlagBanked,
	RightHalfBankedHelixDownSmall:           FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagHelix | FlagBanked,
	LeftHalfBankedHelixUpLarge:              FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagHelix | FlagBanked,
	RightHalfBankedHelixUpLarge:             FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagHelix | FlagBanked,
	LeftHalfBankedHelixDownLarge:            FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagHelix | FlagBanked,
	RightHalfBankedHelixDownLarge:           FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagHelix | FlagBanked,
	LeftQuarterTurn1TileUp60:                FlagTurnLeft | FlagTurnSloped | FlagUp | FlagIsSteepUp,
	RightQuarterTurn1TileUp60:               FlagTurnRight | FlagTurnSloped | FlagUp | FlagIsSteepUp,
	LeftQuarterTurn1TileDown60:              FlagTurnLeft | FlagTurnSloped | FlagDown,
	RightQuarterTurn1TileDown60:             FlagTurnRight | FlagTurnSloped | FlagDown,
	Brakes:                                  0,
	Booster:                                 0,
	Maze:                                    0,
	LeftQuarterBankedHelixLargeUp:           FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagHelix | FlagBanked,
	RightQuarterBankedHelixLargeUp:          FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagHelix | FlagBanked,
	LeftQuarterBankedHelixLargeDown:         FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagHelix | FlagBanked,
	RightQuarterBankedHelixLargeDown:        FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagHelix | FlagBanked,
	LeftQuarterHelixLargeUp:                 FlagTurnLeft | FlagTurnSloped | FlagUp | FlagHelix,
	RightQuarterHelixLargeUp:                FlagTurnRight | FlagTurnSloped | FlagUp | FlagHelix,
	LeftQuarterHelixLargeDown:               FlagTurnLeft | FlagTurnSloped | FlagDown | FlagHelix,
	RightQuarterHelixLargeDown:              FlagTurnRight | FlagTurnSloped | FlagDown | FlagHelix,
	Up25LeftBanked:                          FlagUp | FlagBanked,
	Up25RightBanked:                         FlagUp | FlagBanked,
	Waterfall:                               FlagCanBePartlyUnderwater,
	Rapids:                                  FlagCanBePartlyUnderwater,
	OnRidePhoto:                             0,
	Down25LeftBanked:                        FlagDown | FlagBanked,
	Down25RightBanked:                       FlagDown | FlagBanked,
	Watersplash:                             FlagCanBePartlyUnderwater,
	FlatToUp60LongBase:                      FlagUp | FlagIsSteepUp,
	Up60ToFlatLongBase:                      FlagUp | FlagIsSteepUp,
	Whirlpool:                               FlagCanBePartlyUnderwater,
	Down60ToFlatLongBase:                    FlagDown,
	FlatToDown60LongBase:                    FlagDown,
	CableLiftHill:                           FlagUp | FlagIsSteepUp,
	ReverseFreefallSlope:                    FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	ReverseFreefallVertical:                 FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	Up90:                                    FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	Down90:                                  FlagDown | FlagOnlyAboveGround,
	Up60ToUp90:                              FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	Down90ToDown60:                          FlagDown | FlagOnlyAboveGround,
	Up90ToUp60:                              FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	Down60ToDown90:                          FlagDown | FlagOnlyAboveGround,
	BrakeForDrop:                            FlagDown,
	LeftEighthToDiag:                        FlagTurnLeft,
	RightEighthToDiag:                       FlagTurnRight,
	LeftEighthToOrthogonal:                  FlagTurnLeft,
	RightEighthToOrthogonal:                 FlagTurnRight,
	LeftEighthBankToDiag:                    FlagTurnLeft | FlagTurnBanked | FlagBanked,
	RightEighthBankToDiag:                   FlagTurnRight | FlagTurnBanked | FlagBanked,
	LeftEighthBankToOrthogonal:              FlagTurnLeft | FlagTurnBanked | FlagBanked,
	RightEighthBankToOrthogonal:             FlagTurnRight | FlagTurnBanked | FlagBanked,
	DiagFlat:                                FlagAllowLiftHill,
	DiagUp25:                                FlagUp | FlagAllowLiftHill,
	DiagUp60:                                FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	DiagFlatToUp25:                          FlagUp | FlagAllowLiftHill,
	DiagUp25ToUp60:                          FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	DiagUp60ToUp25:                          FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	DiagUp25ToFlat:                          FlagUp | FlagStartsAtHalfHeight | FlagAllowLiftHill,
	DiagDown25:                              FlagDown | FlagAllowLiftHill,
	DiagDown60:                              FlagDown | FlagAllowLiftHill,
	DiagFlatToDown25:                        FlagDown | FlagStartsAtHalfHeight | FlagAllowLiftHill,
	DiagDown25ToDown60:                      FlagDown | FlagAllowLiftHill,
	DiagDown60ToDown25:                      FlagDown | FlagAllowLiftHill,
	DiagDown25ToFlat:                        FlagDown | FlagAllowLiftHill,
	DiagFlatToUp60:                          FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	DiagUp60ToFlat:                          FlagUp | FlagIsSteepUp | FlagAllowLiftHill,
	DiagFlatToDown60:                        FlagDown | FlagAllowLiftHill,
	DiagDown60ToFlat:                        FlagDown | FlagAllowLiftHill,
	DiagFlatToLeftBank:                      FlagBanked,
	DiagFlatToRightBank:                     FlagBanked,
	DiagLeftBankToFlat:                      FlagBanked,
	DiagRightBankToFlat:                     FlagBanked,
	DiagLeftBankToUp25:                      FlagUp | FlagBanked,
	DiagRightBankToUp25:                     FlagUp | FlagBanked,
	DiagUp25ToLeftBank:                      FlagUp | FlagBanked,
	DiagUp25ToRightBank:                     FlagUp | FlagBanked,
	DiagLeftBankToDown25:                    FlagDown | FlagBanked,
	DiagRightBankToDown25:                   FlagDown | FlagBanked,
	DiagDown25ToLeftBank:                    FlagDown | FlagBanked,
	DiagDown25ToRightBank:                   FlagDown | FlagBanked,
	DiagLeftBank:                            FlagBanked,
	DiagRightBank:                           FlagBanked,
	LogFlumeReverser:                        FlagCanBePartlyUnderwater,
	SpinningTunnel:                          0,
	LeftBarrelRollUpToDown:                  FlagNormalToInversion,
	RightBarrelRollUpToDown:                 FlagNormalToInversion,
	LeftBarrelRollDownToUp:                  FlagInversionToNormal,
	RightBarrelRollDownToUp:                 FlagInversionToNormal,
	LeftBankToLeftQuarterTurn3TilesUp25:     FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagBanked,
	RightBankToRightQuarterTurn3TilesUp25:   FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagBanked,
	LeftQuarterTurn3TilesDown25ToLeftBank:   FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagBanked,
	RightQuarterTurn3TilesDown25ToRightBank: FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagBanked,
	PoweredLift:                             FlagUp,
	LeftLargeHalfLoopUp:                     FlagUp | FlagNormalToInversion,
	RightLargeHalfLoopUp:                    FlagUp | FlagNormalToInversion,
	RightLargeHalfLoopDown:                  FlagDown | FlagInversionToNormal,
	LeftLargeHalfLoopDown:                   FlagDown | FlagInversionToNormal,
	LeftFlyerTwistUp:                        FlagNormalToInversion,
	RightFlyerTwistUp:                       FlagNormalToInversion,
	LeftFlyerTwistDown:                      FlagInversionToNormal,
	RightFlyerTwistDown:                     FlagInversionToNormal,
	FlyerHalfLoopUninvertedUp:               FlagUp | FlagNormalToInversion,
	FlyerHalfLoopInvertedDown:               FlagDown | FlagInversionToNormal,
	LeftFlyerCorkscrewUp:                    FlagTurnLeft | FlagTurnSloped | FlagUp | FlagNormalToInversion,
	RightFlyerCorkscrewUp:                   FlagTurnRight | FlagTurnSloped | FlagUp | FlagNormalToInversion,
	LeftFlyerCorkscrewDown:                  FlagTurnLeft | FlagTurnSloped | FlagDown | FlagInversionToNormal,
	RightFlyerCorkscrewDown:                 FlagTurnRight | FlagTurnSloped | FlagDown | FlagInversionToNormal,
	HeartLineTransferUp:                     FlagUp,
	HeartLineTransferDown:                   FlagDown,
	LeftHeartLineRoll:                       FlagNormalToInversion | FlagInversionToNormal,
	RightHeartLineRoll:                      FlagNormalToInversion | FlagInversionToNormal,
	MinigolfHoleA:                           FlagIsGolfHole,
	MinigolfHoleB:                           FlagIsGolfHole,
	MinigolfHoleC:                           FlagIsGolfHole,
	MinigolfHoleD:                           FlagIsGolfHole,
	MinigolfHoleE:                           FlagIsGolfHole,
	MultiDimInvertedFlatToDown90QuarterLoop: FlagDown | FlagOnlyAboveGround | FlagInversionToNormal,
	Up90ToInvertedFlatQuarterLoop:           FlagUp | FlagNormalToInversion | FlagOnlyAboveGround | FlagIsSteepUp,
	InvertedFlatToDown90QuarterLoop:         FlagDown | FlagOnlyAboveGround | FlagInversionToNormal,
	LeftCurvedLiftHill:                      FlagTurnLeft | FlagTurnSloped | FlagUp | FlagCurveAllowsLift,
	RightCurvedLiftHill:                     FlagTurnRight | FlagTurnSloped | FlagUp | FlagCurveAllowsLift,
	LeftReverser:                            0,
	RightReverser:                           0,
	AirThrustTopCap:                         FlagOnlyAboveGround,
	AirThrustVerticalDown:                   FlagDown | FlagOnlyAboveGround,
	AirThrustVerticalDownToLevel:            FlagDown | FlagOnlyAboveGround,
	BlockBrakes:                             0,
	LeftBankedQuarterTurn3TileUp25:          FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagBanked,
	RightBankedQuarterTurn3TileUp25:         FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagBanked,
	LeftBankedQuarterTurn3TileDown25:        FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagBanked,
	RightBankedQuarterTurn3TileDown25:       FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagBanked,
	LeftBankedQuarterTurn5TileUp25:          FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagBanked,
	RightBankedQuarterTurn5TileUp25:         FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagUp | FlagBanked,
	LeftBankedQuarterTurn5TileDown25:        FlagTurnLeft | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagBanked,
	RightBankedQuarterTurn5TileDown25:       FlagTurnRight | FlagTurnBanked | FlagTurnSloped | FlagDown | FlagBanked,
	Up25ToLeftBankedUp25:                    FlagUp | FlagBanked,
	Up25ToRightBankedUp25:                   FlagUp | FlagBanked,
	LeftBankedUp25ToUp25:                    FlagUp | FlagBanked,
	RightBankedUp25ToUp25:                   FlagUp | FlagBanked,
	Down25ToLeftBankedDown25:                FlagDown | FlagBanked,
	Down25ToRightBankedDown25:               FlagDown | FlagBanked,
	LeftBankedDown25ToDown25:                FlagDown | FlagBanked,
	RightBankedDown25ToDown25:               FlagDown | FlagBanked,
	LeftBankedFlatToLeftBankedUp25:          FlagUp | FlagBanked,
	RightBankedFlatToRightBankedUp25:        FlagUp | FlagBanked,
	LeftBankedUp25ToLeftBankedFlat:          FlagUp | FlagBanked,
	RightBankedUp25ToRightBankedFlat:        FlagUp | FlagBanked,
	LeftBankedFlatToLeftBankedDown25:        FlagDown | FlagBanked,
	RightBankedFlatToRightBankedDown25:      FlagDown | FlagBanked,
	LeftBankedDown25ToLeftBankedFlat:        FlagDown | FlagBanked,
	RightBankedDown25ToRightBankedFlat:      FlagDown | FlagBanked,
	FlatToLeftBankedUp25:                    FlagUp | FlagBanked,
	FlatToRightBankedUp25:                   FlagUp | FlagBanked,
	LeftBankedUp25ToFlat:                    FlagUp | FlagBanked,
	RightBankedUp25ToFlat:                   FlagUp | FlagBanked,
	FlatToLeftBankedDown25:                  FlagDown | FlagBanked,
	FlatToRightBankedDown25:                 FlagDown | FlagBanked,
	LeftBankedDown25ToFlat:                  FlagDown | FlagBanked,
	RightBankedDown25ToFlat:                 FlagDown | FlagBanked,
	LeftQuarterTurn1TileUp90:                FlagTurnLeft | FlagTurnSloped | FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	RightQuarterTurn1TileUp90:               FlagTurnRight | FlagTurnSloped | FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	LeftQuarterTurn1TileDown90:              FlagTurnLeft | FlagTurnSloped | FlagDown | FlagOnlyAboveGround,
	RightQuarterTurn1TileDown90:             FlagTurnRight | FlagTurnSloped | FlagDown | FlagOnlyAboveGround,
	MultiDimUp90ToInvertedFlatQuarterLoop:   FlagUp | FlagNormalToInversion | FlagOnlyAboveGround | FlagIsSteepUp,
	MultiDimFlatToDown90QuarterLoop:         FlagDown | FlagOnlyAboveGround,
	MultiDimInvertedUp90ToFlatQuarterLoop:   FlagUp | FlagOnlyAboveGround | FlagIsSteepUp,
	RotationControlToggle:                   0,
	FlatTrack1x4A:                           0,
	FlatTrack2x2:                            0,
	FlatTrack4x4:                            0,
	FlatTrack2x4:                            0,
	FlatTrack1x5:                            0,
	FlatTrack1x1A:                           0,
	FlatTrack1x4B:                           0,
	FlatTrack1x1B:                           0,
	FlatTrack1x4C:                           0,
	FlatTrack3x3:                            0,
	LeftLargeCorkscrewUp:                    FlagTurnLeft | FlagTurnSloped | FlagUp | FlagNormalToInversion,
	RightLargeCorkscrewUp:                   FlagTurnRight | FlagTurnSloped | FlagUp | FlagNormalToInversion,
	LeftLargeCorkscrewDown:                  FlagTurnLeft | FlagTurnSloped | FlagDown | FlagInversionToNormal,
	RightLargeCorkscrewDown:                 FlagTurnRight | FlagTurnSloped | FlagDown | FlagInversionToNormal,
	LeftMediumHalfLoopUp:                    FlagUp | FlagNormalToInversion,
	RightMediumHalfLoopUp:                   FlagUp | FlagNormalToInversion,
	LeftMediumHalfLoopDown:                  FlagDown | FlagInversionToNormal,
	RightMediumHalfLoopDown:                 FlagDown | FlagInversionToNormal,
	LeftZeroGRollUp:                         FlagUp | FlagNormalToInversion,
	RightZeroGRollUp:                        FlagUp | FlagNormalToInversion,
	LeftZeroGRollDown:                       FlagDown | FlagInversionToNormal,
	RightZeroGRollDown:                      FlagDown | FlagInversionToNormal,
	LeftLargeZeroGRollUp:                    FlagUp | FlagNormalToInversion | FlagIsSteepUp,
	RightLargeZeroGRollUp:                   FlagUp | FlagNormalToInversion | FlagIsSteepUp,
	LeftLargeZeroGRollDown:                  FlagDown | FlagInversionToNormal,
	RightLargeZeroGRollDown:                 FlagDown | FlagInversionToNormal,
	LeftFlyerLargeHalfLoopUninvertedUp:      FlagUp | FlagNormalToInversion,
	RightFlyerLargeHalfLoopUninvertedUp:     FlagUp | FlagNormalToInversion,
	LeftFlyerLargeHalfLoopInvertedDown:      FlagDown | FlagInversionToNormal,
	RightFlyerLargeHalfLoopInvertedDown:     FlagDown | FlagInversionToNormal,
	LeftFlyerLargeHalfLoopInvertedUp:        FlagUp | FlagInversionToNormal,
	RightFlyerLargeHalfLoopInvertedUp:       FlagUp | FlagInversionToNormal,
	LeftFlyerLargeHalfLoopUninvertedDown:    FlagDown | FlagNormalToInversion,
	RightFlyerLargeHalfLoopUninvertedDown:   FlagDown | FlagNormalToInversion,
	FlyerHalfLoopInvertedUp:                 FlagUp | FlagInversionToNormal,
	FlyerHalfLoopUninvertedDown:             FlagDown | FlagNormalToInversion,
	DiagBrakes:                              0,
	DiagBlockBrakes:                         0,
	Down25Brakes:                            FlagDown,
	DiagBooster:                             0,
}
