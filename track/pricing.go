package track

// priceTable holds construction cost weights in 16.16 fixed point
// (65536 is the cost of one flat piece).
var priceTable = [ElemTypeCount]int32{
	Flat:                                    65536,
	EndStation:                              98304,
	BeginStation:                            98304,
	MiddleStation:                           98304,
	Up25:                                    79872,
	Up60:                                    114688,
	FlatToUp25:                              73728,
	Up25ToUp60:                              96256,
	Up60ToUp25:                              96256,
	Up25ToFlat:                              73728,
	Down25:                                  79872,
	Down60:                                  114688,
	FlatToDown25:                            73728,
	Down25ToDown60:                          96256,
	Down60ToDown25:                          96256,
	Down25ToFlat:                            73728,
	LeftQuarterTurn5Tiles:                   257359,
	RightQuarterTurn5Tiles:                  257359,
	FlatToLeftBank:                          69632,
	FlatToRightBank:                         69632,
	LeftBankToFlat:                          69632,
	RightBankToFlat:                         69632,
	BankedLeftQuarterTurn5Tiles:             273443,
	BankedRightQuarterTurn5Tiles:            273443,
	LeftBankToUp25:                          78336,
	RightBankToUp25:                         78336,
	Up25ToLeftBank:                          78336,
	Up25ToRightBank:                         78336,
	LeftBankToDown25:                        78336,
	RightBankToDown25:                       78336,
	Down25ToLeftBank:                        78336,
	Down25ToRightBank:                       78336,
	LeftBank:                                69632,
	RightBank:                               69632,
	LeftQuarterTurn5TilesUp25:               313656,
	RightQuarterTurn5TilesUp25:              313656,
	LeftQuarterTurn5TilesDown25:             313656,
	RightQuarterTurn5TilesDown25:            313656,
	SBendLeft:                               229376,
	SBendRight:                              229376,
	LeftVerticalLoop:                        491520,
	RightVerticalLoop:                       491520,
	LeftQuarterTurn3Tiles:                   154415,
	RightQuarterTurn3Tiles:                  154415,
	LeftBankedQuarterTurn3Tiles:             164065,
	RightBankedQuarterTurn3Tiles:            164065,
	LeftQuarterTurn3TilesUp25:               270226,
	RightQuarterTurn3TilesUp25:              270226,
	LeftQuarterTurn3TilesDown25:             270226,
	RightQuarterTurn3TilesDown25:            270226,
	LeftQuarterTurn1Tile:                    51471,
	RightQuarterTurn1Tile:                   51471,
	LeftTwistDownToUp:                       212992,
	RightTwistDownToUp:                      212992,
	LeftTwistUpToDown:                       212992,
	RightTwistUpToDown:                      212992,
	HalfLoopUp:                              294912,
	HalfLoopDown:                            294912,
	LeftCorkscrewUp:                         229376,
	RightCorkscrewUp:                        229376,
	LeftCorkscrewDown:                       229376,
	RightCorkscrewDown:                      229376,
	FlatToUp60:                              98304,
	Up60ToFlat:                              98304,
	FlatToDown60:                            98304,
	Down60ToFlat:                            98304,
	TowerBase:                               524288,
	TowerSection:                            65536,
	FlatCovered:                             69632,
	Up25Covered:                             83968,
	Up60Covered:                             118784,
	FlatToUp25Covered:                       77824,
	Up25ToUp60Covered:                       100352,
	Up60ToUp25Covered:                       100352,
	Up25ToFlatCovered:                       77824,
	Down25Covered:                           83968,
	Down60Covered:                           118784,
	FlatToDown25Covered:                     77824,
	Down25ToDown60Covered:                   100352,
	Down60ToDown25Covered:                   100352,
	Down25ToFlatCovered:                     77824,
	LeftQuarterTurn5TilesCovered:            261455,
	RightQuarterTurn5TilesCovered:           261455,
	SBendLeftCovered:                        233472,
	SBendRightCovered:                       233472,
	LeftQuarterTurn3TilesCovered:            158511,
	RightQuarterTurn3TilesCovered:           158511,
	LeftHalfBankedHelixUpSmall:              321536,
	RightHalfBankedHelixUpSmall:             321536,
	LeftHalfBankedHelixDownSmall:            321536,
	RightHalfBankedHelixDownSmall:           321536,
	LeftHalfBankedHelixUpLarge:              546886,
	RightHalfBankedHelixUpLarge:             546886,
	LeftHalfBankedHelixDownLarge:            546886,
	RightHalfBankedHelixDownLarge:           546886,
	LeftQuarterTurn1TileUp60:                104857,
	RightQuarterTurn1TileUp60:               104857,
	LeftQuarterTurn1TileDown60:              104857,
	RightQuarterTurn1TileDown60:             104857,
	Brakes:                                  90112,
	Booster:                                 77824,
	Maze:                                    65536,
	LeftQuarterBankedHelixLargeUp:           273443,
	RightQuarterBankedHelixLargeUp:          273443,
	LeftQuarterBankedHelixLargeDown:         273443,
	RightQuarterBankedHelixLargeDown:        273443,
	LeftQuarterHelixLargeUp:                 257359,
	RightQuarterHelixLargeUp:                257359,
	LeftQuarterHelixLargeDown:               257359,
	RightQuarterHelixLargeDown:              257359,
	Up25LeftBanked:                          83968,
	Up25RightBanked:                         83968,
	Waterfall:                               118784,
	Rapids:                                  116736,
	OnRidePhoto:                             83968,
	Down25LeftBanked:                        83968,
	Down25RightBanked:                       83968,
	Watersplash:                             253952,
	FlatToUp60LongBase:                      229376,
	Up60ToFlatLongBase:                      229376,
	Whirlpool:                               69632,
	Down60ToFlatLongBase:                    229376,
	FlatToDown60LongBase:                    229376,
	CableLiftHill:                           143360,
	ReverseFreefallSlope:                    376832,
	ReverseFreefallVertical:                 65536,
	Up90:                                    69632,
	Down90:                                  69632,
	Up60ToUp90:                              81920,
	Down90ToDown60:                          81920,
	Up90ToUp60:                              81920,
	Down60ToDown90:                          81920,
	BrakeForDrop:                            147456,
	LeftEighthToDiag:                        180151,
	RightEighthToDiag:                       180151,
	LeftEighthToOrthogonal:                  180151,
	RightEighthToOrthogonal:                 180151,
	LeftEighthBankToDiag:                    190960,
	RightEighthBankToDiag:                   190960,
	LeftEighthBankToOrthogonal:              190960,
	RightEighthBankToOrthogonal:             190960,
	DiagFlat:                                92681,
	DiagUp25:                                111820,
	DiagUp60:                                147456,
	DiagFlatToUp25:                          102400,
	DiagUp25ToUp60:                          129024,
	DiagUp60ToUp25:                          129024,
	DiagUp25ToFlat:                          102400,
	DiagDown25:                              111820,
	DiagDown60:                              147456,
	DiagFlatToDown25:                        102400,
	DiagDown25ToDown60:                      129024,
	DiagDown60ToDown25:                      129024,
	DiagDown25ToFlat:                        102400,
	DiagFlatToUp60:                          138240,
	DiagUp60ToFlat:                          138240,
	DiagFlatToDown60:                        138240,
	DiagDown60ToFlat:                        138240,
	DiagFlatToLeftBank:                      96256,
	DiagFlatToRightBank:                     96256,
	DiagLeftBankToFlat:                      96256,
	DiagRightBankToFlat:                     96256,
	DiagLeftBankToUp25:                      106496,
	DiagRightBankToUp25:                     106496,
	DiagUp25ToLeftBank:                      106496,
	DiagUp25ToRightBank:                     106496,
	DiagLeftBankToDown25:                    106496,
	DiagRightBankToDown25:                   106496,
	DiagDown25ToLeftBank:                    106496,
	DiagDown25ToRightBank:                   106496,
	DiagLeftBank:                            96256,
	DiagRightBank:                           96256,
	LogFlumeReverser:                        196608,
	SpinningTunnel:                          83968,
	LeftBarrelRollUpToDown:                  294912,
	RightBarrelRollUpToDown:                 294912,
	LeftBarrelRollDownToUp:                  294912,
	RightBarrelRollDownToUp:                 294912,
	LeftBankToLeftQuarterTurn3TilesUp25:     280576,
	RightBankToRightQuarterTurn3TilesUp25:   280576,
	LeftQuarterTurn3TilesDown25ToLeftBank:   280576,
	RightQuarterTurn3TilesDown25ToRightBank: 280576,
	PoweredLift:                             81920,
	LeftLargeHalfLoopUp:                     884736,
	RightLargeHalfLoopUp:                    884736,
	RightLargeHalfLoopDown:                  884736,
	LeftLargeHalfLoopDown:                   884736,
	LeftFlyerTwistUp:                        212992,
	RightFlyerTwistUp:                       212992,
	LeftFlyerTwistDown:                      212992,
	RightFlyerTwistDown:                     212992,
	FlyerHalfLoopUninvertedUp:               294912,
	FlyerHalfLoopInvertedDown:               294912,
	LeftFlyerCorkscrewUp:                    229376,
	RightFlyerCorkscrewUp:                   229376,
	LeftFlyerCorkscrewDown:                  229376,
	RightFlyerCorkscrewDown:                 229376,
	HeartLineTransferUp:                     294912,
	HeartLineTransferDown:                   294912,
	LeftHeartLineRoll:                       229376,
	RightHeartLineRoll:                      229376,
	MinigolfHoleA:                           65536,
	MinigolfHoleB:                           65536,
	MinigolfHoleC:                           65536,
	MinigolfHoleD:                           65536,
	MinigolfHoleE:                           65536,
	MultiDimInvertedFlatToDown90QuarterLoop: 229376,
	Up90ToInvertedFlatQuarterLoop:           229376,
	InvertedFlatToDown90QuarterLoop:         229376,
	LeftCurvedLiftHill:                      200704,
	RightCurvedLiftHill:                     200704,
	LeftReverser:                            393216,
	RightReverser:                           393216,
	AirThrustTopCap:                         262144,
	AirThrustVerticalDown:                   65536,
	AirThrustVerticalDownToLevel:            376832,
	BlockBrakes:                             90112,
	LeftBankedQuarterTurn3TileUp25:          284160,
	RightBankedQuarterTurn3TileUp25:         284160,
	LeftBankedQuarterTurn3TileDown25:        284160,
	RightBankedQuarterTurn3TileDown25:       284160,
	LeftBankedQuarterTurn5TileUp25:          329728,
	RightBankedQuarterTurn5TileUp25:         329728,
	LeftBankedQuarterTurn5TileDown25:        329728,
	RightBankedQuarterTurn5TileDown25:       329728,
	Up25ToLeftBankedUp25:                    83968,
	Up25ToRightBankedUp25:                   83968,
	LeftBankedUp25ToUp25:                    83968,
	RightBankedUp25ToUp25:                   83968,
	Down25ToLeftBankedDown25:                83968,
	Down25ToRightBankedDown25:               83968,
	LeftBankedDown25ToDown25:                83968,
	RightBankedDown25ToDown25:               83968,
	LeftBankedFlatToLeftBankedUp25:          77824,
	RightBankedFlatToRightBankedUp25:        77824,
	LeftBankedUp25ToLeftBankedFlat:          77824,
	RightBankedUp25ToRightBankedFlat:        77824,
	LeftBankedFlatToLeftBankedDown25:        77824,
	RightBankedFlatToRightBankedDown25:      77824,
	LeftBankedDown25ToLeftBankedFlat:        77824,
	RightBankedDown25ToRightBankedFlat:      77824,
	FlatToLeftBankedUp25:                    77824,
	FlatToRightBankedUp25:                   77824,
	LeftBankedUp25ToFlat:                    77824,
	RightBankedUp25ToFlat:                   77824,
	FlatToLeftBankedDown25:                  77824,
	FlatToRightBankedDown25:                 77824,
	LeftBankedDown25ToFlat:                  77824,
	RightBankedDown25ToFlat:                 77824,
	LeftQuarterTurn1TileUp90:                114688,
	RightQuarterTurn1TileUp90:               114688,
	LeftQuarterTurn1TileDown90:              114688,
	RightQuarterTurn1TileDown90:             114688,
	MultiDimUp90ToInvertedFlatQuarterLoop:   229376,
	MultiDimFlatToDown90QuarterLoop:         229376,
	MultiDimInvertedUp90ToFlatQuarterLoop:   229376,
	RotationControlToggle:                   65536,
	FlatTrack1x4A:                           65536,
	FlatTrack2x2:                            65536,
	FlatTrack4x4:                            262144,
	FlatTrack2x4:                            131072,
	FlatTrack1x5:                            81920,
	FlatTrack1x1A:                           65536,
	FlatTrack1x4B:                           65536,
	FlatTrack1x1B:                           65536,
	FlatTrack1x4C:                           65536,
	FlatTrack3x3:                            147456,
	LeftLargeCorkscrewUp:                    458752,
	RightLargeCorkscrewUp:                   458752,
	LeftLargeCorkscrewDown:                  458752,
	RightLargeCorkscrewDown:                 458752,
	LeftMediumHalfLoopUp:                    589824,
	RightMediumHalfLoopUp:                   589824,
	LeftMediumHalfLoopDown:                  589824,
	RightMediumHalfLoopDown:                 589824,
	LeftZeroGRollUp:                         294912,
	RightZeroGRollUp:                        294912,
	LeftZeroGRollDown:                       294912,
	RightZeroGRollDown:                      294912,
	LeftLargeZeroGRollUp:                    458752,
	RightLargeZeroGRollUp:                   458752,
	LeftLargeZeroGRollDown:                  458752,
	RightLargeZeroGRollDown:                 458752,
	LeftFlyerLargeHalfLoopUninvertedUp:      884736,
	RightFlyerLargeHalfLoopUninvertedUp:     884736,
	LeftFlyerLargeHalfLoopInvertedDown:      884736,
	RightFlyerLargeHalfLoopInvertedDown:     884736,
	LeftFlyerLargeHalfLoopInvertedUp:        884736,
	RightFlyerLargeHalfLoopInvertedUp:       884736,
	LeftFlyerLargeHalfLoopUninvertedDown:    884736,
	RightFlyerLargeHalfLoopUninvertedDown:   884736,
	FlyerHalfLoopInvertedUp:                 294912,
	FlyerHalfLoopUninvertedDown:             294912,
	DiagBrakes:                              94208,
	DiagBlockBrakes:                         94208,
	Down25Brakes:                            90112,
	DiagBooster:                             92681,
}
