package track

// mirrorTable maps each element to the element produced by mirroring it
// left/right. Elements without handedness map to themselves.
var mirrorTable = [ElemTypeCount]ElemType{
	Flat:                                    Flat,
	EndStation:                              EndStation,
	BeginStation:                            BeginStation,
	MiddleStation:                           MiddleStation,
	Up25:                                    Up25,
	Up60:                                    Up60,
	FlatToUp25:                              FlatToUp25,
	Up25ToUp60:                              Up25ToUp60,
	Up60ToUp25:                              Up60ToUp25,
	Up25ToFlat:                              Up25ToFlat,
	Down25:                                  Down25,
	Down60:                                  Down60,
	FlatToDown25:                            FlatToDown25,
	Down25ToDown60:                          Down25ToDown60,
	Down60ToDown25:                          Down60ToDown25,
	Down25ToFlat:                            Down25ToFlat,
	LeftQuarterTurn5Tiles:                   RightQuarterTurn5Tiles,
	RightQuarterTurn5Tiles:                  LeftQuarterTurn5Tiles,
	FlatToLeftBank:                          FlatToRightBank,
	FlatToRightBank:                         FlatToLeftBank,
	LeftBankToFlat:                          RightBankToFlat,
	RightBankToFlat:                         LeftBankToFlat,
	BankedLeftQuarterTurn5Tiles:             BankedRightQuarterTurn5Tiles,
	BankedRightQuarterTurn5Tiles:            BankedLeftQuarterTurn5Tiles,
	LeftBankToUp25:                          RightBankToUp25,
	RightBankToUp25:                         LeftBankToUp25,
	Up25ToLeftBank:                          Up25ToRightBank,
	Up25ToRightBank:                         Up25ToLeftBank,
	LeftBankToDown25:                        RightBankToDown25,
	RightBankToDown25:                       LeftBankToDown25,
	Down25ToLeftBank:                        Down25ToRightBank,
	Down25ToRightBank:                       Down25ToLeftBank,
	LeftBank:                                RightBank,
	RightBank:                               LeftBank,
	LeftQuarterTurn5TilesUp25:               RightQuarterTurn5TilesUp25,
	RightQuarterTurn5TilesUp25:              LeftQuarterTurn5TilesUp25,
	LeftQuarterTurn5TilesDown25:             RightQuarterTurn5TilesDown25,
	RightQuarterTurn5TilesDown25:            LeftQuarterTurn5TilesDown25,
	SBendLeft:                               SBendRight,
	SBendRight:                              SBendLeft,
	LeftVerticalLoop:                        RightVerticalLoop,
	RightVerticalLoop:                       LeftVerticalLoop,
	LeftQuarterTurn3Tiles:                   RightQuarterTurn3Tiles,
	RightQuarterTurn3Tiles:                  LeftQuarterTurn3Tiles,
	LeftBankedQuarterTurn3Tiles:             RightBankedQuarterTurn3Tiles,
	RightBankedQuarterTurn3Tiles:            LeftBankedQuarterTurn3Tiles,
	LeftQuarterTurn3TilesUp25:               RightQuarterTurn3TilesUp25,
	RightQuarterTurn3TilesUp25:              LeftQuarterTurn3TilesUp25,
	LeftQuarterTurn3TilesDown25:             RightQuarterTurn3TilesDown25,
	RightQuarterTurn3TilesDown25:            LeftQuarterTurn3TilesDown25,
	LeftQuarterTurn1Tile:                    RightQuarterTurn1Tile,
	RightQuarterTurn1Tile:                   LeftQuarterTurn1Tile,
	LeftTwistDownToUp:                       RightTwistDownToUp,
	RightTwistDownToUp:                      LeftTwistDownToUp,
	LeftTwistUpToDown:                       RightTwistUpToDown,
	RightTwistUpToDown:                      LeftTwistUpToDown,
	HalfLoopUp:                              HalfLoopUp,
	HalfLoopDown:                            HalfLoopDown,
	LeftCorkscrewUp:                         RightCorkscrewUp,
	RightCorkscrewUp:                        LeftCorkscrewUp,
	LeftCorkscrewDown:                       RightCorkscrewDown,
	RightCorkscrewDown:                      LeftCorkscrewDown,
	FlatToUp60:                              FlatToUp60,
	Up60ToFlat:                              Up60ToFlat,
	FlatToDown60:                            FlatToDown60,
	Down60ToFlat:                            Down60ToFlat,
	TowerBase:                               TowerBase,
	TowerSection:                            TowerSection,
	FlatCovered:                             FlatCovered,
	Up25Covered:                             Up25Covered,
	Up60Covered:                             Up60Covered,
	FlatToUp25Covered:                       FlatToUp25Covered,
	Up25ToUp60Covered:                       Up25ToUp60Covered,
	Up60ToUp25Covered:                       Up60ToUp25Covered,
	Up25ToFlatCovered:                       Up25ToFlatCovered,
	Down25Covered:                           Down25Covered,
	Down60Covered:                           Down60Covered,
	FlatToDown25Covered:                     FlatToDown25Covered,
	Down25ToDown60Covered:                   Down25ToDown60Covered,
	Down60ToDown25Covered:                   Down60ToDown25Covered,
	Down25ToFlatCovered:                     Down25ToFlatCovered,
	LeftQuarterTurn5TilesCovered:            RightQuarterTurn5TilesCovered,
	RightQuarterTurn5TilesCovered:           LeftQuarterTurn5TilesCovered,
	SBendLeftCovered:                        SBendRightCovered,
	SBendRightCovered:                       SBendLeftCovered,
	LeftQuarterTurn3TilesCovered:            RightQuarterTurn3TilesCovered,
	RightQuarterTurn3TilesCovered:           LeftQuarterTurn3TilesCovered,
	LeftHalfBankedHelixUpSmall:              RightHalfBankedHelixUpSmall,
	RightHalfBankedHelixUpSmall:             LeftHalfBankedHelixUpSmall,
	LeftHalfBankedHelixDownSmall:            RightHalfBankedHelixDownSmall,
	RightHalfBankedHelixDownSmall:           LeftHalfBankedHelixDownSmall,
	LeftHalfBankedHelixUpLarge:              RightHalfBankedHelixUpLarge,
	RightHalfBankedHelixUpLarge:             LeftHalfBankedHelixUpLarge,
	LeftHalfBankedHelixDownLarge:            RightHalfBankedHelixDownLarge,
	RightHalfBankedHelixDownLarge:           LeftHalfBankedHelixDownLarge,
	LeftQuarterTurn1TileUp60:                RightQuarterTurn1TileUp60,
	RightQuarterTurn1TileUp60:               LeftQuarterTurn1TileUp60,
	LeftQuarterTurn1TileDown60:              RightQuarterTurn1TileDown60,
	RightQuarterTurn1TileDown60:             LeftQuarterTurn1TileDown60,
	Brakes:                                  Brakes,
	Booster:                                 Booster,
	Maze:                                    Maze,
	LeftQuarterBankedHelixLargeUp:           RightQuarterBankedHelixLargeUp,
	RightQuarterBankedHelixLargeUp:          LeftQuarterBankedHelixLargeUp,
	LeftQuarterBankedHelixLargeDown:         RightQuarterBankedHelixLargeDown,
	RightQuarterBankedHelixLargeDown:        LeftQuarterBankedHelixLargeDown,
	LeftQuarterHelixLargeUp:                 RightQuarterHelixLargeUp,
	RightQuarterHelixLargeUp:                LeftQuarterHelixLargeUp,
	LeftQuarterHelixLargeDown:               RightQuarterHelixLargeDown,
	RightQuarterHelixLargeDown:              LeftQuarterHelixLargeDown,
	Up25LeftBanked:                          Up25RightBanked,
	Up25RightBanked:                         Up25LeftBanked,
	Waterfall:                               Waterfall,
	Rapids:                                  Rapids,
	OnRidePhoto:                             OnRidePhoto,
	Down25LeftBanked:                        Down25RightBanked,
	Down25RightBanked:                       Down25LeftBanked,
	Watersplash:                             Watersplash,
	FlatToUp60LongBase:                      FlatToUp60LongBase,
	Up60ToFlatLongBase:                      Up60ToFlatLongBase,
	Whirlpool:                               Whirlpool,
	Down60ToFlatLongBase:                    Down60ToFlatLongBase,
	FlatToDown60LongBase:                    FlatToDown60LongBase,
	CableLiftHill:                           CableLiftHill,
	ReverseFreefallSlope:                    ReverseFreefallSlope,
	ReverseFreefallVertical:                 ReverseFreefallVertical,
	Up90:                                    Up90,
	Down90:                                  Down90,
	Up60ToUp90:                              Up60ToUp90,
	Down90ToDown60:                          Down90ToDown60,
	Up90ToUp60:                              Up90ToUp60,
	Down60ToDown90:                          Down60ToDown90,
	BrakeForDrop:                            BrakeForDrop,
	LeftEighthToDiag:                        RightEighthToDiag,
	RightEighthToDiag:                       LeftEighthToDiag,
	LeftEighthToOrthogonal:                  RightEighthToOrthogonal,
	RightEighthToOrthogonal:                 LeftEighthToOrthogonal,
	LeftEighthBankToDiag:                    RightEighthBankToDiag,
	RightEighthBankToDiag:                   LeftEighthBankToDiag,
	LeftEighthBankToOrthogonal:              RightEighthBankToOrthogonal,
	RightEighthBankToOrthogonal:             LeftEighthBankToOrthogonal,
	DiagFlat:                                DiagFlat,
	DiagUp25:                                DiagUp25,
	DiagUp60:                                DiagUp60,
	DiagFlatToUp25:                          DiagFlatToUp25,
	DiagUp25ToUp60:                          DiagUp25ToUp60,
	DiagUp60ToUp25:                          DiagUp60ToUp25,
	DiagUp25ToFlat:                          DiagUp25ToFlat,
	DiagDown25:                              DiagDown25,
	DiagDown60:                              DiagDown60,
	DiagFlatToDown25:                        DiagFlatToDown25,
	DiagDown25ToDown60:                      DiagDown25ToDown60,
	DiagDown60ToDown25:                      DiagDown60ToDown25,
	DiagDown25ToFlat:                        DiagDown25ToFlat,
	DiagFlatToUp60:                          DiagFlatToUp60,
	DiagUp60ToFlat:                          DiagUp60ToFlat,
	DiagFlatToDown60:                        DiagFlatToDown60,
	DiagDown60ToFlat:                        DiagDown60ToFlat,
	DiagFlatToLeftBank:                      DiagFlatToRightBank,
	DiagFlatToRightBank:                     DiagFlatToLeftBank,
	DiagLeftBankToFlat:                      DiagRightBankToFlat,
	DiagRightBankToFlat:                     DiagLeftBankToFlat,
	DiagLeftBankToUp25:                      DiagRightBankToUp25,
	DiagRightBankToUp25:                     DiagLeftBankToUp25,
	DiagUp25ToLeftBank:                      DiagUp25ToRightBank,
	DiagUp25ToRightBank:                     DiagUp25ToLeftBank,
	DiagLeftBankToDown25:                    DiagRightBankToDown25,
	DiagRightBankToDown25:                   DiagLeftBankToDown25,
	DiagDown25ToLeftBank:                    DiagDown25ToRightBank,
	DiagDown25ToRightBank:                   DiagDown25ToLeftBank,
	DiagLeftBank:                            DiagRightBank,
	DiagRightBank:                           DiagLeftBank,
	LogFlumeReverser:                        LogFlumeReverser,
	SpinningTunnel:                          SpinningTunnel,
	LeftBarrelRollUpToDown:                  RightBarrelRollUpToDown,
	RightBarrelRollUpToDown:                 LeftBarrelRollUpToDown,
	LeftBarrelRollDownToUp:                  RightBarrelRollDownToUp,
	RightBarrelRollDownToUp:                 LeftBarrelRollDownToUp,
	LeftBankToLeftQuarterTurn3TilesUp25:     RightBankToRightQuarterTurn3TilesUp25,
	RightBankToRightQuarterTurn3TilesUp25:   LeftBankToLeftQuarterTurn3TilesUp25,
	LeftQuarterTurn3TilesDown25ToLeftBank:   RightQuarterTurn3TilesDown25ToRightBank,
	RightQuarterTurn3TilesDown25ToRightBank: LeftQuarterTurn3TilesDown25ToLeftBank,
	PoweredLift:                             PoweredLift,
	LeftLargeHalfLoopUp:                     RightLargeHalfLoopUp,
	RightLargeHalfLoopUp:                    LeftLargeHalfLoopUp,
	RightLargeHalfLoopDown:                  LeftLargeHalfLoopDown,
	LeftLargeHalfLoopDown:                   RightLargeHalfLoopDown,
	LeftFlyerTwistUp:                        RightFlyerTwistUp,
	RightFlyerTwistUp:                       LeftFlyerTwistUp,
	LeftFlyerTwistDown:                      RightFlyerTwistDown,
	RightFlyerTwistDown:                     LeftFlyerTwistDown,
	FlyerHalfLoopUninvertedUp:               FlyerHalfLoopUninvertedUp,
	FlyerHalfLoopInvertedDown:               FlyerHalfLoopInvertedDown,
	LeftFlyerCorkscrewUp:                    RightFlyerCorkscrewUp,
	RightFlyerCorkscrewUp:                   LeftFlyerCorkscrewUp,
	LeftFlyerCorkscrewDown:                  RightFlyerCorkscrewDown,
	RightFlyerCorkscrewDown:                 LeftFlyerCorkscrewDown,
	HeartLineTransferUp:                     HeartLineTransferUp,
	HeartLineTransferDown:                   HeartLineTransferDown,
	LeftHeartLineRoll:                       RightHeartLineRoll,
	RightHeartLineRoll:                      LeftHeartLineRoll,
	MinigolfHoleA:                           MinigolfHoleA,
	MinigolfHoleB:                           MinigolfHoleB,
	MinigolfHoleC:                           MinigolfHoleC,
	MinigolfHoleD:                           MinigolfHoleD,
	MinigolfHoleE:                           MinigolfHoleE,
	MultiDimInvertedFlatToDown90QuarterLoop: MultiDimInvertedFlatToDown90QuarterLoop,
	Up90ToInvertedFlatQuarterLoop:           Up90ToInvertedFlatQuarterLoop,
	InvertedFlatToDown90QuarterLoop:         InvertedFlatToDown90QuarterLoop,
	LeftCurvedLiftHill:                      RightCurvedLiftHill,
	RightCurvedLiftHill:                     LeftCurvedLiftHill,
	LeftReverser:                            RightReverser,
	RightReverser:                           LeftReverser,
	AirThrustTopCap:                         AirThrustTopCap,
	AirThrustVerticalDown:                   AirThrustVerticalDown,
	AirThrustVerticalDownToLevel:            AirThrustVerticalDownToLevel,
	BlockBrakes:                             BlockBrakes,
	LeftBankedQuarterTurn3TileUp25:          RightBankedQuarterTurn3TileUp25,
	RightBankedQuarterTurn3TileUp25:         LeftBankedQuarterTurn3TileUp25,
	LeftBankedQuarterTurn3TileDown25:        RightBankedQuarterTurn3TileDown25,
	RightBankedQuarterTurn3TileDown25:       LeftBankedQuarterTurn3TileDown25,
	LeftBankedQuarterTurn5TileUp25:          RightBankedQuarterTurn5TileUp25,
	RightBankedQuarterTurn5TileUp25:         LeftBankedQuarterTurn5TileUp25,
	LeftBankedQuarterTurn5TileDown25:        RightBankedQuarterTurn5TileDown25,
	RightBankedQuarterTurn5TileDown25:       LeftBankedQuarterTurn5TileDown25,
	Up25ToLeftBankedUp25:                    Up25ToRightBankedUp25,
	Up25ToRightBankedUp25:                   Up25ToLeftBankedUp25,
	LeftBankedUp25ToUp25:                    RightBankedUp25ToUp25,
	RightBankedUp25ToUp25:                   LeftBankedUp25ToUp25,
	Down25ToLeftBankedDown25:                Down25ToRightBankedDown25,
	Down25ToRightBankedDown25:               Down25ToLeftBankedDown25,
	LeftBankedDown25ToDown25:                RightBankedDown25ToDown25,
	RightBankedDown25ToDown25:               LeftBankedDown25ToDown25,
	LeftBankedFlatToLeftBankedUp25:          RightBankedFlatToRightBankedUp25,
	RightBankedFlatToRightBankedUp25:        LeftBankedFlatToLeftBankedUp25,
	LeftBankedUp25ToLeftBankedFlat:          RightBankedUp25ToRightBankedFlat,
	RightBankedUp25ToRightBankedFlat:        LeftBankedUp25ToLeftBankedFlat,
	LeftBankedFlatToLeftBankedDown25:        RightBankedFlatToRightBankedDown25,
	RightBankedFlatToRightBankedDown25:      LeftBankedFlatToLeftBankedDown25,
	LeftBankedDown25ToLeftBankedFlat:        RightBankedDown25ToRightBankedFlat,
	RightBankedDown25ToRightBankedFlat:      LeftBankedDown25ToLeftBankedFlat,
	FlatToLeftBankedUp25:                    FlatToRightBankedUp25,
	FlatToRightBankedUp25:                   FlatToLeftBankedUp25,
	LeftBankedUp25ToFlat:                    RightBankedUp25ToFlat,
	RightBankedUp25ToFlat:                   LeftBankedUp25ToFlat,
	FlatToLeftBankedDown25:                  FlatToRightBankedDown25,
	FlatToRightBankedDown25:                 FlatToLeftBankedDown25,
	LeftBankedDown25ToFlat:                  RightBankedDown25ToFlat,
	RightBankedDown25ToFlat:                 LeftBankedDown25ToFlat,
	LeftQuarterTurn1TileUp90:                RightQuarterTurn1TileUp90,
	RightQuarterTurn1TileUp90:               LeftQuarterTurn1TileUp90,
	LeftQuarterTurn1TileDown90:              RightQuarterTurn1TileDown90,
	RightQuarterTurn1TileDown90:             LeftQuarterTurn1TileDown90,
	MultiDimUp90ToInvertedFlatQuarterLoop:   MultiDimUp90ToInvertedFlatQuarterLoop,
	MultiDimFlatToDown90QuarterLoop:         MultiDimFlatToDown90QuarterLoop,
	MultiDimInvertedUp90ToFlatQuarterLoop:   MultiDimInvertedUp90ToFlatQuarterLoop,
	RotationControlToggle:                   RotationControlToggle,
	FlatTrack1x4A:                           FlatTrack1x4A,
	FlatTrack2x2:                            FlatTrack2x2,
	FlatTrack4x4:                            FlatTrack4x4,
	FlatTrack2x4:                            FlatTrack2x4,
	FlatTrack1x5:                            FlatTrack1x5,
	FlatTrack1x1A:                           FlatTrack1x1A,
	FlatTrack1x4B:                           FlatTrack1x4B,
	FlatTrack1x1B:                           FlatTrack1x1B,
	FlatTrack1x4C:                           FlatTrack1x4C,
	FlatTrack3x3:                            FlatTrack3x3,
	LeftLargeCorkscrewUp:                    RightLargeCorkscrewUp,
	RightLargeCorkscrewUp:                   LeftLargeCorkscrewUp,
	LeftLargeCorkscrewDown:                  RightLargeCorkscrewDown,
	RightLargeCorkscrewDown:                 LeftLargeCorkscrewDown,
	LeftMediumHalfLoopUp:                    RightMediumHalfLoopUp,
	RightMediumHalfLoopUp:                   LeftMediumHalfLoopUp,
	LeftMediumHalfLoopDown:                  RightMediumHalfLoopDown,
	RightMediumHalfLoopDown:                 LeftMediumHalfLoopDown,
	LeftZeroGRollUp:                         RightZeroGRollUp,
	RightZeroGRollUp:                        LeftZeroGRollUp,
	LeftZeroGRollDown:                       RightZeroGRollDown,
	RightZeroGRollDown:                      LeftZeroGRollDown,
	LeftLargeZeroGRollUp:                    RightLargeZeroGRollUp,
	RightLargeZeroGRollUp:                   LeftLargeZeroGRollUp,
	LeftLargeZeroGRollDown:                  RightLargeZeroGRollDown,
	RightLargeZeroGRollDown:                 LeftLargeZeroGRollDown,
	LeftFlyerLargeHalfLoopUninvertedUp:      RightFlyerLargeHalfLoopUninvertedUp,
	RightFlyerLargeHalfLoopUninvertedUp:     LeftFlyerLargeHalfLoopUninvertedUp,
	LeftFlyerLargeHalfLoopInvertedDown:      RightFlyerLargeHalfLoopInvertedDown,
	RightFlyerLargeHalfLoopInvertedDown:     LeftFlyerLargeHalfLoopInvertedDown,
	LeftFlyerLargeHalfLoopInvertedUp:        RightFlyerLargeHalfLoopInvertedUp,
	RightFlyerLargeHalfLoopInvertedUp:       LeftFlyerLargeHalfLoopInvertedUp,
	LeftFlyerLargeHalfLoopUninvertedDown:    RightFlyerLargeHalfLoopUninvertedDown,
	RightFlyerLargeHalfLoopUninvertedDown:   LeftFlyerLargeHalfLoopUninvertedDown,
	FlyerHalfLoopInvertedUp:                 FlyerHalfLoopInvertedUp,
	FlyerHalfLoopUninvertedDown:             FlyerHalfLoopUninvertedDown,
	DiagBrakes:                              DiagBrakes,
	DiagBlockBrakes:                         DiagBlockBrakes,
	Down25Brakes:                            Down25Brakes,
	DiagBooster:                             DiagBooster,
}

// alternativeTable maps plain elements to their covered variant and back.
var alternativeTable = [ElemTypeCount]ElemType{
	Flat:                                    FlatCovered,
	EndStation:                              ElemTypeNone,
	BeginStation:                            ElemTypeNone,
	MiddleStation:                           ElemTypeNone,
	Up25:                                    Up25Covered,
	Up60:                                    Up60Covered,
	FlatToUp25:                              FlatToUp25Covered,
	Up25ToUp60:                              Up25ToUp60Covered,
	Up60ToUp25:                              Up60ToUp25Covered,
	Up25ToFlat:                              Up25ToFlatCovered,
	Down25:                                  Down25Covered,
	Down60:                                  Down60Covered,
	FlatToDown25:                            FlatToDown25Covered,
	Down25ToDown60:                          Down25ToDown60Covered,
	Down60ToDown25:                          Down60ToDown25Covered,
	Down25ToFlat:                            Down25ToFlatCovered,
	LeftQuarterTurn5Tiles:                   LeftQuarterTurn5TilesCovered,
	RightQuarterTurn5Tiles:                  RightQuarterTurn5TilesCovered,
	FlatToLeftBank:                          ElemTypeNone,
	FlatToRightBank:                         ElemTypeNone,
	LeftBankToFlat:                          ElemTypeNone,
	RightBankToFlat:                         ElemTypeNone,
	BankedLeftQuarterTurn5Tiles:             ElemTypeNone,
	BankedRightQuarterTurn5Tiles:            ElemTypeNone,
	LeftBankToUp25:                          ElemTypeNone,
	RightBankToUp25:                         ElemTypeNone,
	Up25ToLeftBank:                          ElemTypeNone,
	Up25ToRightBank:                         ElemTypeNone,
	LeftBankToDown25:                        ElemTypeNone,
	RightBankToDown25:                       ElemTypeNone,
	Down25ToLeftBank:                        ElemTypeNone,
	Down25ToRightBank:                       ElemTypeNone,
	LeftBank:                                ElemTypeNone,
	RightBank:                               ElemTypeNone,
	LeftQuarterTurn5TilesUp25:               ElemTypeNone,
	RightQuarterTurn5TilesUp25:              ElemTypeNone,
	LeftQuarterTurn5TilesDown25:             ElemTypeNone,
	RightQuarterTurn5TilesDown25:            ElemTypeNone,
	SBendLeft:                               SBendLeftCovered,
	SBendRight:                              SBendRightCovered,
	LeftVerticalLoop:                        ElemTypeNone,
	RightVerticalLoop:                       ElemTypeNone,
	LeftQuarterTurn3Tiles:                   LeftQuarterTurn3TilesCovered,
	RightQuarterTurn3Tiles:                  RightQuarterTurn3TilesCovered,
	LeftBankedQuarterTurn3Tiles:             ElemTypeNone,
	RightBankedQuarterTurn3Tiles:            ElemTypeNone,
	LeftQuarterTurn3TilesUp25:               ElemTypeNone,
	RightQuarterTurn3TilesUp25:              ElemTypeNone,
	LeftQuarterTurn3TilesDown25:             ElemTypeNone,
	RightQuarterTurn3TilesDown25:            ElemTypeNone,
	LeftQuarterTurn1Tile:                    ElemTypeNone,
	RightQuarterTurn1Tile:                   ElemTypeNone,
	LeftTwistDownToUp:                       ElemTypeNone,
	RightTwistDownToUp:                      ElemTypeNone,
	LeftTwistUpToDown:                       ElemTypeNone,
	RightTwistUpToDown:                      ElemTypeNone,
	HalfLoopUp:                              ElemTypeNone,
	HalfLoopDown:                            ElemTypeNone,
	LeftCorkscrewUp:                         ElemTypeNone,
	RightCorkscrewUp:                        ElemTypeNone,
	LeftCorkscrewDown:                       ElemTypeNone,
	RightCorkscrewDown:                      ElemTypeNone,
	FlatToUp60:                              ElemTypeNone,
	Up60ToFlat:                              ElemTypeNone,
	FlatToDown60:                            ElemTypeNone,
	Down60ToFlat:                            ElemTypeNone,
	TowerBase:                               ElemTypeNone,
	TowerSection:                            ElemTypeNone,
	FlatCovered:                             Flat,
	Up25Covered:                             Up25,
	Up60Covered:                             Up60,
	FlatToUp25Covered:                       FlatToUp25,
	Up25ToUp60Covered:                       Up25ToUp60,
	Up60ToUp25Covered:                       Up60ToUp25,
	Up25ToFlatCovered:                       Up25ToFlat,
	Down25Covered:                           Down25,
	Down60Covered:                           Down60,
	FlatToDown25Covered:                     FlatToDown25,
	Down25ToDown60Covered:                   Down25ToDown60,
	Down60ToDown25Covered:                   Down60ToDown25,
	Down25ToFlatCovered:                     Down25ToFlat,
	LeftQuarterTurn5TilesCovered:            LeftQuarterTurn5Tiles,
	RightQuarterTurn5TilesCovered:           RightQuarterTurn5Tiles,
	SBendLeftCovered:                        SBendLeft,
	SBendRightCovered:                       SBendRight,
	LeftQuarterTurn3TilesCovered:            LeftQuarterTurn3Tiles,
	RightQuarterTurn3TilesCovered:           RightQuarterTurn3Tiles,
	LeftHalfBankedHelixUpSmall:              ElemTypeNone,
	RightHalfBankedHelixUpSmall:             ElemTypeNone,
	LeftHalfBankedHelixDownSmall:            ElemTypeNone,
	RightHalfBankedHelixDownSmall:           ElemTypeNone,
	LeftHalfBankedHelixUpLarge:              ElemTypeNone,
	RightHalfBankedHelixUpLarge:             ElemTypeNone,
	LeftHalfBankedHelixDownLarge:            ElemTypeNone,
	RightHalfBankedHelixDownLarge:           ElemTypeNone,
	LeftQuarterTurn1TileUp60:                ElemTypeNone,
	RightQuarterTurn1TileUp60:               ElemTypeNone,
	LeftQuarterTurn1TileDown60:              ElemTypeNone,
	RightQuarterTurn1TileDown60:             ElemTypeNone,
	Brakes:                                  ElemTypeNone,
	Booster:                                 ElemTypeNone,
	Maze:                                    ElemTypeNone,
	LeftQuarterBankedHelixLargeUp:           ElemTypeNone,
	RightQuarterBankedHelixLargeUp:          ElemTypeNone,
	LeftQuarterBankedHelixLargeDown:         ElemTypeNone,
	RightQuarterBankedHelixLargeDown:        ElemTypeNone,
	LeftQuarterHelixLargeUp:                 ElemTypeNone,
	RightQuarterHelixLargeUp:                ElemTypeNone,
	LeftQuarterHelixLargeDown:               ElemTypeNone,
	RightQuarterHelixLargeDown:              ElemTypeNone,
	Up25LeftBanked:                          ElemTypeNone,
	Up25RightBanked:                         ElemTypeNone,
	Waterfall:                               ElemTypeNone,
	Rapids:                                  ElemTypeNone,
	OnRidePhoto:                             ElemTypeNone,
	Down25LeftBanked:                        ElemTypeNone,
	Down25RightBanked:                       ElemTypeNone,
	Watersplash:                             ElemTypeNone,
	FlatToUp60LongBase:                      ElemTypeNone,
	Up60ToFlatLongBase:                      ElemTypeNone,
	Whirlpool:                               ElemTypeNone,
	Down60ToFlatLongBase:                    ElemTypeNone,
	FlatToDown60LongBase:                    ElemTypeNone,
	CableLiftHill:                           ElemTypeNone,
	ReverseFreefallSlope:                    ElemTypeNone,
	ReverseFreefallVertical:                 ElemTypeNone,
	Up90:                                    ElemTypeNone,
	Down90:                                  ElemTypeNone,
	Up60ToUp90:                              ElemTypeNone,
	Down90ToDown60:                          ElemTypeNone,
	Up90ToUp60:                              ElemTypeNone,
	Down60ToDown90:                          ElemTypeNone,
	BrakeForDrop:                            ElemTypeNone,
	LeftEighthToDiag:                        ElemTypeNone,
	RightEighthToDiag:                       ElemTypeNone,
	LeftEighthToOrthogonal:                  ElemTypeNone,
	RightEighthToOrthogonal:                 ElemTypeNone,
	LeftEighthBankToDiag:                    ElemTypeNone,
	RightEighthBankToDiag:                   ElemTypeNone,
	LeftEighthBankToOrthogonal:              ElemTypeNone,
	RightEighthBankToOrthogonal:             ElemTypeNone,
	DiagFlat:                                ElemTypeNone,
	DiagUp25:                                ElemTypeNone,
	DiagUp60:                                ElemTypeNone,
	DiagFlatToUp25:                          ElemTypeNone,
	DiagUp25ToUp60:                          ElemTypeNone,
	DiagUp60ToUp25:                          ElemTypeNone,
	DiagUp25ToFlat:                          ElemTypeNone,
	DiagDown25:                              ElemTypeNone,
	DiagDown60:                              ElemTypeNone,
	DiagFlatToDown25:                        ElemTypeNone,
	DiagDown25ToDown60:                      ElemTypeNone,
	DiagDown60ToDown25:                      ElemTypeNone,
	DiagDown25ToFlat:                        ElemTypeNone,
	DiagFlatToUp60:                          ElemTypeNone,
	DiagUp60ToFlat:                          ElemTypeNone,
	DiagFlatToDown60:                        ElemTypeNone,
	DiagDown60ToFlat:                        ElemTypeNone,
	DiagFlatToLeftBank:                      ElemTypeNone,
	DiagFlatToRightBank:                     ElemTypeNone,
	DiagLeftBankToFlat:                      ElemTypeNone,
	DiagRightBankToFlat:                     ElemTypeNone,
	DiagLeftBankToUp25:                      ElemTypeNone,
	DiagRightBankToUp25:                     ElemTypeNone,
	DiagUp25ToLeftBank:                      ElemTypeNone,
	DiagUp25ToRightBank:                     ElemTypeNone,
	DiagLeftBankToDown25:                    ElemTypeNone,
	DiagRightBankToDown25:                   ElemTypeNone,
	DiagDown25ToLeftBank:                    ElemTypeNone,
	DiagDown25ToRightBank:                   ElemTypeNone,
	DiagLeftBank:                            ElemTypeNone,
	DiagRightBank:                           ElemTypeNone,
	LogFlumeReverser:                        ElemTypeNone,
	SpinningTunnel:                          ElemTypeNone,
	LeftBarrelRollUpToDown:                  ElemTypeNone,
	RightBarrelRollUpToDown:                 ElemTypeNone,
	LeftBarrelRollDownToUp:                  ElemTypeNone,
	RightBarrelRollDownToUp:                 ElemTypeNone,
	LeftBankToLeftQuarterTurn3TilesUp25:     ElemTypeNone,
	RightBankToRightQuarterTurn3TilesUp25:   ElemTypeNone,
	LeftQuarterTurn3TilesDown25ToLeftBank:   ElemTypeNone,
	RightQuarterTurn3TilesDown25ToRightBank: ElemTypeNone,
	PoweredLift:                             ElemTypeNone,
	LeftLargeHalfLoopUp:                     ElemTypeNone,
	RightLargeHalfLoopUp:                    ElemTypeNone,
	RightLargeHalfLoopDown:                  ElemTypeNone,
	LeftLargeHalfLoopDown:                   ElemTypeNone,
	LeftFlyerTwistUp:                        ElemTypeNone,
	RightFlyerTwistUp:                       ElemTypeNone,
	LeftFlyerTwistDown:                      ElemTypeNone,
	RightFlyerTwistDown:                     ElemTypeNone,
	FlyerHalfLoopUninvertedUp:               ElemTypeNone,
	FlyerHalfLoopInvertedDown:               ElemTypeNone,
	LeftFlyerCorkscrewUp:                    ElemTypeNone,
	RightFlyerCorkscrewUp:                   ElemTypeNone,
	LeftFlyerCorkscrewDown:                  ElemTypeNone,
	RightFlyerCorkscrewDown:                 ElemTypeNone,
	HeartLineTransferUp:                     ElemTypeNone,
	HeartLineTransferDown:                   ElemTypeNone,
	LeftHeartLineRoll:                       ElemTypeNone,
	RightHeartLineRoll:                      ElemTypeNone,
	MinigolfHoleA:                           ElemTypeNone,
	MinigolfHoleB:                           ElemTypeNone,
	MinigolfHoleC:                           ElemTypeNone,
	MinigolfHoleD:                           ElemTypeNone,
	MinigolfHoleE:                           ElemTypeNone,
	MultiDimInvertedFlatToDown90QuarterLoop: ElemTypeNone,
	Up90ToInvertedFlatQuarterLoop:           ElemTypeNone,
	InvertedFlatToDown90QuarterLoop:         ElemTypeNone,
	LeftCurvedLiftHill:                      ElemTypeNone,
	RightCurvedLiftHill:                     ElemTypeNone,
	LeftReverser:                            ElemTypeNone,
	RightReverser:                           ElemTypeNone,
	AirThrustTopCap:                         ElemTypeNone,
	AirThrustVerticalDown:                   ElemTypeNone,
	AirThrustVerticalDownToLevel:            ElemTypeNone,
	BlockBrakes:                             ElemTypeNone,
	LeftBankedQuarterTurn3TileUp25:          ElemTypeNone,
	RightBankedQuarterTurn3TileUp25:         ElemTypeNone,
	LeftBankedQuarterTurn3TileDown25:        ElemTypeNone,
	RightBankedQuarterTurn3TileDown25:       ElemTypeNone,
	LeftBankedQuarterTurn5TileUp25:          ElemTypeNone,
	RightBankedQuarterTurn5TileUp25:         ElemTypeNone,
	LeftBankedQuarterTurn5TileDown25:        ElemTypeNone,
	RightBankedQuarterTurn5TileDown25:       ElemTypeNone,
	Up25ToLeftBankedUp25:                    ElemTypeNone,
	Up25ToRightBankedUp25:                   ElemTypeNone,
	LeftBankedUp25ToUp25:                    ElemTypeNone,
	RightBankedUp25ToUp25:                   ElemTypeNone,
	Down25ToLeftBankedDown25:                ElemTypeNone,
	Down25ToRightBankedDown25:               ElemTypeNone,
	LeftBankedDown25ToDown25:                ElemTypeNone,
	RightBankedDown25ToDown25:               ElemTypeNone,
	LeftBankedFlatToLeftBankedUp25:          ElemTypeNone,
	RightBankedFlatToRightBankedUp25:        ElemTypeNone,
	LeftBankedUp25ToLeftBankedFlat:          ElemTypeNone,
	RightBankedUp25ToRightBankedFlat:        ElemTypeNone,
	LeftBankedFlatToLeftBankedDown25:        ElemTypeNone,
	RightBankedFlatToRightBankedDown25:      ElemTypeNone,
	LeftBankedDown25ToLeftBankedFlat:        ElemTypeNone,
	RightBankedDown25ToRightBankedFlat:      ElemTypeNone,
	FlatToLeftBankedUp25:                    ElemTypeNone,
	FlatToRightBankedUp25:                   ElemTypeNone,
	LeftBankedUp25ToFlat:                    ElemTypeNone,
	RightBankedUp25ToFlat:                   ElemTypeNone,
	FlatToLeftBankedDown25:                  ElemTypeNone,
	FlatToRightBankedDown25:                 ElemTypeNone,
	LeftBankedDown25ToFlat:                  ElemTypeNone,
	RightBankedDown25ToFlat:                 ElemTypeNone,
	LeftQuarterTurn1TileUp90:                ElemTypeNone,
	RightQuarterTurn1TileUp90:               ElemTypeNone,
	LeftQuarterTurn1TileDown90:              ElemTypeNone,
	RightQuarterTurn1TileDown90:             ElemTypeNone,
	MultiDimUp90ToInvertedFlatQuarterLoop:   ElemTypeNone,
	MultiDimFlatToDown90QuarterLoop:         ElemTypeNone,
	MultiDimInvertedUp90ToFlatQuarterLoop:   ElemTypeNone,
	RotationControlToggle:                   ElemTypeNone,
	FlatTrack1x4A:                           ElemTypeNone,
	FlatTrack2x2:                            ElemTypeNone,
	FlatTrack4x4:                            ElemTypeNone,
	FlatTrack2x4:                            ElemTypeNone,
	FlatTrack1x5:                            ElemTypeNone,
	FlatTrack1x1A:                           ElemTypeNone,
	FlatTrack1x4B:                           ElemTypeNone,
	FlatTrack1x1B:                           ElemTypeNone,
	FlatTrack1x4C:                           ElemTypeNone,
	FlatTrack3x3:                            ElemTypeNone,
	LeftLargeCorkscrewUp:                    ElemTypeNone,
	RightLargeCorkscrewUp:                   ElemTypeNone,
	LeftLargeCorkscrewDown:                  ElemTypeNone,
	RightLargeCorkscrewDown:                 ElemTypeNone,
	LeftMediumHalfLoopUp:                    ElemTypeNone,
	RightMediumHalfLoopUp:                   ElemTypeNone,
	LeftMediumHalfLoopDown:                  ElemTypeNone,
	RightMediumHalfLoopDown:                 ElemTypeNone,
	LeftZeroGRollUp:                         ElemTypeNone,
	RightZeroGRollUp:                        ElemTypeNone,
	LeftZeroGRollDown:                       ElemTypeNone,
	RightZeroGRollDown:                      ElemTypeNone,
	LeftLargeZeroGRollUp:                    ElemTypeNone,
	RightLargeZeroGRollUp:                   ElemTypeNone,
	LeftLargeZeroGRollDown:                  ElemTypeNone,
	RightLargeZeroGRollDown:                 ElemTypeNone,
	LeftFlyerLargeHalfLoopUninvertedUp:      ElemTypeNone,
	RightFlyerLargeHalfLoopUninvertedUp:     ElemTypeNone,
	LeftFlyerLargeHalfLoopInvertedDown:      ElemTypeNone,
	RightFlyerLargeHalfLoopInvertedDown:     ElemTypeNone,
	LeftFlyerLargeHalfLoopInvertedUp:        ElemTypeNone,
	RightFlyerLargeHalfLoopInvertedUp:       ElemTypeNone,
	LeftFlyerLargeHalfLoopUninvertedDown:    ElemTypeNone,
	RightFlyerLargeHalfLoopUninvertedDown:   ElemTypeNone,
	FlyerHalfLoopInvertedUp:                 ElemTypeNone,
	FlyerHalfLoopUninvertedDown:             ElemTypeNone,
	DiagBrakes:                              ElemTypeNone,
	DiagBlockBrakes:                         ElemTypeNone,
	Down25Brakes:                            ElemTypeNone,
	DiagBooster:                             ElemTypeNone,
}
