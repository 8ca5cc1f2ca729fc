package track

import "fmt"

// Group classifies elements for construction menus and ride capabilities.
type Group uint8

const (
	GroupFlat Group = iota
	GroupStationEnd
	GroupSlope
	GroupSlopeSteepUp
	GroupSlopeSteepDown
	GroupCurve
	GroupFlatRollBanking
	GroupSlopeCurve
	GroupSBend
	GroupVerticalLoop
	GroupCurveSmall
	GroupCurveVerySmall
	GroupTwist
	GroupHalfLoop
	GroupCorkscrew
	GroupFlatToSteepSlope
	GroupTower
	GroupHelixUpBankedHalf
	GroupHelixDownBankedHalf
	GroupCurveVertical
	GroupBrakes
	GroupBooster
	GroupHelixUpBankedQuarter
	GroupHelixDownBankedQuarter
	GroupHelixUpUnbankedQuarter
	GroupHelixDownUnbankedQuarter
	GroupSlopeRollBanking
	GroupWaterfall
	GroupRapids
	GroupOnRidePhoto
	GroupWatersplash
	GroupSlopeLong
	GroupWhirlpool
	GroupLiftHillCable
	GroupReverseFreefall
	GroupSlopeVertical
	GroupBrakeForDrop
	GroupCurveLarge
	GroupCurveLargeBanked
	GroupDiagonal
	GroupLogFlumeReverser
	GroupSpinningTunnel
	GroupBarrelRoll
	GroupSlopeCurveBanked
	GroupPoweredLift
	GroupHalfLoopLarge
	GroupFlyingTwist
	GroupFlyingHalfLoopUninvertedUp
	GroupFlyingHalfLoopInvertedDown
	GroupFlyingCorkscrew
	GroupHeartlineTransfer
	GroupHeartlineRoll
	GroupMinigolfHole
	GroupQuarterLoop
	GroupLiftHillCurve
	GroupReverser
	GroupAirThrustTopCap
	GroupAirThrustVerticalDown
	GroupBlockBrakes
	GroupRotationControlToggle
	GroupFlatRideBase
	GroupCorkscrewLarge
	GroupHalfLoopMedium
	GroupZeroGRoll
	GroupZeroGRollLarge
	GroupFlyingLargeHalfLoopUninvertedUp
	GroupFlyingLargeHalfLoopInvertedDown
	GroupFlyingLargeHalfLoopInvertedUp
	GroupFlyingLargeHalfLoopUninvertedDown
	GroupFlyingHalfLoopInvertedUp
	GroupFlyingHalfLoopUninvertedDown
	GroupDiagBrakes
	GroupDiagBlockBrakes
	GroupInclinedBrakes
	GroupDiagBooster

	groupCount
)

var groupNames = [groupCount]string{
	GroupFlat:                              "flat",
	GroupStationEnd:                        "station-end",
	GroupSlope:                             "slope",
	GroupSlopeSteepUp:                      "slope-steep-up",
	GroupSlopeSteepDown:                    "slope-steep-down",
	GroupCurve:                             "curve",
	GroupFlatRollBanking:                   "flat-roll-banking",
	GroupSlopeCurve:                        "slope-curve",
	GroupSBend:                             "s-bend",
	GroupVerticalLoop:                      "vertical-loop",
	GroupCurveSmall:                        "curve-small",
	GroupCurveVerySmall:                    "curve-very-small",
	GroupTwist:                             "twist",
	GroupHalfLoop:                          "half-loop",
	GroupCorkscrew:                         "corkscrew",
	GroupFlatToSteepSlope:                  "flat-to-steep-slope",
	GroupTower:                             "tower",
	GroupHelixUpBankedHalf:                 "helix-up-banked-half",
	GroupHelixDownBankedHalf:               "helix-down-banked-half",
	GroupCurveVertical:                     "curve-vertical",
	GroupBrakes:                            "brakes",
	GroupBooster:                           "booster",
	GroupHelixUpBankedQuarter:              "helix-up-banked-quarter",
	GroupHelixDownBankedQuarter:            "helix-down-banked-quarter",
	GroupHelixUpUnbankedQuarter:            "helix-up-unbanked-quarter",
	GroupHelixDownUnbankedQuarter:          "helix-down-unbanked-quarter",
	GroupSlopeRollBanking:                  "slope-roll-banking",
	GroupWaterfall:                         "waterfall",
	GroupRapids:                            "rapids",
	GroupOnRidePhoto:                       "on-ride-photo",
	GroupWatersplash:                       "watersplash",
	GroupSlopeLong:                         "slope-long",
	GroupWhirlpool:                         "whirlpool",
	GroupLiftHillCable:                     "lift-hill-cable",
	GroupReverseFreefall:                   "reverse-freefall",
	GroupSlopeVertical:                     "slope-vertical",
	GroupBrakeForDrop:                      "brake-for-drop",
	GroupCurveLarge:                        "curve-large",
	GroupCurveLargeBanked:                  "curve-large-banked",
	GroupDiagonal:                          "diagonal",
	GroupLogFlumeReverser:                  "log-flume-reverser",
	GroupSpinningTunnel:                    "spinning-tunnel",
	GroupBarrelRoll:                        "barrel-roll",
	GroupSlopeCurveBanked:                  "slope-curve-banked",
	GroupPoweredLift:                       "powered-lift",
	GroupHalfLoopLarge:                     "half-loop-large",
	GroupFlyingTwist:                       "flying-twist",
	GroupFlyingHalfLoopUninvertedUp:        "flying-half-loop-uninverted-up",
	GroupFlyingHalfLoopInvertedDown:        "flying-half-loop-inverted-down",
	GroupFlyingCorkscrew:                   "flying-corkscrew",
	GroupHeartlineTransfer:                 "heartline-transfer",
	GroupHeartlineRoll:                     "heartline-roll",
	GroupMinigolfHole:                      "minigolf-hole",
	GroupQuarterLoop:                       "quarter-loop",
	GroupLiftHillCurve:                     "lift-hill-curve",
	GroupReverser:                          "reverser",
	GroupAirThrustTopCap:                   "air-thrust-top-cap",
	GroupAirThrustVerticalDown:             "air-thrust-vertical-down",
	GroupBlockBrakes:                       "block-brakes",
	GroupRotationControlToggle:             "rotation-control-toggle",
	GroupFlatRideBase:                      "flat-ride-base",
	GroupCorkscrewLarge:                    "corkscrew-large",
	GroupHalfLoopMedium:                    "half-loop-medium",
	GroupZeroGRoll:                         "zero-g-roll",
	GroupZeroGRollLarge:                    "zero-g-roll-large",
	GroupFlyingLargeHalfLoopUninvertedUp:   "flying-large-half-loop-uninverted-up",
	GroupFlyingLargeHalfLoopInvertedDown:   "flying-large-half-loop-inverted-down",
	GroupFlyingLargeHalfLoopInvertedUp:     "flying-large-half-loop-inverted-up",
	GroupFlyingLargeHalfLoopUninvertedDown: "flying-large-half-loop-uninverted-down",
	GroupFlyingHalfLoopInvertedUp:          "flying-half-loop-inverted-up",
	GroupFlyingHalfLoopUninvertedDown:      "flying-half-loop-uninverted-down",
	GroupDiagBrakes:                        "diag-brakes",
	GroupDiagBlockBrakes:                   "diag-block-brakes",
	GroupInclinedBrakes:                    "inclined-brakes",
	GroupDiagBooster:                       "diag-booster",
}

func (g Group) String() string {
	if g >= groupCount {
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
	return groupNames[g]
}

// Pitch is the slope of the track at one end of an element.
type Pitch uint8

const (
	PitchNone Pitch = iota
	PitchUp25
	PitchUp60
	PitchUp90
	PitchDown25
	PitchDown60
	PitchDown90
	PitchTower
)

var pitchNames = [...]string{"none", "up25", "up60", "up90", "down25", "down60", "down90", "tower"}

func (p Pitch) String() string {
	if int(p) >= len(pitchNames) {
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}
	return pitchNames[p]
}

// Degrees is the signed angle of the slope, positive upwards.
func (p Pitch) Degrees() float64 {
	switch p {
	case PitchUp25:
		return 25
	case PitchUp60:
		return 60
	case PitchUp90, PitchTower:
		return 90
	case PitchDown25:
		return -25
	case PitchDown60:
		return -60
	case PitchDown90:
		return -90
	default:
		return 0
	}
}

// Roll is the banking of the track at one end of an element.
type Roll uint8

const (
	RollNone Roll = iota
	RollLeft
	RollRight
	RollUpsideDown
)

var rollNames = [...]string{"none", "left", "right", "upside-down"}

func (r Roll) String() string {
	if int(r) >= len(rollNames) {
		return fmt.Sprintf("Roll(%d)", uint8(r))
	}
	return rollNames[r]
}

// Degrees is the bank angle; banked track is rolled 45 degrees.
func (r Roll) Degrees() float64 {
	switch r {
	case RollLeft:
		return -45
	case RollRight:
		return 45
	case RollUpsideDown:
		return 180
	default:
		return 0
	}
}

// Mirror swaps left and right banking.
func (r Roll) Mirror() Roll {
	switch r {
	case RollLeft:
		return RollRight
	case RollRight:
		return RollLeft
	default:
		return r
	}
}

// Definition is the static placement metadata of an element.
type Definition struct {
	Group      Group
	PitchStart Pitch
	PitchEnd   Pitch
	RollStart  Roll
	RollEnd    Roll
	// PreviewZOffset lowers the construction preview for elements that
	// start above their end.
	PreviewZOffset int16
}

var definitionTable = [ElemTypeCount]Definition{
	Flat:                                    {GroupFlat, PitchNone, PitchNone, RollNone, RollNone, 0},
	EndStation:                              {GroupStationEnd, PitchNone, PitchNone, RollNone, RollNone, 0},
	BeginStation:                            {GroupStationEnd, PitchNone, PitchNone, RollNone, RollNone, 0},
	MiddleStation:                           {GroupStationEnd, PitchNone, PitchNone, RollNone, RollNone, 0},
	Up25:                                    {GroupSlope, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	Up60:                                    {GroupSlopeSteepUp, PitchUp60, PitchUp60, RollNone, RollNone, 0},
	FlatToUp25:                              {GroupSlope, PitchNone, PitchUp25, RollNone, RollNone, 0},
	Up25ToUp60:                              {GroupSlopeSteepUp, PitchUp25, PitchUp60, RollNone, RollNone, 0},
	Up60ToUp25:                              {GroupSlopeSteepUp, PitchUp60, PitchUp25, RollNone, RollNone, 0},
	Up25ToFlat:                              {GroupSlope, PitchUp25, PitchNone, RollNone, RollNone, 0},
	Down25:                                  {GroupSlope, PitchDown25, PitchDown25, RollNone, RollNone, 16},
	Down60:                                  {GroupSlopeSteepDown, PitchDown60, PitchDown60, RollNone, RollNone, 64},
	FlatToDown25:                            {GroupSlope, PitchNone, PitchDown25, RollNone, RollNone, 8},
	Down25ToDown60:                          {GroupSlopeSteepDown, PitchDown25, PitchDown60, RollNone, RollNone, 24},
	Down60ToDown25:                          {GroupSlopeSteepDown, PitchDown60, PitchDown25, RollNone, RollNone, 24},
	Down25ToFlat:                            {GroupSlope, PitchDown25, PitchNone, RollNone, RollNone, 8},
	LeftQuarterTurn5Tiles:                   {GroupCurve, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightQuarterTurn5Tiles:                  {GroupCurve, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatToLeftBank:                          {GroupFlatRollBanking, PitchNone, PitchNone, RollNone, RollLeft, 0},
	FlatToRightBank:                         {GroupFlatRollBanking, PitchNone, PitchNone, RollNone, RollRight, 0},
	LeftBankToFlat:                          {GroupFlatRollBanking, PitchNone, PitchNone, RollLeft, RollNone, 0},
	RightBankToFlat:                         {GroupFlatRollBanking, PitchNone, PitchNone, RollRight, RollNone, 0},
	BankedLeftQuarterTurn5Tiles:             {GroupCurve, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	BankedRightQuarterTurn5Tiles:            {GroupCurve, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftBankToUp25:                          {GroupSlope, PitchNone, PitchUp25, RollLeft, RollNone, 0},
	RightBankToUp25:                         {GroupSlope, PitchNone, PitchUp25, RollRight, RollNone, 0},
	Up25ToLeftBank:                          {GroupSlope, PitchUp25, PitchNone, RollNone, RollLeft, 0},
	Up25ToRightBank:                         {GroupSlope, PitchUp25, PitchNone, RollNone, RollRight, 0},
	LeftBankToDown25:                        {GroupSlope, PitchNone, PitchDown25, RollLeft, RollNone, 8},
	RightBankToDown25:                       {GroupSlope, PitchNone, PitchDown25, RollRight, RollNone, 8},
	Down25ToLeftBank:                        {GroupSlope, PitchDown25, PitchNone, RollNone, RollLeft, 8},
	Down25ToRightBank:                       {GroupSlope, PitchDown25, PitchNone, RollNone, RollRight, 8},
	LeftBank:                                {GroupFlatRollBanking, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightBank:                               {GroupFlatRollBanking, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftQuarterTurn5TilesUp25:               {GroupSlopeCurve, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	RightQuarterTurn5TilesUp25:              {GroupSlopeCurve, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	LeftQuarterTurn5TilesDown25:             {GroupSlopeCurve, PitchDown25, PitchDown25, RollNone, RollNone, 64},
	RightQuarterTurn5TilesDown25:            {GroupSlopeCurve, PitchDown25, PitchDown25, RollNone, RollNone, 64},
	SBendLeft:                               {GroupSBend, PitchNone, PitchNone, RollNone, RollNone, 0},
	SBendRight:                              {GroupSBend, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftVerticalLoop:                        {GroupVerticalLoop, PitchUp25, PitchDown25, RollNone, RollNone, 0},
	RightVerticalLoop:                       {GroupVerticalLoop, PitchUp25, PitchDown25, RollNone, RollNone, 0},
	LeftQuarterTurn3Tiles:                   {GroupCurveSmall, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightQuarterTurn3Tiles:                  {GroupCurveSmall, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftBankedQuarterTurn3Tiles:             {GroupCurveSmall, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightBankedQuarterTurn3Tiles:            {GroupCurveSmall, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftQuarterTurn3TilesUp25:               {GroupSlopeCurve, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	RightQuarterTurn3TilesUp25:              {GroupSlopeCurve, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	LeftQuarterTurn3TilesDown25:             {GroupSlopeCurve, PitchDown25, PitchDown25, RollNone, RollNone, 32},
	RightQuarterTurn3TilesDown25:            {GroupSlopeCurve, PitchDown25, PitchDown25, RollNone, RollNone, 32},
	LeftQuarterTurn1Tile:                    {GroupCurveVerySmall, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightQuarterTurn1Tile:                   {GroupCurveVerySmall, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftTwistDownToUp:                       {GroupTwist, PitchNone, PitchNone, RollUpsideDown, RollNone, 0},
	RightTwistDownToUp:                      {GroupTwist, PitchNone, PitchNone, RollUpsideDown, RollNone, 0},
	LeftTwistUpToDown:                       {GroupTwist, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	RightTwistUpToDown:                      {GroupTwist, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	HalfLoopUp:                              {GroupHalfLoop, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	HalfLoopDown:                            {GroupHalfLoop, PitchNone, PitchDown25, RollUpsideDown, RollNone, 152},
	LeftCorkscrewUp:                         {GroupCorkscrew, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	RightCorkscrewUp:                        {GroupCorkscrew, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	LeftCorkscrewDown:                       {GroupCorkscrew, PitchNone, PitchNone, RollUpsideDown, RollNone, 32},
	RightCorkscrewDown:                      {GroupCorkscrew, PitchNone, PitchNone, RollUpsideDown, RollNone, 32},
	FlatToUp60:                              {GroupFlatToSteepSlope, PitchNone, PitchUp60, RollNone, RollNone, 0},
	Up60ToFlat:                              {GroupFlatToSteepSlope, PitchUp60, PitchNone, RollNone, RollNone, 0},
	FlatToDown60:                            {GroupFlatToSteepSlope, PitchNone, PitchDown60, RollNone, RollNone, 24},
	Down60ToFlat:                            {GroupFlatToSteepSlope, PitchDown60, PitchNone, RollNone, RollNone, 24},
	TowerBase:                               {GroupTower, PitchTower, PitchTower, RollNone, RollNone, 0},
	TowerSection:                            {GroupTower, PitchTower, PitchTower, RollNone, RollNone, 0},
	FlatCovered:                             {GroupFlat, PitchNone, PitchNone, RollNone, RollNone, 0},
	Up25Covered:                             {GroupSlope, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	Up60Covered:                             {GroupSlopeSteepUp, PitchUp60, PitchUp60, RollNone, RollNone, 0},
	FlatToUp25Covered:                       {GroupSlope, PitchNone, PitchUp25, RollNone, RollNone, 0},
	Up25ToUp60Covered:                       {GroupSlopeSteepUp, PitchUp25, PitchUp60, RollNone, RollNone, 0},
	Up60ToUp25Covered:                       {GroupSlopeSteepUp, PitchUp60, PitchUp25, RollNone, RollNone, 0},
	Up25ToFlatCovered:                       {GroupSlope, PitchUp25, PitchNone, RollNone, RollNone, 0},
	Down25Covered:                           {GroupSlope, PitchDown25, PitchDown25, RollNone, RollNone, 16},
	Down60Covered:                           {GroupSlopeSteepDown, PitchDown60, PitchDown60, RollNone, RollNone, 64},
	FlatToDown25Covered:                     {GroupSlope, PitchNone, PitchDown25, RollNone, RollNone, 8},
	Down25ToDown60Covered:                   {GroupSlopeSteepDown, PitchDown25, PitchDown60, RollNone, RollNone, 24},
	Down60ToDown25Covered:                   {GroupSlopeSteepDown, PitchDown60, PitchDown25, RollNone, RollNone, 24},
	Down25ToFlatCovered:                     {GroupSlope, PitchDown25, PitchNone, RollNone, RollNone, 8},
	LeftQuarterTurn5TilesCovered:            {GroupCurve, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightQuarterTurn5TilesCovered:           {GroupCurve, PitchNone, PitchNone, RollNone, RollNone, 0},
	SBendLeftCovered:                        {GroupSBend, PitchNone, PitchNone, RollNone, RollNone, 0},
	SBendRightCovered:                       {GroupSBend, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftQuarterTurn3TilesCovered:            {GroupCurveSmall, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightQuarterTurn3TilesCovered:           {GroupCurveSmall, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftHalfBankedHelixUpSmall:              {GroupHelixUpBankedHalf, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightHalfBankedHelixUpSmall:             {GroupHelixUpBankedHalf, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftHalfBankedHelixDownSmall:            {GroupHelixDownBankedHalf, PitchNone, PitchNone, RollLeft, RollLeft, 8},
	RightHalfBankedHelixDownSmall:           {GroupHelixDownBankedHalf, PitchNone, PitchNone, RollRight, RollRight, 8},
	LeftHalfBankedHelixUpLarge:              {GroupHelixUpBankedHalf, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightHalfBankedHelixUpLarge:             {GroupHelixUpBankedHalf, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftHalfBankedHelixDownLarge:            {GroupHelixDownBankedHalf, PitchNone, PitchNone, RollLeft, RollLeft, 16},
	RightHalfBankedHelixDownLarge:           {GroupHelixDownBankedHalf, PitchNone, PitchNone, RollRight, RollRight, 16},
	LeftQuarterTurn1TileUp60:                {GroupCurveVertical, PitchUp60, PitchUp60, RollNone, RollNone, 0},
	RightQuarterTurn1TileUp60:               {GroupCurveVertical, PitchUp60, PitchUp60, RollNone, RollNone, 0},
	LeftQuarterTurn1TileDown60:              {GroupCurveVertical, PitchDown60, PitchDown60, RollNone, RollNone, 64},
	RightQuarterTurn1TileDown60:             {GroupCurveVertical, PitchDown60, PitchDown60, RollNone, RollNone, 64},
	Brakes:                                  {GroupBrakes, PitchNone, PitchNone, RollNone, RollNone, 0},
	Booster:                                 {GroupBooster, PitchNone, PitchNone, RollNone, RollNone, 0},
	Maze:                                    {GroupFlat, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftQuarterBankedHelixLargeUp:           {GroupHelixUpBankedQuarter, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightQuarterBankedHelixLargeUp:          {GroupHelixUpBankedQuarter, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftQuarterBankedHelixLargeDown:         {GroupHelixDownBankedQuarter, PitchNone, PitchNone, RollLeft, RollLeft, 16},
	RightQuarterBankedHelixLargeDown:        {GroupHelixDownBankedQuarter, PitchNone, PitchNone, RollRight, RollRight, 16},
	LeftQuarterHelixLargeUp:                 {GroupHelixUpUnbankedQuarter, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightQuarterHelixLargeUp:                {GroupHelixUpUnbankedQuarter, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftQuarterHelixLargeDown:               {GroupHelixDownUnbankedQuarter, PitchNone, PitchNone, RollNone, RollNone, 16},
	RightQuarterHelixLargeDown:              {GroupHelixDownUnbankedQuarter, PitchNone, PitchNone, RollNone, RollNone, 16},
	Up25LeftBanked:                          {GroupSlopeRollBanking, PitchUp25, PitchUp25, RollLeft, RollLeft, 0},
	Up25RightBanked:                         {GroupSlopeRollBanking, PitchUp25, PitchUp25, RollRight, RollRight, 0},
	Waterfall:                               {GroupWaterfall, PitchNone, PitchNone, RollNone, RollNone, 0},
	Rapids:                                  {GroupRapids, PitchNone, PitchNone, RollNone, RollNone, 0},
	OnRidePhoto:                             {GroupOnRidePhoto, PitchNone, PitchNone, RollNone, RollNone, 0},
	Down25LeftBanked:                        {GroupSlopeRollBanking, PitchDown25, PitchDown25, RollLeft, RollLeft, 16},
	Down25RightBanked:                       {GroupSlopeRollBanking, PitchDown25, PitchDown25, RollRight, RollRight, 16},
	Watersplash:                             {GroupWatersplash, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatToUp60LongBase:                      {GroupSlopeLong, PitchNone, PitchUp60, RollNone, RollNone, 0},
	Up60ToFlatLongBase:                      {GroupSlopeLong, PitchUp60, PitchNone, RollNone, RollNone, 0},
	Whirlpool:                               {GroupWhirlpool, PitchNone, PitchNone, RollNone, RollNone, 0},
	Down60ToFlatLongBase:                    {GroupSlopeLong, PitchDown60, PitchNone, RollNone, RollNone, 56},
	FlatToDown60LongBase:                    {GroupSlopeLong, PitchNone, PitchDown60, RollNone, RollNone, 56},
	CableLiftHill:                           {GroupLiftHillCable, PitchUp60, PitchUp60, RollNone, RollNone, 0},
	ReverseFreefallSlope:                    {GroupReverseFreefall, PitchNone, PitchUp90, RollNone, RollNone, 0},
	ReverseFreefallVertical:                 {GroupReverseFreefall, PitchUp90, PitchUp90, RollNone, RollNone, 0},
	Up90:                                    {GroupSlopeVertical, PitchUp90, PitchUp90, RollNone, RollNone, 0},
	Down90:                                  {GroupSlopeVertical, PitchDown90, PitchDown90, RollNone, RollNone, 32},
	Up60ToUp90:                              {GroupSlopeVertical, PitchUp60, PitchUp90, RollNone, RollNone, 0},
	Down90ToDown60:                          {GroupSlopeVertical, PitchDown90, PitchDown60, RollNone, RollNone, 56},
	Up90ToUp60:                              {GroupSlopeVertical, PitchUp90, PitchUp60, RollNone, RollNone, 0},
	Down60ToDown90:                          {GroupSlopeVertical, PitchDown60, PitchDown90, RollNone, RollNone, 56},
	BrakeForDrop:                            {GroupBrakeForDrop, PitchNone, PitchDown25, RollNone, RollNone, 8},
	LeftEighthToDiag:                        {GroupCurveLarge, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightEighthToDiag:                       {GroupCurveLarge, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftEighthToOrthogonal:                  {GroupCurveLarge, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightEighthToOrthogonal:                 {GroupCurveLarge, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftEighthBankToDiag:                    {GroupCurveLargeBanked, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightEighthBankToDiag:                   {GroupCurveLargeBanked, PitchNone, PitchNone, RollRight, RollRight, 0},
	LeftEighthBankToOrthogonal:              {GroupCurveLargeBanked, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	RightEighthBankToOrthogonal:             {GroupCurveLargeBanked, PitchNone, PitchNone, RollRight, RollRight, 0},
	DiagFlat:                                {GroupDiagonal, PitchNone, PitchNone, RollNone, RollNone, 0},
	DiagUp25:                                {GroupDiagonal, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	DiagUp60:                                {GroupDiagonal, PitchUp60, PitchUp60, RollNone, RollNone, 0},
	DiagFlatToUp25:                          {GroupDiagonal, PitchNone, PitchUp25, RollNone, RollNone, 0},
	DiagUp25ToUp60:                          {GroupDiagonal, PitchUp25, PitchUp60, RollNone, RollNone, 0},
	DiagUp60ToUp25:                          {GroupDiagonal, PitchUp60, PitchUp25, RollNone, RollNone, 0},
	DiagUp25ToFlat:                          {GroupDiagonal, PitchUp25, PitchNone, RollNone, RollNone, 0},
	DiagDown25:                              {GroupDiagonal, PitchDown25, PitchDown25, RollNone, RollNone, 32},
	DiagDown60:                              {GroupDiagonal, PitchDown60, PitchDown60, RollNone, RollNone, 96},
	DiagFlatToDown25:                        {GroupDiagonal, PitchNone, PitchDown25, RollNone, RollNone, 16},
	DiagDown25ToDown60:                      {GroupDiagonal, PitchDown25, PitchDown60, RollNone, RollNone, 48},
	DiagDown60ToDown25:                      {GroupDiagonal, PitchDown60, PitchDown25, RollNone, RollNone, 48},
	DiagDown25ToFlat:                        {GroupDiagonal, PitchDown25, PitchNone, RollNone, RollNone, 16},
	DiagFlatToUp60:                          {GroupDiagonal, PitchNone, PitchUp60, RollNone, RollNone, 0},
	DiagUp60ToFlat:                          {GroupDiagonal, PitchUp60, PitchNone, RollNone, RollNone, 0},
	DiagFlatToDown60:                        {GroupDiagonal, PitchNone, PitchDown60, RollNone, RollNone, 32},
	DiagDown60ToFlat:                        {GroupDiagonal, PitchDown60, PitchNone, RollNone, RollNone, 32},
	DiagFlatToLeftBank:                      {GroupDiagonal, PitchNone, PitchNone, RollNone, RollLeft, 0},
	DiagFlatToRightBank:                     {GroupDiagonal, PitchNone, PitchNone, RollNone, RollRight, 0},
	DiagLeftBankToFlat:                      {GroupDiagonal, PitchNone, PitchNone, RollLeft, RollNone, 0},
	DiagRightBankToFlat:                     {GroupDiagonal, PitchNone, PitchNone, RollRight, RollNone, 0},
	DiagLeftBankToUp25:                      {GroupDiagonal, PitchNone, PitchUp25, RollLeft, RollNone, 0},
	DiagRightBankToUp25:                     {GroupDiagonal, PitchNone, PitchUp25, RollRight, RollNone, 0},
	DiagUp25ToLeftBank:                      {GroupDiagonal, PitchUp25, PitchNone, RollNone, RollLeft, 0},
	DiagUp25ToRightBank:                     {GroupDiagonal, PitchUp25, PitchNone, RollNone, RollRight, 0},
	DiagLeftBankToDown25:                    {GroupDiagonal, PitchNone, PitchDown25, RollLeft, RollNone, 16},
	DiagRightBankToDown25:                   {GroupDiagonal, PitchNone, PitchDown25, RollRight, RollNone, 16},
	DiagDown25ToLeftBank:                    {GroupDiagonal, PitchDown25, PitchNone, RollNone, RollLeft, 16},
	DiagDown25ToRightBank:                   {GroupDiagonal, PitchDown25, PitchNone, RollNone, RollRight, 16},
	DiagLeftBank:                            {GroupDiagonal, PitchNone, PitchNone, RollLeft, RollLeft, 0},
	DiagRightBank:                           {GroupDiagonal, PitchNone, PitchNone, RollRight, RollRight, 0},
	LogFlumeReverser:                        {GroupLogFlumeReverser, PitchNone, PitchNone, RollNone, RollNone, 0},
	SpinningTunnel:                          {GroupSpinningTunnel, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftBarrelRollUpToDown:                  {GroupBarrelRoll, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	RightBarrelRollUpToDown:                 {GroupBarrelRoll, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	LeftBarrelRollDownToUp:                  {GroupBarrelRoll, PitchNone, PitchNone, RollUpsideDown, RollNone, 0},
	RightBarrelRollDownToUp:                 {GroupBarrelRoll, PitchNone, PitchNone, RollUpsideDown, RollNone, 0},
	LeftBankToLeftQuarterTurn3TilesUp25:     {GroupSlopeCurveBanked, PitchNone, PitchUp25, RollLeft, RollNone, 0},
	RightBankToRightQuarterTurn3TilesUp25:   {GroupSlopeCurveBanked, PitchNone, PitchUp25, RollRight, RollNone, 0},
	LeftQuarterTurn3TilesDown25ToLeftBank:   {GroupSlopeCurveBanked, PitchDown25, PitchNone, RollNone, RollLeft, 32},
	RightQuarterTurn3TilesDown25ToRightBank: {GroupSlopeCurveBanked, PitchDown25, PitchNone, RollNone, RollRight, 32},
	PoweredLift:                             {GroupPoweredLift, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	LeftLargeHalfLoopUp:                     {GroupHalfLoopLarge, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	RightLargeHalfLoopUp:                    {GroupHalfLoopLarge, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	RightLargeHalfLoopDown:                  {GroupHalfLoopLarge, PitchNone, PitchDown25, RollUpsideDown, RollNone, 280},
	LeftLargeHalfLoopDown:                   {GroupHalfLoopLarge, PitchNone, PitchDown25, RollUpsideDown, RollNone, 280},
	LeftFlyerTwistUp:                        {GroupFlyingTwist, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	RightFlyerTwistUp:                       {GroupFlyingTwist, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	LeftFlyerTwistDown:                      {GroupFlyingTwist, PitchNone, PitchNone, RollUpsideDown, RollNone, 0},
	RightFlyerTwistDown:                     {GroupFlyingTwist, PitchNone, PitchNone, RollUpsideDown, RollNone, 0},
	FlyerHalfLoopUninvertedUp:               {GroupFlyingHalfLoopUninvertedUp, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	FlyerHalfLoopInvertedDown:               {GroupFlyingHalfLoopInvertedDown, PitchNone, PitchDown25, RollUpsideDown, RollNone, 152},
	LeftFlyerCorkscrewUp:                    {GroupFlyingCorkscrew, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	RightFlyerCorkscrewUp:                   {GroupFlyingCorkscrew, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	LeftFlyerCorkscrewDown:                  {GroupFlyingCorkscrew, PitchNone, PitchNone, RollUpsideDown, RollNone, 32},
	RightFlyerCorkscrewDown:                 {GroupFlyingCorkscrew, PitchNone, PitchNone, RollUpsideDown, RollNone, 32},
	HeartLineTransferUp:                     {GroupHeartlineTransfer, PitchNone, PitchNone, RollNone, RollNone, 0},
	HeartLineTransferDown:                   {GroupHeartlineTransfer, PitchNone, PitchNone, RollNone, RollNone, 32},
	LeftHeartLineRoll:                       {GroupHeartlineRoll, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightHeartLineRoll:                      {GroupHeartlineRoll, PitchNone, PitchNone, RollNone, RollNone, 0},
	MinigolfHoleA:                           {GroupMinigolfHole, PitchNone, PitchNone, RollNone, RollNone, 0},
	MinigolfHoleB:                           {GroupMinigolfHole, PitchNone, PitchNone, RollNone, RollNone, 0},
	MinigolfHoleC:                           {GroupMinigolfHole, PitchNone, PitchNone, RollNone, RollNone, 0},
	MinigolfHoleD:                           {GroupMinigolfHole, PitchNone, PitchNone, RollNone, RollNone, 0},
	MinigolfHoleE:                           {GroupMinigolfHole, PitchNone, PitchNone, RollNone, RollNone, 0},
	MultiDimInvertedFlatToDown90QuarterLoop: {GroupQuarterLoop, PitchNone, PitchDown90, RollUpsideDown, RollNone, 96},
	Up90ToInvertedFlatQuarterLoop:           {GroupQuarterLoop, PitchUp90, PitchNone, RollNone, RollUpsideDown, 0},
	InvertedFlatToDown90QuarterLoop:         {GroupQuarterLoop, PitchNone, PitchDown90, RollUpsideDown, RollNone, 96},
	LeftCurvedLiftHill:                      {GroupLiftHillCurve, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	RightCurvedLiftHill:                     {GroupLiftHillCurve, PitchUp25, PitchUp25, RollNone, RollNone, 0},
	LeftReverser:                            {GroupReverser, PitchNone, PitchNone, RollNone, RollNone, 0},
	RightReverser:                           {GroupReverser, PitchNone, PitchNone, RollNone, RollNone, 0},
	AirThrustTopCap:                         {GroupAirThrustTopCap, PitchUp90, PitchDown90, RollNone, RollNone, 0},
	AirThrustVerticalDown:                   {GroupAirThrustVerticalDown, PitchDown90, PitchDown90, RollNone, RollNone, 32},
	AirThrustVerticalDownToLevel:            {GroupAirThrustVerticalDown, PitchDown90, PitchNone, RollNone, RollNone, 112},
	BlockBrakes:                             {GroupBlockBrakes, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftBankedQuarterTurn3TileUp25:          {GroupSlopeCurveBanked, PitchUp25, PitchUp25, RollLeft, RollLeft, 0},
	RightBankedQuarterTurn3TileUp25:         {GroupSlopeCurveBanked, PitchUp25, PitchUp25, RollRight, RollRight, 0},
	LeftBankedQuarterTurn3TileDown25:        {GroupSlopeCurveBanked, PitchDown25, PitchDown25, RollLeft, RollLeft, 32},
	RightBankedQuarterTurn3TileDown25:       {GroupSlopeCurveBanked, PitchDown25, PitchDown25, RollRight, RollRight, 32},
	LeftBankedQuarterTurn5TileUp25:          {GroupSlopeCurveBanked, PitchUp25, PitchUp25, RollLeft, RollLeft, 0},
	RightBankedQuarterTurn5TileUp25:         {GroupSlopeCurveBanked, PitchUp25, PitchUp25, RollRight, RollRight, 0},
	LeftBankedQuarterTurn5TileDown25:        {GroupSlopeCurveBanked, PitchDown25, PitchDown25, RollLeft, RollLeft, 64},
	RightBankedQuarterTurn5TileDown25:       {GroupSlopeCurveBanked, PitchDown25, PitchDown25, RollRight, RollRight, 64},
	Up25ToLeftBankedUp25:                    {GroupSlopeRollBanking, PitchUp25, PitchUp25, RollNone, RollLeft, 0},
	Up25ToRightBankedUp25:                   {GroupSlopeRollBanking, PitchUp25, PitchUp25, RollNone, RollRight, 0},
	LeftBankedUp25ToUp25:                    {GroupSlopeRollBanking, PitchUp25, PitchUp25, RollLeft, RollNone, 0},
	RightBankedUp25ToUp25:                   {GroupSlopeRollBanking, PitchUp25, PitchUp25, RollRight, RollNone, 0},
	Down25ToLeftBankedDown25:                {GroupSlopeRollBanking, PitchDown25, PitchDown25, RollNone, RollLeft, 16},
	Down25ToRightBankedDown25:               {GroupSlopeRollBanking, PitchDown25, PitchDown25, RollNone, RollRight, 16},
	LeftBankedDown25ToDown25:                {GroupSlopeRollBanking, PitchDown25, PitchDown25, RollLeft, RollNone, 16},
	RightBankedDown25ToDown25:               {GroupSlopeRollBanking, PitchDown25, PitchDown25, RollRight, RollNone, 16},
	LeftBankedFlatToLeftBankedUp25:          {GroupSlopeRollBanking, PitchNone, PitchUp25, RollLeft, RollLeft, 0},
	RightBankedFlatToRightBankedUp25:        {GroupSlopeRollBanking, PitchNone, PitchUp25, RollRight, RollRight, 0},
	LeftBankedUp25ToLeftBankedFlat:          {GroupSlopeRollBanking, PitchUp25, PitchNone, RollLeft, RollLeft, 0},
	RightBankedUp25ToRightBankedFlat:        {GroupSlopeRollBanking, PitchUp25, PitchNone, RollRight, RollRight, 0},
	LeftBankedFlatToLeftBankedDown25:        {GroupSlopeRollBanking, PitchNone, PitchDown25, RollLeft, RollLeft, 8},
	RightBankedFlatToRightBankedDown25:      {GroupSlopeRollBanking, PitchNone, PitchDown25, RollRight, RollRight, 8},
	LeftBankedDown25ToLeftBankedFlat:        {GroupSlopeRollBanking, PitchDown25, PitchNone, RollLeft, RollLeft, 8},
	RightBankedDown25ToRightBankedFlat:      {GroupSlopeRollBanking, PitchDown25, PitchNone, RollRight, RollRight, 8},
	FlatToLeftBankedUp25:                    {GroupSlopeRollBanking, PitchNone, PitchUp25, RollNone, RollLeft, 0},
	FlatToRightBankedUp25:                   {GroupSlopeRollBanking, PitchNone, PitchUp25, RollNone, RollRight, 0},
	LeftBankedUp25ToFlat:                    {GroupSlopeRollBanking, PitchUp25, PitchNone, RollLeft, RollNone, 0},
	RightBankedUp25ToFlat:                   {GroupSlopeRollBanking, PitchUp25, PitchNone, RollRight, RollNone, 0},
	FlatToLeftBankedDown25:                  {GroupSlopeRollBanking, PitchNone, PitchDown25, RollNone, RollLeft, 8},
	FlatToRightBankedDown25:                 {GroupSlopeRollBanking, PitchNone, PitchDown25, RollNone, RollRight, 8},
	LeftBankedDown25ToFlat:                  {GroupSlopeRollBanking, PitchDown25, PitchNone, RollLeft, RollNone, 8},
	RightBankedDown25ToFlat:                 {GroupSlopeRollBanking, PitchDown25, PitchNone, RollRight, RollNone, 8},
	LeftQuarterTurn1TileUp90:                {GroupCurveVertical, PitchUp90, PitchUp90, RollNone, RollNone, 0},
	RightQuarterTurn1TileUp90:               {GroupCurveVertical, PitchUp90, PitchUp90, RollNone, RollNone, 0},
	LeftQuarterTurn1TileDown90:              {GroupCurveVertical, PitchDown90, PitchDown90, RollNone, RollNone, 32},
	RightQuarterTurn1TileDown90:             {GroupCurveVertical, PitchDown90, PitchDown90, RollNone, RollNone, 32},
	MultiDimUp90ToInvertedFlatQuarterLoop:   {GroupQuarterLoop, PitchUp90, PitchNone, RollNone, RollUpsideDown, 0},
	MultiDimFlatToDown90QuarterLoop:         {GroupQuarterLoop, PitchNone, PitchDown90, RollNone, RollNone, 96},
	MultiDimInvertedUp90ToFlatQuarterLoop:   {GroupQuarterLoop, PitchUp90, PitchNone, RollNone, RollNone, 0},
	RotationControlToggle:                   {GroupRotationControlToggle, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack1x4A:                           {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack2x2:                            {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack4x4:                            {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack2x4:                            {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack1x5:                            {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack1x1A:                           {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack1x4B:                           {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack1x1B:                           {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack1x4C:                           {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	FlatTrack3x3:                            {GroupFlatRideBase, PitchNone, PitchNone, RollNone, RollNone, 0},
	LeftLargeCorkscrewUp:                    {GroupCorkscrewLarge, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	RightLargeCorkscrewUp:                   {GroupCorkscrewLarge, PitchNone, PitchNone, RollNone, RollUpsideDown, 0},
	LeftLargeCorkscrewDown:                  {GroupCorkscrewLarge, PitchNone, PitchNone, RollUpsideDown, RollNone, 64},
	RightLargeCorkscrewDown:                 {GroupCorkscrewLarge, PitchNone, PitchNone, RollUpsideDown, RollNone, 64},
	LeftMediumHalfLoopUp:                    {GroupHalfLoopMedium, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	RightMediumHalfLoopUp:                   {GroupHalfLoopMedium, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	LeftMediumHalfLoopDown:                  {GroupHalfLoopMedium, PitchNone, PitchDown25, RollUpsideDown, RollNone, 216},
	RightMediumHalfLoopDown:                 {GroupHalfLoopMedium, PitchNone, PitchDown25, RollUpsideDown, RollNone, 216},
	LeftZeroGRollUp:                         {GroupZeroGRoll, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	RightZeroGRollUp:                        {GroupZeroGRoll, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	LeftZeroGRollDown:                       {GroupZeroGRoll, PitchNone, PitchDown25, RollUpsideDown, RollNone, 56},
	RightZeroGRollDown:                      {GroupZeroGRoll, PitchNone, PitchDown25, RollUpsideDown, RollNone, 56},
	LeftLargeZeroGRollUp:                    {GroupZeroGRollLarge, PitchUp60, PitchNone, RollNone, RollUpsideDown, 0},
	RightLargeZeroGRollUp:                   {GroupZeroGRollLarge, PitchUp60, PitchNone, RollNone, RollUpsideDown, 0},
	LeftLargeZeroGRollDown:                  {GroupZeroGRollLarge, PitchNone, PitchDown60, RollUpsideDown, RollNone, 152},
	RightLargeZeroGRollDown:                 {GroupZeroGRollLarge, PitchNone, PitchDown60, RollUpsideDown, RollNone, 152},
	LeftFlyerLargeHalfLoopUninvertedUp:      {GroupFlyingLargeHalfLoopUninvertedUp, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	RightFlyerLargeHalfLoopUninvertedUp:     {GroupFlyingLargeHalfLoopUninvertedUp, PitchUp25, PitchNone, RollNone, RollUpsideDown, 0},
	LeftFlyerLargeHalfLoopInvertedDown:      {GroupFlyingLargeHalfLoopInvertedDown, PitchNone, PitchDown25, RollUpsideDown, RollNone, 280},
	RightFlyerLargeHalfLoopInvertedDown:     {GroupFlyingLargeHalfLoopInvertedDown, PitchNone, PitchDown25, RollUpsideDown, RollNone, 280},
	LeftFlyerLargeHalfLoopInvertedUp:        {GroupFlyingLargeHalfLoopInvertedUp, PitchUp25, PitchNone, RollUpsideDown, RollNone, 0},
	RightFlyerLargeHalfLoopInvertedUp:       {GroupFlyingLargeHalfLoopInvertedUp, PitchUp25, PitchNone, RollUpsideDown, RollNone, 0},
	LeftFlyerLargeHalfLoopUninvertedDown:    {GroupFlyingLargeHalfLoopUninvertedDown, PitchNone, PitchDown25, RollNone, RollUpsideDown, 280},
	RightFlyerLargeHalfLoopUninvertedDown:   {GroupFlyingLargeHalfLoopUninvertedDown, PitchNone, PitchDown25, RollNone, RollUpsideDown, 280},
	FlyerHalfLoopInvertedUp:                 {GroupFlyingHalfLoopInvertedUp, PitchUp25, PitchNone, RollUpsideDown, RollNone, 0},
	FlyerHalfLoopUninvertedDown:             {GroupFlyingHalfLoopUninvertedDown, PitchNone, PitchDown25, RollNone, RollUpsideDown, 152},
	DiagBrakes:                              {GroupDiagBrakes, PitchNone, PitchNone, RollNone, RollNone, 0},
	DiagBlockBrakes:                         {GroupDiagBlockBrakes, PitchNone, PitchNone, RollNone, RollNone, 0},
	Down25Brakes:                            {GroupInclinedBrakes, PitchDown25, PitchDown25, RollNone, RollNone, 16},
	DiagBooster:                             {GroupDiagBooster, PitchNone, PitchNone, RollNone, RollNone, 0},
}

// SpinFunction selects how a free-spinning vehicle rotates while on an element.
type SpinFunction uint8

const (
	SpinNone SpinFunction = iota
	SpinL8
	SpinR8
	SpinLR
	SpinRL
	SpinL7
	SpinR7
	SpinL5
	SpinR5
	// SpinRC toggles rotation control.
	SpinRC
	// SpinSP spins the vehicle continuously.
	SpinSP
	SpinL9
	SpinR9
)

var spinNames = [...]string{"none", "l8", "r8", "lr", "rl", "l7", "r7", "l5", "r5", "rc", "sp", "l9", "r9"}

func (s SpinFunction) String() string {
	if int(s) >= len(spinNames) {
		return fmt.Sprintf("SpinFunction(%d)", uint8(s))
	}
	return spinNames[s]
}

var spinTable = [ElemTypeCount]SpinFunction{
	Flat:                                    SpinNone,
	EndStation:                              SpinNone,
	BeginStation:                            SpinNone,
	MiddleStation:                           SpinNone,
	Up25:                                    SpinNone,
	Up60:                                    SpinNone,
	FlatToUp25:                              SpinNone,
	Up25ToUp60:                              SpinNone,
	Up60ToUp25:                              SpinNone,
	Up25ToFlat:                              SpinNone,
	Down25:                                  SpinNone,
	Down60:                                  SpinNone,
	FlatToDown25:                            SpinNone,
	Down25ToDown60:                          SpinNone,
	Down60ToDown25:                          SpinNone,
	Down25ToFlat:                            SpinNone,
	LeftQuarterTurn5Tiles:                   SpinL8,
	RightQuarterTurn5Tiles:                  SpinR8,
	FlatToLeftBank:                          SpinNone,
	FlatToRightBank:                         SpinNone,
	LeftBankToFlat:                          SpinNone,
	RightBankToFlat:                         SpinNone,
	BankedLeftQuarterTurn5Tiles:             SpinL8,
	BankedRightQuarterTurn5Tiles:            SpinR8,
	LeftBankToUp25:                          SpinNone,
	RightBankToUp25:                         SpinNone,
	Up25ToLeftBank:                          SpinNone,
	Up25ToRightBank:                         SpinNone,
	LeftBankToDown25:                        SpinNone,
	RightBankToDown25:                       SpinNone,
	Down25ToLeftBank:                        SpinNone,
	Down25ToRightBank:                       SpinNone,
	LeftBank:                                SpinNone,
	RightBank:                               SpinNone,
	LeftQuarterTurn5TilesUp25:               SpinL8,
	RightQuarterTurn5TilesUp25:              SpinR8,
	LeftQuarterTurn5TilesDown25:             SpinL8,
	RightQuarterTurn5TilesDown25:            SpinR8,
	SBendLeft:                               SpinLR,
	SBendRight:                              SpinRL,
	LeftVerticalLoop:                        SpinNone,
	RightVerticalLoop:                       SpinNone,
	LeftQuarterTurn3Tiles:                   SpinL7,
	RightQuarterTurn3Tiles:                  SpinR7,
	LeftBankedQuarterTurn3Tiles:             SpinL7,
	RightBankedQuarterTurn3Tiles:            SpinR7,
	LeftQuarterTurn3TilesUp25:               SpinL7,
	RightQuarterTurn3TilesUp25:              SpinR7,
	LeftQuarterTurn3TilesDown25:             SpinL7,
	RightQuarterTurn3TilesDown25:            SpinR7,
	LeftQuarterTurn1Tile:                    SpinL5,
	RightQuarterTurn1Tile:                   SpinR5,
	LeftTwistDownToUp:                       SpinNone,
	RightTwistDownToUp:                      SpinNone,
	LeftTwistUpToDown:                       SpinNone,
	RightTwistUpToDown:                      SpinNone,
	HalfLoopUp:                              SpinNone,
	HalfLoopDown:                            SpinNone,
	LeftCorkscrewUp:                         SpinNone,
	RightCorkscrewUp:                        SpinNone,
	LeftCorkscrewDown:                       SpinNone,
	RightCorkscrewDown:                      SpinNone,
	FlatToUp60:                              SpinNone,
	Up60ToFlat:                              SpinNone,
	FlatToDown60:                            SpinNone,
	Down60ToFlat:                            SpinNone,
	TowerBase:                               SpinNone,
	TowerSection:                            SpinNone,
	FlatCovered:                             SpinNone,
	Up25Covered:                             SpinNone,
	Up60Covered:                             SpinNone,
	FlatToUp25Covered:                       SpinNone,
	Up25ToUp60Covered:                       SpinNone,
	Up60ToUp25Covered:                       SpinNone,
	Up25ToFlatCovered:                       SpinNone,
	Down25Covered:                           SpinNone,
	Down60Covered:                           SpinNone,
	FlatToDown25Covered:                     SpinNone,
	Down25ToDown60Covered:                   SpinNone,
	Down60ToDown25Covered:                   SpinNone,
	Down25ToFlatCovered:                     SpinNone,
	LeftQuarterTurn5TilesCovered:            SpinL8,
	RightQuarterTurn5TilesCovered:           SpinR8,
	SBendLeftCovered:                        SpinLR,
	SBendRightCovered:                       SpinRL,
	LeftQuarterTurn3TilesCovered:            SpinL7,
	RightQuarterTurn3TilesCovered:           SpinR7,
	LeftHalfBankedHelixUpSmall:              SpinL9,
	RightHalfBankedHelixUpSmall:             SpinR9,
	LeftHalfBankedHelixDownSmall:            SpinL9,
	RightHalfBankedHelixDownSmall:           SpinR9,
	LeftHalfBankedHelixUpLarge:              SpinL9,
	RightHalfBankedHelixUpLarge:             SpinR9,
	LeftHalfBankedHelixDownLarge:            SpinL9,
	RightHalfBankedHelixDownLarge:           SpinR9,
	LeftQuarterTurn1TileUp60:                SpinL5,
	RightQuarterTurn1TileUp60:               SpinR5,
	LeftQuarterTurn1TileDown60:              SpinL5,
	RightQuarterTurn1TileDown60:             SpinR5,
	Brakes:                                  SpinNone,
	Booster:                                 SpinNone,
	Maze:                                    SpinNone,
	LeftQuarterBankedHelixLargeUp:           SpinL8,
	RightQuarterBankedHelixLargeUp:          SpinR8,
	LeftQuarterBankedHelixLargeDown:         SpinL8,
	RightQuarterBankedHelixLargeDown:        SpinR8,
	LeftQuarterHelixLargeUp:                 SpinL8,
	RightQuarterHelixLargeUp:                SpinR8,
	LeftQuarterHelixLargeDown:               SpinL8,
	RightQuarterHelixLargeDown:              SpinR8,
	Up25LeftBanked:                          SpinNone,
	Up25RightBanked:                         SpinNone,
	Waterfall:                               SpinNone,
	Rapids:                                  SpinNone,
	OnRidePhoto:                             SpinNone,
	Down25LeftBanked:                        SpinNone,
	Down25RightBanked:                       SpinNone,
	Watersplash:                             SpinNone,
	FlatToUp60LongBase:                      SpinNone,
	Up60ToFlatLongBase:                      SpinNone,
	Whirlpool:                               SpinNone,
	Down60ToFlatLongBase:                    SpinNone,
	FlatToDown60LongBase:                    SpinNone,
	CableLiftHill:                           SpinNone,
	ReverseFreefallSlope:                    SpinNone,
	ReverseFreefallVertical:                 SpinNone,
	Up90:                                    SpinNone,
	Down90:                                  SpinNone,
	Up60ToUp90:                              SpinNone,
	Down90ToDown60:                          SpinNone,
	Up90ToUp60:                              SpinNone,
	Down60ToDown90:                          SpinNone,
	BrakeForDrop:                            SpinNone,
	LeftEighthToDiag:                        SpinNone,
	RightEighthToDiag:                       SpinNone,
	LeftEighthToOrthogonal:                  SpinNone,
	RightEighthToOrthogonal:                 SpinNone,
	LeftEighthBankToDiag:                    SpinNone,
	RightEighthBankToDiag:                   SpinNone,
	LeftEighthBankToOrthogonal:              SpinNone,
	RightEighthBankToOrthogonal:             SpinNone,
	DiagFlat:                                SpinNone,
	DiagUp25:                                SpinNone,
	DiagUp60:                                SpinNone,
	DiagFlatToUp25:                          SpinNone,
	DiagUp25ToUp60:                          SpinNone,
	DiagUp60ToUp25:                          SpinNone,
	DiagUp25ToFlat:                          SpinNone,
	DiagDown25:                              SpinNone,
	DiagDown60:                              SpinNone,
	DiagFlatToDown25:                        SpinNone,
	DiagDown25ToDown60:                      SpinNone,
	DiagDown60ToDown25:                      SpinNone,
	DiagDown25ToFlat:                        SpinNone,
	DiagFlatToUp60:                          SpinNone,
	DiagUp60ToFlat:                          SpinNone,
	DiagFlatToDown60:                        SpinNone,
	DiagDown60ToFlat:                        SpinNone,
	DiagFlatToLeftBank:                      SpinNone,
	DiagFlatToRightBank:                     SpinNone,
	DiagLeftBankToFlat:                      SpinNone,
	DiagRightBankToFlat:                     SpinNone,
	DiagLeftBankToUp25:                      SpinNone,
	DiagRightBankToUp25:                     SpinNone,
	DiagUp25ToLeftBank:                      SpinNone,
	DiagUp25ToRightBank:                     SpinNone,
	DiagLeftBankToDown25:                    SpinNone,
	DiagRightBankToDown25:                   SpinNone,
	DiagDown25ToLeftBank:                    SpinNone,
	DiagDown25ToRightBank:                   SpinNone,
	DiagLeftBank:                            SpinNone,
	DiagRightBank:                           SpinNone,
	LogFlumeReverser:                        SpinNone,
	SpinningTunnel:                          SpinSP,
	LeftBarrelRollUpToDown:                  SpinNone,
	RightBarrelRollUpToDown:                 SpinNone,
	LeftBarrelRollDownToUp:                  SpinNone,
	RightBarrelRollDownToUp:                 SpinNone,
	LeftBankToLeftQuarterTurn3TilesUp25:     SpinL7,
	RightBankToRightQuarterTurn3TilesUp25:   SpinR7,
	LeftQuarterTurn3TilesDown25ToLeftBank:   SpinL7,
	RightQuarterTurn3TilesDown25ToRightBank: SpinR7,
	PoweredLift:                             SpinNone,
	LeftLargeHalfLoopUp:                     SpinNone,
	RightLargeHalfLoopUp:                    SpinNone,
	RightLargeHalfLoopDown:                  SpinNone,
	LeftLargeHalfLoopDown:                   SpinNone,
	LeftFlyerTwistUp:                        SpinNone,
	RightFlyerTwistUp:                       SpinNone,
	LeftFlyerTwistDown:                      SpinNone,
	RightFlyerTwistDown:                     SpinNone,
	FlyerHalfLoopUninvertedUp:               SpinNone,
	FlyerHalfLoopInvertedDown:               SpinNone,
	LeftFlyerCorkscrewUp:                    SpinNone,
	RightFlyerCorkscrewUp:                   SpinNone,
	LeftFlyerCorkscrewDown:                  SpinNone,
	RightFlyerCorkscrewDown:                 SpinNone,
	HeartLineTransferUp:                     SpinNone,
	HeartLineTransferDown:                   SpinNone,
	LeftHeartLineRoll:                       SpinNone,
	RightHeartLineRoll:                      SpinNone,
	MinigolfHoleA:                           SpinNone,
	MinigolfHoleB:                           SpinNone,
	MinigolfHoleC:                           SpinNone,
	MinigolfHoleD:                           SpinNone,
	MinigolfHoleE:                           SpinNone,
	MultiDimInvertedFlatToDown90QuarterLoop: SpinNone,
	Up90ToInvertedFlatQuarterLoop:           SpinNone,
	InvertedFlatToDown90QuarterLoop:         SpinNone,
	LeftCurvedLiftHill:                      SpinL7,
	RightCurvedLiftHill:                     SpinR7,
	LeftReverser:                            SpinNone,
	RightReverser:                           SpinNone,
	AirThrustTopCap:                         SpinNone,
	AirThrustVerticalDown:                   SpinNone,
	AirThrustVerticalDownToLevel:            SpinNone,
	BlockBrakes:                             SpinNone,
	LeftBankedQuarterTurn3TileUp25:          SpinL7,
	RightBankedQuarterTurn3TileUp25:         SpinR7,
	LeftBankedQuarterTurn3TileDown25:        SpinL7,
	RightBankedQuarterTurn3TileDown25:       SpinR7,
	LeftBankedQuarterTurn5TileUp25:          SpinL8,
	RightBankedQuarterTurn5TileUp25:         SpinR8,
	LeftBankedQuarterTurn5TileDown25:        SpinL8,
	RightBankedQuarterTurn5TileDown25:       SpinR8,
	Up25ToLeftBankedUp25:                    SpinNone,
	Up25ToRightBankedUp25:                   SpinNone,
	LeftBankedUp25ToUp25:                    SpinNone,
	RightBankedUp25ToUp25:                   SpinNone,
	Down25ToLeftBankedDown25:                SpinNone,
	Down25ToRightBankedDown25:               SpinNone,
	LeftBankedDown25ToDown25:                SpinNone,
	RightBankedDown25ToDown25:               SpinNone,
	LeftBankedFlatToLeftBankedUp25:          SpinNone,
	RightBankedFlatToRightBankedUp25:        SpinNone,
	LeftBankedUp25ToLeftBankedFlat:          SpinNone,
	RightBankedUp25ToRightBankedFlat:        SpinNone,
	LeftBankedFlatToLeftBankedDown25:        SpinNone,
	RightBankedFlatToRightBankedDown25:      SpinNone,
	LeftBankedDown25ToLeftBankedFlat:        SpinNone,
	RightBankedDown25ToRightBankedFlat:      SpinNone,
	FlatToLeftBankedUp25:                    SpinNone,
	FlatToRightBankedUp25:                   SpinNone,
	LeftBankedUp25ToFlat:                    SpinNone,
	RightBankedUp25ToFlat:                   SpinNone,
	FlatToLeftBankedDown25:                  SpinNone,
	FlatToRightBankedDown25:                 SpinNone,
	LeftBankedDown25ToFlat:                  SpinNone,
	RightBankedDown25ToFlat:                 SpinNone,
	LeftQuarterTurn1TileUp90:                SpinL5,
	RightQuarterTurn1TileUp90:               SpinR5,
	LeftQuarterTurn1TileDown90:              SpinL5,
	RightQuarterTurn1TileDown90:             SpinR5,
	MultiDimUp90ToInvertedFlatQuarterLoop:   SpinNone,
	MultiDimFlatToDown90QuarterLoop:         SpinNone,
	MultiDimInvertedUp90ToFlatQuarterLoop:   SpinNone,
	RotationControlToggle:                   SpinRC,
	FlatTrack1x4A:                           SpinNone,
	FlatTrack2x2:                            SpinNone,
	FlatTrack4x4:                            SpinNone,
	FlatTrack2x4:                            SpinNone,
	FlatTrack1x5:                            SpinNone,
	FlatTrack1x1A:                           SpinNone,
	FlatTrack1x4B:                           SpinNone,
	FlatTrack1x1B:                           SpinNone,
	FlatTrack1x4C:                           SpinNone,
	FlatTrack3x3:                            SpinNone,
	LeftLargeCorkscrewUp:                    SpinNone,
	RightLargeCorkscrewUp:                   SpinNone,
	LeftLargeCorkscrewDown:                  SpinNone,
	RightLargeCorkscrewDown:                 SpinNone,
	LeftMediumHalfLoopUp:                    SpinNone,
	RightMediumHalfLoopUp:                   SpinNone,
	LeftMediumHalfLoopDown:                  SpinNone,
	RightMediumHalfLoopDown:                 SpinNone,
	LeftZeroGRollUp:                         SpinNone,
	RightZeroGRollUp:                        SpinNone,
	LeftZeroGRollDown:                       SpinNone,
	RightZeroGRollDown:                      SpinNone,
	LeftLargeZeroGRollUp:                    SpinNone,
	RightLargeZeroGRollUp:                   SpinNone,
	LeftLargeZeroGRollDown:                  SpinNone,
	RightLargeZeroGRollDown:                 SpinNone,
	LeftFlyerLargeHalfLoopUninvertedUp:      SpinNone,
	RightFlyerLargeHalfLoopUninvertedUp:     SpinNone,
	LeftFlyerLargeHalfLoopInvertedDown:      SpinNone,
	RightFlyerLargeHalfLoopInvertedDown:     SpinNone,
	LeftFlyerLargeHalfLoopInvertedUp:        SpinNone,
	RightFlyerLargeHalfLoopInvertedUp:       SpinNone,
	LeftFlyerLargeHalfLoopUninvertedDown:    SpinNone,
	RightFlyerLargeHalfLoopUninvertedDown:   SpinNone,
	FlyerHalfLoopInvertedUp:                 SpinNone,
	FlyerHalfLoopUninvertedDown:             SpinNone,
	DiagBrakes:                              SpinNone,
	DiagBlockBrakes:                         SpinNone,
	Down25Brakes:                            SpinNone,
	DiagBooster:                             SpinNone,
}
