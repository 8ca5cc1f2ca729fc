package track

import "fmt"

// Curve classifies the curvature an element presents at one of its ends.
type Curve uint8

const (
	CurveNone Curve = iota
	CurveLeft
	CurveRight
	CurveLeftSmall
	CurveRightSmall
	CurveLeftVerySmall
	CurveRightVerySmall
	CurveLeftLarge
	CurveRightLarge
)

var curveNames = [...]string{
	CurveNone:           "none",
	CurveLeft:           "left",
	CurveRight:          "right",
	CurveLeftSmall:      "left-small",
	CurveRightSmall:     "right-small",
	CurveLeftVerySmall:  "left-very-small",
	CurveRightVerySmall: "right-very-small",
	CurveLeftLarge:      "left-large",
	CurveRightLarge:     "right-large",
}

func (c Curve) String() string {
	if int(c) >= len(curveNames) {
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
	return curveNames[c]
}

// ChainLink is one end of a CurveChain. It either names a curve class, or
// (when IsPiece is set) the specific element that must follow or precede.
type ChainLink struct {
	Curve   Curve
	Piece   ElemType
	IsPiece bool
}

func curveLink(c Curve) ChainLink {
	return ChainLink{Curve: c}
}

func pieceLink(t ElemType) ChainLink {
	return ChainLink{Piece: t, IsPiece: true}
}

func (l ChainLink) String() string {
	if l.IsPiece {
		return "piece:" + l.Piece.String()
	}
	return "curve:" + l.Curve.String()
}

// CurveChain is used by construction auto-connect to suggest the next or
// previous piece.
type CurveChain struct {
	Next     ChainLink
	Previous ChainLink
}

// curveChainTable only lists elements with a chain; the rest chain to CurveNone.
var curveChainTable = [ElemTypeCount]CurveChain{
	LeftQuarterTurn5Tiles:                   {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	RightQuarterTurn5Tiles:                  {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	BankedLeftQuarterTurn5Tiles:             {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	BankedRightQuarterTurn5Tiles:            {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	LeftQuarterTurn5TilesUp25:               {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	RightQuarterTurn5TilesUp25:              {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	LeftQuarterTurn5TilesDown25:             {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	RightQuarterTurn5TilesDown25:            {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	LeftQuarterTurn3Tiles:                   {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightQuarterTurn3Tiles:                  {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftBankedQuarterTurn3Tiles:             {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightBankedQuarterTurn3Tiles:            {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftQuarterTurn3TilesUp25:               {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightQuarterTurn3TilesUp25:              {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftQuarterTurn3TilesDown25:             {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightQuarterTurn3TilesDown25:            {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftQuarterTurn1Tile:                    {Next: curveLink(CurveLeftVerySmall), Previous: curveLink(CurveLeftVerySmall)},
	RightQuarterTurn1Tile:                   {Next: curveLink(CurveRightVerySmall), Previous: curveLink(CurveRightVerySmall)},
	HalfLoopUp:                              {Next: pieceLink(HalfLoopDown)},
	HalfLoopDown:                            {Previous: pieceLink(HalfLoopUp)},
	LeftCorkscrewUp:                         {Next: pieceLink(RightCorkscrewDown)},
	RightCorkscrewUp:                        {Next: pieceLink(LeftCorkscrewDown)},
	LeftCorkscrewDown:                       {Previous: pieceLink(RightCorkscrewUp)},
	RightCorkscrewDown:                      {Previous: pieceLink(LeftCorkscrewUp)},
	TowerBase:                               {Next: pieceLink(TowerSection)},
	TowerSection:                            {Next: pieceLink(TowerSection), Previous: pieceLink(TowerSection)},
	LeftQuarterTurn5TilesCovered:            {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	RightQuarterTurn5TilesCovered:           {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	LeftQuarterTurn3TilesCovered:            {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightQuarterTurn3TilesCovered:           {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftHalfBankedHelixUpSmall:              {Next: pieceLink(LeftHalfBankedHelixUpSmall), Previous: pieceLink(LeftHalfBankedHelixUpSmall)},
	RightHalfBankedHelixUpSmall:             {Next: pieceLink(RightHalfBankedHelixUpSmall), Previous: pieceLink(RightHalfBankedHelixUpSmall)},
	LeftHalfBankedHelixDownSmall:            {Next: pieceLink(LeftHalfBankedHelixDownSmall), Previous: pieceLink(LeftHalfBankedHelixDownSmall)},
	RightHalfBankedHelixDownSmall:           {Next: pieceLink(RightHalfBankedHelixDownSmall), Previous: pieceLink(RightHalfBankedHelixDownSmall)},
	LeftHalfBankedHelixUpLarge:              {Next: pieceLink(LeftHalfBankedHelixUpLarge), Previous: pieceLink(LeftHalfBankedHelixUpLarge)},
	RightHalfBankedHelixUpLarge:             {Next: pieceLink(RightHalfBankedHelixUpLarge), Previous: pieceLink(RightHalfBankedHelixUpLarge)},
	LeftHalfBankedHelixDownLarge:            {Next: pieceLink(LeftHalfBankedHelixDownLarge), Previous: pieceLink(LeftHalfBankedHelixDownLarge)},
	RightHalfBankedHelixDownLarge:           {Next: pieceLink(RightHalfBankedHelixDownLarge), Previous: pieceLink(RightHalfBankedHelixDownLarge)},
	LeftQuarterBankedHelixLargeUp:           {Next: pieceLink(LeftQuarterBankedHelixLargeUp), Previous: pieceLink(LeftQuarterBankedHelixLargeUp)},
	RightQuarterBankedHelixLargeUp:          {Next: pieceLink(RightQuarterBankedHelixLargeUp), Previous: pieceLink(RightQuarterBankedHelixLargeUp)},
	LeftQuarterBankedHelixLargeDown:         {Next: pieceLink(LeftQuarterBankedHelixLargeDown), Previous: pieceLink(LeftQuarterBankedHelixLargeDown)},
	RightQuarterBankedHelixLargeDown:        {Next: pieceLink(RightQuarterBankedHelixLargeDown), Previous: pieceLink(RightQuarterBankedHelixLargeDown)},
	LeftQuarterHelixLargeUp:                 {Next: pieceLink(LeftQuarterHelixLargeUp), Previous: pieceLink(LeftQuarterHelixLargeUp)},
	RightQuarterHelixLargeUp:                {Next: pieceLink(RightQuarterHelixLargeUp), Previous: pieceLink(RightQuarterHelixLargeUp)},
	LeftQuarterHelixLargeDown:               {Next: pieceLink(LeftQuarterHelixLargeDown), Previous: pieceLink(LeftQuarterHelixLargeDown)},
	RightQuarterHelixLargeDown:              {Next: pieceLink(RightQuarterHelixLargeDown), Previous: pieceLink(RightQuarterHelixLargeDown)},
	ReverseFreefallSlope:                    {Next: pieceLink(ReverseFreefallVertical)},
	ReverseFreefallVertical:                 {Next: pieceLink(ReverseFreefallVertical), Previous: pieceLink(ReverseFreefallVertical)},
	LeftEighthToDiag:                        {Next: curveLink(CurveLeftLarge), Previous: curveLink(CurveLeftLarge)},
	RightEighthToDiag:                       {Next: curveLink(CurveRightLarge), Previous: curveLink(CurveRightLarge)},
	LeftEighthToOrthogonal:                  {Next: curveLink(CurveLeftLarge), Previous: curveLink(CurveLeftLarge)},
	RightEighthToOrthogonal:                 {Next: curveLink(CurveRightLarge), Previous: curveLink(CurveRightLarge)},
	LeftEighthBankToDiag:                    {Next: curveLink(CurveLeftLarge), Previous: curveLink(CurveLeftLarge)},
	RightEighthBankToDiag:                   {Next: curveLink(CurveRightLarge), Previous: curveLink(CurveRightLarge)},
	LeftEighthBankToOrthogonal:              {Next: curveLink(CurveLeftLarge), Previous: curveLink(CurveLeftLarge)},
	RightEighthBankToOrthogonal:             {Next: curveLink(CurveRightLarge), Previous: curveLink(CurveRightLarge)},
	LeftBankToLeftQuarterTurn3TilesUp25:     {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightBankToRightQuarterTurn3TilesUp25:   {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftQuarterTurn3TilesDown25ToLeftBank:   {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightQuarterTurn3TilesDown25ToRightBank: {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftLargeHalfLoopUp:                     {Next: pieceLink(LeftLargeHalfLoopDown)},
	RightLargeHalfLoopUp:                    {Next: pieceLink(RightLargeHalfLoopDown)},
	RightLargeHalfLoopDown:                  {Previous: pieceLink(RightLargeHalfLoopUp)},
	LeftLargeHalfLoopDown:                   {Previous: pieceLink(LeftLargeHalfLoopUp)},
	FlyerHalfLoopUninvertedUp:               {Next: pieceLink(FlyerHalfLoopInvertedDown)},
	FlyerHalfLoopInvertedDown:               {Previous: pieceLink(FlyerHalfLoopUninvertedUp)},
	LeftFlyerCorkscrewUp:                    {Next: pieceLink(RightFlyerCorkscrewDown)},
	RightFlyerCorkscrewUp:                   {Next: pieceLink(LeftFlyerCorkscrewDown)},
	LeftFlyerCorkscrewDown:                  {Previous: pieceLink(RightFlyerCorkscrewUp)},
	RightFlyerCorkscrewDown:                 {Previous: pieceLink(LeftFlyerCorkscrewUp)},
	MultiDimInvertedFlatToDown90QuarterLoop: {Previous: pieceLink(MultiDimUp90ToInvertedFlatQuarterLoop)},
	Up90ToInvertedFlatQuarterLoop:           {Next: pieceLink(InvertedFlatToDown90QuarterLoop)},
	InvertedFlatToDown90QuarterLoop:         {Previous: pieceLink(Up90ToInvertedFlatQuarterLoop)},
	LeftCurvedLiftHill:                      {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightCurvedLiftHill:                     {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	AirThrustTopCap:                         {Next: pieceLink(AirThrustVerticalDown), Previous: pieceLink(ReverseFreefallVertical)},
	AirThrustVerticalDown:                   {Next: pieceLink(AirThrustVerticalDown), Previous: pieceLink(AirThrustVerticalDown)},
	AirThrustVerticalDownToLevel:            {Previous: pieceLink(AirThrustVerticalDown)},
	LeftBankedQuarterTurn3TileUp25:          {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightBankedQuarterTurn3TileUp25:         {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftBankedQuarterTurn3TileDown25:        {Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
	RightBankedQuarterTurn3TileDown25:       {Next: curveLink(CurveRightSmall), Previous: curveLink(CurveRightSmall)},
	LeftBankedQuarterTurn5TileUp25:          {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	RightBankedQuarterTurn5TileUp25:         {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	LeftBankedQuarterTurn5TileDown25:        {Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
	RightBankedQuarterTurn5TileDown25:       {Next: curveLink(CurveRight), Previous: curveLink(CurveRight)},
	MultiDimUp90ToInvertedFlatQuarterLoop:   {Next: pieceLink(MultiDimInvertedFlatToDown90QuarterLoop)},
	MultiDimFlatToDown90QuarterLoop:         {Previous: pieceLink(MultiDimInvertedUp90ToFlatQuarterLoop)},
	MultiDimInvertedUp90ToFlatQuarterLoop:   {Next: pieceLink(MultiDimFlatToDown90QuarterLoop)},
	LeftLargeCorkscrewUp:                    {Next: pieceLink(RightLargeCorkscrewDown)},
	RightLargeCorkscrewUp:                   {Next: pieceLink(LeftLargeCorkscrewDown)},
	LeftLargeCorkscrewDown:                  {Previous: pieceLink(RightLargeCorkscrewUp)},
	RightLargeCorkscrewDown:                 {Previous: pieceLink(LeftLargeCorkscrewUp)},
	LeftMediumHalfLoopUp:                    {Next: pieceLink(LeftMediumHalfLoopDown)},
	RightMediumHalfLoopUp:                   {Next: pieceLink(RightMediumHalfLoopDown)},
	LeftMediumHalfLoopDown:                  {Previous: pieceLink(LeftMediumHalfLoopUp)},
	RightMediumHalfLoopDown:                 {Previous: pieceLink(RightMediumHalfLoopUp)},
	LeftFlyerLargeHalfLoopUninvertedUp:      {Next: pieceLink(LeftFlyerLargeHalfLoopInvertedDown)},
	RightFlyerLargeHalfLoopUninvertedUp:     {Next: pieceLink(RightFlyerLargeHalfLoopInvertedDown)},
	LeftFlyerLargeHalfLoopInvertedDown:      {Previous: pieceLink(LeftFlyerLargeHalfLoopUninvertedUp)},
	RightFlyerLargeHalfLoopInvertedDown:     {Previous: pieceLink(RightFlyerLargeHalfLoopUninvertedUp)},
	LeftFlyerLargeHalfLoopInvertedUp:        {Next: pieceLink(LeftFlyerLargeHalfLoopUninvertedDown)},
	RightFlyerLargeHalfLoopInvertedUp:       {Next: pieceLink(RightFlyerLargeHalfLoopUninvertedDown)},
	LeftFlyerLargeHalfLoopUninvertedDown:    {Previous: pieceLink(LeftFlyerLargeHalfLoopInvertedUp)},
	RightFlyerLargeHalfLoopUninvertedDown:   {Previous: pieceLink(RightFlyerLargeHalfLoopInvertedUp)},
	FlyerHalfLoopInvertedUp:                 {Next: pieceLink(FlyerHalfLoopUninvertedDown)},
	FlyerHalfLoopUninvertedDown:             {Previous: pieceLink(FlyerHalfLoopInvertedUp)},
}
